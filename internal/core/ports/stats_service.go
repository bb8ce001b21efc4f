package ports

import "context"

// StatsBucket is a single aggregate row: a label and the number of offers
// falling under it.
type StatsBucket struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// StatsRepository runs the aggregate queries behind the admin dashboard.
type StatsRepository interface {
	TopSectors(ctx context.Context, limit int) ([]StatsBucket, error)
	OffersByModality(ctx context.Context) ([]StatsBucket, error)
	OffersByStudyLevel(ctx context.Context) ([]StatsBucket, error)
	OffersByRegion(ctx context.Context) ([]StatsBucket, error)
}

// StatsCache is a short-lived cache in front of the aggregate queries.
type StatsCache interface {
	Get(ctx context.Context, key string) ([]StatsBucket, bool)
	Set(ctx context.Context, key string, buckets []StatsBucket)
}

// StatsService serves the dashboard aggregates.
type StatsService interface {
	TopSectors(ctx context.Context) ([]StatsBucket, error)
	OffersByModality(ctx context.Context) ([]StatsBucket, error)
	OffersByStudyLevel(ctx context.Context) ([]StatsBucket, error)
	OffersByRegion(ctx context.Context) ([]StatsBucket, error)
}
