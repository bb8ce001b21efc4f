package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/jobmaroc/backend/internal/core/domain"
	"github.com/jobmaroc/backend/internal/core/ports"
)

// StatsRepository runs the dashboard aggregate queries against the offers
// table.
type StatsRepository struct {
	db *gorm.DB
}

var _ ports.StatsRepository = (*StatsRepository)(nil)

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) TopSectors(ctx context.Context, limit int) ([]ports.StatsBucket, error) {
	return r.grouped(ctx, "sector_activity", limit)
}

func (r *StatsRepository) OffersByModality(ctx context.Context) ([]ports.StatsBucket, error) {
	return r.grouped(ctx, "modality", 0)
}

func (r *StatsRepository) OffersByStudyLevel(ctx context.Context) ([]ports.StatsBucket, error) {
	return r.grouped(ctx, "study_level", 0)
}

func (r *StatsRepository) OffersByRegion(ctx context.Context) ([]ports.StatsBucket, error) {
	return r.grouped(ctx, "location", 0)
}

func (r *StatsRepository) grouped(ctx context.Context, column string, limit int) ([]ports.StatsBucket, error) {
	var buckets []ports.StatsBucket
	q := r.db.WithContext(ctx).Model(&domain.Offer{}).
		Select(column + " AS label, COUNT(*) AS count").
		Where(column + " <> ''").
		Group(column).
		Order("count DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(&buckets).Error; err != nil {
		return nil, fmt.Errorf("offers by %s: %w", column, err)
	}
	return buckets, nil
}
