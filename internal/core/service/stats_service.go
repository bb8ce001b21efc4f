package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jobmaroc/backend/internal/core/ports"
)

const topSectorsLimit = 5

// StatsService serves the admin dashboard aggregates, fronted by a short-TTL
// cache so repeated dashboard loads do not hammer the database.
type StatsService struct {
	repo  ports.StatsRepository
	cache ports.StatsCache
	log   zerolog.Logger
}

var _ ports.StatsService = (*StatsService)(nil)

func NewStatsService(repo ports.StatsRepository, cache ports.StatsCache, log zerolog.Logger) *StatsService {
	return &StatsService{repo: repo, cache: cache, log: log}
}

func (s *StatsService) TopSectors(ctx context.Context) ([]ports.StatsBucket, error) {
	return s.cached(ctx, "stats:top-sectors", func(ctx context.Context) ([]ports.StatsBucket, error) {
		return s.repo.TopSectors(ctx, topSectorsLimit)
	})
}

func (s *StatsService) OffersByModality(ctx context.Context) ([]ports.StatsBucket, error) {
	return s.cached(ctx, "stats:by-modality", s.repo.OffersByModality)
}

func (s *StatsService) OffersByStudyLevel(ctx context.Context) ([]ports.StatsBucket, error) {
	return s.cached(ctx, "stats:by-study-level", s.repo.OffersByStudyLevel)
}

func (s *StatsService) OffersByRegion(ctx context.Context) ([]ports.StatsBucket, error) {
	return s.cached(ctx, "stats:by-region", s.repo.OffersByRegion)
}

func (s *StatsService) cached(ctx context.Context, key string, load func(context.Context) ([]ports.StatsBucket, error)) ([]ports.StatsBucket, error) {
	if s.cache != nil {
		if buckets, ok := s.cache.Get(ctx, key); ok {
			return buckets, nil
		}
	}

	buckets, err := load(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Set(ctx, key, buckets)
	}
	return buckets, nil
}
