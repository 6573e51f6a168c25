package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"artgrid/internal/http-api/repository"
)

const statsCacheKey = "admin:stats"

// AdminStats is the full dashboard payload.
type AdminStats struct {
	Overview      *repository.Overview      `json:"overview"`
	YearStats     []repository.YearStat     `json:"year_stats"`
	CategoryStats []repository.CategoryStat `json:"category_stats"`
	TopArtworks   []repository.TopArtwork   `json:"top_artworks"`
}

type StatsService interface {
	Get(ctx context.Context) (*AdminStats, error)
}

type statsService struct {
	statsRepo repository.StatsRepository
	cache     *redis.Client // nil when no Redis is configured
	cacheTTL  time.Duration
	log       *slog.Logger
}

func NewStatsService(statsRepo repository.StatsRepository, cache *redis.Client, cacheTTL time.Duration, log *slog.Logger) StatsService {
	return &statsService{
		statsRepo: statsRepo,
		cache:     cache,
		cacheTTL:  cacheTTL,
		log:       log,
	}
}

// Get serves the cached stats payload when fresh and recomputes the
// aggregates on a miss. Redis being unavailable degrades to direct SQL;
// the caller never sees a cache error.
func (s *statsService) Get(ctx context.Context) (*AdminStats, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, statsCacheKey).Result()
		if err == nil {
			var stats AdminStats
			if err := json.Unmarshal([]byte(cached), &stats); err == nil {
				return &stats, nil
			}
		} else if err != redis.Nil {
			s.log.Warn("stats cache read failed", "error", err)
		}
	}

	stats, err := s.compute()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if payload, err := json.Marshal(stats); err == nil {
			if err := s.cache.Set(ctx, statsCacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.log.Warn("stats cache write failed", "error", err)
			}
		}
	}

	return stats, nil
}

func (s *statsService) compute() (*AdminStats, error) {
	overview, err := s.statsRepo.Overview()
	if err != nil {
		return nil, err
	}
	yearStats, err := s.statsRepo.YearStats()
	if err != nil {
		return nil, err
	}
	categoryStats, err := s.statsRepo.CategoryStats()
	if err != nil {
		return nil, err
	}
	topArtworks, err := s.statsRepo.TopArtworks(10)
	if err != nil {
		return nil, err
	}

	return &AdminStats{
		Overview:      overview,
		YearStats:     yearStats,
		CategoryStats: categoryStats,
		TopArtworks:   topArtworks,
	}, nil
}
