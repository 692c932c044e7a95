package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/campus-kit/lostfound-service/internal/cache"
	"github.com/campus-kit/lostfound-service/internal/domain"
	"github.com/campus-kit/lostfound-service/internal/repository"
	apperrors "github.com/campus-kit/lostfound-service/pkg/util"
)

const (
	monthlyStatsKey = "lostfound:stats:monthly"
	monthlyStatsTTL = 5 * time.Minute
)

// StatsService computes reporting aggregates over the item table.
type StatsService struct {
	items repository.ItemRepository
	cache *cache.Client
}

// NewStatsService constructs the service.
func NewStatsService(items repository.ItemRepository, cacheClient *cache.Client) *StatsService {
	return &StatsService{items: items, cache: cacheClient}
}

// MonthlyCounts buckets every item ever created by its UTC creation
// month and returns the buckets sorted ascending by "YYYY-MM" key.
// Status plays no role; archived and collected items still count.
func (s *StatsService) MonthlyCounts(ctx context.Context) ([]domain.MonthlyCount, error) {
	if data, _ := s.cache.Get(ctx, monthlyStatsKey); data != nil {
		var cached []domain.MonthlyCount
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	items, err := s.items.ListAll(ctx)
	if err != nil {
		return nil, apperrors.NewOperationFailed(err)
	}

	buckets := make(map[string]int)
	for _, item := range items {
		created := item.CreatedAt.UTC()
		key := fmt.Sprintf("%04d-%02d", created.Year(), int(created.Month()))
		buckets[key]++
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := make([]domain.MonthlyCount, 0, len(keys))
	for _, key := range keys {
		result = append(result, domain.MonthlyCount{Month: key, Count: buckets[key]})
	}

	if data, err := json.Marshal(result); err == nil {
		_ = s.cache.Set(ctx, monthlyStatsKey, data, monthlyStatsTTL)
	}
	return result, nil
}

// Invalidate drops the cached aggregate after an item write.
func (s *StatsService) Invalidate(ctx context.Context) {
	if s == nil {
		return
	}
	_ = s.cache.Delete(ctx, monthlyStatsKey)
}
