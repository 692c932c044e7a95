package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/campus-kit/lostfound-service/internal/domain"
)

func TestStatsService_MonthlyCounts(t *testing.T) {
	items := new(MockItemRepository)
	items.On("ListAll", mock.Anything).Return([]domain.Item{
		{ID: "a", Status: domain.ItemStatusActive, CreatedAt: time.Date(2024, 5, 2, 8, 0, 0, 0, time.UTC)},
		{ID: "b", Status: domain.ItemStatusCollected, CreatedAt: time.Date(2024, 5, 20, 8, 0, 0, 0, time.UTC)},
		{ID: "c", Status: domain.ItemStatusArchived, CreatedAt: time.Date(2024, 4, 30, 8, 0, 0, 0, time.UTC)},
	}, nil)

	svc := NewStatsService(items, nil)
	counts, err := svc.MonthlyCounts(context.Background())

	assert.NoError(t, err)
	// Two buckets, sorted ascending by key; status never excludes an item.
	assert.Equal(t, []domain.MonthlyCount{
		{Month: "2024-04", Count: 1},
		{Month: "2024-05", Count: 2},
	}, counts)
}

func TestStatsService_MonthlyCountsEmpty(t *testing.T) {
	items := new(MockItemRepository)
	items.On("ListAll", mock.Anything).Return([]domain.Item{}, nil)

	svc := NewStatsService(items, nil)
	counts, err := svc.MonthlyCounts(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, counts)
}

func TestStatsService_MonthlyCountsBucketsInUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	items := new(MockItemRepository)
	// Local time is already June; UTC is still May.
	items.On("ListAll", mock.Anything).Return([]domain.Item{
		{ID: "a", CreatedAt: time.Date(2024, 6, 1, 5, 0, 0, 0, loc)},
	}, nil)

	svc := NewStatsService(items, nil)
	counts, err := svc.MonthlyCounts(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []domain.MonthlyCount{{Month: "2024-05", Count: 1}}, counts)
}
