package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/campus-kit/lostfound-service/internal/observability"
)

func newSweepService(items *MockItemRepository, metrics *observability.Metrics, maxAge time.Duration) *SweepService {
	return NewSweepService(SweepDependencies{
		ItemRepo: items,
		Metrics:  metrics,
		MaxAge:   maxAge,
		Now:      func() time.Time { return fixedNow },
	})
}

func TestSweepService_ArchiveStale(t *testing.T) {
	items := new(MockItemRepository)
	metrics := observability.NewMetrics()
	maxAge := 30 * 24 * time.Hour
	cutoff := fixedNow.Add(-maxAge)

	items.On("ArchiveOlderThan", mock.Anything, cutoff, fixedNow).Return(int64(2), nil)

	svc := newSweepService(items, metrics, maxAge)
	count, err := svc.ArchiveStale(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)

	runs, archived := metrics.SweepTotals()
	assert.Equal(t, int64(1), runs)
	assert.Equal(t, int64(2), archived)
	items.AssertExpectations(t)
}

func TestSweepService_ArchiveStaleIdempotent(t *testing.T) {
	items := new(MockItemRepository)
	metrics := observability.NewMetrics()
	maxAge := 30 * 24 * time.Hour
	cutoff := fixedNow.Add(-maxAge)

	// The first run transitions the eligible items; the second run finds
	// nothing because the status filter excludes archived rows.
	items.On("ArchiveOlderThan", mock.Anything, cutoff, fixedNow).Return(int64(3), nil).Once()
	items.On("ArchiveOlderThan", mock.Anything, cutoff, fixedNow).Return(int64(0), nil).Once()

	svc := newSweepService(items, metrics, maxAge)

	first, err := svc.ArchiveStale(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(3), first)

	second, err := svc.ArchiveStale(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(0), second)

	items.AssertExpectations(t)
}

func TestSweepService_ArchiveStaleNoEligibleItems(t *testing.T) {
	items := new(MockItemRepository)
	metrics := observability.NewMetrics()
	maxAge := 30 * 24 * time.Hour

	items.On("ArchiveOlderThan", mock.Anything, fixedNow.Add(-maxAge), fixedNow).Return(int64(0), nil)

	svc := newSweepService(items, metrics, maxAge)
	count, err := svc.ArchiveStale(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)

	runs, archived := metrics.SweepTotals()
	assert.Equal(t, int64(1), runs)
	assert.Equal(t, int64(0), archived)
}
