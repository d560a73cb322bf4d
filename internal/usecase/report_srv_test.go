package usecase

import (
	"context"
	"testing"
	"time"

	"resort-booking/internal/data/entity"
	"resort-booking/internal/data/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeReportRepo struct {
	repository.ReportRepository
	buckets []entity.MonthlyBucket
}

func (f *fakeReportRepo) MonthlyBookings(ctx context.Context) ([]entity.MonthlyBucket, error) {
	return f.buckets, nil
}

func TestMonthlySeriesZeroFills(t *testing.T) {
	now := time.Now().UTC()
	current := now.Format("2006-01")
	previous := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0).Format("2006-01")

	s := &reportService{
		repo: &repository.Repository{Report: &fakeReportRepo{buckets: []entity.MonthlyBucket{
			{Month: current, Bookings: 4, Paid: decimal.NewFromInt(900)},
		}}},
		log: zap.NewNop(),
	}

	series, err := s.monthlySeries(context.Background())
	require.NoError(t, err)
	require.Len(t, series, 12)

	// Oldest first, current month last.
	last := series[len(series)-1]
	assert.Equal(t, current, last.Month)
	assert.Equal(t, int64(4), last.Bookings)
	assert.True(t, decimal.NewFromInt(900).Equal(last.Paid))

	secondToLast := series[len(series)-2]
	assert.Equal(t, previous, secondToLast.Month)
	assert.Equal(t, int64(0), secondToLast.Bookings)
	assert.True(t, secondToLast.Paid.IsZero())
}

func TestMonthlySeriesIgnoresStaleMonths(t *testing.T) {
	s := &reportService{
		repo: &repository.Repository{Report: &fakeReportRepo{buckets: []entity.MonthlyBucket{
			{Month: "2019-01", Bookings: 99, Paid: decimal.NewFromInt(1)},
		}}},
		log: zap.NewNop(),
	}

	series, err := s.monthlySeries(context.Background())
	require.NoError(t, err)
	require.Len(t, series, 12)

	for _, bucket := range series {
		assert.NotEqual(t, "2019-01", bucket.Month)
		assert.Equal(t, int64(0), bucket.Bookings)
	}
}
