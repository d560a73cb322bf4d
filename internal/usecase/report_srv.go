package usecase

import (
	"context"
	"time"

	"resort-booking/internal/data/entity"
	"resort-booking/internal/data/repository"
	"resort-booking/internal/dto/response"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ReportService interface {
	BuildSummary(ctx context.Context) (*response.ReportResponse, error)
}

type reportService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReportService(repo *repository.Repository, log *zap.Logger) ReportService {
	return &reportService{
		repo: repo,
		log:  log.With(zap.String("service", "report")),
	}
}

const popularItemLimit = 5

// BuildSummary assembles the admin dashboard: headline totals, the last
// twelve calendar months, and the most booked catalog items. Revenue is
// computed with the same pricing rules the booking responses use, so the
// dashboard always agrees with the quotes.
func (s *reportService) BuildSummary(ctx context.Context) (*response.ReportResponse, error) {
	totalBookings, err := s.repo.Booking.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	totalUsers, err := s.repo.User.CountAll(ctx, "")
	if err != nil {
		return nil, err
	}

	details, err := s.repo.Booking.FindAllDetailed(ctx)
	if err != nil {
		return nil, err
	}

	totalRevenue := decimal.Zero
	totalCollected := decimal.Zero
	byCategory := make(map[string]decimal.Decimal, 5)
	for _, category := range entity.Categories() {
		byCategory[string(category)] = decimal.Zero
	}

	for _, detail := range details {
		for category, amount := range CategoryAmounts(detail) {
			key := string(category)
			byCategory[key] = byCategory[key].Add(amount)
			totalRevenue = totalRevenue.Add(amount)
		}
		totalCollected = totalCollected.Add(detail.Paid)
	}

	monthly, err := s.monthlySeries(ctx)
	if err != nil {
		return nil, err
	}

	popular := make(map[string][]response.PopularItemResponse, 5)
	for _, category := range entity.Categories() {
		items, err := s.repo.Report.PopularItems(ctx, category, popularItemLimit)
		if err != nil {
			return nil, err
		}
		ranked := make([]response.PopularItemResponse, 0, len(items))
		for _, item := range items {
			ranked = append(ranked, response.PopularItemResponse{
				Name:     item.Name,
				Bookings: item.Bookings,
			})
		}
		popular[string(category)] = ranked
	}

	return &response.ReportResponse{
		TotalBookings:     totalBookings,
		TotalUsers:        totalUsers,
		TotalRevenue:      totalRevenue,
		TotalCollected:    totalCollected,
		RevenueByCategory: byCategory,
		Monthly:           monthly,
		PopularItems:      popular,
	}, nil
}

// monthlySeries returns the trailing twelve calendar months, zero-filled
// for months with no bookings.
func (s *reportService) monthlySeries(ctx context.Context) ([]response.MonthlyBucketResponse, error) {
	buckets, err := s.repo.Report.MonthlyBookings(ctx)
	if err != nil {
		return nil, err
	}

	byMonth := make(map[string]entity.MonthlyBucket, len(buckets))
	for _, bucket := range buckets {
		byMonth[bucket.Month] = bucket
	}

	now := time.Now().UTC()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	series := make([]response.MonthlyBucketResponse, 0, 12)
	for i := 11; i >= 0; i-- {
		month := first.AddDate(0, -i, 0).Format("2006-01")
		entry := response.MonthlyBucketResponse{Month: month, Paid: decimal.Zero}
		if bucket, ok := byMonth[month]; ok {
			entry.Bookings = bucket.Bookings
			entry.Paid = bucket.Paid
		}
		series = append(series, entry)
	}

	return series, nil
}
