package response

import "github.com/shopspring/decimal"

type MonthlyBucketResponse struct {
	Month    string          `json:"month"`
	Bookings int64           `json:"bookings"`
	Paid     decimal.Decimal `json:"paid"`
}

type PopularItemResponse struct {
	Name     string `json:"name"`
	Bookings int64  `json:"bookings"`
}

// ReportResponse is the admin dashboard payload: headline totals, the
// month-by-month series, and the most booked items per category.
type ReportResponse struct {
	TotalBookings     int64                            `json:"total_bookings"`
	TotalUsers        int64                            `json:"total_users"`
	TotalRevenue      decimal.Decimal                  `json:"total_revenue"`
	TotalCollected    decimal.Decimal                  `json:"total_collected"`
	RevenueByCategory map[string]decimal.Decimal       `json:"revenue_by_category"`
	Monthly           []MonthlyBucketResponse          `json:"monthly"`
	PopularItems      map[string][]PopularItemResponse `json:"popular_items"`
}
