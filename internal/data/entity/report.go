package entity

import "github.com/shopspring/decimal"

// MonthlyBucket is one month of booking volume and collected payments.
// Month is formatted YYYY-MM.
type MonthlyBucket struct {
	Month    string          `db:"month"`
	Bookings int64           `db:"bookings"`
	Paid     decimal.Decimal `db:"paid"`
}

// PopularItem ranks a catalog item by how many bookings selected it.
type PopularItem struct {
	Name     string `db:"name"`
	Bookings int64  `db:"bookings"`
}
