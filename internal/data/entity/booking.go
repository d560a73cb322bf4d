package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category names the five bookable catalog categories. Per-category pax
// overrides and the m2m selections are keyed by it.
type Category string

const (
	CategoryRooms      Category = "rooms"
	CategoryActivities Category = "activities"
	CategoryPackages   Category = "packages"
	CategoryFood       Category = "food"
	CategoryTours      Category = "tours"
)

// Categories lists all categories in a stable order.
func Categories() []Category {
	return []Category{CategoryRooms, CategoryActivities, CategoryPackages, CategoryFood, CategoryTours}
}

type Booking struct {
	Base
	UserID        *uuid.UUID      `db:"user_id"`
	CustomerName  *string         `db:"customer_name"`
	CustomerEmail *string         `db:"customer_email"`
	CheckIn       time.Time       `db:"check_in"`
	CheckOut      time.Time       `db:"check_out"`
	Pax           int             `db:"pax"`
	Paid          decimal.Decimal `db:"paid"`
}

// NightsSpent is the chargeable night count: at least one, even for
// same-day check-in/check-out.
func (b *Booking) NightsSpent() int {
	nights := int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
	if nights < 1 {
		return 1
	}
	return nights
}

// PaxDetail is a per-category pax override on one booking.
type PaxDetail struct {
	BookingID uuid.UUID `db:"booking_id"`
	Category  Category  `db:"category"`
	Pax       int       `db:"pax"`
}

// Selection is the chosen ids and pax for one category of a booking.
type Selection struct {
	ItemIDs []uuid.UUID
	Pax     *int // nil means fall back to the booking-level pax
}

// BookingDetail is the fully loaded booking aggregate: the header row plus
// priced items per category. Pricing and reporting operate on this.
type BookingDetail struct {
	Booking
	Rooms      []RoomWithType
	Activities []Activity
	Packages   []Package
	Food       []Food
	Tours      []Tour
	PaxDetails map[Category]int
}

// RoomWithType carries a selected room together with its type, which holds
// the nightly price and inventory.
type RoomWithType struct {
	Room
	RoomType RoomType
}
