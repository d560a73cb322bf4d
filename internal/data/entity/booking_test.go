package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNightsSpent(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 9, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{"single night", day(1), day(2), 1},
		{"week stay", day(1), day(8), 7},
		{"same day counts as one night", day(5), day(5), 1},
		{"check_out before check_in still charges one night", day(5), day(3), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := Booking{CheckIn: tt.checkIn, CheckOut: tt.checkOut}
			assert.Equal(t, tt.want, booking.NightsSpent())
		})
	}
}

func TestCategoriesStableOrder(t *testing.T) {
	assert.Equal(t,
		[]Category{CategoryRooms, CategoryActivities, CategoryPackages, CategoryFood, CategoryTours},
		Categories(),
	)
}
