package usecase

import (
	"testing"
	"time"

	"resort-booking/internal/data/entity"
	"resort-booking/pkg/apperr"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(value string) decimal.Decimal {
	d, err := decimal.NewFromString(value)
	if err != nil {
		panic(err)
	}
	return d
}

func stay(nights int) entity.Booking {
	checkIn := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	return entity.Booking{
		CheckIn:  checkIn,
		CheckOut: checkIn.AddDate(0, 0, nights),
	}
}

func roomOf(price string) entity.RoomWithType {
	return entity.RoomWithType{
		RoomType: entity.RoomType{PricePerNight: money(price)},
	}
}

func TestCategoryAmountsRoomsChargePerNight(t *testing.T) {
	detail := &entity.BookingDetail{
		Booking: stay(3),
		Rooms:   []entity.RoomWithType{roomOf("2000.00"), roomOf("1500.00")},
	}
	detail.Pax = 2

	amounts := CategoryAmounts(detail)

	// (2000 + 1500) * 2 pax * 3 nights
	assert.True(t, money("21000.00").Equal(amounts[entity.CategoryRooms]),
		"got %s", amounts[entity.CategoryRooms])
}

func TestCategoryAmountsPerPersonCategories(t *testing.T) {
	detail := &entity.BookingDetail{
		Booking:    stay(5),
		Activities: []entity.Activity{{PricePerPerson: money("300.00")}},
		Food:       []entity.Food{{PricePerPerson: money("120.50")}},
		Tours:      []entity.Tour{{PricePerPerson: money("800.00")}, {PricePerPerson: money("200.00")}},
	}
	detail.Pax = 4

	amounts := CategoryAmounts(detail)

	// Nights never multiply the per-person categories.
	assert.True(t, money("1200.00").Equal(amounts[entity.CategoryActivities]))
	assert.True(t, money("482.00").Equal(amounts[entity.CategoryFood]))
	assert.True(t, money("4000.00").Equal(amounts[entity.CategoryTours]))
}

func TestCategoryAmountsPaxOverridePrecedence(t *testing.T) {
	detail := &entity.BookingDetail{
		Booking:    stay(1),
		Activities: []entity.Activity{{PricePerPerson: money("100.00")}},
		Packages:   []entity.Package{{PricePerPerson: money("100.00")}},
		PaxDetails: map[entity.Category]int{entity.CategoryActivities: 6},
	}
	detail.Pax = 2

	amounts := CategoryAmounts(detail)

	// Override wins for activities, booking-level pax covers packages.
	assert.True(t, money("600.00").Equal(amounts[entity.CategoryActivities]))
	assert.True(t, money("200.00").Equal(amounts[entity.CategoryPackages]))
}

func TestCategoryAmountsDefaultsToOnePerson(t *testing.T) {
	detail := &entity.BookingDetail{
		Booking: stay(1),
		Food:    []entity.Food{{PricePerPerson: money("250.00")}},
	}
	// Pax left at zero.

	amounts := CategoryAmounts(detail)
	assert.True(t, money("250.00").Equal(amounts[entity.CategoryFood]))
}

func TestComputeAmountRequiredSumsCategories(t *testing.T) {
	detail := &entity.BookingDetail{
		Booking: stay(2),
		Rooms:   []entity.RoomWithType{roomOf("1000.00")},
		Tours:   []entity.Tour{{PricePerPerson: money("500.00")}},
	}
	detail.Pax = 1

	// 1000*1*2 + 500*1
	assert.True(t, money("2500.00").Equal(ComputeAmountRequired(detail)))
}

func TestComputeAmountRequiredSameDayStay(t *testing.T) {
	checkIn := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	detail := &entity.BookingDetail{
		Booking: entity.Booking{CheckIn: checkIn, CheckOut: checkIn},
		Rooms:   []entity.RoomWithType{roomOf("1800.00")},
	}
	detail.Pax = 1

	// Same-day bookings still occupy one night.
	assert.True(t, money("1800.00").Equal(ComputeAmountRequired(detail)))
}

func TestComputeQuote(t *testing.T) {
	detail := &entity.BookingDetail{
		Booking: stay(1),
		Rooms:   []entity.RoomWithType{roomOf("3000.00")},
	}
	detail.Pax = 1
	detail.Paid = money("1000.00")

	quote := ComputeQuote(detail, money("10"))

	assert.True(t, money("3000.00").Equal(quote.AmountRequired))
	assert.True(t, money("300.00").Equal(quote.Discount))
	assert.True(t, money("2700.00").Equal(quote.Payable))
	assert.True(t, money("1700.00").Equal(quote.Balance))
}

func TestComputeQuoteRoundsDiscount(t *testing.T) {
	detail := &entity.BookingDetail{
		Booking: stay(1),
		Food:    []entity.Food{{PricePerPerson: money("99.99")}},
	}
	detail.Pax = 1

	quote := ComputeQuote(detail, money("7.5"))

	// 99.99 * 7.5% = 7.49925, rounded to cents.
	assert.True(t, money("7.50").Equal(quote.Discount))
	assert.True(t, money("92.49").Equal(quote.Payable))
}

func TestComputeQuoteZeroRate(t *testing.T) {
	detail := &entity.BookingDetail{
		Booking: stay(1),
		Food:    []entity.Food{{PricePerPerson: money("100.00")}},
	}
	detail.Pax = 1

	quote := ComputeQuote(detail, decimal.Zero)
	assert.True(t, quote.Discount.IsZero())
	assert.True(t, quote.AmountRequired.Equal(quote.Payable))
}

func TestParseAmount(t *testing.T) {
	amount, err := parseAmount("1500.00")
	require.NoError(t, err)
	assert.True(t, money("1500.00").Equal(amount))

	_, err = parseAmount("abc")
	assert.True(t, apperr.Is(err, apperr.KindData))

	_, err = parseAmount("-5")
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}
