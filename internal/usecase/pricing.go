package usecase

import (
	"resort-booking/internal/data/entity"
	"resort-booking/internal/dto/response"
	"resort-booking/pkg/apperr"

	"github.com/shopspring/decimal"
)

// categoryPax resolves the head count used to price one category:
// per-category override first, then the booking-level pax, then 1.
func categoryPax(detail *entity.BookingDetail, category entity.Category) int {
	if pax, ok := detail.PaxDetails[category]; ok && pax > 0 {
		return pax
	}
	if detail.Pax > 0 {
		return detail.Pax
	}
	return 1
}

// CategoryAmounts prices each category of the aggregate separately.
// Rooms charge per night, everything else is a flat per-person price.
func CategoryAmounts(detail *entity.BookingDetail) map[entity.Category]decimal.Decimal {
	amounts := make(map[entity.Category]decimal.Decimal, 5)

	nights := decimal.NewFromInt(int64(detail.NightsSpent()))
	roomsPax := decimal.NewFromInt(int64(categoryPax(detail, entity.CategoryRooms)))

	roomRate := decimal.Zero
	for _, room := range detail.Rooms {
		roomRate = roomRate.Add(room.RoomType.PricePerNight)
	}
	amounts[entity.CategoryRooms] = roomRate.Mul(roomsPax).Mul(nights)

	perPerson := func(category entity.Category, total decimal.Decimal) {
		pax := decimal.NewFromInt(int64(categoryPax(detail, category)))
		amounts[category] = total.Mul(pax)
	}

	activityRate := decimal.Zero
	for _, activity := range detail.Activities {
		activityRate = activityRate.Add(activity.PricePerPerson)
	}
	perPerson(entity.CategoryActivities, activityRate)

	packageRate := decimal.Zero
	for _, pkg := range detail.Packages {
		packageRate = packageRate.Add(pkg.PricePerPerson)
	}
	perPerson(entity.CategoryPackages, packageRate)

	foodRate := decimal.Zero
	for _, food := range detail.Food {
		foodRate = foodRate.Add(food.PricePerPerson)
	}
	perPerson(entity.CategoryFood, foodRate)

	tourRate := decimal.Zero
	for _, tour := range detail.Tours {
		tourRate = tourRate.Add(tour.PricePerPerson)
	}
	perPerson(entity.CategoryTours, tourRate)

	return amounts
}

// ComputeAmountRequired is the gross charge for the booking aggregate.
func ComputeAmountRequired(detail *entity.BookingDetail) decimal.Decimal {
	total := decimal.Zero
	for _, amount := range CategoryAmounts(detail) {
		total = total.Add(amount)
	}
	return total
}

// ComputeQuote applies the configured discount rate (a percentage) and the
// amount already paid.
func ComputeQuote(detail *entity.BookingDetail, discountRate decimal.Decimal) response.BookingQuote {
	amount := ComputeAmountRequired(detail)
	discount := amount.Mul(discountRate).Div(decimal.NewFromInt(100)).Round(2)
	payable := amount.Sub(discount)

	return response.BookingQuote{
		AmountRequired: amount,
		Discount:       discount,
		Payable:        payable,
		Paid:           detail.Paid,
		Balance:        payable.Sub(detail.Paid),
	}
}

// parseAmount converts a request price string into an exact decimal.
func parseAmount(value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, apperr.Data("invalid amount %q", value)
	}
	if amount.IsNegative() {
		return decimal.Decimal{}, apperr.Validation("amount must not be negative")
	}
	return amount, nil
}
