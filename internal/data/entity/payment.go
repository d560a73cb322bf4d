package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// Payment is one mobile-money payment request against a booking. Completed
// payments add their amount to the booking's paid total.
type Payment struct {
	Base
	BookingID uuid.UUID       `db:"booking_id"`
	Phone     string          `db:"phone"`
	Amount    decimal.Decimal `db:"amount"`
	Status    PaymentStatus   `db:"status"`
	Reference string          `db:"reference"`
}
