package response

import (
	"time"

	"resort-booking/internal/data/entity"

	"github.com/shopspring/decimal"
)

type PaymentResponse struct {
	ID        string               `json:"id"`
	BookingID string               `json:"booking_id"`
	Phone     string               `json:"phone"`
	Amount    decimal.Decimal      `json:"amount"`
	Status    entity.PaymentStatus `json:"status"`
	Reference string               `json:"reference"`
	CreatedAt time.Time            `json:"created_at"`
}

func PaymentToResponse(payment *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:        payment.ID.String(),
		BookingID: payment.BookingID.String(),
		Phone:     payment.Phone,
		Amount:    payment.Amount,
		Status:    payment.Status,
		Reference: payment.Reference,
		CreatedAt: payment.CreatedAt,
	}
}
