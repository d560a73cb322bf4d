package request

type InitiatePaymentRequest struct {
	BookingID string `json:"booking_id" validate:"required,uuid4"`
	Phone     string `json:"phone" validate:"required,min=10,max=15"`
	Amount    string `json:"amount" validate:"required"`
}

// PaymentCallbackRequest is the shape posted back by the mobile-money
// gateway once a charge settles.
type PaymentCallbackRequest struct {
	Reference string `json:"reference" validate:"required"`
	Success   bool   `json:"success"`
}
