package usecase

import (
	"context"
	"time"

	"resort-booking/internal/data/entity"
	"resort-booking/internal/data/repository"
	"resort-booking/internal/dto/request"
	"resort-booking/internal/dto/response"
	"resort-booking/pkg/apperr"
	"resort-booking/pkg/payment"
	"resort-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PaymentService interface {
	Initiate(ctx context.Context, req *request.InitiatePaymentRequest) (*response.PaymentResponse, error)
	Confirm(ctx context.Context, req *request.PaymentCallbackRequest) (*response.PaymentResponse, error)
	ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]response.PaymentResponse, error)
}

type paymentService struct {
	repo      *repository.Repository
	initiator payment.Initiator
	log       *zap.Logger
}

func NewPaymentService(repo *repository.Repository, initiator payment.Initiator, log *zap.Logger) PaymentService {
	return &paymentService{
		repo:      repo,
		initiator: initiator,
		log:       log.With(zap.String("service", "payment")),
	}
}

func (s *paymentService) Initiate(ctx context.Context, req *request.InitiatePaymentRequest) (*response.PaymentResponse, error) {
	userID, role, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	if !amount.IsPositive() {
		return nil, apperr.Validation("amount must be positive")
	}

	bookingID, err := utils.ParseUUID(req.BookingID)
	if err != nil {
		return nil, apperr.Validation("invalid booking id")
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, apperr.NotFound("booking %s not found", req.BookingID)
	}
	if err := requireOwnerOrAdmin(booking.UserID, userID, role); err != nil {
		return nil, err
	}

	setting, err := s.repo.Setting.Get(ctx)
	if err != nil {
		return nil, err
	}
	if setting != nil && !setting.EnableMpesa {
		return nil, apperr.Permission("mobile payments are disabled")
	}

	reference, err := s.initiator.Initiate(ctx, req.Phone, amount)
	if err != nil {
		s.log.Error("Failed to initiate charge", zap.Error(err), zap.String("booking_id", req.BookingID))
		return nil, apperr.Wrap(apperr.KindData, err, "payment could not be initiated")
	}

	now := time.Now()
	pay := &entity.Payment{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BookingID: bookingID,
		Phone:     req.Phone,
		Amount:    amount,
		Status:    entity.PaymentStatusPending,
		Reference: reference,
	}

	if err := s.repo.Payment.Create(ctx, pay); err != nil {
		return nil, err
	}

	s.log.Info("Payment initiated",
		zap.String("payment_id", pay.ID.String()),
		zap.String("reference", reference),
	)

	resp := response.PaymentToResponse(pay)
	return &resp, nil
}

// Confirm settles a pending payment from the gateway callback. A
// successful charge adds its amount to the booking's paid total.
func (s *paymentService) Confirm(ctx context.Context, req *request.PaymentCallbackRequest) (*response.PaymentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	pay, err := s.repo.Payment.FindByReference(ctx, req.Reference)
	if err != nil {
		return nil, err
	}
	if pay == nil {
		return nil, apperr.NotFound("payment %s not found", req.Reference)
	}
	if pay.Status != entity.PaymentStatusPending {
		return nil, apperr.Validation("payment %s already settled", req.Reference)
	}

	status := entity.PaymentStatusFailed
	if req.Success {
		status = entity.PaymentStatusCompleted
	}

	if err := s.repo.Payment.UpdateStatus(ctx, pay.ID, status); err != nil {
		return nil, err
	}
	pay.Status = status

	if status == entity.PaymentStatusCompleted {
		if err := s.repo.Booking.AddPaid(ctx, pay.BookingID, pay.Amount); err != nil {
			return nil, err
		}
	}

	s.log.Info("Payment settled",
		zap.String("payment_id", pay.ID.String()),
		zap.String("status", string(status)),
	)

	resp := response.PaymentToResponse(pay)
	return &resp, nil
}

func (s *paymentService) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]response.PaymentResponse, error) {
	userID, role, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, apperr.NotFound("booking %s not found", bookingID.String())
	}
	if err := requireOwnerOrAdmin(booking.UserID, userID, role); err != nil {
		return nil, err
	}

	payments, err := s.repo.Payment.FindByBookingID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	items := make([]response.PaymentResponse, 0, len(payments))
	for _, pay := range payments {
		items = append(items, response.PaymentToResponse(pay))
	}

	return items, nil
}
