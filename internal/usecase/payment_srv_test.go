package usecase

import (
	"context"
	"testing"
	"time"

	"resort-booking/internal/data/entity"
	"resort-booking/internal/data/repository"
	"resort-booking/internal/dto/request"
	"resort-booking/pkg/apperr"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePaymentRepo struct {
	repository.PaymentRepository
	byReference map[string]*entity.Payment
	statuses    map[uuid.UUID]entity.PaymentStatus
}

func (f *fakePaymentRepo) FindByReference(ctx context.Context, reference string) (*entity.Payment, error) {
	return f.byReference[reference], nil
}

func (f *fakePaymentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error {
	if f.statuses == nil {
		f.statuses = make(map[uuid.UUID]entity.PaymentStatus)
	}
	f.statuses[id] = status
	return nil
}

type fakePaidBookingRepo struct {
	repository.BookingRepository
	paid map[uuid.UUID]decimal.Decimal
}

func (f *fakePaidBookingRepo) AddPaid(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error {
	if f.paid == nil {
		f.paid = make(map[uuid.UUID]decimal.Decimal)
	}
	f.paid[id] = f.paid[id].Add(amount)
	return nil
}

func pendingPayment(reference string, amount decimal.Decimal) *entity.Payment {
	return &entity.Payment{
		Base:      entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		BookingID: uuid.New(),
		Phone:     "0712345678",
		Amount:    amount,
		Status:    entity.PaymentStatusPending,
		Reference: reference,
	}
}

func newConfirmService(payments *fakePaymentRepo, bookings *fakePaidBookingRepo) *paymentService {
	return &paymentService{
		repo: &repository.Repository{Payment: payments, Booking: bookings},
		log:  zap.NewNop(),
	}
}

func TestConfirmCompletedAddsToPaid(t *testing.T) {
	pay := pendingPayment("MPESA-ABC123", decimal.NewFromInt(2500))
	payments := &fakePaymentRepo{byReference: map[string]*entity.Payment{pay.Reference: pay}}
	bookings := &fakePaidBookingRepo{}

	s := newConfirmService(payments, bookings)

	resp, err := s.Confirm(context.Background(), &request.PaymentCallbackRequest{
		Reference: pay.Reference,
		Success:   true,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.PaymentStatusCompleted, resp.Status)
	assert.Equal(t, entity.PaymentStatusCompleted, payments.statuses[pay.ID])
	assert.True(t, decimal.NewFromInt(2500).Equal(bookings.paid[pay.BookingID]))
}

func TestConfirmFailedLeavesPaidAlone(t *testing.T) {
	pay := pendingPayment("MPESA-DEF456", decimal.NewFromInt(800))
	payments := &fakePaymentRepo{byReference: map[string]*entity.Payment{pay.Reference: pay}}
	bookings := &fakePaidBookingRepo{}

	s := newConfirmService(payments, bookings)

	resp, err := s.Confirm(context.Background(), &request.PaymentCallbackRequest{
		Reference: pay.Reference,
		Success:   false,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.PaymentStatusFailed, resp.Status)
	assert.Empty(t, bookings.paid)
}

func TestConfirmUnknownReference(t *testing.T) {
	s := newConfirmService(&fakePaymentRepo{byReference: map[string]*entity.Payment{}}, &fakePaidBookingRepo{})

	_, err := s.Confirm(context.Background(), &request.PaymentCallbackRequest{
		Reference: "MPESA-MISSING",
		Success:   true,
	})
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestConfirmRejectsSettledPayment(t *testing.T) {
	pay := pendingPayment("MPESA-DONE", decimal.NewFromInt(100))
	pay.Status = entity.PaymentStatusCompleted
	payments := &fakePaymentRepo{byReference: map[string]*entity.Payment{pay.Reference: pay}}
	bookings := &fakePaidBookingRepo{}

	s := newConfirmService(payments, bookings)

	_, err := s.Confirm(context.Background(), &request.PaymentCallbackRequest{
		Reference: pay.Reference,
		Success:   true,
	})
	assert.True(t, apperr.Is(err, apperr.KindValidation))
	assert.Empty(t, bookings.paid)
}
