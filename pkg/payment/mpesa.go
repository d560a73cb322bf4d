// Package payment holds the outbound mobile-money gateway port and its
// sandbox implementation.
package payment

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Initiator starts an external charge request and returns the gateway
// reference for it. Implementations must be safe for concurrent use.
type Initiator interface {
	Initiate(ctx context.Context, phone string, amount decimal.Decimal) (reference string, err error)
}

// SandboxInitiator validates the request locally and fabricates a
// reference, standing in for the real M-Pesa STK push integration.
type SandboxInitiator struct {
	log *zap.Logger
}

func NewSandboxInitiator(log *zap.Logger) *SandboxInitiator {
	return &SandboxInitiator{log: log.With(zap.String("gateway", "mpesa-sandbox"))}
}

func (s *SandboxInitiator) Initiate(ctx context.Context, phone string, amount decimal.Decimal) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	normalized := strings.TrimPrefix(phone, "+")
	if len(normalized) < 10 {
		return "", fmt.Errorf("phone number %q too short", phone)
	}
	if !amount.IsPositive() {
		return "", fmt.Errorf("amount must be positive, got %s", amount.String())
	}

	reference := fmt.Sprintf("MPESA-%s", strings.ToUpper(uuid.NewString()[:12]))

	s.log.Info("Sandbox charge initiated",
		zap.String("phone", normalized),
		zap.String("amount", amount.String()),
		zap.String("reference", reference),
	)

	return reference, nil
}
