package payment

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSandboxInitiate(t *testing.T) {
	initiator := NewSandboxInitiator(zap.NewNop())

	reference, err := initiator.Initiate(context.Background(), "+254712345678", decimal.NewFromInt(1500))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(reference, "MPESA-"))
}

func TestSandboxInitiateUniqueReferences(t *testing.T) {
	initiator := NewSandboxInitiator(zap.NewNop())

	first, err := initiator.Initiate(context.Background(), "0712345678", decimal.NewFromInt(100))
	require.NoError(t, err)
	second, err := initiator.Initiate(context.Background(), "0712345678", decimal.NewFromInt(100))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestSandboxInitiateRejectsShortPhone(t *testing.T) {
	initiator := NewSandboxInitiator(zap.NewNop())

	_, err := initiator.Initiate(context.Background(), "+12345", decimal.NewFromInt(100))
	assert.Error(t, err)
}

func TestSandboxInitiateRejectsNonPositiveAmount(t *testing.T) {
	initiator := NewSandboxInitiator(zap.NewNop())

	_, err := initiator.Initiate(context.Background(), "0712345678", decimal.Zero)
	assert.Error(t, err)

	_, err = initiator.Initiate(context.Background(), "0712345678", decimal.NewFromInt(-10))
	assert.Error(t, err)
}

func TestSandboxInitiateHonorsContext(t *testing.T) {
	initiator := NewSandboxInitiator(zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := initiator.Initiate(ctx, "0712345678", decimal.NewFromInt(100))
	assert.ErrorIs(t, err, context.Canceled)
}
