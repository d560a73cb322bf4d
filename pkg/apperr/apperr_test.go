package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	kind, ok := KindOf(NotFound("booking missing"))
	assert.True(t, ok)
	assert.Equal(t, KindNotFound, kind)

	_, ok = KindOf(errors.New("plain"))
	assert.False(t, ok)

	_, ok = KindOf(nil)
	assert.False(t, ok)
}

func TestKindOfWrapped(t *testing.T) {
	// The kind must survive fmt.Errorf wrapping done in service layers.
	err := fmt.Errorf("create booking: %w", Capacity("no rooms left"))

	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, KindCapacity, kind)
	assert.True(t, Is(err, KindCapacity))
	assert.False(t, Is(err, KindValidation))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("gateway timeout")
	err := Wrap(KindData, cause, "payment could not be initiated")

	assert.Equal(t, "payment could not be initiated: gateway timeout", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.True(t, Is(err, KindData))
}

func TestMessageFormatting(t *testing.T) {
	err := Validation("invalid %s item id", "rooms")
	assert.Equal(t, "invalid rooms item id", err.Error())
}
