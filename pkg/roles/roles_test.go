package roles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	assert.Equal(t, Admin, Parse("admin"))
	assert.Equal(t, Staff, Parse("staff"))
	assert.Equal(t, Customer, Parse("customer"))
	assert.Equal(t, Customer, Parse("superuser"))
	assert.Equal(t, Customer, Parse(""))
}

func TestAtLeast(t *testing.T) {
	tests := []struct {
		name string
		role Role
		min  Role
		want bool
	}{
		{"admin meets admin", Admin, Admin, true},
		{"admin meets staff", Admin, Staff, true},
		{"staff meets staff", Staff, Staff, true},
		{"staff below admin", Staff, Admin, false},
		{"customer below staff", Customer, Staff, false},
		{"customer meets customer", Customer, Customer, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.AtLeast(tt.min))
		})
	}
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("customer"))
	assert.True(t, Valid("staff"))
	assert.True(t, Valid("admin"))
	assert.False(t, Valid("root"))
	assert.False(t, Valid(""))
}

func TestRoundTrip(t *testing.T) {
	for _, role := range []Role{Customer, Staff, Admin} {
		assert.Equal(t, role, Parse(role.String()))
	}
}
