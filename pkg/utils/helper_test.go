package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInt(t *testing.T) {
	assert.Equal(t, 5, ParseInt("5", 1))
	assert.Equal(t, 1, ParseInt("", 1))
	assert.Equal(t, 1, ParseInt("abc", 1))
	assert.Equal(t, 1, ParseInt("0", 1))
	assert.Equal(t, 1, ParseInt("-3", 1))
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, 2026, date.Year())

	_, err = ParseDate("01/09/2026")
	assert.Error(t, err)
}

func TestParseUUIDs(t *testing.T) {
	ids := []string{uuid.NewString(), uuid.NewString()}

	parsed, err := ParseUUIDs(ids)
	require.NoError(t, err)
	assert.Len(t, parsed, 2)

	_, err = ParseUUIDs([]string{ids[0], "nope"})
	assert.Error(t, err)

	parsed, err = ParseUUIDs(nil)
	require.NoError(t, err)
	assert.Empty(t, parsed)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
