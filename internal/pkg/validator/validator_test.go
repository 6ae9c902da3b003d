package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("a"))
	assert.False(t, IsEmpty(" a "))
}

func TestIsValidDate(t *testing.T) {
	t.Parallel()

	_, ok := IsValidDate("2024-02-29")
	assert.True(t, ok)

	_, ok = IsValidDate("2024-13-01")
	assert.False(t, ok)

	_, ok = IsValidDate("01-02-2024")
	assert.False(t, ok)

	_, ok = IsValidDate("")
	assert.False(t, ok)
}

func TestIsValidMonth(t *testing.T) {
	t.Parallel()

	month, ok := IsValidMonth("2024-02")
	assert.True(t, ok)
	assert.Equal(t, 2024, month.Year())

	_, ok = IsValidMonth("2024-00")
	assert.False(t, ok)

	_, ok = IsValidMonth("2024-02-01")
	assert.False(t, ok)
}

func TestIsValidClockTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		valid bool
	}{
		{"08:00", true},
		{"16:30", true},
		{"08:00:30", true},
		{"24:00", false},
		{"8am", false},
		{"", false},
	}

	for _, tc := range tests {
		_, ok := IsValidClockTime(tc.input)
		assert.Equal(t, tc.valid, ok, "input %q", tc.input)
	}
}

func TestIsValidUsername(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidUsername("cashier-01"))
	assert.True(t, IsValidUsername("jane.doe"))
	assert.False(t, IsValidUsername("ab"))
	assert.False(t, IsValidUsername("has space"))
}

func TestIsValidBarcode(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidBarcode("6291041500213"))
	assert.False(t, IsValidBarcode(""))
	assert.False(t, IsValidBarcode("ABC123"))
}
