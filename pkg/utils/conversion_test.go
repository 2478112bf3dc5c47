package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStringToUint64(t *testing.T) {
	assert.Equal(t, uint64(123), StringToUint64("123"))
	assert.Equal(t, uint64(0), StringToUint64(""))
	assert.Equal(t, uint64(0), StringToUint64("abc"))
	assert.Equal(t, uint64(0), StringToUint64("-5")) // negatif ga valid buat ID
}

func TestStringToInt(t *testing.T) {
	assert.Equal(t, 42, StringToInt("42"))
	assert.Equal(t, 0, StringToInt("ngawur"))
}

func TestParseDate(t *testing.T) {
	assert.Equal(t, time.Date(2027, 1, 15, 0, 0, 0, 0, time.UTC), ParseDate("2027-01-15"))

	// Format salah = zero time (nanti otomatis dianggap expired)
	assert.True(t, ParseDate("15-01-2027").IsZero())
	assert.True(t, ParseDate("").IsZero())
}
