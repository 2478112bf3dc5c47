package utils

import (
	"strconv"
	"time"
)

// StringToUint64 mengubah string angka menjadi uint64
// Berguna untuk parsing ID dari URL parameter
func StringToUint64(str string) uint64 {
	val, err := strconv.ParseUint(str, 10, 64)
	if err != nil {
		return 0 // Return 0 jika gagal parsing
	}
	return val
}

// StringToInt mengubah string menjadi int (buat query param ?qty=3)
func StringToInt(str string) int {
	val, err := strconv.Atoi(str)
	if err != nil {
		return 0
	}
	return val
}

// ParseDate mengubah string "YYYY-MM-DD" menjadi time.Time.
// Kalau formatnya ngaco, return zero time (nanti dianggap expired
// oleh engine eligibility, bukan error).
func ParseDate(str string) time.Time {
	t, err := time.Parse("2006-01-02", str)
	if err != nil {
		return time.Time{}
	}
	return t
}
