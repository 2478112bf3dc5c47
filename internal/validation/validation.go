// Package validation berisi cek field yang dipakai bareng-bareng oleh
// wizard permintaan obat dan handler HTTP. Dulu regex email/telepon
// di-copas di tiap form (signup, login, request, donate) — cukup sekali saja.
package validation

import (
	"regexp"
	"strings"
)

var (
	// Pola standar local@domain.tld
	emailRegex = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)
	// Telepon: angka, plus, spasi, strip. Panjang dicek terpisah.
	phoneCharsRegex = regexp.MustCompile(`^[0-9+][0-9+\- ]*$`)
)

// NotBlank mengecek string tidak kosong (spasi doang = kosong).
func NotBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}

// ValidEmail mengecek format email standar local@domain.tld
func ValidEmail(email string) bool {
	return emailRegex.MatchString(strings.TrimSpace(email))
}

// ValidPhone mengecek nomor telepon: karakter angka/+/spasi/strip,
// panjang 10 sampai 15 karakter.
func ValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if len(phone) < 10 || len(phone) > 15 {
		return false
	}
	return phoneCharsRegex.MatchString(phone)
}
