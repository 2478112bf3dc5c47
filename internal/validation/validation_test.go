package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotBlank(t *testing.T) {
	assert.True(t, NotBlank("Budi"))
	assert.False(t, NotBlank(""))
	assert.False(t, NotBlank("   ")) // spasi doang = kosong
}

func TestValidEmail(t *testing.T) {
	valid := []string{
		"budi@example.com",
		"budi.santoso+donasi@mail.co.id",
		"a@b.io",
	}
	invalid := []string{
		"",
		"bukan-email",
		"budi@",
		"@example.com",
		"budi@example", // ga ada .tld
		"budi @example.com",
	}

	for _, e := range valid {
		assert.True(t, ValidEmail(e), e)
	}
	for _, e := range invalid {
		assert.False(t, ValidEmail(e), e)
	}
}

func TestValidPhone(t *testing.T) {
	valid := []string{
		"081234567890",
		"+62812345678",
		"0812-3456-7890",
		"0812 3456 789",
	}
	invalid := []string{
		"",
		"08123",              // kependekan
		"0812345678901234",   // kepanjangan (16)
		"08123456789x",       // ada huruf
		"(0812) 345-678",     // kurung ga boleh
	}

	for _, p := range valid {
		assert.True(t, ValidPhone(p), p)
	}
	for _, p := range invalid {
		assert.False(t, ValidPhone(p), p)
	}
}
