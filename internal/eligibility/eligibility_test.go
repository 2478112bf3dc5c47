package eligibility

import (
	"testing"
	"time"

	"medishare-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

var today = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

func med(name string, qty int, expiry time.Time, status string) models.Medicine {
	return models.Medicine{
		Name:              name,
		QuantityAvailable: qty,
		ExpiryDate:        expiry,
		Status:            status,
	}
}

func TestIsOfferable(t *testing.T) {
	future := today.AddDate(0, 6, 0)
	past := today.AddDate(0, -1, 0)

	tests := []struct {
		name     string
		medicine models.Medicine
		want     bool
	}{
		{"approved, stok ada, belum expired", med("Panadol", 5, future, models.StatusApproved), true},
		{"masih pending review", med("Panadol", 5, future, models.StatusPending), false},
		{"sudah ditolak admin", med("Panadol", 5, future, models.StatusRejected), false},
		{"stok habis", med("Panadol", 0, future, models.StatusApproved), false},
		{"stok minus (data kotor dari luar)", med("Panadol", -3, future, models.StatusApproved), false},
		{"sudah expired", med("Panadol", 5, past, models.StatusApproved), false},
		{"expired hari ini persis (batas eksklusif)", med("Panadol", 5, today, models.StatusApproved), false},
		{"tanggal expired kosong/gagal parse", med("Panadol", 5, time.Time{}, models.StatusApproved), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsOfferable(tt.medicine, today))
		})
	}
}

func TestFilterOfferable(t *testing.T) {
	future := today.AddDate(0, 6, 0)
	records := []models.Medicine{
		med("Panadol", 5, future, models.StatusApproved),
		med("Bodrex", 0, future, models.StatusApproved),
		med("Amoxicillin", 3, future, models.StatusPending),
		med("OBH Combi", 2, future, models.StatusApproved),
	}

	got := FilterOfferable(records, today)

	assert.Len(t, got, 2)
	// Urutan input dipertahankan
	assert.Equal(t, "Panadol", got[0].Name)
	assert.Equal(t, "OBH Combi", got[1].Name)

	// Idempotent: filter hasil filter ya sama saja
	again := FilterOfferable(got, today)
	assert.Equal(t, got, again)
}

func TestMaxRequestable(t *testing.T) {
	future := today.AddDate(0, 6, 0)
	records := []models.Medicine{
		med("Panadol", 5, future, models.StatusApproved),
		med("Panadol", 9, future, models.StatusApproved), // record kedua, harusnya ga kepakai
		med("Bodrex", 0, future, models.StatusApproved),
	}

	// Record offerable PERTAMA yang menang
	assert.Equal(t, 5, MaxRequestable(records, "Panadol", today))

	// Stok habis = 0 (sinyal "sudah tidak tersedia")
	assert.Equal(t, 0, MaxRequestable(records, "Bodrex", today))

	// Nama ga ada sama sekali
	assert.Equal(t, 0, MaxRequestable(records, "Obat Ghoib", today))
}

func TestMaxRequestableSkipsNonOfferable(t *testing.T) {
	future := today.AddDate(0, 6, 0)
	records := []models.Medicine{
		med("Panadol", 9, future, models.StatusPending),  // belum approved, skip
		med("Panadol", 4, future, models.StatusApproved), // ini yang kepakai
	}

	assert.Equal(t, 4, MaxRequestable(records, "Panadol", today))
}

func TestSortBy(t *testing.T) {
	future := today.AddDate(0, 6, 0)
	records := []models.Medicine{
		med("Panadol", 5, future.AddDate(0, 2, 0), models.StatusApproved),
		med("Amoxicillin", 9, future, models.StatusApproved),
		med("Bodrex", 5, future.AddDate(0, 1, 0), models.StatusApproved),
	}

	byName := SortBy(records, SortByName)
	assert.Equal(t, []string{"Amoxicillin", "Bodrex", "Panadol"},
		[]string{byName[0].Name, byName[1].Name, byName[2].Name})

	byExpiry := SortBy(records, SortByExpiry)
	assert.Equal(t, "Amoxicillin", byExpiry[0].Name)
	assert.Equal(t, "Panadol", byExpiry[2].Name)

	byQty := SortBy(records, SortByQuantity)
	assert.Equal(t, 9, byQty[0].QuantityAvailable)
	// Stabil: yang stoknya seri (Panadol & Bodrex sama-sama 5) tetap
	// ikut urutan input
	assert.Equal(t, "Panadol", byQty[1].Name)
	assert.Equal(t, "Bodrex", byQty[2].Name)

	// Key ngaco = urutan apa adanya, dan input tidak boleh berubah
	unknown := SortBy(records, "harga")
	assert.Equal(t, records, unknown)
	assert.Equal(t, "Panadol", records[0].Name)
}

func TestDistinctCities(t *testing.T) {
	future := today.AddDate(0, 6, 0)

	bandung := med("Panadol", 5, future, models.StatusApproved)
	bandung.City = "Bandung"
	jakarta := med("Bodrex", 3, future, models.StatusApproved)
	jakarta.City = "Jakarta"
	jakartaLagi := med("OBH Combi", 2, future, models.StatusApproved)
	jakartaLagi.City = "Jakarta"
	tanpaKota := med("Amoxicillin", 4, future, models.StatusApproved)
	habis := med("Mixagrip", 0, future, models.StatusApproved)
	habis.City = "Surabaya" // stok habis, kotanya ga boleh muncul

	got := DistinctCities([]models.Medicine{bandung, jakarta, jakartaLagi, tanpaKota, habis}, today)

	assert.Equal(t, []string{"Bandung", "Jakarta"}, got)
}
