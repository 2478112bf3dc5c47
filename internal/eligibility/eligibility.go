// Package eligibility berisi aturan murni "obat mana yang boleh ditawarkan".
// Semua fungsi di sini pure: tanpa I/O, tanpa side effect, tanpa akses DB.
// Dulu logika ini tersebar & duplikat di banyak tempat (beda-beda pula
// predikatnya) — sekarang satu pintu di sini biar ga drift lagi.
package eligibility

import (
	"sort"
	"strings"
	"time"

	"medishare-backend/internal/models"
)

// SortKey untuk SortBy
const (
	SortByName     = "name"     // Nama A-Z
	SortByExpiry   = "expiry"   // Paling cepat expired duluan
	SortByQuantity = "quantity" // Stok paling banyak duluan
)

// IsOfferable mengecek apakah sebuah obat layak ditawarkan ke penerima.
// Syaratnya: sudah APPROVED admin + belum expired + stok masih ada.
// Data dari luar ga selalu bener (stok minus, tanggal kosong) —
// yang aneh-aneh kita anggap TIDAK tersedia saja, bukan error.
func IsOfferable(m models.Medicine, today time.Time) bool {
	if m.Status != models.StatusApproved {
		return false
	}
	if m.QuantityAvailable <= 0 {
		return false
	}
	// Expired eksklusif: expiry HARUS lewat dari hari ini.
	// time zero value (tanggal ga keparse) otomatis gagal di sini.
	if !m.ExpiryDate.After(today) {
		return false
	}
	return true
}

// FilterOfferable menyaring daftar obat, urutan input dipertahankan.
// Idempotent: filter hasil filter (dengan today sama) ya hasilnya sama.
func FilterOfferable(medicines []models.Medicine, today time.Time) []models.Medicine {
	result := make([]models.Medicine, 0, len(medicines))
	for _, m := range medicines {
		if IsOfferable(m, today) {
			result = append(result, m)
		}
	}
	return result
}

// MaxRequestable menghitung jumlah maksimal yang boleh diminta untuk obat
// bernama `name`. Ambil record offerable PERTAMA yang namanya cocok.
// Return 0 artinya "obat sudah tidak tersedia" — frontend pakai ini buat
// nyuruh user pilih ulang.
func MaxRequestable(medicines []models.Medicine, name string, today time.Time) int {
	for _, m := range medicines {
		if m.Name == name && IsOfferable(m, today) {
			return m.QuantityAvailable
		}
	}
	return 0
}

// FindOfferable mencari record offerable pertama dengan nama tersebut.
// Return (record, true) kalau ketemu.
func FindOfferable(medicines []models.Medicine, name string, today time.Time) (models.Medicine, bool) {
	for _, m := range medicines {
		if m.Name == name && IsOfferable(m, today) {
			return m, true
		}
	}
	return models.Medicine{}, false
}

// SortBy mengurutkan salinan list sesuai key (stabil, yang seri ikut urutan
// input). Key yang tidak dikenal = list dikembalikan apa adanya.
func SortBy(medicines []models.Medicine, key string) []models.Medicine {
	result := make([]models.Medicine, len(medicines))
	copy(result, medicines)

	switch key {
	case SortByName:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Name < result[j].Name
		})
	case SortByExpiry:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].ExpiryDate.Before(result[j].ExpiryDate)
		})
	case SortByQuantity:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].QuantityAvailable > result[j].QuantityAvailable
		})
	}
	return result
}

// DistinctCities mengumpulkan kota-kota yang PUNYA obat offerable,
// buat isi dropdown filter di frontend. Kota kosong di-skip, hasil
// di-sort biar stabil ditampilkan.
func DistinctCities(medicines []models.Medicine, today time.Time) []string {
	seen := make(map[string]bool)
	cities := make([]string, 0)
	for _, m := range FilterOfferable(medicines, today) {
		city := strings.TrimSpace(m.City)
		if city == "" || seen[city] {
			continue
		}
		seen[city] = true
		cities = append(cities, city)
	}
	sort.Strings(cities)
	return cities
}
