package handlers

import (
	"net/http"
	"strings"
	"time"

	"medishare-backend/internal/config"
	"medishare-backend/internal/eligibility"
	"medishare-backend/internal/models"
	"medishare-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// GetAvailableMedicines menampilkan katalog obat yang bisa diminta.
// Kriteria ketersediaan SELALU dihitung ulang di sini (approved + belum
// expired + stok > 0), tidak pernah diambil dari flag tersimpan.
// Filter opsional: ?city=Bandung  ?q=panadol  ?sort=name|expiry|quantity
func GetAvailableMedicines(c *gin.Context) {
	var medicines []models.Medicine
	if err := config.DB.Find(&medicines).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal mengambil data obat", nil)
		return
	}

	today := time.Now()
	offerable := eligibility.FilterOfferable(medicines, today)

	// Filter kota (exact match, case-insensitive)
	if city := c.Query("city"); city != "" {
		filtered := make([]models.Medicine, 0, len(offerable))
		for _, m := range offerable {
			if strings.EqualFold(m.City, city) {
				filtered = append(filtered, m)
			}
		}
		offerable = filtered
	}

	// Cari berdasarkan nama obat
	if q := c.Query("q"); q != "" {
		filtered := make([]models.Medicine, 0, len(offerable))
		for _, m := range offerable {
			if strings.Contains(strings.ToLower(m.Name), strings.ToLower(q)) {
				filtered = append(filtered, m)
			}
		}
		offerable = filtered
	}

	// Sort opsional, default urutan dari DB
	if sortKey := c.Query("sort"); sortKey != "" {
		offerable = eligibility.SortBy(offerable, sortKey)
	}

	utils.APIResponse(c, http.StatusOK, true, "Daftar Obat Tersedia", offerable)
}

// GetMedicineCities mengembalikan daftar kota yang punya obat tersedia,
// buat isi dropdown filter di frontend
func GetMedicineCities(c *gin.Context) {
	var medicines []models.Medicine
	if err := config.DB.Find(&medicines).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal mengambil data obat", nil)
		return
	}

	cities := eligibility.DistinctCities(medicines, time.Now())
	utils.APIResponse(c, http.StatusOK, true, "Daftar Kota", cities)
}

// GetMedicineDetail menampilkan detail satu obat + jumlah maksimal yang
// bisa diminta saat ini. Frontend wizard pakai max_requestable ini buat
// batasi input jumlah.
func GetMedicineDetail(c *gin.Context) {
	// Parse ID-nya dulu, jangan oper string mentah ke GORM.
	// ID ngawur jadi 0 -> ga bakal ketemu -> 404
	id := utils.StringToUint64(c.Param("id"))

	var medicine models.Medicine
	if err := config.DB.First(&medicine, id).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Obat tidak ditemukan", nil)
		return
	}

	today := time.Now()
	offerable := eligibility.IsOfferable(medicine, today)

	maxQty := 0
	if offerable {
		maxQty = medicine.QuantityAvailable
	}

	utils.APIResponse(c, http.StatusOK, true, "Detail Obat", gin.H{
		"medicine":        medicine,
		"is_available":    offerable,
		"max_requestable": maxQty,
	})
}
