package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"medishare-backend/internal/config"
	"medishare-backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB nyiapin sqlite in-memory sebagai pengganti MySQL,
// biar test handler bisa jalan tanpa server DB beneran.
// cache=shared + nama unik: satu test satu DB, kebuang sendiri pas selesai.
func setupTestDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Medicine{},
		&models.Donation{},
		&models.MedicineRequest{},
		&models.Delivery{},
	))

	config.DB = db
	t.Cleanup(func() { config.DB = nil })
}

func reviewTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PATCH("/admin/requests/:id/review", ReviewRequest)
	return r
}

func patchReview(r *gin.Engine, requestID uint64, action string) *httptest.ResponseRecorder {
	body := strings.NewReader(fmt.Sprintf(`{"action":%q}`, action))
	req := httptest.NewRequest("PATCH", fmt.Sprintf("/admin/requests/%d/review", requestID), body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func pendingRequest(medicineID uint64, qty int) models.MedicineRequest {
	return models.MedicineRequest{
		MedicineID: medicineID,
		Name:       "Budi Santoso",
		Email:      "budi@example.com",
		Phone:      "081234567890",
		Address:    "Jl. Merdeka No. 1",
		Quantity:   qty,
		Status:     models.StatusPending,
	}
}

func TestReviewRequestStokTidakBisaMinus(t *testing.T) {
	setupTestDB(t)
	r := reviewTestRouter()

	medicine := models.Medicine{
		Name:              "Panadol",
		QuantityAvailable: 5,
		ExpiryDate:        time.Now().AddDate(0, 6, 0),
		Status:            models.StatusApproved,
	}
	require.NoError(t, config.DB.Create(&medicine).Error)

	// Dua permintaan yang kalau dua-duanya di-approve, totalnya (3+4)
	// lebih dari stok 5
	reqA := pendingRequest(medicine.ID, 3)
	reqB := pendingRequest(medicine.ID, 4)
	require.NoError(t, config.DB.Create(&reqA).Error)
	require.NoError(t, config.DB.Create(&reqB).Error)

	// Approve pertama: lolos, stok 5 -> 2
	w := patchReview(r, reqA.ID, "approve")
	assert.Equal(t, http.StatusOK, w.Code)

	var med models.Medicine
	require.NoError(t, config.DB.First(&med, medicine.ID).Error)
	assert.Equal(t, 2, med.QuantityAvailable)

	// Approve kedua minta 4, sisa cuma 2: guard di UPDATE nolak
	// (RowsAffected 0), stok ga boleh kepotong jadi minus
	w = patchReview(r, reqB.ID, "approve")
	assert.Equal(t, http.StatusConflict, w.Code)

	require.NoError(t, config.DB.First(&med, medicine.ID).Error)
	assert.Equal(t, 2, med.QuantityAvailable)

	// Permintaan yang kalah tetap PENDING, bisa direview ulang nanti
	var pending models.MedicineRequest
	require.NoError(t, config.DB.First(&pending, reqB.ID).Error)
	assert.Equal(t, models.StatusPending, pending.Status)
}

func TestReviewRequestObatExpiredDitolak(t *testing.T) {
	setupTestDB(t)
	r := reviewTestRouter()

	medicine := models.Medicine{
		Name:              "Bodrex",
		QuantityAvailable: 5,
		ExpiryDate:        time.Now().AddDate(0, 0, -1), // kemarin
		Status:            models.StatusApproved,
	}
	require.NoError(t, config.DB.Create(&medicine).Error)

	request := pendingRequest(medicine.ID, 1)
	require.NoError(t, config.DB.Create(&request).Error)

	w := patchReview(r, request.ID, "approve")

	assert.Equal(t, http.StatusConflict, w.Code)

	var med models.Medicine
	require.NoError(t, config.DB.First(&med, medicine.ID).Error)
	assert.Equal(t, 5, med.QuantityAvailable) // stok utuh
}

func TestReviewRequestReject(t *testing.T) {
	setupTestDB(t)
	r := reviewTestRouter()

	medicine := models.Medicine{
		Name:              "OBH Combi",
		QuantityAvailable: 5,
		ExpiryDate:        time.Now().AddDate(0, 6, 0),
		Status:            models.StatusApproved,
	}
	require.NoError(t, config.DB.Create(&medicine).Error)

	request := pendingRequest(medicine.ID, 2)
	require.NoError(t, config.DB.Create(&request).Error)

	w := patchReview(r, request.ID, "reject")
	assert.Equal(t, http.StatusOK, w.Code)

	// Reject ga nyentuh stok
	var med models.Medicine
	require.NoError(t, config.DB.First(&med, medicine.ID).Error)
	assert.Equal(t, 5, med.QuantityAvailable)

	var rejected models.MedicineRequest
	require.NoError(t, config.DB.First(&rejected, request.ID).Error)
	assert.Equal(t, models.StatusRejected, rejected.Status)

	// Sudah direview, ga boleh direview dua kali
	w = patchReview(r, request.ID, "approve")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
