package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Router mini dengan middleware palsu yang nge-set userID,
// biar ga perlu token beneran
func donationTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/donations", func(c *gin.Context) {
		c.Set("userID", uint64(1))
	}, CreateDonation)
	return r
}

func formDonasiLengkap() map[string]string {
	return map[string]string{
		"name":          "Budi Santoso",
		"email":         "budi@example.com",
		"mobile":        "081234567890",
		"address":       "Jl. Merdeka No. 1",
		"city":          "Bandung",
		"lat":           "-6.914744",
		"lng":           "107.609810",
		"medicine_name": "Panadol",
		"quantity":      "5",
		"expiry_date":   "2027-01-01",
	}
}

func postDonationForm(t *testing.T, r *gin.Engine, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/donations", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateDonationKoordinatWajib(t *testing.T) {
	r := donationTestRouter()

	t.Run("tanpa lat/lng ditolak", func(t *testing.T) {
		fields := formDonasiLengkap()
		delete(fields, "lat")
		delete(fields, "lng")

		w := postDonationForm(t, r, fields)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Input donasi tidak valid")
	})

	t.Run("cuma lat doang juga ditolak", func(t *testing.T) {
		fields := formDonasiLengkap()
		delete(fields, "lng")

		w := postDonationForm(t, r, fields)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("koordinat 0 itu sah, jangan ditolak binding", func(t *testing.T) {
		// Titik (0,0) aneh tapi valid. Formnya lolos binding dan baru
		// mentok di cek foto obat (ga dilampirkan di test ini) —
		// bukti required-nya ga makan korban nilai 0.
		fields := formDonasiLengkap()
		fields["lat"] = "0"
		fields["lng"] = "0"

		w := postDonationForm(t, r, fields)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Foto obat wajib dilampirkan")
	})
}

func TestCreateDonationTanggalNgaco(t *testing.T) {
	r := donationTestRouter()

	fields := formDonasiLengkap()
	fields["expiry_date"] = "01-01-2027" // kebalik, harusnya YYYY-MM-DD

	w := postDonationForm(t, r, fields)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "YYYY-MM-DD")
}
