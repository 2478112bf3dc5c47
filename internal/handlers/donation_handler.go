package handlers

import (
	"net/http"

	"medishare-backend/internal/config"
	"medishare-backend/internal/models"
	"medishare-backend/internal/validation"
	"medishare-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CreateDonation menerima pengajuan donasi obat dari donatur.
// Formnya sekali submit (bukan wizard) dan dikirim multipart karena ada
// foto obatnya. Masuk dengan status PENDING, nunggu review admin.
func CreateDonation(c *gin.Context) {
	donorID, _ := c.Get("userID")

	// 1. Bind field form (tag form di CreateDonationInput)
	var input models.CreateDonationInput
	if err := c.ShouldBind(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input donasi tidak valid", err.Error())
		return
	}

	// 2. Validasi pakai rules bersama (sama persis dengan yang dipakai wizard)
	if !validation.ValidPhone(input.Mobile) {
		utils.APIResponse(c, http.StatusBadRequest, false, "Nomor HP tidak valid (10-15 digit)", nil)
		return
	}

	// 3. Parse tanggal expired. Tanggal ngaco = zero time, ditolak di sini
	// biar donasi sampah ga masuk antrian review.
	expiry := utils.ParseDate(input.ExpiryDate)
	if expiry.IsZero() {
		utils.APIResponse(c, http.StatusBadRequest, false, "Format tanggal expired harus YYYY-MM-DD", nil)
		return
	}

	// 4. Foto obat wajib, admin butuh liat kondisi kemasannya
	file, err := c.FormFile("image")
	if err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Foto obat wajib dilampirkan", nil)
		return
	}

	imageURL, err := saveUploadedFile(c, file)
	if err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, err.Error(), nil)
		return
	}

	// 5. Simpan dengan status PENDING
	donation := models.Donation{
		DonorID:      donorID.(uint64),
		Name:         input.Name,
		Email:        input.Email,
		Mobile:       input.Mobile,
		Address:      input.Address,
		City:         input.City,
		Lat:          *input.Lat,
		Lng:          *input.Lng,
		MedicineName: input.MedicineName,
		Description:  input.Description,
		Quantity:     input.Quantity,
		ExpiryDate:   expiry,
		ImageURL:     imageURL,
		Status:       models.StatusPending,
	}

	if err := config.DB.Create(&donation).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal menyimpan donasi", err.Error())
		return
	}

	utils.APIResponse(c, http.StatusCreated, true, "Donasi Berhasil Diajukan! Menunggu review admin.", donation)
}

// GetMyDonations riwayat donasi milik donatur yang login
func GetMyDonations(c *gin.Context) {
	donorID, _ := c.Get("userID")

	var donations []models.Donation
	config.DB.
		Where("donor_id = ?", donorID).
		Order("created_at desc").
		Find(&donations)

	utils.APIResponse(c, http.StatusOK, true, "Riwayat Donasi Saya", donations)
}
