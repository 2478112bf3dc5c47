package handlers

import (
	"fmt"
	"net/http"
	"time"

	"medishare-backend/internal/config"
	"medishare-backend/internal/eligibility"
	"medishare-backend/internal/middleware"
	"medishare-backend/internal/models"
	"medishare-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetDashboardStats menampilkan ringkasan buat halaman admin
func GetDashboardStats(c *gin.Context) {
	var pendingDonations int64
	var pendingRequests int64
	var totalDonors int64
	var totalRecipients int64

	config.DB.Model(&models.Donation{}).Where("status = ?", models.StatusPending).Count(&pendingDonations)
	config.DB.Model(&models.MedicineRequest{}).Where("status = ?", models.StatusPending).Count(&pendingRequests)
	config.DB.Model(&models.User{}).Where("role_id = ?", middleware.RoleDonor).Count(&totalDonors)
	config.DB.Model(&models.User{}).Where("role_id = ?", middleware.RoleRecipient).Count(&totalRecipients)

	// Jumlah obat tersedia TIDAK di-query pakai WHERE status saja —
	// dihitung lewat engine eligibility biar aturannya satu (termasuk
	// cek expired & stok), sama seperti yang dilihat penerima.
	var medicines []models.Medicine
	config.DB.Find(&medicines)
	offerableCount := len(eligibility.FilterOfferable(medicines, time.Now()))

	utils.APIResponse(c, http.StatusOK, true, "Data Dashboard Admin", gin.H{
		"available_medicines": offerableCount,
		"pending_donations":   pendingDonations,
		"pending_requests":    pendingRequests,
		"total_donors":        totalDonors,
		"total_recipients":    totalRecipients,
	})
}

// GetAllDonations melihat semua pengajuan donasi. Filter: ?status=PENDING
func GetAllDonations(c *gin.Context) {
	status := c.Query("status")

	var donations []models.Donation
	query := config.DB.Preload("Donor").Order("created_at asc")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	query.Find(&donations)

	utils.APIResponse(c, http.StatusOK, true, "Daftar Donasi", donations)
}

// ReviewDonation menyetujui/menolak donasi.
// Approve = obat resmi masuk katalog (dibuatkan record Medicine).
func ReviewDonation(c *gin.Context) {
	donationID := c.Param("id")
	var input struct {
		Action string `json:"action" binding:"required,oneof=approve reject"`
		Note   string `json:"note"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input salah", nil)
		return
	}

	var donation models.Donation
	if err := config.DB.Preload("Donor").First(&donation, donationID).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Donasi tidak ditemukan", nil)
		return
	}

	if donation.Status != models.StatusPending {
		utils.APIResponse(c, http.StatusBadRequest, false, "Donasi sudah direview sebelumnya", nil)
		return
	}

	now := time.Now()
	tx := config.DB.Begin()

	if input.Action == "approve" {
		donation.Status = models.StatusApproved

		// Masukkan ke katalog. Statusnya APPROVED, tapi tampil/tidaknya
		// ke penerima tetap dihitung ulang tiap read (expired? stok?).
		medicine := models.Medicine{
			DonorID:           donation.DonorID,
			DonationID:        &donation.ID,
			Name:              donation.MedicineName,
			Description:       donation.Description,
			QuantityAvailable: donation.Quantity,
			ExpiryDate:        donation.ExpiryDate,
			Status:            models.StatusApproved,
			City:              donation.City,
			DonorName:         donation.Name,
			ImageURL:          donation.ImageURL,
		}
		if err := tx.Create(&medicine).Error; err != nil {
			tx.Rollback()
			utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal memasukkan obat ke katalog", err.Error())
			return
		}
	} else {
		donation.Status = models.StatusRejected
	}

	donation.ReviewNote = input.Note
	donation.ReviewedAt = &now

	if err := tx.Save(&donation).Error; err != nil {
		tx.Rollback()
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal update status donasi", err.Error())
		return
	}
	tx.Commit()

	// Kabari donaturnya via push notif (kalau dia login dari mobile)
	if donation.Donor != nil && donation.Donor.FCMToken != "" {
		title := "Donasi Kamu Disetujui! ✅"
		body := fmt.Sprintf("Terima kasih! Obat %s sudah masuk katalog dan siap membantu sesama.", donation.MedicineName)
		if input.Action == "reject" {
			title = "Donasi Kamu Ditolak ❌"
			body = fmt.Sprintf("Maaf, donasi %s belum bisa kami terima. Catatan admin: %s", donation.MedicineName, input.Note)
		}
		go utils.SendNotification(donation.Donor.FCMToken, title, body,
			map[string]string{"donation_id": fmt.Sprintf("%d", donation.ID), "type": "donation_reviewed"})
	}

	utils.APIResponse(c, http.StatusOK, true, "Status Donasi Diupdate", donation)
}

// GetAllRequests melihat semua permintaan obat. Filter: ?status=PENDING
func GetAllRequests(c *gin.Context) {
	status := c.Query("status")

	var requests []models.MedicineRequest
	query := config.DB.Preload("Medicine").Preload("Recipient").Order("created_at asc")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	query.Find(&requests)

	utils.APIResponse(c, http.StatusOK, true, "Daftar Permintaan Obat", requests)
}

// ReviewRequest menyetujui/menolak permintaan obat.
// Approve = stok obat dikurangi DI DALAM transaksi, setelah dicek ulang
// obatnya masih layak & stoknya masih cukup (bisa saja keburu diambil
// permintaan lain yang di-approve duluan).
func ReviewRequest(c *gin.Context) {
	requestID := c.Param("id")
	var input struct {
		Action string `json:"action" binding:"required,oneof=approve reject"`
		Note   string `json:"note"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input salah", nil)
		return
	}

	var request models.MedicineRequest
	if err := config.DB.Preload("Recipient").First(&request, requestID).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Permintaan tidak ditemukan", nil)
		return
	}

	if request.Status != models.StatusPending {
		utils.APIResponse(c, http.StatusBadRequest, false, "Permintaan sudah direview sebelumnya", nil)
		return
	}

	now := time.Now()
	tx := config.DB.Begin()

	if input.Action == "approve" {
		var medicine models.Medicine
		if err := tx.First(&medicine, request.MedicineID).Error; err != nil {
			tx.Rollback()
			utils.APIResponse(c, http.StatusNotFound, false, "Obat tidak ditemukan", nil)
			return
		}

		// Cek eligibility + potong stok dalam SATU statement. Syarat
		// offerable-nya (approved, belum expired, stok cukup) ditulis
		// ulang di WHERE biar atomik: dua admin yang approve barengan
		// ga bisa sama-sama baca stok lama terus potong dobel sampai
		// minus — yang kalah cepat dapet RowsAffected 0.
		res := tx.Model(&models.Medicine{}).
			Where("id = ? AND status = ? AND expiry_date > ? AND quantity_available >= ?",
				request.MedicineID, models.StatusApproved, now, request.Quantity).
			UpdateColumn("quantity_available", gorm.Expr("quantity_available - ?", request.Quantity))

		if res.Error != nil {
			tx.Rollback()
			utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal update stok obat", res.Error.Error())
			return
		}
		if res.RowsAffected == 0 {
			tx.Rollback()
			utils.APIResponse(c, http.StatusConflict, false, "Obat sudah tidak tersedia / stok kurang", nil)
			return
		}

		request.Status = models.StatusApproved
	} else {
		request.Status = models.StatusRejected
	}

	request.ReviewNote = input.Note
	request.ReviewedAt = &now

	if err := tx.Save(&request).Error; err != nil {
		tx.Rollback()
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal update status permintaan", err.Error())
		return
	}
	tx.Commit()

	// Kabari penerimanya
	if request.Recipient != nil && request.Recipient.FCMToken != "" {
		title := "Permintaan Obat Disetujui! ✅"
		body := "Permintaan obat kamu disetujui. Silakan atur pengambilan atau pengiriman."
		if input.Action == "reject" {
			title = "Permintaan Obat Ditolak ❌"
			body = fmt.Sprintf("Maaf, permintaan kamu belum bisa disetujui. Catatan admin: %s", input.Note)
		}
		go utils.SendNotification(request.Recipient.FCMToken, title, body,
			map[string]string{"request_id": fmt.Sprintf("%d", request.ID), "type": "request_reviewed"})
	}

	utils.APIResponse(c, http.StatusOK, true, "Status Permintaan Diupdate", request)
}

// GetAllUsers melihat daftar semua user (donatur & penerima)
func GetAllUsers(c *gin.Context) {
	var users []models.User
	query := config.DB.Order("created_at desc")

	// Filter role opsional: ?role=2 (donatur) / ?role=3 (penerima)
	if role := c.Query("role"); role != "" {
		query = query.Where("role_id = ?", role)
	}
	query.Find(&users)

	utils.APIResponse(c, http.StatusOK, true, "Data Semua User", users)
}
