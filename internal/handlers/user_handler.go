package handlers

import (
	"net/http"

	"medishare-backend/internal/config"
	"medishare-backend/internal/models"
	"medishare-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// GetUserProfile mengambil data user yang sedang login
func GetUserProfile(c *gin.Context) {
	// 1. Ambil User ID dari Context (Hasil kerja Middleware tadi)
	userID, exists := c.Get("userID")
	if !exists {
		utils.APIResponse(c, http.StatusUnauthorized, false, "Unauthorized", nil)
		return
	}

	// 2. Cari di Database
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "User tidak ditemukan", nil)
		return
	}

	// 3. Return Data (Tanpa Password)
	utils.APIResponse(c, http.StatusOK, true, "Data Profile Berhasil Diambil", gin.H{
		"id":        user.ID,
		"full_name": user.FullName,
		"email":     user.Email,
		"phone":     user.Phone,
		"city":      user.City,
		"address":   user.Address,
		"role_id":   user.RoleID,
	})
}

// UpdateMyProfile mengubah data diri user yang sedang login
func UpdateMyProfile(c *gin.Context) {
	userID, _ := c.Get("userID")

	var input models.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input tidak valid", err.Error())
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "User tidak ditemukan", nil)
		return
	}

	if err := config.DB.Model(&user).Updates(models.User{
		FullName: input.FullName,
		Phone:    input.Phone,
		City:     input.City,
		Address:  input.Address,
	}).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal update profil", err.Error())
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Profil Berhasil Diupdate!", user)
}
