package handlers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"medishare-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Ekstensi yang boleh di-upload (gambar obat & resep dokter)
var allowedUploadExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".pdf":  true, // resep dari apotek biasanya PDF
}

// saveUploadedFile menyimpan file ke folder upload dengan nama acak (uuid)
// biar ga bentrok & ga bisa ditebak. Return path publiknya.
func saveUploadedFile(c *gin.Context, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedUploadExt[ext] {
		return "", fmt.Errorf("tipe file %s tidak diizinkan", ext)
	}

	// Batas 5 MB, foto obat ga perlu gede-gede
	if file.Size > 5*1024*1024 {
		return "", fmt.Errorf("ukuran file maksimal 5 MB")
	}

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return "", err
	}

	filename := uuid.NewString() + ext
	dst := filepath.Join(uploadDir, filename)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", err
	}

	return "/uploads/" + filename, nil
}

// UploadPrescription menerima file resep dokter (multipart field "file").
// URL-nya nanti ditaruh di prescription_url saat submit permintaan obat.
func UploadPrescription(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "File resep wajib dilampirkan", nil)
		return
	}

	url, err := saveUploadedFile(c, file)
	if err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, err.Error(), nil)
		return
	}

	utils.APIResponse(c, http.StatusCreated, true, "Resep Berhasil Diupload", gin.H{
		"url": url,
	})
}
