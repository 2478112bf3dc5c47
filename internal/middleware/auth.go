package middleware

import (
	"net/http"
	"strings"
	"time"

	"medishare-backend/internal/session"
	"medishare-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Role ID: 1=Admin, 2=Donatur, 3=Penerima
const (
	RoleAdmin     uint = 1
	RoleDonor     uint = 2
	RoleRecipient uint = 3
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Ambil Header Authorization
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Token tidak ditemukan", nil)
			c.Abort()
			return
		}

		// 2. Format harus "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Format token salah", nil)
			c.Abort()
			return
		}

		tokenString := parts[1]

		// 3. Cek expiry duluan lewat gate session, biar token basi dapat
		// pesan yang jelas ("login ulang"), bukan "token tidak valid"
		if !session.IsSessionValid(tokenString, time.Now().Unix()) {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Sesi kadaluarsa, silakan login ulang", nil)
			c.Abort()
			return
		}

		// 4. Validasi Token (signature)
		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Token tidak valid atau kadaluarsa", nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Gagal memproses token", nil)
			c.Abort()
			return
		}

		// JWT parse angka sebagai float64 -> convert dulu -> simpan ke context
		var userID uint64
		if val, ok := claims["user_id"].(float64); ok {
			userID = uint64(val)
		}

		var roleID uint
		if val, ok := claims["role_id"].(float64); ok {
			roleID = uint(val)
		}

		c.Set("userID", userID)
		c.Set("roleID", roleID) // Disimpan sebagai UINT

		c.Next()
	}
}

// AdminOnly: Hanya untuk Role ID 1
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		roleID, exists := c.Get("roleID")
		if !exists {
			utils.APIResponse(c, http.StatusForbidden, false, "Akses Ditolak", nil)
			c.Abort()
			return
		}

		// Di AuthMiddleware sudah disimpan sebagai UINT,
		// jadi di sini ambil langsung sebagai UINT juga.
		role := roleID.(uint)

		if role != RoleAdmin {
			utils.APIResponse(c, http.StatusForbidden, false, "Akses Ditolak: Khusus Admin", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
