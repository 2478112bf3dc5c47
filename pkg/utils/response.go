package utils

import "github.com/gin-gonic/gin"

// apiEnvelope adalah bentuk balasan seragam semua endpoint:
// {success, message, data}. Satu bentuk saja biar frontend ga perlu
// nebak-nebak tiap endpoint balasannya kayak apa.
type apiEnvelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"` // kalau null ga usah ikut dikirim
}

// APIResponse menulis balasan JSON pakai amplop standar di atas
func APIResponse(c *gin.Context, code int, success bool, message string, data interface{}) {
	c.JSON(code, apiEnvelope{
		Success: success,
		Message: message,
		Data:    data,
	})
}
