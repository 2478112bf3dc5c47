package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"medishare-backend/internal/config"
	"medishare-backend/internal/models"
	"medishare-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Struct sederhana untuk menangkap body notifikasi Midtrans.
// Midtrans kirim JSON banyak field, tapi kita cuma butuh ini
type MidtransNotification struct {
	TransactionStatus string `json:"transaction_status"`
	OrderID           string `json:"order_id"`
	FraudStatus       string `json:"fraud_status"`
}

// HandleMidtransNotification webhook status pembayaran ongkir
func HandleMidtransNotification(c *gin.Context) {
	var notification MidtransNotification

	// 1. Decode JSON dari Midtrans
	if err := c.ShouldBindJSON(&notification); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid JSON", nil)
		return
	}

	// 2. Map status Midtrans -> status Delivery internal
	var deliveryStatus string
	switch notification.TransactionStatus {
	case "capture":
		if notification.FraudStatus == "accept" {
			deliveryStatus = models.DeliveryPaid // Sukses CC
		} else {
			deliveryStatus = models.DeliveryPendingPayment // Masih diverifikasi bank
		}
	case "settlement":
		deliveryStatus = models.DeliveryPaid // Sukses Transfer Bank/Gopay
	case "deny", "cancel", "expire":
		deliveryStatus = models.DeliveryCancelled
	default:
		deliveryStatus = models.DeliveryPendingPayment
	}

	log.Printf("[Webhook] Midtrans notification - OrderID: %s, TransactionStatus: %s, FraudStatus: %s, MappedStatus: %s",
		notification.OrderID, notification.TransactionStatus, notification.FraudStatus, deliveryStatus)

	// 3. Cari delivery berdasarkan Order No (Midtrans kirim DLV-xxxx)
	var delivery models.Delivery
	if err := config.DB.Where("order_no = ?", notification.OrderID).First(&delivery).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[Webhook] Delivery not found: %s", notification.OrderID)
			utils.APIResponse(c, http.StatusNotFound, false, "Delivery Not Found", nil)
			return
		}
		log.Printf("[Webhook] DB error fetching delivery: %v", err)
		utils.APIResponse(c, http.StatusInternalServerError, false, "Database error", err.Error())
		return
	}

	// 4. Update kalau statusnya berubah
	if delivery.Status != deliveryStatus {
		log.Printf("[Webhook] Updating delivery %s status from %s to %s", notification.OrderID, delivery.Status, deliveryStatus)
		delivery.Status = deliveryStatus
		if err := config.DB.Save(&delivery).Error; err != nil {
			log.Printf("[Webhook] DB error updating delivery: %v", err)
			utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to update delivery", err.Error())
			return
		}
	} else {
		log.Printf("[Webhook] Delivery %s status unchanged (already %s)", notification.OrderID, deliveryStatus)
	}

	// 5. Kabari penerimanya via push notif
	var recipient models.User
	if err := config.DB.First(&recipient, delivery.RecipientID).Error; err == nil && recipient.FCMToken != "" {
		switch deliveryStatus {
		case models.DeliveryPaid:
			go utils.SendNotification(
				recipient.FCMToken,
				"Ongkir Terbayar! 📦",
				"Pembayaran ongkir diterima. Obat kamu segera dikirim kurir.",
				map[string]string{"delivery_id": fmt.Sprintf("%d", delivery.ID), "type": "delivery_paid"},
			)
		case models.DeliveryCancelled:
			go utils.SendNotification(
				recipient.FCMToken,
				"Pembayaran Gagal/Expired ❌",
				"Maaf, pengiriman dibatalkan karena pembayaran ongkir gagal atau waktu habis.",
				map[string]string{"delivery_id": fmt.Sprintf("%d", delivery.ID), "type": "delivery_cancelled"},
			)
		}
	}

	// 6. Response OK ke Midtrans (Wajib biar Midtrans tau kita udah terima)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
