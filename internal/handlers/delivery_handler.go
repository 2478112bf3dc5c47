package handlers

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"medishare-backend/internal/config"
	"medishare-backend/internal/models"
	"medishare-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

// CreateDelivery membuat pengiriman untuk permintaan yang SUDAH di-approve.
// Obatnya gratis, yang dibayar cuma ongkir kurir (via Midtrans Snap).
func CreateDelivery(c *gin.Context) {
	recipientID, _ := c.Get("userID")
	requestID := c.Param("id")

	var input models.CreateDeliveryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Alamat pengiriman wajib diisi", nil)
		return
	}

	// 1. Permintaannya harus milik user ini & sudah APPROVED
	var request models.MedicineRequest
	err := config.DB.
		Where("id = ? AND recipient_id = ?", requestID, recipientID).
		First(&request).Error
	if err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Permintaan tidak ditemukan", nil)
		return
	}

	if request.Status != models.StatusApproved {
		utils.APIResponse(c, http.StatusBadRequest, false, "Permintaan belum disetujui admin", nil)
		return
	}

	// 2. Satu permintaan satu pengiriman
	var existing models.Delivery
	if err := config.DB.Where("request_id = ? AND status != ?", request.ID, models.DeliveryCancelled).
		First(&existing).Error; err == nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Pengiriman untuk permintaan ini sudah dibuat", nil)
		return
	}

	// Ongkir flat dulu (nanti bisa per jarak). Ambil dari .env biar
	// gampang diubah tanpa deploy ulang.
	courierFee := float64(utils.StringToInt(os.Getenv("COURIER_FEE")))
	if courierFee <= 0 {
		courierFee = 15000
	}

	orderNo := fmt.Sprintf("DLV-%d", time.Now().Unix()) // Format: DLV-17682391

	delivery := models.Delivery{
		OrderNo:     orderNo,
		RequestID:   request.ID,
		RecipientID: recipientID.(uint64),
		CourierFee:  courierFee,
		Address:     input.Address,
		Status:      models.DeliveryPendingPayment,
	}

	if err := config.DB.Create(&delivery).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal menyimpan pengiriman", err.Error())
		return
	}

	// 3. Minta Snap Token ke Midtrans buat bayar ongkirnya
	var customer models.User
	config.DB.First(&customer, recipientID)

	var s = snap.Client{}
	s.New(os.Getenv("MIDTRANS_SERVER_KEY"), midtrans.Sandbox)

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderNo,
			GrossAmt: int64(courierFee), // Midtrans minta int64
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: customer.FullName,
			Email: customer.Email,
			Phone: customer.Phone,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    fmt.Sprintf("DLV-%d", delivery.ID),
				Name:  "Ongkir pengiriman obat",
				Price: int64(courierFee),
				Qty:   1,
			},
		},
	}

	snapResp, errSnap := s.CreateTransaction(req)
	if errSnap != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Midtrans Error", errSnap.GetMessage())
		return
	}

	utils.APIResponse(c, http.StatusCreated, true, "Pengiriman Dibuat! Silakan bayar ongkirnya.", gin.H{
		"delivery_id":  delivery.ID,
		"order_no":     delivery.OrderNo,
		"courier_fee":  delivery.CourierFee,
		"snap_token":   snapResp.Token,       // <--- INI YG DIPAKAI FRONTEND
		"redirect_url": snapResp.RedirectURL, // <--- Link pembayaran web
	})
}

// GetMyDeliveries riwayat pengiriman milik penerima yang login
func GetMyDeliveries(c *gin.Context) {
	recipientID, _ := c.Get("userID")

	var deliveries []models.Delivery
	config.DB.
		Preload("Request.Medicine").
		Where("recipient_id = ?", recipientID).
		Order("created_at desc").
		Find(&deliveries)

	utils.APIResponse(c, http.StatusOK, true, "Riwayat Pengiriman Saya", deliveries)
}
