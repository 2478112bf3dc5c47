package models

import "time"

// Status pembayaran ongkir
const (
	DeliveryPendingPayment = "PENDING_PAYMENT"
	DeliveryPaid           = "PAID"
	DeliveryCancelled      = "CANCELLED"
)

// Delivery adalah pengiriman obat ke rumah penerima (opsional).
// Obatnya gratis, tapi ongkir kurir ditanggung penerima via Midtrans.
type Delivery struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	OrderNo     string    `gorm:"unique;size:50" json:"order_no"`
	RequestID   uint64    `gorm:"index" json:"request_id"`
	RecipientID uint64    `json:"recipient_id"`
	CourierFee  float64   `json:"courier_fee"`
	Address     string    `gorm:"type:text" json:"address"`
	Status      string    `gorm:"size:30;default:'PENDING_PAYMENT'" json:"status"` // PENDING_PAYMENT, PAID, CANCELLED
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relasi (Preload) biar detail pengiriman langsung lengkap
	Request   *MedicineRequest `gorm:"foreignKey:RequestID" json:"request,omitempty"`
	Recipient *User            `gorm:"foreignKey:RecipientID" json:"recipient,omitempty"`
}

type CreateDeliveryInput struct {
	Address string `json:"address" binding:"required"`
}
