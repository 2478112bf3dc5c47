package models

import "time"

// MedicineRequest adalah permintaan obat dari penerima.
// Datanya hasil rakitan wizard 3 langkah di frontend (lihat package wizard),
// tapi server tetap validasi ulang semuanya — jangan percaya frontend.
type MedicineRequest struct {
	ID              uint64     `gorm:"primaryKey" json:"id"`
	RecipientID     uint64     `gorm:"index" json:"recipient_id"`
	MedicineID      uint64     `gorm:"index" json:"medicine_id"`
	Name            string     `gorm:"size:100;not null" json:"name"`
	Email           string     `gorm:"size:100;not null" json:"email"`
	Phone           string     `gorm:"size:20;not null" json:"phone"`
	City            string     `gorm:"size:100" json:"city"`
	Address         string     `gorm:"type:text;not null" json:"address"`
	Quantity        int        `gorm:"not null" json:"quantity"`
	Reason          string     `gorm:"type:text" json:"reason"`
	PrescriptionURL string     `gorm:"size:255" json:"prescription_url"`
	Status          string     `gorm:"size:20;default:'PENDING'" json:"status"` // PENDING, APPROVED, REJECTED
	ReviewNote      string     `gorm:"type:text" json:"review_note"`
	ReviewedAt      *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	Recipient *User     `gorm:"foreignKey:RecipientID" json:"recipient,omitempty"`
	Medicine  *Medicine `gorm:"foreignKey:MedicineID" json:"medicine,omitempty"`
}

// CreateRequestInput menangkap draft lengkap dari wizard frontend.
// medicine_name & quantity bisa juga datang dari deep-link katalog
// (?medicine=Panadol&qty=2) — tetap divalidasi ulang di server.
type CreateRequestInput struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Phone           string `json:"phone" binding:"required"`
	City            string `json:"city"`
	Address         string `json:"address" binding:"required"`
	MedicineName    string `json:"medicine_name" binding:"required"`
	Quantity        int    `json:"quantity" binding:"required,min=1"`
	Reason          string `json:"reason"`
	PrescriptionURL string `json:"prescription_url"`
}
