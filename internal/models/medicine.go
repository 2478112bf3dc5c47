package models

import "time"

// Status review obat/donasi/permintaan
const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

// Medicine adalah stok obat yang sudah masuk katalog.
// CATATAN: Jangan pernah simpan flag "tersedia" di kolom DB!
// Ketersediaan WAJIB dihitung ulang tiap kali dibaca (lihat package eligibility),
// karena status, stok, dan expired bisa berubah kapan saja.
type Medicine struct {
	ID                   uint64    `gorm:"primaryKey" json:"id"`
	DonorID              uint64    `gorm:"index" json:"donor_id"`
	DonationID           *uint64   `gorm:"index" json:"donation_id,omitempty"` // Pointer karena obat seed awal bisa tanpa donasi
	Name                 string    `gorm:"size:100;not null;index" json:"name"`
	Description          string    `gorm:"type:text" json:"description"`
	QuantityAvailable    int       `gorm:"not null;default:0" json:"quantity_available"`
	ExpiryDate           time.Time `gorm:"type:date" json:"expiry_date"`
	Status               string    `gorm:"size:20;default:'PENDING'" json:"status"` // PENDING, APPROVED, REJECTED
	City                 string    `gorm:"size:100" json:"city"`
	DonorName            string    `gorm:"size:100" json:"donor_name"` // Denormalisasi biar list ga perlu join
	ImageURL             string    `gorm:"size:255" json:"image_url"`
	RequiresPrescription bool      `gorm:"default:false" json:"requires_prescription"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`

	Donor *User `gorm:"foreignKey:DonorID" json:"donor,omitempty"`
}
