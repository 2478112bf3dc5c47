package models

import "time"

// Donation adalah pengajuan donasi obat dari donatur (sekali submit, tanpa wizard).
// Setelah di-approve admin, barulah dibuatkan record Medicine di katalog.
type Donation struct {
	ID           uint64     `gorm:"primaryKey" json:"id"`
	DonorID      uint64     `gorm:"index" json:"donor_id"`
	Name         string     `gorm:"size:100;not null" json:"name"`
	Email        string     `gorm:"size:100;not null" json:"email"`
	Mobile       string     `gorm:"size:20;not null" json:"mobile"`
	Address      string     `gorm:"type:text;not null" json:"address"`
	City         string     `gorm:"size:100;not null" json:"city"`
	Lat          float64    `gorm:"type:decimal(11,8)" json:"lat"`
	Lng          float64    `gorm:"type:decimal(11,8)" json:"lng"`
	MedicineName string     `gorm:"size:100;not null" json:"medicine_name"`
	Description  string     `gorm:"type:text" json:"description"`
	Quantity     int        `gorm:"not null" json:"quantity"`
	ExpiryDate   time.Time  `gorm:"type:date" json:"expiry_date"`
	ImageURL     string     `gorm:"size:255" json:"image_url"`
	Status       string     `gorm:"size:20;default:'PENDING'" json:"status"` // PENDING, APPROVED, REJECTED
	ReviewNote   string     `gorm:"type:text" json:"review_note"`
	ReviewedAt   *time.Time `json:"reviewed_at,omitempty"` // Pointer karena bisa NULL (belum direview)
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	Donor    *User     `gorm:"foreignKey:DonorID" json:"donor,omitempty"`
	Medicine *Medicine `gorm:"foreignKey:DonationID" json:"medicine,omitempty"`
}

// Input donasi dikirim sebagai multipart/form-data (ada file gambar obatnya),
// makanya pakai tag form, bukan json.
type CreateDonationInput struct {
	Name    string `form:"name" binding:"required"`
	Email   string `form:"email" binding:"required,email"`
	Mobile  string `form:"mobile" binding:"required"`
	Address string `form:"address" binding:"required"`
	City    string `form:"city" binding:"required"`
	// Koordinat wajib (kurir butuh titik jemput). Pakai pointer karena
	// tag required di float64 biasa bakal nolak koordinat 0 yang sah —
	// nil = ga dikirim, 0 = beneran di titik 0.
	Lat          *float64 `form:"lat" binding:"required"`
	Lng          *float64 `form:"lng" binding:"required"`
	MedicineName string   `form:"medicine_name" binding:"required"`
	Description  string   `form:"description"`
	Quantity     int      `form:"quantity" binding:"required,min=1"`
	ExpiryDate   string   `form:"expiry_date" binding:"required"` // Format YYYY-MM-DD
}
