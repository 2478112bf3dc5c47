package models

import (
	"time"

	"gorm.io/gorm"
)

// User merepresentasikan tabel 'users' di database
type User struct {
	ID           uint64         `gorm:"primaryKey" json:"id"`
	RoleID       uint           `gorm:"not null" json:"role_id"`
	FullName     string         `gorm:"size:100;not null" json:"full_name"`
	Email        string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"` // json:"-" artinya field ini TIDAK AKAN dikirim balik ke frontend (rahasia)
	Phone        string         `gorm:"column:phone_number;size:20;unique" json:"phone"`
	City         string         `gorm:"size:100" json:"city"`
	Address      string         `gorm:"type:text" json:"address"`
	FCMToken     string         `gorm:"size:255" json:"-"`
	IsVerified   bool           `gorm:"default:false" json:"is_verified"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relasi: satu donatur bisa punya banyak obat & donasi
	Medicines []Medicine `gorm:"foreignKey:DonorID" json:"medicines,omitempty"`
	Donations []Donation `gorm:"foreignKey:DonorID" json:"donations,omitempty"`
}

// Struct untuk menangkap Input Register dari user
type RegisterInput struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	RoleID   uint   `json:"role_id" binding:"required,oneof=2 3"` // 2:Donatur, 3:Penerima (Admin di-seed manual)
	Phone    string `json:"phone" binding:"required"`
	City     string `json:"city"`
}

// Struct untuk menangkap Input Login
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	FCMToken string `json:"fcm_token"` // Opsional, dikirim frontend mobile biar bisa dapet push notif
}

// Struct inputan update profil
type UpdateProfileInput struct {
	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	City     string `json:"city"`
	Address  string `json:"address"`
}
