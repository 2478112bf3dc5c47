package config

import (
	"fmt"
	"log"
	"os"

	"medishare-backend/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// DB dipakai langsung oleh semua handler
var DB *gorm.DB

// ConnectDB membuka koneksi MySQL lalu auto-migrate semua tabel
func ConnectDB() {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		// Rakit DSN dari variabel terpisah kalau DB_DSN ga diisi
		dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			getEnv("DB_USER", "root"),
			os.Getenv("DB_PASS"),
			getEnv("DB_HOST", "127.0.0.1"),
			getEnv("DB_PORT", "3306"),
			getEnv("DB_NAME", "medishare"),
		)
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Gagal konek database: %v", err)
	}

	// Auto Migrate biar tabel langsung kebentuk
	err = db.AutoMigrate(
		&models.User{},
		&models.Medicine{},
		&models.Donation{},
		&models.MedicineRequest{},
		&models.Delivery{},
	)
	if err != nil {
		log.Fatalf("Gagal migrasi database: %v", err)
	}

	DB = db
	log.Println("Database terkoneksi & termigrasi!")
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
