package main

import (
	"log"
	"os"

	"medishare-backend/internal/config"
	"medishare-backend/internal/routes"
	"medishare-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Connect DB
	config.ConnectDB()

	// 3. Init Firebase (buat push notif review donasi/permintaan)
	utils.InitFCM()

	// 4. Init Router
	r := gin.Default()

	// 5. Setup Routes (middleware global dipasang di dalam sini)
	routes.SetupRoutes(r)

	// 6. Test Ping
	r.GET("/ping", func(c *gin.Context) {
		utils.APIResponse(c, 200, true, "Server OK!", nil)
	})

	// 7. Run Server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("Server berjalan di port " + port)
	r.Run(":" + port)
}
