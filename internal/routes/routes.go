package routes

import (
	"medishare-backend/internal/handlers"
	"medishare-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RateLimitMiddleware())

	// File upload (foto obat & resep) bisa diakses langsung
	r.Static("/uploads", "./uploads")

	// Grouping API dengan Versi (v1)
	api := r.Group("/api/v1")
	{
		// Grouping Auth
		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.Register)
			auth.POST("/login", handlers.Login)
		}

		// Katalog obat bisa diakses publik biar orang bisa liat dulu sebelum daftar
		api.GET("/medicines", handlers.GetAvailableMedicines)
		api.GET("/medicines/cities", handlers.GetMedicineCities)
		api.GET("/medicines/:id", handlers.GetMedicineDetail)

		// Webhook Midtrans (dipanggil server Midtrans, bukan user)
		api.POST("/payment/notification", handlers.HandleMidtransNotification)

		// 2. PROTECTED ROUTES (Harus Login / Punya Token)
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/profile", handlers.GetUserProfile)
			protected.PUT("/profile", handlers.UpdateMyProfile)

			// MODULE DONASI (Donatur)
			protected.POST("/donations", handlers.CreateDonation)
			protected.GET("/donations/mine", handlers.GetMyDonations)

			// MODULE PERMINTAAN (Penerima)
			protected.POST("/uploads/prescription", handlers.UploadPrescription)
			protected.POST("/requests", handlers.CreateRequest)
			protected.GET("/requests/mine", handlers.GetMyRequests)
			protected.GET("/requests/:id", handlers.GetRequestDetail)

			// MODULE PENGIRIMAN (bayar ongkir)
			protected.POST("/requests/:id/delivery", handlers.CreateDelivery)
			protected.GET("/deliveries/mine", handlers.GetMyDeliveries)

			// Group Khusus Admin
			admin := protected.Group("/admin")
			admin.Use(middleware.AdminOnly())
			{
				admin.GET("/dashboard", handlers.GetDashboardStats)

				// Review donasi masuk
				admin.GET("/donations", handlers.GetAllDonations)
				admin.PATCH("/donations/:id/review", handlers.ReviewDonation)

				// Review permintaan obat
				admin.GET("/requests", handlers.GetAllRequests)
				admin.PATCH("/requests/:id/review", handlers.ReviewRequest)

				admin.GET("/users", handlers.GetAllUsers)
			}
		}
	}
}
