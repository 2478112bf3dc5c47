package utils

import (
	"context"
	"log"
	"os"

	firebase "firebase.google.com/go"
	"firebase.google.com/go/messaging"
	"google.golang.org/api/option"
)

var fcmClient *messaging.Client

// InitFCM menginisialisasi koneksi ke Firebase.
// Kalau file credential ga ada, push notif di-skip saja (bukan fatal) —
// server tetap jalan, cuma tanpa notifikasi.
func InitFCM() {
	credPath := os.Getenv("FIREBASE_CREDENTIALS")
	if credPath == "" {
		credPath = "firebase-service-account.json"
	}

	if _, err := os.Stat(credPath); err != nil {
		log.Println("Warning: credential Firebase tidak ditemukan, push notif dimatikan")
		return
	}

	opt := option.WithCredentialsFile(credPath)
	app, err := firebase.NewApp(context.Background(), nil, opt)
	if err != nil {
		log.Printf("Error initializing firebase app: %v", err)
		return
	}

	client, err := app.Messaging(context.Background())
	if err != nil {
		log.Printf("Error getting messaging client: %v", err)
		return
	}

	fcmClient = client
	log.Println("🔥 Firebase Cloud Messaging Ready!")
}

// SendNotification mengirim pesan ke satu device (FCM Token).
// Catatan: Utils murni urusan Firebase. Ambil token dari DB itu
// tugasnya handler, bukan di sini (biar ga import cycle ke models).
func SendNotification(token string, title string, body string, data map[string]string) error {
	if fcmClient == nil || token == "" {
		return nil // Push notif mati / user ga punya token, ya sudah
	}

	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data, // Data tambahan (misal: request_id: "123")
	}

	_, err := fcmClient.Send(context.Background(), message)
	if err != nil {
		log.Printf("Error sending message: %s", err)
		return err
	}

	log.Println("Notifikasi terkirim ke:", token)
	return nil
}
