// Package session berisi gate sederhana: token user masih hidup atau tidak.
// Token & waktu dikirim caller sebagai argumen biar fungsinya pure dan bisa
// dites tanpa mock storage. Kalau hasilnya false, CALLER yang tanggung
// jawab buang token lama dari storage — fungsi ini tidak menyentuh apa-apa.
package session

import "github.com/golang-jwt/jwt/v5"

// IsSessionValid mengecek klaim exp di dalam token JWT.
// Token kosong, rusak, tanpa exp, atau exp <= now semuanya dianggap
// tidak valid (return false, bukan error — token aneh ya berarti logout).
// Batasnya eksklusif: pas now == exp, sesi sudah dianggap habis.
//
// Catatan: di sini SENGAJA tidak verifikasi signature — itu tugasnya
// middleware.AuthMiddleware di sisi server. Gate ini cuma buat frontend
// nentuin konten proteksi dirender atau tidak.
func IsSessionValid(token string, nowEpochSeconds int64) bool {
	if token == "" {
		return false
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return exp.Unix() > nowEpochSeconds
}
