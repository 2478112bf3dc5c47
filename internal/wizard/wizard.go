// Package wizard adalah state machine form permintaan obat 3 langkah:
// DataDiri -> InfoObat -> Review. Dulu progress form dilacak pakai index
// angka + if-if validasi yang dobel-dobel; sekarang eksplisit satu
// validator per langkah, gampang dites tanpa perlu UI.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"medishare-backend/internal/eligibility"
	"medishare-backend/internal/models"
	"medishare-backend/internal/validation"
)

// Step adalah posisi user di wizard
type Step int

const (
	StepPersonalDetails Step = iota
	StepMedicineInfo
	StepReview
)

func (s Step) String() string {
	switch s {
	case StepPersonalDetails:
		return "personal_details"
	case StepMedicineInfo:
		return "medicine_info"
	case StepReview:
		return "review"
	}
	return "unknown"
}

// FailKind membedakan jenis kegagalan Advance, biar frontend tau harus
// nyuruh user benerin field atau pilih obat lain.
type FailKind int

const (
	FailNone       FailKind = iota
	FailValidation          // Field salah isi -> user perbaiki fieldnya
	FailEligibility         // Obat keburu habis/expired -> user pilih ulang
	FailSubmission          // Kolaborator submit gagal -> user coba submit lagi
)

var ErrNotAtReview = errors.New("submit hanya boleh dari langkah review")

// PersonalDetails = langkah 1
type PersonalDetails struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	City    string `json:"city"`
	Address string `json:"address"`
}

// MedicineSelection = langkah 2
type MedicineSelection struct {
	MedicineName string `json:"medicine_name"`
	Quantity     int    `json:"quantity"`
}

// Draft adalah isi form yang masih in-progress, cuma hidup di memori.
// Setelah submit sukses (atau user kabur), draft dibuang.
type Draft struct {
	Personal        PersonalDetails   `json:"personal"`
	Selection       MedicineSelection `json:"selection"`
	Reason          string            `json:"reason"`
	PrescriptionURL string            `json:"prescription_url"`
}

// Submitter adalah kolaborator eksternal penerima draft final
// (di production: insert ke DB / POST ke API; di test: mock).
type Submitter interface {
	SubmitRequest(ctx context.Context, draft Draft) error
}

// Controller menjaga urutan langkah & validasi per langkah.
// Maju cuma boleh satu langkah dan cuma kalau langkah sekarang valid.
type Controller struct {
	draft               Draft
	step                Step
	failKind            FailKind
	failMsg             string
	requirePrescription bool
	submitter           Submitter
}

func New(s Submitter) *Controller {
	return &Controller{submitter: s}
}

// NewWithPrefill membuat wizard dengan obat sudah terpilih, buat flow
// deep-link dari katalog (?medicine=Panadol&qty=2). Pilihan prefill
// TETAP divalidasi ulang pas user mau lewat langkah InfoObat.
func NewWithPrefill(s Submitter, medicineName string, quantity int) *Controller {
	c := New(s)
	c.draft.Selection = MedicineSelection{MedicineName: medicineName, Quantity: quantity}
	return c
}

// RequirePrescription menandai flow ini wajib lampir resep sebelum
// bisa lewat dari langkah InfoObat.
func (c *Controller) RequirePrescription(v bool) { c.requirePrescription = v }

func (c *Controller) Step() Step { return c.step }

// Draft mengembalikan pointer biar field bisa diedit in place sambil
// user ngisi form.
func (c *Controller) Draft() *Draft { return &c.draft }

// Failure mengembalikan jenis + pesan kegagalan Advance terakhir.
func (c *Controller) Failure() (FailKind, string) { return c.failKind, c.failMsg }

func (c *Controller) fail(kind FailKind, msg string) bool {
	c.failKind = kind
	c.failMsg = msg
	return false
}

func (c *Controller) clearFailure() {
	c.failKind = FailNone
	c.failMsg = ""
}

// Advance memvalidasi langkah sekarang lalu maju satu langkah.
// Gagal validasi = state TIDAK berubah, pesan kegagalan di-set, ga ada
// yang di-throw. `medicines` harus data terbaru dari server — jangan
// data cache pas halaman dibuka, karena stok bisa keburu habis.
func (c *Controller) Advance(medicines []models.Medicine, today time.Time) bool {
	switch c.step {
	case StepPersonalDetails:
		if !c.validatePersonal() {
			return false
		}
	case StepMedicineInfo:
		if !c.validateMedicineInfo(medicines, today) {
			return false
		}
	case StepReview:
		// Review itu langkah terakhir, keluarnya lewat Submit
		return c.fail(FailValidation, "Sudah di langkah review, silakan submit")
	}

	c.clearFailure()
	c.step++
	return true
}

// Retreat mundur satu langkah. Selalu boleh (kecuali sudah di awal),
// tanpa validasi ulang, dan pesan error dibersihkan. Isian user aman.
func (c *Controller) Retreat() bool {
	if c.step == StepPersonalDetails {
		return false
	}
	c.clearFailure()
	c.step--
	return true
}

func (c *Controller) validatePersonal() bool {
	p := c.draft.Personal
	if !validation.NotBlank(p.Name) {
		return c.fail(FailValidation, "Nama wajib diisi")
	}
	if !validation.NotBlank(p.Email) {
		return c.fail(FailValidation, "Email wajib diisi")
	}
	if !validation.ValidEmail(p.Email) {
		return c.fail(FailValidation, "Format email tidak valid")
	}
	if !validation.ValidPhone(p.Phone) {
		return c.fail(FailValidation, "Nomor telepon tidak valid (10-15 digit)")
	}
	if !validation.NotBlank(p.City) {
		return c.fail(FailValidation, "Kota wajib diisi")
	}
	if !validation.NotBlank(p.Address) {
		return c.fail(FailValidation, "Alamat wajib diisi")
	}
	return true
}

func (c *Controller) validateMedicineInfo(medicines []models.Medicine, today time.Time) bool {
	sel := c.draft.Selection
	if !validation.NotBlank(sel.MedicineName) {
		return c.fail(FailValidation, "Silakan pilih obat terlebih dahulu")
	}

	// Cek ulang ke data terbaru: obat yang tadi ada bisa saja sudah
	// di-reject admin / habis / expired selagi user ngisi form.
	med, ok := eligibility.FindOfferable(medicines, sel.MedicineName, today)
	if !ok {
		return c.fail(FailEligibility, "Obat sudah tidak tersedia, silakan pilih obat lain")
	}

	max := med.QuantityAvailable
	if sel.Quantity < 1 || sel.Quantity > max {
		return c.fail(FailValidation, fmt.Sprintf("Jumlah harus antara 1 sampai %d", max))
	}

	if (c.requirePrescription || med.RequiresPrescription) && !validation.NotBlank(c.draft.PrescriptionURL) {
		return c.fail(FailValidation, "Obat ini wajib melampirkan resep dokter")
	}
	return true
}

// Submit menyerahkan draft final ke kolaborator. Cuma boleh dari Review.
// Sukses -> wizard reset ke draft kosong di langkah awal.
// Gagal -> tetap di Review, draft utuh, error diteruskan apa adanya
// (tanpa retry otomatis) biar user bisa coba submit lagi.
func (c *Controller) Submit(ctx context.Context) error {
	if c.step != StepReview {
		return ErrNotAtReview
	}

	if err := c.submitter.SubmitRequest(ctx, c.draft); err != nil {
		c.failKind = FailSubmission
		c.failMsg = err.Error()
		return err
	}

	c.draft = Draft{}
	c.step = StepPersonalDetails
	c.clearFailure()
	return nil
}
