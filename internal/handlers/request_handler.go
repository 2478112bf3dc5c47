package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"medishare-backend/internal/config"
	"medishare-backend/internal/eligibility"
	"medishare-backend/internal/models"
	"medishare-backend/internal/wizard"
	"medishare-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

var errMedicineGone = errors.New("obat sudah tidak tersedia")

// dbSubmitter adalah kolaborator submit si wizard: terima draft final,
// simpan jadi MedicineRequest status PENDING. Record obatnya dicari lagi
// di sini (bukan dibawa dari validasi) supaya jeda validasi->submit
// tidak bawa data basi.
type dbSubmitter struct {
	recipientID uint64
	created     *models.MedicineRequest
}

func (s *dbSubmitter) SubmitRequest(ctx context.Context, draft wizard.Draft) error {
	var candidates []models.Medicine
	if err := config.DB.WithContext(ctx).
		Where("name = ?", draft.Selection.MedicineName).
		Find(&candidates).Error; err != nil {
		return err
	}

	medicine, ok := eligibility.FindOfferable(candidates, draft.Selection.MedicineName, time.Now())
	if !ok {
		return errMedicineGone
	}

	request := models.MedicineRequest{
		RecipientID:     s.recipientID,
		MedicineID:      medicine.ID,
		Name:            draft.Personal.Name,
		Email:           draft.Personal.Email,
		Phone:           draft.Personal.Phone,
		City:            draft.Personal.City,
		Address:         draft.Personal.Address,
		Quantity:        draft.Selection.Quantity,
		Reason:          draft.Reason,
		PrescriptionURL: draft.PrescriptionURL,
		Status:          models.StatusPending,
	}

	if err := config.DB.WithContext(ctx).Create(&request).Error; err != nil {
		return err
	}
	s.created = &request
	return nil
}

// CreateRequest menerima draft lengkap hasil wizard frontend.
// Server mainkan ulang wizard yang sama (step demi step) terhadap stok
// TERBARU dari DB — jangan percaya validasi frontend, obat bisa keburu
// habis selagi user ngisi form.
func CreateRequest(c *gin.Context) {
	recipientID, _ := c.Get("userID")

	var input models.CreateRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input permintaan tidak valid", err.Error())
		return
	}

	// Ambil stok terbaru buat re-check eligibility
	var medicines []models.Medicine
	if err := config.DB.Find(&medicines).Error; err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal mengambil data obat", nil)
		return
	}
	today := time.Now()

	// Rakit wizard dari input (prefill = pilihan obat dari frontend/deep-link)
	submitter := &dbSubmitter{recipientID: recipientID.(uint64)}
	ctrl := wizard.NewWithPrefill(submitter, input.MedicineName, input.Quantity)
	draft := ctrl.Draft()
	draft.Personal = wizard.PersonalDetails{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		City:    input.City,
		Address: input.Address,
	}
	draft.Reason = input.Reason
	draft.PrescriptionURL = input.PrescriptionURL

	// Jalankan langkah 1 & 2. Gagal di mana pun = tolak dengan pesan
	// step itu. Eligibility failure dibedakan (409) biar frontend nyuruh
	// pilih obat lain, bukan benerin field.
	for ctrl.Step() != wizard.StepReview {
		if ctrl.Advance(medicines, today) {
			continue
		}
		kind, msg := ctrl.Failure()
		if kind == wizard.FailEligibility {
			utils.APIResponse(c, http.StatusConflict, false, msg, nil)
		} else {
			utils.APIResponse(c, http.StatusBadRequest, false, msg, nil)
		}
		return
	}

	// Langkah Review = konfirmasi doang, langsung submit
	if err := ctrl.Submit(c.Request.Context()); err != nil {
		if errors.Is(err, errMedicineGone) {
			utils.APIResponse(c, http.StatusConflict, false, "Obat sudah tidak tersedia, silakan pilih obat lain", nil)
			return
		}
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal menyimpan permintaan", err.Error())
		return
	}

	utils.APIResponse(c, http.StatusCreated, true, "Permintaan Obat Terkirim! Menunggu review admin.", submitter.created)
}

// GetMyRequests riwayat permintaan milik penerima yang login
func GetMyRequests(c *gin.Context) {
	recipientID, _ := c.Get("userID")

	var requests []models.MedicineRequest
	config.DB.
		Preload("Medicine").
		Where("recipient_id = ?", recipientID).
		Order("created_at desc").
		Find(&requests)

	utils.APIResponse(c, http.StatusOK, true, "Riwayat Permintaan Saya", requests)
}

// GetRequestDetail detail satu permintaan (punya sendiri)
func GetRequestDetail(c *gin.Context) {
	recipientID, _ := c.Get("userID")
	requestID := c.Param("id")

	var request models.MedicineRequest
	err := config.DB.
		Preload("Medicine").
		Where("id = ? AND recipient_id = ?", requestID, recipientID).
		First(&request).Error

	if err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Permintaan tidak ditemukan", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Detail Permintaan", request)
}
