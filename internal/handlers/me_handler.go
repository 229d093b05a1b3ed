package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vetbook/vet-scheduler/internal/audit"
	"github.com/vetbook/vet-scheduler/internal/httperr"
	"github.com/vetbook/vet-scheduler/internal/httpresp"
	"github.com/vetbook/vet-scheduler/internal/middleware"
	"github.com/vetbook/vet-scheduler/internal/models"
	"github.com/vetbook/vet-scheduler/internal/store"
)

type MeHandler struct {
	store *store.Store
	audit *audit.Dispatcher
}

func NewMeHandler(st *store.Store, audit *audit.Dispatcher) *MeHandler {
	return &MeHandler{store: st, audit: audit}
}

type UpdateProfileRequest struct {
	Name   *string `json:"name"`
	Phone  *string `json:"phone"`
	Avatar *string `json:"avatar"`

	PetSpecialization *[]string `json:"petSpecialization"`
	MedicalSpecialty  *[]string `json:"medicalSpecialty"`
	Languages         *[]string `json:"languages"`
	LicenseNumber     *string   `json:"licenseNumber"`
	ClinicName        *string   `json:"clinicName"`
	ClinicAddress     *string   `json:"clinicAddress"`
	Experience        *int      `json:"experience"`
	ConsultationFee   *float64  `json:"consultationFee"`

	DateOfBirth      *string       `json:"dateOfBirth"`
	Gender           *string       `json:"gender"`
	EmergencyContact *string       `json:"emergencyContact"`
	MedicalHistory   *[]string     `json:"medicalHistory"`
	Pets             *[]models.Pet `json:"pets"`
}

func (h *MeHandler) Get(c *gin.Context) {
	user, ok := h.store.CurrentUser()
	if !ok {
		httperr.Unauthorized(c, "not_authenticated", "No active session")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": sanitize(user)})
}

func (h *MeHandler) Update(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid profile payload")
		return
	}

	if req.Gender != nil && *req.Gender != "" && !models.IsValidGender(*req.Gender) {
		httperr.BadRequest(c, "invalid_gender", "Please select a valid gender")
		return
	}
	if req.Pets != nil {
		for _, p := range *req.Pets {
			if !models.IsValidSpecies(p.Species) {
				httperr.BadRequest(c, "invalid_species", "Please select a valid pet species")
				return
			}
		}
	}

	updated, err := h.store.UpdateProfile(store.ProfileUpdate{
		Name:              req.Name,
		Phone:             req.Phone,
		Avatar:            req.Avatar,
		PetSpecialization: req.PetSpecialization,
		MedicalSpecialty:  req.MedicalSpecialty,
		Languages:         req.Languages,
		LicenseNumber:     req.LicenseNumber,
		ClinicName:        req.ClinicName,
		ClinicAddress:     req.ClinicAddress,
		Experience:        req.Experience,
		ConsultationFee:   req.ConsultationFee,
		DateOfBirth:       req.DateOfBirth,
		Gender:            req.Gender,
		EmergencyContact:  req.EmergencyContact,
		MedicalHistory:    req.MedicalHistory,
		Pets:              req.Pets,
	})
	if err != nil {
		if httperr.IsBusiness(err, "not_authenticated") {
			httperr.Unauthorized(c, "not_authenticated", "No active session")
			return
		}
		httperr.NotFound(c, "user_not_found", "Account no longer exists")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   c.GetString(middleware.ContextUserID),
		Action:   "profile_updated",
		Entity:   "user",
		EntityID: updated.ID,
	})

	c.JSON(http.StatusOK, gin.H{"user": sanitize(updated)})
}

// Doctors serves the booking flow's doctor picker.
func (h *MeHandler) Doctors(c *gin.Context) {
	doctors := h.store.Doctors()
	for i := range doctors {
		doctors[i] = sanitize(doctors[i])
	}
	httpresp.List(c, doctors)
}
