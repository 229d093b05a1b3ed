package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/vetbook/vet-scheduler/internal/audit"
	"github.com/vetbook/vet-scheduler/internal/clock"
	"github.com/vetbook/vet-scheduler/internal/config"
	"github.com/vetbook/vet-scheduler/internal/httperr"
	"github.com/vetbook/vet-scheduler/internal/middleware"
	"github.com/vetbook/vet-scheduler/internal/models"
	"github.com/vetbook/vet-scheduler/internal/store"
	"github.com/vetbook/vet-scheduler/internal/validators"
)

type AuthHandler struct {
	store  *store.Store
	audit  *audit.Dispatcher
	config *config.Config
}

func NewAuthHandler(st *store.Store, audit *audit.Dispatcher, cfg *config.Config) *AuthHandler {
	return &AuthHandler{store: st, audit: audit, config: cfg}
}

// --------- Requests ---------

type PetRequest struct {
	Name           string   `json:"name" binding:"required"`
	Species        string   `json:"species" binding:"required"`
	Breed          string   `json:"breed"`
	Age            int      `json:"age"`
	Weight         float64  `json:"weight"`
	MedicalHistory []string `json:"medicalHistory"`
	Allergies      []string `json:"allergies"`
}

type SignupRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Phone           string `json:"phone"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
	Role            string `json:"role" binding:"required,oneof=doctor patient"`

	// Doctor fields
	PetSpecialization []string `json:"petSpecialization"`
	MedicalSpecialty  []string `json:"medicalSpecialty"`
	Languages         []string `json:"languages"`
	LicenseNumber     string   `json:"licenseNumber"`
	ClinicName        string   `json:"clinicName"`
	ClinicAddress     string   `json:"clinicAddress"`
	Experience        int      `json:"experience"`
	ConsultationFee   float64  `json:"consultationFee"`

	// Patient fields
	DateOfBirth      string       `json:"dateOfBirth"`
	Gender           string       `json:"gender"`
	EmergencyContact string       `json:"emergencyContact"`
	MedicalHistory   []string     `json:"medicalHistory"`
	Pets             []PetRequest `json:"pets"`
}

type SigninRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Please fill in all required fields")
		return
	}

	if !validators.IsEmailValid(req.Email) {
		httperr.BadRequest(c, "invalid_email", "Please enter a valid email address")
		return
	}
	if msg := validators.CheckPassword(req.Password, req.ConfirmPassword); msg != "" {
		httperr.BadRequest(c, "invalid_password", msg)
		return
	}
	if req.Gender != "" && !models.IsValidGender(req.Gender) {
		httperr.BadRequest(c, "invalid_gender", "Please select a valid gender")
		return
	}

	email := validators.NormalizeEmail(req.Email)

	// Conflict is surfaced here; the registry itself stays permissive.
	if h.store.EmailRegistered(email) {
		httperr.Conflict(c, "email_already_registered", "An account with this email already exists")
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    email,
		Phone:    req.Phone,
		Password: req.Password,
		Role:     models.Role(req.Role),
	}

	switch user.Role {
	case models.RoleDoctor:
		user.PetSpecialization = req.PetSpecialization
		user.MedicalSpecialty = req.MedicalSpecialty
		user.Languages = req.Languages
		user.LicenseNumber = req.LicenseNumber
		user.ClinicName = req.ClinicName
		user.ClinicAddress = req.ClinicAddress
		user.Experience = req.Experience
		user.ConsultationFee = req.ConsultationFee
	case models.RolePatient:
		user.DateOfBirth = req.DateOfBirth
		user.Gender = req.Gender
		user.EmergencyContact = req.EmergencyContact
		user.MedicalHistory = req.MedicalHistory
		for _, p := range req.Pets {
			if !models.IsValidSpecies(p.Species) {
				httperr.BadRequest(c, "invalid_species", "Please select a valid pet species")
				return
			}
			user.Pets = append(user.Pets, models.Pet{
				ID:             clock.NewID(time.Now()),
				Name:           p.Name,
				Species:        p.Species,
				Breed:          p.Breed,
				Age:            p.Age,
				Weight:         p.Weight,
				MedicalHistory: p.MedicalHistory,
				Allergies:      p.Allergies,
			})
		}
	}

	created, _, err := h.store.SignUp(user)
	if err != nil {
		httperr.Internal(c, "signup_failed", "Could not create the account")
		return
	}

	token, err := h.generateToken(&created)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not generate the session token")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   created.ID,
		Action:   "user_registered",
		Entity:   "user",
		EntityID: created.ID,
		Metadata: map[string]string{"role": string(created.Role)},
	})

	c.JSON(http.StatusCreated, gin.H{
		"user":  sanitize(created),
		"token": token,
	})
}

func (h *AuthHandler) Signin(c *gin.Context) {
	var req SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Please enter your email and password")
		return
	}

	user, _, err := h.store.Authenticate(req.Email, req.Password)
	if err != nil {
		// One generic message, whatever the cause.
		httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not generate the session token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  sanitize(user),
		"token": token,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	h.store.Logout()

	h.audit.Dispatch(audit.Event{
		UserID: userID,
		Action: "user_logged_out",
		Entity: "user", EntityID: userID,
	})

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": string(user.Role),
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}

// sanitize strips the plaintext password from API responses. It stays in the
// store (that is the registry's contract) but never goes over the wire.
func sanitize(u models.User) models.User {
	u.Password = ""
	return u
}
