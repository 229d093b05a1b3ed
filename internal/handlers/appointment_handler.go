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
	usecase "github.com/vetbook/vet-scheduler/internal/usecase/appointment"
	"github.com/vetbook/vet-scheduler/internal/usecase/booking"
)

type AppointmentHandler struct {
	store     *store.Store
	audit     *audit.Dispatcher
	bookSlot  *booking.BookSlot
	setStatus *usecase.SetStatus
	list      *usecase.ListByFilter
}

func NewAppointmentHandler(
	st *store.Store,
	audit *audit.Dispatcher,
	bookSlot *booking.BookSlot,
	setStatus *usecase.SetStatus,
	list *usecase.ListByFilter,
) *AppointmentHandler {
	return &AppointmentHandler{
		store:     st,
		audit:     audit,
		bookSlot:  bookSlot,
		setStatus: setStatus,
		list:      list,
	}
}

// --------- Requests ---------

type CreateAppointmentRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Date        string  `json:"date" binding:"required"`
	Time        string  `json:"time" binding:"required"`
	DoctorID    string  `json:"doctorId"`
	DoctorName  string  `json:"doctorName"`
	ClientName  string  `json:"clientName"`
	ClientPhone string  `json:"clientPhone"`
	ClientEmail string  `json:"clientEmail"`
	ServiceType string  `json:"serviceType"`
	Duration    int     `json:"duration"`
	Price       float64 `json:"price"`
	Notes       string  `json:"notes"`
	PetID       string  `json:"petId"`
	PetName     string  `json:"petName"`
}

type BookSlotRequest struct {
	SlotID      string  `json:"slotId" binding:"required"`
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	ServiceType string  `json:"serviceType"`
	Notes       string  `json:"notes"`
	Price       float64 `json:"price"`
	PetID       string  `json:"petId"`
	PetName     string  `json:"petName"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type SetFiltersRequest struct {
	Status      string `json:"status"`
	ServiceType string `json:"serviceType"`
	DateRange   struct {
		Start string `json:"start"`
		End   string `json:"end"`
	} `json:"dateRange"`
}

// --------- Handlers ---------

// Create inserts an appointment directly, without going through a slot. The
// walk-in path: status, timestamps and ID are assigned by the store.
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Please fill in the appointment title, date and time")
		return
	}

	ap := h.store.AddAppointment(models.Appointment{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		DoctorID:    req.DoctorID,
		DoctorName:  req.DoctorName,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		ClientEmail: req.ClientEmail,
		ServiceType: req.ServiceType,
		Duration:    req.Duration,
		Price:       req.Price,
		Notes:       req.Notes,
		PetID:       req.PetID,
		PetName:     req.PetName,
	})

	h.audit.Dispatch(audit.Event{
		UserID:   c.GetString(middleware.ContextUserID),
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	c.JSON(http.StatusCreated, ap)
}

// Book consumes an available slot and creates the appointment for it.
func (h *AppointmentHandler) Book(c *gin.Context) {
	var req BookSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Please choose a slot and give the appointment a title")
		return
	}

	patient, ok := h.store.UserByID(c.GetString(middleware.ContextUserID))
	if !ok {
		httperr.Unauthorized(c, "not_authenticated", "No active session")
		return
	}

	ap, err := h.bookSlot.Execute(c.Request.Context(), booking.BookSlotInput{
		SlotID:      req.SlotID,
		Title:       req.Title,
		Description: req.Description,
		ServiceType: req.ServiceType,
		Notes:       req.Notes,
		Price:       req.Price,
		PetID:       req.PetID,
		PetName:     req.PetName,
		Patient:     patient,
	})
	if err != nil {
		switch httperr.BusinessCode(err) {
		case "slot_not_found":
			httperr.NotFound(c, "slot_not_found", "Time slot not found")
		case "slot_unavailable":
			httperr.Conflict(c, "slot_unavailable", "This slot has already been booked")
		default:
			httperr.Internal(c, "booking_failed", "Could not book the slot")
		}
		return
	}

	c.JSON(http.StatusCreated, ap)
}

func (h *AppointmentHandler) List(c *gin.Context) {
	viewerID := c.GetString(middleware.ContextUserID)
	status := c.DefaultQuery("status", "all")
	query := c.Query("q")

	httpresp.List(c, h.list.Execute(c.Request.Context(), viewerID, status, query))
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	ap, ok := h.store.AppointmentByID(c.Param("id"))
	if !ok {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found")
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) SetStatus(c *gin.Context) {
	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Please provide the new status")
		return
	}

	ap, err := h.setStatus.Execute(
		c.Request.Context(),
		c.GetString(middleware.ContextUserID),
		c.Param("id"),
		req.Status,
	)
	if err != nil {
		switch httperr.BusinessCode(err) {
		case "appointment_not_found":
			httperr.NotFound(c, "appointment_not_found", "Appointment not found")
		case "invalid_status":
			httperr.BadRequest(c, "invalid_status", "Unknown appointment status")
		case "invalid_state":
			httperr.Conflict(c, "invalid_state", "This status change is not allowed")
		default:
			httperr.Internal(c, "status_change_failed", "Could not change the appointment status")
		}
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if !h.store.DeleteAppointment(id) {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   c.GetString(middleware.ContextUserID),
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: id,
	})

	c.Status(http.StatusNoContent)
}

// --------- Read-side UI state ---------

func (h *AppointmentHandler) SetSelectedDate(c *gin.Context) {
	var req struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Please provide a date")
		return
	}

	h.store.SetSelectedDate(req.Date)
	c.Status(http.StatusNoContent)
}

func (h *AppointmentHandler) SetFilters(c *gin.Context) {
	var req SetFiltersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid filter payload")
		return
	}

	if req.Status == "" {
		req.Status = "all"
	}
	h.store.SetFilters(store.Filters{
		Status:      req.Status,
		ServiceType: req.ServiceType,
		DateRange: store.DateRange{
			Start: req.DateRange.Start,
			End:   req.DateRange.End,
		},
	})
	c.Status(http.StatusNoContent)
}

func (h *AppointmentHandler) ClearFilters(c *gin.Context) {
	h.store.ClearFilters()
	c.Status(http.StatusNoContent)
}
