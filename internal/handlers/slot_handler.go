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

type SlotHandler struct {
	store *store.Store
	audit *audit.Dispatcher
}

func NewSlotHandler(st *store.Store, audit *audit.Dispatcher) *SlotHandler {
	return &SlotHandler{store: st, audit: audit}
}

type CreateSlotRequest struct {
	Date          string   `json:"date" binding:"required"`
	StartTime     string   `json:"startTime" binding:"required"`
	EndTime       string   `json:"endTime" binding:"required"`
	Duration      int      `json:"duration" binding:"required,gt=0"`
	IsRecurring   bool     `json:"isRecurring"`
	RecurringDays []string `json:"recurringDays"`
}

type UpdateSlotRequest struct {
	Date          *string   `json:"date"`
	StartTime     *string   `json:"startTime"`
	EndTime       *string   `json:"endTime"`
	Duration      *int      `json:"duration"`
	IsAvailable   *bool     `json:"isAvailable"`
	IsRecurring   *bool     `json:"isRecurring"`
	RecurringDays *[]string `json:"recurringDays"`
}

func (h *SlotHandler) Create(c *gin.Context) {
	var req CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Please fill in the slot date, times and duration")
		return
	}

	slot, ok := h.store.AddTimeSlot(models.TimeSlot{
		Date:          req.Date,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Duration:      req.Duration,
		IsRecurring:   req.IsRecurring,
		RecurringDays: req.RecurringDays,
	})
	if !ok {
		httperr.Forbidden(c, "doctor_session_required", "Only a signed-in doctor can publish availability")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   c.GetString(middleware.ContextUserID),
		Action:   "slot_created",
		Entity:   "time_slot",
		EntityID: slot.ID,
	})

	c.JSON(http.StatusCreated, slot)
}

func (h *SlotHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid slot payload")
		return
	}

	slot, found := h.store.SlotByID(id)
	if !found {
		httperr.NotFound(c, "slot_not_found", "Time slot not found")
		return
	}

	if req.Date != nil {
		slot.Date = *req.Date
	}
	if req.StartTime != nil {
		slot.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		slot.EndTime = *req.EndTime
	}
	if req.Duration != nil {
		slot.Duration = *req.Duration
	}
	if req.IsAvailable != nil {
		slot.IsAvailable = *req.IsAvailable
	}
	if req.IsRecurring != nil {
		slot.IsRecurring = *req.IsRecurring
	}
	if req.RecurringDays != nil {
		slot.RecurringDays = *req.RecurringDays
	}

	if !h.store.UpdateTimeSlot(slot) {
		httperr.NotFound(c, "slot_not_found", "Time slot not found")
		return
	}

	c.JSON(http.StatusOK, slot)
}

func (h *SlotHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if !h.store.DeleteTimeSlot(id) {
		httperr.NotFound(c, "slot_not_found", "Time slot not found")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   c.GetString(middleware.ContextUserID),
		Action:   "slot_deleted",
		Entity:   "time_slot",
		EntityID: id,
	})

	c.Status(http.StatusNoContent)
}

// ListAvailable serves the booking screen: a doctor's open slots, in the
// order they were published.
func (h *SlotHandler) ListAvailable(c *gin.Context) {
	doctorID := c.Query("doctorId")
	if doctorID == "" {
		httperr.BadRequest(c, "missing_doctor_id", "Please choose a doctor first")
		return
	}
	httpresp.List(c, h.store.AvailableSlots(doctorID))
}

// ListMine serves the signed-in doctor's schedule view, booked slots included.
func (h *SlotHandler) ListMine(c *gin.Context) {
	doctorID := c.GetString(middleware.ContextUserID)
	httpresp.List(c, h.store.DoctorSlots(doctorID))
}
