package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vetbook/vet-scheduler/internal/httperr"
	"github.com/vetbook/vet-scheduler/internal/httpresp"
	"github.com/vetbook/vet-scheduler/internal/middleware"
	"github.com/vetbook/vet-scheduler/internal/store"
)

type ChatHandler struct {
	store *store.Store
}

func NewChatHandler(st *store.Store) *ChatHandler {
	return &ChatHandler{store: st}
}

type SendMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

func (h *ChatHandler) Send(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Message text is required")
		return
	}

	sender, ok := h.store.UserByID(c.GetString(middleware.ContextUserID))
	if !ok {
		httperr.Unauthorized(c, "not_authenticated", "No active session")
		return
	}

	msg, err := h.store.SendMessage(c.Param("id"), sender.ID, sender.Name, sender.Role, req.Message)
	if err != nil {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found")
		return
	}

	c.JSON(http.StatusCreated, msg)
}

// List returns the appointment's thread, oldest first.
func (h *ChatHandler) List(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.store.AppointmentByID(id); !ok {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found")
		return
	}
	httpresp.List(c, h.store.MessagesFor(id))
}

// MarkRead flips every message from the other party to read and reports how
// many were affected.
func (h *ChatHandler) MarkRead(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.store.AppointmentByID(id); !ok {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found")
		return
	}

	marked := h.store.MarkMessagesRead(id, c.GetString(middleware.ContextUserID))
	c.JSON(http.StatusOK, gin.H{"marked": marked})
}

func (h *ChatHandler) Unread(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.store.AppointmentByID(id); !ok {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found")
		return
	}

	count := h.store.UnreadCount(id, c.GetString(middleware.ContextUserID))
	c.JSON(http.StatusOK, gin.H{"unreadCount": count})
}

// ClearAll wipes every thread. Chat messages are otherwise never deleted.
func (h *ChatHandler) ClearAll(c *gin.Context) {
	h.store.ClearAllMessages()
	c.Status(http.StatusNoContent)
}
