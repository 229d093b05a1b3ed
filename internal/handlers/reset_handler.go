package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vetbook/vet-scheduler/internal/httperr"
	"github.com/vetbook/vet-scheduler/internal/reset"
	"github.com/vetbook/vet-scheduler/internal/snapshot"
	"github.com/vetbook/vet-scheduler/internal/store"
)

// ResetHandler exposes the developer reset utility over HTTP. The route is
// only registered when the dev reset flag is enabled.
type ResetHandler struct {
	store  *store.Store
	snap   snapshot.Store
	logger *zap.Logger
}

func NewResetHandler(st *store.Store, snap snapshot.Store, logger *zap.Logger) *ResetHandler {
	return &ResetHandler{store: st, snap: snap, logger: logger}
}

type ResetRequest struct {
	Mode string `json:"mode"`
}

func (h *ResetHandler) Reset(c *gin.Context) {
	var req ResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		req.Mode = string(reset.ModeQuick)
	}
	if req.Mode == "" {
		req.Mode = string(reset.ModeQuick)
	}

	mode := reset.Mode(req.Mode)
	if !reset.IsValidMode(mode) {
		httperr.BadRequest(c, "invalid_mode", "Reset mode must be quick, soft or nuclear")
		return
	}

	result := reset.Run(c.Request.Context(), mode, h.store, h.snap, h.logger)
	if !result.Success {
		c.JSON(http.StatusInternalServerError, result)
		return
	}
	c.JSON(http.StatusOK, result)
}
