package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mood-filter/internal/domain"
	"mood-filter/internal/service"
)

// PreferenceHandler mantiene dependencias para los endpoints de preferencias.
type PreferenceHandler struct {
	logger  *zap.Logger
	prefSvc *service.PreferenceService
}

func NewPreferenceHandler(logger *zap.Logger, prefSvc *service.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{logger: logger, prefSvc: prefSvc}
}

type updateTiersRequest struct {
	PrimaryList   []domain.Category `json:"primaryList" binding:"omitempty,dive,category"`
	SecondaryList []domain.Category `json:"secondaryList" binding:"omitempty,dive,category"`
	AvoidList     []domain.Category `json:"avoidList" binding:"omitempty,dive,category"`
}

type toggleRequest struct {
	Category domain.Category `json:"category" binding:"required,category"`
}

// Get maneja GET /preferences.
func (h *PreferenceHandler) Get(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	snap, err := h.prefSvc.Get(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, "get preferences failed", err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// UpdateTiers maneja PUT /preferences.
func (h *PreferenceHandler) UpdateTiers(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req updateTiersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid preferences request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	res, err := h.prefSvc.UpdateTiers(c.Request.Context(), userID, domain.TierLists{
		Favored:   req.PrimaryList,
		Secondary: req.SecondaryList,
		Avoided:   req.AvoidList,
	})
	if err != nil {
		h.writeError(c, "update preferences failed", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Toggle maneja POST /preferences/toggle.
func (h *PreferenceHandler) Toggle(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid toggle request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	res, err := h.prefSvc.Toggle(c.Request.Context(), userID, req.Category)
	if err != nil {
		h.writeError(c, "toggle preference failed", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *PreferenceHandler) writeError(c *gin.Context, msg string, err error) {
	switch {
	case errors.Is(err, domain.ErrTierConflict), errors.Is(err, domain.ErrDuplicateCategory):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrUnknownCategory):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrPreferenceServiceNotConfigured):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "preferences not available"})
	default:
		h.logger.Error(msg, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not process preferences"})
	}
}
