package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mood-filter/internal/domain"
	"mood-filter/internal/service"
)

// MoodHandler mantiene dependencias para los endpoints del cuestionario.
type MoodHandler struct {
	logger  *zap.Logger
	moodSvc *service.MoodService
}

func NewMoodHandler(logger *zap.Logger, moodSvc *service.MoodService) *MoodHandler {
	return &MoodHandler{logger: logger, moodSvc: moodSvc}
}

type scoreMoodRequest struct {
	Responses []domain.QuestionResponse `json:"responses"`
}

type scoreMoodResponse struct {
	Mood     domain.Mood       `json:"mood"`
	Scores   domain.MoodScores `json:"scores"`
	Applied  int               `json:"applied"`
	Warnings []string          `json:"warnings"`
}

// Questions maneja GET /mood/questions.
func (h *MoodHandler) Questions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"questions": service.Questions()})
}

// Score maneja POST /mood/score.
func (h *MoodHandler) Score(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req scoreMoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid mood request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	res, err := h.moodSvc.Score(c.Request.Context(), userID, req.Responses)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyResponseSet):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "no usable responses"})
		case errors.Is(err, service.ErrRateLimited):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
		default:
			h.logger.Error("score mood failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not score mood"})
		}
		return
	}

	warnings := make([]string, 0, len(res.Warnings))
	for _, w := range res.Warnings {
		warnings = append(warnings, w.Error())
	}
	c.JSON(http.StatusOK, scoreMoodResponse{
		Mood:     res.Mood,
		Scores:   res.Scores,
		Applied:  res.Applied,
		Warnings: warnings,
	})
}

// History maneja GET /mood/history?limit=n.
func (h *MoodHandler) History(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}

	items, err := h.moodSvc.History(c.Request.Context(), userID, limit)
	if err != nil {
		if errors.Is(err, service.ErrHistoryUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "history not available"})
			return
		}
		h.logger.Error("mood history failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load history"})
		return
	}
	if items == nil {
		items = []domain.MoodAssessment{}
	}
	c.JSON(http.StatusOK, gin.H{"assessments": items})
}
