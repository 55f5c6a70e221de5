package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"mood-filter/internal/domain"
	"mood-filter/internal/repository"
)

var (
	ErrMoodServiceInvalidInput = errors.New("mood service invalid input")
	ErrRateLimited             = errors.New("rate limited")
	ErrHistoryUnavailable      = errors.New("mood history not configured")
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// MoodService puntua cuestionarios y guarda el historial del usuario.
type MoodService struct {
	scorer  MoodScorer
	repo    repository.MoodRepository
	limiter SubmissionRateLimiter
	logger  *zap.Logger
	now     func() time.Time
}

// NewMoodService acepta repo y limiter nil: sin repo no hay historial, sin
// limiter no hay limite.
func NewMoodService(scorer MoodScorer, repo repository.MoodRepository, limiter SubmissionRateLimiter, logger *zap.Logger) *MoodService {
	return &MoodService{
		scorer:  scorer,
		repo:    repo,
		limiter: limiter,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Score runs the questionnaire scorer for a user and stores the outcome.
// A storage failure is logged but does not discard the computed mood.
func (s *MoodService) Score(ctx context.Context, userID string, responses []domain.QuestionResponse) (MoodResult, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return MoodResult{}, ErrMoodServiceInvalidInput
	}
	if s.limiter != nil && !s.limiter.Allow(userID) {
		return MoodResult{}, ErrRateLimited
	}

	result, err := s.scorer.ScoreMood(responses)
	for _, w := range result.Warnings {
		if s.logger != nil {
			s.logger.Warn("questionnaire response adjusted", zap.String("user_id", userID), zap.Error(w))
		}
	}
	if err != nil {
		return result, err
	}

	if s.logger != nil {
		s.logger.Info("mood scored",
			zap.String("user_id", userID),
			zap.String("mood", string(result.Mood)),
			zap.Int("applied", result.Applied),
		)
	}

	if s.repo != nil {
		assessment := domain.MoodAssessment{
			ID:        uuid.NewString(),
			UserID:    userID,
			Mood:      result.Mood,
			Scores:    result.Scores,
			Responses: result.Applied,
			CreatedAt: s.now(),
		}
		if err := s.repo.Create(ctx, assessment); err != nil && s.logger != nil {
			s.logger.Error("persist mood assessment failed", zap.String("user_id", userID), zap.Error(err))
		}
	}
	return result, nil
}

// History devuelve las ultimas evaluaciones, la mas reciente primero.
func (s *MoodService) History(ctx context.Context, userID string, limit int) ([]domain.MoodAssessment, error) {
	if s.repo == nil {
		return nil, ErrHistoryUnavailable
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrMoodServiceInvalidInput
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	items, err := s.repo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list mood history: %w", err)
	}
	return items, nil
}
