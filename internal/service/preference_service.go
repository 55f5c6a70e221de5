package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"mood-filter/internal/domain"
	"mood-filter/internal/notify"
	"mood-filter/internal/repository"
)

var (
	ErrPreferenceServiceNotConfigured = errors.New("preference service not configured")
	ErrPreferenceInvalidInput         = errors.New("preference service invalid input")
)

// PreferenceService carga, reconcilia, guarda y notifica las preferencias de
// categorias de cada usuario.
type PreferenceService struct {
	repo        repository.PreferenceRepository
	reconciler  PreferenceReconciler
	broadcaster notify.Broadcaster
	logger      *zap.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewPreferenceService(repo repository.PreferenceRepository, reconciler PreferenceReconciler, broadcaster notify.Broadcaster, logger *zap.Logger) *PreferenceService {
	return &PreferenceService{
		repo:        repo,
		reconciler:  reconciler,
		broadcaster: broadcaster,
		logger:      logger,
		locks:       make(map[string]*sync.Mutex),
	}
}

// Get returns the stored snapshot or the install defaults for a new user.
func (s *PreferenceService) Get(ctx context.Context, userID string) (domain.PreferenceSnapshot, error) {
	if err := s.ready(); err != nil {
		return domain.PreferenceSnapshot{}, err
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return domain.PreferenceSnapshot{}, ErrPreferenceInvalidInput
	}
	return s.load(ctx, userID)
}

// UpdateTiers reconcilia las listas propuestas contra el estado guardado.
func (s *PreferenceService) UpdateTiers(ctx context.Context, userID string, proposed domain.TierLists) (ReconcileResult, error) {
	return s.apply(ctx, userID, func(prev domain.PreferenceSnapshot) (ReconcileResult, error) {
		return s.reconciler.Reconcile(prev, proposed)
	})
}

// Toggle enciende o apaga una categoria sin tocar las listas.
func (s *PreferenceService) Toggle(ctx context.Context, userID string, category domain.Category) (ReconcileResult, error) {
	return s.apply(ctx, userID, func(prev domain.PreferenceSnapshot) (ReconcileResult, error) {
		return s.reconciler.Toggle(prev, category)
	})
}

func (s *PreferenceService) apply(ctx context.Context, userID string, step func(domain.PreferenceSnapshot) (ReconcileResult, error)) (ReconcileResult, error) {
	if err := s.ready(); err != nil {
		return ReconcileResult{}, err
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ReconcileResult{}, ErrPreferenceInvalidInput
	}

	// One writer per user; the read-modify-write below is not atomic in any backend.
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	prev, err := s.load(ctx, userID)
	if err != nil {
		return ReconcileResult{}, err
	}
	res, err := step(prev)
	if err != nil {
		return ReconcileResult{}, err
	}
	if res.Changes.IsEmpty() {
		return res, nil
	}
	if err := s.repo.Save(ctx, userID, res.Snapshot); err != nil {
		return ReconcileResult{}, fmt.Errorf("save preferences: %w", err)
	}

	if s.broadcaster != nil {
		if err := s.broadcaster.Publish(ctx, userID, res.Changes, res.Snapshot); err != nil && s.logger != nil {
			s.logger.Warn("preference notification failed", zap.String("user_id", userID), zap.Error(err))
		}
	}
	if s.logger != nil {
		s.logger.Info("preferences updated",
			zap.String("user_id", userID),
			zap.Int("flag_changes", len(res.Changes.Flags)),
			zap.Bool("lists_changed", res.Changes.Lists != nil),
		)
	}
	return res, nil
}

func (s *PreferenceService) load(ctx context.Context, userID string) (domain.PreferenceSnapshot, error) {
	snap, err := s.repo.Get(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.DefaultPreferenceSnapshot(), nil
	}
	if err != nil {
		return domain.PreferenceSnapshot{}, fmt.Errorf("load preferences: %w", err)
	}
	return snap, nil
}

func (s *PreferenceService) ready() error {
	if s == nil || s.repo == nil {
		return ErrPreferenceServiceNotConfigured
	}
	return nil
}

func (s *PreferenceService) userLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[userID] = l
	}
	return l
}
