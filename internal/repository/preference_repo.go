package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mood-filter/internal/domain"
)

// ErrNotFound indica que el usuario todavia no guardo preferencias.
var ErrNotFound = errors.New("not found")

// Claves fijas con las que la extension guarda su estado.
const (
	KeyCategoryMap   = "categoryMap"
	KeyPrimaryList   = "primaryList"
	KeySecondaryList = "secondaryList"
	KeyAvoidList     = "avoidList"
)

type PreferenceRepository interface {
	Get(ctx context.Context, userID string) (domain.PreferenceSnapshot, error)
	Save(ctx context.Context, userID string, snapshot domain.PreferenceSnapshot) error
}

// preferenceRecord is the per-key JSON encoding shared by every backend.
type preferenceRecord map[string][]byte

func encodeSnapshot(s domain.PreferenceSnapshot) (preferenceRecord, error) {
	s = s.Clone()
	rec := make(preferenceRecord, 4)
	values := map[string]any{
		KeyCategoryMap:   s.Flags,
		KeyPrimaryList:   s.Favored,
		KeySecondaryList: s.Secondary,
		KeyAvoidList:     s.Avoided,
	}
	for key, v := range values {
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", key, err)
		}
		rec[key] = raw
	}
	return rec, nil
}

func decodeSnapshot(rec preferenceRecord) (domain.PreferenceSnapshot, error) {
	var s domain.PreferenceSnapshot
	targets := map[string]any{
		KeyCategoryMap:   &s.Flags,
		KeyPrimaryList:   &s.Favored,
		KeySecondaryList: &s.Secondary,
		KeyAvoidList:     &s.Avoided,
	}
	for key, target := range targets {
		raw, ok := rec[key]
		if !ok || len(raw) == 0 {
			continue
		}
		if err := json.Unmarshal(raw, target); err != nil {
			return domain.PreferenceSnapshot{}, fmt.Errorf("decode %s: %w", key, err)
		}
	}
	return s.Clone(), nil
}

type PgPreferenceRepository struct {
	pool *pgxpool.Pool
}

func NewPgPreferenceRepository(pool *pgxpool.Pool) *PgPreferenceRepository {
	return &PgPreferenceRepository{pool: pool}
}

func (r *PgPreferenceRepository) Get(ctx context.Context, userID string) (domain.PreferenceSnapshot, error) {
	const query = `
		SELECT category_map, primary_list, secondary_list, avoid_list
		FROM user_preferences
		WHERE user_id = $1
	`
	var categoryMap, primary, secondary, avoid []byte
	err := r.pool.QueryRow(ctx, query, userID).Scan(&categoryMap, &primary, &secondary, &avoid)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.PreferenceSnapshot{}, ErrNotFound
	}
	if err != nil {
		return domain.PreferenceSnapshot{}, err
	}
	return decodeSnapshot(preferenceRecord{
		KeyCategoryMap:   categoryMap,
		KeyPrimaryList:   primary,
		KeySecondaryList: secondary,
		KeyAvoidList:     avoid,
	})
}

func (r *PgPreferenceRepository) Save(ctx context.Context, userID string, snapshot domain.PreferenceSnapshot) error {
	const query = `
		INSERT INTO user_preferences (user_id, category_map, primary_list, secondary_list, avoid_list, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id)
		DO UPDATE SET
			category_map = EXCLUDED.category_map,
			primary_list = EXCLUDED.primary_list,
			secondary_list = EXCLUDED.secondary_list,
			avoid_list = EXCLUDED.avoid_list,
			updated_at = EXCLUDED.updated_at
	`
	rec, err := encodeSnapshot(snapshot)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, query,
		userID,
		string(rec[KeyCategoryMap]),
		string(rec[KeyPrimaryList]),
		string(rec[KeySecondaryList]),
		string(rec[KeyAvoidList]),
		time.Now().UTC(),
	)
	return err
}

type memoryPreferenceRepository struct {
	mu    sync.Mutex
	items map[string]preferenceRecord
}

// NewMemoryPreferenceRepository guarda preferencias en memoria del proceso.
func NewMemoryPreferenceRepository() PreferenceRepository {
	return &memoryPreferenceRepository{items: make(map[string]preferenceRecord)}
}

func (r *memoryPreferenceRepository) Get(_ context.Context, userID string) (domain.PreferenceSnapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.items[userID]
	if !ok {
		return domain.PreferenceSnapshot{}, ErrNotFound
	}
	return decodeSnapshot(rec)
}

func (r *memoryPreferenceRepository) Save(_ context.Context, userID string, snapshot domain.PreferenceSnapshot) error {
	rec, err := encodeSnapshot(snapshot)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[userID] = rec
	return nil
}
