package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"

	"mood-filter/internal/domain"
)

type MoodRepository interface {
	Create(ctx context.Context, assessment domain.MoodAssessment) error
	ListByUser(ctx context.Context, userID string, limit int) ([]domain.MoodAssessment, error)
}

type PgMoodRepository struct {
	pool *pgxpool.Pool
}

func NewPgMoodRepository(pool *pgxpool.Pool) *PgMoodRepository {
	return &PgMoodRepository{pool: pool}
}

func (r *PgMoodRepository) Create(ctx context.Context, a domain.MoodAssessment) error {
	const query = `
		INSERT INTO mood_assessments (id, user_id, mood, anxiety, sadness, anger, happiness, responses, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.pool.Exec(ctx, query,
		a.ID,
		a.UserID,
		string(a.Mood),
		a.Scores.Anxiety,
		a.Scores.Sadness,
		a.Scores.Anger,
		a.Scores.Happiness,
		a.Responses,
		a.CreatedAt,
	)
	return err
}

func (r *PgMoodRepository) ListByUser(ctx context.Context, userID string, limit int) ([]domain.MoodAssessment, error) {
	const query = `
		SELECT id, user_id, mood, anxiety, sadness, anger, happiness, responses, created_at
		FROM mood_assessments
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.MoodAssessment
	for rows.Next() {
		var a domain.MoodAssessment
		var mood string
		if err := rows.Scan(
			&a.ID,
			&a.UserID,
			&mood,
			&a.Scores.Anxiety,
			&a.Scores.Sadness,
			&a.Scores.Anger,
			&a.Scores.Happiness,
			&a.Responses,
			&a.CreatedAt,
		); err != nil {
			return nil, err
		}
		a.Mood = domain.Mood(mood)
		out = append(out, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

type memoryMoodRepository struct {
	mu    sync.Mutex
	items map[string][]domain.MoodAssessment
}

// NewMemoryMoodRepository mantiene el historial en memoria (dev y tests).
func NewMemoryMoodRepository() MoodRepository {
	return &memoryMoodRepository{items: make(map[string][]domain.MoodAssessment)}
}

func (r *memoryMoodRepository) Create(_ context.Context, a domain.MoodAssessment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[a.UserID] = append(r.items[a.UserID], a)
	return nil
}

func (r *memoryMoodRepository) ListByUser(_ context.Context, userID string, limit int) ([]domain.MoodAssessment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := append([]domain.MoodAssessment(nil), r.items[userID]...)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}
