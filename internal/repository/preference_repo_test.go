package repository

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"mood-filter/internal/domain"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func sampleSnapshot() domain.PreferenceSnapshot {
	s := domain.DefaultPreferenceSnapshot()
	s.Flags[domain.CategoryMusic] = true
	return s
}

func TestPreferenceRepositories_RoundTrip(t *testing.T) {
	_, client := newTestRedis(t)
	repos := map[string]PreferenceRepository{
		"memory": NewMemoryPreferenceRepository(),
		"redis":  NewRedisPreferenceRepository(client),
	}

	for name, repo := range repos {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			if _, err := repo.Get(ctx, "u1"); !errors.Is(err, ErrNotFound) {
				t.Fatalf("expected ErrNotFound before save, got %v", err)
			}

			want := sampleSnapshot()
			if err := repo.Save(ctx, "u1", want); err != nil {
				t.Fatalf("save: %v", err)
			}
			got, err := repo.Get(ctx, "u1")
			if err != nil {
				t.Fatalf("get: %v", err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("expected %+v, got %+v", want, got)
			}

			if _, err := repo.Get(ctx, "u2"); !errors.Is(err, ErrNotFound) {
				t.Fatalf("expected users to be isolated, got %v", err)
			}
		})
	}
}

func TestMemoryPreferenceRepository_StoresCopies(t *testing.T) {
	repo := NewMemoryPreferenceRepository()
	ctx := context.Background()
	s := sampleSnapshot()
	if err := repo.Save(ctx, "u1", s); err != nil {
		t.Fatalf("save: %v", err)
	}
	s.Flags[domain.CategoryNews] = true
	s.Favored[0] = domain.CategorySports

	got, err := repo.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Flags[domain.CategoryNews] || got.Favored[0] != domain.CategoryAcademic {
		t.Fatalf("stored snapshot aliases caller state: %+v", got)
	}
}

func TestRedisPreferenceRepository_UsesStorageKeys(t *testing.T) {
	mr, client := newTestRedis(t)
	repo := NewRedisPreferenceRepository(client)
	if err := repo.Save(context.Background(), "u1", domain.DefaultPreferenceSnapshot()); err != nil {
		t.Fatalf("save: %v", err)
	}

	for _, field := range []string{KeyCategoryMap, KeyPrimaryList, KeySecondaryList, KeyAvoidList} {
		if v := mr.HGet("prefs:user:u1", field); v == "" {
			t.Fatalf("expected hash field %s to be set", field)
		}
	}
	if got := mr.HGet("prefs:user:u1", KeyAvoidList); got != `["Politics"]` {
		t.Fatalf("unexpected avoid list encoding %q", got)
	}
}

func TestRedisPreferenceRepository_PropagatesErrors(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	repo := NewRedisPreferenceRepository(client)
	mr.Close()

	if _, err := repo.Get(context.Background(), "u1"); err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("expected connection error, got %v", err)
	}
}

func TestRedisPreferenceRepository_NilClient(t *testing.T) {
	if repo := NewRedisPreferenceRepository(nil); repo != nil {
		t.Fatalf("expected nil repository for nil client")
	}
}

func TestMemoryMoodRepository_ListNewestFirst(t *testing.T) {
	repo := NewMemoryMoodRepository()
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, mood := range []domain.Mood{domain.MoodAnxiety, domain.MoodAnger, domain.MoodHappiness} {
		err := repo.Create(ctx, domain.MoodAssessment{
			ID:        string(mood),
			UserID:    "u1",
			Mood:      mood,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	if err := repo.Create(ctx, domain.MoodAssessment{ID: "other", UserID: "u2", CreatedAt: base}); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.ListByUser(ctx, "u1", 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}
	if got[0].Mood != domain.MoodHappiness || got[1].Mood != domain.MoodAnger {
		t.Fatalf("expected newest first, got %v, %v", got[0].Mood, got[1].Mood)
	}
}
