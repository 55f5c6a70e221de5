package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"mood-filter/internal/domain"
)

// Broadcaster informa a los demas componentes vivos de la extension que
// cambiaron flags o listas de un usuario.
type Broadcaster interface {
	Publish(ctx context.Context, userID string, changes domain.ChangeSet, snapshot domain.PreferenceSnapshot) error
}

// Message keeps the payload shape the extension's service worker handles:
// exactly one of ChangeLists or ChangeCategory is set.
type Message struct {
	UserID         string                   `json:"user_id"`
	ChangeLists    *domain.TierLists        `json:"changeLists,omitempty"`
	ChangeCategory map[domain.Category]bool `json:"changeCategory,omitempty"`
	Flags          []domain.FlagChange      `json:"flags,omitempty"`
}

// Messages convierte un change set en los mensajes a emitir: primero las
// listas y despues el mapa completo de flags.
func Messages(userID string, changes domain.ChangeSet, snapshot domain.PreferenceSnapshot) []Message {
	var out []Message
	if changes.Lists != nil {
		lists := changes.Lists.Clone()
		out = append(out, Message{UserID: userID, ChangeLists: &lists})
	}
	if len(changes.Flags) > 0 {
		flags := snapshot.Clone().Flags
		out = append(out, Message{
			UserID:         userID,
			ChangeCategory: flags,
			Flags:          append([]domain.FlagChange(nil), changes.Flags...),
		})
	}
	return out
}

type redisPublisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

type redisBroadcaster struct {
	client  redisPublisher
	prefix  string
	timeout time.Duration
}

// NewRedisBroadcaster publica en el canal prefix+userID.
func NewRedisBroadcaster(client *redis.Client, prefix string) Broadcaster {
	if client == nil {
		return nil
	}
	if prefix == "" {
		prefix = "prefs:"
	}
	return &redisBroadcaster{
		client:  client,
		prefix:  prefix,
		timeout: 500 * time.Millisecond,
	}
}

func (b *redisBroadcaster) Publish(ctx context.Context, userID string, changes domain.ChangeSet, snapshot domain.PreferenceSnapshot) error {
	msgs := Messages(userID, changes, snapshot)
	if len(msgs) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	channel := b.prefix + userID
	for _, m := range msgs {
		payload, err := json.Marshal(m)
		if err != nil {
			return fmt.Errorf("encode notification: %w", err)
		}
		if err := b.client.Publish(ctx, channel, payload).Err(); err != nil {
			return fmt.Errorf("publish to %s: %w", channel, err)
		}
	}
	return nil
}

type logBroadcaster struct {
	logger *zap.Logger
}

// NewLogBroadcaster solo registra los mensajes; se usa cuando no hay Redis.
func NewLogBroadcaster(logger *zap.Logger) Broadcaster {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &logBroadcaster{logger: logger}
}

func (b *logBroadcaster) Publish(_ context.Context, userID string, changes domain.ChangeSet, snapshot domain.PreferenceSnapshot) error {
	for _, m := range Messages(userID, changes, snapshot) {
		b.logger.Info("preference notification",
			zap.String("user_id", userID),
			zap.Bool("lists", m.ChangeLists != nil),
			zap.Int("flag_changes", len(m.Flags)),
		)
	}
	return nil
}
