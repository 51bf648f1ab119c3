package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/arakitakashi/homework-coach-robo-sub000/internal/model"
)

const sessionKeyPrefix = "coach:session:"

// sessionTTL matches the session token lifetime; idle sessions expire
// with their tokens.
const sessionTTL = 24 * time.Hour

// RedisStore is the remote-backed session store variant. Semantics are
// identical to MemoryStore; values are JSON with a TTL.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a session store on the given Redis client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Create(ctx context.Context, problem string, grade int, characterType string) (*model.DialogueContext, error) {
	if err := model.ValidateGrade(grade); err != nil {
		return nil, err
	}
	dlg := model.NewDialogueContext(uuid.New().String(), problem, grade)
	dlg.CharacterType = characterType

	if err := s.set(ctx, dlg); err != nil {
		return nil, err
	}
	return dlg, nil
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (*model.DialogueContext, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var dlg model.DialogueContext
	if err := json.Unmarshal([]byte(data), &dlg); err != nil {
		return nil, err
	}
	return &dlg, nil
}

func (s *RedisStore) Update(ctx context.Context, dlg *model.DialogueContext) error {
	// No create-on-update: the key must already exist. The check and the
	// write are not atomic; concurrent updates are last-write-wins.
	exists, err := s.client.Exists(ctx, sessionKeyPrefix+dlg.SessionID).Result()
	if err != nil {
		return err
	}
	if exists == 0 {
		return ErrSessionNotFound
	}
	return s.set(ctx, dlg)
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	deleted, err := s.client.Del(ctx, sessionKeyPrefix+sessionID).Result()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (s *RedisStore) CreatedAt(ctx context.Context, sessionID string) (time.Time, error) {
	dlg, err := s.Get(ctx, sessionID)
	if err != nil {
		return time.Time{}, err
	}
	return dlg.CreatedAt, nil
}

func (s *RedisStore) set(ctx context.Context, dlg *model.DialogueContext) error {
	data, err := json.Marshal(dlg)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKeyPrefix+dlg.SessionID, data, sessionTTL).Err()
}
