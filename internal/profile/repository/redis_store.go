package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/AwwwRyan/coverletter-gen/internal/profile/domain"
)

const profileKeyPrefix = "profile:" // profile:{uid} -> JSON document

// RedisStore keeps each profile as a JSON string under profile:{uid}.
type RedisStore struct {
	client *redis.Client

	// beforeWrite runs between the watched read and MULTI. Tests only.
	beforeWrite func()
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, uid string) (domain.Profile, error) {
	doc, err := s.load(ctx, s.client, uid)
	if err != nil {
		return domain.Profile{}, err
	}
	if doc == nil {
		return domain.Profile{}, domain.ErrNotFound
	}
	return domain.FromDocument(doc)
}

func (s *RedisStore) Set(ctx context.Context, uid string, p domain.Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	if err := s.client.Set(ctx, s.profileKey(uid), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set profile: %w", err)
	}
	return nil
}

// Merge is a WATCH/MULTI read-modify-write. A concurrent write to the same
// key aborts it with domain.ErrConflict.
func (s *RedisStore) Merge(ctx context.Context, uid string, patch domain.Patch) error {
	key := s.profileKey(uid)

	txf := func(tx *redis.Tx) error {
		doc, err := s.load(ctx, tx, uid)
		if err != nil {
			return err
		}
		data, err := json.Marshal(domain.MergeDocument(doc, patch))
		if err != nil {
			return fmt.Errorf("failed to marshal profile: %w", err)
		}
		if s.beforeWrite != nil {
			s.beforeWrite()
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			return nil
		})
		return err
	}

	err := s.client.Watch(ctx, txf, key)
	if errors.Is(err, redis.TxFailedErr) {
		return domain.ErrConflict
	}
	if err != nil {
		return fmt.Errorf("failed to merge profile: %w", err)
	}
	return nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// load returns a nil document when the key does not exist.
func (s *RedisStore) load(ctx context.Context, c redis.Cmdable, uid string) (map[string]any, error) {
	data, err := c.Get(ctx, s.profileKey(uid)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return doc, nil
}

func (s *RedisStore) profileKey(uid string) string {
	return profileKeyPrefix + uid
}
