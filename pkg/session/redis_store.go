package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"

	"parth-agrotech/domain"
)

const keyPrefix = "parthagro.session."

type RedisConfig struct {
	Addr     string
	User     string
	Password string
	DB       int
}

type redisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and fails if the server does not answer a ping.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (SessionStore, *redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Username:    cfg.User,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
		ReadTimeout: 3 * time.Second,
	})
	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, nil, errors.Wrap(err, "can't ping redis")
	}
	return &redisStore{client: client}, client, nil
}

func sessionKey(id string) string { return keyPrefix + id }

func userKey(userID string) string { return keyPrefix + "user." + userID }

func (s *redisStore) Save(ctx context.Context, session domain.Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, sessionKey(session.ID), payload, ttl)
	pipe.SAdd(ctx, userKey(session.UserID), session.ID)
	pipe.Expire(ctx, userKey(session.UserID), ttl)
	_, err = pipe.Exec(ctx)
	return errors.Wrap(err, "could not save session")
}

func (s *redisStore) Get(ctx context.Context, id string) (domain.Session, error) {
	payload, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Session{}, ErrSessionNotFound
	}
	if err != nil {
		return domain.Session{}, errors.Wrap(err, "could not read session")
	}
	var session domain.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return domain.Session{}, errors.Wrap(err, "could not decode session")
	}
	return session, nil
}

func (s *redisStore) Delete(ctx context.Context, id string) error {
	return errors.Wrap(s.client.Del(ctx, sessionKey(id)).Err(), "could not delete session")
}

func (s *redisStore) DeleteByUser(ctx context.Context, userID string) error {
	ids, err := s.client.SMembers(ctx, userKey(userID)).Result()
	if err != nil {
		return errors.Wrap(err, "could not list user sessions")
	}
	keys := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		keys = append(keys, sessionKey(id))
	}
	keys = append(keys, userKey(userID))
	return errors.Wrap(s.client.Del(ctx, keys...).Err(), "could not delete user sessions")
}
