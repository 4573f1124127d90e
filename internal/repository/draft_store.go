package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"karir-nusantara/internal/domain/cvquality"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrDraftStoreUnavailable = errors.New("cv draft store unavailable")

// DraftStore keeps one CV draft per user.
type DraftStore interface {
	Get(ctx context.Context, userID uuid.UUID) (cvquality.CV, error)
	Put(ctx context.Context, userID uuid.UUID, cv cvquality.CV) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

func draftKey(userID uuid.UUID) string {
	return "cvdraft:" + userID.String()
}

// RedisDraftStore persists drafts as JSON. Unlike the cache, a missing
// client is an error: drafts are user data.
type RedisDraftStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDraftStore(client *redis.Client, ttl time.Duration) *RedisDraftStore {
	return &RedisDraftStore{client: client, ttl: ttl}
}

func (s *RedisDraftStore) Get(ctx context.Context, userID uuid.UUID) (cvquality.CV, error) {
	if s == nil || s.client == nil {
		return cvquality.CV{}, ErrDraftStoreUnavailable
	}
	b, err := s.client.Get(ctx, draftKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return cvquality.CV{}, ErrDraftNotFound
		}
		return cvquality.CV{}, err
	}
	var cv cvquality.CV
	if err := json.Unmarshal(b, &cv); err != nil {
		return cvquality.CV{}, err
	}
	return cv, nil
}

func (s *RedisDraftStore) Put(ctx context.Context, userID uuid.UUID, cv cvquality.CV) error {
	if s == nil || s.client == nil {
		return ErrDraftStoreUnavailable
	}
	b, err := json.Marshal(cv)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, draftKey(userID), b, s.ttl).Err()
}

func (s *RedisDraftStore) Delete(ctx context.Context, userID uuid.UUID) error {
	if s == nil || s.client == nil {
		return ErrDraftStoreUnavailable
	}
	return s.client.Del(ctx, draftKey(userID)).Err()
}

// MemoryDraftStore is a process-local DraftStore.
type MemoryDraftStore struct {
	mu     sync.RWMutex
	drafts map[uuid.UUID][]byte
}

func NewMemoryDraftStore() *MemoryDraftStore {
	return &MemoryDraftStore{drafts: map[uuid.UUID][]byte{}}
}

func (s *MemoryDraftStore) Get(_ context.Context, userID uuid.UUID) (cvquality.CV, error) {
	s.mu.RLock()
	b, ok := s.drafts[userID]
	s.mu.RUnlock()
	if !ok {
		return cvquality.CV{}, ErrDraftNotFound
	}
	// Stored encoded so callers never share slices with the store.
	var cv cvquality.CV
	if err := json.Unmarshal(b, &cv); err != nil {
		return cvquality.CV{}, err
	}
	return cv, nil
}

func (s *MemoryDraftStore) Put(_ context.Context, userID uuid.UUID, cv cvquality.CV) error {
	b, err := json.Marshal(cv)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.drafts[userID] = b
	s.mu.Unlock()
	return nil
}

func (s *MemoryDraftStore) Delete(_ context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	delete(s.drafts, userID)
	s.mu.Unlock()
	return nil
}
