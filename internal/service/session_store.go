package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"quizsheet/internal/cache"
	"quizsheet/internal/domain"
	"quizsheet/internal/logger"

	"go.uber.org/zap"
)

// ErrSessionNotFound is returned when no quiz session is stored for a user.
var ErrSessionNotFound = errors.New("quiz session not found")

// SessionStore persists per-user quiz attempt state between requests.
// Sessions are keyed by user ID: one attempt per user at a time.
type SessionStore interface {
	Put(ctx context.Context, userID string, sess *domain.QuizSession) error
	Get(ctx context.Context, userID string) (*domain.QuizSession, error)
	Delete(ctx context.Context, userID string) error
}

// cacheSessionStore implements SessionStore on top of a generic cache.
type cacheSessionStore struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewSessionStore creates a cache-backed SessionStore. The TTL bounds how
// long an abandoned attempt lingers before it silently expires.
func NewSessionStore(cache domain.Cache, ttl time.Duration) SessionStore {
	return &cacheSessionStore{cache: cache, ttl: ttl}
}

func (s *cacheSessionStore) generateKey(userID string) string {
	return cache.GenerateCacheKey("quiz", "session", userID)
}

// Put stores the session state, resetting its TTL.
func (s *cacheSessionStore) Put(ctx context.Context, userID string, sess *domain.QuizSession) error {
	if sess == nil {
		return domain.NewInvalidInputError("cannot store nil session")
	}

	key := s.generateKey(userID)
	dataBytes, err := json.Marshal(sess)
	if err != nil {
		return domain.NewInternalError("failed to marshal quiz session", err)
	}

	if err := s.cache.Set(ctx, key, string(dataBytes), s.ttl); err != nil {
		logger.Get().Error("Failed to store quiz session", zap.Error(err), zap.String("key", key))
		return domain.NewInternalError(fmt.Sprintf("failed to store quiz session for key %s", key), err)
	}
	logger.Get().Debug("Stored quiz session", zap.String("key", key), zap.Duration("ttl", s.ttl))
	return nil
}

// Get retrieves the session state, returning ErrSessionNotFound when the
// user has no stored attempt (never started, expired, or cleared).
func (s *cacheSessionStore) Get(ctx context.Context, userID string) (*domain.QuizSession, error) {
	key := s.generateKey(userID)
	dataString, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, ErrSessionNotFound
		}
		logger.Get().Error("Failed to get quiz session", zap.Error(err), zap.String("key", key))
		return nil, domain.NewInternalError(fmt.Sprintf("failed to get quiz session for key %s", key), err)
	}

	var sess domain.QuizSession
	if err := json.Unmarshal([]byte(dataString), &sess); err != nil {
		return nil, domain.NewInternalError("failed to unmarshal quiz session", err)
	}
	return &sess, nil
}

// Delete clears the stored session so the next quiz access starts fresh.
func (s *cacheSessionStore) Delete(ctx context.Context, userID string) error {
	key := s.generateKey(userID)
	if err := s.cache.Delete(ctx, key); err != nil {
		logger.Get().Error("Failed to delete quiz session", zap.Error(err), zap.String("key", key))
		return domain.NewInternalError(fmt.Sprintf("failed to delete quiz session for key %s", key), err)
	}
	return nil
}
