package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"quizsheet/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sessionKey = "quizsheet:quiz:session:user1"

func TestSessionStore_Put(t *testing.T) {
	sess := domain.StartSession([]int{2, 0})
	require.NoError(t, sess.Submit("1"))

	var gotKey, gotValue string
	var gotTTL time.Duration
	mockCache := &MockCache{
		SetFunc: func(ctx context.Context, key string, value string, expiration time.Duration) error {
			gotKey, gotValue, gotTTL = key, value, expiration
			return nil
		},
	}

	store := NewSessionStore(mockCache, 2*time.Hour)
	require.NoError(t, store.Put(context.Background(), "user1", sess))

	assert.Equal(t, sessionKey, gotKey)
	assert.Equal(t, 2*time.Hour, gotTTL)

	var stored domain.QuizSession
	require.NoError(t, json.Unmarshal([]byte(gotValue), &stored))
	assert.Equal(t, *sess, stored)
}

func TestSessionStore_PutNil(t *testing.T) {
	store := NewSessionStore(&MockCache{}, time.Hour)
	err := store.Put(context.Background(), "user1", nil)
	assertServiceErrCode(t, err, domain.CodeInvalidInput)
}

func TestSessionStore_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Hit", func(t *testing.T) {
		sess := domain.StartSession([]int{1, 3, 0})
		raw, err := json.Marshal(sess)
		require.NoError(t, err)

		mockCache := &MockCache{
			GetFunc: func(ctx context.Context, key string) (string, error) {
				assert.Equal(t, sessionKey, key)
				return string(raw), nil
			},
		}

		store := NewSessionStore(mockCache, time.Hour)
		got, err := store.Get(ctx, "user1")
		require.NoError(t, err)
		assert.Equal(t, sess, got)
		assert.Equal(t, domain.SessionInProgress, got.State())
	})

	t.Run("Miss", func(t *testing.T) {
		mockCache := &MockCache{
			GetFunc: func(ctx context.Context, key string) (string, error) {
				return "", domain.ErrCacheMiss
			},
		}

		store := NewSessionStore(mockCache, time.Hour)
		_, err := store.Get(ctx, "user1")
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("BackendError", func(t *testing.T) {
		mockCache := &MockCache{
			GetFunc: func(ctx context.Context, key string) (string, error) {
				return "", errors.New("connection refused")
			},
		}

		store := NewSessionStore(mockCache, time.Hour)
		_, err := store.Get(ctx, "user1")
		assertServiceErrCode(t, err, domain.CodeInternal)
	})

	t.Run("CorruptPayload", func(t *testing.T) {
		mockCache := &MockCache{
			GetFunc: func(ctx context.Context, key string) (string, error) {
				return "{not json", nil
			},
		}

		store := NewSessionStore(mockCache, time.Hour)
		_, err := store.Get(ctx, "user1")
		assertServiceErrCode(t, err, domain.CodeInternal)
	})
}

func TestSessionStore_Delete(t *testing.T) {
	var deletedKey string
	mockCache := &MockCache{
		DeleteFunc: func(ctx context.Context, key string) error {
			deletedKey = key
			return nil
		},
	}

	store := NewSessionStore(mockCache, time.Hour)
	require.NoError(t, store.Delete(context.Background(), "user1"))
	assert.Equal(t, sessionKey, deletedKey)
}
