package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"arendaBack/internal/models"
)

// SessionRepository keeps refresh-token sessions in redis. The key expires
// together with the refresh token, so stale sessions clean themselves up.
type SessionRepository struct {
	Client *redis.Client
}

func sessionKey(token string) string {
	return "sessions:" + token
}

func userSessionKey(userID int) string {
	return fmt.Sprintf("sessions:user:%d", userID)
}

func (r *SessionRepository) SetSession(ctx context.Context, refreshToken string, session models.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session already expired at %s", session.ExpiresAt)
	}

	if err := r.Client.Set(ctx, sessionKey(refreshToken), data, ttl).Err(); err != nil {
		return err
	}
	// Index by user so logout can revoke without knowing the token.
	return r.Client.Set(ctx, userSessionKey(session.UserID), refreshToken, ttl).Err()
}

func (r *SessionRepository) GetSessionByToken(ctx context.Context, refreshToken string) (models.Session, error) {
	data, err := r.Client.Get(ctx, sessionKey(refreshToken)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return models.Session{}, models.ErrSessionNotFound
		}
		return models.Session{}, err
	}

	var session models.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return models.Session{}, err
	}
	return session, nil
}

func (r *SessionRepository) DeleteSessionForUser(ctx context.Context, userID int) error {
	token, err := r.Client.Get(ctx, userSessionKey(userID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil
		}
		return err
	}
	return r.Client.Del(ctx, sessionKey(token), userSessionKey(userID)).Err()
}
