package customer

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"shoply/internal/domain"
	tokenrepo "shoply/internal/repository/token"
)

type tokenMeta struct {
	CustomerID string
	Kind       string
	ExpiresAt  time.Time
}

type tokenManager struct {
	repo tokenrepo.Repository
}

func newTokenManager(repo tokenrepo.Repository) *tokenManager {
	return &tokenManager{
		repo: repo,
	}
}

func (m *tokenManager) Issue(ctx context.Context, customerID, kind string, ttl time.Duration) (string, error) {
	expiresAt := time.Now().Add(ttl)
	for i := 0; i < 5; i++ {
		token, err := randomToken()
		if err != nil {
			return "", err
		}
		err = m.repo.Create(ctx, tokenrepo.Token{
			Token:      token,
			CustomerID: customerID,
			Kind:       kind,
			ExpiresAt:  expiresAt,
		})
		if err == nil {
			return token, nil
		}
		if errors.Is(err, domain.ErrAlreadyExists) {
			continue
		}
		return "", err
	}
	return "", errors.New("token collision")
}

// Validate confirms the token exists, matches the expected kind, and has not
// expired. Expired tokens are deleted on sight.
func (m *tokenManager) Validate(ctx context.Context, token, kind string) (tokenMeta, bool) {
	t, err := m.repo.Get(ctx, token)
	if err != nil {
		return tokenMeta{}, false
	}
	if t.Kind != kind || t.CustomerID == "" {
		return tokenMeta{}, false
	}
	if time.Now().After(t.ExpiresAt) {
		_ = m.repo.Delete(ctx, token)
		return tokenMeta{}, false
	}
	return tokenMeta{
		CustomerID: t.CustomerID,
		Kind:       t.Kind,
		ExpiresAt:  t.ExpiresAt,
	}, true
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
