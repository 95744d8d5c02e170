package jwt

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"smartpill/internal/ports/auth"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrNotConfigured = errors.New("jwt manager not configured")
	ErrTokenEmpty    = errors.New("token is empty")
	ErrInvalidToken  = errors.New("invalid token")
)

const DefaultTTL = time.Hour

// tokenClaims: sub = id de usuario (string, como manda RFC 7519), email opcional.
type tokenClaims struct {
	Email string `json:"email,omitempty"`
	gojwt.RegisteredClaims
}

// Manager emite y verifica tokens HS256.
// Implementa auth.AuthVerifier y auth.TokenIssuer.
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewManager(secret string, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (m *Manager) IsConfigured() bool {
	return m != nil && len(m.secret) > 0
}

func (m *Manager) Issue(_ context.Context, c auth.Claims) (string, error) {
	if !m.IsConfigured() {
		return "", ErrNotConfigured
	}
	if c.UserID <= 0 {
		return "", errors.New("jwt: user id required")
	}

	now := m.now()
	claims := tokenClaims{
		Email: strings.TrimSpace(c.Email),
		RegisteredClaims: gojwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatInt(c.UserID, 10),
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("jwt: sign: %w", err)
	}
	return signed, nil
}

func (m *Manager) Verify(_ context.Context, token string) (auth.Claims, error) {
	if !m.IsConfigured() {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	parsed, err := gojwt.ParseWithClaims(token, &tokenClaims{}, func(t *gojwt.Token) (any, error) {
		if _, ok := t.Method.(*gojwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	},
		gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}),
		gojwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	tc, ok := parsed.Claims.(*tokenClaims)
	if !ok || !parsed.Valid {
		return auth.Claims{}, ErrInvalidToken
	}

	userID, err := strconv.ParseInt(tc.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return auth.Claims{}, fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}

	return auth.Claims{
		UserID: userID,
		Email:  tc.Email,
	}, nil
}
