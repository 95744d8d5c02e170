package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"smartpill/internal/platform/apperrors"
	"smartpill/internal/ports/auth"

	"golang.org/x/crypto/bcrypt"
)

const MinPasswordLength = 8

var (
	ErrEmailTaken         = fmt.Errorf("email already registered: %w", apperrors.ErrConflict)
	ErrInvalidCredentials = fmt.Errorf("invalid email or password: %w", apperrors.ErrUnauthorized)
	ErrNoTokenIssuer      = errors.New("token issuer not configured")
)

type Service struct {
	repo     Repository
	tokens   auth.TokenIssuer
	now      func() time.Time
	hashCost int
}

func NewService(repo Repository, tokens auth.TokenIssuer) *Service {
	return &Service{
		repo:     repo,
		tokens:   tokens,
		now:      time.Now,
		hashCost: bcrypt.DefaultCost,
	}
}

// WithHashCost baja el costo de bcrypt (tests); valores fuera de rango usan el default.
func (s *Service) WithHashCost(cost int) *Service {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	s.hashCost = cost
	return s
}

type Credentials struct {
	Email    string
	Password string
}

func (s *Service) Register(ctx context.Context, in Credentials) (User, error) {
	if !isValidEmail(in.Email) {
		return User{}, apperrors.Invalid("email", "Invalid or missing email")
	}
	if len(in.Password) < MinPasswordLength {
		return User{}, apperrors.Invalid("password",
			fmt.Sprintf("Password must be at least %d characters", MinPasswordLength))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.hashCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return User{}, apperrors.Invalid("password", "Password must be at most 72 bytes")
	}
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.repo.Create(ctx, User{
		Email:        normalizeEmail(in.Email),
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return User{}, ErrEmailTaken
		}
		return User{}, err
	}
	return u, nil
}

// Login valida credenciales y devuelve un token firmado.
// Email inexistente y password incorrecto dan el mismo error.
func (s *Service) Login(ctx context.Context, in Credentials) (string, error) {
	if !isValidEmail(in.Email) {
		return "", apperrors.Invalid("email", "Invalid or missing email")
	}
	if in.Password == "" {
		return "", apperrors.Missing("password", "Password required")
	}

	u, err := s.repo.GetByEmail(ctx, normalizeEmail(in.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	if s.tokens == nil {
		return "", ErrNoTokenIssuer
	}
	return s.tokens.Issue(ctx, auth.Claims{UserID: u.ID, Email: u.Email})
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// isValidEmail: algo@algo, sin pretender validar RFC 5322.
func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}

// Greeting arma el saludo de /hello.
func Greeting(email string) string {
	if strings.TrimSpace(email) == "" {
		return "Hello, world"
	}
	return "Hello, " + email
}
