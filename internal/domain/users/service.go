package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"petcare-marketplace/internal/platform/apperr"
	"petcare-marketplace/internal/platform/password"
	"petcare-marketplace/internal/ports/auth"
)

type Service struct {
	repo   Repository
	tokens auth.TokenIssuer
	now    func() time.Time
}

func NewService(repo Repository, tokens auth.TokenIssuer) *Service {
	return &Service{
		repo:   repo,
		tokens: tokens,
		now:    time.Now,
	}
}

type Token struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
}

func (s *Service) Register(ctx context.Context, username, plain string) (User, error) {
	const op = "users.register"

	username = strings.TrimSpace(username)
	if username == "" {
		return User{}, apperr.New(apperr.ErrInvalidArgument, op, "username required")
	}

	hash, err := password.Hash(plain)
	if err != nil {
		return User{}, err
	}

	u, err := s.repo.Create(ctx, User{
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    s.now(),
	})
	if err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			return User{}, apperr.New(apperr.ErrConflict, op, "username already registered")
		}
		return User{}, err
	}
	return u, nil
}

// Login valida credenciales y emite un token con el id numérico como identidad.
func (s *Service) Login(ctx context.Context, username, plain string) (Token, error) {
	const op = "users.login"

	if s.tokens == nil {
		return Token{}, apperr.New(apperr.ErrUnavailable, op, "token issuing disabled")
	}

	u, err := s.repo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return Token{}, apperr.New(apperr.ErrUnauthorized, op, "invalid credentials")
		}
		return Token{}, err
	}
	if err := password.Verify(plain, u.PasswordHash); err != nil {
		return Token{}, err
	}

	tok, exp, err := s.tokens.Issue(u.ID)
	if err != nil {
		return Token{}, err
	}
	return Token{AccessToken: tok, TokenType: "bearer", ExpiresAt: exp}, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return User{}, apperr.New(apperr.ErrNotFound, "users.get", "user not found")
		}
		return User{}, err
	}
	return u, nil
}
