package service

import (
	"context"
	"errors"

	"github.com/RigelNana/acervo/apperror"
	"github.com/RigelNana/acervo/dto"
	"github.com/RigelNana/acervo/pkg/metrics"
	"github.com/RigelNana/acervo/repository"
	"github.com/RigelNana/acervo/token"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// Identity is the caller resolved from a bearer token.
type Identity struct {
	UserID int64
	Login  string
}

type AuthService interface {
	Authenticate(ctx context.Context, req dto.AuthRequest) (dto.AuthResponse, error)
	Identify(ctx context.Context, bearer string) (Identity, error)
}

type AuthServiceImpl struct {
	users  repository.UserRepository
	tokens *token.Service
	log    logrus.FieldLogger
}

func NewAuthService(users repository.UserRepository, tokens *token.Service, log logrus.FieldLogger) AuthService {
	return &AuthServiceImpl{users: users, tokens: tokens, log: log}
}

// Authenticate checks the password and hands out a token. An unknown login is
// reported as 404 and a wrong password as 401.
func (s *AuthServiceImpl) Authenticate(ctx context.Context, req dto.AuthRequest) (dto.AuthResponse, error) {
	user, err := s.users.FindByLogin(ctx, req.Login)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			metrics.AuthAttempts.WithLabelValues("unknown_user").Inc()
			s.log.WithField("login", req.Login).Info("authentication for unknown login")
			return dto.AuthResponse{}, apperror.NotFound("User not found")
		}
		return dto.AuthResponse{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		metrics.AuthAttempts.WithLabelValues("bad_password").Inc()
		s.log.WithField("login", req.Login).Info("authentication with wrong password")
		return dto.AuthResponse{}, apperror.InvalidCredentials("Invalid username or password")
	}

	signed, err := s.tokens.Issue(user.Login, user.ID)
	if err != nil {
		return dto.AuthResponse{}, err
	}
	metrics.AuthAttempts.WithLabelValues("success").Inc()
	return dto.AuthResponse{Token: signed}, nil
}

// Identify resolves the active user behind a bearer token.
func (s *AuthServiceImpl) Identify(ctx context.Context, bearer string) (Identity, error) {
	login, err := s.tokens.ExtractSubject(bearer)
	if err != nil {
		return Identity{}, apperror.Unauthorized("Invalid or expired token", err)
	}
	user, err := s.users.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return Identity{}, apperror.Unauthorized("User not found for token", nil)
		}
		return Identity{}, err
	}
	if !s.tokens.Validate(bearer, user.Login) {
		return Identity{}, apperror.Unauthorized("Invalid or expired token", nil)
	}
	id, err := s.tokens.ExtractIdentityID(bearer)
	if err != nil {
		return Identity{}, apperror.Unauthorized("Invalid or expired token", err)
	}
	// a login freed by a soft delete can be taken by a new account
	if id != user.ID {
		return Identity{}, apperror.Unauthorized("Token does not belong to an active user", nil)
	}
	return Identity{UserID: user.ID, Login: user.Login}, nil
}
