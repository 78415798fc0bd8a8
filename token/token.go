// Package token issues and checks the bearer tokens handed out on login.
package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	DefaultTTL = time.Hour
	issuer     = "acervo"
)

var ErrMissingSecret = errors.New("token: signing secret is empty")

// Claims binds the login (subject) and the numeric user id.
type Claims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewService(secret string, ttl time.Duration) (*Service, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// WithClock replaces the time source, for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	cp := *s
	cp.now = now
	return &cp
}

func (s *Service) Issue(login string, userID int64) (string, error) {
	now := s.now()
	claims := Claims{
		UserID: strconv.FormatInt(userID, 10),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   login,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Validate reports whether the signature verifies, the token has not
// expired and its subject is expectedSubject.
func (s *Service) Validate(tokenString, expectedSubject string) bool {
	claims, err := s.parse(tokenString)
	if err != nil {
		return false
	}
	return claims.Subject == expectedSubject
}

func (s *Service) ExtractSubject(tokenString string) (string, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

func (s *Service) ExtractIdentityID(tokenString string) (int64, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(claims.UserID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("token: invalid id claim %q: %w", claims.UserID, err)
	}
	return id, nil
}

func (s *Service) parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrTokenInvalidClaims
}
