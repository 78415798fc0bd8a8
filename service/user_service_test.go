package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/RigelNana/acervo/apperror"
	"github.com/RigelNana/acervo/dto"
	"github.com/RigelNana/acervo/repository/fakerepo"
	"github.com/RigelNana/acervo/token"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newUserService(users *fakerepo.Users) *UserServiceImpl {
	svc := NewUserService(users)
	svc.hashCost = bcrypt.MinCost
	return svc
}

func userDTO(login, password, email string) dto.UserDTO {
	return dto.UserDTO{Login: strp(login), Password: strp(password), Email: strp(email)}
}

func TestCreateUserHashesPassword(t *testing.T) {
	ctx := context.Background()
	users := fakerepo.NewUsers()
	svc := newUserService(users)

	out, err := svc.Create(ctx, userDTO("ana", "s3cret", "ana@example.com"))
	require.NoError(t, err)
	assert.Nil(t, out.Password)

	stored, err := users.FindByLogin(ctx, "ana")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("s3cret")))
}

func TestCreateUserUniqueness(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(fakerepo.NewUsers())
	_, err := svc.Create(ctx, userDTO("ana", "pw", "ana@example.com"))
	require.NoError(t, err)

	tests := []struct {
		name string
		in   dto.UserDTO
	}{
		{"duplicate login", userDTO("ana", "pw", "other@example.com")},
		{"duplicate email", userDTO("bob", "pw", "ana@example.com")},
		{"empty login", userDTO("", "pw", "bob@example.com")},
		{"empty email", userDTO("bob", "pw", "")},
		{"empty password", userDTO("bob", "", "bob@example.com")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.in)
			assertStatus(t, err, http.StatusBadRequest)
		})
	}
}

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()
	users := fakerepo.NewUsers()
	svc := newUserService(users)
	created, err := svc.Create(ctx, userDTO("ana", "pw", "ana@example.com"))
	require.NoError(t, err)

	out, err := svc.Update(ctx, created.ID, dto.UserDTO{Email: strp("ana@new.com"), Password: strp("new")})
	require.NoError(t, err)
	assert.Equal(t, "ana", *out.Login)
	assert.Equal(t, "ana@new.com", *out.Email)
	assert.Nil(t, out.Password)

	stored, err := users.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("new")))

	_, err = svc.Update(ctx, 404, dto.UserDTO{})
	assertStatus(t, err, http.StatusNotFound)
	assert.EqualError(t, err, "Error: User not found with id [404]")
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(fakerepo.NewUsers())
	created, err := svc.Create(ctx, userDTO("ana", "pw", "ana@example.com"))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteByID(ctx, created.ID))
	assertStatus(t, svc.DeleteByID(ctx, created.ID), http.StatusNotFound)

	// login and email are free again once the account is inactive
	_, err = svc.Create(ctx, userDTO("ana", "pw", "ana@example.com"))
	assert.NoError(t, err)
}

func TestFindByLogin(t *testing.T) {
	ctx := context.Background()
	svc := newUserService(fakerepo.NewUsers())
	_, err := svc.Create(ctx, userDTO("ana", "pw", "ana@example.com"))
	require.NoError(t, err)

	out, err := svc.FindByLogin(ctx, "ana")
	require.NoError(t, err)
	assert.Nil(t, out.Password)

	_, err = svc.FindByLogin(ctx, "bob")
	assertStatus(t, err, http.StatusNotFound)
}

func newAuth(t *testing.T) (AuthService, *UserServiceImpl, *token.Service, *test.Hook) {
	t.Helper()
	users := fakerepo.NewUsers()
	tokens, err := token.NewService("secret", time.Hour)
	require.NoError(t, err)
	logger, hook := test.NewNullLogger()
	return NewAuthService(users, tokens, logger), newUserService(users), tokens, hook
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	auth, users, tokens, hook := newAuth(t)
	created, err := users.Create(ctx, userDTO("ana", "pw", "ana@example.com"))
	require.NoError(t, err)

	resp, err := auth.Authenticate(ctx, dto.AuthRequest{Login: "ana", Password: "pw"})
	require.NoError(t, err)
	assert.True(t, tokens.Validate(resp.Token, "ana"))
	id, err := tokens.ExtractIdentityID(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, id)

	_, err = auth.Authenticate(ctx, dto.AuthRequest{Login: "ana", Password: "wrong"})
	assertKind(t, err, apperror.KindInvalidCredentials)
	assertStatus(t, err, http.StatusUnauthorized)
	assert.EqualError(t, err, "Invalid username or password")

	_, err = auth.Authenticate(ctx, dto.AuthRequest{Login: "nobody", Password: "pw"})
	assertStatus(t, err, http.StatusNotFound)
	assert.EqualError(t, err, "User not found")

	require.Len(t, hook.AllEntries(), 2)
	assert.Equal(t, logrus.InfoLevel, hook.LastEntry().Level)
	assert.Equal(t, "nobody", hook.LastEntry().Data["login"])
}

func TestIdentify(t *testing.T) {
	ctx := context.Background()
	auth, users, tokens, _ := newAuth(t)
	created, err := users.Create(ctx, userDTO("ana", "pw", "ana@example.com"))
	require.NoError(t, err)

	resp, err := auth.Authenticate(ctx, dto.AuthRequest{Login: "ana", Password: "pw"})
	require.NoError(t, err)

	who, err := auth.Identify(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, Identity{UserID: created.ID, Login: "ana"}, who)

	_, err = auth.Identify(ctx, "garbage")
	assertKind(t, err, apperror.KindUnauthorized)

	stale, err := tokens.Issue("ana", created.ID+100)
	require.NoError(t, err)
	_, err = auth.Identify(ctx, stale)
	assertKind(t, err, apperror.KindUnauthorized)

	require.NoError(t, users.DeleteByID(ctx, created.ID))
	_, err = auth.Identify(ctx, resp.Token)
	assertKind(t, err, apperror.KindUnauthorized)
}
