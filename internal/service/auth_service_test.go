package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzeria-pos/internal/domain/dao"
	"pizzeria-pos/internal/domain/dto"
	"pizzeria-pos/internal/repository"
)

type fakeUsers struct {
	byEmail map[string]dao.User
	nextID  int
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byEmail: map[string]dao.User{}}
}

func (f *fakeUsers) Create(_ context.Context, u dao.User) (dao.User, error) {
	if _, ok := f.byEmail[u.Email]; ok {
		return dao.User{}, fmt.Errorf("%w: %s", repository.ErrEmailTaken, u.Email)
	}
	f.nextID++
	u.ID = f.nextID
	u.RegisteredAt = time.Now().UTC()
	f.byEmail[u.Email] = u
	return u, nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (dao.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return dao.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func newAuthFixture() AuthServiceInterface {
	return NewAuthService(newFakeUsers(), "test-secret", time.Hour)
}

func TestRegisterIssuesValidToken(t *testing.T) {
	svc := newAuthFixture()

	resp, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email:    "ana@pizzeria.mx",
		Name:     "Ana",
		Password: "super-secret-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, "ana@pizzeria.mx", resp.User.Email)
	assert.NotZero(t, resp.User.ID)

	subject, err := svc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "ana@pizzeria.mx", subject)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthFixture()

	req := dto.RegisterRequest{Email: "ana@pizzeria.mx", Name: "Ana", Password: "super-secret-1"}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	require.ErrorIs(t, err, repository.ErrEmailTaken)
}

func TestRegisterValidation(t *testing.T) {
	svc := newAuthFixture()

	cases := []dto.RegisterRequest{
		{Email: "not-an-email", Name: "Ana", Password: "super-secret-1"},
		{Email: "ana@pizzeria.mx", Name: "", Password: "super-secret-1"},
		{Email: "ana@pizzeria.mx", Name: "Ana", Password: "short"},
	}
	for _, req := range cases {
		_, err := svc.Register(context.Background(), req)
		require.ErrorIs(t, err, ErrValidation)
	}
}

func TestLogin(t *testing.T) {
	svc := newAuthFixture()

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email: "ana@pizzeria.mx", Name: "Ana", Password: "super-secret-1",
	})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "ana@pizzeria.mx", Password: "super-secret-1",
	})
	require.NoError(t, err)

	subject, err := svc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "ana@pizzeria.mx", subject)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthFixture()

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email: "ana@pizzeria.mx", Name: "Ana", Password: "super-secret-1",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), dto.LoginRequest{
		Email: "ana@pizzeria.mx", Password: "wrong-password",
	})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newAuthFixture()

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "nobody@pizzeria.mx", Password: "whatever-password",
	})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLongPasswordTruncation(t *testing.T) {
	// bcrypt caps input at 72 bytes; registration and login must agree on
	// the truncation.
	svc := newAuthFixture()
	long := strings.Repeat("a", 100)

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email: "ana@pizzeria.mx", Name: "Ana", Password: long,
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), dto.LoginRequest{
		Email: "ana@pizzeria.mx", Password: long,
	})
	require.NoError(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := newAuthFixture()

	_, err := svc.ValidateToken("not.a.token")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateTokenRejectsForeignSecret(t *testing.T) {
	issuer := NewAuthService(newFakeUsers(), "other-secret", time.Hour)
	resp, err := issuer.Register(context.Background(), dto.RegisterRequest{
		Email: "ana@pizzeria.mx", Name: "Ana", Password: "super-secret-1",
	})
	require.NoError(t, err)

	svc := newAuthFixture()
	_, err = svc.ValidateToken(resp.AccessToken)
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc := NewAuthService(newFakeUsers(), "test-secret", -time.Minute)
	resp, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email: "ana@pizzeria.mx", Name: "Ana", Password: "super-secret-1",
	})
	require.NoError(t, err)

	_, err = svc.ValidateToken(resp.AccessToken)
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
