package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"pizzeria-pos/internal/domain/dao"
	"pizzeria-pos/internal/domain/dto"
	"pizzeria-pos/internal/repository"
)

// bcrypt ignores input past 72 bytes; truncate explicitly instead of
// relying on the library's behavior for long passwords.
const bcryptMaxLen = 72

type AuthServiceInterface interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.TokenResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.TokenResponse, error)
	ValidateToken(token string) (string, error)
}

type AuthService struct {
	users  repository.UserRepository
	secret []byte
	ttl    time.Duration
}

func NewAuthService(users repository.UserRepository, secret string, ttl time.Duration) AuthServiceInterface {
	return &AuthService{users: users, secret: []byte(secret), ttl: ttl}
}

func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (dto.TokenResponse, error) {
	if err := validate.Struct(req); err != nil {
		return dto.TokenResponse{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return dto.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.users.Create(ctx, dao.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hash,
	})
	if err != nil {
		return dto.TokenResponse{}, err
	}
	return s.tokenResponse(user)
}

func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (dto.TokenResponse, error) {
	if err := validate.Struct(req); err != nil {
		return dto.TokenResponse{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return dto.TokenResponse{}, ErrInvalidCredentials
		}
		return dto.TokenResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(truncate(req.Password))); err != nil {
		return dto.TokenResponse{}, ErrInvalidCredentials
	}
	return s.tokenResponse(user)
}

// ValidateToken parses a bearer token and returns its subject (the user's
// email).
func (s *AuthService) ValidateToken(token string) (string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrInvalidCredentials
	}
	sub, err := parsed.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", ErrInvalidCredentials
	}
	return sub, nil
}

func (s *AuthService) tokenResponse(user dao.User) (dto.TokenResponse, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub": user.Email,
		"id":  user.ID,
		"iat": jwt.NewNumericDate(now),
		"exp": jwt.NewNumericDate(now.Add(s.ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return dto.TokenResponse{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return dto.TokenResponse{
		AccessToken: signed,
		TokenType:   "bearer",
		User:        dto.ToUserResponse(user),
	}, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(truncate(password)), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func truncate(password string) string {
	if len(password) > bcryptMaxLen {
		return password[:bcryptMaxLen]
	}
	return password
}
