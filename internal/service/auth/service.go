package auth_service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"coachpad/internal/models"
	"coachpad/internal/models/config"
	"coachpad/internal/repository"
	"coachpad/internal/service"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type coachClaims struct {
	CoachID string `json:"coach_id"`
	jwt.RegisteredClaims
}

type authService struct {
	coachRepo repository.CoachRepository
	secret    []byte
	tokenTTL  time.Duration
}

func NewAuthService(coachRepo repository.CoachRepository, cfg config.AuthConfig) service.AuthService {
	return &authService{
		coachRepo: coachRepo,
		secret:    []byte(cfg.JWTSecret),
		tokenTTL:  cfg.TokenTTL,
	}
}

func (s *authService) Login(ctx context.Context, username, password string) (*service.AuthResult, error) {
	coach, err := s.coachRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, service.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup coach: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(coach.Password), []byte(password)); err != nil {
		return nil, service.ErrInvalidCredentials
	}

	now := time.Now()
	claims := coachClaims{
		CoachID: coach.ID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	groups, err := s.coachRepo.GetAgeGroups(ctx, coach.ID)
	if err != nil {
		return nil, fmt.Errorf("load age groups: %w", err)
	}
	coach.AgeGroups = groups

	return &service.AuthResult{Token: token, Coach: *coach}, nil
}

func (s *authService) Verify(token string) (uuid.UUID, error) {
	var claims coachClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return uuid.Nil, service.ErrInvalidCredentials
	}

	coachID, err := uuid.Parse(claims.CoachID)
	if err != nil {
		return uuid.Nil, service.ErrInvalidCredentials
	}
	return coachID, nil
}

func (s *authService) GetCoach(ctx context.Context, id uuid.UUID) (*models.Coach, error) {
	coach, err := s.coachRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return coach, nil
}
