package auth_service

import (
	"context"
	"testing"
	"time"

	"coachpad/internal/models"
	"coachpad/internal/models/config"
	"coachpad/internal/repository/inmem"
	"coachpad/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthFixture(t *testing.T) (service.AuthService, *models.Coach) {
	t.Helper()
	ctx := context.Background()
	store := inmem.NewStore()
	coaches := inmem.NewCoachRepository(store)
	groups := inmem.NewAgeGroupRepository(store)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	coach := &models.Coach{Username: "coach1", Password: string(hash), Name: "John Smith"}
	require.NoError(t, coaches.Create(ctx, coach))
	require.NoError(t, groups.Create(ctx, &models.AgeGroup{
		Name:    "Under 12",
		MinAge:  10,
		MaxAge:  12,
		CoachID: coach.ID,
	}))

	svc := NewAuthService(coaches, config.AuthConfig{
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
	})
	return svc, coach
}

func TestLogin(t *testing.T) {
	svc, coach := newAuthFixture(t)

	res, err := svc.Login(context.Background(), "coach1", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, coach.ID, res.Coach.ID)
	require.Len(t, res.Coach.AgeGroups, 1)
	assert.Equal(t, "Under 12", res.Coach.AgeGroups[0].Name)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), "coach1", "wrong")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestLoginUnknownUsername(t *testing.T) {
	svc, _ := newAuthFixture(t)

	// An unknown username maps to the same error as a bad password,
	// so the response does not reveal which accounts exist.
	_, err := svc.Login(context.Background(), "nobody", "password123")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestVerifyRoundTrip(t *testing.T) {
	svc, coach := newAuthFixture(t)

	res, err := svc.Login(context.Background(), "coach1", "password123")
	require.NoError(t, err)

	id, err := svc.Verify(res.Token)
	require.NoError(t, err)
	assert.Equal(t, coach.ID, id)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Verify("not-a-token")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestVerifyRejectsForeignSignature(t *testing.T) {
	svc, _ := newAuthFixture(t)

	foreign, coach := newAuthFixtureWithSecret(t, "other-secret")
	res, err := foreign.Login(context.Background(), coach.Username, "password123")
	require.NoError(t, err)

	_, err = svc.Verify(res.Token)
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func newAuthFixtureWithSecret(t *testing.T, secret string) (service.AuthService, *models.Coach) {
	t.Helper()
	ctx := context.Background()
	store := inmem.NewStore()
	coaches := inmem.NewCoachRepository(store)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	coach := &models.Coach{Username: "coach1", Password: string(hash), Name: "John Smith"}
	require.NoError(t, coaches.Create(ctx, coach))

	return NewAuthService(coaches, config.AuthConfig{JWTSecret: secret, TokenTTL: time.Hour}), coach
}
