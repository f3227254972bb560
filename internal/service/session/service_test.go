package session_service

import (
	"context"
	"testing"
	"time"

	"coachpad/internal/models"
	"coachpad/internal/repository"
	"coachpad/internal/repository/inmem"
	"coachpad/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc         service.SessionService
	sessionRepo repository.SessionRepository
	coach       *models.Coach
	otherCoach  *models.Coach
	group       *models.AgeGroup
	player      *models.Player
}

func setup(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	store := inmem.NewStore()

	coaches := inmem.NewCoachRepository(store)
	groups := inmem.NewAgeGroupRepository(store)
	players := inmem.NewPlayerRepository(store)
	sessions := inmem.NewSessionRepository(store)
	attendances := inmem.NewAttendanceRepository(store)

	coach := &models.Coach{Username: "coach1", Name: "John Smith"}
	require.NoError(t, coaches.Create(ctx, coach))
	otherCoach := &models.Coach{Username: "coach2", Name: "Sarah Johnson"}
	require.NoError(t, coaches.Create(ctx, otherCoach))

	group := &models.AgeGroup{Name: "Under 12", MinAge: 10, MaxAge: 12, CoachID: coach.ID}
	require.NoError(t, groups.Create(ctx, group))
	player := &models.Player{Name: "Alex Thompson", AgeGroupID: group.ID}
	require.NoError(t, players.Create(ctx, player))

	return &fixture{
		svc:         NewSessionService(sessions, players, attendances),
		sessionRepo: sessions,
		coach:       coach,
		otherCoach:  otherCoach,
		group:       group,
		player:      player,
	}
}

func (f *fixture) addSession(t *testing.T, date time.Time, slot string) *models.TrainingSession {
	t.Helper()
	session := &models.TrainingSession{
		Date:       date,
		TimeSlot:   slot,
		Status:     models.SessionScheduled,
		MaxPlayers: 20,
		AgeGroupID: f.group.ID,
	}
	require.NoError(t, f.sessionRepo.Create(context.Background(), session))
	return session
}

func TestTodayReturnsOnlyTodaysSessions(t *testing.T) {
	f := setup(t)
	now := time.Now()

	today := f.addSession(t, now, models.TimeSlotMorning)
	f.addSession(t, now.AddDate(0, 0, -1), models.TimeSlotMorning)
	f.addSession(t, now.AddDate(0, 0, 1), models.TimeSlotEvening)

	sessions, err := f.svc.Today(context.Background(), f.coach.ID)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, today.ID, sessions[0].ID)
	assert.Equal(t, "Under 12", sessions[0].GroupName)

	// Enriched with the group roster.
	require.Len(t, sessions[0].Players, 1)
	assert.Equal(t, "Alex Thompson", sessions[0].Players[0].Name)
}

func TestTodayOrdersMorningFirst(t *testing.T) {
	f := setup(t)
	now := time.Now()

	f.addSession(t, now, models.TimeSlotEvening)
	f.addSession(t, now, models.TimeSlotMorning)

	sessions, err := f.svc.Today(context.Background(), f.coach.ID)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, models.TimeSlotMorning, sessions[0].TimeSlot)
	assert.Equal(t, models.TimeSlotEvening, sessions[1].TimeSlot)
}

func TestTodayExcludesOtherCoaches(t *testing.T) {
	f := setup(t)
	f.addSession(t, time.Now(), models.TimeSlotMorning)

	sessions, err := f.svc.Today(context.Background(), f.otherCoach.ID)
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestGetOutOfScopeIsNotFound(t *testing.T) {
	f := setup(t)
	session := f.addSession(t, time.Now(), models.TimeSlotMorning)

	got, err := f.svc.Get(context.Background(), f.coach.ID, session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)

	_, err = f.svc.Get(context.Background(), f.otherCoach.ID, session.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestUpdateStatus(t *testing.T) {
	f := setup(t)
	session := f.addSession(t, time.Now(), models.TimeSlotMorning)

	got, err := f.svc.UpdateStatus(context.Background(), f.coach.ID, session.ID, models.SessionCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.SessionCompleted, got.Status)

	stored, err := f.sessionRepo.GetForCoach(context.Background(), f.coach.ID, session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SessionCompleted, stored.Status)
}

func TestUpdateStatusAllowsAnyTransition(t *testing.T) {
	f := setup(t)
	session := f.addSession(t, time.Now(), models.TimeSlotMorning)

	// Transitions are not guarded; a completed session can go back
	// to scheduled.
	_, err := f.svc.UpdateStatus(context.Background(), f.coach.ID, session.ID, models.SessionCompleted)
	require.NoError(t, err)
	got, err := f.svc.UpdateStatus(context.Background(), f.coach.ID, session.ID, models.SessionScheduled)
	require.NoError(t, err)
	assert.Equal(t, models.SessionScheduled, got.Status)
}

func TestSetGroupPhoto(t *testing.T) {
	f := setup(t)
	session := f.addSession(t, time.Now(), models.TimeSlotMorning)

	got, err := f.svc.SetGroupPhoto(context.Background(), f.coach.ID, session.ID, "photos/group.jpg")
	require.NoError(t, err)
	require.NotNil(t, got.GroupPhoto)
	assert.Equal(t, "photos/group.jpg", *got.GroupPhoto)

	_, err = f.svc.SetGroupPhoto(context.Background(), f.otherCoach.ID, session.ID, "photos/other.jpg")
	assert.ErrorIs(t, err, service.ErrNotFound)
}
