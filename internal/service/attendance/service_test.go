package attendance_service

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
	"go.uber.org/zap"
)

type fixture struct {
	svc            service.AttendanceService
	attendanceRepo repository.AttendanceRepository
	sessionRepo    repository.SessionRepository
	playerRepo     repository.PlayerRepository
	planRepo       repository.TrainingPlanRepository
	coach          *models.Coach
	otherCoach     *models.Coach
	group          *models.AgeGroup
	player         *models.Player
	session        *models.TrainingSession
}

func setup(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	store := inmem.NewStore()

	coaches := inmem.NewCoachRepository(store)
	groups := inmem.NewAgeGroupRepository(store)
	players := inmem.NewPlayerRepository(store)
	sessions := inmem.NewSessionRepository(store)
	plans := inmem.NewTrainingPlanRepository(store)
	attendances := inmem.NewAttendanceRepository(store)

	coach := &models.Coach{Username: "coach1", Name: "John Smith"}
	require.NoError(t, coaches.Create(ctx, coach))
	otherCoach := &models.Coach{Username: "coach2", Name: "Sarah Johnson"}
	require.NoError(t, coaches.Create(ctx, otherCoach))

	group := &models.AgeGroup{Name: "Under 12", MinAge: 10, MaxAge: 12, CoachID: coach.ID}
	require.NoError(t, groups.Create(ctx, group))

	player := &models.Player{Name: "Alex Thompson", AgeGroupID: group.ID}
	require.NoError(t, players.Create(ctx, player))

	session := &models.TrainingSession{
		Date:       time.Now(),
		TimeSlot:   models.TimeSlotMorning,
		Status:     models.SessionScheduled,
		MaxPlayers: 20,
		AgeGroupID: group.ID,
	}
	require.NoError(t, sessions.Create(ctx, session))

	plan := &models.TrainingPlan{
		PlayerID:       player.ID,
		SessionsBooked: 12,
		IsActive:       true,
	}
	require.NoError(t, plans.Create(ctx, plan))

	return &fixture{
		svc:            NewAttendanceService(attendances, sessions, players, zap.NewNop()),
		attendanceRepo: attendances,
		sessionRepo:    sessions,
		playerRepo:     players,
		planRepo:       plans,
		coach:          coach,
		otherCoach:     otherCoach,
		group:          group,
		player:         player,
		session:        session,
	}
}

func (f *fixture) mark(t *testing.T, status string, complimentary bool) *models.Attendance {
	t.Helper()
	rec, err := f.svc.Record(context.Background(), f.coach.ID, service.RecordAttendanceInput{
		PlayerID:        f.player.ID,
		SessionID:       f.session.ID,
		Status:          status,
		IsComplimentary: complimentary,
	})
	require.NoError(t, err)
	return rec
}

// rotateSession books a fresh session in the same group so the next
// mark targets a new (player, session) pair.
func (f *fixture) rotateSession(t *testing.T) {
	t.Helper()
	session := &models.TrainingSession{
		Date:       time.Now(),
		TimeSlot:   models.TimeSlotEvening,
		Status:     models.SessionScheduled,
		MaxPlayers: 20,
		AgeGroupID: f.group.ID,
	}
	require.NoError(t, f.sessionRepo.Create(context.Background(), session))
	f.session = session
}

func (f *fixture) activePlan(t *testing.T) *models.TrainingPlan {
	t.Helper()
	plan, err := f.planRepo.GetActiveByPlayer(context.Background(), f.player.ID)
	require.NoError(t, err)
	require.NotNil(t, plan)
	return plan
}

func TestRecordCreatesAttendance(t *testing.T) {
	f := setup(t)

	rec := f.mark(t, models.AttendancePresent, false)

	assert.Equal(t, models.AttendancePresent, rec.Status)
	assert.Equal(t, f.player.ID, rec.PlayerID)
	assert.Equal(t, f.session.ID, rec.SessionID)
	assert.False(t, rec.MarkedAt.IsZero())
	require.NotNil(t, rec.Player)
	assert.Equal(t, "Alex Thompson", rec.Player.Name)
	require.NotNil(t, rec.Session)
	assert.Equal(t, f.session.ID, rec.Session.ID)
}

func TestRecordIsIdempotentPerPair(t *testing.T) {
	f := setup(t)

	first := f.mark(t, models.AttendancePresent, false)
	f.mark(t, models.AttendancePresent, false)
	last := f.mark(t, models.AttendanceAbsent, false)

	// Still one row, carrying the fields of the last call.
	assert.Equal(t, first.ID, last.ID)
	stored, err := f.attendanceRepo.GetByPlayerAndSession(context.Background(), f.player.ID, f.session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AttendanceAbsent, stored.Status)

	rows, err := f.attendanceRepo.GetBySession(context.Background(), f.session.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestRegularMarkIncrementsSessionsUsed(t *testing.T) {
	f := setup(t)

	f.mark(t, models.AttendancePresent, false)

	plan := f.activePlan(t)
	assert.Equal(t, 1, plan.SessionsUsed)
	assert.Equal(t, 0, plan.ComplimentaryUsed)
}

func TestOverbookingIsAllowed(t *testing.T) {
	f := setup(t)

	for i := 0; i < 12; i++ {
		f.mark(t, models.AttendancePresent, false)
		f.rotateSession(t)
	}

	plan := f.activePlan(t)
	assert.Equal(t, 12, plan.SessionsUsed)
	assert.Equal(t, 0, plan.SessionsBooked-plan.SessionsUsed)

	// The 13th mark is not rejected; the balance goes negative.
	f.mark(t, models.AttendancePresent, false)

	plan = f.activePlan(t)
	assert.Equal(t, 13, plan.SessionsUsed)
	assert.Equal(t, -1, plan.SessionsBooked-plan.SessionsUsed)
}

func TestComplimentaryCapAtThree(t *testing.T) {
	f := setup(t)

	want := []int{1, 2, 3, 3}
	for i, expected := range want {
		f.mark(t, models.AttendancePresent, true)
		plan := f.activePlan(t)
		assert.Equalf(t, expected, plan.ComplimentaryUsed, "after mark %d", i+1)
		assert.Equal(t, 0, plan.SessionsUsed)
		f.rotateSession(t)
	}

	// The 4th mark was still recorded even though the credit was not.
	rows, err := f.attendanceRepo.GetByPlayer(context.Background(), f.player.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 4)
}

func TestAbsentNeverTouchesCounters(t *testing.T) {
	f := setup(t)

	f.mark(t, models.AttendanceAbsent, false)
	f.rotateSession(t)
	f.mark(t, models.AttendanceAbsent, true)

	plan := f.activePlan(t)
	assert.Equal(t, 0, plan.SessionsUsed)
	assert.Equal(t, 0, plan.ComplimentaryUsed)
}

func TestPresentToAbsentDoesNotReverseIncrement(t *testing.T) {
	f := setup(t)

	f.mark(t, models.AttendancePresent, false)
	rec := f.mark(t, models.AttendanceAbsent, false)

	assert.Equal(t, models.AttendanceAbsent, rec.Status)
	// The earlier increment stays; there is no refund on re-mark.
	plan := f.activePlan(t)
	assert.Equal(t, 1, plan.SessionsUsed)
}

func TestRepeatedPresentMarksKeepIncrementing(t *testing.T) {
	f := setup(t)

	// Re-marking the same pair PRESENT again still burns a session:
	// the adjustment depends on the incoming mark alone.
	f.mark(t, models.AttendancePresent, false)
	f.mark(t, models.AttendancePresent, false)

	plan := f.activePlan(t)
	assert.Equal(t, 2, plan.SessionsUsed)
}

func TestNoActivePlanStillRecordsAttendance(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	// A second player in the same group, with no plan at all.
	walkOn := &models.Player{Name: "Emma Wilson", AgeGroupID: f.group.ID}
	require.NoError(t, f.playerRepo.Create(ctx, walkOn))

	rec, err := f.svc.Record(ctx, f.coach.ID, service.RecordAttendanceInput{
		PlayerID:  walkOn.ID,
		SessionID: f.session.ID,
		Status:    models.AttendancePresent,
	})
	require.NoError(t, err)
	assert.Equal(t, models.AttendancePresent, rec.Status)

	plan, err := f.planRepo.GetActiveByPlayer(ctx, walkOn.ID)
	require.NoError(t, err)
	assert.Nil(t, plan)
}

func TestRecordOutOfScopeSessionIsNotFound(t *testing.T) {
	f := setup(t)

	_, err := f.svc.Record(context.Background(), f.otherCoach.ID, service.RecordAttendanceInput{
		PlayerID:  f.player.ID,
		SessionID: f.session.ID,
		Status:    models.AttendancePresent,
	})
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestRecordRetriesOnceOnConflict(t *testing.T) {
	f := setup(t)

	conflicting := &conflictOnceRepo{AttendanceRepository: f.attendanceRepo}
	svc := NewAttendanceService(conflicting, f.sessionRepo, f.playerRepo, zap.NewNop())

	rec, err := svc.Record(context.Background(), f.coach.ID, service.RecordAttendanceInput{
		PlayerID:  f.player.ID,
		SessionID: f.session.ID,
		Status:    models.AttendancePresent,
	})
	require.NoError(t, err)
	assert.Equal(t, models.AttendancePresent, rec.Status)
	assert.Equal(t, 2, conflicting.calls)
}

func TestPersistentConflictSurfaces(t *testing.T) {
	f := setup(t)

	svc := NewAttendanceService(alwaysConflictRepo{}, f.sessionRepo, f.playerRepo, zap.NewNop())

	_, err := svc.Record(context.Background(), f.coach.ID, service.RecordAttendanceInput{
		PlayerID:  f.player.ID,
		SessionID: f.session.ID,
		Status:    models.AttendancePresent,
	})
	assert.ErrorIs(t, err, service.ErrConflict)
}

func TestSessionAttendanceScopedToCoach(t *testing.T) {
	f := setup(t)
	f.mark(t, models.AttendancePresent, false)

	rows, err := f.svc.SessionAttendance(context.Background(), f.coach.ID, f.session.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Alex Thompson", rows[0].PlayerName)
	require.NotNil(t, rows[0].ActivePlan)
	assert.Equal(t, 1, rows[0].ActivePlan.SessionsUsed)

	_, err = f.svc.SessionAttendance(context.Background(), f.otherCoach.ID, f.session.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

// conflictOnceRepo fails the first Record call with ErrConflict and
// delegates afterwards.
type conflictOnceRepo struct {
	repository.AttendanceRepository
	calls int
}

func (r *conflictOnceRepo) Record(ctx context.Context, att *models.Attendance, adj repository.PlanAdjustment) (*models.Attendance, error) {
	r.calls++
	if r.calls == 1 {
		return nil, repository.ErrConflict
	}
	return r.AttendanceRepository.Record(ctx, att, adj)
}

type alwaysConflictRepo struct {
	repository.AttendanceRepository
}

func (alwaysConflictRepo) Record(ctx context.Context, att *models.Attendance, adj repository.PlanAdjustment) (*models.Attendance, error) {
	return nil, repository.ErrConflict
}
