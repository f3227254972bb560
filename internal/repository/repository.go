package repository

import (
	"context"
	"errors"
	"time"

	"coachpad/internal/models"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a row does not exist or is outside
	// the requesting coach's scope.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when a concurrent write to the same
	// (player, session) pair is detected. Callers may retry once.
	ErrConflict = errors.New("concurrent write conflict")
)

// PlanAdjustment names the training-plan counter change to apply
// alongside an attendance write, in the same transaction.
type PlanAdjustment int

const (
	// AdjustNone leaves the plan untouched.
	AdjustNone PlanAdjustment = iota
	// AdjustSessions increments sessions_used. There is no upper bound:
	// a plan can go past sessions_booked.
	AdjustSessions
	// AdjustComplimentary increments complimentary_used while it is
	// below the cap; at the cap the adjustment is silently skipped.
	AdjustComplimentary
)

type CoachRepository interface {
	Create(ctx context.Context, coach *models.Coach) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Coach, error)
	GetByUsername(ctx context.Context, username string) (*models.Coach, error)
	// GetAgeGroups returns the coach's groups with their player rosters.
	GetAgeGroups(ctx context.Context, coachID uuid.UUID) ([]models.AgeGroup, error)
}

type AgeGroupRepository interface {
	Create(ctx context.Context, group *models.AgeGroup) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.AgeGroup, error)
}

type PlayerRepository interface {
	Create(ctx context.Context, player *models.Player) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Player, error)
	// GetForCoach returns the player only when their age group belongs
	// to the coach; otherwise ErrNotFound.
	GetForCoach(ctx context.Context, coachID, playerID uuid.UUID) (*models.Player, error)
	ListByCoach(ctx context.Context, coachID uuid.UUID) ([]models.Player, error)
	// ListByAgeGroup returns the group's roster with each player's
	// active plan attached when one exists.
	ListByAgeGroup(ctx context.Context, ageGroupID uuid.UUID) ([]models.Player, error)
}

type SessionRepository interface {
	Create(ctx context.Context, session *models.TrainingSession) error
	// GetForCoach returns the session only when its age group belongs
	// to the coach; otherwise ErrNotFound.
	GetForCoach(ctx context.Context, coachID, sessionID uuid.UUID) (*models.TrainingSession, error)
	// ListForCoach returns the coach's sessions in [from, to), ordered
	// by time slot.
	ListForCoach(ctx context.Context, coachID uuid.UUID, from, to time.Time) ([]models.TrainingSession, error)
	UpdateStatus(ctx context.Context, sessionID uuid.UUID, status string) error
	SetGroupPhoto(ctx context.Context, sessionID uuid.UUID, photo string) error
}

type TrainingPlanRepository interface {
	Create(ctx context.Context, plan *models.TrainingPlan) error
	// GetActiveByPlayer returns (nil, nil) when the player has no
	// active plan.
	GetActiveByPlayer(ctx context.Context, playerID uuid.UUID) (*models.TrainingPlan, error)
}

type AttendanceRepository interface {
	// Record upserts the attendance row keyed on (player_id, session_id)
	// and applies the plan adjustment in one transaction: both writes
	// succeed or neither does. Re-marks update the existing row in place
	// and refresh marked_at.
	Record(ctx context.Context, att *models.Attendance, adj PlanAdjustment) (*models.Attendance, error)
	GetByPlayerAndSession(ctx context.Context, playerID, sessionID uuid.UUID) (*models.Attendance, error)
	// GetBySession returns a session's rows with each attendee's name
	// and active-plan snapshot.
	GetBySession(ctx context.Context, sessionID uuid.UUID) ([]models.Attendance, error)
	// GetByPlayer returns a player's full history with session data,
	// newest session first.
	GetByPlayer(ctx context.Context, playerID uuid.UUID) ([]models.Attendance, error)
}
