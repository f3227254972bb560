package service

import (
	"context"

	"coachpad/internal/models"

	"github.com/google/uuid"
)

// AuthResult is the login response payload: the signed token and the
// coach profile with owned age groups and rosters.
type AuthResult struct {
	Token string       `json:"token"`
	Coach models.Coach `json:"coach"`
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (*AuthResult, error)
	// Verify parses a bearer token and returns the coach id it carries.
	Verify(token string) (uuid.UUID, error)
	GetCoach(ctx context.Context, id uuid.UUID) (*models.Coach, error)
}

// RecordAttendanceInput is one mark request for a (player, session)
// pair. Photo and Notes are optional; IsComplimentary only matters when
// Status is PRESENT.
type RecordAttendanceInput struct {
	PlayerID        uuid.UUID
	SessionID       uuid.UUID
	Status          string
	IsComplimentary bool
	Photo           *string
	Notes           string
}

type AttendanceService interface {
	// Record creates or updates the attendance row for the pair and
	// reconciles the player's active plan counters. Idempotent per
	// pair: repeated calls keep one row carrying the latest mark.
	Record(ctx context.Context, coachID uuid.UUID, in RecordAttendanceInput) (*models.Attendance, error)
	// SessionAttendance returns a session's rows with each attendee's
	// active-plan snapshot. Pure read.
	SessionAttendance(ctx context.Context, coachID, sessionID uuid.UUID) ([]models.Attendance, error)
}

type SessionService interface {
	// Today returns today's sessions for the coach's age groups,
	// ordered by time slot, each with roster and attendance attached.
	Today(ctx context.Context, coachID uuid.UUID) ([]models.TrainingSession, error)
	Get(ctx context.Context, coachID, sessionID uuid.UUID) (*models.TrainingSession, error)
	// UpdateStatus sets the session status. Transitions are not
	// guarded: any of the four statuses may be set from any other.
	UpdateStatus(ctx context.Context, coachID, sessionID uuid.UUID, status string) (*models.TrainingSession, error)
	// SetGroupPhoto stores the photo blob as-is.
	SetGroupPhoto(ctx context.Context, coachID, sessionID uuid.UUID, photo string) (*models.TrainingSession, error)
}

type PlayerService interface {
	ListWithStatistics(ctx context.Context, coachID uuid.UUID) ([]models.PlayerWithStatistics, error)
	// GetWithHistory returns the player with their full attendance
	// history (newest session first), active plan and statistics.
	GetWithHistory(ctx context.Context, coachID, playerID uuid.UUID) (*models.PlayerWithStatistics, error)
}
