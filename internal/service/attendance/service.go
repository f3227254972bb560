package attendance_service

import (
	"context"
	"errors"
	"fmt"

	"coachpad/internal/models"
	"coachpad/internal/repository"
	"coachpad/internal/service"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type attendanceService struct {
	attendanceRepo repository.AttendanceRepository
	sessionRepo    repository.SessionRepository
	playerRepo     repository.PlayerRepository
	log            *zap.Logger
}

func NewAttendanceService(
	attendanceRepo repository.AttendanceRepository,
	sessionRepo repository.SessionRepository,
	playerRepo repository.PlayerRepository,
	log *zap.Logger,
) service.AttendanceService {
	return &attendanceService{
		attendanceRepo: attendanceRepo,
		sessionRepo:    sessionRepo,
		playerRepo:     playerRepo,
		log:            log,
	}
}

// Record marks a player for a session and reconciles the active plan.
//
// The counter adjustment is decided from the incoming mark alone:
// a PRESENT regular mark burns a booked session (with no upper bound,
// so plans can go past sessions_booked), a PRESENT complimentary mark
// burns a credit while the cap allows, and ABSENT never touches the
// plan. A complimentary mark at the cap, or a mark for a player with
// no active plan, still records attendance with no counter change.
// Flipping an existing PRESENT row to ABSENT does not refund the
// earlier increment.
func (s *attendanceService) Record(ctx context.Context, coachID uuid.UUID, in service.RecordAttendanceInput) (*models.Attendance, error) {
	session, err := s.sessionRepo.GetForCoach(ctx, coachID, in.SessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, fmt.Errorf("load session: %w", err)
	}

	adj := repository.AdjustNone
	if in.Status == models.AttendancePresent {
		if in.IsComplimentary {
			adj = repository.AdjustComplimentary
		} else {
			adj = repository.AdjustSessions
		}
	}

	att := &models.Attendance{
		PlayerID:        in.PlayerID,
		SessionID:       in.SessionID,
		Status:          in.Status,
		IsComplimentary: in.IsComplimentary,
		Photo:           in.Photo,
		Notes:           in.Notes,
	}

	rec, err := s.attendanceRepo.Record(ctx, att, adj)
	if errors.Is(err, repository.ErrConflict) {
		s.log.Warn("attendance write conflict, retrying",
			zap.String("player_id", in.PlayerID.String()),
			zap.String("session_id", in.SessionID.String()),
		)
		rec, err = s.attendanceRepo.Record(ctx, att, adj)
	}
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, service.ErrConflict
		}
		return nil, fmt.Errorf("record attendance: %w", err)
	}

	player, err := s.playerRepo.GetByID(ctx, in.PlayerID)
	if err != nil {
		return nil, fmt.Errorf("load player: %w", err)
	}
	rec.Player = player
	rec.Session = session

	s.log.Info("attendance recorded",
		zap.String("player_id", in.PlayerID.String()),
		zap.String("session_id", in.SessionID.String()),
		zap.String("status", in.Status),
		zap.Bool("complimentary", in.IsComplimentary),
	)
	return rec, nil
}

func (s *attendanceService) SessionAttendance(ctx context.Context, coachID, sessionID uuid.UUID) ([]models.Attendance, error) {
	if _, err := s.sessionRepo.GetForCoach(ctx, coachID, sessionID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, fmt.Errorf("load session: %w", err)
	}
	return s.attendanceRepo.GetBySession(ctx, sessionID)
}
