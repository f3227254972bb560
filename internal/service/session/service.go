package session_service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"coachpad/internal/models"
	"coachpad/internal/repository"
	"coachpad/internal/service"

	"github.com/google/uuid"
)

type sessionService struct {
	sessionRepo    repository.SessionRepository
	playerRepo     repository.PlayerRepository
	attendanceRepo repository.AttendanceRepository
}

func NewSessionService(
	sessionRepo repository.SessionRepository,
	playerRepo repository.PlayerRepository,
	attendanceRepo repository.AttendanceRepository,
) service.SessionService {
	return &sessionService{
		sessionRepo:    sessionRepo,
		playerRepo:     playerRepo,
		attendanceRepo: attendanceRepo,
	}
}

func (s *sessionService) Today(ctx context.Context, coachID uuid.UUID) ([]models.TrainingSession, error) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 0, 1)

	sessions, err := s.sessionRepo.ListForCoach(ctx, coachID, start, end)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	for i := range sessions {
		if err := s.enrich(ctx, &sessions[i]); err != nil {
			return nil, err
		}
	}
	return sessions, nil
}

func (s *sessionService) Get(ctx context.Context, coachID, sessionID uuid.UUID) (*models.TrainingSession, error) {
	session, err := s.sessionRepo.GetForCoach(ctx, coachID, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, fmt.Errorf("load session: %w", err)
	}
	if err := s.enrich(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *sessionService) UpdateStatus(ctx context.Context, coachID, sessionID uuid.UUID, status string) (*models.TrainingSession, error) {
	session, err := s.sessionRepo.GetForCoach(ctx, coachID, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, fmt.Errorf("load session: %w", err)
	}

	if err := s.sessionRepo.UpdateStatus(ctx, sessionID, status); err != nil {
		return nil, fmt.Errorf("update session status: %w", err)
	}
	session.Status = status
	return session, nil
}

func (s *sessionService) SetGroupPhoto(ctx context.Context, coachID, sessionID uuid.UUID, photo string) (*models.TrainingSession, error) {
	session, err := s.sessionRepo.GetForCoach(ctx, coachID, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, fmt.Errorf("load session: %w", err)
	}

	if err := s.sessionRepo.SetGroupPhoto(ctx, sessionID, photo); err != nil {
		return nil, fmt.Errorf("set group photo: %w", err)
	}
	session.GroupPhoto = &photo
	return session, nil
}

// enrich attaches the group roster (with active plans) and the
// session's attendance rows.
func (s *sessionService) enrich(ctx context.Context, session *models.TrainingSession) error {
	players, err := s.playerRepo.ListByAgeGroup(ctx, session.AgeGroupID)
	if err != nil {
		return fmt.Errorf("load roster for session %s: %w", session.ID, err)
	}
	attendances, err := s.attendanceRepo.GetBySession(ctx, session.ID)
	if err != nil {
		return fmt.Errorf("load attendance for session %s: %w", session.ID, err)
	}

	session.Players = players
	session.Attendances = attendances
	return nil
}
