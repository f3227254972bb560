package inmem

import (
	"context"
	"sort"
	"time"

	"coachpad/internal/models"
	"coachpad/internal/repository"

	"github.com/google/uuid"
)

type sessionRepository struct {
	s *Store
}

func NewSessionRepository(s *Store) repository.SessionRepository {
	return &sessionRepository{s: s}
}

func (r *sessionRepository) Create(ctx context.Context, session *models.TrainingSession) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	session.CreatedAt = r.s.Now()
	session.UpdatedAt = session.CreatedAt
	r.s.sessions[session.ID] = *session
	return nil
}

func (r *sessionRepository) GetForCoach(ctx context.Context, coachID, sessionID uuid.UUID) (*models.TrainingSession, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	session, ok := r.s.sessions[sessionID]
	if !ok || !r.s.ownsSession(coachID, session) {
		return nil, repository.ErrNotFound
	}
	session.GroupName = r.s.groups[session.AgeGroupID].Name
	return &session, nil
}

func (r *sessionRepository) ListForCoach(ctx context.Context, coachID uuid.UUID, from, to time.Time) ([]models.TrainingSession, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var sessions []models.TrainingSession
	for _, session := range r.s.sessions {
		if !r.s.ownsSession(coachID, session) {
			continue
		}
		if session.Date.Before(from) || !session.Date.Before(to) {
			continue
		}
		session.GroupName = r.s.groups[session.AgeGroupID].Name
		sessions = append(sessions, session)
	}

	sort.Slice(sessions, func(i, j int) bool {
		ri, rj := slotRank(sessions[i].TimeSlot), slotRank(sessions[j].TimeSlot)
		if ri != rj {
			return ri < rj
		}
		gi, gj := r.s.groups[sessions[i].AgeGroupID], r.s.groups[sessions[j].AgeGroupID]
		return gi.MinAge < gj.MinAge
	})
	return sessions, nil
}

func (r *sessionRepository) UpdateStatus(ctx context.Context, sessionID uuid.UUID, status string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	session, ok := r.s.sessions[sessionID]
	if !ok {
		return repository.ErrNotFound
	}
	session.Status = status
	session.UpdatedAt = r.s.Now()
	r.s.sessions[sessionID] = session
	return nil
}

func (r *sessionRepository) SetGroupPhoto(ctx context.Context, sessionID uuid.UUID, photo string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	session, ok := r.s.sessions[sessionID]
	if !ok {
		return repository.ErrNotFound
	}
	session.GroupPhoto = &photo
	session.UpdatedAt = r.s.Now()
	r.s.sessions[sessionID] = session
	return nil
}
