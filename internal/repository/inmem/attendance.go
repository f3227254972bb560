package inmem

import (
	"context"
	"sort"

	"coachpad/internal/models"
	"coachpad/internal/repository"

	"github.com/google/uuid"
)

type trainingPlanRepository struct {
	s *Store
}

func NewTrainingPlanRepository(s *Store) repository.TrainingPlanRepository {
	return &trainingPlanRepository{s: s}
}

func (r *trainingPlanRepository) Create(ctx context.Context, plan *models.TrainingPlan) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if plan.ID == uuid.Nil {
		plan.ID = uuid.New()
	}
	plan.CreatedAt = r.s.Now()
	r.s.plans[plan.ID] = *plan
	return nil
}

func (r *trainingPlanRepository) GetActiveByPlayer(ctx context.Context, playerID uuid.UUID) (*models.TrainingPlan, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return r.s.activePlan(playerID), nil
}

type attendanceRepository struct {
	s *Store
}

func NewAttendanceRepository(s *Store) repository.AttendanceRepository {
	return &attendanceRepository{s: s}
}

func (r *attendanceRepository) Record(ctx context.Context, att *models.Attendance, adj repository.PlanAdjustment) (*models.Attendance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := r.s.Now()
	key := pairKey{playerID: att.PlayerID, sessionID: att.SessionID}

	rec := *att
	if existing, ok := r.s.attendance[key]; ok {
		rec.ID = existing.ID
		rec.CreatedAt = existing.CreatedAt
	} else {
		if rec.ID == uuid.Nil {
			rec.ID = uuid.New()
		}
		rec.CreatedAt = now
	}
	rec.MarkedAt = now
	r.s.attendance[key] = rec

	switch adj {
	case repository.AdjustSessions:
		for id, plan := range r.s.plans {
			if plan.PlayerID == att.PlayerID && plan.IsActive {
				plan.SessionsUsed++
				r.s.plans[id] = plan
			}
		}
	case repository.AdjustComplimentary:
		for id, plan := range r.s.plans {
			if plan.PlayerID == att.PlayerID && plan.IsActive && plan.ComplimentaryUsed < models.ComplimentaryCap {
				plan.ComplimentaryUsed++
				r.s.plans[id] = plan
			}
		}
	}

	out := rec
	return &out, nil
}

func (r *attendanceRepository) GetByPlayerAndSession(ctx context.Context, playerID, sessionID uuid.UUID) (*models.Attendance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	att, ok := r.s.attendance[pairKey{playerID: playerID, sessionID: sessionID}]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &att, nil
}

func (r *attendanceRepository) GetBySession(ctx context.Context, sessionID uuid.UUID) ([]models.Attendance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var attendances []models.Attendance
	for _, att := range r.s.attendance {
		if att.SessionID != sessionID {
			continue
		}
		if player, ok := r.s.players[att.PlayerID]; ok {
			att.PlayerName = player.Name
		}
		att.ActivePlan = r.s.activePlan(att.PlayerID)
		attendances = append(attendances, att)
	}

	sort.Slice(attendances, func(i, j int) bool {
		return attendances[i].PlayerName < attendances[j].PlayerName
	})
	return attendances, nil
}

func (r *attendanceRepository) GetByPlayer(ctx context.Context, playerID uuid.UUID) ([]models.Attendance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var attendances []models.Attendance
	for _, att := range r.s.attendance {
		if att.PlayerID != playerID {
			continue
		}
		if session, ok := r.s.sessions[att.SessionID]; ok {
			session.GroupName = r.s.groups[session.AgeGroupID].Name
			att.Session = &session
		}
		attendances = append(attendances, att)
	}

	sort.Slice(attendances, func(i, j int) bool {
		si, sj := attendances[i].Session, attendances[j].Session
		if si == nil || sj == nil {
			return si != nil
		}
		if !si.Date.Equal(sj.Date) {
			return si.Date.After(sj.Date)
		}
		return slotRank(si.TimeSlot) > slotRank(sj.TimeSlot)
	})
	return attendances, nil
}
