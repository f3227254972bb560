package inmem

import (
	"context"
	"sort"

	"coachpad/internal/models"
	"coachpad/internal/repository"

	"github.com/google/uuid"
)

type coachRepository struct {
	s *Store
}

func NewCoachRepository(s *Store) repository.CoachRepository {
	return &coachRepository{s: s}
}

func (r *coachRepository) Create(ctx context.Context, coach *models.Coach) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if coach.ID == uuid.Nil {
		coach.ID = uuid.New()
	}
	coach.CreatedAt = r.s.Now()
	r.s.coaches[coach.ID] = *coach
	return nil
}

func (r *coachRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Coach, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	coach, ok := r.s.coaches[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &coach, nil
}

func (r *coachRepository) GetByUsername(ctx context.Context, username string) (*models.Coach, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, coach := range r.s.coaches {
		if coach.Username == username {
			c := coach
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *coachRepository) GetAgeGroups(ctx context.Context, coachID uuid.UUID) ([]models.AgeGroup, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var groups []models.AgeGroup
	for _, group := range r.s.groups {
		if group.CoachID != coachID {
			continue
		}
		for _, player := range r.s.players {
			if player.AgeGroupID == group.ID {
				group.Players = append(group.Players, player)
			}
		}
		sort.Slice(group.Players, func(i, j int) bool {
			return group.Players[i].Name < group.Players[j].Name
		})
		groups = append(groups, group)
	}

	sort.Slice(groups, func(i, j int) bool { return groups[i].MinAge < groups[j].MinAge })
	return groups, nil
}
