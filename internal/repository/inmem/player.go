package inmem

import (
	"context"
	"sort"

	"coachpad/internal/models"
	"coachpad/internal/repository"

	"github.com/google/uuid"
)

type ageGroupRepository struct {
	s *Store
}

func NewAgeGroupRepository(s *Store) repository.AgeGroupRepository {
	return &ageGroupRepository{s: s}
}

func (r *ageGroupRepository) Create(ctx context.Context, group *models.AgeGroup) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if group.ID == uuid.Nil {
		group.ID = uuid.New()
	}
	group.CreatedAt = r.s.Now()
	r.s.groups[group.ID] = *group
	return nil
}

func (r *ageGroupRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.AgeGroup, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	group, ok := r.s.groups[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &group, nil
}

type playerRepository struct {
	s *Store
}

func NewPlayerRepository(s *Store) repository.PlayerRepository {
	return &playerRepository{s: s}
}

func (r *playerRepository) Create(ctx context.Context, player *models.Player) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if player.ID == uuid.Nil {
		player.ID = uuid.New()
	}
	player.CreatedAt = r.s.Now()
	r.s.players[player.ID] = *player
	return nil
}

func (r *playerRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	player, ok := r.s.players[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if group, ok := r.s.groups[player.AgeGroupID]; ok {
		player.AgeGroupName = group.Name
	}
	return &player, nil
}

func (r *playerRepository) GetForCoach(ctx context.Context, coachID, playerID uuid.UUID) (*models.Player, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	player, ok := r.s.players[playerID]
	if !ok || !r.s.ownsPlayer(coachID, player) {
		return nil, repository.ErrNotFound
	}
	player.AgeGroupName = r.s.groups[player.AgeGroupID].Name
	return &player, nil
}

func (r *playerRepository) ListByCoach(ctx context.Context, coachID uuid.UUID) ([]models.Player, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var players []models.Player
	for _, player := range r.s.players {
		if r.s.ownsPlayer(coachID, player) {
			player.AgeGroupName = r.s.groups[player.AgeGroupID].Name
			players = append(players, player)
		}
	}

	sort.Slice(players, func(i, j int) bool {
		gi, gj := r.s.groups[players[i].AgeGroupID], r.s.groups[players[j].AgeGroupID]
		if gi.MinAge != gj.MinAge {
			return gi.MinAge < gj.MinAge
		}
		return players[i].Name < players[j].Name
	})
	return players, nil
}

func (r *playerRepository) ListByAgeGroup(ctx context.Context, ageGroupID uuid.UUID) ([]models.Player, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var players []models.Player
	for _, player := range r.s.players {
		if player.AgeGroupID == ageGroupID {
			player.ActivePlan = r.s.activePlan(player.ID)
			players = append(players, player)
		}
	}

	sort.Slice(players, func(i, j int) bool { return players[i].Name < players[j].Name })
	return players, nil
}
