// Package inmem holds an in-memory implementation of every repository
// interface. It mirrors the semantics of the Postgres repositories,
// including the (player, session) upsert and the plan counter rules,
// so service-level tests can run without a database.
package inmem

import (
	"sync"
	"time"

	"coachpad/internal/models"

	"github.com/google/uuid"
)

type pairKey struct {
	playerID  uuid.UUID
	sessionID uuid.UUID
}

type Store struct {
	mu         sync.Mutex
	coaches    map[uuid.UUID]models.Coach
	groups     map[uuid.UUID]models.AgeGroup
	players    map[uuid.UUID]models.Player
	sessions   map[uuid.UUID]models.TrainingSession
	plans      map[uuid.UUID]models.TrainingPlan
	attendance map[pairKey]models.Attendance

	// Now is the store's clock; tests may replace it.
	Now func() time.Time
}

func NewStore() *Store {
	return &Store{
		coaches:    make(map[uuid.UUID]models.Coach),
		groups:     make(map[uuid.UUID]models.AgeGroup),
		players:    make(map[uuid.UUID]models.Player),
		sessions:   make(map[uuid.UUID]models.TrainingSession),
		plans:      make(map[uuid.UUID]models.TrainingPlan),
		attendance: make(map[pairKey]models.Attendance),
		Now:        time.Now,
	}
}

// ownsSession reports whether the session's age group belongs to the
// coach. Callers must hold s.mu.
func (s *Store) ownsSession(coachID uuid.UUID, session models.TrainingSession) bool {
	group, ok := s.groups[session.AgeGroupID]
	return ok && group.CoachID == coachID
}

// ownsPlayer reports whether the player's age group belongs to the
// coach. Callers must hold s.mu.
func (s *Store) ownsPlayer(coachID uuid.UUID, player models.Player) bool {
	group, ok := s.groups[player.AgeGroupID]
	return ok && group.CoachID == coachID
}

// activePlan returns a copy of the player's active plan. Callers must
// hold s.mu.
func (s *Store) activePlan(playerID uuid.UUID) *models.TrainingPlan {
	for _, plan := range s.plans {
		if plan.PlayerID == playerID && plan.IsActive {
			p := plan
			return &p
		}
	}
	return nil
}

func slotRank(slot string) int {
	if slot == models.TimeSlotMorning {
		return 0
	}
	return 1
}
