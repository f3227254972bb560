package player_service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"coachpad/internal/models"
	"coachpad/internal/repository"
	"coachpad/internal/service"

	"github.com/google/uuid"
)

type playerService struct {
	playerRepo     repository.PlayerRepository
	attendanceRepo repository.AttendanceRepository
	planRepo       repository.TrainingPlanRepository
}

func NewPlayerService(
	playerRepo repository.PlayerRepository,
	attendanceRepo repository.AttendanceRepository,
	planRepo repository.TrainingPlanRepository,
) service.PlayerService {
	return &playerService{
		playerRepo:     playerRepo,
		attendanceRepo: attendanceRepo,
		planRepo:       planRepo,
	}
}

// ComputeStatistics derives a player's statistics from their attendance
// history and active plan. It is a pure projection: nothing here is
// stored, so the numbers cannot drift from the source rows.
//
// RemainingSessions may be negative: sessions_used is never capped
// against sessions_booked. RemainingComplimentary stays within [0,3]
// because complimentary_used is capped at increment time. With no plan
// all plan-derived fields are zero, and the attendance rate is 0 when
// no sessions were booked.
func ComputeStatistics(attendances []models.Attendance, plan *models.TrainingPlan) models.PlayerStatistics {
	var stats models.PlayerStatistics

	for _, att := range attendances {
		if att.Status != models.AttendancePresent {
			continue
		}
		stats.TotalAttendances++
		if att.IsComplimentary {
			stats.ComplimentaryAttendances++
		}
	}
	stats.RegularAttendances = stats.TotalAttendances - stats.ComplimentaryAttendances

	if plan != nil {
		stats.SessionsBooked = plan.SessionsBooked
		stats.SessionsUsed = plan.SessionsUsed
		stats.ComplimentaryUsed = plan.ComplimentaryUsed
	}
	stats.RemainingSessions = stats.SessionsBooked - stats.SessionsUsed
	stats.RemainingComplimentary = models.ComplimentaryCap - stats.ComplimentaryUsed

	if stats.SessionsBooked > 0 {
		rate := float64(stats.TotalAttendances) / float64(stats.SessionsBooked) * 100
		stats.AttendanceRate = int(math.Round(rate))
	}

	return stats
}

func (s *playerService) ListWithStatistics(ctx context.Context, coachID uuid.UUID) ([]models.PlayerWithStatistics, error) {
	players, err := s.playerRepo.ListByCoach(ctx, coachID)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	result := make([]models.PlayerWithStatistics, 0, len(players))
	for _, p := range players {
		attendances, err := s.attendanceRepo.GetByPlayer(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("load attendance for player %s: %w", p.ID, err)
		}
		plan, err := s.planRepo.GetActiveByPlayer(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("load plan for player %s: %w", p.ID, err)
		}

		p.ActivePlan = plan
		result = append(result, models.PlayerWithStatistics{
			Player:     p,
			Statistics: ComputeStatistics(attendances, plan),
		})
	}

	return result, nil
}

func (s *playerService) GetWithHistory(ctx context.Context, coachID, playerID uuid.UUID) (*models.PlayerWithStatistics, error) {
	player, err := s.playerRepo.GetForCoach(ctx, coachID, playerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, fmt.Errorf("load player: %w", err)
	}

	attendances, err := s.attendanceRepo.GetByPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("load attendance: %w", err)
	}
	plan, err := s.planRepo.GetActiveByPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("load plan: %w", err)
	}

	player.ActivePlan = plan
	return &models.PlayerWithStatistics{
		Player:      *player,
		Attendances: attendances,
		Statistics:  ComputeStatistics(attendances, plan),
	}, nil
}
