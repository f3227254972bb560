package plan

import (
	"context"
	"database/sql"
	"errors"

	"coachpad/internal/models"
	"coachpad/internal/repository"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type trainingPlanRepository struct {
	db *sqlx.DB
}

func NewTrainingPlanRepository(db *sqlx.DB) repository.TrainingPlanRepository {
	return &trainingPlanRepository{db: db}
}

func (r *trainingPlanRepository) Create(ctx context.Context, plan *models.TrainingPlan) error {
	query := `
		INSERT INTO training_plans
		(id, player_id, sessions_booked, sessions_used, complimentary_used, start_date, end_date, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`
	return r.db.QueryRowContext(
		ctx,
		query,
		plan.ID,
		plan.PlayerID,
		plan.SessionsBooked,
		plan.SessionsUsed,
		plan.ComplimentaryUsed,
		plan.StartDate,
		plan.EndDate,
		plan.IsActive,
	).Scan(&plan.CreatedAt)
}

func (r *trainingPlanRepository) GetActiveByPlayer(ctx context.Context, playerID uuid.UUID) (*models.TrainingPlan, error) {
	var plan models.TrainingPlan
	query := `SELECT * FROM training_plans WHERE player_id = $1 AND is_active`
	if err := r.db.GetContext(ctx, &plan, query, playerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}
