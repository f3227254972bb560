package player

import (
	"context"
	"database/sql"
	"errors"

	"coachpad/internal/models"
	"coachpad/internal/repository"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type playerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) repository.PlayerRepository {
	return &playerRepository{db: db}
}

func (r *playerRepository) Create(ctx context.Context, player *models.Player) error {
	query := `
		INSERT INTO players (id, name, email, phone, date_of_birth, age_group_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`
	return r.db.QueryRowContext(
		ctx,
		query,
		player.ID,
		player.Name,
		player.Email,
		player.Phone,
		player.DateOfBirth,
		player.AgeGroupID,
	).Scan(&player.CreatedAt)
}

func (r *playerRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	query := `
		SELECT p.id, p.name, p.email, p.phone, p.date_of_birth, p.age_group_id, p.created_at,
		       g.name AS age_group_name
		FROM players p
		JOIN age_groups g ON p.age_group_id = g.id
		WHERE p.id = $1
	`
	var player models.Player
	if err := r.db.GetContext(ctx, &player, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &player, nil
}

func (r *playerRepository) GetForCoach(ctx context.Context, coachID, playerID uuid.UUID) (*models.Player, error) {
	query := `
		SELECT p.id, p.name, p.email, p.phone, p.date_of_birth, p.age_group_id, p.created_at,
		       g.name AS age_group_name
		FROM players p
		JOIN age_groups g ON p.age_group_id = g.id
		WHERE p.id = $1 AND g.coach_id = $2
	`
	var player models.Player
	if err := r.db.GetContext(ctx, &player, query, playerID, coachID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &player, nil
}

func (r *playerRepository) ListByCoach(ctx context.Context, coachID uuid.UUID) ([]models.Player, error) {
	query := `
		SELECT p.id, p.name, p.email, p.phone, p.date_of_birth, p.age_group_id, p.created_at,
		       g.name AS age_group_name
		FROM players p
		JOIN age_groups g ON p.age_group_id = g.id
		WHERE g.coach_id = $1
		ORDER BY g.min_age, p.name
	`
	var players []models.Player
	if err := r.db.SelectContext(ctx, &players, query, coachID); err != nil {
		return nil, err
	}
	return players, nil
}

func (r *playerRepository) ListByAgeGroup(ctx context.Context, ageGroupID uuid.UUID) ([]models.Player, error) {
	query := `
		SELECT p.id, p.name, p.email, p.phone, p.date_of_birth, p.age_group_id, p.created_at,
		       tp.id, tp.player_id, tp.sessions_booked, tp.sessions_used,
		       tp.complimentary_used, tp.start_date, tp.end_date, tp.is_active, tp.created_at
		FROM players p
		LEFT JOIN training_plans tp ON tp.player_id = p.id AND tp.is_active
		WHERE p.age_group_id = $1
		ORDER BY p.name
	`

	rows, err := r.db.QueryContext(ctx, query, ageGroupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var players []models.Player
	for rows.Next() {
		var p models.Player
		var planID, planPlayerID sql.Null[uuid.UUID]
		var booked, used, compUsed sql.NullInt64
		var start, end, planCreated sql.NullTime
		var active sql.NullBool

		err := rows.Scan(
			&p.ID, &p.Name, &p.Email, &p.Phone, &p.DateOfBirth, &p.AgeGroupID, &p.CreatedAt,
			&planID, &planPlayerID, &booked, &used,
			&compUsed, &start, &end, &active, &planCreated,
		)
		if err != nil {
			return nil, err
		}

		if planID.Valid {
			p.ActivePlan = &models.TrainingPlan{
				ID:                planID.V,
				PlayerID:          planPlayerID.V,
				SessionsBooked:    int(booked.Int64),
				SessionsUsed:      int(used.Int64),
				ComplimentaryUsed: int(compUsed.Int64),
				StartDate:         start.Time,
				EndDate:           end.Time,
				IsActive:          active.Bool,
				CreatedAt:         planCreated.Time,
			}
		}
		players = append(players, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return players, nil
}
