package coach

import (
	"context"
	"database/sql"
	"errors"

	"coachpad/internal/models"
	"coachpad/internal/repository"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type coachRepository struct {
	db *sqlx.DB
}

func NewCoachRepository(db *sqlx.DB) repository.CoachRepository {
	return &coachRepository{db: db}
}

func (r *coachRepository) Create(ctx context.Context, coach *models.Coach) error {
	query := `
		INSERT INTO coaches (id, username, password, name, email)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`
	return r.db.QueryRowContext(
		ctx,
		query,
		coach.ID,
		coach.Username,
		coach.Password,
		coach.Name,
		coach.Email,
	).Scan(&coach.CreatedAt)
}

func (r *coachRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Coach, error) {
	var coach models.Coach
	query := `SELECT * FROM coaches WHERE id = $1`
	if err := r.db.GetContext(ctx, &coach, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &coach, nil
}

func (r *coachRepository) GetByUsername(ctx context.Context, username string) (*models.Coach, error) {
	var coach models.Coach
	query := `SELECT * FROM coaches WHERE username = $1`
	if err := r.db.GetContext(ctx, &coach, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &coach, nil
}

func (r *coachRepository) GetAgeGroups(ctx context.Context, coachID uuid.UUID) ([]models.AgeGroup, error) {
	var groups []models.AgeGroup
	query := `
		SELECT id, name, description, min_age, max_age, coach_id, created_at
		FROM age_groups
		WHERE coach_id = $1
		ORDER BY min_age
	`
	if err := r.db.SelectContext(ctx, &groups, query, coachID); err != nil {
		return nil, err
	}

	for i := range groups {
		var players []models.Player
		rosterQuery := `
			SELECT id, name, email, phone, date_of_birth, age_group_id, created_at
			FROM players
			WHERE age_group_id = $1
			ORDER BY name
		`
		if err := r.db.SelectContext(ctx, &players, rosterQuery, groups[i].ID); err != nil {
			return nil, err
		}
		groups[i].Players = players
	}

	return groups, nil
}
