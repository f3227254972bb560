package agegroup

import (
	"context"
	"database/sql"
	"errors"

	"coachpad/internal/models"
	"coachpad/internal/repository"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type ageGroupRepository struct {
	db *sqlx.DB
}

func NewAgeGroupRepository(db *sqlx.DB) repository.AgeGroupRepository {
	return &ageGroupRepository{db: db}
}

func (r *ageGroupRepository) Create(ctx context.Context, group *models.AgeGroup) error {
	query := `
		INSERT INTO age_groups (id, name, description, min_age, max_age, coach_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`
	return r.db.QueryRowContext(
		ctx,
		query,
		group.ID,
		group.Name,
		group.Description,
		group.MinAge,
		group.MaxAge,
		group.CoachID,
	).Scan(&group.CreatedAt)
}

func (r *ageGroupRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.AgeGroup, error) {
	var group models.AgeGroup
	query := `SELECT * FROM age_groups WHERE id = $1`
	if err := r.db.GetContext(ctx, &group, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &group, nil
}
