package session

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"coachpad/internal/models"
	"coachpad/internal/repository"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type sessionRepository struct {
	db *sqlx.DB
}

func NewSessionRepository(db *sqlx.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, session *models.TrainingSession) error {
	query := `
		INSERT INTO training_sessions (id, date, time_slot, status, max_players, age_group_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`
	return r.db.QueryRowContext(
		ctx,
		query,
		session.ID,
		session.Date,
		session.TimeSlot,
		session.Status,
		session.MaxPlayers,
		session.AgeGroupID,
	).Scan(&session.CreatedAt, &session.UpdatedAt)
}

func (r *sessionRepository) GetForCoach(ctx context.Context, coachID, sessionID uuid.UUID) (*models.TrainingSession, error) {
	query := `
		SELECT s.id, s.date, s.time_slot, s.status, s.max_players, s.group_photo,
		       s.age_group_id, s.created_at, s.updated_at,
		       g.name AS group_name
		FROM training_sessions s
		JOIN age_groups g ON s.age_group_id = g.id
		WHERE s.id = $1 AND g.coach_id = $2
	`
	var session models.TrainingSession
	if err := r.db.GetContext(ctx, &session, query, sessionID, coachID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) ListForCoach(ctx context.Context, coachID uuid.UUID, from, to time.Time) ([]models.TrainingSession, error) {
	query := `
		SELECT s.id, s.date, s.time_slot, s.status, s.max_players, s.group_photo,
		       s.age_group_id, s.created_at, s.updated_at,
		       g.name AS group_name
		FROM training_sessions s
		JOIN age_groups g ON s.age_group_id = g.id
		WHERE g.coach_id = $1 AND s.date >= $2 AND s.date < $3
		ORDER BY s.time_slot, g.min_age
	`
	var sessions []models.TrainingSession
	if err := r.db.SelectContext(ctx, &sessions, query, coachID, from, to); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *sessionRepository) UpdateStatus(ctx context.Context, sessionID uuid.UUID, status string) error {
	query := `
		UPDATE training_sessions
		SET status = $1, updated_at = now()
		WHERE id = $2
	`
	result, err := r.db.ExecContext(ctx, query, status, sessionID)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func (r *sessionRepository) SetGroupPhoto(ctx context.Context, sessionID uuid.UUID, photo string) error {
	query := `
		UPDATE training_sessions
		SET group_photo = $1, updated_at = now()
		WHERE id = $2
	`
	result, err := r.db.ExecContext(ctx, query, photo, sessionID)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func requireRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
