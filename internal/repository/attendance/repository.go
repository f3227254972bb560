package attendance

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"coachpad/internal/models"
	"coachpad/internal/repository"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type attendanceRepository struct {
	db *sqlx.DB
}

func NewAttendanceRepository(db *sqlx.DB) repository.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Record writes the attendance row and the plan counter in one
// transaction. The upsert is keyed on the (player_id, session_id)
// unique constraint, so re-marks update the existing row in place and
// concurrent first marks for the same pair collapse to one row. The
// counter update is a single conditional statement: no matching active
// plan (or a complimentary increment at the cap) affects zero rows and
// is not an error.
func (r *attendanceRepository) Record(ctx context.Context, att *models.Attendance, adj repository.PlanAdjustment) (*models.Attendance, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin attendance tx: %w", err)
	}
	defer tx.Rollback()

	rec := *att
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}

	upsert := `
		INSERT INTO attendance (id, player_id, session_id, status, is_complimentary, photo, notes, marked_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())
		ON CONFLICT (player_id, session_id) DO UPDATE SET
			status = EXCLUDED.status,
			is_complimentary = EXCLUDED.is_complimentary,
			photo = EXCLUDED.photo,
			notes = EXCLUDED.notes,
			marked_at = now()
		RETURNING id, marked_at, created_at
	`
	err = tx.QueryRowContext(
		ctx,
		upsert,
		rec.ID,
		rec.PlayerID,
		rec.SessionID,
		rec.Status,
		rec.IsComplimentary,
		rec.Photo,
		rec.Notes,
	).Scan(&rec.ID, &rec.MarkedAt, &rec.CreatedAt)
	if err != nil {
		return nil, mapConflict(err)
	}

	switch adj {
	case repository.AdjustSessions:
		_, err = tx.ExecContext(ctx, `
			UPDATE training_plans
			SET sessions_used = sessions_used + 1
			WHERE player_id = $1 AND is_active
		`, rec.PlayerID)
	case repository.AdjustComplimentary:
		_, err = tx.ExecContext(ctx, `
			UPDATE training_plans
			SET complimentary_used = complimentary_used + 1
			WHERE player_id = $1 AND is_active AND complimentary_used < $2
		`, rec.PlayerID, models.ComplimentaryCap)
	}
	if err != nil {
		return nil, mapConflict(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, mapConflict(err)
	}

	return &rec, nil
}

func (r *attendanceRepository) GetByPlayerAndSession(ctx context.Context, playerID, sessionID uuid.UUID) (*models.Attendance, error) {
	var att models.Attendance
	query := `
		SELECT id, player_id, session_id, status, is_complimentary, photo, notes, marked_at, created_at
		FROM attendance
		WHERE player_id = $1 AND session_id = $2
	`
	if err := r.db.GetContext(ctx, &att, query, playerID, sessionID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &att, nil
}

func (r *attendanceRepository) GetBySession(ctx context.Context, sessionID uuid.UUID) ([]models.Attendance, error) {
	query := `
		SELECT a.id, a.player_id, a.session_id, a.status, a.is_complimentary,
		       a.photo, a.notes, a.marked_at, a.created_at,
		       p.name AS player_name,
		       tp.id, tp.player_id, tp.sessions_booked, tp.sessions_used,
		       tp.complimentary_used, tp.start_date, tp.end_date, tp.is_active, tp.created_at
		FROM attendance a
		JOIN players p ON a.player_id = p.id
		LEFT JOIN training_plans tp ON tp.player_id = p.id AND tp.is_active
		WHERE a.session_id = $1
		ORDER BY p.name
	`

	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attendances []models.Attendance
	for rows.Next() {
		var att models.Attendance
		var planID, planPlayerID sql.Null[uuid.UUID]
		var booked, used, compUsed sql.NullInt64
		var start, end, planCreated sql.NullTime
		var active sql.NullBool

		err := rows.Scan(
			&att.ID, &att.PlayerID, &att.SessionID, &att.Status, &att.IsComplimentary,
			&att.Photo, &att.Notes, &att.MarkedAt, &att.CreatedAt,
			&att.PlayerName,
			&planID, &planPlayerID, &booked, &used,
			&compUsed, &start, &end, &active, &planCreated,
		)
		if err != nil {
			return nil, err
		}

		if planID.Valid {
			att.ActivePlan = &models.TrainingPlan{
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
		attendances = append(attendances, att)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return attendances, nil
}

func (r *attendanceRepository) GetByPlayer(ctx context.Context, playerID uuid.UUID) ([]models.Attendance, error) {
	query := `
		SELECT a.id, a.player_id, a.session_id, a.status, a.is_complimentary,
		       a.photo, a.notes, a.marked_at, a.created_at,
		       s.id, s.date, s.time_slot, s.status, s.max_players, s.age_group_id,
		       s.created_at, s.updated_at,
		       g.name AS group_name
		FROM attendance a
		JOIN training_sessions s ON a.session_id = s.id
		JOIN age_groups g ON s.age_group_id = g.id
		WHERE a.player_id = $1
		ORDER BY s.date DESC, s.time_slot DESC
	`

	rows, err := r.db.QueryContext(ctx, query, playerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attendances []models.Attendance
	for rows.Next() {
		var att models.Attendance
		var session models.TrainingSession

		err := rows.Scan(
			&att.ID, &att.PlayerID, &att.SessionID, &att.Status, &att.IsComplimentary,
			&att.Photo, &att.Notes, &att.MarkedAt, &att.CreatedAt,
			&session.ID, &session.Date, &session.TimeSlot, &session.Status,
			&session.MaxPlayers, &session.AgeGroupID,
			&session.CreatedAt, &session.UpdatedAt,
			&session.GroupName,
		)
		if err != nil {
			return nil, err
		}

		att.Session = &session
		attendances = append(attendances, att)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return attendances, nil
}

// mapConflict translates unique-constraint and serialization failures
// into ErrConflict so the service layer can retry the reconciliation.
func mapConflict(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505", "40001":
			return repository.ErrConflict
		}
	}
	return err
}
