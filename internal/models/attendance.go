package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	AttendancePresent = "PRESENT"
	AttendanceAbsent  = "ABSENT"
)

type Attendance struct {
	ID              uuid.UUID `db:"id" json:"id"`
	PlayerID        uuid.UUID `db:"player_id" json:"player_id"`
	SessionID       uuid.UUID `db:"session_id" json:"session_id"`
	Status          string    `db:"status" json:"status"`
	IsComplimentary bool      `db:"is_complimentary" json:"is_complimentary"`
	Photo           *string   `db:"photo" json:"photo,omitempty"`
	Notes           string    `db:"notes" json:"notes"`
	MarkedAt        time.Time `db:"marked_at" json:"marked_at"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`

	// Joined fields
	PlayerName string           `db:"player_name" json:"player_name,omitempty"`
	Player     *Player          `db:"-" json:"player,omitempty"`
	Session    *TrainingSession `db:"-" json:"session,omitempty"`
	ActivePlan *TrainingPlan    `db:"-" json:"active_plan,omitempty"`
}

// CREATE TYPE attendance_status AS ENUM ('PRESENT', 'ABSENT');
//
// CREATE TABLE attendance (
//     id UUID PRIMARY KEY,
//     player_id UUID NOT NULL REFERENCES players(id) ON DELETE CASCADE,
//     session_id UUID NOT NULL REFERENCES training_sessions(id) ON DELETE CASCADE,
//     status attendance_status NOT NULL,
//     is_complimentary BOOLEAN NOT NULL DEFAULT false,
//     photo TEXT,
//     notes TEXT NOT NULL DEFAULT '',
//     marked_at TIMESTAMPTZ NOT NULL DEFAULT now(),
//     created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
//     UNIQUE (player_id, session_id)
// );
