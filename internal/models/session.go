package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	TimeSlotMorning = "MORNING"
	TimeSlotEvening = "EVENING"
)

const (
	SessionScheduled  = "SCHEDULED"
	SessionInProgress = "IN_PROGRESS"
	SessionCompleted  = "COMPLETED"
	SessionCancelled  = "CANCELLED"
)

type TrainingSession struct {
	ID         uuid.UUID `db:"id" json:"id"`
	Date       time.Time `db:"date" json:"date"`
	TimeSlot   string    `db:"time_slot" json:"time_slot"`
	Status     string    `db:"status" json:"status"`
	MaxPlayers int       `db:"max_players" json:"max_players"`
	GroupPhoto *string   `db:"group_photo" json:"group_photo,omitempty"`
	AgeGroupID uuid.UUID `db:"age_group_id" json:"age_group_id"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`

	// Joined fields
	GroupName   string       `db:"group_name" json:"group_name,omitempty"`
	Players     []Player     `db:"-" json:"players,omitempty"`
	Attendances []Attendance `db:"-" json:"attendances,omitempty"`
}

// CREATE TYPE time_slot AS ENUM ('MORNING', 'EVENING');
// CREATE TYPE session_status AS ENUM ('SCHEDULED', 'IN_PROGRESS', 'COMPLETED', 'CANCELLED');
//
// CREATE TABLE training_sessions (
//     id UUID PRIMARY KEY,
//     date TIMESTAMPTZ NOT NULL,
//     time_slot time_slot NOT NULL,
//     status session_status NOT NULL DEFAULT 'SCHEDULED',
//     max_players INT NOT NULL DEFAULT 20,
//     group_photo TEXT,
//     age_group_id UUID NOT NULL REFERENCES age_groups(id) ON DELETE CASCADE,
//     created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
//     updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
// );
