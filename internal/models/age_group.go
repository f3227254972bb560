package models

import (
	"time"

	"github.com/google/uuid"
)

type AgeGroup struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	MinAge      int       `db:"min_age" json:"min_age"`
	MaxAge      int       `db:"max_age" json:"max_age"`
	CoachID     uuid.UUID `db:"coach_id" json:"coach_id"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`

	// Joined fields
	Players []Player `db:"-" json:"players,omitempty"`
}

// CREATE TABLE age_groups (
//     id UUID PRIMARY KEY,
//     name TEXT NOT NULL,
//     description TEXT NOT NULL DEFAULT '',
//     min_age INT NOT NULL,
//     max_age INT NOT NULL,
//     coach_id UUID NOT NULL REFERENCES coaches(id) ON DELETE CASCADE,
//     created_at TIMESTAMPTZ NOT NULL DEFAULT now()
// );
