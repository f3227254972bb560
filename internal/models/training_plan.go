package models

import (
	"time"

	"github.com/google/uuid"
)

// ComplimentaryCap is the hard limit of complimentary credits per plan.
const ComplimentaryCap = 3

type TrainingPlan struct {
	ID                uuid.UUID `db:"id" json:"id"`
	PlayerID          uuid.UUID `db:"player_id" json:"player_id"`
	SessionsBooked    int       `db:"sessions_booked" json:"sessions_booked"`
	SessionsUsed      int       `db:"sessions_used" json:"sessions_used"`
	ComplimentaryUsed int       `db:"complimentary_used" json:"complimentary_used"`
	StartDate         time.Time `db:"start_date" json:"start_date"`
	EndDate           time.Time `db:"end_date" json:"end_date"`
	IsActive          bool      `db:"is_active" json:"is_active"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
}

// CREATE TABLE training_plans (
//     id UUID PRIMARY KEY,
//     player_id UUID NOT NULL REFERENCES players(id) ON DELETE CASCADE,
//     sessions_booked INT NOT NULL CHECK (sessions_booked >= 0),
//     sessions_used INT NOT NULL DEFAULT 0 CHECK (sessions_used >= 0),
//     complimentary_used INT NOT NULL DEFAULT 0 CHECK (complimentary_used BETWEEN 0 AND 3),
//     start_date DATE NOT NULL,
//     end_date DATE NOT NULL,
//     is_active BOOLEAN NOT NULL DEFAULT true,
//     created_at TIMESTAMPTZ NOT NULL DEFAULT now()
// );
// CREATE UNIQUE INDEX training_plans_one_active ON training_plans (player_id) WHERE is_active;
