package models

import (
	"time"

	"github.com/google/uuid"
)

type Player struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Email       string    `db:"email" json:"email"`
	Phone       string    `db:"phone" json:"phone"`
	DateOfBirth time.Time `db:"date_of_birth" json:"date_of_birth"`
	AgeGroupID  uuid.UUID `db:"age_group_id" json:"age_group_id"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`

	// Joined fields
	AgeGroupName string        `db:"age_group_name" json:"age_group_name,omitempty"`
	ActivePlan   *TrainingPlan `db:"-" json:"active_plan,omitempty"`
}

// PlayerStatistics is a projection derived from a player's attendance
// history and active plan. It is computed per request and never stored.
type PlayerStatistics struct {
	TotalAttendances         int `json:"total_attendances"`
	RegularAttendances       int `json:"regular_attendances"`
	ComplimentaryAttendances int `json:"complimentary_attendances"`
	SessionsBooked           int `json:"sessions_booked"`
	SessionsUsed             int `json:"sessions_used"`
	ComplimentaryUsed        int `json:"complimentary_used"`
	RemainingSessions        int `json:"remaining_sessions"`
	RemainingComplimentary   int `json:"remaining_complimentary"`
	AttendanceRate           int `json:"attendance_rate"`
}

type PlayerWithStatistics struct {
	Player
	Attendances []Attendance     `json:"attendances,omitempty"`
	Statistics  PlayerStatistics `json:"statistics"`
}

// CREATE TABLE players (
//     id UUID PRIMARY KEY,
//     name TEXT NOT NULL,
//     email TEXT NOT NULL DEFAULT '',
//     phone TEXT NOT NULL DEFAULT '',
//     date_of_birth DATE NOT NULL,
//     age_group_id UUID NOT NULL REFERENCES age_groups(id) ON DELETE CASCADE,
//     created_at TIMESTAMPTZ NOT NULL DEFAULT now()
// );
