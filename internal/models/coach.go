package models

import (
	"time"

	"github.com/google/uuid"
)

type Coach struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Username  string    `db:"username" json:"username"`
	Password  string    `db:"password" json:"-"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`

	// Joined fields
	AgeGroups []AgeGroup `db:"-" json:"age_groups,omitempty"`
}

// CREATE TABLE coaches (
//     id UUID PRIMARY KEY,
//     username TEXT NOT NULL UNIQUE,
//     password TEXT NOT NULL,
//     name TEXT NOT NULL,
//     email TEXT NOT NULL,
//     created_at TIMESTAMPTZ NOT NULL DEFAULT now()
// );
