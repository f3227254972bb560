package web

import "github.com/google/uuid"

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type recordAttendanceRequest struct {
	PlayerID        uuid.UUID `json:"player_id" validate:"required"`
	SessionID       uuid.UUID `json:"session_id" validate:"required"`
	Status          string    `json:"status" validate:"required,oneof=PRESENT ABSENT"`
	IsComplimentary bool      `json:"is_complimentary"`
	Photo           *string   `json:"photo"`
	Notes           string    `json:"notes"`
}

type updateSessionStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=SCHEDULED IN_PROGRESS COMPLETED CANCELLED"`
}

type groupPhotoRequest struct {
	Photo string `json:"photo" validate:"required"`
}
