package web

import (
	"errors"
	"net/http"
	"time"

	"coachpad/internal/models"
	"coachpad/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler struct {
	authService       service.AuthService
	sessionService    service.SessionService
	attendanceService service.AttendanceService
	playerService     service.PlayerService
	validate          *validator.Validate
	log               *zap.Logger
}

func NewHandler(
	authService service.AuthService,
	sessionService service.SessionService,
	attendanceService service.AttendanceService,
	playerService service.PlayerService,
	log *zap.Logger,
) *Handler {
	return &Handler{
		authService:       authService,
		sessionService:    sessionService,
		attendanceService: attendanceService,
		playerService:     playerService,
		validate:          validator.New(),
		log:               log,
	}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		h.internalError(w, "login", err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) TodaySessions(w http.ResponseWriter, r *http.Request) {
	coach := coachFromContext(r.Context())

	sessions, err := h.sessionService.Today(r.Context(), coach.ID)
	if err != nil {
		h.internalError(w, "list today's sessions", err)
		return
	}
	if sessions == nil {
		sessions = []models.TrainingSession{}
	}

	writeJSON(w, http.StatusOK, sessions)
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	coach := coachFromContext(r.Context())
	sessionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	session, err := h.sessionService.Get(r.Context(), coach.ID, sessionID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}
		h.internalError(w, "get session", err)
		return
	}

	writeJSON(w, http.StatusOK, session)
}

func (h *Handler) UpdateSessionStatus(w http.ResponseWriter, r *http.Request) {
	coach := coachFromContext(r.Context())
	sessionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	var req updateSessionStatusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	session, err := h.sessionService.UpdateStatus(r.Context(), coach.ID, sessionID, req.Status)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}
		h.internalError(w, "update session status", err)
		return
	}

	writeJSON(w, http.StatusOK, session)
}

func (h *Handler) UploadGroupPhoto(w http.ResponseWriter, r *http.Request) {
	coach := coachFromContext(r.Context())
	sessionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	var req groupPhotoRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	session, err := h.sessionService.SetGroupPhoto(r.Context(), coach.ID, sessionID, req.Photo)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}
		h.internalError(w, "upload group photo", err)
		return
	}

	writeJSON(w, http.StatusOK, session)
}

func (h *Handler) RecordAttendance(w http.ResponseWriter, r *http.Request) {
	coach := coachFromContext(r.Context())

	var req recordAttendanceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	att, err := h.attendanceService.Record(r.Context(), coach.ID, service.RecordAttendanceInput{
		PlayerID:        req.PlayerID,
		SessionID:       req.SessionID,
		Status:          req.Status,
		IsComplimentary: req.IsComplimentary,
		Photo:           req.Photo,
		Notes:           req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			writeError(w, http.StatusNotFound, "session not found")
		case errors.Is(err, service.ErrConflict):
			writeError(w, http.StatusConflict, "concurrent update, please retry")
		default:
			h.internalError(w, "record attendance", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, att)
}

func (h *Handler) SessionAttendance(w http.ResponseWriter, r *http.Request) {
	coach := coachFromContext(r.Context())
	sessionID, err := uuid.Parse(chi.URLParam(r, "sessionId"))
	if err != nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	attendances, err := h.attendanceService.SessionAttendance(r.Context(), coach.ID, sessionID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}
		h.internalError(w, "get session attendance", err)
		return
	}
	if attendances == nil {
		attendances = []models.Attendance{}
	}

	writeJSON(w, http.StatusOK, attendances)
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	coach := coachFromContext(r.Context())

	players, err := h.playerService.ListWithStatistics(r.Context(), coach.ID)
	if err != nil {
		h.internalError(w, "list players", err)
		return
	}
	if players == nil {
		players = []models.PlayerWithStatistics{}
	}

	writeJSON(w, http.StatusOK, players)
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	coach := coachFromContext(r.Context())
	playerID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "player not found")
		return
	}

	player, err := h.playerService.GetWithHistory(r.Context(), coach.ID, playerID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeError(w, http.StatusNotFound, "player not found")
			return
		}
		h.internalError(w, "get player", err)
		return
	}

	writeJSON(w, http.StatusOK, player)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) internalError(w http.ResponseWriter, op string, err error) {
	h.log.Error(op, zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal server error")
}
