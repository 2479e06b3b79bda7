package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/scythe504/partydeck-backend/internal"
	"github.com/scythe504/partydeck-backend/internal/dictionary"
	"github.com/scythe504/partydeck-backend/internal/game"
	"github.com/scythe504/partydeck-backend/internal/store"
)

type Server struct {
	store      store.Store
	reducer    *game.Reducer
	dict       *dictionary.Checker
	hub        *Hub
	corsOrigin string
}

func New(st store.Store, dict *dictionary.Checker, corsOrigin string) *Server {
	if corsOrigin == "" {
		corsOrigin = "*"
	}
	return &Server{
		store:      st,
		reducer:    game.NewReducer(),
		dict:       dict,
		hub:        NewHub(),
		corsOrigin: corsOrigin,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("encoding response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, internal.ErrorData{Message: msg})
}

// writeDomainError maps the reducer's error kinds onto HTTP statuses.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, internal.ErrNotParticipant):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, internal.ErrNotHost):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, internal.ErrBanned):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, internal.ErrNotYourTurn), errors.Is(err, internal.ErrWrongPhase):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, internal.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, internal.ErrInvalidAction):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		log.Error().Err(err).Msg("unhandled server error")
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
