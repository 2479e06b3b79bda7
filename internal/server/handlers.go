package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/scythe504/partydeck-backend/internal"
	"github.com/scythe504/partydeck-backend/internal/game"
	"github.com/scythe504/partydeck-backend/internal/utils"
)

const roomCodeAttempts = 5

var validGameTypes = map[internal.GameType]bool{
	internal.GameGuessWho:     true,
	internal.GameConnect4:     true,
	internal.GameWordBomb:     true,
	internal.GameCards:        true,
	internal.GameDotsAndBoxes: true,
	internal.GameImposter:     true,
}

type createRoomRequest struct {
	HostName          string                `json:"host_name"`
	GameType          internal.GameType     `json:"game_type"`
	Visibility        internal.Visibility   `json:"visibility"`
	ImposterMode      internal.ImposterMode `json:"imposter_mode,omitempty"`
	CardsWinThreshold float64               `json:"cards_win_threshold,omitempty"`
}

type roomCredentials struct {
	RoomID   string `json:"room_id"`
	PlayerID string `json:"player_id"`
}

func (s *Server) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req createRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !validGameTypes[req.GameType] {
		writeError(w, http.StatusBadRequest, "unknown game type")
		return
	}
	if req.CardsWinThreshold != 0 && (req.CardsWinThreshold < 3 || req.CardsWinThreshold > 10) {
		writeError(w, http.StatusBadRequest, "win threshold must be between 3 and 10")
		return
	}

	hostName := utils.SanitizeName(req.HostName)
	if hostName == "" {
		hostName = "Host"
	}
	if err := utils.ValidateName(hostName); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Retry on code collision; four characters collide eventually.
	roomID := ""
	for i := 0; i < roomCodeAttempts; i++ {
		candidate := utils.GenerateRoomCode()
		if _, err := s.store.Get(r.Context(), candidate); errors.Is(err, internal.ErrNotFound) {
			roomID = candidate
			break
		}
	}
	if roomID == "" {
		writeError(w, http.StatusInternalServerError, "failed to generate room code")
		return
	}

	hostID := uuid.NewString()
	state := s.reducer.NewGameState(roomID, hostID, hostName, req.GameType, game.RoomOptions{
		Visibility:        req.Visibility,
		SpectatorView:     internal.SpectatorLog,
		CardsWinThreshold: req.CardsWinThreshold,
		ImposterMode:      req.ImposterMode,
	})
	if err := s.store.Put(r.Context(), state); err != nil {
		writeDomainError(w, err)
		return
	}

	log.Info().Str("room", roomID).Str("game", string(req.GameType)).Msg("room created")
	writeJSON(w, http.StatusOK, roomCredentials{RoomID: roomID, PlayerID: hostID})
}

type joinRoomRequest struct {
	RoomID      string `json:"room_id"`
	PlayerName  string `json:"player_name"`
	IsSpectator bool   `json:"is_spectator,omitempty"`
}

func (s *Server) JoinRoom(w http.ResponseWriter, r *http.Request) {
	var req joinRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	name := utils.SanitizeName(req.PlayerName)
	if name == "" {
		if req.IsSpectator {
			name = "Spectator"
		} else {
			name = "Player 2"
		}
	}
	if err := utils.ValidateName(name); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	state, err := s.store.Get(r.Context(), strings.ToUpper(strings.TrimSpace(req.RoomID)))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	// A ban sticks to the normalized name too, not just the old id.
	for _, banned := range state.BannedIDs {
		if banned == utils.NameFingerprint(name) {
			writeDomainError(w, internal.ErrBanned)
			return
		}
	}

	playerID := uuid.NewString()
	var next *internal.GameState
	if req.IsSpectator {
		next = state.Clone()
		next.Players[playerID] = &internal.Player{
			ID:       playerID,
			Name:     name,
			Role:     internal.RoleSpectator,
			JoinedAt: time.Now().UnixMilli(),
		}
	} else {
		next, err = s.reducer.JoinGame(state, playerID, name)
		if err != nil {
			writeDomainError(w, err)
			return
		}
	}

	if err := s.store.Put(r.Context(), next); err != nil {
		writeDomainError(w, err)
		return
	}
	s.hub.PublishState(next)

	log.Info().Str("room", next.RoomID).Str("player", playerID).Bool("spectator", req.IsSpectator).Msg("player joined")
	writeJSON(w, http.StatusOK, roomCredentials{RoomID: next.RoomID, PlayerID: playerID})
}

// GetGame returns the room state projected for the requesting viewer.
func (s *Server) GetGame(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["roomId"]
	viewerID := r.URL.Query().Get("playerId")

	state, err := s.store.Get(r.Context(), roomID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, game.ProjectFor(state, viewerID, time.Now().UnixMilli()))
}

type actionRequest struct {
	RoomID   string          `json:"room_id"`
	PlayerID string          `json:"player_id"`
	Type     game.ActionType `json:"type"`
	Payload  json.RawMessage `json:"payload,omitempty"`
}

type actionResponse struct {
	Success bool `json:"success"`
	Ended   bool `json:"ended,omitempty"`
}

func (s *Server) HandleAction(w http.ResponseWriter, r *http.Request) {
	var req actionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	action := game.Action{ActorID: req.PlayerID, Type: req.Type, Payload: req.Payload}

	// Typing updates never touch the store; they fan out and are gone.
	if req.Type == game.ActionUpdateTyping {
		var p game.TypingPayload
		if len(req.Payload) > 0 {
			if err := json.Unmarshal(req.Payload, &p); err != nil {
				writeError(w, http.StatusBadRequest, "invalid payload")
				return
			}
		}
		s.hub.PublishTyping(req.RoomID, req.PlayerID, p.Text)
		writeJSON(w, http.StatusOK, actionResponse{Success: true})
		return
	}

	state, err := s.store.Get(r.Context(), req.RoomID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	// Word submissions pass the dictionary gate before the rules see them,
	// so an unreachable dictionary can never cost a life.
	if req.Type == game.ActionSubmitWord && state.GameType == internal.GameWordBomb {
		var p game.WordPayload
		if err := json.Unmarshal(req.Payload, &p); err != nil {
			writeError(w, http.StatusBadRequest, "invalid payload")
			return
		}
		word := strings.ToLower(strings.TrimSpace(p.Word))
		if len(word) < 2 {
			writeError(w, http.StatusBadRequest, "word too short")
			return
		}
		if !s.dict.IsWord(r.Context(), word) {
			writeError(w, http.StatusBadRequest, "not a valid dictionary word")
			return
		}
	}

	next, err := s.reducer.Apply(state, action)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	// The reducer only validates END_PARTY; removing the room and telling
	// everyone is transport work.
	if req.Type == game.ActionEndParty {
		if err := s.store.Delete(r.Context(), req.RoomID); err != nil {
			writeDomainError(w, err)
			return
		}
		s.hub.PublishPartyEnded(req.RoomID, next.HostID)
		log.Info().Str("room", req.RoomID).Msg("party ended")
		writeJSON(w, http.StatusOK, actionResponse{Success: true, Ended: true})
		return
	}

	if err := s.store.Put(r.Context(), next); err != nil {
		writeDomainError(w, err)
		return
	}
	s.hub.PublishState(next)
	writeJSON(w, http.StatusOK, actionResponse{Success: true})
}

type matchSummary struct {
	RoomID     string               `json:"room_id"`
	HostName   string               `json:"host_name"`
	GameType   internal.GameType    `json:"game_type"`
	Spectators int                  `json:"spectators"`
	Status     internal.PartyStatus `json:"status"`
	CreatedAt  int64                `json:"created_at"`
}

// ListMatches returns a summary of public rooms with a match underway.
func (s *Server) ListMatches(w http.ResponseWriter, r *http.Request) {
	states, err := s.store.ListPublicActive(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	summaries := make([]matchSummary, 0, len(states))
	for _, st := range states {
		hostName := "Unknown"
		if host, ok := st.Players[st.HostID]; ok {
			hostName = host.Name
		}
		spectators := 0
		for _, p := range st.Players {
			if p.Role == internal.RoleSpectator {
				spectators++
			}
		}
		status := st.Status
		if st.MatchStatus == internal.MatchPlaying {
			status = internal.PartyPlaying
		}
		summaries = append(summaries, matchSummary{
			RoomID:     st.RoomID,
			HostName:   hostName,
			GameType:   st.GameType,
			Spectators: spectators,
			Status:     status,
			CreatedAt:  st.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, summaries)
}

type wordCheckResponse struct {
	Word  string `json:"word"`
	Valid bool   `json:"valid"`
}

func (s *Server) ValidateWord(w http.ResponseWriter, r *http.Request) {
	word := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("word")))
	if word == "" {
		writeError(w, http.StatusBadRequest, "missing word")
		return
	}
	writeJSON(w, http.StatusOK, wordCheckResponse{Word: word, Valid: s.dict.IsWord(r.Context(), word)})
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
