package game

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/scythe504/partydeck-backend/internal"
)

// Reducer applies one action to one room state. It is pure: no I/O, no
// timers, no logging. Randomness and time come in through the seams so a
// test can pin both.
type Reducer struct {
	rng Rand
	now Clock
}

func NewReducer() *Reducer {
	return &Reducer{rng: DefaultRand(), now: DefaultClock}
}

func NewReducerWith(rng Rand, now Clock) *Reducer {
	return &Reducer{rng: rng, now: now}
}

// Apply clones the state, mutates the clone and returns it. On any error the
// caller's state is untouched. Unknown action types are a no-op.
func (r *Reducer) Apply(state *internal.GameState, action Action) (*internal.GameState, error) {
	if state == nil {
		return nil, fmt.Errorf("apply %s: %w", action.Type, internal.ErrNotFound)
	}
	if _, ok := state.Players[action.ActorID]; !ok {
		return nil, fmt.Errorf("apply %s: actor %s: %w", action.Type, action.ActorID, internal.ErrNotParticipant)
	}

	s := state.Clone()
	s.LastActivity = r.now()

	var err error
	switch action.Type {
	case ActionChat:
		err = r.applyChat(s, action)
	case ActionUpdateName:
		err = r.applyUpdateName(s, action)
	case ActionToggleElimination:
		err = r.applyToggleElimination(s, action)
	case ActionForfeit:
		err = r.applyForfeit(s, action)
	case ActionToggleQueuePlayer:
		err = r.applyToggleQueuePlayer(s, action)
	case ActionReorderQueue:
		err = r.applyReorderQueue(s, action)
	case ActionLeaveQueue:
		err = r.applyLeaveQueue(s, action)
	case ActionKickPlayer, ActionBanPlayer:
		err = r.applyKickBan(s, action)
	case ActionTransferHost:
		err = r.applyTransferHost(s, action)
	case ActionLeaveParty:
		err = r.applyLeaveParty(s, action)
	case ActionEndParty:
		err = r.applyEndParty(s, action)
	case ActionStartMatch:
		err = r.applyStartMatch(s, action)
	case ActionAsk:
		err = r.applyAsk(s, action)
	case ActionAnswer:
		err = r.applyAnswer(s, action)
	case ActionGuess:
		err = r.applyGuess(s, action)
	case ActionEndTurn:
		err = r.applyEndTurn(s, action)
	case ActionDropPiece:
		err = r.applyDropPiece(s, action)
	case ActionSubmitWord:
		err = r.applySubmitWord(s, action)
	case ActionTimerExpired:
		err = r.applyTimerExpired(s, action)
	case ActionUpdateTyping:
		err = r.applyUpdateTyping(s, action)
	case ActionJoinNextRound:
		err = r.applyJoinNextRound(s, action)
	case ActionLeaveNextRound:
		err = r.applyLeaveNextRound(s, action)
	case ActionStartWordBomb:
		err = r.applyStartWordBombRound(s, action)
	case ActionResetLobbyTimer:
		err = r.applyResetLobbyTimer(s, action)
	case ActionForfeitWord:
		err = r.applyForfeitWord(s, action)
	case ActionSubmitCards:
		err = r.applySubmitCards(s, action)
	case ActionPickWinner:
		err = r.applyPickWinner(s, action)
	case ActionCardsNext:
		err = r.applyCardsNextRound(s, action)
	case ActionCardsToLobby:
		err = r.applyCardsToLobby(s, action)
	case ActionDrawLine:
		err = r.applyDrawLine(s, action)
	case ActionImposterReady:
		err = r.applyImposterReady(s, action)
	case ActionSubmitHint:
		err = r.applySubmitHint(s, action)
	case ActionEndImposter:
		err = r.applyEndImposterTurn(s, action)
	case ActionImposterVote:
		err = r.applyImposterVote(s, action)
	case ActionImposterNext:
		err = r.applyImposterNextRound(s, action)
	default:
		// Unknown kinds change nothing.
	}

	if err != nil {
		return nil, err
	}
	return s, nil
}

// ===== SHARED HELPERS =====

// activeIDs lists seated players sorted by id. All rotation walks this
// ordering so turn order is deterministic.
func activeIDs(s *internal.GameState) []string {
	ids := make([]string, 0, len(s.Players))
	for id, p := range s.Players {
		if p.IsActive() {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

func opponentOf(s *internal.GameState, playerID string) string {
	for _, id := range activeIDs(s) {
		if id != playerID {
			return id
		}
	}
	return ""
}

func nextInRotation(ids []string, current string) string {
	if len(ids) == 0 {
		return ""
	}
	for i, id := range ids {
		if id == current {
			return ids[(i+1)%len(ids)]
		}
	}
	return ids[0]
}

func playerName(s *internal.GameState, id string) string {
	if p, ok := s.Players[id]; ok {
		return p.Name
	}
	return "Unknown"
}

func contains(ss []string, v string) bool {
	for _, s := range ss {
		if s == v {
			return true
		}
	}
	return false
}

func remove(ss []string, v string) []string {
	out := ss[:0]
	for _, s := range ss {
		if s != v {
			out = append(out, s)
		}
	}
	return out
}

func requireHost(s *internal.GameState, actorID string, what ActionType) error {
	if s.HostID != actorID {
		return fmt.Errorf("%s: %w", what, internal.ErrNotHost)
	}
	return nil
}

func requireTurn(s *internal.GameState, actorID string, what ActionType) error {
	if s.TurnPlayerID != actorID {
		return fmt.Errorf("%s: %w", what, internal.ErrNotYourTurn)
	}
	return nil
}

func requirePlaying(s *internal.GameState, what ActionType) error {
	if s.MatchStatus != internal.MatchPlaying {
		return fmt.Errorf("%s: match is %s: %w", what, s.MatchStatus, internal.ErrWrongPhase)
	}
	return nil
}

func requireGameType(s *internal.GameState, gt internal.GameType, what ActionType) error {
	if s.GameType != gt {
		return fmt.Errorf("%s: not a %s room: %w", what, gt, internal.ErrInvalidAction)
	}
	return nil
}

// ===== PAYLOAD DECODING =====

func decodeString(raw json.RawMessage, what ActionType) (string, error) {
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", fmt.Errorf("%s payload: %w", what, internal.ErrInvalidAction)
	}
	return v, nil
}

func decodeInt(raw json.RawMessage, what ActionType) (int, error) {
	var v int
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, fmt.Errorf("%s payload: %w", what, internal.ErrInvalidAction)
	}
	return v, nil
}

func decodeStrings(raw json.RawMessage, what ActionType) ([]string, error) {
	var v []string
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("%s payload: %w", what, internal.ErrInvalidAction)
	}
	return v, nil
}

func decodeInto(raw json.RawMessage, dst any, what ActionType) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%s payload: %w", what, internal.ErrInvalidAction)
	}
	return nil
}
