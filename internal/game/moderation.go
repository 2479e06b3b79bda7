package game

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/scythe504/partydeck-backend/internal"
	"github.com/scythe504/partydeck-backend/internal/utils"
)

// ===== PARTY-WIDE ACTIONS =====

func (r *Reducer) applyChat(s *internal.GameState, a Action) error {
	var p ChatPayload
	if err := decodeInto(a.Payload, &p, a.Type); err != nil {
		return err
	}
	text := strings.TrimSpace(p.Text)
	if text == "" {
		return nil
	}
	scope := internal.ChatScope(p.Scope)
	if scope != internal.ChatGame {
		scope = internal.ChatParty
	}

	s.Chat = append(s.Chat, internal.ChatMessage{
		ID:        uuid.NewString(),
		PlayerID:  a.ActorID,
		Text:      text,
		Timestamp: r.now(),
		Scope:     scope,
	})
	if len(s.Chat) > internal.ChatBacklog {
		s.Chat = s.Chat[len(s.Chat)-internal.ChatBacklog:]
	}
	return nil
}

func (r *Reducer) applyUpdateName(s *internal.GameState, a Action) error {
	name, err := decodeString(a.Payload, a.Type)
	if err != nil {
		return err
	}
	if name == "" {
		return fmt.Errorf("%s: empty name: %w", a.Type, internal.ErrInvalidAction)
	}
	s.Players[a.ActorID].Name = utils.SanitizeName(name)
	return nil
}

// applyToggleElimination flips a crossed-off character on the actor's own
// board. Allowed any time, it is a personal annotation, not a move.
func (r *Reducer) applyToggleElimination(s *internal.GameState, a Action) error {
	targetID, err := decodeString(a.Payload, a.Type)
	if err != nil {
		return err
	}
	p := s.Players[a.ActorID]
	if p.GuessWho == nil {
		p.GuessWho = &internal.GuessWhoPlayerData{}
	}
	if contains(p.GuessWho.Eliminated, targetID) {
		p.GuessWho.Eliminated = remove(p.GuessWho.Eliminated, targetID)
	} else {
		p.GuessWho.Eliminated = append(p.GuessWho.Eliminated, targetID)
	}
	return nil
}

func (r *Reducer) applyForfeit(s *internal.GameState, a Action) error {
	if s.MatchStatus != internal.MatchPlaying {
		return nil
	}
	opponentID := opponentOf(s, a.ActorID)

	s.MatchStatus = internal.MatchFinished
	s.WinnerID = opponentID
	s.TurnPlayerID = ""
	if opponentID != "" {
		s.Players[opponentID].Wins++
	}

	content := fmt.Sprintf("%s forfeited the game", playerName(s, a.ActorID))
	if a.ActorID == s.HostID {
		content = fmt.Sprintf("Game ended by Host. %s wins!", playerName(s, opponentID))
	}
	s.AppendHistory(internal.SystemActor, internal.TurnGameOver, content, r.now())
	return nil
}

// ===== QUEUE AND MODERATION =====

func (r *Reducer) applyToggleQueuePlayer(s *internal.GameState, a Action) error {
	if err := requireHost(s, a.ActorID, a.Type); err != nil {
		return err
	}
	var p TargetPayload
	if err := decodeInto(a.Payload, &p, a.Type); err != nil {
		return err
	}
	if p.TargetID == "" {
		return nil
	}
	if _, ok := s.Players[p.TargetID]; !ok {
		return nil
	}
	if contains(s.Queue, p.TargetID) {
		s.Queue = remove(s.Queue, p.TargetID)
	} else {
		s.Queue = append(s.Queue, p.TargetID)
	}
	return nil
}

func (r *Reducer) applyReorderQueue(s *internal.GameState, a Action) error {
	if err := requireHost(s, a.ActorID, a.Type); err != nil {
		return err
	}
	newQueue, err := decodeStrings(a.Payload, a.Type)
	if err != nil {
		return err
	}

	// The reorder must be a permutation of the current queue.
	if len(newQueue) != len(s.Queue) {
		return fmt.Errorf("%s: queue mismatch: %w", a.Type, internal.ErrInvalidAction)
	}
	old := make(map[string]bool, len(s.Queue))
	for _, id := range s.Queue {
		old[id] = true
	}
	seen := make(map[string]bool, len(newQueue))
	for _, id := range newQueue {
		if !old[id] || seen[id] {
			return fmt.Errorf("%s: queue mismatch: %w", a.Type, internal.ErrInvalidAction)
		}
		seen[id] = true
	}
	s.Queue = newQueue
	return nil
}

func (r *Reducer) applyLeaveQueue(s *internal.GameState, a Action) error {
	if !contains(s.Queue, a.ActorID) {
		return nil
	}
	s.Queue = remove(s.Queue, a.ActorID)
	if s.GameType == internal.GameCards {
		s.Players[a.ActorID].Role = internal.RoleSpectator
	}
	return nil
}

func (r *Reducer) applyKickBan(s *internal.GameState, a Action) error {
	if err := requireHost(s, a.ActorID, a.Type); err != nil {
		return err
	}
	var p TargetPayload
	if err := decodeInto(a.Payload, &p, a.Type); err != nil {
		return err
	}
	if p.TargetID == "" {
		return nil
	}
	if p.TargetID == s.HostID {
		return fmt.Errorf("%s: cannot remove the host: %w", a.Type, internal.ErrInvalidAction)
	}
	target, ok := s.Players[p.TargetID]
	if !ok {
		return nil
	}

	wasActive := target.IsActive()
	delete(s.Players, p.TargetID)
	s.Queue = remove(s.Queue, p.TargetID)

	if a.Type == ActionBanPlayer {
		// Ban by id and by normalized name, so a rejoin under a fresh id
		// with the same name is still caught.
		s.BannedIDs = append(s.BannedIDs, p.TargetID, utils.NameFingerprint(target.Name))
	}

	// Removing an active player voids the match. No winner is awarded.
	if s.MatchStatus == internal.MatchPlaying && wasActive {
		s.MatchStatus = internal.MatchFinished
		s.WinnerID = ""
		s.TurnPlayerID = ""
		s.AppendHistory(internal.SystemActor, internal.TurnGameOver,
			fmt.Sprintf("Player %s was kicked by Host. Match ended (No Contest).", target.Name), r.now())
	}
	return nil
}

func (r *Reducer) applyTransferHost(s *internal.GameState, a Action) error {
	if err := requireHost(s, a.ActorID, a.Type); err != nil {
		return err
	}
	var p TargetPayload
	if err := decodeInto(a.Payload, &p, a.Type); err != nil {
		return err
	}
	if p.TargetID == "" {
		return fmt.Errorf("%s: missing target: %w", a.Type, internal.ErrInvalidAction)
	}
	if _, ok := s.Players[p.TargetID]; !ok {
		return fmt.Errorf("%s: target %s: %w", a.Type, p.TargetID, internal.ErrNotFound)
	}
	s.HostID = p.TargetID
	s.AppendHistory(internal.SystemActor, internal.TurnInfo,
		fmt.Sprintf("Host transferred to %s", playerName(s, p.TargetID)), r.now())
	return nil
}

func (r *Reducer) applyLeaveParty(s *internal.GameState, a Action) error {
	leaverName := playerName(s, a.ActorID)
	delete(s.Players, a.ActorID)
	s.Queue = remove(s.Queue, a.ActorID)

	// Host succession is by sorted id so every replica lands on the same
	// new host.
	if s.HostID == a.ActorID {
		remaining := make([]string, 0, len(s.Players))
		for id := range s.Players {
			remaining = append(remaining, id)
		}
		sort.Strings(remaining)
		if len(remaining) > 0 {
			s.HostID = remaining[0]
		} else {
			s.HostID = ""
		}
	}

	s.AppendHistory(internal.SystemActor, internal.TurnInfo,
		fmt.Sprintf("%s left the party", leaverName), r.now())
	return nil
}

// applyEndParty only validates; the transport layer deletes the room from
// storage and broadcasts the closing event.
func (r *Reducer) applyEndParty(s *internal.GameState, a Action) error {
	if err := requireHost(s, a.ActorID, a.Type); err != nil {
		return err
	}
	s.Status = internal.PartyFinished
	s.MatchStatus = internal.MatchFinished
	s.TurnPlayerID = ""
	return nil
}

// applyEndTurn is plain sorted round-robin over the seated players.
func (r *Reducer) applyEndTurn(s *internal.GameState, a Action) error {
	if err := requireTurn(s, a.ActorID, a.Type); err != nil {
		return err
	}
	s.TurnPlayerID = nextInRotation(activeIDs(s), a.ActorID)
	return nil
}
