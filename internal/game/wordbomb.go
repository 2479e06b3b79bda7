package game

import (
	"fmt"
	"sort"
	"strings"

	"github.com/scythe504/partydeck-backend/internal"
)

const alphabetSize = 26

// survivorIDs lists seated, not-yet-eliminated players sorted by id.
func survivorIDs(s *internal.GameState) []string {
	var ids []string
	for id, p := range s.Players {
		if p.IsActive() && (p.WordBomb == nil || !p.WordBomb.IsEliminated) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// timerFor steps the countdown down as completed rotations accumulate.
func timerFor(totalTurns, playerCount int) int {
	if playerCount < 1 {
		playerCount = 1
	}
	loops := totalTurns / playerCount
	switch {
	case loops >= 15:
		return 7
	case loops >= 10:
		return 10
	case loops >= 5:
		return 15
	default:
		return internal.WordBombInitialTimer
	}
}

func (r *Reducer) applySubmitWord(s *internal.GameState, a Action) error {
	if err := requireGameType(s, internal.GameWordBomb, a.Type); err != nil {
		return err
	}
	if err := requireTurn(s, a.ActorID, a.Type); err != nil {
		return err
	}
	if s.MatchStatus != internal.MatchPlaying || s.WordBomb == nil {
		return nil
	}

	var p WordPayload
	if err := decodeInto(a.Payload, &p, a.Type); err != nil {
		return err
	}
	word := strings.ToLower(strings.TrimSpace(p.Word))
	wb := s.WordBomb

	// A miss is not an error: the turn stays put and the attempt is logged.
	if !strings.Contains(word, strings.ToLower(wb.Prompt)) {
		s.AppendHistory(a.ActorID, internal.TurnInfo,
			fmt.Sprintf("%q doesn't contain %q!", word, wb.Prompt), r.now())
		return nil
	}
	if contains(wb.UsedWords, word) {
		s.AppendHistory(a.ActorID, internal.TurnInfo,
			fmt.Sprintf("%q was already used!", word), r.now())
		return nil
	}

	wb.UsedWords = append(wb.UsedWords, word)
	newPrompt := randomPrompt(r.rng)

	survivors := survivorIDs(s)
	next := nextInRotation(survivors, a.ActorID)

	// Letter coverage toward the golden heart.
	player := s.Players[a.ActorID]
	data := player.WordBomb
	letterSet := make(map[rune]bool)
	for _, l := range data.UsedLetters {
		for _, c := range l {
			letterSet[c] = true
		}
	}
	for _, c := range word {
		if c >= 'a' && c <= 'z' {
			letterSet[c] = true
		}
	}
	letters := make([]string, 0, len(letterSet))
	for c := range letterSet {
		letters = append(letters, string(c))
	}
	sort.Strings(letters)
	data.UsedLetters = letters

	note := fmt.Sprintf("%q accepted!", word)
	if len(letters) >= alphabetSize && !data.GoldenHeart {
		data.GoldenHeart = true
		if data.Lives < internal.WordBombMaxLives {
			data.Lives++
		}
		note = "ALPHABET COMPLETE! Golden Heart Awarded!"
	}

	wb.Prompt = newPrompt
	wb.TimerDuration = timerFor(len(wb.UsedWords), len(survivors))
	wb.TurnStartTime = r.now()
	wb.CurrentTyping = ""
	s.TurnPlayerID = next
	s.AppendHistory(a.ActorID, internal.TurnInfo,
		fmt.Sprintf("%s New prompt: %q", note, newPrompt), r.now())
	return nil
}

func (r *Reducer) applyTimerExpired(s *internal.GameState, a Action) error {
	if err := requireGameType(s, internal.GameWordBomb, a.Type); err != nil {
		return err
	}
	if s.MatchStatus != internal.MatchPlaying || s.WordBomb == nil {
		return nil
	}
	current := s.TurnPlayerID
	if current == "" {
		return nil
	}
	return r.loseLife(s, current, fmt.Sprintf("%s ran out of time", playerName(s, current)), false)
}

// applyForfeitWord lets the current player yield instead of waiting out the
// countdown. Same life cost as the timer.
func (r *Reducer) applyForfeitWord(s *internal.GameState, a Action) error {
	if s.GameType != internal.GameWordBomb {
		return nil
	}
	if s.TurnPlayerID != a.ActorID {
		return nil
	}
	if s.MatchStatus != internal.MatchPlaying || s.WordBomb == nil {
		return nil
	}
	return r.loseLife(s, a.ActorID, fmt.Sprintf("%s gave up", playerName(s, a.ActorID)), true)
}

func (r *Reducer) loseLife(s *internal.GameState, playerID, cause string, resetTimer bool) error {
	player := s.Players[playerID]
	if player == nil || player.WordBomb == nil {
		return nil
	}
	wb := s.WordBomb
	data := player.WordBomb
	data.Lives--
	if data.Lives <= 0 {
		data.IsEliminated = true
	}

	survivors := survivorIDs(s)
	if len(survivors) <= 1 {
		winnerID := ""
		if len(survivors) == 1 {
			winnerID = survivors[0]
			s.Players[winnerID].Wins++
		}
		s.MatchStatus = internal.MatchFinished
		s.WinnerID = winnerID
		s.TurnPlayerID = ""
		wb.LobbyCountdownStart = r.now()
		wb.JoinedNextRound = activeIDs(s)
		s.AppendHistory(internal.SystemActor, internal.TurnWin,
			fmt.Sprintf("%s! %s wins! Next round in 15 seconds...", cause, playerName(s, winnerID)), r.now())
		return nil
	}

	newPrompt := randomPrompt(r.rng)
	livesNote := "ELIMINATED!"
	if data.Lives > 0 {
		livesNote = fmt.Sprintf("%d lives left.", data.Lives)
	}

	wb.Prompt = newPrompt
	wb.TurnStartTime = r.now()
	wb.CurrentTyping = ""
	if resetTimer {
		wb.TimerDuration = internal.WordBombInitialTimer
	}
	s.TurnPlayerID = nextInRotation(survivors, playerID)
	s.AppendHistory(internal.SystemActor, internal.TurnInfo,
		fmt.Sprintf("%s! %s New prompt: %q", cause, livesNote, newPrompt), r.now())
	return nil
}

// applyUpdateTyping mirrors the current player's keystrokes; ephemeral, the
// transport broadcasts it without a store round-trip.
func (r *Reducer) applyUpdateTyping(s *internal.GameState, a Action) error {
	if s.GameType != internal.GameWordBomb || s.WordBomb == nil {
		return nil
	}
	if s.TurnPlayerID != a.ActorID {
		return nil
	}
	var p TypingPayload
	if err := decodeInto(a.Payload, &p, a.Type); err != nil {
		return err
	}
	s.WordBomb.CurrentTyping = p.Text
	return nil
}

// ===== BETWEEN-ROUND LOBBY =====

func (r *Reducer) applyJoinNextRound(s *internal.GameState, a Action) error {
	if s.GameType != internal.GameWordBomb || s.WordBomb == nil {
		return nil
	}
	if s.MatchStatus != internal.MatchFinished {
		return nil
	}
	if contains(s.WordBomb.JoinedNextRound, a.ActorID) {
		return nil
	}
	s.WordBomb.JoinedNextRound = append(s.WordBomb.JoinedNextRound, a.ActorID)
	s.AppendHistory(internal.SystemActor, internal.TurnInfo,
		fmt.Sprintf("%s joined next round!", playerName(s, a.ActorID)), r.now())
	return nil
}

func (r *Reducer) applyLeaveNextRound(s *internal.GameState, a Action) error {
	if s.GameType != internal.GameWordBomb || s.WordBomb == nil {
		return nil
	}
	if s.MatchStatus != internal.MatchFinished {
		return nil
	}
	s.WordBomb.JoinedNextRound = remove(s.WordBomb.JoinedNextRound, a.ActorID)
	return nil
}

func (r *Reducer) applyStartWordBombRound(s *internal.GameState, a Action) error {
	if s.GameType != internal.GameWordBomb || s.WordBomb == nil {
		return nil
	}
	if s.MatchStatus != internal.MatchFinished {
		return nil
	}
	joined := append([]string(nil), s.WordBomb.JoinedNextRound...)
	if len(joined) < 2 {
		return nil
	}

	for _, p := range s.Players {
		p.Role = internal.RoleSpectator
		p.WordBomb = nil
	}
	for _, id := range joined {
		if p, ok := s.Players[id]; ok {
			p.Role = internal.RolePlayer
			p.WordBomb = &internal.WordBombPlayerData{Lives: internal.WordBombInitialLives}
		}
	}

	prompt := randomPrompt(r.rng)
	s.WordBomb = &internal.WordBombState{
		Prompt:        prompt,
		UsedWords:     []string{},
		TurnStartTime: r.now(),
		TimerDuration: internal.WordBombInitialTimer,
	}
	s.Status = internal.PartyPlaying
	s.MatchStatus = internal.MatchPlaying
	s.TurnPlayerID = joined[0]
	s.WinnerID = ""
	s.AppendHistory(internal.SystemActor, internal.TurnInfo,
		fmt.Sprintf("New round started with %d players! Prompt: %q", len(joined), prompt), r.now())
	return nil
}

func (r *Reducer) applyResetLobbyTimer(s *internal.GameState, a Action) error {
	if s.GameType != internal.GameWordBomb || s.WordBomb == nil {
		return nil
	}
	if s.MatchStatus != internal.MatchFinished {
		return nil
	}
	s.WordBomb.LobbyCountdownStart = r.now()
	return nil
}
