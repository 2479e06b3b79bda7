package game

import (
	"fmt"

	"github.com/scythe504/partydeck-backend/internal"
)

// Deduction flow: ask passes the turn to the opponent, their answer hands it
// back, a guess either ends the match or passes the turn.

func (r *Reducer) applyAsk(s *internal.GameState, a Action) error {
	if err := requirePlaying(s, a.Type); err != nil {
		return err
	}
	if err := requireTurn(s, a.ActorID, a.Type); err != nil {
		return err
	}
	question, err := decodeString(a.Payload, a.Type)
	if err != nil {
		return err
	}

	s.TurnPlayerID = opponentOf(s, a.ActorID)
	s.AppendHistory(a.ActorID, internal.TurnAsk, question, r.now())
	return nil
}

// applyAnswer is deliberately not turn-gated; answering puts the turn on the
// answerer so they can ask next.
func (r *Reducer) applyAnswer(s *internal.GameState, a Action) error {
	if err := requirePlaying(s, a.Type); err != nil {
		return err
	}
	answer, err := decodeString(a.Payload, a.Type)
	if err != nil {
		return err
	}

	s.TurnPlayerID = a.ActorID
	s.AppendHistory(a.ActorID, internal.TurnAnswer, answer, r.now())
	return nil
}

func (r *Reducer) applyGuess(s *internal.GameState, a Action) error {
	if err := requirePlaying(s, a.Type); err != nil {
		return err
	}
	if err := requireTurn(s, a.ActorID, a.Type); err != nil {
		return err
	}
	input, err := decodeString(a.Payload, a.Type)
	if err != nil {
		return err
	}

	opponentID := opponentOf(s, a.ActorID)
	if opponentID == "" {
		return fmt.Errorf("%s: no opponent: %w", a.Type, internal.ErrInvalidAction)
	}
	opponent := s.Players[opponentID]

	guessed, ok := FindCharacter(input)
	if !ok {
		return fmt.Errorf("%s: character %q: %w", a.Type, input, internal.ErrNotFound)
	}

	correct := opponent.GuessWho != nil && opponent.GuessWho.CharacterID == guessed.ID
	if correct {
		s.MatchStatus = internal.MatchFinished
		s.WinnerID = a.ActorID
		s.TurnPlayerID = ""
		s.Players[a.ActorID].Wins++
		s.AppendHistory(internal.SystemActor, internal.TurnWin,
			fmt.Sprintf("%s correctly guessed %s!", playerName(s, a.ActorID), guessed.Name), r.now())
		return nil
	}

	s.TurnPlayerID = opponentID
	s.AppendHistory(internal.SystemActor, internal.TurnInfo,
		fmt.Sprintf("%s guessed %s incorrectly. Turn passes to opponent.", playerName(s, a.ActorID), guessed.Name), r.now())
	return nil
}
