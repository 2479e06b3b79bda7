package game

import (
	"fmt"
	"strings"

	"github.com/scythe504/partydeck-backend/internal"
)

func (r *Reducer) applyImposterReady(s *internal.GameState, a Action) error {
	if s.GameType != internal.GameImposter || s.Imposter == nil {
		return nil
	}
	im := s.Imposter
	if im.Phase != internal.ImposterReveal {
		return nil
	}
	if contains(im.ReadyPlayers, a.ActorID) {
		return nil
	}
	im.ReadyPlayers = append(im.ReadyPlayers, a.ActorID)

	if len(im.ReadyPlayers) >= internal.ImposterPlayerCount &&
		len(im.PlayerOrder) == internal.ImposterPlayerCount {
		im.Phase = internal.ImposterPlaying
		s.AppendHistory(internal.SystemActor, internal.TurnInfo,
			"All players ready! The game begins...", r.now())
	}
	return nil
}

// advanceImposterTurn moves to the next seat, pushing into voting after the
// ninth turn. The imposter's hint is wiped once their first turn is done so
// a page refresh can't re-show it.
func (r *Reducer) advanceImposterTurn(s *internal.GameState, actorID string) {
	im := s.Imposter
	if actorID == im.ImposterID {
		if p := s.Players[actorID]; p != nil && p.Imposter != nil {
			p.Imposter.Word = ""
		}
	}

	im.CurrentIndex = (im.CurrentIndex + 1) % internal.ImposterPlayerCount
	im.TurnNumber++

	if im.TurnNumber > internal.ImposterTotalTurns {
		im.Phase = internal.ImposterVoting
		s.TurnPlayerID = ""
		s.AppendHistory(internal.SystemActor, internal.TurnInfo,
			"All turns completed! Time to vote for the imposter...", r.now())
		return
	}
	s.TurnPlayerID = im.PlayerOrder[im.CurrentIndex]
}

func (r *Reducer) applySubmitHint(s *internal.GameState, a Action) error {
	if s.GameType != internal.GameImposter || s.Imposter == nil {
		return nil
	}
	im := s.Imposter
	if im.Mode != internal.ImposterText {
		return fmt.Errorf("%s: not in text mode: %w", a.Type, internal.ErrInvalidAction)
	}
	if im.Phase != internal.ImposterPlaying {
		return fmt.Errorf("%s: phase is %s: %w", a.Type, im.Phase, internal.ErrWrongPhase)
	}
	if err := requireTurn(s, a.ActorID, a.Type); err != nil {
		return err
	}

	var p HintPayload
	if err := decodeInto(a.Payload, &p, a.Type); err != nil {
		return err
	}
	hint := strings.TrimSpace(p.Hint)
	if hint == "" {
		return fmt.Errorf("%s: empty hint: %w", a.Type, internal.ErrInvalidAction)
	}

	im.Hints = append(im.Hints, internal.ImposterHint{
		PlayerID:   a.ActorID,
		Hint:       hint,
		TurnNumber: im.TurnNumber,
	})
	s.AppendHistory(a.ActorID, internal.TurnInfo,
		fmt.Sprintf("%s submitted their hint", playerName(s, a.ActorID)), r.now())
	r.advanceImposterTurn(s, a.ActorID)
	return nil
}

// applyEndImposterTurn is the in-person flavor: the hint was spoken aloud,
// only the rotation is tracked.
func (r *Reducer) applyEndImposterTurn(s *internal.GameState, a Action) error {
	if s.GameType != internal.GameImposter || s.Imposter == nil {
		return nil
	}
	im := s.Imposter
	if im.Mode != internal.ImposterIRL {
		return fmt.Errorf("%s: not in irl mode: %w", a.Type, internal.ErrInvalidAction)
	}
	if im.Phase != internal.ImposterPlaying {
		return fmt.Errorf("%s: phase is %s: %w", a.Type, im.Phase, internal.ErrWrongPhase)
	}
	if err := requireTurn(s, a.ActorID, a.Type); err != nil {
		return err
	}

	s.AppendHistory(a.ActorID, internal.TurnInfo,
		fmt.Sprintf("%s ended their turn", playerName(s, a.ActorID)), r.now())
	r.advanceImposterTurn(s, a.ActorID)
	return nil
}

func (r *Reducer) applyImposterVote(s *internal.GameState, a Action) error {
	if s.GameType != internal.GameImposter || s.Imposter == nil {
		return nil
	}
	im := s.Imposter
	if im.Phase != internal.ImposterVoting {
		return fmt.Errorf("%s: phase is %s: %w", a.Type, im.Phase, internal.ErrWrongPhase)
	}

	var p VotePayload
	if err := decodeInto(a.Payload, &p, a.Type); err != nil {
		return err
	}
	if p.VotedForID == "" {
		return fmt.Errorf("%s: missing vote target: %w", a.Type, internal.ErrInvalidAction)
	}
	if p.VotedForID == a.ActorID {
		return fmt.Errorf("%s: cannot vote for yourself: %w", a.Type, internal.ErrInvalidAction)
	}
	if !contains(im.PlayerOrder, p.VotedForID) {
		return fmt.Errorf("%s: target not in this round: %w", a.Type, internal.ErrInvalidAction)
	}
	for _, v := range im.Votes {
		if v.VoterID == a.ActorID {
			return fmt.Errorf("%s: already voted: %w", a.Type, internal.ErrInvalidAction)
		}
	}

	im.Votes = append(im.Votes, internal.ImposterVote{VoterID: a.ActorID, VotedForID: p.VotedForID})
	if len(im.Votes) < internal.ImposterPlayerCount {
		s.AppendHistory(internal.SystemActor, internal.TurnInfo,
			fmt.Sprintf("%s has voted", playerName(s, a.ActorID)), r.now())
		return nil
	}

	// All votes are in. Catching the imposter takes a strict majority on
	// exactly them.
	counts := map[string]int{}
	for _, v := range im.Votes {
		counts[v.VotedForID]++
	}
	maxVotes := 0
	for _, n := range counts {
		if n > maxVotes {
			maxVotes = n
		}
	}
	var topVoted []string
	for id, n := range counts {
		if n == maxVotes {
			topVoted = append(topVoted, id)
		}
	}
	caught := len(topVoted) == 1 && topVoted[0] == im.ImposterID && maxVotes >= 2

	if caught {
		for _, id := range im.PlayerOrder {
			if id != im.ImposterID {
				if p, ok := s.Players[id]; ok {
					p.Wins++
				}
			}
		}
		s.WinnerID = ""
	} else {
		if p, ok := s.Players[im.ImposterID]; ok {
			p.Wins++
		}
		s.WinnerID = im.ImposterID
	}

	im.Phase = internal.ImposterResults
	s.MatchStatus = internal.MatchFinished

	imposterName := playerName(s, im.ImposterID)
	msg := fmt.Sprintf("The imposter (%s) escaped detection! Imposter wins!", imposterName)
	if caught {
		msg = fmt.Sprintf("The imposter (%s) was caught! Non-imposters win!", imposterName)
	}
	s.AppendHistory(internal.SystemActor, internal.TurnWin, msg, r.now())
	return nil
}

func (r *Reducer) applyImposterNextRound(s *internal.GameState, a Action) error {
	if s.GameType != internal.GameImposter || s.Imposter == nil {
		return nil
	}
	im := s.Imposter
	if im.Phase != internal.ImposterResults {
		return nil
	}
	if len(im.PlayerOrder) != internal.ImposterPlayerCount {
		return fmt.Errorf("IMPOSTER_NEXT_ROUND: need %d players to play again: %w",
			internal.ImposterPlayerCount, internal.ErrInvalidAction)
	}

	s.Queue = append([]string(nil), im.PlayerOrder...)
	s.MatchStatus = internal.MatchLobby
	return r.startImposterMatch(s)
}
