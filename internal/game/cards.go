package game

import (
	"fmt"

	"github.com/scythe504/partydeck-backend/internal"
)

// cardPlayerIDs lists seated players holding a hand, czar excluded, sorted.
func cardPlayerIDs(s *internal.GameState, excludeCzar bool) []string {
	ids := activeIDs(s)
	if !excludeCzar || s.Cards == nil {
		return ids
	}
	return remove(ids, s.Cards.CzarID)
}

func (r *Reducer) applySubmitCards(s *internal.GameState, a Action) error {
	if err := requireGameType(s, internal.GameCards, a.Type); err != nil {
		return err
	}
	if s.MatchStatus != internal.MatchPlaying || s.Cards == nil {
		return nil
	}
	cs := s.Cards
	if a.ActorID == cs.CzarID {
		return nil
	}
	for _, sub := range cs.Submissions {
		if sub.PlayerID == a.ActorID {
			return nil
		}
	}
	if cs.BlackCard == nil {
		return nil
	}

	cards, err := decodeStrings(a.Payload, a.Type)
	if err != nil {
		return err
	}
	if len(cards) != cs.BlackCard.Pick {
		return fmt.Errorf("%s: black card takes %d card(s), got %d: %w",
			a.Type, cs.BlackCard.Pick, len(cards), internal.ErrInvalidAction)
	}

	player := s.Players[a.ActorID]
	if player.Cards != nil {
		hand := player.Cards.Hand[:0]
		for _, c := range player.Cards.Hand {
			if !contains(cards, c) {
				hand = append(hand, c)
			}
		}
		player.Cards.Hand = hand
	}

	// A hand-written card is allowed; it just scores half when it wins.
	isCustom := false
	for _, c := range cards {
		if !isKnownWhiteCard(c) {
			isCustom = true
			break
		}
	}

	cs.Submissions = append(cs.Submissions, internal.CardSubmission{
		PlayerID: a.ActorID,
		Cards:    cards,
		IsCustom: isCustom,
	})

	pickers := cardPlayerIDs(s, true)
	allIn := len(pickers) > 0
	for _, id := range pickers {
		found := false
		for _, sub := range cs.Submissions {
			if sub.PlayerID == id {
				found = true
				break
			}
		}
		if !found {
			allIn = false
			break
		}
	}

	if allIn {
		cs.Phase = internal.CardsJudge
		// Shuffle so the czar can't match submissions to seat order.
		r.rng.Shuffle(len(cs.Submissions), func(i, j int) {
			cs.Submissions[i], cs.Submissions[j] = cs.Submissions[j], cs.Submissions[i]
		})
		s.AppendHistory(internal.SystemActor, internal.TurnInfo,
			"All players submitted! Czar is judging.", r.now())
	}
	return nil
}

func (r *Reducer) applyPickWinner(s *internal.GameState, a Action) error {
	if err := requireGameType(s, internal.GameCards, a.Type); err != nil {
		return err
	}
	if s.MatchStatus != internal.MatchPlaying || s.Cards == nil {
		return nil
	}
	cs := s.Cards
	if a.ActorID != cs.CzarID {
		return fmt.Errorf("%s: only the czar picks: %w", a.Type, internal.ErrNotHost)
	}
	if cs.Phase != internal.CardsJudge {
		return fmt.Errorf("%s: phase is %s: %w", a.Type, cs.Phase, internal.ErrWrongPhase)
	}

	winnerID, err := decodeString(a.Payload, a.Type)
	if err != nil {
		return err
	}
	var winning *internal.CardSubmission
	for i := range cs.Submissions {
		if cs.Submissions[i].PlayerID == winnerID {
			winning = &cs.Submissions[i]
			break
		}
	}
	if winning == nil {
		return fmt.Errorf("%s: no submission from %s: %w", a.Type, winnerID, internal.ErrInvalidAction)
	}
	winning.IsWinner = true

	points := 1.0
	if winning.IsCustom {
		points = 0.5
	}
	winner := s.Players[winnerID]
	if winner.Cards == nil {
		winner.Cards = &internal.CardsPlayerData{}
	}
	winner.Cards.Score += points

	threshold := s.CardsWinThreshold()
	gameOver := winner.Cards.Score >= threshold

	cs.Phase = internal.CardsResult
	s.WinnerID = winnerID
	s.TurnPlayerID = ""
	if gameOver {
		s.MatchStatus = internal.MatchFinished
		s.Status = internal.PartyLobby
		s.AppendHistory(internal.SystemActor, internal.TurnWin,
			fmt.Sprintf("%s WINS THE GAME with %g points!", winner.Name, winner.Cards.Score), r.now())
	} else {
		custom := ""
		if winning.IsCustom {
			custom = " (Custom)"
		}
		s.AppendHistory(internal.SystemActor, internal.TurnWin,
			fmt.Sprintf("%s wins the round%s! (+%g, Total: %g/%g)", winner.Name, custom, points, winner.Cards.Score, threshold), r.now())
	}
	return nil
}

func (r *Reducer) applyCardsNextRound(s *internal.GameState, a Action) error {
	if s.GameType != internal.GameCards || s.Cards == nil {
		return nil
	}
	cs := s.Cards
	if cs.Phase != internal.CardsResult {
		return nil
	}

	// Czar rotates through the seated players by sorted id.
	ids := activeIDs(s)
	if len(ids) == 0 {
		return nil
	}
	nextCzar := nextInRotation(ids, cs.CzarID)

	for _, id := range ids {
		p := s.Players[id]
		if p.Cards == nil {
			p.Cards = &internal.CardsPlayerData{}
		}
		for len(p.Cards.Hand) < internal.CardsHandSize {
			card := whiteCards[r.rng.Intn(len(whiteCards))]
			p.Cards.Hand = append(p.Cards.Hand, card)
			cs.UsedWhite = append(cs.UsedWhite, card)
		}
	}

	black := blackCards[r.rng.Intn(len(blackCards))]
	cs.BlackCard = &black
	cs.Submissions = []internal.CardSubmission{}
	cs.Phase = internal.CardsPick
	cs.CzarID = nextCzar
	s.TurnPlayerID = nextCzar
	s.WinnerID = ""
	s.AppendHistory(internal.SystemActor, internal.TurnInfo,
		fmt.Sprintf("Next Round! Czar is %s", playerName(s, nextCzar)), r.now())
	return nil
}

func (r *Reducer) applyCardsToLobby(s *internal.GameState, a Action) error {
	if s.GameType != internal.GameCards {
		return nil
	}
	if s.MatchStatus != internal.MatchFinished {
		return nil
	}
	if a.ActorID != s.HostID {
		return nil
	}

	ids := activeIDs(s)
	for _, p := range s.Players {
		p.Cards = &internal.CardsPlayerData{Hand: []string{}}
	}

	s.MatchStatus = internal.MatchLobby
	s.Queue = ids
	s.Cards = nil
	s.WinnerID = ""
	s.TurnPlayerID = ""
	s.AppendHistory(internal.SystemActor, internal.TurnInfo,
		"Returned to lobby. Ready for next game!", r.now())
	return nil
}
