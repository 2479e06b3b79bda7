package game

import (
	"fmt"
	"sort"

	"github.com/scythe504/partydeck-backend/internal"
)

// ===== ROOM CREATION =====

type RoomOptions struct {
	Visibility        internal.Visibility
	SpectatorView     internal.SpectatorView
	CardsWinThreshold float64
	ImposterMode      internal.ImposterMode
}

// NewGameState builds a fresh room with the creator seated as host.
func (r *Reducer) NewGameState(roomID, hostID, hostName string, gameType internal.GameType, opts RoomOptions) *internal.GameState {
	now := r.now()
	if opts.Visibility == "" {
		opts.Visibility = internal.VisibilityUnlisted
	}
	if opts.SpectatorView == "" {
		opts.SpectatorView = internal.SpectatorLog
	}

	s := &internal.GameState{
		RoomID:   roomID,
		GameType: gameType,
		HostID:   hostID,
		Players: map[string]*internal.Player{
			hostID: {
				ID:       hostID,
				Name:     hostName,
				Role:     internal.RolePlayer,
				JoinedAt: now,
			},
		},
		Queue:       []string{},
		BannedIDs:   []string{},
		Chat:        []internal.ChatMessage{},
		Status:      internal.PartyLobby,
		MatchStatus: internal.MatchLobby,
		History:     []internal.Turn{},
		Settings: internal.Settings{
			SpectatorView:     opts.SpectatorView,
			Visibility:        opts.Visibility,
			CardsWinThreshold: opts.CardsWinThreshold,
		},
		CreatedAt:    now,
		LastActivity: now,
	}

	if gameType == internal.GameImposter {
		mode := opts.ImposterMode
		if mode == "" {
			mode = internal.ImposterText
		}
		s.Imposter = &internal.ImposterState{Mode: mode, Scores: map[string]int{}}
		s.Queue = []string{hostID}
	}
	return s
}

// ===== JOIN FLOW =====

// JoinGame seats a newcomer. A second arrival auto-starts two-player
// variants; queue-based variants collect players in the queue instead.
func (r *Reducer) JoinGame(state *internal.GameState, playerID, playerName string) (*internal.GameState, error) {
	if _, ok := state.Players[playerID]; ok {
		return state, nil
	}

	s := state.Clone()
	s.LastActivity = r.now()

	newcomer := &internal.Player{
		ID:       playerID,
		Name:     playerName,
		Role:     internal.RoleSpectator,
		JoinedAt: r.now(),
	}

	if len(s.Players) == 1 {
		newcomer.Role = internal.RolePlayer
		s.Players[playerID] = newcomer

		switch s.GameType {
		case internal.GameCards, internal.GameImposter:
			// Needs three or more; hold both in the queue.
			s.Queue = []string{s.HostID, playerID}
			return s, nil
		case internal.GameGuessWho:
			r.startGuessWhoMatch(s, s.HostID, playerID)
		case internal.GameConnect4:
			r.startConnect4Match(s, s.HostID, playerID)
		case internal.GameWordBomb:
			r.startWordBombMatch(s, s.HostID, playerID)
		case internal.GameDotsAndBoxes:
			if err := r.startDotsAndBoxesMatch(s); err != nil {
				return nil, err
			}
		}
		return s, nil
	}

	if (s.GameType == internal.GameCards || s.GameType == internal.GameImposter) &&
		s.MatchStatus == internal.MatchLobby {
		newcomer.Role = internal.RolePlayer
		s.Players[playerID] = newcomer
		s.Queue = append(s.Queue, playerID)
		return s, nil
	}

	s.Players[playerID] = newcomer
	return s, nil
}

// ===== START MATCH =====

func (r *Reducer) applyStartMatch(s *internal.GameState, a Action) error {
	if err := requireHost(s, a.ActorID, a.Type); err != nil {
		return err
	}
	if s.MatchStatus == internal.MatchPlaying {
		return fmt.Errorf("%s: match already running: %w", a.Type, internal.ErrWrongPhase)
	}

	var p StartMatchPayload
	if err := decodeInto(a.Payload, &p, a.Type); err != nil {
		return err
	}
	p1, p2 := p.P1ID, p.P2ID

	if p1 == "" || p2 == "" {
		// Winner-stays rotation: the loser (or everyone, when the match
		// was voided) goes to the back of the queue, the challenger comes
		// off the front.
		if s.MatchStatus == internal.MatchFinished {
			actives := activeIDs(s)
			if s.WinnerID != "" {
				for _, id := range actives {
					if id != s.WinnerID && !contains(s.Queue, id) {
						s.Queue = append(s.Queue, id)
					}
				}
			} else {
				for _, id := range actives {
					if !contains(s.Queue, id) {
						s.Queue = append(s.Queue, id)
					}
				}
			}
		}

		if s.WinnerID != "" && s.Players[s.WinnerID] != nil {
			p1 = s.WinnerID
			if len(s.Queue) == 0 {
				return fmt.Errorf("%s: not enough players: %w", a.Type, internal.ErrInvalidAction)
			}
			p2 = s.Queue[0]
		} else {
			switch {
			case len(s.Queue) >= 2:
				p1, p2 = s.Queue[0], s.Queue[1]
			case len(s.Queue) == 1 && s.HostID != "":
				p1, p2 = s.HostID, s.Queue[0]
			default:
				return fmt.Errorf("%s: not enough players in queue: %w", a.Type, internal.ErrInvalidAction)
			}
		}
	}

	switch s.GameType {
	case internal.GameGuessWho:
		r.startGuessWhoMatch(s, p1, p2)
	case internal.GameConnect4:
		r.startConnect4Match(s, p1, p2)
	case internal.GameWordBomb:
		r.startWordBombMatch(s, p1, p2)
	case internal.GameCards:
		if len(s.Queue) < 3 {
			return fmt.Errorf("%s: cards needs at least 3 players: %w", a.Type, internal.ErrInvalidAction)
		}
		r.startCardsMatch(s, p1, p2)
	case internal.GameImposter:
		if len(s.Queue) < 3 {
			return fmt.Errorf("%s: imposter needs at least 3 players: %w", a.Type, internal.ErrInvalidAction)
		}
		return r.startImposterMatch(s)
	case internal.GameDotsAndBoxes:
		return r.startDotsAndBoxesMatch(s)
	}
	return nil
}

// resetForMatch strips every per-match assignment and clears the previous
// match's log and game-scope chat.
func resetForMatch(s *internal.GameState) {
	for _, p := range s.Players {
		p.ClearAssignments()
	}
	kept := s.Chat[:0]
	for _, m := range s.Chat {
		if m.Scope != internal.ChatGame {
			kept = append(kept, m)
		}
	}
	s.Chat = kept
	s.Connect4 = nil
	s.WordBomb = nil
	s.Cards = nil
	s.Boxes = nil
	s.WinnerID = ""
}

// ===== PER-VARIANT STARTERS =====

func (r *Reducer) startGuessWhoMatch(s *internal.GameState, p1, p2 string) {
	s.Queue = remove(remove(s.Queue, p1), p2)
	resetForMatch(s)

	shuffled := make([]Character, len(Characters))
	copy(shuffled, Characters)
	r.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	s.Players[p1].Role = internal.RolePlayer
	s.Players[p1].GuessWho = &internal.GuessWhoPlayerData{CharacterID: shuffled[0].ID}
	s.Players[p2].Role = internal.RolePlayer
	s.Players[p2].GuessWho = &internal.GuessWhoPlayerData{CharacterID: shuffled[1].ID}

	first := p1
	if r.rng.Float64() > 0.5 {
		first = p2
	}

	s.Status = internal.PartyPlaying
	s.MatchStatus = internal.MatchPlaying
	s.TurnPlayerID = first
	s.History = []internal.Turn{{PlayerID: internal.SystemActor, Action: internal.TurnInfo, Content: "Match Started", Timestamp: r.now()}}
}

func (r *Reducer) startConnect4Match(s *internal.GameState, p1, p2 string) {
	s.Queue = remove(remove(s.Queue, p1), p2)
	resetForMatch(s)

	s.Players[p1].Role = internal.RolePlayer
	s.Players[p1].Color = string(internal.Connect4Red)
	s.Players[p2].Role = internal.RolePlayer
	s.Players[p2].Color = string(internal.Connect4Yellow)

	s.Connect4 = &internal.Connect4State{}
	s.Status = internal.PartyPlaying
	s.MatchStatus = internal.MatchPlaying
	s.TurnPlayerID = p1 // red starts
	s.History = []internal.Turn{{PlayerID: internal.SystemActor, Action: internal.TurnInfo, Content: "Match Started (Connect 4)", Timestamp: r.now()}}
}

func (r *Reducer) startWordBombMatch(s *internal.GameState, p1, p2 string) {
	s.Queue = remove(remove(s.Queue, p1), p2)
	resetForMatch(s)

	for _, id := range []string{p1, p2} {
		s.Players[id].Role = internal.RolePlayer
		s.Players[id].WordBomb = &internal.WordBombPlayerData{Lives: internal.WordBombInitialLives}
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
	s.TurnPlayerID = p1
	s.History = []internal.Turn{{PlayerID: internal.SystemActor, Action: internal.TurnInfo,
		Content: fmt.Sprintf("Match Started! First prompt: %q", prompt), Timestamp: r.now()}}
}

func (r *Reducer) startCardsMatch(s *internal.GameState, p1, p2 string) {
	s.Queue = remove(remove(s.Queue, p1), p2)

	// Everyone queued plays; the queue empties into the table.
	lineup := append([]string{p1, p2}, s.Queue...)
	s.Queue = []string{}
	resetForMatch(s)

	deck := make([]string, len(whiteCards))
	copy(deck, whiteCards)
	r.rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	deckIndex := 0
	dealt := []string{}
	dealHand := func() []string {
		hand := make([]string, 0, internal.CardsHandSize)
		for i := 0; i < internal.CardsHandSize && deckIndex < len(deck); i++ {
			hand = append(hand, deck[deckIndex])
			dealt = append(dealt, deck[deckIndex])
			deckIndex++
		}
		return hand
	}

	czarID := lineup[r.rng.Intn(len(lineup))]
	for _, id := range lineup {
		s.Players[id].Role = internal.RolePlayer
		s.Players[id].Cards = &internal.CardsPlayerData{Hand: dealHand()}
	}

	black := blackCards[r.rng.Intn(len(blackCards))]
	s.Cards = &internal.CardsState{
		BlackCard:   &black,
		Submissions: []internal.CardSubmission{},
		Phase:       internal.CardsPick,
		CzarID:      czarID,
		UsedWhite:   dealt,
	}
	s.Status = internal.PartyPlaying
	s.MatchStatus = internal.MatchPlaying
	s.TurnPlayerID = czarID
	s.History = []internal.Turn{{PlayerID: internal.SystemActor, Action: internal.TurnInfo,
		Content: fmt.Sprintf("Cards match started! Czar is %s", playerName(s, czarID)), Timestamp: r.now()}}
}

func (r *Reducer) startImposterMatch(s *internal.GameState) error {
	if len(s.Queue) < internal.ImposterPlayerCount {
		return fmt.Errorf("START_MATCH: imposter needs at least %d players: %w",
			internal.ImposterPlayerCount, internal.ErrInvalidAction)
	}

	// Queue order is turn order; only the imposter pick is random.
	order := append([]string(nil), s.Queue...)
	imposterID := order[r.rng.Intn(len(order))]

	var mode internal.ImposterMode = internal.ImposterText
	var usedPairs []int
	prevScores := map[string]int{}
	if s.Imposter != nil {
		mode = s.Imposter.Mode
		usedPairs = s.Imposter.UsedPairs
		prevScores = s.Imposter.Scores
	}
	secret, hint, pairIndex := randomWordPair(r.rng, usedPairs)

	s.Queue = []string{}
	resetForMatch(s)

	for _, id := range order {
		p := s.Players[id]
		p.Role = internal.RolePlayer
		if id == imposterID {
			p.Imposter = &internal.ImposterPlayerData{Word: hint, IsImposter: true}
		} else {
			p.Imposter = &internal.ImposterPlayerData{Word: secret}
		}
	}

	scores := map[string]int{}
	for _, id := range order {
		scores[id] = prevScores[id]
	}

	s.Imposter = &internal.ImposterState{
		Mode:         mode,
		SecretWord:   secret,
		HintWord:     hint,
		ImposterID:   imposterID,
		TurnNumber:   1,
		CurrentIndex: 0,
		PlayerOrder:  order,
		Hints:        []internal.ImposterHint{},
		Votes:        []internal.ImposterVote{},
		Phase:        internal.ImposterReveal,
		Scores:       scores,
		UsedPairs:    append(append([]int(nil), usedPairs...), pairIndex),
		ReadyPlayers: []string{},
	}
	s.Status = internal.PartyPlaying
	s.MatchStatus = internal.MatchPlaying
	s.TurnPlayerID = order[0]
	s.History = []internal.Turn{{PlayerID: internal.SystemActor, Action: internal.TurnInfo,
		Content: "Imposter game started! 3 players, 9 turns, 1 imposter...", Timestamp: r.now()}}
	return nil
}

func (r *Reducer) startDotsAndBoxesMatch(s *internal.GameState) error {
	// Two seats: queue front wins them, otherwise whoever is already
	// seated, ties broken by sorted id.
	var candidates []string
	if len(s.Queue) >= 2 {
		candidates = append([]string(nil), s.Queue[:2]...)
	} else {
		for id, p := range s.Players {
			if p.IsActive() {
				candidates = append(candidates, id)
			}
		}
	}
	sort.Strings(candidates)
	if len(candidates) < 2 {
		return fmt.Errorf("START_MATCH: dots and boxes needs 2 players: %w", internal.ErrInvalidAction)
	}
	p1, p2 := candidates[0], candidates[1]

	s.Queue = remove(remove(s.Queue, p1), p2)
	resetForMatch(s)

	s.Players[p1].Role = internal.RolePlayer
	s.Players[p1].Color = "red"
	s.Players[p2].Role = internal.RolePlayer
	s.Players[p2].Color = "blue"

	s.Boxes = &internal.BoxesState{
		Lines: []string{},
		Boxes: map[string]string{},
	}
	s.Status = internal.PartyPlaying
	s.MatchStatus = internal.MatchPlaying
	s.TurnPlayerID = p1
	s.History = []internal.Turn{{PlayerID: internal.SystemActor, Action: internal.TurnInfo,
		Content: fmt.Sprintf("Match started: %s (Red) vs %s (Blue)", playerName(s, p1), playerName(s, p2)), Timestamp: r.now()}}
	return nil
}
