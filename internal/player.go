package internal

type Role string

const (
	RolePlayer    Role = "player"
	RoleSpectator Role = "spectator"
)

type GuessWhoPlayerData struct {
	// CharacterID is this player's secret assignment; hidden from the
	// opponent until the match finishes.
	CharacterID string `json:"character_id"`
	// Eliminated is a personal annotation of crossed-off character ids.
	Eliminated []string `json:"eliminated"`
}

type WordBombPlayerData struct {
	Lives        int      `json:"lives"`
	IsEliminated bool     `json:"is_eliminated"`
	UsedLetters  []string `json:"used_letters"`
	GoldenHeart  bool     `json:"golden_heart"`
}

type CardsPlayerData struct {
	Hand  []string `json:"hand"`
	Score float64  `json:"score"`
}

type ImposterPlayerData struct {
	// Word is the secret word, or the hint for the imposter.
	Word       string `json:"word"`
	IsImposter bool   `json:"is_imposter"`
}

type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
	Wins int    `json:"wins"`

	// Connect-4 and dots-and-boxes piece color for the current match.
	Color string `json:"color,omitempty"`

	GuessWho *GuessWhoPlayerData `json:"guess_who,omitempty"`
	WordBomb *WordBombPlayerData `json:"word_bomb,omitempty"`
	Cards    *CardsPlayerData    `json:"cards,omitempty"`
	Imposter *ImposterPlayerData `json:"imposter,omitempty"`

	JoinedAt int64 `json:"joined_at"`
}

// IsActive reports whether the player is seated in the current match.
func (p *Player) IsActive() bool {
	return p.Role == RolePlayer
}

// ClearAssignments strips all per-match data; called by every match starter
// before seating the next lineup.
func (p *Player) ClearAssignments() {
	p.Role = RoleSpectator
	p.Color = ""
	p.GuessWho = nil
	p.WordBomb = nil
	p.Cards = nil
	p.Imposter = nil
}

func (p *Player) Clone() *Player {
	if p == nil {
		return nil
	}
	cp := *p
	if p.GuessWho != nil {
		gw := *p.GuessWho
		gw.Eliminated = append([]string(nil), p.GuessWho.Eliminated...)
		cp.GuessWho = &gw
	}
	if p.WordBomb != nil {
		wb := *p.WordBomb
		wb.UsedLetters = append([]string(nil), p.WordBomb.UsedLetters...)
		cp.WordBomb = &wb
	}
	if p.Cards != nil {
		cd := *p.Cards
		cd.Hand = append([]string(nil), p.Cards.Hand...)
		cp.Cards = &cd
	}
	if p.Imposter != nil {
		im := *p.Imposter
		cp.Imposter = &im
	}
	return &cp
}
