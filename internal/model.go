package internal

import "time"

const (
	RoomCodeLength = 4
	ChatBacklog    = 50

	Connect4Rows = 6
	Connect4Cols = 7

	WordBombInitialLives   = 2
	WordBombMaxLives       = 3
	WordBombInitialTimer   = 20
	WordBombLobbyCountdown = 15 * time.Second

	CardsHandSize            = 7
	CardsDefaultWinThreshold = 5.0

	BoxGridSize = 5
	TotalBoxes  = BoxGridSize * BoxGridSize

	ImposterPlayerCount = 3
	ImposterTotalTurns  = 9
)

type GameType string

const (
	GameGuessWho     GameType = "guess-who"
	GameConnect4     GameType = "connect-4"
	GameWordBomb     GameType = "word-bomb"
	GameCards        GameType = "cah"
	GameDotsAndBoxes GameType = "dots-and-boxes"
	GameImposter     GameType = "imposter"
)

// PartyStatus tracks the room itself; MatchStatus tracks the current match
// inside it. A party loops through many matches so the two move independently.
type PartyStatus string

const (
	PartyLobby    PartyStatus = "lobby"
	PartyPlaying  PartyStatus = "playing"
	PartyFinished PartyStatus = "finished"
)

type MatchStatus string

const (
	MatchLobby    MatchStatus = "lobby"
	MatchPlaying  MatchStatus = "playing"
	MatchFinished MatchStatus = "finished"
)

type Visibility string

const (
	VisibilityPublic   Visibility = "public"
	VisibilityUnlisted Visibility = "unlisted"
	VisibilityPrivate  Visibility = "private"
)

type SpectatorView string

const (
	SpectatorLog    SpectatorView = "log"
	SpectatorBoards SpectatorView = "boards"
)

type Settings struct {
	SpectatorView     SpectatorView `json:"spectator_view"`
	Visibility        Visibility    `json:"visibility"`
	CardsWinThreshold float64       `json:"cards_win_threshold,omitempty"`
}

type ChatScope string

const (
	ChatParty ChatScope = "party"
	ChatGame  ChatScope = "game"
)

type ChatMessage struct {
	ID        string    `json:"id"`
	PlayerID  string    `json:"player_id"`
	Text      string    `json:"text"`
	Timestamp int64     `json:"timestamp"`
	Scope     ChatScope `json:"scope"`
}

// SystemActor authors reducer-generated history entries.
const SystemActor = "system"

type TurnAction string

const (
	TurnAsk      TurnAction = "ask"
	TurnAnswer   TurnAction = "answer"
	TurnGuess    TurnAction = "guess"
	TurnWin      TurnAction = "WIN"
	TurnGameOver TurnAction = "GAME_OVER"
	TurnInfo     TurnAction = "info"
)

// Turn is one append-only history entry. Entries are never edited or removed
// except for the full log reset at match start.
type Turn struct {
	PlayerID  string     `json:"player_id"`
	Action    TurnAction `json:"action"`
	Content   string     `json:"content"`
	Timestamp int64      `json:"timestamp"`
}

// ===== VARIANT SUB-STATE =====
// One payload struct per game variant. Only the pointer for the active
// GameType is ever non-nil on the state envelope.

type Connect4Color string

const (
	Connect4Red    Connect4Color = "red"
	Connect4Yellow Connect4Color = "yellow"
)

type Connect4State struct {
	// Board[0] is the top row; pieces settle bottom-up.
	Board [Connect4Rows][Connect4Cols]Connect4Color `json:"board"`
}

type WordBombState struct {
	Prompt              string   `json:"prompt"`
	UsedWords           []string `json:"used_words"`
	TurnStartTime       int64    `json:"turn_start_time"`
	TimerDuration       int      `json:"timer_duration"`
	CurrentTyping       string   `json:"current_typing"`
	LobbyCountdownStart int64    `json:"lobby_countdown_start,omitempty"`
	JoinedNextRound     []string `json:"joined_next_round,omitempty"`
}

type BlackCard struct {
	Text string `json:"text"`
	Pick int    `json:"pick"`
}

type CardSubmission struct {
	PlayerID string   `json:"player_id"`
	Cards    []string `json:"cards"`
	IsWinner bool     `json:"is_winner"`
	IsCustom bool     `json:"is_custom"`
}

type CardsPhase string

const (
	CardsPick   CardsPhase = "pick"
	CardsJudge  CardsPhase = "judge"
	CardsResult CardsPhase = "result"
)

type CardsState struct {
	BlackCard   *BlackCard       `json:"black_card,omitempty"`
	Submissions []CardSubmission `json:"submissions"`
	Phase       CardsPhase       `json:"phase"`
	CzarID      string           `json:"czar_id"`
	UsedWhite   []string         `json:"used_white"`
}

type BoxesState struct {
	// Lines are keyed "h-r-c" / "v-r-c"; Boxes maps "r-c" to the owner id.
	Lines []string          `json:"lines"`
	Boxes map[string]string `json:"boxes"`
}

type ImposterMode string

const (
	ImposterText ImposterMode = "text"
	ImposterIRL  ImposterMode = "irl"
)

type ImposterPhase string

const (
	ImposterReveal  ImposterPhase = "reveal"
	ImposterPlaying ImposterPhase = "playing"
	ImposterVoting  ImposterPhase = "voting"
	ImposterResults ImposterPhase = "results"
)

type ImposterHint struct {
	PlayerID   string `json:"player_id"`
	Hint       string `json:"hint"`
	TurnNumber int    `json:"turn_number"`
}

type ImposterVote struct {
	VoterID    string `json:"voter_id"`
	VotedForID string `json:"voted_for_id"`
}

type ImposterState struct {
	Mode ImposterMode `json:"mode"`
	// SecretWord lives server-side only; the visibility filter strips it
	// before any viewer sees the state.
	SecretWord   string         `json:"secret_word,omitempty"`
	HintWord     string         `json:"hint_word,omitempty"`
	ImposterID   string         `json:"imposter_id,omitempty"`
	TurnNumber   int            `json:"turn_number"`
	CurrentIndex int            `json:"current_index"`
	PlayerOrder  []string       `json:"player_order"`
	Hints        []ImposterHint `json:"hints"`
	Votes        []ImposterVote `json:"votes"`
	Phase        ImposterPhase  `json:"phase"`
	Scores       map[string]int `json:"scores"`
	UsedPairs    []int          `json:"used_pairs"`
	ReadyPlayers []string       `json:"ready_players"`
}

// ===== ROOM STATE =====

// GameState is the single authoritative document for a room. The reducer
// takes one in and hands back a fresh one; it never touches storage itself.
type GameState struct {
	RoomID   string   `json:"room_id"`
	GameType GameType `json:"game_type"`

	// HostID is an identity reference, not a role; the host may be a
	// spectator during a match.
	HostID  string             `json:"host_id"`
	Players map[string]*Player `json:"players"`

	// Queue holds ids waiting for the next match, FIFO, host-reorderable.
	Queue []string `json:"queue"`

	// BannedIDs holds raw player ids plus "name:<lower>" fingerprints so a
	// ban survives a rejoin under a fresh id.
	BannedIDs []string `json:"banned_ids"`

	Chat []ChatMessage `json:"chat"`

	Status      PartyStatus `json:"status"`
	MatchStatus MatchStatus `json:"match_status"`

	// TurnPlayerID is the single turn pointer; empty when no one is expected
	// to act.
	TurnPlayerID string `json:"turn_player_id,omitempty"`
	WinnerID     string `json:"winner_id,omitempty"`

	History  []Turn   `json:"history"`
	Settings Settings `json:"settings"`

	Connect4 *Connect4State `json:"connect4,omitempty"`
	WordBomb *WordBombState `json:"word_bomb,omitempty"`
	Cards    *CardsState    `json:"cards,omitempty"`
	Boxes    *BoxesState    `json:"boxes,omitempty"`
	Imposter *ImposterState `json:"imposter,omitempty"`

	CreatedAt    int64 `json:"created_at"`
	LastActivity int64 `json:"last_activity"`

	// ServerTime is only set on projections handed to viewers.
	ServerTime int64 `json:"server_time,omitempty"`
}

func (s *GameState) CardsWinThreshold() float64 {
	if s.Settings.CardsWinThreshold > 0 {
		return s.Settings.CardsWinThreshold
	}
	return CardsDefaultWinThreshold
}

func (s *GameState) AppendHistory(actor string, action TurnAction, content string, now int64) {
	s.History = append(s.History, Turn{
		PlayerID:  actor,
		Action:    action,
		Content:   content,
		Timestamp: now,
	})
}
