package game

import "encoding/json"

type ActionType string

const (
	// Party-wide
	ActionChat              ActionType = "CHAT"
	ActionUpdateName        ActionType = "UPDATE_NAME"
	ActionToggleElimination ActionType = "TOGGLE_ELIMINATION"
	ActionForfeit           ActionType = "FORFEIT"

	// Queue and moderation
	ActionToggleQueuePlayer ActionType = "TOGGLE_QUEUE_PLAYER"
	ActionReorderQueue      ActionType = "REORDER_QUEUE"
	ActionLeaveQueue        ActionType = "LEAVE_QUEUE"
	ActionKickPlayer        ActionType = "KICK_PLAYER"
	ActionBanPlayer         ActionType = "BAN_PLAYER"
	ActionTransferHost      ActionType = "TRANSFER_HOST"
	ActionLeaveParty        ActionType = "LEAVE_PARTY"
	ActionEndParty          ActionType = "END_PARTY"
	ActionStartMatch        ActionType = "START_MATCH"

	// Guess-who
	ActionAsk     ActionType = "ASK"
	ActionAnswer  ActionType = "ANSWER"
	ActionGuess   ActionType = "GUESS"
	ActionEndTurn ActionType = "END_TURN"

	// Connect four
	ActionDropPiece ActionType = "DROP_PIECE"

	// Word bomb
	ActionSubmitWord        ActionType = "SUBMIT_WORD"
	ActionTimerExpired      ActionType = "TIMER_EXPIRED"
	ActionUpdateTyping      ActionType = "UPDATE_TYPING"
	ActionJoinNextRound     ActionType = "JOIN_NEXT_ROUND"
	ActionLeaveNextRound    ActionType = "LEAVE_NEXT_ROUND"
	ActionStartWordBomb     ActionType = "START_WORD_BOMB_MATCH"
	ActionResetLobbyTimer   ActionType = "RESET_LOBBY_TIMER"
	ActionForfeitWord       ActionType = "FORFEIT_WORD"

	// Cards
	ActionSubmitCards  ActionType = "SUBMIT_CARDS"
	ActionPickWinner   ActionType = "PICK_WINNER"
	ActionCardsNext    ActionType = "CAH_NEXT_ROUND"
	ActionCardsToLobby ActionType = "CAH_GO_TO_LOBBY"

	// Dots and boxes
	ActionDrawLine ActionType = "DRAW_LINE"

	// Imposter
	ActionImposterReady ActionType = "IMPOSTER_READY"
	ActionSubmitHint    ActionType = "SUBMIT_IMPOSTER_HINT"
	ActionEndImposter   ActionType = "END_IMPOSTER_TURN"
	ActionImposterVote  ActionType = "SUBMIT_IMPOSTER_VOTE"
	ActionImposterNext  ActionType = "IMPOSTER_NEXT_ROUND"
)

// Action is the wire envelope handed to the reducer. Payload stays raw until
// the per-type handler decodes it.
type Action struct {
	ActorID string          `json:"player_id"`
	Type    ActionType      `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type ChatPayload struct {
	Text  string `json:"text"`
	Scope string `json:"scope,omitempty"`
}

type TargetPayload struct {
	TargetID string `json:"target_id"`
}

type StartMatchPayload struct {
	P1ID string `json:"p1_id,omitempty"`
	P2ID string `json:"p2_id,omitempty"`
}

type WordPayload struct {
	Word string `json:"word"`
}

type TypingPayload struct {
	Text string `json:"text"`
}

type HintPayload struct {
	Hint string `json:"hint"`
}

type VotePayload struct {
	VotedForID string `json:"voted_for_id"`
}
