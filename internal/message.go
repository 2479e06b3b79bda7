package internal

type Message[T any] struct {
	Type string `json:"type"`
	Data T      `json:"data"`
}

// GameUpdateData carries a full per-viewer projection; each subscriber gets
// their own redacted copy.
type GameUpdateData struct {
	State *GameState `json:"state"`
}

type TypingUpdateData struct {
	RoomID   string `json:"room_id"`
	PlayerID string `json:"player_id"`
	Text     string `json:"text"`
}

type PartyEndedData struct {
	RoomID string `json:"room_id"`
	HostID string `json:"host_id"`
}

type ErrorData struct {
	Message string `json:"message"`
}
