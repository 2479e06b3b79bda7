package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scythe504/partydeck-backend/internal"
)

func TestJoinAutoStartsGuessWho(t *testing.T) {
	r := testReducer()
	s := twoPlayerRoom(t, r, internal.GameGuessWho)

	assert.Equal(t, internal.MatchPlaying, s.MatchStatus)
	assert.Equal(t, "alice", s.TurnPlayerID)
	require.NotNil(t, s.Players["alice"].GuessWho)
	require.NotNil(t, s.Players["bob"].GuessWho)
	assert.NotEqual(t, s.Players["alice"].GuessWho.CharacterID, s.Players["bob"].GuessWho.CharacterID)
}

func TestAskPassesTurnToOpponent(t *testing.T) {
	r := testReducer()
	s := twoPlayerRoom(t, r, internal.GameGuessWho)

	next, err := r.Apply(s, act(t, "alice", ActionAsk, "Do they wear glasses?"))
	require.NoError(t, err)
	assert.Equal(t, "bob", next.TurnPlayerID)
	assert.Equal(t, internal.TurnAsk, lastHistory(t, next).Action)
}

func TestAskOutOfTurnFails(t *testing.T) {
	r := testReducer()
	s := twoPlayerRoom(t, r, internal.GameGuessWho)

	_, err := r.Apply(s, act(t, "bob", ActionAsk, "My turn?"))
	assert.ErrorIs(t, err, internal.ErrNotYourTurn)
}

func TestAnswerHandsTurnToAnswerer(t *testing.T) {
	r := testReducer()
	s := twoPlayerRoom(t, r, internal.GameGuessWho)
	s, err := r.Apply(s, act(t, "alice", ActionAsk, "Do they wear glasses?"))
	require.NoError(t, err)

	// Answering is not turn-gated; it claims the turn for the answerer.
	next, err := r.Apply(s, act(t, "bob", ActionAnswer, "Yes"))
	require.NoError(t, err)
	assert.Equal(t, "bob", next.TurnPlayerID)
}

func TestWrongGuessPassesTurn(t *testing.T) {
	r := testReducer()
	s := twoPlayerRoom(t, r, internal.GameGuessWho)
	bobSecret := s.Players["bob"].GuessWho.CharacterID

	wrong := "sophia"
	if bobSecret == wrong {
		wrong = "mike"
	}
	next, err := r.Apply(s, act(t, "alice", ActionGuess, wrong))
	require.NoError(t, err)
	assert.Equal(t, internal.MatchPlaying, next.MatchStatus)
	assert.Equal(t, "bob", next.TurnPlayerID)
}

func TestCorrectGuessWinsMatch(t *testing.T) {
	r := testReducer()
	s := twoPlayerRoom(t, r, internal.GameGuessWho)
	bobSecret := s.Players["bob"].GuessWho.CharacterID

	next, err := r.Apply(s, act(t, "alice", ActionGuess, bobSecret))
	require.NoError(t, err)
	assert.Equal(t, internal.MatchFinished, next.MatchStatus)
	assert.Equal(t, "alice", next.WinnerID)
	assert.Equal(t, 1, next.Players["alice"].Wins)
	assert.Empty(t, next.TurnPlayerID)
	assert.Equal(t, internal.TurnWin, lastHistory(t, next).Action)
}

func TestGuessByDisplayNameCaseInsensitive(t *testing.T) {
	c, ok := FindCharacter("  SOPHIA ")
	require.True(t, ok)
	assert.Equal(t, "sophia", c.ID)

	_, ok = FindCharacter("nobody")
	assert.False(t, ok)
}

func TestGuessUnknownCharacterFails(t *testing.T) {
	r := testReducer()
	s := twoPlayerRoom(t, r, internal.GameGuessWho)

	_, err := r.Apply(s, act(t, "alice", ActionGuess, "gandalf"))
	assert.ErrorIs(t, err, internal.ErrNotFound)
}

func TestToggleEliminationIsPersonal(t *testing.T) {
	r := testReducer()
	s := twoPlayerRoom(t, r, internal.GameGuessWho)

	next, err := r.Apply(s, act(t, "bob", ActionToggleElimination, "mia"))
	require.NoError(t, err)
	assert.Contains(t, next.Players["bob"].GuessWho.Eliminated, "mia")
	assert.NotContains(t, next.Players["alice"].GuessWho.Eliminated, "mia")

	next, err = r.Apply(next, act(t, "bob", ActionToggleElimination, "mia"))
	require.NoError(t, err)
	assert.NotContains(t, next.Players["bob"].GuessWho.Eliminated, "mia")
}
