package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scythe504/partydeck-backend/internal"
)

func TestCardsMatchStart(t *testing.T) {
	r := testReducer()
	s := threePlayerRoom(t, r, internal.GameCards)

	require.NotNil(t, s.Cards)
	assert.Equal(t, internal.CardsPick, s.Cards.Phase)
	assert.Equal(t, "alice", s.Cards.CzarID)
	assert.NotNil(t, s.Cards.BlackCard)
	assert.Empty(t, s.Queue)
	for _, id := range []string{"alice", "bob", "carol"} {
		require.NotNil(t, s.Players[id].Cards, id)
		assert.Len(t, s.Players[id].Cards.Hand, internal.CardsHandSize, id)
	}
	assert.Len(t, s.Cards.UsedWhite, 3*internal.CardsHandSize)
}

func TestCardsNeedsThreePlayers(t *testing.T) {
	r := testReducer()
	s := r.NewGameState("ROOM", "alice", "Alice", internal.GameCards, RoomOptions{})
	s, err := r.JoinGame(s, "bob", "Bob")
	require.NoError(t, err)

	_, err = r.Apply(s, act(t, "alice", ActionStartMatch, nil))
	assert.ErrorIs(t, err, internal.ErrInvalidAction)
}

func TestSubmitCardsMovesToJudge(t *testing.T) {
	r := testReducer()
	s := threePlayerRoom(t, r, internal.GameCards)

	bobCard := s.Players["bob"].Cards.Hand[0]
	s, err := r.Apply(s, act(t, "bob", ActionSubmitCards, []string{bobCard}))
	require.NoError(t, err)
	assert.Equal(t, internal.CardsPick, s.Cards.Phase)
	assert.NotContains(t, s.Players["bob"].Cards.Hand, bobCard)

	carolCard := s.Players["carol"].Cards.Hand[0]
	s, err = r.Apply(s, act(t, "carol", ActionSubmitCards, []string{carolCard}))
	require.NoError(t, err)
	assert.Equal(t, internal.CardsJudge, s.Cards.Phase)
	assert.Len(t, s.Cards.Submissions, 2)
}

func TestSubmitCardCountMustMatchBlackCard(t *testing.T) {
	r := testReducer()
	s := threePlayerRoom(t, r, internal.GameCards)
	require.Equal(t, 1, s.Cards.BlackCard.Pick)

	hand := s.Players["bob"].Cards.Hand
	_, err := r.Apply(s, act(t, "bob", ActionSubmitCards, []string{}))
	assert.ErrorIs(t, err, internal.ErrInvalidAction)
	_, err = r.Apply(s, act(t, "bob", ActionSubmitCards, []string{hand[0], hand[1]}))
	assert.ErrorIs(t, err, internal.ErrInvalidAction)

	// A pick-two black card wants exactly two.
	s.Cards.BlackCard = &internal.BlackCard{Text: "____ + ____ = the perfect weekend.", Pick: 2}
	_, err = r.Apply(s, act(t, "bob", ActionSubmitCards, []string{hand[0]}))
	assert.ErrorIs(t, err, internal.ErrInvalidAction)

	s, err = r.Apply(s, act(t, "bob", ActionSubmitCards, []string{hand[0], hand[1]}))
	require.NoError(t, err)
	require.Len(t, s.Cards.Submissions, 1)
	assert.Len(t, s.Cards.Submissions[0].Cards, 2)
}

func TestCzarCannotSubmit(t *testing.T) {
	r := testReducer()
	s := threePlayerRoom(t, r, internal.GameCards)

	next, err := r.Apply(s, act(t, "alice", ActionSubmitCards, []string{"anything"}))
	require.NoError(t, err)
	assert.Empty(t, next.Cards.Submissions)
}

func TestDoubleSubmitIsIgnored(t *testing.T) {
	r := testReducer()
	s := threePlayerRoom(t, r, internal.GameCards)

	card := s.Players["bob"].Cards.Hand[0]
	s, err := r.Apply(s, act(t, "bob", ActionSubmitCards, []string{card}))
	require.NoError(t, err)
	next, err := r.Apply(s, act(t, "bob", ActionSubmitCards, []string{s.Players["bob"].Cards.Hand[0]}))
	require.NoError(t, err)
	assert.Len(t, next.Cards.Submissions, 1)
}

func TestCustomCardScoresHalf(t *testing.T) {
	r := testReducer()
	s := threePlayerRoom(t, r, internal.GameCards)

	s, err := r.Apply(s, act(t, "bob", ActionSubmitCards, []string{"a card I just made up"}))
	require.NoError(t, err)
	s, err = r.Apply(s, act(t, "carol", ActionSubmitCards, []string{s.Players["carol"].Cards.Hand[0]}))
	require.NoError(t, err)
	require.Equal(t, internal.CardsJudge, s.Cards.Phase)

	s, err = r.Apply(s, act(t, "alice", ActionPickWinner, "bob"))
	require.NoError(t, err)
	assert.Equal(t, 0.5, s.Players["bob"].Cards.Score)
	assert.Contains(t, lastHistory(t, s).Content, "(Custom)")
}

func TestPickWinnerGates(t *testing.T) {
	r := testReducer()
	s := threePlayerRoom(t, r, internal.GameCards)

	// Judging has not started yet.
	_, err := r.Apply(s, act(t, "alice", ActionPickWinner, "bob"))
	assert.ErrorIs(t, err, internal.ErrWrongPhase)

	s, err = r.Apply(s, act(t, "bob", ActionSubmitCards, []string{s.Players["bob"].Cards.Hand[0]}))
	require.NoError(t, err)
	s, err = r.Apply(s, act(t, "carol", ActionSubmitCards, []string{s.Players["carol"].Cards.Hand[0]}))
	require.NoError(t, err)

	// Only the czar judges.
	_, err = r.Apply(s, act(t, "bob", ActionPickWinner, "carol"))
	assert.ErrorIs(t, err, internal.ErrNotHost)

	// The pick must reference a submission.
	_, err = r.Apply(s, act(t, "alice", ActionPickWinner, "alice"))
	assert.ErrorIs(t, err, internal.ErrInvalidAction)
}

func TestPickWinnerAwardsRound(t *testing.T) {
	r := testReducer()
	s := threePlayerRoom(t, r, internal.GameCards)

	s, err := r.Apply(s, act(t, "bob", ActionSubmitCards, []string{s.Players["bob"].Cards.Hand[0]}))
	require.NoError(t, err)
	s, err = r.Apply(s, act(t, "carol", ActionSubmitCards, []string{s.Players["carol"].Cards.Hand[0]}))
	require.NoError(t, err)

	s, err = r.Apply(s, act(t, "alice", ActionPickWinner, "carol"))
	require.NoError(t, err)

	assert.Equal(t, internal.CardsResult, s.Cards.Phase)
	assert.Equal(t, "carol", s.WinnerID)
	assert.Equal(t, 1.0, s.Players["carol"].Cards.Score)
	assert.Equal(t, internal.MatchPlaying, s.MatchStatus)
}

func TestWinThresholdEndsGame(t *testing.T) {
	r := testReducer()
	s := threePlayerRoom(t, r, internal.GameCards)
	s.Players["carol"].Cards.Score = internal.CardsDefaultWinThreshold - 1

	s, err := r.Apply(s, act(t, "bob", ActionSubmitCards, []string{s.Players["bob"].Cards.Hand[0]}))
	require.NoError(t, err)
	s, err = r.Apply(s, act(t, "carol", ActionSubmitCards, []string{s.Players["carol"].Cards.Hand[0]}))
	require.NoError(t, err)
	s, err = r.Apply(s, act(t, "alice", ActionPickWinner, "carol"))
	require.NoError(t, err)

	assert.Equal(t, internal.MatchFinished, s.MatchStatus)
	assert.Equal(t, internal.PartyLobby, s.Status)
	assert.Contains(t, lastHistory(t, s).Content, "WINS THE GAME")
}

func TestNextRoundRotatesCzarAndRefills(t *testing.T) {
	r := testReducer()
	s := threePlayerRoom(t, r, internal.GameCards)

	s, err := r.Apply(s, act(t, "bob", ActionSubmitCards, []string{s.Players["bob"].Cards.Hand[0]}))
	require.NoError(t, err)
	s, err = r.Apply(s, act(t, "carol", ActionSubmitCards, []string{s.Players["carol"].Cards.Hand[0]}))
	require.NoError(t, err)
	s, err = r.Apply(s, act(t, "alice", ActionPickWinner, "bob"))
	require.NoError(t, err)

	s, err = r.Apply(s, act(t, "bob", ActionCardsNext, nil))
	require.NoError(t, err)

	assert.Equal(t, internal.CardsPick, s.Cards.Phase)
	assert.Equal(t, "bob", s.Cards.CzarID)
	assert.Empty(t, s.Cards.Submissions)
	assert.Empty(t, s.WinnerID)
	for _, id := range []string{"alice", "bob", "carol"} {
		assert.Len(t, s.Players[id].Cards.Hand, internal.CardsHandSize, id)
	}
}

func TestGoToLobbyAfterGameOver(t *testing.T) {
	r := testReducer()
	s := threePlayerRoom(t, r, internal.GameCards)
	s.Players["carol"].Cards.Score = internal.CardsDefaultWinThreshold - 1

	s, err := r.Apply(s, act(t, "bob", ActionSubmitCards, []string{s.Players["bob"].Cards.Hand[0]}))
	require.NoError(t, err)
	s, err = r.Apply(s, act(t, "carol", ActionSubmitCards, []string{s.Players["carol"].Cards.Hand[0]}))
	require.NoError(t, err)
	s, err = r.Apply(s, act(t, "alice", ActionPickWinner, "carol"))
	require.NoError(t, err)
	require.Equal(t, internal.MatchFinished, s.MatchStatus)

	// Non-host request changes nothing.
	same, err := r.Apply(s, act(t, "bob", ActionCardsToLobby, nil))
	require.NoError(t, err)
	assert.Equal(t, internal.MatchFinished, same.MatchStatus)

	s, err = r.Apply(s, act(t, "alice", ActionCardsToLobby, nil))
	require.NoError(t, err)
	assert.Equal(t, internal.MatchLobby, s.MatchStatus)
	assert.Nil(t, s.Cards)
	assert.ElementsMatch(t, []string{"alice", "bob", "carol"}, s.Queue)
	assert.Empty(t, s.Players["carol"].Cards.Score)
}

func TestWinThresholdIsConfigurable(t *testing.T) {
	r := testReducer()
	s := r.NewGameState("ROOM", "alice", "Alice", internal.GameCards, RoomOptions{CardsWinThreshold: 3})
	assert.Equal(t, 3.0, s.CardsWinThreshold())

	s2 := r.NewGameState("ROOM", "alice", "Alice", internal.GameCards, RoomOptions{})
	assert.Equal(t, internal.CardsDefaultWinThreshold, s2.CardsWinThreshold())
}
