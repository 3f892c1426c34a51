package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func localSession() Session {
	s := NewEmptySession()
	s.LocalPlayerID = 1
	return s
}

func TestDrawCounterIsolation(t *testing.T) {
	s := localSession()

	// A draw announced for somebody else must never touch the local counter.
	s = Reduce(s, PlayerMustDraw{PlayerID: 2, CardsToDraw: 3, Message: "B is drawing"})
	assert.Zero(t, s.Turn.CardsToDraw)
	require.NotNil(t, s.OtherDraw)
	assert.Equal(t, 2, s.OtherDraw.PlayerID)
	assert.Equal(t, 3, s.OtherDraw.Remaining)

	s = Reduce(s, CardDrawnSimple{PlayerID: 2, Remaining: 2})
	assert.Zero(t, s.Turn.CardsToDraw)
	assert.Equal(t, 2, s.OtherDraw.Remaining)
}

func TestLocalDrawClearsOtherDraw(t *testing.T) {
	s := localSession()
	s = Reduce(s, PlayerMustDraw{PlayerID: 2, CardsToDraw: 1})
	require.NotNil(t, s.OtherDraw)

	s = Reduce(s, PlayerMustDraw{PlayerID: 1, CardsToDraw: 3})
	assert.Nil(t, s.OtherDraw)
	assert.Equal(t, 3, s.Turn.CardsToDraw)
}

func TestDrawToFinishScenario(t *testing.T) {
	s := localSession()

	s = Reduce(s, PlayerMustDraw{PlayerID: 1, CardsToDraw: 3})
	assert.Equal(t, 3, s.Turn.CardsToDraw)

	s = Reduce(s, CardDrawnSimple{PlayerID: 1, Remaining: 0})
	assert.Zero(t, s.Turn.CardsToDraw)
	assert.True(t, s.Turn.HasDrawn)

	s = Reduce(s, DrawActionComplete{})
	assert.Equal(t, TurnProgress{}, s.Turn)
	assert.Nil(t, s.OtherDraw)
}

func TestReadyToFinishNeedsBothObligations(t *testing.T) {
	s := localSession()
	s = Reduce(s, PlayerMustDraw{PlayerID: 1, CardsToDraw: 1})
	s = Reduce(s, CardDrawnSimple{PlayerID: 1, Remaining: 0})
	assert.False(t, s.ReadyToFinish())

	s = Reduce(s, DiscardConfirmed{})
	assert.True(t, s.ReadyToFinish())
}

func TestTurnFinishedResetsProgressAndMovesTurn(t *testing.T) {
	s := localSession()
	s.SelectedCards = []int{4, 5}
	s = Reduce(s, DiscardConfirmed{})
	s = Reduce(s, PlayerMustDraw{PlayerID: 1, CardsToDraw: 2})

	next := 2
	s = Reduce(s, TurnFinished{TurnPlayerID: &next})
	assert.Equal(t, TurnProgress{}, s.Turn)
	assert.Equal(t, 2, s.TurnPlayerID)
	assert.Nil(t, s.OtherDraw)
	assert.Empty(t, s.SelectedCards)
}

func TestStrayCardDrawnForUnknownPlayer(t *testing.T) {
	s := localSession()

	// No draw in progress for player 7; the event degrades to a no-op.
	got := Reduce(s, CardDrawnSimple{PlayerID: 7, Remaining: 1})
	require.Equal(t, s.Turn, got.Turn)
	require.Nil(t, got.OtherDraw)
}
