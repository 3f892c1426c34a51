package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bogusAction struct{}

func (bogusAction) isAction() {}

func TestUnknownActionIsNoOp(t *testing.T) {
	s := NewEmptySession()
	s.Players = []Player{{ID: 1, Name: "A"}}
	s.TurnPlayerID = 1

	got := Reduce(s, bogusAction{})
	require.Equal(t, s, got)
}

func TestConnectionLifecycle(t *testing.T) {
	s := NewEmptySession()

	s = Reduce(s, ConnectionEstablished{RoomID: "R1", PlayerID: 4})
	assert.Equal(t, StatusConnected, s.Status)
	assert.Equal(t, "R1", s.RoomID)
	assert.Equal(t, 4, s.LocalPlayerID)

	s = Reduce(s, ConnectionLost{})
	assert.Equal(t, StatusDisconnected, s.Status)

	s = Reduce(s, ResetSession{})
	require.Equal(t, NewEmptySession(), s)
}

// Mirrors the server pushing a full public snapshot followed by a partial
// one that only moves the turn.
func TestPublicSnapshotScenario(t *testing.T) {
	s := NewEmptySession()
	s = Reduce(s, ConnectionEstablished{RoomID: "R1", PlayerID: 1})

	s = Reduce(s, PublicSnapshot{
		Players:      []Player{{ID: 1, Name: "A"}},
		Deck:         &DeckUpdate{Count: 20, Draft: []Card{}},
		TurnPlayerID: intPtr(1),
	})
	assert.Equal(t, []Player{{ID: 1, Name: "A"}}, s.Players)
	assert.Equal(t, 1, s.TurnPlayerID)
	assert.Equal(t, StatusConnected, s.Status)

	s = Reduce(s, PublicSnapshot{TurnPlayerID: intPtr(2)})
	assert.Equal(t, 2, s.TurnPlayerID)
	assert.Equal(t, []Player{{ID: 1, Name: "A"}}, s.Players)
	assert.Equal(t, 20, s.Deck.DeckCount)
}

func TestGameEnded(t *testing.T) {
	won := true
	s := NewEmptySession()
	s = Reduce(s, GameEnded{LocalWon: &won, Winners: []Player{{ID: 1, Name: "A"}}})

	require.True(t, s.Outcome.Ended)
	require.NotNil(t, s.Outcome.LocalWon)
	assert.True(t, *s.Outcome.LocalWon)
	assert.Len(t, s.Outcome.Winners, 1)
}

func TestPlayerPresence(t *testing.T) {
	s := NewEmptySession()
	s.Players = []Player{{ID: 1, Name: "A", Connected: true}}

	s = Reduce(s, PlayerConnected{Player: Player{ID: 2, Name: "B", Connected: true}})
	assert.Len(t, s.Players, 2)

	// Re-announcing an existing player updates in place, keeps order.
	s = Reduce(s, PlayerConnected{Player: Player{ID: 1, Name: "A", Avatar: "cat", Connected: true}})
	assert.Len(t, s.Players, 2)
	assert.Equal(t, "cat", s.Players[0].Avatar)

	s = Reduce(s, PlayerDisconnected{PlayerID: 2})
	assert.False(t, s.Players[1].Connected)
	assert.Len(t, s.Players, 2)
}

func TestToggleCardSelected(t *testing.T) {
	s := NewEmptySession()

	s = Reduce(s, ToggleCardSelected{CardID: 10})
	s = Reduce(s, ToggleCardSelected{CardID: 11})
	assert.Equal(t, []int{10, 11}, s.SelectedCards)

	s = Reduce(s, ToggleCardSelected{CardID: 10})
	assert.Equal(t, []int{11}, s.SelectedCards)
}

func TestErrorMessageLifecycle(t *testing.T) {
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	s := NewEmptySession()

	s = Reduce(s, SetError{Message: "not your turn", At: at})
	assert.Equal(t, "not your turn", s.ErrorMessage)
	assert.Equal(t, at, s.ErrorSetAt)

	s = Reduce(s, ClearError{})
	assert.Empty(t, s.ErrorMessage)
	assert.True(t, s.ErrorSetAt.IsZero())
}

func TestActiveFlowPrefersDetective(t *testing.T) {
	s := NewEmptySession()
	assert.Equal(t, FlowNone, s.ActiveFlow())

	s = Reduce(s, EventActionStarted{Card: EventOneMore, ActionID: "e1"})
	assert.Equal(t, FlowEvent, s.ActiveFlow())

	s = Reduce(s, DetectiveActionStarted{ActionID: "d1", InitiatorID: 1, SetType: SetMarple})
	assert.Equal(t, FlowDetective, s.ActiveFlow())
}
