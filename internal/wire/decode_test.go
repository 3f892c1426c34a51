package wire

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/misteriogame/misterio-client/internal/session"
)

func decode(t *testing.T, event, payload string) session.Action {
	t.Helper()
	act, err := Decode(Envelope{Type: event, Payload: json.RawMessage(payload)})
	require.NoError(t, err)
	return act
}

func TestDecodePublicState(t *testing.T) {
	act := decode(t, EvtGameStatePublic,
		`{"jugadores":[{"id":1,"name":"A"}],"mazos":{"deck":{"count":20,"draft":[]}},"turno_actual":1}`)

	snap, ok := act.(session.PublicSnapshot)
	require.True(t, ok)
	assert.Equal(t, []session.Player{{ID: 1, Name: "A"}}, snap.Players)
	require.NotNil(t, snap.TurnPlayerID)
	assert.Equal(t, 1, *snap.TurnPlayerID)
	require.NotNil(t, snap.Deck)
	assert.Equal(t, 20, snap.Deck.Count)
	assert.False(t, snap.Timestamp.IsZero())
}

func TestDecodeEmptyDecksObject(t *testing.T) {
	act := decode(t, EvtGameStatePublic, `{"mazos":{},"turno_actual":2}`)

	snap, ok := act.(session.PublicSnapshot)
	require.True(t, ok)
	assert.Nil(t, snap.Deck)
	assert.Nil(t, snap.Discard)
}

func TestDecodeDeckHalfWithoutDiscard(t *testing.T) {
	act := decode(t, EvtGameStatePublic, `{"mazos":{"deck":{"count":19,"draft":[{"id":8}]}}}`)

	snap, ok := act.(session.PublicSnapshot)
	require.True(t, ok)
	require.NotNil(t, snap.Deck)
	assert.Equal(t, 19, snap.Deck.Count)
	assert.Nil(t, snap.Discard)
}

// A partial snapshot with an empty mazos object must not wipe previously
// known deck state.
func TestEmptyDecksObjectDoesNotEraseDeckState(t *testing.T) {
	s := session.NewEmptySession()

	full := decode(t, EvtGameStatePublic,
		`{"jugadores":[{"id":1,"name":"A"}],"mazos":{"deck":{"count":20,"draft":[]},"descarte":{"count":5}},"turno_actual":1}`)
	s = session.Reduce(s, full)
	require.Equal(t, 20, s.Deck.DeckCount)
	require.Equal(t, 5, s.Deck.DiscardCount)

	partial := decode(t, EvtGameStatePublic, `{"mazos":{},"turno_actual":2}`)
	s = session.Reduce(s, partial)
	assert.Equal(t, 20, s.Deck.DeckCount)
	assert.Equal(t, 5, s.Deck.DiscardCount)
	assert.Equal(t, 2, s.TurnPlayerID)
}

func TestDecodePrivateStateEmptyHand(t *testing.T) {
	act := decode(t, EvtGameStatePrivate, `{"mano":[],"jugador_id":4}`)

	snap, ok := act.(session.PrivateSnapshot)
	require.True(t, ok)
	assert.True(t, snap.HandSet)
	assert.Empty(t, snap.Hand)
	assert.False(t, snap.SecretsSet)
	require.NotNil(t, snap.OwnerID)
	assert.Equal(t, 4, *snap.OwnerID)
}

func TestDecodeEventTable(t *testing.T) {
	cases := []struct {
		event   string
		payload string
		want    session.Action
	}{
		{EvtConnected, ``, session.ConnectionEstablished{}},
		{EvtDisconnect, ``, session.ConnectionLost{}},
		{EvtDetectiveActionStarted, `{"action_id":"d1","initiator":2,"set_type":"holmes"}`,
			session.DetectiveActionStarted{ActionID: "d1", InitiatorID: 2, SetType: session.SetHolmes}},
		{EvtDetectiveTargetSelected, `{"target":3,"needs_secret":true}`,
			session.DetectiveTargetSelected{TargetID: 3, NeedsSecret: true}},
		{EvtSelectOwnSecret, `{"action_id":"d2","requester":5,"set_type":"poirot"}`,
			session.SelectOwnSecretRequested{ActionID: "d2", RequesterID: 5, SetType: session.SetPoirot}},
		{EvtDetectiveActionComplete, ``, session.DetectiveActionComplete{}},
		{EvtEventActionStarted, `{"action_id":"e1","card":"look_into_ashes","show_step":true}`,
			session.EventActionStarted{Card: session.EventLookAshes, ActionID: "e1", ShowStep: true}},
		{EvtEventActionComplete, `{"card":"one_more"}`,
			session.EventActionComplete{Card: session.EventOneMore}},
		{EvtPlayerMustDraw, `{"player":2,"cards_to_draw":3,"message":"B roba"}`,
			session.PlayerMustDraw{PlayerID: 2, CardsToDraw: 3, Message: "B roba"}},
		{EvtCardDrawnSimple, `{"player":2,"cards_remaining":1}`,
			session.CardDrawnSimple{PlayerID: 2, Remaining: 1}},
		{EvtPlayerConnected, `{"player":{"id":6,"name":"F","connected":true}}`,
			session.PlayerConnected{Player: session.Player{ID: 6, Name: "F", Connected: true}}},
		{EvtPlayerDisconnected, `{"player":6}`, session.PlayerDisconnected{PlayerID: 6}},
	}

	for _, tc := range cases {
		t.Run(tc.event, func(t *testing.T) {
			got := decode(t, tc.event, tc.payload)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDecodeTurnFinished(t *testing.T) {
	act := decode(t, EvtTurnFinished, `{"turno_actual":3}`)
	fin, ok := act.(session.TurnFinished)
	require.True(t, ok)
	require.NotNil(t, fin.TurnPlayerID)
	assert.Equal(t, 3, *fin.TurnPlayerID)
}

func TestDecodeGameEnded(t *testing.T) {
	act := decode(t, EvtGameEnded, `{"winners":[{"id":1,"name":"A"}],"did_win":false}`)
	ended, ok := act.(session.GameEnded)
	require.True(t, ok)
	require.NotNil(t, ended.LocalWon)
	assert.False(t, *ended.LocalWon)
	assert.Len(t, ended.Winners, 1)
}

func TestDecodeUnknownEventIsNil(t *testing.T) {
	act, err := Decode(Envelope{Type: "brand_new_event", Payload: json.RawMessage(`{"x":1}`)})
	require.NoError(t, err)
	assert.Nil(t, act)
}

func TestDecodeMalformedPayload(t *testing.T) {
	_, err := Decode(Envelope{Type: EvtGameStatePublic, Payload: json.RawMessage(`{"jugadores":`)})
	require.Error(t, err)
}
