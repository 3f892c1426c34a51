// Package wire holds the server's event channel contract. The server speaks
// Spanish on the wire for the original game fields (jugadores, mazos,
// turno_actual, mano, secretos); everything is mapped to neutral session
// types here and nowhere else.
package wire

import (
	"encoding/json"
	"time"
)

// Envelope is the frame every inbound event arrives in.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Event names pushed by the server.
const (
	EvtConnected               = "connected"
	EvtDisconnect              = "disconnect"
	EvtGameStatePublic         = "game_state_public"
	EvtGameStatePrivate        = "game_state_private"
	EvtGameEnded               = "game_ended"
	EvtDetectiveActionStarted  = "detective_action_started"
	EvtDetectiveTargetSelected = "detective_target_selected"
	EvtSelectOwnSecret         = "select_own_secret"
	EvtDetectiveActionComplete = "detective_action_complete"
	EvtEventActionStarted      = "event_action_started"
	EvtEventStepUpdate         = "event_step_update"
	EvtEventActionComplete     = "event_action_complete"
	EvtPlayerMustDraw          = "player_must_draw"
	EvtCardDrawnSimple         = "card_drawn_simple"
	EvtTurnFinished            = "turn_finished"
	EvtPlayerConnected         = "player_connected"
	EvtPlayerDisconnected      = "player_disconnected"
)

type Card struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Kind string `json:"kind"`
}

type PlayerInfo struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Avatar    string `json:"avatar,omitempty"`
	Connected bool   `json:"connected,omitempty"`
}

type SecretInfo struct {
	ID       int    `json:"id"`
	PlayerID int    `json:"player_id"`
	Position int    `json:"position"`
	Hidden   bool   `json:"hidden"`
	Name     string `json:"name,omitempty"`
}

type SetInfo struct {
	PlayerID int    `json:"player_id"`
	SetType  string `json:"set_type"`
	Cards    []Card `json:"cards"`
	Wildcard bool   `json:"wildcard"`
}

type DeckInfo struct {
	Count int    `json:"count"`
	Draft []Card `json:"draft"`
}

type DiscardInfo struct {
	Top   *Card `json:"top"`
	Count int   `json:"count"`
}

type Decks struct {
	Deck     *DeckInfo    `json:"deck"`
	Descarte *DiscardInfo `json:"descarte"`
}

// PublicState is the (possibly partial) public snapshot payload. Absent
// fields stay nil/empty and the merge keeps previous values.
type PublicState struct {
	GameID        string       `json:"game_id,omitempty"`
	Jugadores     []PlayerInfo `json:"jugadores"`
	Mazos         *Decks       `json:"mazos"`
	TurnoActual   *int         `json:"turno_actual"`
	Sets          []SetInfo    `json:"sets"`
	SecretosTodos []SecretInfo `json:"secretos_todos"`
	Timestamp     *time.Time   `json:"timestamp"`
}

// PrivateState is complete for the fields it carries: a present-but-empty
// mano means an empty hand, so the slices are pointers to keep absence
// distinguishable.
type PrivateState struct {
	Mano      *[]Card       `json:"mano"`
	Secretos  *[]SecretInfo `json:"secretos"`
	JugadorID *int          `json:"jugador_id"`
}

type GameEndedPayload struct {
	Winners []PlayerInfo `json:"winners"`
	DidWin  *bool        `json:"did_win"`
}

type DetectiveStartedPayload struct {
	ActionID  string `json:"action_id"`
	Initiator int    `json:"initiator"`
	SetType   string `json:"set_type"`
}

type DetectiveTargetPayload struct {
	Target      int  `json:"target"`
	NeedsSecret bool `json:"needs_secret"`
}

type SelectOwnSecretPayload struct {
	ActionID  string `json:"action_id"`
	Requester int    `json:"requester"`
	SetType   string `json:"set_type"`
}

type EventActionPayload struct {
	ActionID string `json:"action_id"`
	Card     string `json:"card"`
	Choices  []Card `json:"choices"`
	ShowStep bool   `json:"show_step"`
}

type PlayerMustDrawPayload struct {
	Player      int    `json:"player"`
	CardsToDraw int    `json:"cards_to_draw"`
	Message     string `json:"message"`
}

type CardDrawnPayload struct {
	Player         int `json:"player"`
	CardsRemaining int `json:"cards_remaining"`
}

type TurnFinishedPayload struct {
	TurnoActual *int `json:"turno_actual"`
}

type PlayerPresencePayload struct {
	Player PlayerInfo `json:"player"`
}

type PlayerGonePayload struct {
	Player int `json:"player"`
}
