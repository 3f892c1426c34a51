package session

import "time"

// Action is the closed union of every state transition the reducer knows.
// One variant per inbound server event plus the handful of local UI intents.
// Anything else dispatched at the reducer is a no-op.
type Action interface{ isAction() }

type ConnectionEstablished struct {
	RoomID   string
	PlayerID int
}

type ConnectionLost struct{}

// ResetSession discards the whole view state, back to NewEmptySession.
type ResetSession struct{}

// PublicSnapshot carries a (possibly partial) public state payload. Nil
// pointers and empty slices mean "field absent": the previous value is kept.
// The deck and discard halves of the deck state arrive as independent parts
// so a payload carrying only one never erases the other.
type PublicSnapshot struct {
	GameID       string
	TurnPlayerID *int
	Players      []Player
	Deck         *DeckUpdate
	Discard      *DiscardUpdate
	Sets         []DetectiveSet
	AllSecrets   []Secret
	Timestamp    time.Time
}

// DeckUpdate replaces the draw-pile half of the deck state.
type DeckUpdate struct {
	Count int
	Draft []Card
}

// DiscardUpdate replaces the discard-pile half of the deck state.
type DiscardUpdate struct {
	Top   *Card
	Count int
}

// PrivateSnapshot carries the local player's hidden state. Unlike the public
// snapshot, a present-but-empty Hand or Secrets slice is meaningful and
// replaces the previous value, so presence is tracked explicitly.
type PrivateSnapshot struct {
	Hand       []Card
	HandSet    bool
	Secrets    []Secret
	SecretsSet bool
	OwnerID    *int
}

type GameEnded struct {
	LocalWon *bool
	Winners  []Player
}

type DetectiveActionStarted struct {
	ActionID    string
	InitiatorID int
	SetType     SetType
}

type DetectiveTargetSelected struct {
	TargetID    int
	NeedsSecret bool
}

type SelectOwnSecretRequested struct {
	ActionID    string
	RequesterID int
	SetType     SetType
}

type DetectiveActionComplete struct{}

type EventActionStarted struct {
	Card     EventCard
	ActionID string
	Choices  []Card
	ShowStep bool
}

type EventStepUpdate struct {
	Card     EventCard
	Choices  []Card
	ShowStep bool
}

type EventActionComplete struct {
	Card EventCard
}

type PlayerMustDraw struct {
	PlayerID    int
	CardsToDraw int
	Message     string
}

type CardDrawnSimple struct {
	PlayerID  int
	Remaining int
}

type DrawActionComplete struct{}

// TurnFinished announces the next turn holder and clears turn progress.
type TurnFinished struct {
	TurnPlayerID *int
}

type DiscardConfirmed struct{}

type PlayerConnected struct {
	Player Player
}

type PlayerDisconnected struct {
	PlayerID int
}

// ToggleCardSelected is a local intent: flip a hand card in or out of the
// pending discard selection.
type ToggleCardSelected struct {
	CardID int
}

type SetError struct {
	Message string
	At      time.Time
}

type ClearError struct{}

func (ConnectionEstablished) isAction()    {}
func (ConnectionLost) isAction()           {}
func (ResetSession) isAction()             {}
func (PublicSnapshot) isAction()           {}
func (PrivateSnapshot) isAction()          {}
func (GameEnded) isAction()                {}
func (DetectiveActionStarted) isAction()   {}
func (DetectiveTargetSelected) isAction()  {}
func (SelectOwnSecretRequested) isAction() {}
func (DetectiveActionComplete) isAction()  {}
func (EventActionStarted) isAction()       {}
func (EventStepUpdate) isAction()          {}
func (EventActionComplete) isAction()      {}
func (PlayerMustDraw) isAction()           {}
func (CardDrawnSimple) isAction()          {}
func (DrawActionComplete) isAction()       {}
func (TurnFinished) isAction()             {}
func (DiscardConfirmed) isAction()         {}
func (PlayerConnected) isAction()          {}
func (PlayerDisconnected) isAction()       {}
func (ToggleCardSelected) isAction()       {}
func (SetError) isAction()                 {}
func (ClearError) isAction()               {}
