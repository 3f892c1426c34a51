package session

import "time"

type Status string

const (
	StatusDisconnected Status = "disconnected"
	StatusConnected    Status = "connected"
)

type CardKind string

const (
	KindDetective CardKind = "detective"
	KindEvent     CardKind = "event"
	KindInstant   CardKind = "instant"
	KindDevious   CardKind = "devious"
)

// Card identity is the ID; Name is display-only and must never be used as a
// lookup key for game logic (see internal/cards for image keys).
type Card struct {
	ID   int
	Name string
	Kind CardKind
}

type Player struct {
	ID        int
	Name      string
	Avatar    string
	Connected bool
}

// Secret keeps Position as the stable slot index within the owner's secret
// row. Name is only meaningful when Hidden is false.
type Secret struct {
	ID       int
	OwnerID  int
	Position int
	Hidden   bool
	Name     string
}

type SetType string

const (
	SetHolmes   SetType = "holmes"
	SetPoirot   SetType = "poirot"
	SetMarple   SetType = "marple"
	SetDupin    SetType = "dupin"
	SetSatterth SetType = "satterthwaite"
)

type DetectiveSet struct {
	OwnerID  int
	Type     SetType
	Cards    []Card
	Wildcard bool
}

type DeckState struct {
	DeckCount    int
	Draft        []Card
	DiscardTop   *Card
	DiscardCount int
}

// TurnProgress tracks the local player's discard/draw obligations for the
// current turn. CardsToDraw is authoritative for the local player only.
type TurnProgress struct {
	HasDiscarded bool
	HasDrawn     bool
	CardsToDraw  int
}

// OtherDraw mirrors a draw obligation announced for a non-local player. It
// never feeds back into TurnProgress.
type OtherDraw struct {
	PlayerID  int
	Remaining int
	Message   string
}

type Outcome struct {
	Ended    bool
	LocalWon *bool
	Winners  []Player
}

// Session is the client's full in-memory view of one game room. It is only
// ever mutated through Reduce.
type Session struct {
	RoomID        string
	GameID        string
	LocalPlayerID int

	TurnPlayerID int
	Players      []Player
	Deck         DeckState
	Hand         []Card
	Secrets      []Secret
	AllSecrets   []Secret
	Sets         []DetectiveSet

	Status    Status
	Turn      TurnProgress
	OtherDraw *OtherDraw

	Detective DetectiveFlow
	Events    EventFlows

	Outcome Outcome

	SelectedCards []int

	ErrorMessage string
	ErrorSetAt   time.Time

	LastEvent  string
	LastUpdate time.Time
}

// NewEmptySession returns the exact shape a Session has at connection time.
// Sub-flow completion actions reset back to the corresponding slices of this
// value, and consumers compare against them with deep equality.
func NewEmptySession() Session {
	return Session{
		Status:    StatusDisconnected,
		Detective: NewDetectiveFlow(),
		Events:    NewEventFlows(),
	}
}

// FlowKind names the sub-flow that currently has a visible modal step.
type FlowKind string

const (
	FlowNone      FlowKind = "none"
	FlowDetective FlowKind = "detective"
	FlowEvent     FlowKind = "event"
)

// ActiveFlow reports which sub-flow should be rendered. The server is
// expected to never activate both at once; if it does anyway, the detective
// flow wins so rendering stays deterministic.
func (s Session) ActiveFlow() FlowKind {
	if s.Detective.Step != DetectiveIdle {
		return FlowDetective
	}
	if s.Events.AnyActive() {
		return FlowEvent
	}
	return FlowNone
}

// ReadyToFinish reports whether the local player has satisfied both turn
// obligations. Draw completion alone is not enough.
func (s Session) ReadyToFinish() bool {
	return s.Turn.HasDiscarded && s.Turn.HasDrawn && s.Turn.CardsToDraw == 0
}

func (s Session) IsLocal(playerID int) bool {
	return s.LocalPlayerID != 0 && playerID == s.LocalPlayerID
}
