package session

// EventCard names the event-card archetypes that run a client-side sub-flow.
type EventCard string

const (
	EventLookAshes     EventCard = "look_into_ashes"
	EventOneMore       EventCard = "one_more"
	EventDelayEscape   EventCard = "delay_escape"
	EventAnotherVictim EventCard = "another_victim"
	EventCardsOffTable EventCard = "cards_off_table"
)

// EventFlowState is the shared step shape every event-card flow follows.
// Complete must restore the zero value exactly: consumers compare the whole
// struct for equality, not individual flags.
type EventFlowState struct {
	Active   bool
	ActionID string
	Choices  []Card
	ShowStep bool
}

// EventFlows keeps one independent sub-state per archetype. Starting one
// flow never resets another; the server's event ordering keeps them from
// overlapping in practice.
type EventFlows struct {
	LookAshes     EventFlowState
	OneMore       EventFlowState
	DelayEscape   EventFlowState
	AnotherVictim EventFlowState
	CardsOffTable EventFlowState
}

func NewEventFlows() EventFlows {
	return EventFlows{}
}

func (e EventFlows) AnyActive() bool {
	return e.LookAshes.Active || e.OneMore.Active || e.DelayEscape.Active ||
		e.AnotherVictim.Active || e.CardsOffTable.Active
}

func (e EventFlows) get(card EventCard) EventFlowState {
	switch card {
	case EventLookAshes:
		return e.LookAshes
	case EventOneMore:
		return e.OneMore
	case EventDelayEscape:
		return e.DelayEscape
	case EventAnotherVictim:
		return e.AnotherVictim
	case EventCardsOffTable:
		return e.CardsOffTable
	}
	return EventFlowState{}
}

func (e EventFlows) set(card EventCard, state EventFlowState) EventFlows {
	switch card {
	case EventLookAshes:
		e.LookAshes = state
	case EventOneMore:
		e.OneMore = state
	case EventDelayEscape:
		e.DelayEscape = state
	case EventAnotherVictim:
		e.AnotherVictim = state
	case EventCardsOffTable:
		e.CardsOffTable = state
	}
	return e
}

// foldEvents applies event-card flow actions. Payloads naming an archetype
// the client does not know leave the flows untouched.
func foldEvents(e EventFlows, a Action) EventFlows {
	switch act := a.(type) {
	case EventActionStarted:
		if !knownEventCard(act.Card) {
			return e
		}
		return e.set(act.Card, EventFlowState{
			Active:   true,
			ActionID: act.ActionID,
			Choices:  act.Choices,
			ShowStep: act.ShowStep,
		})

	case EventStepUpdate:
		if !knownEventCard(act.Card) {
			return e
		}
		state := e.get(act.Card)
		if !state.Active {
			return e
		}
		if len(act.Choices) > 0 {
			state.Choices = act.Choices
		}
		state.ShowStep = act.ShowStep
		return e.set(act.Card, state)

	case EventActionComplete:
		if !knownEventCard(act.Card) {
			return e
		}
		// Back to the exact empty shape, same as session creation.
		return e.set(act.Card, EventFlowState{})
	}
	return e
}

func knownEventCard(card EventCard) bool {
	switch card {
	case EventLookAshes, EventOneMore, EventDelayEscape, EventAnotherVictim, EventCardsOffTable:
		return true
	}
	return false
}
