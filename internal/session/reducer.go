package session

import "time"

// Reduce is the dispatch gateway: every state transition, whether from an
// inbound server event or a local intent, goes through here. It is a pure
// function of (session, action), applies exactly one action, and returns the
// input unchanged for action types it does not recognize. It must not panic
// for any reachable input.
func Reduce(s Session, a Action) Session {
	switch act := a.(type) {
	case ConnectionEstablished:
		// The server's own "connected" event carries no identity; only
		// overwrite what the action actually knows.
		s.Status = StatusConnected
		if act.RoomID != "" {
			s.RoomID = act.RoomID
		}
		if act.PlayerID != 0 {
			s.LocalPlayerID = act.PlayerID
		}
		s.LastEvent = "connected"
		return s

	case ConnectionLost:
		s.Status = StatusDisconnected
		s.LastEvent = "disconnect"
		return s

	case ResetSession:
		return NewEmptySession()

	case PublicSnapshot:
		s = applyPublic(s, act)
		s.LastEvent = "game_state_public"
		return s

	case PrivateSnapshot:
		s = applyPrivate(s, act)
		s.LastEvent = "game_state_private"
		return s

	case GameEnded:
		s.Outcome = Outcome{Ended: true, LocalWon: act.LocalWon, Winners: act.Winners}
		s.LastEvent = "game_ended"
		return s

	case DetectiveActionStarted, DetectiveTargetSelected, SelectOwnSecretRequested, DetectiveActionComplete:
		s.Detective = foldDetective(s.Detective, a)
		s.LastEvent = actionName(a)
		return s

	case EventActionStarted, EventStepUpdate, EventActionComplete:
		s.Events = foldEvents(s.Events, a)
		s.LastEvent = actionName(a)
		return s

	case PlayerMustDraw, CardDrawnSimple, DiscardConfirmed, DrawActionComplete, TurnFinished:
		s = foldDraw(s, a)
		s.LastEvent = actionName(a)
		return s

	case PlayerConnected:
		s.Players = upsertPlayer(s.Players, act.Player)
		s.LastEvent = "player_connected"
		return s

	case PlayerDisconnected:
		s.Players = markDisconnected(s.Players, act.PlayerID)
		s.LastEvent = "player_disconnected"
		return s

	case ToggleCardSelected:
		s.SelectedCards = toggle(s.SelectedCards, act.CardID)
		return s

	case SetError:
		s.ErrorMessage = act.Message
		s.ErrorSetAt = act.At
		return s

	case ClearError:
		s.ErrorMessage = ""
		s.ErrorSetAt = time.Time{}
		return s
	}

	// Unknown action: forward-compatible no-op.
	return s
}

func actionName(a Action) string {
	switch a.(type) {
	case DetectiveActionStarted:
		return "detective_action_started"
	case DetectiveTargetSelected:
		return "detective_target_selected"
	case SelectOwnSecretRequested:
		return "select_own_secret"
	case DetectiveActionComplete:
		return "detective_action_complete"
	case EventActionStarted:
		return "event_action_started"
	case EventStepUpdate:
		return "event_step_update"
	case EventActionComplete:
		return "event_action_complete"
	case PlayerMustDraw:
		return "player_must_draw"
	case CardDrawnSimple:
		return "card_drawn_simple"
	case DiscardConfirmed:
		return "discard_confirmed"
	case DrawActionComplete:
		return "draw_action_complete"
	case TurnFinished:
		return "turn_finished"
	}
	return ""
}

func upsertPlayer(players []Player, p Player) []Player {
	out := make([]Player, len(players))
	copy(out, players)
	for i := range out {
		if out[i].ID == p.ID {
			out[i] = p
			return out
		}
	}
	return append(out, p)
}

func markDisconnected(players []Player, id int) []Player {
	out := make([]Player, len(players))
	copy(out, players)
	for i := range out {
		if out[i].ID == id {
			out[i].Connected = false
		}
	}
	return out
}

func toggle(ids []int, id int) []int {
	out := make([]int, 0, len(ids)+1)
	found := false
	for _, existing := range ids {
		if existing == id {
			found = true
			continue
		}
		out = append(out, existing)
	}
	if !found {
		out = append(out, id)
	}
	return out
}
