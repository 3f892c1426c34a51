package session

// foldDraw applies the draw/discard flow. The local player's counters and
// OtherDraw are written from disjoint branches, which is what keeps a
// non-local draw notification from perturbing the local counters.
func foldDraw(s Session, a Action) Session {
	switch act := a.(type) {
	case PlayerMustDraw:
		if s.IsLocal(act.PlayerID) {
			s.Turn.CardsToDraw = act.CardsToDraw
			s.Turn.HasDrawn = false
			s.OtherDraw = nil
			return s
		}
		s.OtherDraw = &OtherDraw{
			PlayerID:  act.PlayerID,
			Remaining: act.CardsToDraw,
			Message:   act.Message,
		}
		return s

	case CardDrawnSimple:
		if s.IsLocal(act.PlayerID) {
			s.Turn.CardsToDraw = act.Remaining
			if act.Remaining == 0 {
				s.Turn.HasDrawn = true
			}
			return s
		}
		if s.OtherDraw != nil && s.OtherDraw.PlayerID == act.PlayerID {
			other := *s.OtherDraw
			other.Remaining = act.Remaining
			s.OtherDraw = &other
		}
		return s

	case DiscardConfirmed:
		s.Turn.HasDiscarded = true
		s.SelectedCards = nil
		return s

	case DrawActionComplete:
		s.Turn = TurnProgress{}
		s.OtherDraw = nil
		return s

	case TurnFinished:
		s.Turn = TurnProgress{}
		s.OtherDraw = nil
		s.SelectedCards = nil
		if act.TurnPlayerID != nil {
			s.TurnPlayerID = *act.TurnPlayerID
		}
		return s
	}
	return s
}
