package wire

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/misteriogame/misterio-client/internal/session"
)

// Decode translates an inbound envelope into a reducer action. Unknown event
// names return (nil, nil) so the caller can skip them; a recognized event
// with a payload that does not parse returns an error and never reaches the
// reducer.
func Decode(env Envelope) (session.Action, error) {
	switch env.Type {
	case EvtConnected:
		return session.ConnectionEstablished{}, nil

	case EvtDisconnect:
		return session.ConnectionLost{}, nil

	case EvtGameStatePublic:
		var p PublicState
		if err := unmarshal(env, &p); err != nil {
			return nil, err
		}
		return publicAction(p), nil

	case EvtGameStatePrivate:
		var p PrivateState
		if err := unmarshal(env, &p); err != nil {
			return nil, err
		}
		return privateAction(p), nil

	case EvtGameEnded:
		var p GameEndedPayload
		if err := unmarshal(env, &p); err != nil {
			return nil, err
		}
		return session.GameEnded{LocalWon: p.DidWin, Winners: players(p.Winners)}, nil

	case EvtDetectiveActionStarted:
		var p DetectiveStartedPayload
		if err := unmarshal(env, &p); err != nil {
			return nil, err
		}
		return session.DetectiveActionStarted{
			ActionID:    p.ActionID,
			InitiatorID: p.Initiator,
			SetType:     session.SetType(p.SetType),
		}, nil

	case EvtDetectiveTargetSelected:
		var p DetectiveTargetPayload
		if err := unmarshal(env, &p); err != nil {
			return nil, err
		}
		return session.DetectiveTargetSelected{TargetID: p.Target, NeedsSecret: p.NeedsSecret}, nil

	case EvtSelectOwnSecret:
		var p SelectOwnSecretPayload
		if err := unmarshal(env, &p); err != nil {
			return nil, err
		}
		return session.SelectOwnSecretRequested{
			ActionID:    p.ActionID,
			RequesterID: p.Requester,
			SetType:     session.SetType(p.SetType),
		}, nil

	case EvtDetectiveActionComplete:
		return session.DetectiveActionComplete{}, nil

	case EvtEventActionStarted:
		var p EventActionPayload
		if err := unmarshal(env, &p); err != nil {
			return nil, err
		}
		return session.EventActionStarted{
			Card:     session.EventCard(p.Card),
			ActionID: p.ActionID,
			Choices:  cards(p.Choices),
			ShowStep: p.ShowStep,
		}, nil

	case EvtEventStepUpdate:
		var p EventActionPayload
		if err := unmarshal(env, &p); err != nil {
			return nil, err
		}
		return session.EventStepUpdate{
			Card:     session.EventCard(p.Card),
			Choices:  cards(p.Choices),
			ShowStep: p.ShowStep,
		}, nil

	case EvtEventActionComplete:
		var p EventActionPayload
		if err := unmarshal(env, &p); err != nil {
			return nil, err
		}
		return session.EventActionComplete{Card: session.EventCard(p.Card)}, nil

	case EvtPlayerMustDraw:
		var p PlayerMustDrawPayload
		if err := unmarshal(env, &p); err != nil {
			return nil, err
		}
		return session.PlayerMustDraw{
			PlayerID:    p.Player,
			CardsToDraw: p.CardsToDraw,
			Message:     p.Message,
		}, nil

	case EvtCardDrawnSimple:
		var p CardDrawnPayload
		if err := unmarshal(env, &p); err != nil {
			return nil, err
		}
		return session.CardDrawnSimple{PlayerID: p.Player, Remaining: p.CardsRemaining}, nil

	case EvtTurnFinished:
		var p TurnFinishedPayload
		if err := unmarshal(env, &p); err != nil {
			return nil, err
		}
		return session.TurnFinished{TurnPlayerID: p.TurnoActual}, nil

	case EvtPlayerConnected:
		var p PlayerPresencePayload
		if err := unmarshal(env, &p); err != nil {
			return nil, err
		}
		return session.PlayerConnected{Player: player(p.Player)}, nil

	case EvtPlayerDisconnected:
		var p PlayerGonePayload
		if err := unmarshal(env, &p); err != nil {
			return nil, err
		}
		return session.PlayerDisconnected{PlayerID: p.Player}, nil
	}

	return nil, nil
}

func unmarshal(env Envelope, out any) error {
	if len(env.Payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Payload, out); err != nil {
		return fmt.Errorf("decode %s: %w", env.Type, err)
	}
	return nil
}

func publicAction(p PublicState) session.PublicSnapshot {
	snap := session.PublicSnapshot{
		GameID:       p.GameID,
		TurnPlayerID: p.TurnoActual,
		Players:      players(p.Jugadores),
		Sets:         sets(p.Sets),
		AllSecrets:   secrets(p.SecretosTodos),
	}
	if p.Mazos != nil {
		// Each half maps independently; a mazos object carrying only one
		// half (or neither) leaves the other side of the deck state alone.
		if p.Mazos.Deck != nil {
			snap.Deck = &session.DeckUpdate{
				Count: p.Mazos.Deck.Count,
				Draft: cards(p.Mazos.Deck.Draft),
			}
		}
		if p.Mazos.Descarte != nil {
			discard := session.DiscardUpdate{Count: p.Mazos.Descarte.Count}
			if p.Mazos.Descarte.Top != nil {
				top := card(*p.Mazos.Descarte.Top)
				discard.Top = &top
			}
			snap.Discard = &discard
		}
	}
	if p.Timestamp != nil {
		snap.Timestamp = *p.Timestamp
	} else {
		snap.Timestamp = time.Now()
	}
	return snap
}

func privateAction(p PrivateState) session.PrivateSnapshot {
	snap := session.PrivateSnapshot{OwnerID: p.JugadorID}
	if p.Mano != nil {
		snap.Hand = cards(*p.Mano)
		snap.HandSet = true
	}
	if p.Secretos != nil {
		snap.Secrets = secrets(*p.Secretos)
		snap.SecretsSet = true
	}
	return snap
}

func card(c Card) session.Card {
	return session.Card{ID: c.ID, Name: c.Name, Kind: session.CardKind(c.Kind)}
}

func cards(in []Card) []session.Card {
	if in == nil {
		return nil
	}
	out := make([]session.Card, len(in))
	for i, c := range in {
		out[i] = card(c)
	}
	return out
}

func player(p PlayerInfo) session.Player {
	return session.Player{ID: p.ID, Name: p.Name, Avatar: p.Avatar, Connected: p.Connected}
}

func players(in []PlayerInfo) []session.Player {
	if in == nil {
		return nil
	}
	out := make([]session.Player, len(in))
	for i, p := range in {
		out[i] = player(p)
	}
	return out
}

func secrets(in []SecretInfo) []session.Secret {
	if in == nil {
		return nil
	}
	out := make([]session.Secret, len(in))
	for i, s := range in {
		out[i] = session.Secret{
			ID:       s.ID,
			OwnerID:  s.PlayerID,
			Position: s.Position,
			Hidden:   s.Hidden,
			Name:     s.Name,
		}
	}
	return out
}

func sets(in []SetInfo) []session.DetectiveSet {
	if in == nil {
		return nil
	}
	out := make([]session.DetectiveSet, len(in))
	for i, s := range in {
		out[i] = session.DetectiveSet{
			OwnerID:  s.PlayerID,
			Type:     session.SetType(s.SetType),
			Cards:    cards(s.Cards),
			Wildcard: s.Wildcard,
		}
	}
	return out
}
