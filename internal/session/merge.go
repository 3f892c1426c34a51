package session

import "time"

// applyPublic folds a public snapshot into the session. The server emits
// partial snapshots carrying only the fields that changed, so an absent or
// empty sequence means "no news", never "clear this": stale-but-present
// beats absent. Hand and Secrets are private and never touched here.
func applyPublic(s Session, snap PublicSnapshot) Session {
	if snap.GameID != "" {
		s.GameID = snap.GameID
	}
	if snap.TurnPlayerID != nil {
		s.TurnPlayerID = *snap.TurnPlayerID
	}
	if len(snap.Players) > 0 {
		s.Players = snap.Players
	}
	if snap.Deck != nil {
		s.Deck.DeckCount = snap.Deck.Count
		s.Deck.Draft = snap.Deck.Draft
	}
	if snap.Discard != nil {
		s.Deck.DiscardTop = snap.Discard.Top
		s.Deck.DiscardCount = snap.Discard.Count
	}
	if len(snap.Sets) > 0 {
		s.Sets = snap.Sets
	}
	if len(snap.AllSecrets) > 0 {
		s.AllSecrets = snap.AllSecrets
	}
	if !snap.Timestamp.IsZero() {
		s.LastUpdate = snap.Timestamp
	} else {
		s.LastUpdate = time.Now()
	}
	return s
}

// applyPrivate replaces the local player's hidden state wholesale. Private
// payloads are complete for the fields they carry, so an explicit empty hand
// is honored, unlike the public merge.
func applyPrivate(s Session, snap PrivateSnapshot) Session {
	if snap.HandSet {
		s.Hand = snap.Hand
	}
	if snap.SecretsSet {
		s.Secrets = snap.Secrets
	}
	if snap.OwnerID != nil {
		s.LocalPlayerID = *snap.OwnerID
	}
	return s
}
