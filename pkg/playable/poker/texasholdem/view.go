package texasholdem

// ViewFor returns the state as the given player is allowed to see it.
// Other players' hole cards are hidden unless they were shown at showdown,
// and the deck is never included.
func (s GameState) ViewFor(playerID string) GameState {
	v := s.Clone()
	v.Deck = nil

	shown := make(map[string]bool)
	for _, sh := range s.Showdown {
		shown[sh.PlayerID] = true
	}

	for i := range v.Players {
		p := &v.Players[i]
		if p.ID == playerID || shown[p.ID] {
			continue
		}

		p.Hand = nil
	}

	return v
}
