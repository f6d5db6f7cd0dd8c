package texasholdem

import (
	"familyhub-server/pkg/playable"
)

// LogMessages describes what happened between two states of the same game
func LogMessages(prev, next GameState) []*playable.LogMessage {
	msgs := make([]*playable.LogMessage, 0)

	if next.HandNumber != prev.HandNumber && next.HandNumber > 0 {
		dealer := next.Players[next.DealerIndex]
		msgs = append(msgs, playable.SimpleLogMessage("", "hand #%d: %s has the button", next.HandNumber, dealer.Name))
		prev = GameState{}
	}

	for _, a := range next.ActionHistory[minInt(len(prev.ActionHistory), len(next.ActionHistory)):] {
		msgs = append(msgs, playable.SimpleLogMessage(a.PlayerID, "%s %s", a.PlayerName, a.Action.LogMessage(a.Amount)))
	}

	if n := len(next.CommunityCards); n > len(prev.CommunityCards) {
		lm := playable.SimpleLogMessage("", "dealt %s", next.CommunityCards[len(prev.CommunityCards):].Pretty())
		lm.Cards = next.CommunityCards[len(prev.CommunityCards):].Clone()
		msgs = append(msgs, lm)
	}

	if next.Phase == PhaseHandComplete && prev.Phase != PhaseHandComplete {
		for _, w := range next.Winners {
			msgs = append(msgs, playable.SimpleLogMessage(w.PlayerID, "%s won ${%d} (%s)", w.Name, w.Amount, next.WinningHand))
		}
	}

	return msgs
}
