package decision

import (
	"fmt"
	"sort"
	"strings"

	"familyhub-server/pkg/playable/poker/action"
)

const systemPrompt = "You are an expert poker player AI. Respond only with valid JSON. " +
	"Be strategic but occasionally make human-like plays."

// buildPrompt describes the table to a language model
func buildPrompt(obs ObservableState) string {
	var b strings.Builder

	community := "None yet"
	if len(obs.CommunityCards) > 0 {
		community = obs.CommunityCards.Pretty()
	}

	fmt.Fprintf(&b, "You are %s, playing no-limit Texas Hold'em. Make a strategic decision.\n\n", obs.PlayerName)
	fmt.Fprintf(&b, "YOUR HAND: %s\n", obs.Hand.Pretty())
	fmt.Fprintf(&b, "COMMUNITY CARDS: %s\n", community)
	fmt.Fprintf(&b, "PHASE: %s\n\n", obs.Phase)

	b.WriteString("GAME STATE:\n")
	fmt.Fprintf(&b, "- Pot: $%d\n", obs.Pot)
	fmt.Fprintf(&b, "- Current bet: $%d\n", obs.CurrentBet)
	fmt.Fprintf(&b, "- Amount to call: $%d\n", obs.CallAmount)
	fmt.Fprintf(&b, "- Your chips: $%d\n", obs.Chips)
	fmt.Fprintf(&b, "- Your current bet this round: $%d\n", obs.CommittedBet)
	if obs.Can(action.Raise) {
		fmt.Fprintf(&b, "- Raise to between $%d and $%d\n", obs.MinRaise, obs.MaxRaise)
	}

	b.WriteString("\nRECENT ACTIONS:\n")
	if len(obs.RecentActions) == 0 {
		b.WriteString("None\n")
	}
	for _, a := range obs.RecentActions {
		if a.Amount > 0 {
			fmt.Fprintf(&b, "%s: %s $%d\n", a.PlayerName, string(a.Action), a.Amount)
		} else {
			fmt.Fprintf(&b, "%s: %s\n", a.PlayerName, string(a.Action))
		}
	}

	if len(obs.Opponents) > 0 {
		names := make([]string, 0, len(obs.Opponents))
		for name := range obs.Opponents {
			names = append(names, name)
		}
		sort.Strings(names)

		b.WriteString("\nOPPONENT TENDENCIES:\n")
		for _, name := range names {
			s := obs.Opponents[name]
			fmt.Fprintf(&b, "- %s: played %d, won %d, folded %d, all-in %d, caught bluffing %d\n",
				name, s.HandsPlayed, s.HandsWon, s.FoldCount, s.AllInCount, s.BluffCaught)
		}
	}

	actions := make([]string, len(obs.AvailableActions))
	for i, a := range obs.AvailableActions {
		actions[i] = string(a)
	}

	example := string(action.Fold)
	if len(actions) > 0 {
		example = actions[0]
	}

	fmt.Fprintf(&b, "\nAVAILABLE ACTIONS: %s\n\n", strings.Join(actions, ", "))
	b.WriteString("Respond with ONLY a JSON object in this exact format (no markdown, no explanation outside JSON):\n")
	fmt.Fprintf(&b, `{"action": "%s", "amount": 0, "reasoning": "brief explanation"}`+"\n\n", example)
	b.WriteString("For raises, set amount to your total bet (not the raise increment).\n")
	b.WriteString("For fold/check/call, amount should be 0.\n\n")
	b.WriteString("Your decision:")

	return b.String()
}
