package main

import (
	"flag"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"

	"familyhub-server/internal/config"
	"familyhub-server/internal/rng"
	"familyhub-server/pkg/playable/poker/action"
	"familyhub-server/pkg/playable/poker/texasholdem"
	"familyhub-server/pkg/room"
)

var (
	name    = flag.String("name", "", "your name at the table")
	seed    = flag.Int64("seed", 0, "shuffle seed, 0 for a random shuffle")
	offline = flag.Bool("offline", false, "use the hand strength policy for every opponent")
)

const pollInterval = 200 * time.Millisecond

// amountMarkup matches the ${amount} placeholders in log messages
var amountMarkup = regexp.MustCompile(`\$\{(\d+)\}`)

func main() {
	flag.Parse()
	logrus.SetLevel(logrus.WarnLevel)

	opts := room.OptionsFromConfig(config.Instance().Poker)
	if *offline {
		opts.OpenRouter.APIKey = ""
	}

	pitBoss := room.NewPitBoss(logrus.StandardLogger(), opts, nil)
	if *seed != 0 {
		pitBoss.NewGenerator = func() rng.Generator { return rng.Seeded(*seed) }
	}
	defer pitBoss.Shutdown()

	playerName := *name
	if playerName == "" {
		playerName, _ = pterm.DefaultInteractiveTextInput.WithDefaultText("Your name").Show()
		pterm.Println()
	}

	s, playerID, err := pitBoss.CreateSession(playerName)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	if err := play(s, playerID); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func play(s *room.Session, playerID string) error {
	spinner, _ := pterm.DefaultSpinner.Start("Dealing...")
	lastLog := ""

	for {
		v, err := s.View(playerID)
		if err != nil {
			return err
		}

		lastLog = printLog(v, lastLog)

		switch {
		case v.IsGameOver:
			_ = spinner.Stop()
			printTable(v)
			if v.GameWinner != nil {
				pterm.Success.Printfln("%s wins the game!", v.GameWinner.Name)
			}

			if again, _ := pterm.DefaultInteractiveConfirm.WithDefaultText("Play again?").WithDefaultValue(true).Show(); !again {
				return nil
			}

			if err := s.Reset(); err != nil {
				return err
			}
			lastLog = ""
		case v.Game.Phase == texasholdem.PhaseHandComplete:
			_ = spinner.Stop()
			printTable(v)

			if next, _ := pterm.DefaultInteractiveConfirm.WithDefaultText("Deal the next hand?").WithDefaultValue(true).Show(); !next {
				return nil
			}

			if err := s.NextHand(); err != nil {
				return err
			}
		case v.YourTurn:
			_ = spinner.Stop()
			printTable(v)

			if err := takeTurn(s, playerID, v); err != nil {
				pterm.Error.Println(err)
			}
		default:
			if v.Thinking != "" && spinner.IsActive {
				spinner.UpdateText(fmt.Sprintf("%s is thinking...", v.Thinking))
			} else if !spinner.IsActive {
				spinner, _ = pterm.DefaultSpinner.Start("Waiting for the other players...")
			}

			time.Sleep(pollInterval)
		}
	}
}

func takeTurn(s *room.Session, playerID string, v *room.View) error {
	options := make([]string, len(v.AvailableActions))
	for i, a := range v.AvailableActions {
		switch a {
		case action.Call:
			options[i] = fmt.Sprintf("%s %d", a, v.CallAmount)
		case action.Raise:
			options[i] = fmt.Sprintf("%s (%d-%d)", a, v.MinRaise, v.MaxRaise)
		case action.AllIn:
			options[i] = fmt.Sprintf("%s %d", a, v.MaxRaise)
		default:
			options[i] = a.String()
		}
	}

	selected, _ := pterm.DefaultInteractiveSelect.WithDefaultText("Select your next action").WithOptions(options).Show()

	var chosen action.Action
	for i, o := range options {
		if o == selected {
			chosen = v.AvailableActions[i]
		}
	}

	amount := 0
	if chosen == action.Raise {
		text, _ := pterm.DefaultInteractiveTextInput.WithDefaultText(fmt.Sprintf("Raise to (%d-%d)", v.MinRaise, v.MaxRaise)).Show()
		n, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil {
			return fmt.Errorf("not a number: %q", text)
		}
		amount = n
	}

	return s.Act(playerID, chosen, amount)
}

// printLog prints the messages that came after the last one printed
func printLog(v *room.View, last string) string {
	from := 0
	for i, msg := range v.Log {
		if msg.UUID == last {
			from = i + 1
		}
	}

	for _, msg := range v.Log[from:] {
		pterm.Info.Println(amountMarkup.ReplaceAllString(msg.Message, "$1"))
	}

	if len(v.Log) == 0 {
		return last
	}

	return v.Log[len(v.Log)-1].UUID
}

func printTable(v *room.View) {
	g := v.Game

	data := pterm.TableData{{"", "Player", "Chips", "Bet", "Hand", ""}}
	for i, p := range g.Players {
		marker := ""
		if p.IsDealer {
			marker = "D"
		}

		status := ""
		switch {
		case p.IsFolded:
			status = pterm.FgDarkGray.Sprint("folded")
		case p.IsAllIn:
			status = pterm.LightRed("all-in")
		case g.Phase.IsBettingRound() && i == g.CurrentPlayerIndex:
			status = pterm.LightGreen("to act")
		}

		hand := "-"
		if len(p.Hand) > 0 {
			hand = p.Hand.Pretty()
		}

		playerName := p.Name
		if p.ID == v.PlayerID {
			playerName = pterm.LightCyan(p.Name)
		}

		data = append(data, []string{marker, playerName, strconv.Itoa(p.Chips), strconv.Itoa(p.CurrentBet), hand, status})
	}

	board := "-"
	if len(g.CommunityCards) > 0 {
		board = g.CommunityCards.Pretty()
	}

	title := fmt.Sprintf("|HAND %d - %s|", g.HandNumber, strings.ToUpper(g.Phase.String()))
	info := pterm.Sprintfln("Board: %s", board) + pterm.Sprintf("Pot: %d   Blinds: %d/%d", g.Pot, g.SmallBlind, g.BigBlind)

	pterm.Println()
	pterm.DefaultBox.WithTitle(pterm.LightYellow(title)).WithTitleTopCenter().WithHorizontalPadding(4).Println(info)
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()

	for _, w := range g.Winners {
		pterm.Success.Printfln("%s wins %d", w.Name, w.Amount)
	}

	if g.WinningHand != "" {
		pterm.Success.Printfln("Winning hand: %s", g.WinningHand)
	}
}
