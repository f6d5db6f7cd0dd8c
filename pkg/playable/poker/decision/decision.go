// Package decision turns an observable table state into a legal betting decision
package decision

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"familyhub-server/pkg/playable/poker/action"
	"familyhub-server/pkg/playable/poker/texasholdem"
)

// ReasonFallback is the reasoning attached to a substituted decision
const ReasonFallback = "Fallback decision"

// Decision is a proposed betting action
type Decision struct {
	Action action.Action `json:"action"`
	// Amount is the total bet for a raise or all-in, and zero otherwise
	Amount    int    `json:"amount,omitempty"`
	Reasoning string `json:"reasoning,omitempty"`
}

// PlayerAction converts the decision into an engine command
func (d Decision) PlayerAction(playerID string) texasholdem.PlayerAction {
	return texasholdem.PlayerAction{
		PlayerID:  playerID,
		Action:    d.Action,
		Amount:    d.Amount,
		Reasoning: d.Reasoning,
	}
}

// Provider is anything that can make a decision for a seat
type Provider interface {
	RequestDecision(ctx context.Context, obs ObservableState) (Decision, error)
}

// ProviderFunc adapts a function to the Provider interface
type ProviderFunc func(ctx context.Context, obs ObservableState) (Decision, error)

// RequestDecision calls f
func (f ProviderFunc) RequestDecision(ctx context.Context, obs ObservableState) (Decision, error) {
	return f(ctx, obs)
}

// Fallback returns the safe default: check if possible, otherwise call, otherwise fold
func Fallback(obs ObservableState) Decision {
	d := Decision{Action: action.Fold, Reasoning: ReasonFallback}
	if obs.Can(action.Check) {
		d.Action = action.Check
	} else if obs.Can(action.Call) {
		d.Action = action.Call
	}

	return d
}

// Coerce makes the decision legal. Illegal actions are replaced by the fallback
// and raise amounts are clamped to what the player can bet.
func Coerce(d Decision, obs ObservableState) Decision {
	if !obs.Can(d.Action) {
		fb := Fallback(obs)
		if d.Reasoning != "" {
			fb.Reasoning = d.Reasoning
		}

		return fb
	}

	switch d.Action {
	case action.Raise:
		if d.Amount < obs.MinRaise {
			d.Amount = obs.MinRaise
		}

		if d.Amount >= obs.MaxRaise {
			d.Amount = obs.MaxRaise
			if obs.Can(action.AllIn) {
				d.Action = action.AllIn
			}
		}
	case action.AllIn:
		d.Amount = obs.MaxRaise
	default:
		d.Amount = 0
	}

	return d
}

// Decide asks the provider for a decision and always returns a legal one.
// If the provider fails or does not answer within timeout, the fallback is used.
func Decide(ctx context.Context, logger logrus.FieldLogger, p Provider, obs ObservableState, timeout time.Duration) Decision {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	type result struct {
		d   Decision
		err error
	}

	ch := make(chan result, 1)
	go func() {
		d, err := p.RequestDecision(ctx, obs)
		ch <- result{d: d, err: err}
	}()

	log := logger.WithFields(logrus.Fields{
		"playerID": obs.PlayerID,
		"phase":    obs.Phase.String(),
	})

	select {
	case res := <-ch:
		if res.err != nil {
			log.WithError(res.err).Warn("decision provider failed, using fallback")
			return Fallback(obs)
		}

		d := Coerce(res.d, obs)
		if d.Action != res.d.Action || d.Amount != res.d.Amount {
			log.WithFields(logrus.Fields{
				"proposed": string(res.d.Action),
				"amount":   res.d.Amount,
			}).Info("coerced decision")
		}

		return d
	case <-ctx.Done():
		log.WithError(ctx.Err()).Warn("decision provider timed out, using fallback")
		return Fallback(obs)
	}
}
