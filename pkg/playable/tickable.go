package playable

import "time"

// Tickable is something driven by a periodic tick instead of a player's message,
// such as a seat whose decisions are made by the server
type Tickable interface {
	// Delay is the interval between ticks
	Delay() time.Duration

	// Tick advances anything that is due
	// Return true if connected clients should receive updated data
	Tick() (bool, error)
}
