package texasholdem

import "errors"

// Options configures how Texas Hold'em is played
type Options struct {
	StartingChips int
	SmallBlind    int
	BigBlind      int
}

// DefaultOptions returns the default options for Texas Hold'em
func DefaultOptions() Options {
	return Options{
		StartingChips: 1000,
		SmallBlind:    10,
		BigBlind:      20,
	}
}

func validateOptions(opts Options) error {
	if opts.StartingChips <= 0 {
		return errors.New("starting chips must be > 0")
	}

	if opts.SmallBlind <= 0 {
		return errors.New("small blind must be > 0")
	}

	if opts.BigBlind < opts.SmallBlind {
		return errors.New("big blind must be >= the small blind")
	}

	if opts.BigBlind > opts.StartingChips {
		return errors.New("big blind must be <= the starting chips")
	}

	return nil
}
