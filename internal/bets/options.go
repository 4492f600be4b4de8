package bets

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/chipstack/internal/chips"
)

// Option configures a bet provider during creation.
type Option func(*options)

type options struct {
	clock      quartz.Clock
	logger     *log.Logger
	chipHeight int
}

func defaultOptions() *options {
	return &options{
		clock:      quartz.NewReal(),
		logger:     log.New(io.Discard),
		chipHeight: chips.DefaultChipHeight,
	}
}

// WithClock sets the clock used to timestamp events.
func WithClock(clock quartz.Clock) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithChipHeight sets the height of one chip in the presentation's units,
// used to turn drag offsets into chip counts.
func WithChipHeight(height int) Option {
	return func(o *options) {
		if height > 0 {
			o.chipHeight = height
		}
	}
}
