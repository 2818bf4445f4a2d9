// Package input decodes key presses into playback commands.
package input

import (
	"log/slog"
	"time"

	"github.com/san-kum/diorama/internal/window"
)

// KeyReader blocks for one key, bounded by the reader's current timeout.
type KeyReader interface {
	ReadKey() (window.Key, error)
}

// TimeoutSetter is implemented by readers whose timeout can be changed.
type TimeoutSetter interface {
	SetTimeout(d time.Duration)
}

// Controller performs one key read per frame and applies its side effects to the
// playback state. It is the only writer of that state.
type Controller struct {
	reader KeyReader
	state  *PlaybackState
	logger *slog.Logger
	last   Command
}

// NewController applies the state's timeout to reader before the first read.
func NewController(reader KeyReader, state *PlaybackState, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	c := &Controller{reader: reader, state: state, logger: logger}
	c.applyTimeout()
	return c
}

func (c *Controller) State() *PlaybackState { return c.state }

// Last returns the command decoded by the most recent Poll.
func (c *Controller) Last() Command { return c.last }

// Poll reads one key and returns the resulting command. Read errors are logged and
// reported as Continue.
func (c *Controller) Poll() Command {
	k, err := c.reader.ReadKey()
	if err != nil {
		c.logger.Warn("key read failed", "err", err)
		c.last = Continue
		return Continue
	}

	cmd := Classify(k)
	switch cmd {
	case IncreaseTimeout:
		c.state.increase()
		c.applyTimeout()
	case DecreaseTimeout:
		c.state.decrease()
		c.applyTimeout()
	}
	if cmd != Continue {
		c.logger.Debug("command", "key", k.String(), "cmd", cmd.String(), "timeout_ms", c.state.TimeoutMs())
	}
	c.last = cmd
	return cmd
}

func (c *Controller) applyTimeout() {
	if ts, ok := c.reader.(TimeoutSetter); ok {
		ts.SetTimeout(c.state.Timeout())
	}
}
