package input

import "time"

const (
	MinTimeoutMs     = 10
	MaxTimeoutMs     = 1000
	DefaultTimeoutMs = 500
	TimeoutStepMs    = 10
	DefaultDrawChar  = '█'
)

// PlaybackState is the process-wide playback setting. The timeout bounds each
// key read and so also sets the frame duration.
type PlaybackState struct {
	timeoutMs int
	drawChar  rune
}

// NewPlaybackState clamps timeoutMs into [MinTimeoutMs, MaxTimeoutMs].
func NewPlaybackState(timeoutMs int, drawChar rune) *PlaybackState {
	return &PlaybackState{timeoutMs: clamp(timeoutMs), drawChar: drawChar}
}

func (s *PlaybackState) TimeoutMs() int { return s.timeoutMs }

func (s *PlaybackState) Timeout() time.Duration {
	return time.Duration(s.timeoutMs) * time.Millisecond
}

// DrawChar is carried for configuration parity; rendering does not read it.
func (s *PlaybackState) DrawChar() rune { return s.drawChar }

func (s *PlaybackState) increase() { s.timeoutMs = clamp(s.timeoutMs + TimeoutStepMs) }
func (s *PlaybackState) decrease() { s.timeoutMs = clamp(s.timeoutMs - TimeoutStepMs) }

func clamp(ms int) int {
	if ms < MinTimeoutMs {
		return MinTimeoutMs
	}
	if ms > MaxTimeoutMs {
		return MaxTimeoutMs
	}
	return ms
}
