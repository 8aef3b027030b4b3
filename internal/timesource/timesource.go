// Package timesource supplies the time of day the face is rendered at:
// either the wall clock or a simulated time set by the user, optionally
// free-running from that point.
package timesource

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/tartampluch/go-ringclock/internal/config"
	"github.com/tartampluch/go-ringclock/internal/engine"
)

// ErrInvalidTime is returned for any string that is not a valid HH:MM:SS.
var ErrInvalidTime = errors.New(config.ErrInvalidTime)

// ParseHMS parses a strict 24-hour "HH:MM:SS" into an offset from midnight.
func ParseHMS(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if len(s) != config.MaxHMSLength {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}

	t, err := time.Parse(config.TimeFormatHMS, s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrInvalidTime, config.ErrTimeRange, err)
	}

	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second, nil
}

// SimulatedClock is an engine.Clock that follows the wall clock until a
// simulated time is set. Once set, time is frozen until Play starts it
// running from there. It is safe for concurrent use.
type SimulatedClock struct {
	mu sync.RWMutex

	wall engine.Clock

	active  bool
	playing bool
	// base is the simulated offset from midnight at anchor.
	base   time.Duration
	anchor time.Time
}

// NewSimulatedClock wraps wall. A nil wall uses engine.RealClock.
func NewSimulatedClock(wall engine.Clock) *SimulatedClock {
	if wall == nil {
		wall = engine.RealClock{}
	}
	return &SimulatedClock{wall: wall}
}

// Set parses hms and switches to simulated time, paused at that instant.
func (c *SimulatedClock) Set(hms string) error {
	d, err := ParseHMS(hms)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.active = true
	c.playing = false
	c.base = d
	c.mu.Unlock()

	slog.Info(config.MsgSimSet,
		config.LogKeyComponent, config.CompTimeSource,
		config.LogKeyTime, hms,
	)
	return nil
}

// Play lets simulated time run forward in real time. Without a prior Set
// it starts from the current wall-clock time of day.
func (c *SimulatedClock) Play() {
	c.mu.Lock()
	now := c.wall.Now()
	if !c.active {
		c.base = sinceMidnight(now)
		c.active = true
	}
	if !c.playing {
		c.anchor = now
		c.playing = true
	}
	c.mu.Unlock()

	slog.Info(config.MsgSimPlay, config.LogKeyComponent, config.CompTimeSource)
}

// Pause freezes simulated time where it is.
func (c *SimulatedClock) Pause() {
	c.mu.Lock()
	if c.playing {
		c.base = c.positionLocked(c.wall.Now())
		c.playing = false
	}
	c.mu.Unlock()

	slog.Info(config.MsgSimPause, config.LogKeyComponent, config.CompTimeSource)
}

// Reset returns to the wall clock.
func (c *SimulatedClock) Reset() {
	c.mu.Lock()
	c.active = false
	c.playing = false
	c.base = 0
	c.mu.Unlock()

	slog.Info(config.MsgSimReset, config.LogKeyComponent, config.CompTimeSource)
}

// Now implements engine.Clock.
func (c *SimulatedClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()

	now := c.wall.Now()
	if !c.active {
		return now
	}
	return midnight(now).Add(c.positionLocked(now))
}

// TimePoint samples the clock for the engine.
func (c *SimulatedClock) TimePoint() engine.TimePoint {
	return engine.Sample(c)
}

// Simulated reports whether simulated time is in effect.
func (c *SimulatedClock) Simulated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.active
}

// Playing reports whether simulated time is running.
func (c *SimulatedClock) Playing() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.playing
}

// positionLocked returns the simulated offset from midnight. Callers hold mu.
func (c *SimulatedClock) positionLocked(now time.Time) time.Duration {
	if !c.playing {
		return c.base
	}
	return c.base + now.Sub(c.anchor)
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func sinceMidnight(t time.Time) time.Duration {
	return t.Sub(midnight(t))
}
