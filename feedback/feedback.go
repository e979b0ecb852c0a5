// Package feedback implements short-lived, auto-dismissing user feedback:
// a toast message and a confetti flag, each a single-slot channel whose
// newest event replaces the previous one.
package feedback

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

const (
	ToastTTL    = 2 * time.Second
	ConfettiTTL = 1500 * time.Millisecond
)

// Channel holds at most one message. Each Show bumps a token and schedules a
// dismissal tagged with it; a dismissal whose token is no longer current does
// nothing, so an older timer never clears a newer message.
type Channel struct {
	clock clockwork.Clock
	ttl   time.Duration

	mu      sync.Mutex
	message string
	showing bool
	token   uint64
	timer   clockwork.Timer
}

// NewChannel creates a Channel that dismisses messages ttl after they are
// shown, measured on clock.
func NewChannel(clock clockwork.Clock, ttl time.Duration) *Channel {
	return &Channel{clock: clock, ttl: ttl}
}

// Show displays msg, replacing whatever is showing, and restarts the
// dismissal timer. It returns the token identifying this event.
func (c *Channel) Show(msg string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.token++
	token := c.token
	c.message = msg
	c.showing = true

	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = c.clock.AfterFunc(c.ttl, func() { c.expire(token) })
	return token
}

func (c *Channel) expire(token uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if token != c.token {
		return
	}
	c.message = ""
	c.showing = false
	c.timer = nil
}

// Current returns the message being shown, if any.
func (c *Channel) Current() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.message, c.showing
}

// Dismiss clears the channel immediately and cancels the pending timer.
func (c *Channel) Dismiss() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.token++
	c.message = ""
	c.showing = false
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// Stop cancels the pending timer, leaving the current message in place.
func (c *Channel) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// Feedback pairs the toast and confetti channels.
type Feedback struct {
	Toast    *Channel
	Confetti *Channel
}

// New creates the toast and confetti channels on clock.
func New(clock clockwork.Clock) *Feedback {
	return &Feedback{
		Toast:    NewChannel(clock, ToastTTL),
		Confetti: NewChannel(clock, ConfettiTTL),
	}
}

// Celebrate shows the confetti.
func (f *Feedback) Celebrate() {
	f.Confetti.Show("🎉✨🎊🥳🎈")
}

// ConfettiVisible reports whether the confetti is showing.
func (f *Feedback) ConfettiVisible() bool {
	_, ok := f.Confetti.Current()
	return ok
}

// Close cancels every pending dismissal.
func (f *Feedback) Close() {
	f.Toast.Stop()
	f.Confetti.Stop()
}
