// Package delay provides single-shot, cancelable timers expressed as Bubble Tea
// commands. Each armed timer is identified by a token; arming again or calling
// Cancel invalidates the previous token and releases its goroutine.
package delay

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// ExpiredMsg is delivered when an armed timer runs to completion.
type ExpiredMsg struct {
	Token uuid.UUID
}

// Gate owns at most one outstanding timer.
type Gate struct {
	parent context.Context
	token  uuid.UUID
	armed  time.Time
	cancel context.CancelFunc
}

// NewGate returns a gate whose timers are also cancelled when parent is done.
func NewGate(parent context.Context) *Gate {
	if parent == nil {
		parent = context.Background()
	}
	return &Gate{parent: parent}
}

// Arm cancels any outstanding timer and starts a new one of duration d. The
// returned command blocks until the timer fires or is cancelled; a cancelled
// command yields no message.
func (g *Gate) Arm(d time.Duration) (uuid.UUID, tea.Cmd) {
	g.Cancel()

	ctx, cancel := context.WithCancel(g.parent)
	g.token = uuid.New()
	g.armed = time.Now()
	g.cancel = cancel

	return g.token, wait(ctx, d, g.token)
}

// Cancel invalidates the outstanding timer, if any.
func (g *Gate) Cancel() {
	if g.cancel != nil {
		g.cancel()
	}
	g.cancel = nil
	g.token = uuid.Nil
	g.armed = time.Time{}
}

// Pending reports whether a timer is armed and has not expired or been cancelled.
func (g *Gate) Pending() bool {
	return g.token != uuid.Nil
}

// Token returns the token of the outstanding timer, or uuid.Nil.
func (g *Gate) Token() uuid.UUID {
	return g.token
}

// Elapsed returns the time since the outstanding timer was armed.
func (g *Gate) Elapsed() time.Duration {
	if !g.Pending() {
		return 0
	}
	return time.Since(g.armed)
}

// Expire consumes an expiry for tok. It returns false for stale tokens, which
// callers must ignore.
func (g *Gate) Expire(tok uuid.UUID) bool {
	if tok == uuid.Nil || tok != g.token {
		return false
	}
	g.cancel()
	g.cancel = nil
	g.token = uuid.Nil
	g.armed = time.Time{}
	return true
}

func wait(ctx context.Context, d time.Duration, tok uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			return ExpiredMsg{Token: tok}
		}
	}
}
