// Package screen implements the top-level screen router: which screen is
// visible and the loader gate that delays transitions between main-app screens.
package screen

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/enlace/internal/delay"
)

// Screen identifies one of the four top-level views.
type Screen int

const (
	Login Screen = iota
	ForgotPassword
	UserAdmin
	ITRequests
)

// DefaultDelay is the loader duration between main-app screens.
const DefaultDelay = 2 * time.Second

func (s Screen) String() string {
	switch s {
	case Login:
		return "login"
	case ForgotPassword:
		return "forgot-password"
	case UserAdmin:
		return "user-admin"
	case ITRequests:
		return "it-requests"
	default:
		return fmt.Sprintf("screen(%d)", int(s))
	}
}

// IsAuth reports whether s belongs to the authentication pair, whose
// transitions never show the loader.
func (s Screen) IsAuth() bool {
	return s == Login || s == ForgotPassword
}

// Parse maps a screen name back to its Screen.
func Parse(name string) (Screen, error) {
	for _, s := range []Screen{Login, ForgotPassword, UserAdmin, ITRequests} {
		if s.String() == name {
			return s, nil
		}
	}
	return Login, fmt.Errorf("unknown screen %q", name)
}

// Router holds the visible screen and any pending transition.
type Router struct {
	current Screen
	pending Screen
	delay   time.Duration
	gate    *delay.Gate
	logger  *zap.Logger
}

// NewRouter returns a router showing the login screen.
func NewRouter(ctx context.Context, d time.Duration, logger *zap.Logger) *Router {
	if d <= 0 {
		d = DefaultDelay
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{
		current: Login,
		delay:   d,
		gate:    delay.NewGate(ctx),
		logger:  logger,
	}
}

// Current returns the visible screen.
func (r *Router) Current() Screen { return r.current }

// Loading reports whether a main-app transition is in progress.
func (r *Router) Loading() bool { return r.gate.Pending() }

// Pending returns the screen a transition will land on.
func (r *Router) Pending() (Screen, bool) {
	if !r.Loading() {
		return r.current, false
	}
	return r.pending, true
}

// Navigate requests a switch to target. Transitions touching the auth pair
// apply immediately; all others return a command that completes the switch
// after the loader delay. The latest request always wins.
func (r *Router) Navigate(target Screen) tea.Cmd {
	if target.IsAuth() || r.current.IsAuth() {
		if r.Loading() {
			r.logger.Debug("pending navigation superseded",
				zap.Stringer("pending", r.pending),
				zap.Stringer("target", target))
		}
		r.gate.Cancel()
		r.logger.Info("navigate",
			zap.Stringer("from", r.current),
			zap.Stringer("to", target),
			zap.Bool("deferred", false))
		r.current = target
		return nil
	}

	if target == r.current && !r.Loading() {
		return nil
	}

	r.pending = target
	_, cmd := r.gate.Arm(r.delay)
	r.logger.Info("navigate",
		zap.Stringer("from", r.current),
		zap.Stringer("to", target),
		zap.Bool("deferred", true),
		zap.Duration("delay", r.delay))
	return cmd
}

// Complete applies the pending transition when msg belongs to the outstanding
// timer. Stale expiries are ignored and reported as false.
func (r *Router) Complete(msg delay.ExpiredMsg) bool {
	if !r.gate.Expire(msg.Token) {
		return false
	}
	r.current = r.pending
	r.logger.Debug("navigation applied", zap.Stringer("screen", r.current))
	return true
}

// Owns reports whether msg was produced by this router's timer.
func (r *Router) Owns(msg delay.ExpiredMsg) bool {
	return r.gate.Pending() && r.gate.Token() == msg.Token
}

// Close cancels any outstanding transition.
func (r *Router) Close() {
	r.gate.Cancel()
}
