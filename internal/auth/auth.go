// Package auth models the login and password-recovery gates. Login has no
// credential check: once both fields are present it always succeeds after a
// fixed delay, reporting progress through four labelled phases.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/five82/enlace/internal/delay"
)

// DefaultDelay is how long the login gate runs before succeeding.
const DefaultDelay = 7200 * time.Millisecond

// ErrRequired is wrapped by validation errors for empty form fields.
var ErrRequired = errors.New("required field missing")

// Phase is a step of the login progress display.
type Phase int

const (
	PhaseStart Phase = iota
	PhaseVerifyingRUT
	PhaseValidating
	PhaseLoading
	PhaseGranted
)

var phaseLabels = []string{
	"Verificando RUT",
	"Validando credenciales",
	"Cargando sistema Enlace",
	"Acceso concedido",
}

// Steps returns the labels of the four displayed steps in order.
func Steps() []string {
	out := make([]string, len(phaseLabels))
	copy(out, phaseLabels)
	return out
}

// PhaseAt maps a progress percentage to its phase.
func PhaseAt(progress float64) Phase {
	switch {
	case progress >= 95:
		return PhaseGranted
	case progress > 65:
		return PhaseLoading
	case progress > 40:
		return PhaseValidating
	case progress > 20:
		return PhaseVerifyingRUT
	default:
		return PhaseStart
	}
}

// Progress returns elapsed as a percentage of total, clamped to [0, 100].
func Progress(elapsed, total time.Duration) float64 {
	if total <= 0 || elapsed >= total {
		return 100
	}
	if elapsed <= 0 {
		return 0
	}
	return float64(elapsed) / float64(total) * 100
}

// SucceededMsg is emitted when the login gate completes.
type SucceededMsg struct {
	Session uuid.UUID
}

// Login runs the cosmetic authentication delay.
type Login struct {
	delay   time.Duration
	gate    *delay.Gate
	logger  *zap.Logger
	session uuid.UUID
}

// NewLogin returns an idle login gate.
func NewLogin(ctx context.Context, d time.Duration, logger *zap.Logger) *Login {
	if d <= 0 {
		d = DefaultDelay
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Login{delay: d, gate: delay.NewGate(ctx), logger: logger}
}

// Submit validates presence of both fields and starts the delay. The secret is
// never inspected beyond the presence check.
func (l *Login) Submit(identifier, secret string) (tea.Cmd, error) {
	if err := requireFields(map[string]string{"rut": identifier, "clave": secret}, "rut", "clave"); err != nil {
		return nil, err
	}
	if l.gate.Pending() {
		return nil, nil
	}

	l.session = uuid.New()
	_, cmd := l.gate.Arm(l.delay)
	l.logger.Info("login started",
		zap.String("rut", strings.TrimSpace(identifier)),
		zap.Stringer("session", l.session),
		zap.Duration("delay", l.delay))
	return cmd, nil
}

// InProgress reports whether the gate is running.
func (l *Login) InProgress() bool {
	return l.gate.Pending()
}

// Progress returns the current percentage of the running gate.
func (l *Login) Progress() float64 {
	if !l.gate.Pending() {
		return 0
	}
	return Progress(l.gate.Elapsed(), l.delay)
}

// Phase returns the phase for the current progress.
func (l *Login) Phase() Phase {
	return PhaseAt(l.Progress())
}

// Owns reports whether msg was produced by this gate's timer.
func (l *Login) Owns(msg delay.ExpiredMsg) bool {
	return l.gate.Pending() && l.gate.Token() == msg.Token
}

// Complete finishes the gate for msg. Login always succeeds.
func (l *Login) Complete(msg delay.ExpiredMsg) (SucceededMsg, bool) {
	if !l.gate.Expire(msg.Token) {
		return SucceededMsg{}, false
	}
	l.logger.Info("login succeeded", zap.Stringer("session", l.session))
	return SucceededMsg{Session: l.session}, true
}

// Close cancels a running gate.
func (l *Login) Close() {
	l.gate.Cancel()
}

// Recovery is the single-step password recovery flow.
type Recovery struct {
	submitted  bool
	identifier string
}

// Recover records the request and switches to the confirmation. Nothing is
// delivered anywhere.
func (r *Recovery) Recover(identifier string) error {
	if err := requireFields(map[string]string{"rut": identifier}, "rut"); err != nil {
		return err
	}
	r.identifier = strings.TrimSpace(identifier)
	r.submitted = true
	return nil
}

// Submitted reports whether the confirmation is showing.
func (r *Recovery) Submitted() bool { return r.submitted }

// Identifier returns the submitted identifier.
func (r *Recovery) Identifier() string { return r.identifier }

// Reset returns to the empty form.
func (r *Recovery) Reset() {
	*r = Recovery{}
}

func requireFields(values map[string]string, order ...string) error {
	var missing []string
	for _, name := range order {
		if strings.TrimSpace(values[name]) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrRequired, strings.Join(missing, ", "))
	}
	return nil
}
