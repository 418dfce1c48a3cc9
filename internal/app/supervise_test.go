package app

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeProgram blocks in Run until Quit is called or exit is closed.
type fakeProgram struct {
	quit    chan struct{}
	exit    chan struct{}
	err     error
	started chan struct{}
}

func newFakeProgram(err error) *fakeProgram {
	return &fakeProgram{
		quit:    make(chan struct{}),
		exit:    make(chan struct{}),
		started: make(chan struct{}),
		err:     err,
	}
}

func (f *fakeProgram) Run() (tea.Model, error) {
	close(f.started)
	select {
	case <-f.quit:
		return nil, nil
	case <-f.exit:
		return nil, f.err
	}
}

func (f *fakeProgram) Quit() { close(f.quit) }

func TestSupervise_QuitsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := newFakeProgram(nil)

	errc := make(chan error, 1)
	go func() { errc <- supervise(ctx, p) }()
	<-p.started
	cancel()

	require.NoError(t, <-errc)
}

func TestSupervise_UserExit(t *testing.T) {
	p := newFakeProgram(nil)
	close(p.exit)

	require.NoError(t, supervise(context.Background(), p))
	select {
	case <-p.quit:
		t.Fatal("Quit must not be called when the program exits on its own")
	default:
	}
}

func TestSupervise_PropagatesError(t *testing.T) {
	boom := errors.New("terminal lost")
	p := newFakeProgram(boom)
	close(p.exit)

	err := supervise(context.Background(), p)
	assert.ErrorIs(t, err, boom)
}
