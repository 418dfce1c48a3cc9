package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"
)

// program is the part of *tea.Program the supervisor drives.
type program interface {
	Run() (tea.Model, error)
	Quit()
}

// supervise runs p and asks it to quit when ctx is cancelled. It returns once
// the program has exited and the watcher goroutine is gone.
func supervise(ctx context.Context, p program) error {
	g, gctx := errgroup.WithContext(ctx)
	done := make(chan struct{})

	g.Go(func() error {
		defer close(done)
		_, err := p.Run()
		return err
	})
	g.Go(func() error {
		select {
		case <-gctx.Done():
			p.Quit()
		case <-done:
		}
		return nil
	})
	return g.Wait()
}
