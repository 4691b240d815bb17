package tui

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/quorumlabs/boardroom/internal/event"
	"github.com/quorumlabs/boardroom/internal/session"
)

// App runs a boardroom session in the background while displaying it.
type App struct {
	director *session.Director
	bus      *event.Bus
	maxLines int
}

// New creates a watcher over the given director. The director must have been
// built with WithBus(bus) so its events reach the display.
func New(d *session.Director, bus *event.Bus, maxLines int) *App {
	return &App{director: d, bus: bus, maxLines: maxLines}
}

// Run starts the session and blocks until it completes or the user quits.
// Quitting cancels the session; the error from the session run is returned
// once the display has shut down.
func (a *App) Run() error {
	msgs := make(chan tea.Msg, 64)
	subID := a.bus.SubscribeAll(func(e event.Event) {
		// Drop rather than block: the bus delivers synchronously from the
		// session goroutine, and the display may already be shutting down.
		select {
		case msgs <- eventMsg{event: e}:
		default:
		}
	})
	defer a.bus.Unsubscribe(subID)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	program := tea.NewProgram(
		NewModel(msgs, a.maxLines),
		tea.WithAltScreen(),
	)

	go func() {
		<-sigChan
		program.Send(tea.Quit())
	}()

	runErr := make(chan error, 1)
	go func() {
		err := a.director.Run(ctx)
		runErr <- err
		if err != nil && err != context.Canceled {
			select {
			case msgs <- sessionErrMsg{err: err}:
			default:
			}
		}
	}()

	_, err := program.Run()
	cancel()

	sessionErr := <-runErr
	if err != nil {
		return err
	}
	if sessionErr != nil && sessionErr != context.Canceled {
		return sessionErr
	}
	return nil
}
