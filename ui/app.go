// Package ui runs the interactive terminal dashboard: it renders the current
// aggregate view and handles the quit/next-user/refresh keys.
package ui

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/xNickChildx/mult-ff-viewer-pub/controller"
	"golang.org/x/term"
)

type App struct {
	session *controller.Session
	in      io.Reader
	out     io.Writer

	// Result of the most recent refresh, shown as an error banner while the
	// previous aggregate view stays up.
	lastErr error
}

// New creates the app. initialErr carries a failure from the session's
// initial refresh so it shows up on the first render.
func New(session *controller.Session, initialErr error) *App {
	return &App{
		session: session,
		in:      os.Stdin,
		out:     os.Stdout,
		lastErr: initialErr,
	}
}

// Run blocks until the user quits. The terminal is switched into raw mode
// for single-key input and restored on return.
func (a *App) Run(ctx context.Context) error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("the dashboard requires an interactive terminal")
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}
	defer term.Restore(fd, oldState)

	buf := make([]byte, 1)
	for {
		Render(a.out, a.session, a.lastErr)

		if _, err := a.in.Read(buf); err != nil {
			return err
		}
		if quit := a.handleKey(ctx, buf[0]); quit {
			return nil
		}
	}
}

// handleKey dispatches one key press, returning true on quit. Unknown keys
// are ignored.
func (a *App) handleKey(ctx context.Context, key byte) bool {
	switch key {
	case 'q', 3: // 3 is ctrl-c in raw mode
		return true
	case 'n':
		a.lastErr = a.session.NextUser(ctx)
	case 'r':
		a.lastErr = a.session.Refresh(ctx)
	}
	return false
}
