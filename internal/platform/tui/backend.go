package tui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/heli-arcade/internal/registry"
)

// BackendID is the name the terminal backend registers under.
const BackendID = "tui"

// Backend runs the game in the terminal.
type Backend struct{}

// ID returns the backend identifier.
func (Backend) ID() string {
	return BackendID
}

// Title returns a human-readable backend name.
func (Backend) Title() string {
	return "Terminal (Bubble Tea)"
}

// Run starts the Bubble Tea program and blocks until the player quits or ctx ends.
// Log output is held back while the alternate screen is active and written to
// opts.LogOutput once the program exits.
func (Backend) Run(ctx context.Context, game registry.Game, opts registry.RunOptions) error {
	if opts.Logger != nil && opts.LogOutput != nil {
		held := &syncBuffer{}
		opts.Logger.SetOutput(held)
		defer func() {
			opts.Logger.SetOutput(opts.LogOutput)
			//nolint:errcheck // Best-effort flush of held log lines
			io.Copy(opts.LogOutput, held)
		}()
	}

	p := tea.NewProgram(
		NewModel(game, opts.Runtime),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("terminal backend: %w", err)
	}
	return nil
}

// syncBuffer is a bytes.Buffer safe for the logger's concurrent writers.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) Read(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Read(p)
}

func init() {
	registry.Register(BackendID, func() registry.Backend {
		return Backend{}
	})
}
