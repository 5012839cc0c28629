// Package app hosts the interactive drill as a Bubble Tea program.
package app

import (
	"context"
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/mathdrill/internal/router"
	"github.com/abhisek/mathdrill/internal/screen"
	"github.com/abhisek/mathdrill/internal/screens/home"
	"github.com/abhisek/mathdrill/internal/screens/welcome"
	"github.com/abhisek/mathdrill/internal/store"
	"github.com/abhisek/mathdrill/internal/trainer"
	"github.com/abhisek/mathdrill/internal/ui/layout"
)

// Options configures the interactive program.
type Options struct {
	Session  *trainer.Session
	Attempts store.AttemptRepo // optional; enables history
	Logger   *zap.Logger
	Splash   bool // play the welcome animation first
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	session *trainer.Session
	width   int
	height  int
}

// newAppModel creates a new AppModel starting at the home screen, or at
// the splash when requested.
func newAppModel(opts Options) AppModel {
	var first screen.Screen = home.New(opts.Session, opts.Attempts)
	if opts.Splash {
		first = welcome.New(func() screen.Screen {
			return home.New(opts.Session, opts.Attempts)
		})
	}
	return AppModel{
		router:  router.New(first),
		session: opts.Session,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		// Screens handle esc themselves; the drill ends on it.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	header := layout.RenderHeader(active.Title(), m.status(active), m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// status returns the header status of the active screen, falling back to
// the session tally.
func (m AppModel) status(active screen.Screen) string {
	if sp, ok := active.(screen.StatusProvider); ok {
		return sp.Status()
	}
	t := m.session.Tally
	if t.Asked == 0 {
		return ""
	}
	return fmt.Sprintf("%d answered  %.0f%%", t.Asked, t.Mean()*100)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if kp, ok := active.(screen.KeyHintProvider); ok {
		return append(kp.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(ctx context.Context, opts Options) error {
	if opts.Session == nil {
		return errors.New("run app: session is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	p := tea.NewProgram(newAppModel(opts), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrInterrupted) {
			return nil
		}
		logger.Error("program exited with error", zap.Error(err))
		return fmt.Errorf("run app: %w", err)
	}
	logger.Debug("program exited",
		zap.String("session", opts.Session.ID),
		zap.Int("answered", opts.Session.Tally.Asked))
	return nil
}
