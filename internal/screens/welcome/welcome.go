// Package welcome shows the splash screen played before the home menu.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/router"
	"github.com/abhisek/mathdrill/internal/screen"
	"github.com/abhisek/mathdrill/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1000 * time.Millisecond
	totalDur     = 2000 * time.Millisecond
)

// The worked subtraction, drawn line by line.
var sumLines = []string{
	"   1 2",
	" -   5",
	" ─────",
	"     7",
}

type tickMsg time.Time

// WelcomeScreen shows a short splash animation. Any key replaces it with
// the screen produced by homeFactory.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed >= totalDur {
			return w, nil
		}
		w.elapsed += tickInterval
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}
	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	sumStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	// The first three lines appear during phase 1, the answer after it.
	shown := len(sumLines) - 1
	if w.elapsed < phase1End {
		shown = 1 + int(w.elapsed*time.Duration(shown-1)/phase1End)
	} else {
		shown = len(sumLines)
	}
	lines := make([]string, 0, len(sumLines))
	for i, l := range sumLines[:shown] {
		if i == len(sumLines)-1 {
			l += lipgloss.NewStyle().Foreground(theme.Success).Render("  ✓")
		}
		lines = append(lines, sumStyle.Render(l))
	}
	sections := []string{strings.Join(lines, "\n")}

	if w.elapsed >= phase2End {
		sections = append(sections,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
				Render("Every mistake tells you something."),
			"",
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
				Render("press any key to continue"),
		)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
