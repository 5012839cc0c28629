package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathdrill/internal/router"
	"github.com/abhisek/mathdrill/internal/screen"
	"github.com/abhisek/mathdrill/internal/screens/drill"
	"github.com/abhisek/mathdrill/internal/screens/history"
	"github.com/abhisek/mathdrill/internal/screens/skillmap"
	"github.com/abhisek/mathdrill/internal/store"
	"github.com/abhisek/mathdrill/internal/trainer"
	"github.com/abhisek/mathdrill/internal/ui/components"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	session    *trainer.Session
	menu       components.Menu
	menuLabels []string
	disabled   map[int]bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. attemptRepo may be nil, in which case the
// history entry is disabled.
func New(session *trainer.Session, attemptRepo store.AttemptRepo) *HomeScreen {
	menuLabels := []string{"PRACTICE", "SKILLS", "HISTORY", "QUIT"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: drill.New(session)}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: skillmap.New(session)}
			}
		}},
		{Label: menuLabels[2], Disabled: attemptRepo == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(attemptRepo)}
			}
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	disabled := make(map[int]bool)
	for i, item := range items {
		if item.Disabled {
			disabled[i] = true
		}
	}

	return &HomeScreen{
		session:    session,
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
		disabled:   disabled,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header, footer and gaps.
	compact := height+8 < 30 || width < 100
	cw := contentWidth(width)

	sections := []string{
		renderTitle(cw, compact),
		renderStatsBar(h.session.Tally, h.session.Constraints, cw),
		renderButtons(h.menuLabels, h.menu.Selected, h.disabled, cw),
	}
	return renderFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
