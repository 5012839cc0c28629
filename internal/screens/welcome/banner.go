package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/ui/theme"
)

const bannerArt = `┌┬┐┌─┐┌┬┐┬ ┬┌┬┐┬─┐┬┬  ┬
│││├─┤ │ ├─┤ ││├┬┘││  │
┴ ┴┴ ┴ ┴ ┴ ┴─┴┘┴└─┴┴─┘┴─┘`

const bannerCompact = "M A T H D R I L L"

// RenderBanner returns the MATHDRILL banner styled in the accent color.
// Uses a compact fallback for areas narrower than 30 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true)

	if width < 30 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
