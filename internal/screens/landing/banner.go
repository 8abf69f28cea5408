package landing

import (
	"charm.land/lipgloss/v2"

	"github.com/studialabs/studia/internal/ui/theme"
)

const bannerArt = `  ███████╗████████╗██╗   ██╗██████╗ ██╗ █████╗
  ██╔════╝╚══██╔══╝██║   ██║██╔══██╗██║██╔══██╗
  ███████╗   ██║   ██║   ██║██║  ██║██║███████║
  ╚════██║   ██║   ██║   ██║██║  ██║██║██╔══██║
  ███████║   ██║   ╚██████╔╝██████╔╝██║██║  ██║
  ╚══════╝   ╚═╝    ╚═════╝ ╚═════╝ ╚═╝╚═╝  ╚═╝`

// RenderBanner renders the title banner centered at the given width.
func RenderBanner(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render(bannerArt)
}
