package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cellquest/internal/ui/theme"
)

const bannerArt = `
  ██████╗███████╗██╗     ██╗      ██████╗ ██╗   ██╗███████╗███████╗████████╗
 ██╔════╝██╔════╝██║     ██║     ██╔═══██╗██║   ██║██╔════╝██╔════╝╚══██╔══╝
 ██║     █████╗  ██║     ██║     ██║   ██║██║   ██║█████╗  ███████╗   ██║
 ██║     ██╔══╝  ██║     ██║     ██║▄▄ ██║██║   ██║██╔══╝  ╚════██║   ██║
 ╚██████╗███████╗███████╗███████╗╚██████╔╝╚██████╔╝███████╗███████║   ██║
  ╚═════╝╚══════╝╚══════╝╚══════╝ ╚══▀▀═╝  ╚═════╝ ╚══════╝╚══════╝   ╚═╝`

const bannerCompact = "C E L L Q U E S T"

// bannerWidth is the widest line of bannerArt.
const bannerWidth = 76

// RenderBanner returns the CELLQUEST banner styled in the primary color.
// Uses a compact fallback when the art does not fit.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerWidth+2 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
