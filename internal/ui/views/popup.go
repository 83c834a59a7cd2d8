package views

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay renders a popup overlay centered on top of main content.
// The base content is desaturated so the popup stands out.
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	// Render the popup with its style without forcing width/height – keep it tight
	styledPopup := popupStyle.Render(popupContent)

	modalW := lipgloss.Width(styledPopup)
	modalH := lipgloss.Height(styledPopup)
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}
	x := (width - modalW) / 2
	if x < 0 {
		x = 0
	}
	y := (height - modalH) / 2
	if y < 0 {
		y = 0
	}

	// Grey out the base and splice the popup lines over it. The base is
	// stripped to plain text first so rune offsets line up.
	base := strings.Split(desaturateANSI(mainContent), "\n")
	for len(base) < height {
		base = append(base, "")
	}

	popupLines := strings.Split(styledPopup, "\n")
	for i, pl := range popupLines {
		row := y + i
		if row >= len(base) {
			break
		}
		base[row] = spliceLine(base[row], pl, x, modalW)
	}

	return strings.Join(base, "\n")
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// desaturateANSI strips ANSI color/style codes and recolors text dim gray
func desaturateANSI(s string) string {
	lines := strings.Split(ansiRE.ReplaceAllString(s, ""), "\n")
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	for i, line := range lines {
		lines[i] = dim.Render(line)
	}
	return strings.Join(lines, "\n")
}

// spliceLine overlays overlay (which may carry ANSI codes) onto a plain
// styled base line at visible column x.
func spliceLine(base, overlay string, x, overlayWidth int) string {
	plain := ansiRE.ReplaceAllString(base, "")
	runes := []rune(plain)

	left := plain
	if x < len(runes) {
		left = string(runes[:x])
	}
	if gap := x - len(runes); gap > 0 {
		left += strings.Repeat(" ", gap)
	}

	right := ""
	if x+overlayWidth < len(runes) {
		right = string(runes[x+overlayWidth:])
	}

	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	return dim.Render(left) + overlay + dim.Render(right)
}
