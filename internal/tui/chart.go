package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/trknhr/creditrisk/internal/importance"
)

var barStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

// renderChart draws one horizontal bar per entry, scaled to the largest
// importance in t.
func renderChart(t importance.Table, width int) string {
	if len(t) == 0 {
		return hintStyle.Render("No feature importances recorded.") + "\n"
	}
	labelWidth := 0
	for _, e := range t {
		if w := lipgloss.Width(e.Feature); w > labelWidth {
			labelWidth = w
		}
	}
	top := 0.0
	for _, e := range t {
		if e.Importance > top {
			top = e.Importance
		}
	}

	var b strings.Builder
	for _, e := range t {
		n := 0
		if top > 0 && e.Importance > 0 {
			n = int(e.Importance / top * float64(width))
			if n == 0 {
				n = 1
			}
		}
		pad := strings.Repeat(" ", labelWidth-lipgloss.Width(e.Feature))
		fmt.Fprintf(&b, "%s%s │%s %.4f\n", e.Feature, pad, barStyle.Render(strings.Repeat("█", n)), e.Importance)
	}
	return b.String()
}
