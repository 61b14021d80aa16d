package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-whale/internal/storage"
	"github.com/vovakirdan/tui-whale/internal/whale"
)

var (
	reportBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(1, 3)
	reportTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("51"))
	reportLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")).
				Width(18)
	reportGoodStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	reportBadStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	reportNoteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Italic(true)
)

// RenderReport formats the end-of-round summary. best is the previous best
// round, or nil when there is no history.
func RenderReport(r whale.Report, best *storage.RoundEntry) string {
	ratioStyle := reportGoodStyle
	if !r.Good() {
		ratioStyle = reportBadStyle
	}

	var b strings.Builder
	b.WriteString(reportTitleStyle.Render("Thanks for playing Whale Simulator!"))
	b.WriteString("\n\n")
	b.WriteString(reportLine("Krill eaten", fmt.Sprintf("%d", r.Collected)))
	b.WriteString(reportLine("Times harpooned", fmt.Sprintf("%d", r.Hits)))
	b.WriteString(reportLine("Krill per harpoon", ratioStyle.Render(r.RatioString())))
	b.WriteString(reportLine("Time at sea", r.Duration.Round(time.Second).String()))

	if best != nil {
		b.WriteString("\n")
		if r.Collected > best.Collected {
			b.WriteString(reportNoteStyle.Render(fmt.Sprintf("New best! Previous record was %d krill.", best.Collected)))
		} else {
			b.WriteString(reportNoteStyle.Render(fmt.Sprintf("Best so far: %d krill.", best.Collected)))
		}
	}

	return reportBoxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func reportLine(label, value string) string {
	return reportLabelStyle.Render(label) + value + "\n"
}
