package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/skillscope/internal/ui/theme"
)

// QuizProgress displays position within a test as a labeled bar.
type QuizProgress struct {
	Current int // 1-based question number
	Total   int
	Width   int
}

// View renders the progress bar.
func (p QuizProgress) View() string {
	label := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(fmt.Sprintf("Question %d/%d", p.Current, p.Total))

	barWidth := p.Width - lipgloss.Width(label) - 4
	if barWidth < 4 {
		barWidth = 4
	}

	var percent float64
	if p.Total > 0 {
		percent = float64(p.Current) / float64(p.Total)
	}

	filled := int(float64(barWidth) * percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	filledStr := lipgloss.NewStyle().
		Background(theme.Secondary).
		Render(strings.Repeat(" ", filled))

	emptyStr := lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", empty))

	return label + "  " + filledStr + emptyStr
}
