package quiz

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/skillscope/internal/assessment"
)

// testReadyMsg is sent when question generation has finished.
type testReadyMsg struct {
	Session *assessment.Session
}

// generatingTickMsg animates the generating indicator.
type generatingTickMsg time.Time

func generatingTick() tea.Cmd {
	return tea.Tick(300*time.Millisecond, func(t time.Time) tea.Msg {
		return generatingTickMsg(t)
	})
}
