// Package quiz runs the interactive assessment: optional skill entry,
// question generation, then one question at a time with no correctness
// feedback until the end.
package quiz

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/skillscope/internal/assessment"
	"github.com/abhisek/skillscope/internal/testgen"
	"github.com/abhisek/skillscope/internal/ui/components"
	"github.com/abhisek/skillscope/internal/ui/layout"
	"github.com/abhisek/skillscope/internal/ui/theme"
)

// Options configures an assessment run.
type Options struct {
	Domain string

	// Skills to assess. Empty triggers the interactive entry phase.
	Skills []string

	// Normalize resolves comma-separated user input into canonical
	// skills. Required when Skills is empty.
	Normalize func(input string) []string

	// Generate produces the test for the given skills.
	Generate func(ctx context.Context, skills []string, domain string) testgen.TestSet
}

// Outcome reports how the run ended.
type Outcome struct {
	// Session is nil when the user abandoned before generation finished.
	Session *assessment.Session

	// Completed is true when every question was answered.
	Completed bool
}

type phase int

const (
	phaseEntry phase = iota
	phaseGenerating
	phaseQuiz
	phaseDone
)

// Model is the root Bubble Tea model for an assessment run.
type Model struct {
	ctx  context.Context
	opts Options

	phase    phase
	input    components.TextInput
	entryErr string
	skills   []string

	session *assessment.Session
	index   int
	choice  components.MultiChoice

	dots     int
	finished bool
	aborted  bool
	width    int
	height   int
}

// New creates the model. With pre-collected skills it starts directly in
// the generating phase.
func New(ctx context.Context, opts Options) Model {
	m := Model{
		ctx:    ctx,
		opts:   opts,
		skills: opts.Skills,
		input:  components.NewTextInput("Python, SQL, Docker...", 200),
	}
	if len(opts.Skills) > 0 {
		m.phase = phaseGenerating
	} else {
		m.phase = phaseEntry
	}
	return m
}

func (m Model) Init() tea.Cmd {
	switch m.phase {
	case phaseEntry:
		return m.input.Init()
	case phaseGenerating:
		return tea.Batch(m.generateCmd(), generatingTick())
	}
	return nil
}

// generateCmd runs question generation off the update loop.
func (m Model) generateCmd() tea.Cmd {
	ctx, skills, domain, generate := m.ctx, m.skills, m.opts.Domain, m.opts.Generate
	return func() tea.Msg {
		set := generate(ctx, skills, domain)
		return testReadyMsg{Session: assessment.NewSession(domain, skills, set)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case testReadyMsg:
		m.session = msg.Session
		if len(m.session.Test) == 0 {
			m.phase = phaseDone
			return m, nil
		}
		m.phase = phaseQuiz
		m.index = 0
		m.choice = m.choiceFor(0)
		return m, nil

	case generatingTickMsg:
		if m.phase != phaseGenerating {
			return m, nil
		}
		m.dots = (m.dots + 1) % 4
		return m, generatingTick()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}

	if m.phase == phaseEntry {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.phase {
	case phaseEntry:
		if msg.String() == "enter" {
			skills := m.opts.Normalize(m.input.Value())
			if len(skills) == 0 {
				m.entryErr = "No recognizable skills. Try again."
				return m, nil
			}
			m.entryErr = ""
			m.skills = skills
			m.phase = phaseGenerating
			return m, tea.Batch(m.generateCmd(), generatingTick())
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case phaseQuiz:
		var cmd tea.Cmd
		m.choice, cmd = m.choice.Update(msg)
		if m.choice.Submitted {
			// Bounds are always valid here; ignore the error.
			_ = m.session.Answer(m.index, m.choice.Choice())
			m.index++
			if m.index >= len(m.session.Test) {
				m.finished = true
				m.phase = phaseDone
			} else {
				m.choice = m.choiceFor(m.index)
			}
		}
		return m, cmd

	case phaseDone:
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) choiceFor(index int) components.MultiChoice {
	q := m.session.Test[index]
	return components.NewMultiChoice(q.Text, q.Options)
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	header := layout.RenderHeader("Assessment", m.opts.Domain, m.width)

	var hints []layout.KeyHint
	var content string
	switch m.phase {
	case phaseEntry:
		hints = []layout.KeyHint{
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Quit"},
		}
		content = m.renderEntry()
	case phaseGenerating:
		hints = []layout.KeyHint{
			{Key: "Esc", Description: "Abandon"},
		}
		content = m.renderGenerating()
	case phaseQuiz:
		hints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Abandon"},
		}
		content = m.renderQuestion()
	case phaseDone:
		hints = []layout.KeyHint{
			{Key: "any key", Description: "See results"},
		}
		content = m.renderDone()
	}

	footer := layout.RenderFooter(hints, m.width)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

func (m Model) renderEntry() string {
	prompt := theme.Body.Render("Enter your skills, separated by commas:")
	box := theme.Card.Width(m.width - 4).Render(prompt + "\n\n" + m.input.View())
	s := "\n" + box
	if m.entryErr != "" {
		s += "\n " + theme.Incorrect.Render(m.entryErr)
	}
	return s
}

func (m Model) renderGenerating() string {
	label := fmt.Sprintf("Generating %d questions%s",
		len(m.skills), strings.Repeat(".", m.dots))
	return "\n\n" + theme.Subtitle.Width(m.width).Render(label)
}

func (m Model) renderQuestion() string {
	progress := components.QuizProgress{
		Current: m.index + 1,
		Total:   len(m.session.Test),
		Width:   m.width - 4,
	}

	card := theme.Card.Width(m.width - 4).Render(m.choice.View())

	return "\n " + progress.View() + "\n\n" + card
}

func (m Model) renderDone() string {
	if m.session == nil || len(m.session.Test) == 0 {
		return "\n\n" + theme.Subtitle.Width(m.width).Render("No valid questions could be produced.")
	}
	msg := theme.Title.Width(m.width).Render("Test complete") + "\n\n" +
		theme.Subtitle.Width(m.width).Render(
			fmt.Sprintf("%d questions answered", len(m.session.Test)))
	return "\n\n" + msg
}

// Run executes the assessment TUI and blocks until the user finishes or
// abandons.
func Run(ctx context.Context, opts Options) (Outcome, error) {
	p := tea.NewProgram(New(ctx, opts))
	final, err := p.Run()
	if err != nil {
		return Outcome{}, fmt.Errorf("run quiz: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return Outcome{}, fmt.Errorf("unexpected final model type %T", final)
	}
	return Outcome{
		Session:   m.session,
		Completed: m.finished && !m.aborted,
	}, nil
}
