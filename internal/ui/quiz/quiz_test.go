package quiz

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/skillscope/internal/assessment"
	"github.com/abhisek/skillscope/internal/testgen"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func sampleSet() testgen.TestSet {
	return testgen.TestSet{
		{
			Text:          "Which command lists files?",
			Options:       []string{"ls", "rm"},
			CorrectAnswer: "ls",
			SourceSkill:   "Linux",
		},
		{
			Text:          "What does SELECT do?",
			Options:       []string{"Reads rows", "Deletes rows"},
			CorrectAnswer: "Reads rows",
			SourceSkill:   "SQL",
		},
	}
}

func sampleOptions(set testgen.TestSet) Options {
	return Options{
		Domain: "Professional Skills",
		Skills: []string{"Linux", "SQL"},
		Generate: func(_ context.Context, _ []string, _ string) testgen.TestSet {
			return set
		},
	}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return nm
}

// ready drives the model past generation using the Generate callback.
func ready(t *testing.T, m Model) Model {
	t.Helper()
	msg := m.generateCmd()()
	return update(t, m, msg)
}

func TestQuiz_StartsGeneratingWithPreCollectedSkills(t *testing.T) {
	m := New(context.Background(), sampleOptions(sampleSet()))
	if m.phase != phaseGenerating {
		t.Fatalf("phase = %d, want generating", m.phase)
	}

	m = ready(t, m)
	if m.phase != phaseQuiz {
		t.Fatalf("phase = %d, want quiz", m.phase)
	}
	if len(m.session.Test) != 2 {
		t.Fatalf("test length = %d, want 2", len(m.session.Test))
	}
}

func TestQuiz_AnswersAllQuestions(t *testing.T) {
	m := New(context.Background(), sampleOptions(sampleSet()))
	m = ready(t, m)

	// First question: pick second option.
	m = update(t, m, keyPress('j'))
	m = update(t, m, specialKey(tea.KeyEnter))
	if m.index != 1 {
		t.Fatalf("index = %d, want 1", m.index)
	}

	// Second question: keep first option.
	m = update(t, m, specialKey(tea.KeyEnter))
	if !m.finished || m.phase != phaseDone {
		t.Fatal("expected quiz to be finished")
	}

	answers := m.session.Answers()
	if answers[0] != "rm" {
		t.Errorf("answer[0] = %q, want rm", answers[0])
	}
	if answers[1] != "Reads rows" {
		t.Errorf("answer[1] = %q, want Reads rows", answers[1])
	}
}

func TestQuiz_AbandonLeavesRemainingUnanswered(t *testing.T) {
	m := New(context.Background(), sampleOptions(sampleSet()))
	m = ready(t, m)

	m = update(t, m, specialKey(tea.KeyEnter))
	m = update(t, m, specialKey(tea.KeyEscape))

	if !m.aborted {
		t.Fatal("expected aborted")
	}
	answers := m.session.Answers()
	if answers[1] != assessment.NotAnswered {
		t.Errorf("answer[1] = %q, want unanswered", answers[1])
	}
}

func TestQuiz_NavigationClampsAtBounds(t *testing.T) {
	m := New(context.Background(), sampleOptions(sampleSet()))
	m = ready(t, m)

	m = update(t, m, keyPress('k')) // already at top
	if m.choice.Selected != 0 {
		t.Errorf("selected = %d, want 0", m.choice.Selected)
	}
	m = update(t, m, keyPress('j'))
	m = update(t, m, keyPress('j')) // already at bottom
	if m.choice.Selected != 1 {
		t.Errorf("selected = %d, want 1", m.choice.Selected)
	}
}

func TestQuiz_EmptyTestEndsWithoutQuiz(t *testing.T) {
	m := New(context.Background(), sampleOptions(testgen.TestSet{}))
	m = ready(t, m)

	if m.phase != phaseDone {
		t.Fatalf("phase = %d, want done", m.phase)
	}
	if m.finished {
		t.Error("empty test must not count as completed")
	}
}

func TestQuiz_InteractiveEntryNormalizesInput(t *testing.T) {
	opts := sampleOptions(sampleSet())
	opts.Skills = nil
	opts.Normalize = func(input string) []string {
		if input == "" {
			return nil
		}
		return []string{"Linux", "SQL"}
	}

	m := New(context.Background(), opts)
	if m.phase != phaseEntry {
		t.Fatalf("phase = %d, want entry", m.phase)
	}

	// Empty submit keeps the entry phase with an error.
	m = update(t, m, specialKey(tea.KeyEnter))
	if m.phase != phaseEntry || m.entryErr == "" {
		t.Fatal("expected entry error on empty input")
	}

	m.input.Model.SetValue("linux, sql")
	m = update(t, m, specialKey(tea.KeyEnter))
	if m.phase != phaseGenerating {
		t.Fatalf("phase = %d, want generating", m.phase)
	}
	if len(m.skills) != 2 {
		t.Errorf("skills = %v", m.skills)
	}
}

func TestQuiz_ViewRendersAtAnySize(t *testing.T) {
	m := New(context.Background(), sampleOptions(sampleSet()))
	m = ready(t, m)

	// Zero size (no WindowSizeMsg yet), too small, and normal.
	m.View()
	m = update(t, m, tea.WindowSizeMsg{Width: 10, Height: 5})
	m.View()
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m.View()
}
