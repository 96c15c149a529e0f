package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/skillscope/internal/artifacts"
	"github.com/abhisek/skillscope/internal/assessment"
	"github.com/abhisek/skillscope/internal/config"
	"github.com/abhisek/skillscope/internal/llm"
	"github.com/abhisek/skillscope/internal/resume"
	skillpkg "github.com/abhisek/skillscope/internal/skills"
	"github.com/abhisek/skillscope/internal/store"
	"github.com/abhisek/skillscope/internal/testgen"
	"github.com/abhisek/skillscope/internal/ui/quiz"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Run a full skill assessment",
	Long: "Extracts skills, generates one question per skill, runs the interactive " +
		"test, then prints the evaluation with suggested career domains.",
	RunE: runAssess,
}

func runAssess(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if dir, _ := cmd.Flags().GetString("output"); dir != "" {
		cfg.Output.Dir = dir
	}

	normalized, rawSkills, err := collectSkills(cmd, cfg)
	if err != nil {
		return err
	}
	// With no sources the TUI opens with an interactive skill prompt.

	if err := cfg.LLM.Validate(); err != nil {
		return err
	}

	vocab, err := loadVocabulary(cfg)
	if err != nil {
		return err
	}

	// Persistence is optional: without a database the assessment still
	// runs, it just isn't recorded.
	var st *store.Store
	var eventRepo store.EventRepo
	if dbPath, err := resolveDBPath(cmd); err != nil {
		fmt.Fprintf(os.Stderr, "warning: resolve database path: %v\n", err)
	} else if st, err = store.Open(dbPath); err != nil {
		fmt.Fprintf(os.Stderr, "warning: open database: %v\n", err)
		st = nil
	} else {
		defer st.Close()
		eventRepo = st.EventRepo()
	}

	ctx := cmd.Context()
	checkOllama(ctx, cfg.LLM, os.Stderr)

	provider, err := llm.NewProvider(ctx, cfg.LLM, eventRepo)
	if err != nil {
		return err
	}

	domain, _ := cmd.Flags().GetString("domain")

	gcfg := testgen.DefaultConfig()
	gcfg.Timeout = cfg.LLM.Timeout
	gen := testgen.New(provider, gcfg)

	outcome, err := quiz.Run(ctx, quiz.Options{
		Domain: domain,
		Skills: normalized,
		Normalize: func(input string) []string {
			return skillpkg.Normalize(resume.ParseManualSkills(input), vocab, cfg.Skills.Threshold)
		},
		Generate: gen.Generate,
	})
	if err != nil {
		return err
	}
	session := outcome.Session
	if session != nil && len(session.Test) == 0 {
		fmt.Println("No valid questions could be produced.")
		return nil
	}
	if !outcome.Completed {
		fmt.Println("Assessment abandoned. No results saved.")
		return nil
	}
	normalized = session.Skills
	set := session.Test

	result := session.Score()
	eval := assessment.Evaluate(set, result)
	suggester := assessment.NewSuggester(provider, cfg.LLM.Timeout)
	domains := suggester.Suggest(ctx, eval)
	summary := assessment.ProfileSummary(normalized)

	printResults(result, eval, domains, summary)

	if noSave, _ := cmd.Flags().GetBool("no-save"); !noSave {
		if len(rawSkills) == 0 {
			// Skills entered interactively: the session list is all we have.
			rawSkills = normalized
		}
		saveResults(ctx, cfg.Output.Dir, st, session, rawSkills, normalized, set, result, eval, domains, summary)
	}
	return nil
}

// checkOllama warns up front when the local server is unreachable or the
// configured model is not pulled. Without it every skill burns the full
// request timeout before falling back to a template question.
func checkOllama(ctx context.Context, cfg llm.Config, w io.Writer) {
	if cfg.Provider != "ollama" {
		return
	}
	p, err := llm.NewOllamaProvider(cfg.Ollama)
	if err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	ok, err := p.Ping(ctx)
	switch {
	case err != nil:
		fmt.Fprintf(w, "warning: ollama at %s is unreachable: %v (questions will use templates)\n",
			cfg.Ollama.BaseURL, err)
	case !ok:
		fmt.Fprintf(w, "warning: model %q is not pulled; run: ollama pull %s\n",
			cfg.Ollama.Model, cfg.Ollama.Model)
	}
}

func printResults(result assessment.ScoreResult, eval assessment.Evaluation, domains []string, summary string) {
	sep := strings.Repeat("─", 60)

	fmt.Println()
	fmt.Println(sep)
	fmt.Printf("Score:       %d/%d (%.0f%%)\n", result.Correct, result.Total, result.Percentage())
	fmt.Printf("Level:       %s\n", eval.Level)
	if len(eval.Strengths) > 0 {
		fmt.Printf("Strengths:   %s\n", strings.Join(eval.Strengths, ", "))
	}
	if len(eval.WeakAreas) > 0 {
		fmt.Printf("Weak areas:  %s\n", strings.Join(eval.WeakAreas, ", "))
	}
	fmt.Println(sep)

	fmt.Println("Suggested career domains:")
	for _, d := range domains {
		fmt.Printf("  - %s\n", d)
	}

	fmt.Println(sep)
	fmt.Println(summary)
}

// saveResults writes artifacts and the database record. Every write is
// best-effort: a failure warns and never discards the printed results.
func saveResults(
	ctx context.Context,
	dir string,
	st *store.Store,
	session *assessment.Session,
	rawSkills, skills []string,
	set testgen.TestSet,
	result assessment.ScoreResult,
	eval assessment.Evaluation,
	domains []string,
	summary string,
) {
	warn := func(what string, err error) {
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: save %s: %v\n", what, err)
		}
	}

	warn("raw skills artifact", artifacts.SaveRawSkills(dir, rawSkills))
	warn("skills artifact", artifacts.SaveSkills(dir, skills))
	warn("test artifact", artifacts.SaveTestSet(dir, set))
	warn("evaluation artifact", artifacts.SaveEvaluation(dir, eval))
	warn("domains artifact", artifacts.SaveDomains(dir, domains))
	warn("summary artifact", artifacts.SaveSummary(dir, summary))

	if st != nil {
		warn("assessment record", st.AssessmentRepo().Save(ctx, &store.AssessmentRecord{
			ID:        session.ID.String(),
			CreatedAt: session.StartedAt,
			Domain:    session.Domain,
			Skills:    skills,
			Score:     result.Correct,
			Total:     result.Total,
			Level:     string(eval.Level),
			Strengths: eval.Strengths,
			WeakAreas: eval.WeakAreas,
		}))
	}
}

func init() {
	addSkillSourceFlags(assessCmd)
	assessCmd.Flags().StringP("domain", "d", "Professional Skills", "Assessment domain used in question prompts")
	assessCmd.Flags().StringP("output", "o", "", "Artifact output directory (overrides config)")
	assessCmd.Flags().Bool("no-save", false, "Skip writing artifacts and the database record")
}
