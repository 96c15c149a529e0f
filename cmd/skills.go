package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/skillscope/internal/artifacts"
	"github.com/abhisek/skillscope/internal/config"
	"github.com/abhisek/skillscope/internal/resume"
	"github.com/abhisek/skillscope/internal/skills"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Extract and normalize skills without running a test",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		normalized, raw, err := collectSkills(cmd, cfg)
		if err != nil {
			return err
		}
		if len(normalized) == 0 {
			fmt.Println("No skills extracted. Provide --resume, --skills or --skills-file.")
			return nil
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			out, err := json.MarshalIndent(map[string][]string{"normalized_skills": normalized}, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
		} else {
			for _, s := range normalized {
				fmt.Println(s)
			}
		}

		if save, _ := cmd.Flags().GetBool("save"); save {
			if err := artifacts.SaveRawSkills(cfg.Output.Dir, raw); err != nil {
				fmt.Fprintf(os.Stderr, "warning: save raw skills artifact: %v\n", err)
			}
			if err := artifacts.SaveSkills(cfg.Output.Dir, normalized); err != nil {
				fmt.Fprintf(os.Stderr, "warning: save skills artifact: %v\n", err)
			}
		}
		return nil
	},
}

var skillsVocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "List the skill vocabulary in effect",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		vocab, err := loadVocabulary(cfg)
		if err != nil {
			return err
		}
		for _, entry := range vocab.Entries() {
			fmt.Println(entry)
		}
		return nil
	},
}

// addSkillSourceFlags registers the shared skill-input flags.
func addSkillSourceFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("resume", "r", "", "Path to a resume (PDF, DOCX or plain text)")
	cmd.Flags().StringP("skills", "s", "", "Comma-separated skill list")
	cmd.Flags().String("skills-file", "", "Path to a JSON file with raw skill names")
}

// collectSkills gathers skills from all provided sources and returns the
// normalized, deduplicated result in first-seen order, along with the raw
// tokens as they came in (matched names for a resume, verbatim entries for
// the manual list and skills file).
func collectSkills(cmd *cobra.Command, cfg config.Config) (normalized, raw []string, err error) {
	vocab, err := loadVocabulary(cfg)
	if err != nil {
		return nil, nil, err
	}

	seen := make(map[string]bool)
	add := func(names []string) {
		for _, n := range names {
			if !seen[n] {
				seen[n] = true
				normalized = append(normalized, n)
			}
		}
	}

	if path, _ := cmd.Flags().GetString("resume"); path != "" {
		text, err := resume.ExtractText(path)
		if err != nil {
			// Extraction is best-effort: other sources may still apply.
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		} else {
			matched := skills.Match(text, vocab, cfg.Skills.Threshold)
			raw = append(raw, matched...)
			add(matched)
		}
	}

	if list, _ := cmd.Flags().GetString("skills"); list != "" {
		tokens := resume.ParseManualSkills(list)
		raw = append(raw, tokens...)
		add(skills.Normalize(tokens, vocab, cfg.Skills.Threshold))
	}

	if path, _ := cmd.Flags().GetString("skills-file"); path != "" {
		tokens, err := resume.LoadSkillsFile(path)
		if err != nil {
			return nil, nil, err
		}
		raw = append(raw, tokens...)
		add(skills.Normalize(tokens, vocab, cfg.Skills.Threshold))
	}

	return normalized, raw, nil
}

func loadVocabulary(cfg config.Config) (skills.Vocabulary, error) {
	if cfg.Skills.VocabularyPath == "" {
		return skills.Default(), nil
	}
	vocab, err := skills.Load(cfg.Skills.VocabularyPath)
	if err != nil {
		return skills.Vocabulary{}, fmt.Errorf("load vocabulary: %w", err)
	}
	return vocab, nil
}

func init() {
	addSkillSourceFlags(skillsCmd)
	skillsCmd.Flags().Bool("json", false, "Print as JSON")
	skillsCmd.Flags().Bool("save", false, "Also write the skills artifacts")
	skillsCmd.AddCommand(skillsVocabCmd)
}
