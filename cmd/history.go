package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/skillscope/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past assessments",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		recs, err := s.AssessmentRepo().List(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("list assessments: %w", err)
		}
		if len(recs) == 0 {
			fmt.Println("No assessments recorded yet.")
			return nil
		}

		fmt.Printf("%-36s  %-19s  %-22s  %-7s  %s\n",
			"ID", "Date", "Domain", "Score", "Level")
		fmt.Println(strings.Repeat("─", 100))

		for _, r := range recs {
			domain := r.Domain
			if len(domain) > 22 {
				domain = domain[:22]
			}
			fmt.Printf("%-36s  %-19s  %-22s  %3d/%-3d  %s\n",
				r.ID,
				r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				domain,
				r.Score, r.Total,
				r.Level,
			)
		}
		return nil
	},
}

var historyViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "View a past assessment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		rec, err := s.AssessmentRepo().Get(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("get assessment: %w", err)
		}
		if rec == nil {
			return fmt.Errorf("assessment %s not found", args[0])
		}

		fmt.Printf("ID:          %s\n", rec.ID)
		fmt.Printf("Date:        %s\n", rec.CreatedAt.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("Domain:      %s\n", rec.Domain)
		fmt.Printf("Skills:      %s\n", strings.Join(rec.Skills, ", "))
		fmt.Printf("Score:       %d/%d\n", rec.Score, rec.Total)
		fmt.Printf("Level:       %s\n", rec.Level)
		if len(rec.Strengths) > 0 {
			fmt.Printf("Strengths:   %s\n", strings.Join(rec.Strengths, ", "))
		}
		if len(rec.WeakAreas) > 0 {
			fmt.Printf("Weak areas:  %s\n", strings.Join(rec.WeakAreas, ", "))
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of assessments to show")
	historyCmd.AddCommand(historyViewCmd)
}
