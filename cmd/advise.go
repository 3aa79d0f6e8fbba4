package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/abhisek/skillforge/internal/advisor"
	"github.com/abhisek/skillforge/internal/gap"
	"github.com/abhisek/skillforge/internal/llm"
	"github.com/spf13/cobra"
)

var adviseCmd = &cobra.Command{
	Use:   "advise [question]",
	Short: "Get coaching advice for your target role",
	Long: `With no arguments, generates structured coaching advice from your
current gap analysis. With a question, asks the coach directly.
Works without an LLM configured, falling back to built-in advice.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()
		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		}
		coach := advisor.NewService(provider, advisor.DefaultConfig())

		prof, err := loadProfile(ctx, st)
		if err != nil {
			return err
		}

		// Free-form question mode.
		if len(args) > 0 {
			roleContext := ""
			if prof.TargetRole != "" {
				roleContext = fmt.Sprintf("The user's target role is %s.", prof.TargetRole)
			}
			fmt.Println(coach.Ask(ctx, strings.Join(args, " "), roleContext))
			return nil
		}

		role, err := requireRole(cmd, prof)
		if err != nil {
			return err
		}

		advice := coach.Generate(ctx, advisor.Input{
			Role:      role.Name,
			Readiness: gap.Readiness(prof.Levels, role.Requirements),
			Records:   gap.ComputeGaps(prof.Levels, role.Requirements),
		})

		if advice.Source == "fallback" {
			fmt.Println("(built-in advice — configure an LLM for personalized coaching)")
			fmt.Println()
		}
		fmt.Println(advice.Summary)
		if len(advice.FocusAreas) > 0 {
			fmt.Println("\nFocus areas")
			fmt.Println(strings.Repeat("─", 60))
			for _, f := range advice.FocusAreas {
				fmt.Printf("  %s: %s\n", f.Skill, f.Recommendation)
			}
		}
		if advice.WeeklyHours > 0 {
			fmt.Printf("\nSuggested effort: %d hours/week\n", advice.WeeklyHours)
		}
		return nil
	},
}

func init() {
	adviseCmd.Flags().String("role", "", "Advise against this role instead of the saved target")
}
