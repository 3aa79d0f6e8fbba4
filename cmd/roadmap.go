package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/skillforge/internal/catalog"
	"github.com/abhisek/skillforge/internal/gap"
	"github.com/abhisek/skillforge/internal/predict"
	"github.com/abhisek/skillforge/internal/roadmap"
	"github.com/spf13/cobra"
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap",
	Short: "Generate a week-by-week learning roadmap",
	RunE: func(cmd *cobra.Command, args []string) error {
		weeks, _ := cmd.Flags().GetInt("weeks")
		hours, _ := cmd.Flags().GetFloat64("hours")
		showDays, _ := cmd.Flags().GetBool("days")
		showResources, _ := cmd.Flags().GetBool("resources")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()
		prof, err := loadProfile(ctx, st)
		if err != nil {
			return err
		}
		role, err := requireRole(cmd, prof)
		if err != nil {
			return err
		}

		plan := roadmap.Generate(prof.Levels, role.Requirements, weeks)
		if plan.Complete {
			fmt.Println(plan.Status)
			return nil
		}

		records := gap.ComputeGaps(prof.Levels, role.Requirements)

		fmt.Printf("%d-week roadmap for %s  (%d skills to close)\n",
			weeks, role.Name, plan.TotalSkills)

		order := predict.SkillOrder(openGaps(records))
		fmt.Printf("Suggested learning order: %s\n", strings.Join(order, " → "))
		fmt.Println(strings.Repeat("═", 76))

		for _, week := range plan.Weeks {
			fmt.Printf("\nWeek %d\n", week.Week)
			fmt.Println(strings.Repeat("─", 76))
			for _, fa := range week.FocusAreas {
				eta := predict.WeeksToTarget(fa.CurrentLevel, fa.TargetLevel, hours)
				fmt.Printf("  %-22s  %.1f → %.1f  %-12s  %-6s priority  ~%.1f wk\n",
					fa.Skill, fa.CurrentLevel, fa.TargetLevel, fa.Difficulty, fa.Priority, eta)

				if showResources {
					for _, res := range catalog.Resources(fa.Skill) {
						fmt.Printf("      %s: %s (%s, %s)\n", res.Type, res.Title, res.Platform, res.Duration)
					}
				}
			}
			if showDays {
				for _, target := range week.DailyTargets {
					fmt.Printf("    %s\n", target)
				}
			}
		}

		summary := roadmap.RecommendationSummary(records)
		if len(summary.ImmediateActions) > 0 {
			fmt.Println("\nImmediate actions")
			fmt.Println(strings.Repeat("─", 76))
			for _, a := range summary.ImmediateActions {
				fmt.Printf("  [%s effort] %s\n", a.Effort, a.Advice)
			}
			fmt.Printf("\nEstimated timeline: %s\n", summary.TimelineEstimate)
		}
		return nil
	},
}

func openGaps(records []gap.Record) []gap.Record {
	var open []gap.Record
	for _, r := range records {
		if r.Gap > 0 {
			open = append(open, r)
		}
	}
	return open
}

func init() {
	roadmapCmd.Flags().IntP("weeks", "w", 4, "Number of weeks to plan")
	roadmapCmd.Flags().Float64("hours", 10, "Study hours per week for time estimates")
	roadmapCmd.Flags().BoolP("days", "d", false, "Show daily study targets")
	roadmapCmd.Flags().BoolP("resources", "r", false, "Show learning resources per skill")
	roadmapCmd.Flags().String("role", "", "Plan against this role instead of the saved target")
}
