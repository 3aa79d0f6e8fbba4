package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show quiz statistics and per-skill accuracy",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()
		eventRepo := st.EventRepo()

		stats, err := eventRepo.Stats(ctx)
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}

		if stats.QuizzesFinished == 0 {
			fmt.Println("No quizzes finished yet. Run: skillforge quiz")
			return nil
		}

		accuracy := 0.0
		if stats.QuestionsAnswered > 0 {
			accuracy = float64(stats.CorrectAnswers) / float64(stats.QuestionsAnswered) * 100
		}

		fmt.Printf("Quizzes finished:    %d\n", stats.QuizzesFinished)
		fmt.Printf("Questions answered:  %d\n", stats.QuestionsAnswered)
		fmt.Printf("Overall accuracy:    %.1f%%\n", accuracy)

		prof, err := loadProfile(ctx, st)
		if err != nil {
			return err
		}
		if len(prof.Levels) == 0 {
			return nil
		}

		skills := make([]string, 0, len(prof.Levels))
		for skill := range prof.Levels {
			skills = append(skills, skill)
		}
		sort.Strings(skills)

		fmt.Println("\nPer-skill")
		fmt.Println(strings.Repeat("─", 56))
		fmt.Printf("%-24s  %6s  %10s\n", "Skill", "Level", "Accuracy")
		fmt.Println(strings.Repeat("─", 56))

		for _, skill := range skills {
			acc, err := eventRepo.SkillAccuracy(ctx, skill)
			if err != nil {
				return fmt.Errorf("skill accuracy: %w", err)
			}
			accStr := "-"
			if acc > 0 {
				accStr = fmt.Sprintf("%.0f%%", acc*100)
			}
			fmt.Printf("%-24s  %6.1f  %10s\n", skill, prof.Levels[skill], accStr)
		}
		return nil
	},
}
