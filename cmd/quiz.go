package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/abhisek/skillforge/internal/catalog"
	"github.com/abhisek/skillforge/internal/gap"
	"github.com/abhisek/skillforge/internal/profile"
	"github.com/abhisek/skillforge/internal/quiz"
	"github.com/abhisek/skillforge/internal/store"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Take an adaptive skill quiz in the terminal",
	RunE:  runQuiz,
}

func runQuiz(cmd *cobra.Command, args []string) error {
	perSkill, _ := cmd.Flags().GetInt("count")
	skillsFlag, _ := cmd.Flags().GetString("skills")

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

	skills, err := resolveQuizSkills(prof, skillsFlag)
	if err != nil {
		return err
	}

	gen := quiz.NewSeededGenerator(uint64(time.Now().UnixNano()))
	items := gen.Generate(skills, prof.Levels, perSkill)
	if len(items) == 0 {
		fmt.Println("No quiz questions available for your skills.")
		return nil
	}

	eventRepo := st.EventRepo()
	quizID := uuid.New().String()
	_ = eventRepo.AppendQuizEvent(ctx, store.QuizEventData{
		QuizID: quizID,
		Action: "start",
		Skills: skills,
	})

	fmt.Printf("Adaptive quiz: %d questions. Answer A-D, S to skip, Q to quit.\n\n", len(items))

	scanner := bufio.NewScanner(os.Stdin)
	answers := make(map[int]int)
	correct := 0
	served := 0

	for i, item := range items {
		fmt.Printf("[%d/%d] (%s, %s) %s\n", i+1, len(items), item.Skill, item.Difficulty, item.Text)
		for j, opt := range item.Options {
			fmt.Printf("  %c) %s\n", 'A'+j, opt)
		}

		selected, quit := promptAnswer(scanner, len(item.Options))
		if quit {
			break
		}
		served++

		if selected >= 0 {
			answers[item.ID] = selected
			if selected == item.CorrectIndex {
				correct++
				fmt.Println("  Correct!")
			} else {
				fmt.Printf("  Not quite — the answer was %c.\n", 'A'+item.CorrectIndex)
			}
		} else {
			fmt.Println("  Skipped.")
		}
		fmt.Println()

		_ = eventRepo.AppendAnswerEvent(ctx, store.AnswerEventData{
			QuizID:        quizID,
			Skill:         item.Skill,
			Difficulty:    string(item.Difficulty),
			QuestionText:  item.Text,
			SelectedIndex: selected,
			CorrectIndex:  item.CorrectIndex,
			Correct:       selected == item.CorrectIndex,
		})
	}

	if served == 0 {
		fmt.Println("Quiz aborted, nothing recorded.")
		return nil
	}

	results := quiz.Score(items[:served], answers)
	prof.ApplyQuizResults(results)

	if err := st.SnapshotRepo().Save(ctx, &store.Snapshot{
		Timestamp: time.Now(),
		Data:      prof.Snapshot(),
	}); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}

	resultSkills := make([]string, 0, len(results))
	for skill := range results {
		resultSkills = append(resultSkills, skill)
	}
	sort.Strings(resultSkills)

	_ = eventRepo.AppendQuizEvent(ctx, store.QuizEventData{
		QuizID:          quizID,
		Action:          "finish",
		Skills:          resultSkills,
		QuestionsServed: served,
		CorrectAnswers:  correct,
	})

	fmt.Println("Results")
	fmt.Println(strings.Repeat("─", 60))
	for _, skill := range resultSkills {
		res := results[skill]
		fmt.Printf("  %-22s  %d/%d correct  top tier %-12s  score %.1f\n",
			skill, res.Correct, res.Total, res.MaxDifficulty, res.Score)
	}
	fmt.Println("\nMeasured scores were blended into your skill levels.")

	if prof.TargetRole != "" {
		if role, err := catalog.Get(prof.TargetRole); err == nil {
			readiness := gap.Readiness(prof.Levels, role.Requirements)
			gapCount := 0
			for _, r := range gap.ComputeGaps(prof.Levels, role.Requirements) {
				if r.Gap > 0 {
					gapCount++
				}
			}
			_ = eventRepo.AppendAssessment(ctx, store.AssessmentEventData{
				Role:      prof.TargetRole,
				Readiness: readiness,
				GapCount:  gapCount,
				Source:    "quiz",
			})
			fmt.Printf("Readiness for %s is now %.1f%%.\n", role.Name, readiness)
		}
	}
	return nil
}

// resolveQuizSkills picks the quiz skills: an explicit --skills list,
// else the target role's requirements, else every rated skill.
func resolveQuizSkills(prof *profile.Profile, skillsFlag string) ([]string, error) {
	if skillsFlag != "" {
		var skills []string
		for _, s := range strings.Split(skillsFlag, ",") {
			if s = strings.TrimSpace(s); s != "" {
				skills = append(skills, s)
			}
		}
		return skills, nil
	}

	if prof.TargetRole != "" {
		role, err := catalog.Get(prof.TargetRole)
		if err != nil {
			return nil, err
		}
		return role.RequiredSkills(), nil
	}

	if len(prof.Levels) == 0 {
		return nil, fmt.Errorf("no skills to quiz — set a target role or pass --skills")
	}
	skills := make([]string, 0, len(prof.Levels))
	for skill := range prof.Levels {
		skills = append(skills, skill)
	}
	sort.Strings(skills)
	return skills, nil
}

// promptAnswer reads one answer. Returns (-1, false) for skip and
// (_, true) when the user quits.
func promptAnswer(scanner *bufio.Scanner, optionCount int) (int, bool) {
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return -1, true
		}
		in := strings.ToUpper(strings.TrimSpace(scanner.Text()))
		switch {
		case in == "Q":
			return -1, true
		case in == "S" || in == "":
			return -1, false
		case len(in) == 1 && in[0] >= 'A' && int(in[0]-'A') < optionCount:
			return int(in[0] - 'A'), false
		default:
			fmt.Printf("Enter A-%c, S to skip, or Q to quit.\n", 'A'+optionCount-1)
		}
	}
}

func init() {
	quizCmd.Flags().IntP("count", "c", 3, "Questions per skill")
	quizCmd.Flags().String("skills", "", "Comma-separated skills to quiz (defaults to the target role's)")
}
