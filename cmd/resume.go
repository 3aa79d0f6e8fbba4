package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/abhisek/skillforge/internal/catalog"
	"github.com/abhisek/skillforge/internal/gap"
	"github.com/abhisek/skillforge/internal/resume"
	"github.com/abhisek/skillforge/internal/store"
	"github.com/spf13/cobra"
)

var resumeCmd = &cobra.Command{
	Use:   "resume <file>",
	Short: "Extract skill levels from a resume text file",
	Long: `Scan a plain-text resume for known skills and estimate levels from
mention frequency and seniority wording. Extracted levels only fill in
skills you have not rated yet — explicit ratings and quiz scores win.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read resume: %w", err)
		}

		extracted := resume.Extract(string(data))
		if len(extracted) == 0 {
			fmt.Println("No known skills found in the resume.")
			return nil
		}

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
		prof.MergeExtracted(extracted)

		if err := st.SnapshotRepo().Save(ctx, &store.Snapshot{
			Timestamp: time.Now(),
			Data:      prof.Snapshot(),
		}); err != nil {
			return fmt.Errorf("save profile: %w", err)
		}

		skills := make([]string, 0, len(extracted))
		for skill := range extracted {
			skills = append(skills, skill)
		}
		sort.Strings(skills)

		fmt.Printf("Extracted %d skills\n", len(skills))
		fmt.Println(strings.Repeat("─", 40))
		for _, skill := range skills {
			marker := ""
			if level, ok := prof.Level(skill); ok && level != extracted[skill] {
				marker = "  (kept existing rating)"
			}
			fmt.Printf("  %-24s  level %.1f%s\n", skill, extracted[skill], marker)
		}

		if prof.TargetRole != "" {
			if role, err := catalog.Get(prof.TargetRole); err == nil {
				readiness := gap.Readiness(prof.Levels, role.Requirements)
				gapCount := 0
				for _, r := range gap.ComputeGaps(prof.Levels, role.Requirements) {
					if r.Gap > 0 {
						gapCount++
					}
				}
				_ = st.EventRepo().AppendAssessment(ctx, store.AssessmentEventData{
					Role:      prof.TargetRole,
					Readiness: readiness,
					GapCount:  gapCount,
					Source:    "resume",
				})
				fmt.Printf("\nReadiness for %s: %.1f%%\n", role.Name, readiness)
			}
		}
		return nil
	},
}
