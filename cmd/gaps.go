package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/skillforge/internal/catalog"
	"github.com/abhisek/skillforge/internal/gap"
	"github.com/abhisek/skillforge/internal/profile"
	"github.com/abhisek/skillforge/internal/store"
	"github.com/spf13/cobra"
)

var gapsCmd = &cobra.Command{
	Use:   "gaps",
	Short: "Show the skill gap analysis for your target role",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		readiness := gap.Readiness(prof.Levels, role.Requirements)
		records := gap.ComputeGaps(prof.Levels, role.Requirements)

		fmt.Printf("Readiness for %s: %.1f%%\n", role.Name, readiness)
		fmt.Println(strings.Repeat("─", 72))
		fmt.Printf("%-24s  %7s  %8s  %5s  %8s  %s\n",
			"Skill", "Current", "Required", "Gap", "Priority", "Status")
		fmt.Println(strings.Repeat("─", 72))

		for _, r := range records {
			fmt.Printf("%-24s  %7.1f  %8.1f  %5.1f  %8.1f  %s\n",
				r.Skill, r.Current, r.Required, r.Gap, r.PriorityScore, r.Status)
		}

		strengths := gap.Strengths(prof.Levels, role.Requirements)
		if len(strengths) > 0 {
			names := make([]string, 0, len(strengths))
			for _, s := range strengths {
				names = append(names, s.Skill)
			}
			fmt.Printf("\nStrengths: %s\n", strings.Join(names, ", "))
		}
		return nil
	},
}

// openStore opens the event store at the resolved database path.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return st, nil
}

// loadProfile restores the profile from the latest snapshot, or a fresh
// one when no snapshot exists yet.
func loadProfile(ctx context.Context, st *store.Store) (*profile.Profile, error) {
	snap, err := st.SnapshotRepo().Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	if snap == nil {
		return profile.New(), nil
	}
	return profile.FromSnapshot(&snap.Data), nil
}

// requireRole resolves the profile's target role, honoring a --role
// override when the command defines one.
func requireRole(cmd *cobra.Command, prof *profile.Profile) (catalog.Role, error) {
	name := prof.TargetRole
	if f := cmd.Flags().Lookup("role"); f != nil && f.Value.String() != "" {
		name = f.Value.String()
	}
	if name == "" {
		return catalog.Role{}, fmt.Errorf("no target role set — run the app and pick one, or pass --role")
	}
	return catalog.Get(name)
}

func init() {
	gapsCmd.Flags().String("role", "", "Analyze against this role instead of the saved target")
}
