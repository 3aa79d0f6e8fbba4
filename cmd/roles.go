package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/skillforge/internal/catalog"
	"github.com/spf13/cobra"
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List target roles and their skill requirements",
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")

		for _, role := range catalog.Roles() {
			skills := role.RequiredSkills()
			fmt.Printf("%-28s  %d required skills\n", role.Name, len(skills))

			if verbose {
				fmt.Println(strings.Repeat("─", 50))
				for _, skill := range skills {
					fmt.Printf("  %-24s  level %.1f\n", skill, role.Requirements[skill])
				}
				fmt.Println()
			}
		}
		return nil
	},
}

func init() {
	rolesCmd.Flags().BoolP("verbose", "v", false, "Show required skill levels per role")
}
