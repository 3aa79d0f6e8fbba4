package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all profile data and history",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			fmt.Println("Nothing to reset.")
			return nil
		}

		if !force {
			fmt.Printf("This deletes all profile data and history at %s.\nType 'yes' to confirm: ", dbPath)
			scanner := bufio.NewScanner(os.Stdin)
			if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if err := os.Remove(dbPath); err != nil {
			return fmt.Errorf("remove database: %w", err)
		}
		// SQLite WAL sidecar files, when present.
		_ = os.Remove(dbPath + "-wal")
		_ = os.Remove(dbPath + "-shm")

		fmt.Println("All data deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("force", "f", false, "Skip confirmation")
}
