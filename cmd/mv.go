package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quiltmoor/passgit/internal/audit"
	"github.com/quiltmoor/passgit/internal/store"
	"github.com/quiltmoor/passgit/internal/ui"
)

var mvCmd = &cobra.Command{
	Use:     "mv <old-name> <new-name>",
	Aliases: []string{"rename"},
	Short:   "Rename an entry",
	Long: `Rename an entry, keeping its encrypted content untouched.

The move fails if the destination already exists; nothing is
overwritten.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		oldName, newName := args[0], args[1]
		s := store.New(Logger)

		if err := s.Rename(cmd.Context(), oldName, newName); err != nil {
			fmt.Println(describeError(err))
			return nil
		}

		audit.Log(audit.Entry{Operation: "rename", Store: s.Root(), OldName: oldName, NewName: newName})
		fmt.Println(ui.Success.Sprint("✓") + " Renamed " + ui.Entry.Sprint(oldName) + " to " + ui.Entry.Sprint(newName))
		return nil
	},
}
