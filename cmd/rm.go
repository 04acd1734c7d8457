package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quiltmoor/passgit/internal/audit"
	"github.com/quiltmoor/passgit/internal/store"
	"github.com/quiltmoor/passgit/internal/ui"
)

var rmForce bool

var rmCmd = &cobra.Command{
	Use:     "rm <name>",
	Aliases: []string{"remove", "delete"},
	Short:   "Remove an entry from the store",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		s := store.New(Logger)

		if !rmForce {
			prompt := "Really remove " + ui.Entry.Sprint(name) + "?"
			if !confirm(prompt) {
				fmt.Println(ui.Warning.Sprint("Aborted."))
				return nil
			}
		}

		if err := s.Remove(cmd.Context(), name); err != nil {
			fmt.Println(describeError(err))
			return nil
		}

		audit.Log(audit.Entry{Operation: "remove", Store: s.Root(), Name: name})
		fmt.Println(ui.Success.Sprint("✓") + " Removed " + ui.Entry.Sprint(name))
		return nil
	},
}

func init() {
	rmCmd.Flags().BoolVarP(&rmForce, "force", "f", false, "remove without asking for confirmation")
}
