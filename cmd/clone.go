package cmd

import (
	"fmt"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"

	"github.com/quiltmoor/passgit/internal/audit"
	"github.com/quiltmoor/passgit/internal/store"
	"github.com/quiltmoor/passgit/internal/ui"
)

var cloneCmd = &cobra.Command{
	Use:   "clone <url>",
	Short: "Fetch an existing password store from a remote",
	Long: `Clone an existing password store into $PASSWORD_STORE_DIR (default
~/.password-store) and set up the upstream so sync works immediately.

The destination must be empty. Authentication goes through ssh-agent;
remotes that demand interactive credentials are rejected up front.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		url := args[0]
		s := store.New(Logger)

		spin, cleanup := startSpinner("Cloning password store...")
		defer cleanup()

		if err := s.FromGit(cmd.Context(), url); err != nil {
			spin.FinalMSG = describeError(err)
			return nil
		}
		cleanup()

		audit.Log(audit.Entry{Operation: "clone", Store: s.Root(), Remote: url})

		names, err := s.List()
		if err != nil {
			names = nil
		}

		figure.NewColorFigure("passgit", "", "green", true).Print()
		fmt.Println()
		fmt.Println(ui.Success.Sprint("✓") + " Cloned " + ui.Highlight.Sprint(url) + " into " + ui.Highlight.Sprint(s.Root()))
		fmt.Printf("The store holds %d entries.\n", len(names))
		fmt.Println()
		fmt.Println("Browse them with " + ui.Code.Sprint("passgit list"))
		return nil
	},
}
