package cmd

import (
	"fmt"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"

	"github.com/quiltmoor/passgit/internal/audit"
	"github.com/quiltmoor/passgit/internal/store"
	"github.com/quiltmoor/passgit/internal/ui"
)

var initCmd = &cobra.Command{
	Use:   "init <gpg-id>...",
	Short: "Create a new password store",
	Long: `Create a password store at $PASSWORD_STORE_DIR (default
~/.password-store): the directory, the .gpg-id recipient list, and a
git repository with an initial commit.

Every gpg-id given becomes an encryption recipient for new entries.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		recipients := args
		s := store.New(Logger)

		spin, cleanup := startSpinner("Initializing password store...")
		defer cleanup()

		if err := s.Init(cmd.Context(), recipients); err != nil {
			spin.FinalMSG = describeError(err)
			return nil
		}
		cleanup()

		audit.Log(audit.Entry{Operation: "init", Store: s.Root()})

		figure.NewColorFigure("passgit", "", "green", true).Print()
		fmt.Println()
		fmt.Println(ui.Success.Sprint("✓") + " Password store initialized at " + ui.Highlight.Sprint(s.Root()))
		for _, recipient := range recipients {
			fmt.Println("  encrypting for " + ui.Highlight.Sprint(recipient))
		}
		fmt.Println()
		fmt.Println("Add your first entry with " + ui.Code.Sprint("passgit insert <name>"))
		return nil
	},
}
