package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quiltmoor/passgit/internal/audit"
	"github.com/quiltmoor/passgit/internal/store"
	"github.com/quiltmoor/passgit/internal/ui"
	"github.com/quiltmoor/passgit/internal/utils"
)

var (
	insertMultiline bool
	insertForce     bool
)

var insertCmd = &cobra.Command{
	Use:     "insert <name>",
	Aliases: []string{"add"},
	Short:   "Add or update an entry",
	Long: `Add a new entry to the store, or update an existing one.

The password is read from the terminal without echo and confirmed. With
--multiline the whole record is read from stdin instead: the first line
becomes the password, the rest metadata.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		s := store.New(Logger)

		if s.Exists(name) && !insertForce {
			prompt := "An entry already exists for " + ui.Entry.Sprint(name) + ". Overwrite it?"
			if !confirm(prompt) {
				fmt.Println(ui.Warning.Sprint("Aborted."))
				return nil
			}
		}

		entry, err := readEntry(name)
		if err != nil {
			fmt.Println(describeError(err))
			return nil
		}

		if err := s.Add(cmd.Context(), name, entry); err != nil {
			fmt.Println(describeError(err))
			return nil
		}

		audit.Log(audit.Entry{Operation: "add", Store: s.Root(), Name: name})
		fmt.Println(ui.Success.Sprint("✓") + " Saved " + ui.Entry.Sprint(name))
		return nil
	},
}

func init() {
	insertCmd.Flags().BoolVarP(&insertMultiline, "multiline", "m", false, "read the whole record from stdin")
	insertCmd.Flags().BoolVarP(&insertForce, "force", "f", false, "overwrite an existing entry without asking")
}

// readEntry collects the new record interactively, or from stdin in
// multiline mode.
func readEntry(name string) (store.Entry, error) {
	if insertMultiline {
		fmt.Fprintln(os.Stderr, "Enter the record for "+name+", finishing with Ctrl-D:")
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return store.Entry{}, fmt.Errorf("reading record from stdin: %w", err)
		}
		lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
		return store.Entry{Password: lines[0], Metadata: lines[1:]}, nil
	}

	password, err := utils.ReadPassphrase("Enter password for " + name + ": ")
	if err != nil {
		return store.Entry{}, err
	}
	retyped, err := utils.ReadPassphrase("Retype password for " + name + ": ")
	if err != nil {
		return store.Entry{}, err
	}
	if password != retyped {
		return store.Entry{}, fmt.Errorf("the entered passwords do not match")
	}

	return store.Entry{Password: password}, nil
}
