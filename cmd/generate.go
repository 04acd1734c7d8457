package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/quiltmoor/passgit/internal/audit"
	"github.com/quiltmoor/passgit/internal/configs"
	"github.com/quiltmoor/passgit/internal/store"
	"github.com/quiltmoor/passgit/internal/ui"
	"github.com/quiltmoor/passgit/internal/utils"
)

var (
	generateNoSymbols bool
	generateForce     bool
)

var generateCmd = &cobra.Command{
	Use:   "generate <name> [length]",
	Short: "Generate a random password and store it",
	Long: `Generate a random password, save it as an entry, and print it.

The length defaults to generate.length from config.toml (25 when unset).
Passwords draw from letters, digits, and punctuation; --no-symbols
restricts them to letters and digits.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		s := store.New(Logger)

		length, err := generateLength(args)
		if err != nil {
			fmt.Println(describeError(err))
			return nil
		}

		if s.Exists(name) && !generateForce {
			prompt := "An entry already exists for " + ui.Entry.Sprint(name) + ". Overwrite it?"
			if !confirm(prompt) {
				fmt.Println(ui.Warning.Sprint("Aborted."))
				return nil
			}
		}

		password, err := utils.GeneratePassword(length, generateNoSymbols)
		if err != nil {
			fmt.Println(describeError(err))
			return nil
		}

		if err := s.Add(cmd.Context(), name, store.Entry{Password: password}); err != nil {
			fmt.Println(describeError(err))
			return nil
		}

		audit.Log(audit.Entry{Operation: "add", Store: s.Root(), Name: name})
		fmt.Println(ui.Success.Sprint("✓") + " The generated password for " + ui.Entry.Sprint(name) + " is:")
		fmt.Println(ui.Highlight.Sprint(password))
		return nil
	},
}

func init() {
	generateCmd.Flags().BoolVarP(&generateNoSymbols, "no-symbols", "n", false, "use only letters and digits")
	generateCmd.Flags().BoolVarP(&generateForce, "force", "f", false, "overwrite an existing entry without asking")
}

// generateLength resolves the password length from the optional positional
// argument, falling back to the configured default.
func generateLength(args []string) (int, error) {
	if len(args) == 2 {
		length, err := strconv.Atoi(args[1])
		if err != nil {
			return 0, fmt.Errorf("invalid length %q: %w", args[1], err)
		}
		return length, nil
	}

	config, err := configs.LoadUserConfig()
	if err != nil {
		return configs.DefaultGenerateLength, nil
	}
	return config.Generate.Length, nil
}
