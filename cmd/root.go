package cmd

import (
	logger "github.com/quiltmoor/passgit/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	// RootCmd is the passgit command tree.
	RootCmd = &cobra.Command{
		Use:   "passgit",
		Short: "A git-synchronized password store",
		Long: `passgit manages a directory tree of individually encrypted credential
records, compatible with the pass(1) store layout, synchronized across
machines through git and protected by OpenPGP encryption.

Records are armored .gpg files under $PASSWORD_STORE_DIR (default
~/.password-store), encrypted for the keys listed in the store's .gpg-id
file. Every mutation becomes a git commit; sync fetches, merges, and
pushes in one step.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing passgit with verbose=%t, debug=%t", verbose, debug)
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	RootCmd.AddCommand(listCmd)
	RootCmd.AddCommand(showCmd)
	RootCmd.AddCommand(insertCmd)
	RootCmd.AddCommand(generateCmd)
	RootCmd.AddCommand(rmCmd)
	RootCmd.AddCommand(mvCmd)
	RootCmd.AddCommand(syncCmd)
	RootCmd.AddCommand(initCmd)
	RootCmd.AddCommand(cloneCmd)
}
