package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/quiltmoor/passgit/internal/audit"
	perrors "github.com/quiltmoor/passgit/internal/errors"
	"github.com/quiltmoor/passgit/internal/store"
	"github.com/quiltmoor/passgit/internal/ui"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Synchronize the store with its remotes",
	Long: `Synchronize the password store: fetch from every remote, merge the
upstream branch into the current branch, then push.

Local history is never rewritten. Diverged histories produce a real
merge commit; conflicting changes stop the sync with the repository
left mid-merge for manual resolution.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := store.New(Logger)

		spin, cleanup := startSpinner("Syncing password store...")
		defer cleanup()

		err := s.Sync(cmd.Context())
		if err != nil {
			spin.FinalMSG = describeError(err)
			audit.Log(audit.Entry{Operation: "sync", Store: s.Root(), Outcome: syncOutcome(err)})
			return nil
		}

		audit.Log(audit.Entry{Operation: "sync", Store: s.Root(), Outcome: "ok"})
		spin.FinalMSG = ui.Success.Sprint("✓") + " Password store synchronized."
		return nil
	},
}

// syncOutcome classifies a sync failure for the audit log.
func syncOutcome(err error) string {
	switch {
	case errors.Is(err, perrors.ErrMergeConflict):
		return "conflict"
	case errors.Is(err, perrors.ErrAuthUnsupported):
		return "auth"
	case errors.Is(err, perrors.ErrNoUpstream), errors.Is(err, perrors.ErrNoRemote), errors.Is(err, perrors.ErrDetachedHead):
		return "misconfigured"
	default:
		return "error"
	}
}
