package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"

	perrors "github.com/quiltmoor/passgit/internal/errors"
	"github.com/quiltmoor/passgit/internal/ui"
	"github.com/quiltmoor/passgit/internal/utils"
)

// startSpinner creates and starts a spinner with the given message when not
// in verbose or debug mode. Returns the spinner and a function that should
// be deferred to clean up.
//
// spinner.FinalMSG values do NOT need trailing newlines; the cleanup
// function calls ui.EnsureNewline() on the final message before printing.
func startSpinner(message string) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	// Ignore color errors - continue without colored spinner if it fails.
	_ = s.Color("cyan")

	if !verbose && !debug {
		s.Start()
		// Ensure log output is discarded unless in verbose mode.
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		// Restore log output first.
		if !verbose && !debug {
			log.SetOutput(os.Stdout)
		}

		// Ensure final message ends with a newline.
		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		// Stop the spinner first to clear the spinner line.
		if !verbose && !debug {
			s.Stop()
		}

		// Print final message to stdout (for tests to capture).
		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// describeError maps engine errors onto user-facing final messages, with a
// follow-up hint where one command fixes the situation.
func describeError(err error) string {
	cross := ui.Error.Sprint("✗") + " "

	switch {
	case errors.Is(err, perrors.ErrStoreNotInitialized):
		return cross + "Password store is not initialized.\n" +
			"Run " + ui.Code.Sprint("passgit init <gpg-id>") + " to create one, or " +
			ui.Code.Sprint("passgit clone <url>") + " to fetch an existing store."
	case errors.Is(err, perrors.ErrEntryNotFound):
		return cross + fmt.Sprintf("Entry not found: %v", err)
	case errors.Is(err, perrors.ErrEntryExists):
		return cross + fmt.Sprintf("Entry already exists: %v", err)
	case errors.Is(err, perrors.ErrInvalidPath):
		return cross + fmt.Sprintf("Invalid entry name: %v", err)
	case errors.Is(err, perrors.ErrNoRecipients):
		return cross + "No encryption recipients configured.\n" +
			"The store's " + ui.Code.Sprint(".gpg-id") + " file must list at least one key id."
	case errors.Is(err, perrors.ErrKeyResolution):
		return cross + fmt.Sprintf("Cannot encrypt for the configured recipients: %v", err)
	case errors.Is(err, perrors.ErrDecryptFailed):
		return cross + "Decryption failed. Check your passphrase and key availability."
	case errors.Is(err, perrors.ErrGPGNotAvailable):
		return cross + "gpg was not found on PATH. Install GnuPG and try again."
	case errors.Is(err, perrors.ErrGitNotAvailable):
		return cross + "git was not found on PATH. Install git and try again."
	case errors.Is(err, perrors.ErrAuthUnsupported):
		return cross + "The remote requires authentication this tool cannot provide.\n" +
			"Only ssh-agent authentication is supported; make sure your agent is\n" +
			"running and holds a key the remote accepts."
	case errors.Is(err, perrors.ErrDetachedHead):
		return cross + "HEAD is detached. Check out a branch before syncing."
	case errors.Is(err, perrors.ErrNoUpstream):
		return cross + "The current branch has no upstream.\n" +
			"Set one with " + ui.Code.Sprint("git branch --set-upstream-to=<remote>/<branch>") + "."
	case errors.Is(err, perrors.ErrNoRemote):
		return cross + "No such remote is configured for the store repository."
	case errors.Is(err, perrors.ErrMergeConflict):
		return cross + "Merge conflict while syncing. The store repository is left\n" +
			"mid-merge; resolve the conflicts with git, commit, and sync again.\n" +
			"Both versions of every conflicted record are preserved."
	case errors.Is(err, perrors.ErrNotEmpty):
		return cross + fmt.Sprintf("Destination is not empty: %v", err)
	default:
		return cross + fmt.Sprintf("Error: %v", err)
	}
}

// confirm prompts for a yes/no answer and returns true only on an explicit
// yes. Any read failure counts as no.
func confirm(prompt string) bool {
	answer, err := utils.ReadLine(prompt + " [y/N] ")
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
