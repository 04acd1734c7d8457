// Package errors provides typed error values for the passgit application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. This makes
// error handling more robust and refactoring-safe.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Configuration errors: Store location issues (ErrNoStoreRoot)
//   - Entry errors: Record-level issues (ErrEntryNotFound, ErrInvalidPath)
//   - Crypto errors: OpenPGP gateway failures (ErrNoRecipients, ErrDecryptFailed)
//   - Auth errors: Remote credential failures (ErrAuthUnsupported)
//   - Sync errors: Git state machine failures (ErrMergeConflict, ErrNoUpstream)
//
// # Usage
//
// Return errors from internal packages:
//
//	if len(recipients) == 0 {
//	    return nil, errors.ErrNoRecipients
//	}
//
// Handle errors in the CLI layer:
//
//	entry, err := st.Get(name, passphrase)
//	if errors.Is(err, perrors.ErrEntryNotFound) {
//	    // Show user-friendly message
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("reading %s: %w", path, errors.ErrEntryNotFound)
//
// Output from the git and gpg binaries is classified into these sentinels
// exactly once, inside the respective gateway package. Code above the
// gateways never inspects subprocess output.
package errors
