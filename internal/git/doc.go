// Package git provides the version-control gateway for the password store.
//
// All repository mutation and remote synchronization runs through one Git
// handle per store, wrapping the git binary via os/exec. passgit does not
// reimplement git's object model; it sequences git operations and
// classifies their failures into the sentinel errors of internal/errors.
//
// # Synchronization
//
// Pull is a three-way state machine driven by merge analysis between local
// HEAD and the fetched upstream commit: up-to-date (no-op), fast-forward
// (ref move plus checkout, no commit), or a true merge whose conflicts are
// reported with ErrMergeConflict and never auto-resolved.
//
// # Authentication
//
// Remote authentication is SSH-agent public-key only. Every git invocation
// disables terminal credential prompts, and network operations against SSH
// remotes first verify that the local agent is reachable and holds keys
// (golang.org/x/crypto/ssh/agent), so a missing credential method surfaces
// as ErrAuthUnsupported instead of a hung prompt.
//
// # Timeouts
//
// Network operations have no internal timeout; callers pass a
// context.Context and cancel as needed.
package git
