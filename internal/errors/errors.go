package errors

import "errors"

// Configuration errors indicate the store itself cannot be located or used.
var (
	// ErrNoStoreRoot indicates the store root could not be resolved from
	// the environment or the home directory.
	ErrNoStoreRoot = errors.New("store root could not be resolved")

	// ErrStoreNotInitialized indicates the engine has no usable store root
	// or repository behind it.
	ErrStoreNotInitialized = errors.New("password store has not been initialized")
)

// Entry errors indicate issues with individual records.
var (
	// ErrEntryNotFound indicates the named entry does not exist in the store.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrEntryExists indicates the destination of a rename already exists.
	ErrEntryExists = errors.New("entry already exists")

	// ErrInvalidPath indicates an entry name contains a hidden or relative
	// path component.
	ErrInvalidPath = errors.New("entry name contains an invalid path component")

	// ErrInvalidRecord indicates decrypted record bytes are not valid UTF-8.
	ErrInvalidRecord = errors.New("decrypted record is not valid UTF-8")
)

// Cryptographic errors indicate failures in the OpenPGP gateway.
var (
	// ErrNoRecipients indicates .gpg-id is missing or yields no usable keys.
	ErrNoRecipients = errors.New("no encryption recipients configured")

	// ErrKeyResolution indicates a recipient could not be resolved to a key
	// in the local keyring.
	ErrKeyResolution = errors.New("recipient key could not be resolved")

	// ErrDecryptFailed indicates decryption failed: bad passphrase, corrupt
	// ciphertext, or missing secret key.
	ErrDecryptFailed = errors.New("failed to decrypt entry")

	// ErrGPGNotAvailable indicates the gpg binary is not installed or not in PATH.
	ErrGPGNotAvailable = errors.New("gpg binary not available")
)

// Authentication errors indicate remote credential failures.
var (
	// ErrAuthUnsupported indicates no supported credential method is
	// available for the remote (SSH-agent public-key auth only).
	ErrAuthUnsupported = errors.New("no supported authentication method for remote")
)

// Sync errors indicate failures in the git synchronization state machine.
var (
	// ErrDetachedHead indicates HEAD is not on a branch.
	ErrDetachedHead = errors.New("repository HEAD is detached")

	// ErrNoUpstream indicates the current branch has no configured upstream.
	ErrNoUpstream = errors.New("current branch has no upstream configured")

	// ErrNoRemote indicates no remote configured for push.
	ErrNoRemote = errors.New("no remote configured")

	// ErrMergeConflict indicates local and upstream histories conflict and
	// require manual resolution.
	ErrMergeConflict = errors.New("merge conflict requires manual resolution")

	// ErrNotEmpty indicates a clone destination already contains files.
	ErrNotEmpty = errors.New("destination directory is not empty")

	// ErrGitNotAvailable indicates the git binary is not installed or not in PATH.
	ErrGitNotAvailable = errors.New("git binary not available")
)
