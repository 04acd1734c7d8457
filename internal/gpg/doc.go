// Package gpg bridges record plaintext and on-disk ciphertext by wrapping
// the gpg binary.
//
// # Delegation
//
// passgit implements no OpenPGP primitives. Encryption, decryption, key
// management, and passphrase caching all belong to gpg and its agent; this
// package builds command lines, feeds data over pipes, and classifies
// failures into the sentinel errors of internal/errors.
//
// # Recipients
//
// The store's .gpg-id file names the public keys records are encrypted for.
// Resolution uses the local keyring only (--no-auto-key-locate); a store
// whose .gpg-id is missing or empty refuses writes with ErrNoRecipients.
//
// # Passphrase Modes
//
// Decryption supports two acquisition modes:
//
//   - Supplied: a caller-provided passphrase is fed over a loopback file
//     descriptor (--pinentry-mode loopback --passphrase-fd). No prompt is
//     ever shown, and the passphrase never touches argv.
//   - Interactive: the agent's normal pinentry path handles acquisition.
//
// Produced ciphertext is always ASCII-armored so the on-disk format stays
// text-safe and diff-friendly in the git repository.
package gpg
