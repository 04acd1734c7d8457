// Package store implements the password store engine.
//
// A store is a directory tree of individually encrypted records, one
// armored .gpg file per entry, with a .gpg-id recipient list at the root
// and a git repository around the whole tree. The engine composes three
// collaborators:
//
//   - internal/configs locates the store root (environment override, else
//     <home>/.password-store)
//   - internal/gpg encrypts and decrypts record plaintext
//   - internal/git persists changes and synchronizes with remotes
//
// # Records
//
// A record's plaintext is line-oriented: the first line is the password,
// the rest are metadata preserved verbatim. Encode and Decode are exact
// inverses. Records exist on disk only as ciphertext; the plaintext view
// is materialized on demand and never written anywhere.
//
// # Entry Names
//
// Entries are named by store-relative, slash-separated paths without the
// .gpg suffix. Hidden components (anything dot-prefixed, including "." and
// "..") are rejected on write and excluded from listings, which keeps both
// path traversal and repository internals (.git) out of the entry
// namespace.
//
// # Synchronization
//
// Sync runs fetch, pull, push in order and stops at the first failure.
// Completed steps are not rolled back: a fast-forward or merge that landed
// before a failed push persists, and the next sync picks up from there.
//
// # Concurrency
//
// Every operation runs to completion on the calling thread and serializes
// through one per-engine mutex. The engine spawns no background work; a
// UI that needs responsiveness must run engine calls off its own thread.
package store
