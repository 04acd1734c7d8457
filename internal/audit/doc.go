// Package audit records an append-only trail of store mutations.
//
// Each mutation (add, remove, rename, sync, init, clone) appends one JSON
// line to <os-config-dir>/passgit/audit.jsonl. The log stays outside the
// store repository: it is per-machine history, and entry names are
// sensitive metadata that must not be pushed to remotes twice over.
//
// Audit logging is best-effort by design. A failure to write the log never
// fails the operation being recorded.
package audit
