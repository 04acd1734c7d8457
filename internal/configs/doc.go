// Package configs resolves the password store location and user settings.
//
// # Store Location
//
// The store root is resolved once per engine instance:
//
//  1. PASSWORD_STORE_DIR environment variable, used verbatim if set
//  2. <home>/.password-store otherwise
//
// StoreExists never errors; a locator failure is reported as "does not
// exist" so read-only queries stay safe before initialization.
//
// # User Configuration
//
// Optional settings live in <os-config-dir>/passgit/config.toml:
//
//	[sync]
//	remote = "origin"
//
//	[keyring]
//	cache = true
//
//	[generate]
//	length = 25
//
// A missing config file yields defaults; a malformed one is an error.
// Nothing in this directory is ever committed to the store repository.
package configs
