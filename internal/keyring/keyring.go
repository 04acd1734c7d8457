// Package keyring caches the store passphrase in the OS keyring.
//
// Caching is opt-in via the keyring.cache setting. Entries are keyed by
// store root, so multiple stores on one machine keep separate cached
// passphrases. The cache only ever holds the OpenPGP key passphrase;
// record plaintext never touches the keyring.
package keyring

import (
	"github.com/zalando/go-keyring"
)

const serviceName = "passgit"

// SavePassphrase stores the passphrase for a store root in the OS keyring.
func SavePassphrase(storeRoot, passphrase string) error {
	return keyring.Set(serviceName, storeRoot, passphrase)
}

// GetPassphrase retrieves the cached passphrase for a store root.
func GetPassphrase(storeRoot string) (string, error) {
	return keyring.Get(serviceName, storeRoot)
}

// DeletePassphrase removes the cached passphrase for a store root.
func DeletePassphrase(storeRoot string) error {
	return keyring.Delete(serviceName, storeRoot)
}

// HasPassphrase reports whether a passphrase is cached for a store root.
func HasPassphrase(storeRoot string) bool {
	_, err := keyring.Get(serviceName, storeRoot)
	return err == nil
}
