package configs

import (
	"fmt"
	"os"
	"path/filepath"

	perrors "github.com/quiltmoor/passgit/internal/errors"
)

// EnvStoreDir is the environment variable that overrides the store root.
// The value is used verbatim, matching the behavior of pass(1).
const EnvStoreDir = "PASSWORD_STORE_DIR"

// defaultStoreDirName is the store directory created under the user's home
// when no override is set.
const defaultStoreDirName = ".password-store"

// StoreRoot resolves the root directory of the password store.
//
// Resolution order: the PASSWORD_STORE_DIR environment variable if set,
// else <home>/.password-store. Returns ErrNoStoreRoot when neither the
// override nor a home directory is resolvable.
func StoreRoot() (string, error) {
	if dir := os.Getenv(EnvStoreDir); dir != "" {
		return dir, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", perrors.ErrNoStoreRoot, err)
	}

	return filepath.Join(homeDir, defaultStoreDirName), nil
}

// StoreExists reports whether the resolved store root exists on disk.
// Locator failure is treated as "does not exist"; this never errors.
func StoreExists() bool {
	root, err := StoreRoot()
	if err != nil {
		return false
	}

	info, err := os.Stat(root)
	return err == nil && info.IsDir()
}

// ConfigDir returns the passgit user configuration directory,
// <os-config-dir>/passgit. The directory is not created.
func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config directory: %w", err)
	}
	return filepath.Join(base, "passgit"), nil
}
