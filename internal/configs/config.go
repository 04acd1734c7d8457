package configs

import (
	"fmt"
	"os"
	"path/filepath"
)

// UserConfig holds optional user-level settings from config.toml.
type UserConfig struct {
	Sync     SyncConfig     `toml:"sync"`
	Keyring  KeyringConfig  `toml:"keyring"`
	Generate GenerateConfig `toml:"generate"`
}

// SyncConfig configures synchronization behavior.
type SyncConfig struct {
	// Remote is the remote name used for push. Defaults to origin.
	Remote string `toml:"remote"`
}

// KeyringConfig configures OS keyring passphrase caching.
type KeyringConfig struct {
	// Cache enables storing the store passphrase in the OS keyring.
	Cache bool `toml:"cache"`
}

// GenerateConfig configures password generation defaults.
type GenerateConfig struct {
	// Length is the default generated password length.
	Length int `toml:"length"`
}

// defaults for settings left unset in config.toml.
const (
	DefaultRemote         = "origin"
	DefaultGenerateLength = 25
)

// LoadUserConfig loads the user configuration from config.toml.
// A missing file is not an error; defaults are returned.
func LoadUserConfig() (*UserConfig, error) {
	config := &UserConfig{
		Sync:     SyncConfig{Remote: DefaultRemote},
		Generate: GenerateConfig{Length: DefaultGenerateLength},
	}

	dir, err := ConfigDir()
	if err != nil {
		return nil, err
	}
	configPath := filepath.Join(dir, "config.toml")

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadTOML(configPath, config); err != nil {
		return nil, fmt.Errorf("failed to load user config: %w", err)
	}

	if config.Sync.Remote == "" {
		config.Sync.Remote = DefaultRemote
	}
	if config.Generate.Length <= 0 {
		config.Generate.Length = DefaultGenerateLength
	}

	return config, nil
}

// SaveUserConfig saves the user configuration to config.toml.
func SaveUserConfig(config *UserConfig) error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := SaveTOML(filepath.Join(dir, "config.toml"), config); err != nil {
		return fmt.Errorf("failed to save user config: %w", err)
	}

	return nil
}
