package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quiltmoor/passgit/internal/configs"
	perrors "github.com/quiltmoor/passgit/internal/errors"
	"github.com/quiltmoor/passgit/internal/keyring"
	"github.com/quiltmoor/passgit/internal/store"
	"github.com/quiltmoor/passgit/internal/utils"
)

var showPasswordOnly bool

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Decrypt and print an entry",
	Long: `Decrypt an entry and print it to stdout: the password on the first
line, any metadata lines after it.

By default the gpg agent handles passphrase prompting. With keyring
caching enabled (keyring.cache in config.toml) the passphrase is read
once on the terminal and cached in the OS keyring for later calls.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		s := store.New(Logger)

		entry, err := decryptEntry(s, name)
		if err != nil {
			fmt.Println(describeError(err))
			return nil
		}

		fmt.Print(renderEntry(entry, showPasswordOnly))
		return nil
	},
}

// renderEntry formats a decrypted entry for stdout: just the password
// line, or the full record text.
func renderEntry(entry store.Entry, passwordOnly bool) string {
	if passwordOnly {
		return entry.Password + "\n"
	}
	return string(entry.Encode())
}

func init() {
	showCmd.Flags().BoolVarP(&showPasswordOnly, "password-only", "p", false, "print only the password line")
}

// decryptEntry reads one entry, acquiring the passphrase per the keyring
// cache setting. A cached passphrase that no longer decrypts is dropped
// and replaced by a fresh prompt.
func decryptEntry(s *store.Store, name string) (store.Entry, error) {
	config, err := configs.LoadUserConfig()
	if err != nil || !config.Keyring.Cache {
		return s.Ask(name)
	}

	root := s.Root()
	if passphrase, err := keyring.GetPassphrase(root); err == nil {
		entry, err := s.Get(name, passphrase)
		if err == nil {
			return entry, nil
		}
		if !errors.Is(err, perrors.ErrDecryptFailed) {
			return store.Entry{}, err
		}
		Logger.Warnf("cached passphrase no longer decrypts, discarding it")
		_ = keyring.DeletePassphrase(root)
	}

	passphrase, err := utils.ReadPassphrase("Passphrase: ")
	if err != nil {
		return store.Entry{}, err
	}

	entry, err := s.Get(name, passphrase)
	if err != nil {
		return store.Entry{}, err
	}

	if err := keyring.SavePassphrase(root, passphrase); err != nil {
		Logger.Warnf("could not cache passphrase in the OS keyring: %v", err)
	}
	return entry, nil
}
