package gpg

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	perrors "github.com/quiltmoor/passgit/internal/errors"
)

// RecipientsFile is the file at the store root naming the public keys
// every record is encrypted for, one key identifier per line.
const RecipientsFile = ".gpg-id"

// Recipients reads the recipient key identifiers for a store root.
// Blank lines and surrounding whitespace are ignored.
//
// A missing .gpg-id, or one that yields no identifiers, returns
// ErrNoRecipients: a store without recipients must never accept a write.
func Recipients(root string) ([]string, error) {
	path := filepath.Join(root, RecipientsFile)

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, perrors.ErrNoRecipients
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()

	var recipients []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			recipients = append(recipients, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if len(recipients) == 0 {
		return nil, perrors.ErrNoRecipients
	}

	return recipients, nil
}

// WriteRecipients writes the recipient list to the store's .gpg-id file,
// one identifier per line. Used by store initialization.
func WriteRecipients(root string, recipients []string) error {
	if len(recipients) == 0 {
		return perrors.ErrNoRecipients
	}

	var b strings.Builder
	for _, r := range recipients {
		b.WriteString(strings.TrimSpace(r))
		b.WriteString("\n")
	}

	path := filepath.Join(root, RecipientsFile)
	if err := os.WriteFile(path, []byte(b.String()), 0600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}
