package gpg

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"

	perrors "github.com/quiltmoor/passgit/internal/errors"
)

// CLI wraps the gpg binary. All encryption and decryption is delegated to
// it; passgit implements no cryptographic primitives of its own.
type CLI struct {
	// binary is the resolved path of the gpg executable.
	binary string
}

// New locates the gpg binary and returns a gateway bound to it.
// Returns ErrGPGNotAvailable if no binary is found in PATH.
func New() (*CLI, error) {
	for _, name := range []string{"gpg2", "gpg"} {
		if path, err := exec.LookPath(name); err == nil {
			return &CLI{binary: path}, nil
		}
	}
	return nil, perrors.ErrGPGNotAvailable
}

// Mode selects how a decryption acquires the passphrase.
type Mode struct {
	passphrase *string
}

// Supplied returns a mode that feeds the caller-supplied passphrase to gpg
// over a loopback pipe. It never prompts interactively.
func Supplied(passphrase string) Mode {
	return Mode{passphrase: &passphrase}
}

// Interactive returns a mode that leaves passphrase acquisition to the
// gpg agent's normal pinentry path.
func Interactive() Mode {
	return Mode{}
}

// Encrypt encrypts plaintext for the given recipients and returns armored
// ciphertext. Recipients are resolved against the local keyring only; no
// network key lookup is performed.
//
// Returns ErrNoRecipients for an empty recipient list and ErrKeyResolution
// when any recipient cannot be resolved to a public key.
func (g *CLI) Encrypt(plaintext []byte, recipients []string) ([]byte, error) {
	if len(recipients) == 0 {
		return nil, perrors.ErrNoRecipients
	}

	args := []string{
		"--batch", "--yes", "--quiet",
		"--encrypt", "--armor",
		"--no-auto-key-locate",
		"--trust-model", "always",
	}
	for _, r := range recipients {
		args = append(args, "--recipient", r)
	}

	cmd := exec.Command(g.binary, args...)
	cmd.Stdin = bytes.NewReader(plaintext)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := stderr.String()
		if isKeyResolutionFailure(msg) {
			return nil, fmt.Errorf("%w: %s", perrors.ErrKeyResolution, strings.TrimSpace(msg))
		}
		return nil, fmt.Errorf("gpg encrypt failed: %w\n%s", err, msg)
	}

	return stdout.Bytes(), nil
}

// Decrypt decrypts ciphertext using the given mode.
//
// In Supplied mode the passphrase is written to gpg over an extra file
// descriptor (loopback pinentry); it never appears in argv or the
// environment. In Interactive mode the agent prompts as it normally would.
//
// Bad passphrase, corrupt ciphertext, and missing secret key all surface
// as ErrDecryptFailed.
func (g *CLI) Decrypt(ciphertext []byte, mode Mode) ([]byte, error) {
	args := []string{"--quiet", "--decrypt"}

	var extraFiles []*os.File
	if mode.passphrase != nil {
		r, w, err := os.Pipe()
		if err != nil {
			return nil, fmt.Errorf("creating passphrase pipe: %w", err)
		}
		defer r.Close()

		if _, err := w.WriteString(*mode.passphrase + "\n"); err != nil {
			w.Close()
			return nil, fmt.Errorf("writing passphrase: %w", err)
		}
		w.Close()

		// ExtraFiles[0] becomes fd 3 in the child.
		extraFiles = []*os.File{r}
		args = append([]string{"--batch", "--pinentry-mode", "loopback", "--passphrase-fd", "3"}, args...)
	}

	cmd := exec.Command(g.binary, args...)
	cmd.Stdin = bytes.NewReader(ciphertext)
	cmd.ExtraFiles = extraFiles

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%w: %s", perrors.ErrDecryptFailed, strings.TrimSpace(stderr.String()))
	}

	return stdout.Bytes(), nil
}

// isKeyResolutionFailure reports whether gpg stderr indicates an
// unresolvable recipient. This classification happens only here; callers
// see the ErrKeyResolution sentinel.
func isKeyResolutionFailure(stderr string) bool {
	return strings.Contains(stderr, "No public key") ||
		strings.Contains(stderr, "public key not found") ||
		strings.Contains(stderr, "skipped")
}
