package git

import (
	"context"
	"fmt"
	"net"
	"os"
	"strings"

	"golang.org/x/crypto/ssh/agent"

	perrors "github.com/quiltmoor/passgit/internal/errors"
)

// The only supported remote credential method is public-key authentication
// through the local SSH agent. HTTPS remotes work unauthenticated; anything
// requiring a password fails with ErrAuthUnsupported because terminal
// prompts are disabled on every git invocation.

// preflightAuth verifies that a network operation against the remote has a
// usable credential method before any transport is opened. For SSH remotes
// the local agent must be reachable and hold at least one key.
func (g *Git) preflightAuth(ctx context.Context, remote string) error {
	out, err := g.run(ctx, "remote", "get-url", remote)
	if err != nil {
		// No URL to check; let the operation itself report the failure.
		return nil
	}
	return preflightURL(strings.TrimSpace(out))
}

// preflightURL checks agent availability for SSH-style URLs.
func preflightURL(url string) error {
	if !isSSHURL(url) {
		return nil
	}

	sock := os.Getenv("SSH_AUTH_SOCK")
	if sock == "" {
		return fmt.Errorf("%w: SSH remote %s needs an SSH agent (SSH_AUTH_SOCK is unset)",
			perrors.ErrAuthUnsupported, url)
	}

	conn, err := net.Dial("unix", sock)
	if err != nil {
		return fmt.Errorf("%w: cannot reach SSH agent: %v", perrors.ErrAuthUnsupported, err)
	}
	defer conn.Close()

	keys, err := agent.NewClient(conn).List()
	if err != nil {
		return fmt.Errorf("%w: listing SSH agent keys: %v", perrors.ErrAuthUnsupported, err)
	}
	if len(keys) == 0 {
		return fmt.Errorf("%w: SSH agent holds no keys (user %s)",
			perrors.ErrAuthUnsupported, sshUsername(url))
	}

	return nil
}

// isSSHURL reports whether a git remote URL uses the SSH transport, in
// either ssh:// or scp-like user@host:path form.
func isSSHURL(url string) bool {
	if strings.HasPrefix(url, "ssh://") {
		return true
	}
	for _, scheme := range []string{"http://", "https://", "git://", "file://"} {
		if strings.HasPrefix(url, scheme) {
			return false
		}
	}
	// scp-like syntax: user@host:path, with the colon before any slash.
	at := strings.Index(url, "@")
	colon := strings.Index(url, ":")
	slash := strings.Index(url, "/")
	return at >= 0 && colon > at && (slash == -1 || colon < slash)
}

// sshUsername extracts the username from an SSH remote URL, defaulting to
// "git" when the URL embeds none.
func sshUsername(url string) string {
	rest := strings.TrimPrefix(url, "ssh://")
	if at := strings.Index(rest, "@"); at > 0 {
		return rest[:at]
	}
	return "git"
}

// classifyNetworkError maps credential failures in git output onto
// ErrAuthUnsupported. Returns nil when the output shows no auth failure.
func classifyNetworkError(output string) error {
	for _, marker := range []string{
		"Permission denied (publickey",
		"Authentication failed",
		"could not read Username",
		"could not read Password",
		"terminal prompts disabled",
	} {
		if strings.Contains(output, marker) {
			return fmt.Errorf("%w: %s", perrors.ErrAuthUnsupported, strings.TrimSpace(output))
		}
	}
	return nil
}
