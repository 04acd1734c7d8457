package git

import (
	"errors"
	"testing"

	perrors "github.com/quiltmoor/passgit/internal/errors"
)

func TestIsSSHURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"ssh://git@example.com/store.git", true},
		{"git@example.com:store.git", true},
		{"deploy@host.internal:team/store.git", true},
		{"https://example.com/store.git", false},
		{"http://example.com/store.git", false},
		{"git://example.com/store.git", false},
		{"file:///srv/store.git", false},
		{"/srv/store.git", false},
		{"../relative/store", false},
	}

	for _, tt := range tests {
		if got := isSSHURL(tt.url); got != tt.want {
			t.Errorf("isSSHURL(%q) = %v, want %v", tt.url, got, tt.want)
		}
	}
}

func TestSSHUsername(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"ssh://deploy@example.com/store.git", "deploy"},
		{"git@example.com:store.git", "git"},
		{"alice@example.com:store.git", "alice"},
		{"ssh://example.com/store.git", "git"},
	}

	for _, tt := range tests {
		if got := sshUsername(tt.url); got != tt.want {
			t.Errorf("sshUsername(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestPreflightURLWithoutAgent(t *testing.T) {
	t.Setenv("SSH_AUTH_SOCK", "")

	err := preflightURL("git@example.com:store.git")
	if !errors.Is(err, perrors.ErrAuthUnsupported) {
		t.Errorf("preflightURL() error = %v, want ErrAuthUnsupported", err)
	}
}

func TestPreflightURLNonSSH(t *testing.T) {
	t.Setenv("SSH_AUTH_SOCK", "")

	if err := preflightURL("https://example.com/store.git"); err != nil {
		t.Errorf("preflightURL() on HTTPS url = %v, want nil", err)
	}
}

func TestClassifyNetworkError(t *testing.T) {
	if err := classifyNetworkError("git@example.com: Permission denied (publickey)."); !errors.Is(err, perrors.ErrAuthUnsupported) {
		t.Errorf("publickey rejection not classified: %v", err)
	}
	if err := classifyNetworkError("fatal: could not read Username for 'https://example.com'"); !errors.Is(err, perrors.ErrAuthUnsupported) {
		t.Errorf("username prompt not classified: %v", err)
	}
	if err := classifyNetworkError("fatal: repository not found"); err != nil {
		t.Errorf("unrelated failure classified as auth error: %v", err)
	}
}
