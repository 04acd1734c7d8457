package cmd

import (
	"fmt"
	"strings"
	"testing"

	perrors "github.com/quiltmoor/passgit/internal/errors"
)

func TestFilterNames(t *testing.T) {
	names := []string{
		"mail/gmail",
		"mail/work/exchange",
		"sites/github.com",
		"standalone",
	}

	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{
			name:    "folder prefix",
			pattern: "mail",
			want:    []string{"mail/gmail", "mail/work/exchange"},
		},
		{
			name:    "folder prefix with trailing slash",
			pattern: "mail/",
			want:    []string{"mail/gmail", "mail/work/exchange"},
		},
		{
			name:    "exact name",
			pattern: "standalone",
			want:    []string{"standalone"},
		},
		{
			name:    "glob within component",
			pattern: "sites/*.com",
			want:    []string{"sites/github.com"},
		},
		{
			name:    "doublestar across components",
			pattern: "**/gmail",
			want:    []string{"mail/gmail"},
		},
		{
			name:    "no matches",
			pattern: "nothing-here",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filterNames(names, tt.pattern)
			if len(got) != len(tt.want) {
				t.Fatalf("filterNames(%q) = %v, want %v", tt.pattern, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("filterNames(%q)[%d] = %q, want %q", tt.pattern, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDescribeErrorMentionsFix(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		err  error
		want string
	}{
		{perrors.ErrStoreNotInitialized, "passgit init"},
		{perrors.ErrNoRecipients, ".gpg-id"},
		{perrors.ErrAuthUnsupported, "ssh-agent"},
		{perrors.ErrMergeConflict, "mid-merge"},
		{perrors.ErrNoUpstream, "--set-upstream-to"},
	}

	for _, tt := range tests {
		got := describeError(fmt.Errorf("context: %w", tt.err))
		if !strings.Contains(got, tt.want) {
			t.Errorf("describeError(%v) = %q, want mention of %q", tt.err, got, tt.want)
		}
	}
}

func TestSyncOutcome(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{perrors.ErrMergeConflict, "conflict"},
		{perrors.ErrAuthUnsupported, "auth"},
		{perrors.ErrNoUpstream, "misconfigured"},
		{perrors.ErrDetachedHead, "misconfigured"},
		{fmt.Errorf("network down"), "error"},
	}

	for _, tt := range tests {
		if got := syncOutcome(tt.err); got != tt.want {
			t.Errorf("syncOutcome(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
