package git

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	perrors "github.com/quiltmoor/passgit/internal/errors"
)

// Git wraps the git binary for one repository. Exactly one handle exists
// per store engine; all repository mutation goes through it.
type Git struct {
	// repoRoot is the repository root directory path.
	repoRoot string

	// binary is the resolved path of the git executable.
	binary string
}

// Open discovers an existing repository at root. The repository must
// already exist; Open never creates one.
//
// Returns ErrGitNotAvailable if the git binary is missing and
// ErrStoreNotInitialized if root is not inside a git repository.
func Open(root string) (*Git, error) {
	binary, err := exec.LookPath("git")
	if err != nil {
		return nil, perrors.ErrGitNotAvailable
	}

	g := &Git{repoRoot: root, binary: binary}

	top, err := g.run(context.Background(), "rev-parse", "--show-toplevel")
	if err != nil {
		return nil, fmt.Errorf("%w: %s is not a git repository", perrors.ErrStoreNotInitialized, root)
	}
	g.repoRoot = strings.TrimSpace(top)

	return g, nil
}

// InitRepo creates a fresh repository at root and returns a handle to it.
// Used by first-time store initialization only.
func InitRepo(ctx context.Context, root string) (*Git, error) {
	binary, err := exec.LookPath("git")
	if err != nil {
		return nil, perrors.ErrGitNotAvailable
	}

	g := &Git{repoRoot: root, binary: binary}
	if _, err := g.run(ctx, "init"); err != nil {
		return nil, fmt.Errorf("git init failed: %w", err)
	}

	return g, nil
}

// Root returns the repository root directory path.
func (g *Git) Root() string {
	return g.repoRoot
}

// run executes a git command in the repository and returns combined output.
// Terminal credential prompts are disabled so unauthenticated network
// operations fail instead of hanging; SSH runs in batch mode for the same
// reason.
func (g *Git) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, g.binary, args...)
	cmd.Dir = g.repoRoot
	cmd.Env = append(os.Environ(),
		"GIT_TERMINAL_PROMPT=0",
		"GIT_SSH_COMMAND=ssh -o BatchMode=yes",
	)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return string(output), fmt.Errorf("git %s failed: %w\n%s",
			strings.Join(args, " "), err, string(output))
	}

	return string(output), nil
}

// HeadBranch returns the branch HEAD points at.
// Returns ErrDetachedHead when HEAD is not a symbolic ref.
func (g *Git) HeadBranch(ctx context.Context) (string, error) {
	out, err := g.run(ctx, "symbolic-ref", "--quiet", "--short", "HEAD")
	if err != nil {
		return "", perrors.ErrDetachedHead
	}
	return strings.TrimSpace(out), nil
}

// UpstreamRef returns the short upstream ref of the current branch,
// e.g. "origin/main". Returns ErrNoUpstream if none is configured.
func (g *Git) UpstreamRef(ctx context.Context) (string, error) {
	out, err := g.run(ctx, "rev-parse", "--abbrev-ref", "--symbolic-full-name", "@{upstream}")
	if err != nil {
		return "", perrors.ErrNoUpstream
	}
	return strings.TrimSpace(out), nil
}

// RevParse resolves a ref to a commit hash.
func (g *Git) RevParse(ctx context.Context, ref string) (string, error) {
	out, err := g.run(ctx, "rev-parse", "--verify", ref+"^{commit}")
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", ref, err)
	}
	return strings.TrimSpace(out), nil
}

// mergeBase returns the best common ancestor of two commits.
func (g *Git) mergeBase(ctx context.Context, a, b string) (string, error) {
	out, err := g.run(ctx, "merge-base", a, b)
	if err != nil {
		return "", fmt.Errorf("merge-base %s %s: %w", a, b, err)
	}
	return strings.TrimSpace(out), nil
}

// refExists reports whether the fully qualified ref exists.
func (g *Git) refExists(ctx context.Context, ref string) bool {
	_, err := g.run(ctx, "show-ref", "--verify", "--quiet", ref)
	return err == nil
}

// Remotes returns the configured remote names.
func (g *Git) Remotes(ctx context.Context) ([]string, error) {
	out, err := g.run(ctx, "remote")
	if err != nil {
		return nil, fmt.Errorf("listing remotes: %w", err)
	}

	var remotes []string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line != "" {
			remotes = append(remotes, line)
		}
	}
	return remotes, nil
}
