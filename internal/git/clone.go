package git

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	perrors "github.com/quiltmoor/passgit/internal/errors"
)

// Clone clones url into dest and returns a handle to the fresh repository.
// This is the bootstrap path for first-time setup on a new machine.
//
// dest must be absent or an empty directory (ErrNotEmpty otherwise). After
// cloning, a local branch tracking the remote's default branch is
// guaranteed to exist, be checked out, and have a configured upstream.
func Clone(ctx context.Context, url, dest string) (*Git, error) {
	binary, err := exec.LookPath("git")
	if err != nil {
		return nil, perrors.ErrGitNotAvailable
	}

	if err := ensureEmptyDir(dest); err != nil {
		return nil, err
	}

	if err := preflightURL(url); err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, binary, "clone", url, dest)
	cmd.Env = append(os.Environ(),
		"GIT_TERMINAL_PROMPT=0",
		"GIT_SSH_COMMAND=ssh -o BatchMode=yes",
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		if authErr := classifyNetworkError(string(out)); authErr != nil {
			return nil, authErr
		}
		return nil, fmt.Errorf("git clone failed: %w\n%s", err, string(out))
	}

	g := &Git{repoRoot: dest, binary: binary}

	if err := g.ensureDefaultBranch(ctx); err != nil {
		return nil, err
	}
	if err := g.ensureUpstream(ctx); err != nil {
		return nil, err
	}

	return g, nil
}

// ensureEmptyDir creates dest if absent and fails with ErrNotEmpty if it
// already contains anything.
func ensureEmptyDir(dest string) error {
	info, err := os.Stat(dest)
	if os.IsNotExist(err) {
		return os.MkdirAll(dest, 0700)
	}
	if err != nil {
		return fmt.Errorf("checking %s: %w", dest, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", perrors.ErrNotEmpty, dest)
	}

	entries, err := os.ReadDir(dest)
	if err != nil {
		return fmt.Errorf("reading %s: %w", dest, err)
	}
	if len(entries) > 0 {
		return fmt.Errorf("%w: %s", perrors.ErrNotEmpty, dest)
	}

	return nil
}

// defaultBranch returns the remote default branch name, the symbolic
// target of origin/HEAD.
func (g *Git) defaultBranch(ctx context.Context) (string, error) {
	out, err := g.run(ctx, "symbolic-ref", "refs/remotes/origin/HEAD")
	if err != nil {
		return "", fmt.Errorf("resolving origin/HEAD: %w", err)
	}
	return strings.TrimPrefix(strings.TrimSpace(out), "refs/remotes/origin/"), nil
}

// ensureDefaultBranch makes sure a local branch for the remote's default
// branch exists and is checked out. Clones of repositories whose HEAD
// points at an unborn or unusual ref can otherwise land detached.
func (g *Git) ensureDefaultBranch(ctx context.Context) error {
	name, err := g.defaultBranch(ctx)
	if err != nil {
		return err
	}

	branch, headErr := g.HeadBranch(ctx)
	if headErr == nil && branch == name && g.refExists(ctx, "refs/heads/"+name) {
		return nil
	}

	if out, err := g.run(ctx, "checkout", "-B", name, "origin/"+name); err != nil {
		return fmt.Errorf("checking out %s: %w\n%s", name, err, out)
	}

	return nil
}

// ensureUpstream makes sure the checked-out branch has a configured
// upstream: an existing configuration wins, then the matching
// origin/<branch>, then the remote default branch.
func (g *Git) ensureUpstream(ctx context.Context) error {
	branch, err := g.HeadBranch(ctx)
	if err != nil {
		return err
	}

	if _, err := g.UpstreamRef(ctx); err == nil {
		return nil
	}

	if g.refExists(ctx, "refs/remotes/origin/"+branch) {
		if out, err := g.run(ctx, "branch", "--set-upstream-to", "origin/"+branch, branch); err != nil {
			return fmt.Errorf("setting upstream of %s: %w\n%s", branch, err, out)
		}
		return nil
	}

	name, err := g.defaultBranch(ctx)
	if err != nil {
		return err
	}
	if out, err := g.run(ctx, "checkout", "-B", name, "origin/"+name); err != nil {
		return fmt.Errorf("checking out %s: %w\n%s", name, err, out)
	}
	if out, err := g.run(ctx, "branch", "--set-upstream-to", "origin/"+name, name); err != nil {
		return fmt.Errorf("setting upstream of %s: %w\n%s", name, err, out)
	}

	return nil
}
