package git

import (
	"context"
	"fmt"
	"strings"

	perrors "github.com/quiltmoor/passgit/internal/errors"
)

// Pull synchronizes the current branch with its configured upstream.
//
// The operation is a three-way state machine on top of merge analysis:
//
//   - Up-to-date: local already contains the upstream commit; no-op.
//   - Fast-forward: the branch ref moves to the upstream commit and the
//     working tree is checked out to match. No commit is created.
//   - Divergent: a true merge runs; conflicts fail with ErrMergeConflict
//     and are never auto-resolved, otherwise a two-parent merge commit
//     "Merge <upstream-ref> into <branch>" is created.
//
// On conflict the repository is left in git's normal merge-in-progress
// state, so the caller can inspect and resolve it; nothing is discarded.
func (g *Git) Pull(ctx context.Context) error {
	branch, err := g.HeadBranch(ctx)
	if err != nil {
		return err
	}

	upstream, err := g.UpstreamRef(ctx)
	if err != nil {
		return err
	}

	if err := g.FetchAll(ctx); err != nil {
		return err
	}

	local, err := g.RevParse(ctx, "HEAD")
	if err != nil {
		return err
	}
	remote, err := g.RevParse(ctx, upstream)
	if err != nil {
		return err
	}

	if local == remote {
		return nil
	}

	base, err := g.mergeBase(ctx, local, remote)
	if err != nil {
		return err
	}

	switch base {
	case remote:
		// Local is strictly ahead; nothing to pull.
		return nil

	case local:
		// Linear history: move the branch ref and the working tree,
		// creating no commit.
		if out, err := g.run(ctx, "merge", "--ff-only", upstream); err != nil {
			return fmt.Errorf("fast-forwarding %s to %s: %w\n%s", branch, upstream, err, out)
		}
		return nil

	default:
		message := fmt.Sprintf("Merge %s into %s", upstream, branch)
		out, err := g.run(ctx, "merge", "--no-ff", "-m", message, upstream)
		if err != nil {
			if g.hasUnmergedPaths(ctx) || strings.Contains(out, "CONFLICT") {
				return fmt.Errorf("%w: merging %s into %s", perrors.ErrMergeConflict, upstream, branch)
			}
			return fmt.Errorf("merging %s into %s: %w\n%s", upstream, branch, err, out)
		}
		return nil
	}
}

// hasUnmergedPaths reports whether the index holds conflict entries.
func (g *Git) hasUnmergedPaths(ctx context.Context) bool {
	out, err := g.run(ctx, "ls-files", "--unmerged")
	return err == nil && strings.TrimSpace(out) != ""
}
