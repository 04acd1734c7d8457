package git

import (
	"context"
	"fmt"

	perrors "github.com/quiltmoor/passgit/internal/errors"
)

// FetchAll fetches default refspecs from every configured remote.
// The first remote that fails aborts the whole operation; there is no
// partial-success reporting. A repository with no remotes fetches nothing
// and succeeds.
func (g *Git) FetchAll(ctx context.Context) error {
	remotes, err := g.Remotes(ctx)
	if err != nil {
		return err
	}

	for _, remote := range remotes {
		if err := g.preflightAuth(ctx, remote); err != nil {
			return err
		}

		if out, err := g.run(ctx, "fetch", remote); err != nil {
			if authErr := classifyNetworkError(out); authErr != nil {
				return authErr
			}
			return fmt.Errorf("fetching %s: %w", remote, err)
		}
	}

	return nil
}

// Push pushes the current branch to the named remote, using the same ref
// name on both sides. Resolution is deliberately linear: the named remote
// either exists or the push fails with ErrNoRemote; there is no fallback
// re-derivation.
func (g *Git) Push(ctx context.Context, remote string) error {
	branch, err := g.HeadBranch(ctx)
	if err != nil {
		return err
	}

	remotes, err := g.Remotes(ctx)
	if err != nil {
		return err
	}
	found := false
	for _, r := range remotes {
		if r == remote {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: %s", perrors.ErrNoRemote, remote)
	}

	if err := g.preflightAuth(ctx, remote); err != nil {
		return err
	}

	refspec := fmt.Sprintf("refs/heads/%s:refs/heads/%s", branch, branch)
	if out, err := g.run(ctx, "push", remote, refspec); err != nil {
		if authErr := classifyNetworkError(out); authErr != nil {
			return authErr
		}
		return fmt.Errorf("pushing %s to %s: %w", branch, remote, err)
	}

	return nil
}
