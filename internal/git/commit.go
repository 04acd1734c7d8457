package git

import (
	"context"
	"fmt"
	"strings"
)

// CommitAll stages every working-tree change, including deletions, and
// commits with the repository-configured identity as both author and
// committer. Works on an unborn HEAD (first commit of a fresh store).
// A clean tree is a no-op, not an error.
func (g *Git) CommitAll(ctx context.Context, message string) error {
	if message == "" {
		return fmt.Errorf("commit message is required")
	}

	if out, err := g.run(ctx, "add", "--all"); err != nil {
		return fmt.Errorf("staging changes: %w\n%s", err, out)
	}

	staged, err := g.run(ctx, "status", "--porcelain")
	if err != nil {
		return fmt.Errorf("checking status: %w", err)
	}
	if strings.TrimSpace(staged) == "" {
		return nil
	}

	if out, err := g.run(ctx, "commit", "-m", message); err != nil {
		return fmt.Errorf("committing: %w\n%s", err, out)
	}

	return nil
}
