package git

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	perrors "github.com/quiltmoor/passgit/internal/errors"
)

// requireGit skips the test when the git binary is unavailable.
func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}
}

// runGit runs a git command in dir, failing the test on error.
func runGit(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %s failed: %v\n%s", strings.Join(args, " "), err, out)
	}
	return strings.TrimSpace(string(out))
}

// setupSourceRepo creates a repository with one initial commit.
func setupSourceRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	runGit(t, dir, "init")
	runGit(t, dir, "config", "user.name", "Test User")
	runGit(t, dir, "config", "user.email", "test@example.com")
	runGit(t, dir, "config", "commit.gpgsign", "false")

	writeFile(t, dir, "mail/work.gpg", "ciphertext-v1\n")
	runGit(t, dir, "add", "--all")
	runGit(t, dir, "commit", "-m", "Add mail/work")

	return dir
}

// cloneForTest clones source and configures a commit identity in the clone.
func cloneForTest(t *testing.T, source string) *Git {
	t.Helper()
	dest := filepath.Join(t.TempDir(), "store")

	g, err := Clone(context.Background(), source, dest)
	if err != nil {
		t.Fatalf("Clone() failed: %v", err)
	}
	runGit(t, g.Root(), "config", "user.name", "Clone User")
	runGit(t, g.Root(), "config", "user.email", "clone@example.com")
	runGit(t, g.Root(), "config", "commit.gpgsign", "false")

	return g
}

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
}

func TestOpen(t *testing.T) {
	requireGit(t)
	dir := setupSourceRepo(t)

	g, err := Open(dir)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if g.Root() != dir {
		t.Errorf("Root() = %q, want %q", g.Root(), dir)
	}
}

func TestOpenNotARepository(t *testing.T) {
	requireGit(t)

	_, err := Open(t.TempDir())
	if !errors.Is(err, perrors.ErrStoreNotInitialized) {
		t.Errorf("Open() error = %v, want ErrStoreNotInitialized", err)
	}
}

func TestCommitAll(t *testing.T) {
	requireGit(t)
	dir := setupSourceRepo(t)
	g, err := Open(dir)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	ctx := context.Background()

	writeFile(t, dir, "pin.gpg", "ciphertext\n")
	if err := g.CommitAll(ctx, "Add pin"); err != nil {
		t.Fatalf("CommitAll() failed: %v", err)
	}

	if got := runGit(t, dir, "log", "-1", "--format=%s"); got != "Add pin" {
		t.Errorf("last commit subject = %q, want %q", got, "Add pin")
	}
	if got := runGit(t, dir, "status", "--porcelain"); got != "" {
		t.Errorf("working tree dirty after CommitAll: %q", got)
	}
}

func TestCommitAllDeletion(t *testing.T) {
	requireGit(t)
	dir := setupSourceRepo(t)
	g, err := Open(dir)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	if err := os.Remove(filepath.Join(dir, "mail", "work.gpg")); err != nil {
		t.Fatal(err)
	}
	if err := g.CommitAll(context.Background(), "Remove mail/work"); err != nil {
		t.Fatalf("CommitAll() failed: %v", err)
	}

	files := runGit(t, dir, "ls-tree", "-r", "--name-only", "HEAD")
	if strings.Contains(files, "mail/work.gpg") {
		t.Error("deleted file still present in HEAD tree")
	}
}

func TestCommitAllCleanTreeIsNoop(t *testing.T) {
	requireGit(t)
	dir := setupSourceRepo(t)
	g, err := Open(dir)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	before := runGit(t, dir, "rev-parse", "HEAD")
	if err := g.CommitAll(context.Background(), "Nothing"); err != nil {
		t.Fatalf("CommitAll() on clean tree failed: %v", err)
	}
	if after := runGit(t, dir, "rev-parse", "HEAD"); after != before {
		t.Error("CommitAll() on clean tree created a commit")
	}
}

func TestCommitAllUnbornHead(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()
	runGit(t, dir, "init")
	runGit(t, dir, "config", "user.name", "Test User")
	runGit(t, dir, "config", "user.email", "test@example.com")
	runGit(t, dir, "config", "commit.gpgsign", "false")

	g, err := Open(dir)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	writeFile(t, dir, ".gpg-id", "alice@example.com\n")
	if err := g.CommitAll(context.Background(), "Initialize store"); err != nil {
		t.Fatalf("CommitAll() on unborn HEAD failed: %v", err)
	}

	if got := runGit(t, dir, "log", "--format=%s"); got != "Initialize store" {
		t.Errorf("log = %q, want single initial commit", got)
	}
}

func TestHeadBranchDetached(t *testing.T) {
	requireGit(t)
	dir := setupSourceRepo(t)
	runGit(t, dir, "checkout", "--detach")

	g, err := Open(dir)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	_, err = g.HeadBranch(context.Background())
	if !errors.Is(err, perrors.ErrDetachedHead) {
		t.Errorf("HeadBranch() error = %v, want ErrDetachedHead", err)
	}
}

func TestPullNoUpstream(t *testing.T) {
	requireGit(t)
	dir := setupSourceRepo(t)
	g, err := Open(dir)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	err = g.Pull(context.Background())
	if !errors.Is(err, perrors.ErrNoUpstream) {
		t.Errorf("Pull() error = %v, want ErrNoUpstream", err)
	}
}

func TestCloneBootstrapsUpstream(t *testing.T) {
	requireGit(t)
	source := setupSourceRepo(t)
	g := cloneForTest(t, source)
	ctx := context.Background()

	branch, err := g.HeadBranch(ctx)
	if err != nil {
		t.Fatalf("HeadBranch() failed: %v", err)
	}

	upstream, err := g.UpstreamRef(ctx)
	if err != nil {
		t.Fatalf("UpstreamRef() failed: %v", err)
	}
	if upstream != "origin/"+branch {
		t.Errorf("upstream = %q, want %q", upstream, "origin/"+branch)
	}
}

func TestCloneDestinationNotEmpty(t *testing.T) {
	requireGit(t)
	source := setupSourceRepo(t)

	dest := t.TempDir()
	writeFile(t, dest, "existing.txt", "data")

	_, err := Clone(context.Background(), source, dest)
	if !errors.Is(err, perrors.ErrNotEmpty) {
		t.Errorf("Clone() error = %v, want ErrNotEmpty", err)
	}
}

func TestPullUpToDate(t *testing.T) {
	requireGit(t)
	source := setupSourceRepo(t)
	g := cloneForTest(t, source)
	ctx := context.Background()

	before := runGit(t, g.Root(), "rev-parse", "HEAD")
	if err := g.Pull(ctx); err != nil {
		t.Fatalf("Pull() failed: %v", err)
	}
	if after := runGit(t, g.Root(), "rev-parse", "HEAD"); after != before {
		t.Error("Pull() moved HEAD with nothing to pull")
	}
}

func TestPullFastForward(t *testing.T) {
	requireGit(t)
	source := setupSourceRepo(t)
	g := cloneForTest(t, source)
	ctx := context.Background()

	// Advance the upstream while the clone stays put.
	writeFile(t, source, "pin.gpg", "ciphertext\n")
	runGit(t, source, "add", "--all")
	runGit(t, source, "commit", "-m", "Add pin")
	want := runGit(t, source, "rev-parse", "HEAD")

	if err := g.Pull(ctx); err != nil {
		t.Fatalf("Pull() failed: %v", err)
	}

	if got := runGit(t, g.Root(), "rev-parse", "HEAD"); got != want {
		t.Errorf("HEAD = %s, want upstream commit %s", got, want)
	}
	// A fast-forward creates no merge commit.
	if parents := runGit(t, g.Root(), "rev-list", "--parents", "-1", "HEAD"); len(strings.Fields(parents)) != 2 {
		t.Errorf("HEAD has %d parents, want 1 (no merge commit)", len(strings.Fields(parents))-1)
	}
	// The working tree matches the new HEAD.
	if _, err := os.Stat(filepath.Join(g.Root(), "pin.gpg")); err != nil {
		t.Errorf("working tree missing fast-forwarded file: %v", err)
	}
}

func TestPullDivergentMerge(t *testing.T) {
	requireGit(t)
	source := setupSourceRepo(t)
	g := cloneForTest(t, source)
	ctx := context.Background()

	// Non-overlapping changes on both sides.
	writeFile(t, source, "upstream.gpg", "ciphertext\n")
	runGit(t, source, "add", "--all")
	runGit(t, source, "commit", "-m", "Add upstream")

	writeFile(t, g.Root(), "local.gpg", "ciphertext\n")
	runGit(t, g.Root(), "add", "--all")
	runGit(t, g.Root(), "commit", "-m", "Add local")

	if err := g.Pull(ctx); err != nil {
		t.Fatalf("Pull() failed: %v", err)
	}

	parents := strings.Fields(runGit(t, g.Root(), "rev-list", "--parents", "-1", "HEAD"))
	if len(parents) != 3 {
		t.Fatalf("HEAD has %d parents, want 2 (merge commit)", len(parents)-1)
	}

	branch := runGit(t, g.Root(), "symbolic-ref", "--short", "HEAD")
	subject := runGit(t, g.Root(), "log", "-1", "--format=%s")
	want := "Merge origin/" + branch + " into " + branch
	if subject != want {
		t.Errorf("merge commit subject = %q, want %q", subject, want)
	}

	for _, f := range []string{"upstream.gpg", "local.gpg"} {
		if _, err := os.Stat(filepath.Join(g.Root(), f)); err != nil {
			t.Errorf("working tree missing %s after merge: %v", f, err)
		}
	}
}

func TestPullMergeConflict(t *testing.T) {
	requireGit(t)
	source := setupSourceRepo(t)
	g := cloneForTest(t, source)
	ctx := context.Background()

	// Both sides rewrite the same file differently.
	writeFile(t, source, "mail/work.gpg", "ciphertext-upstream\n")
	runGit(t, source, "add", "--all")
	runGit(t, source, "commit", "-m", "Update mail/work")

	writeFile(t, g.Root(), "mail/work.gpg", "ciphertext-local\n")
	runGit(t, g.Root(), "add", "--all")
	runGit(t, g.Root(), "commit", "-m", "Update mail/work")

	err := g.Pull(ctx)
	if !errors.Is(err, perrors.ErrMergeConflict) {
		t.Fatalf("Pull() error = %v, want ErrMergeConflict", err)
	}

	// The conflict must be detectable and nothing silently discarded.
	if !g.hasUnmergedPaths(ctx) {
		t.Error("no unmerged paths recorded after conflicting pull")
	}
	data, err := os.ReadFile(filepath.Join(g.Root(), "mail", "work.gpg"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "ciphertext-local") {
		t.Error("local version lost after conflicting pull")
	}
}

func TestPushNoRemote(t *testing.T) {
	requireGit(t)
	dir := setupSourceRepo(t)
	g, err := Open(dir)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	err = g.Push(context.Background(), "origin")
	if !errors.Is(err, perrors.ErrNoRemote) {
		t.Errorf("Push() error = %v, want ErrNoRemote", err)
	}
}

func TestPush(t *testing.T) {
	requireGit(t)
	source := setupSourceRepo(t)
	g := cloneForTest(t, source)
	ctx := context.Background()

	// Local-path pushes into a non-bare checkout are refused; push to a
	// bare mirror instead.
	bare := filepath.Join(t.TempDir(), "store.git")
	runGit(t, ".", "clone", "--bare", source, bare)
	runGit(t, g.Root(), "remote", "set-url", "origin", bare)

	writeFile(t, g.Root(), "pin.gpg", "ciphertext\n")
	if err := g.CommitAll(ctx, "Add pin"); err != nil {
		t.Fatalf("CommitAll() failed: %v", err)
	}

	if err := g.Push(ctx, "origin"); err != nil {
		t.Fatalf("Push() failed: %v", err)
	}

	branch := runGit(t, g.Root(), "symbolic-ref", "--short", "HEAD")
	local := runGit(t, g.Root(), "rev-parse", "HEAD")
	remote := runGit(t, bare, "rev-parse", "refs/heads/"+branch)
	if local != remote {
		t.Errorf("remote branch at %s, want %s", remote, local)
	}
}
