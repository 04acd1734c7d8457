package store

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/quiltmoor/passgit/internal/configs"
	perrors "github.com/quiltmoor/passgit/internal/errors"
	"github.com/quiltmoor/passgit/internal/git"
	"github.com/quiltmoor/passgit/internal/gpg"
	logger "github.com/quiltmoor/passgit/internal/logging"
)

// Extension is the on-disk suffix of encrypted records.
const Extension = ".gpg"

// Store is the password store engine. It composes the store locator, the
// OpenPGP gateway, and the git gateway into the record and sync operations
// the CLI consumes.
//
// All operations are synchronous and serialize through one mutex: at most
// one operation is in flight per engine instance. Separate instances still
// share the on-disk repository, so they must not be driven concurrently
// against the same store root.
type Store struct {
	mu sync.Mutex

	// root, repo, and crypto are all set, or all unset. An engine that
	// failed discovery stays constructible so read-only queries never
	// panic; mutations fail with ErrStoreNotInitialized.
	root   string
	repo   *git.Git
	crypto *gpg.CLI

	// remote is the remote name pushes target.
	remote string

	log logger.Logger
}

// New constructs an engine over the resolved store root. Discovery
// failures (no root, no repository, no gpg) are not fatal: they leave the
// engine uninitialized, and each operation reports readiness itself.
func New(log logger.Logger) *Store {
	s := &Store{remote: configs.DefaultRemote, log: log}

	if config, err := configs.LoadUserConfig(); err == nil && config.Sync.Remote != "" {
		s.remote = config.Sync.Remote
	}

	root, err := configs.StoreRoot()
	if err != nil {
		log.Debugf("store root not resolvable: %v", err)
		return s
	}

	repo, err := git.Open(root)
	if err != nil {
		log.Debugf("no repository at %s: %v", root, err)
		return s
	}

	crypto, err := gpg.New()
	if err != nil {
		log.Debugf("gpg unavailable: %v", err)
		return s
	}

	s.root = root
	s.repo = repo
	s.crypto = crypto
	return s
}

// ready fails unless discovery produced a usable root, repository, and
// crypto gateway.
func (s *Store) ready() error {
	if s.root == "" || s.repo == nil || s.crypto == nil {
		return perrors.ErrStoreNotInitialized
	}
	return nil
}

// Root returns the resolved store root, empty if uninitialized.
func (s *Store) Root() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.root
}

// Initialized reports whether the engine is fully usable.
func (s *Store) Initialized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready() == nil
}

// entryPath maps an entry name to its ciphertext file.
func (s *Store) entryPath(name string) string {
	return filepath.Join(s.root, filepath.FromSlash(name)+Extension)
}

// List enumerates every entry in the store, sorted lexicographically.
// Paths containing hidden components are excluded, and individual entries
// that cannot be read are skipped with a warning rather than failing the
// whole listing.
func (s *Store) List() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ready(); err != nil {
		return nil, err
	}

	var names []string
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == s.root {
				return err
			}
			s.log.WarnfAlways("skipping unreadable path %s: %v", path, err)
			return nil
		}

		if d.IsDir() {
			// Hidden directories hold no entries: .git, .gpg-verify
			// caches, and anything else dot-prefixed.
			if path != s.root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(d.Name(), ".") || !strings.HasSuffix(d.Name(), Extension) {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			s.log.WarnfAlways("skipping %s: %v", path, err)
			return nil
		}
		name := strings.TrimSuffix(filepath.ToSlash(rel), Extension)
		names = append(names, name)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", s.root, err)
	}

	sort.Strings(names)
	return names, nil
}

// Exists reports whether the named entry's ciphertext file is present.
// Never errors; an uninitialized engine simply has no entries.
func (s *Store) Exists(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.exists(name)
}

func (s *Store) exists(name string) bool {
	if s.root == "" || !ValidName(name) {
		return false
	}
	info, err := os.Stat(s.entryPath(name))
	return err == nil && info.Mode().IsRegular()
}

// Get reads and decrypts an entry using the supplied passphrase. The
// passphrase is fed to gpg over a loopback pipe; no prompt appears.
func (s *Store) Get(name, passphrase string) (Entry, error) {
	return s.get(name, gpg.Supplied(passphrase))
}

// Ask reads and decrypts an entry, leaving passphrase acquisition to the
// gpg agent's pinentry.
func (s *Store) Ask(name string) (Entry, error) {
	return s.get(name, gpg.Interactive())
}

func (s *Store) get(name string, mode gpg.Mode) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ready(); err != nil {
		return Entry{}, err
	}
	if !ValidName(name) {
		return Entry{}, fmt.Errorf("%w: %s", perrors.ErrInvalidPath, name)
	}

	ciphertext, err := os.ReadFile(s.entryPath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return Entry{}, fmt.Errorf("%w: %s", perrors.ErrEntryNotFound, name)
		}
		return Entry{}, fmt.Errorf("reading %s: %w", name, err)
	}

	plaintext, err := s.crypto.Decrypt(ciphertext, mode)
	if err != nil {
		return Entry{}, err
	}

	return Decode(plaintext)
}

// Add encrypts and writes an entry, then commits. The commit message
// distinguishes a fresh add from an update of an existing entry.
// Recipients are resolved before anything touches disk, so a store with no
// usable keys rejects the write without leaving a file behind.
func (s *Store) Add(ctx context.Context, name string, entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ready(); err != nil {
		return err
	}
	if !ValidName(name) {
		return fmt.Errorf("%w: %s", perrors.ErrInvalidPath, name)
	}

	message := fmt.Sprintf("Add %s", name)
	if s.exists(name) {
		message = fmt.Sprintf("Update %s", name)
	}

	recipients, err := gpg.Recipients(s.root)
	if err != nil {
		return err
	}

	ciphertext, err := s.crypto.Encrypt(entry.Encode(), recipients)
	if err != nil {
		return err
	}

	path := s.entryPath(name)
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating parent directories for %s: %w", name, err)
	}
	if err := os.WriteFile(path, ciphertext, 0600); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}

	return s.repo.CommitAll(ctx, message)
}

// Remove deletes an entry and commits the removal.
func (s *Store) Remove(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ready(); err != nil {
		return err
	}
	if !ValidName(name) {
		return fmt.Errorf("%w: %s", perrors.ErrInvalidPath, name)
	}
	if !s.exists(name) {
		return fmt.Errorf("%w: %s", perrors.ErrEntryNotFound, name)
	}

	if err := os.Remove(s.entryPath(name)); err != nil {
		return fmt.Errorf("removing %s: %w", name, err)
	}

	return s.repo.CommitAll(ctx, fmt.Sprintf("Remove %s", name))
}

// Rename moves an entry to a new name and commits. The move is a
// filesystem rename, not copy-and-delete, so git's rename detection keeps
// the history connected.
func (s *Store) Rename(ctx context.Context, oldName, newName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ready(); err != nil {
		return err
	}
	if !ValidName(oldName) {
		return fmt.Errorf("%w: %s", perrors.ErrInvalidPath, oldName)
	}
	if !ValidName(newName) {
		return fmt.Errorf("%w: %s", perrors.ErrInvalidPath, newName)
	}
	if !s.exists(oldName) {
		return fmt.Errorf("%w: %s", perrors.ErrEntryNotFound, oldName)
	}
	if s.exists(newName) {
		return fmt.Errorf("%w: %s", perrors.ErrEntryExists, newName)
	}

	newPath := s.entryPath(newName)
	if err := os.MkdirAll(filepath.Dir(newPath), 0700); err != nil {
		return fmt.Errorf("creating parent directories for %s: %w", newName, err)
	}
	if err := os.Rename(s.entryPath(oldName), newPath); err != nil {
		return fmt.Errorf("renaming %s to %s: %w", oldName, newName, err)
	}

	return s.repo.CommitAll(ctx, fmt.Sprintf("Rename %s to %s", oldName, newName))
}

// Sync synchronizes the store with its remotes: fetch, then pull (merge),
// then push. The first failure aborts the remainder; steps already
// completed persist, so a merge that landed before a failed push stays
// merged.
func (s *Store) Sync(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ready(); err != nil {
		return err
	}

	if err := s.repo.FetchAll(ctx); err != nil {
		return err
	}
	if err := s.repo.Pull(ctx); err != nil {
		return err
	}
	return s.repo.Push(ctx, s.remote)
}

// Init creates a fresh store at the resolved root: the directory, the
// .gpg-id recipient list, a repository if none exists, and an initial
// commit. The engine becomes fully usable afterwards.
func (s *Store) Init(ctx context.Context, recipients []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(recipients) == 0 {
		return perrors.ErrNoRecipients
	}

	root := s.root
	if root == "" {
		resolved, err := configs.StoreRoot()
		if err != nil {
			return err
		}
		root = resolved
	}

	if err := os.MkdirAll(root, 0700); err != nil {
		return fmt.Errorf("creating store root %s: %w", root, err)
	}
	if err := gpg.WriteRecipients(root, recipients); err != nil {
		return err
	}

	repo, err := git.Open(root)
	if err != nil {
		repo, err = git.InitRepo(ctx, root)
		if err != nil {
			return err
		}
	}

	crypto, err := gpg.New()
	if err != nil {
		return err
	}

	if err := repo.CommitAll(ctx, "Initialize password store"); err != nil {
		return err
	}

	s.root = root
	s.repo = repo
	s.crypto = crypto
	return nil
}

// FromGit bootstraps the store by cloning url into the resolved root and
// initializing the engine over the fresh checkout.
func (s *Store) FromGit(ctx context.Context, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	root := s.root
	if root == "" {
		resolved, err := configs.StoreRoot()
		if err != nil {
			return err
		}
		root = resolved
	}

	repo, err := git.Clone(ctx, url, root)
	if err != nil {
		return err
	}

	crypto, err := gpg.New()
	if err != nil {
		return err
	}

	s.root = root
	s.repo = repo
	s.crypto = crypto
	return nil
}
