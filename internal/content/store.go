package content

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katana82/f1gn/internal/logging"
)

const postFileSuffix = ".json"

// Store persists posts as one JSON file per record in a single flat
// directory. The directory listing IS the set of all posts; there is no
// separate index, so every List call reads every file. That whole-directory
// scan is the documented contract, acceptable only while the dataset stays
// small.
type Store struct {
	dir    string
	logger logging.Logger
}

// NewStore builds a store rooted at dir. A nil logger disables logging.
func NewStore(dir string, logger logging.Logger) *Store {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Store{dir: dir, logger: logger}
}

// Dir returns the storage directory.
func (s *Store) Dir() string {
	return s.dir
}

// EnsureReady guarantees the storage directory exists. Idempotent.
func (s *Store) EnsureReady() error {
	if s == nil || s.dir == "" {
		return ErrStoreNotReady
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("content: create store directory: %w", err)
	}
	s.logger.Debug("store.ready", "dir", s.dir)
	return nil
}

// List enumerates every post file in the directory and returns its listing
// projection. Order is unspecified; callers impose their own. A single
// malformed document aborts the whole listing with a classified decode
// error.
func (s *Store) List(ctx context.Context) ([]Summary, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("content: read store directory: %w", err)
	}

	summaries := make([]Summary, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), postFileSuffix) {
			continue
		}
		post, err := s.readFile(entry.Name())
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, post.Summary())
	}
	return summaries, nil
}

// Get looks up the single file named {slug}.json. A missing file yields a
// *NotFoundError wrapping ErrPostNotFound.
func (s *Store) Get(ctx context.Context, slug string) (*Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	// Only normalized slugs (or the degenerate empty one) are ever written,
	// so anything else cannot name a stored post. This also keeps path
	// segments from escaping the store directory.
	if slug != "" && !IsValidSlug(slug) {
		return nil, &NotFoundError{Resource: "post", Key: slug}
	}
	post, err := s.readFile(slug + postFileSuffix)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Resource: "post", Key: slug}
		}
		return nil, err
	}
	return post, nil
}

// Put serializes the post as formatted JSON and writes {slug}.json, creating
// or overwriting without warning. Slug collisions are resolved by last write
// wins; there is no uniqueness check and no versioning.
func (s *Store) Put(ctx context.Context, post *Post) error {
	if post == nil {
		return ErrPostRequired
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(post, "", "  ")
	if err != nil {
		return fmt.Errorf("content: encode post %q: %w", post.Slug, err)
	}
	path := filepath.Join(s.dir, post.Slug+postFileSuffix)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("content: write post %q: %w", post.Slug, err)
	}
	s.logger.Info("post.stored", "slug", post.Slug, "title", post.Title)
	return nil
}

func (s *Store) readFile(name string) (*Post, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, err
		}
		return nil, fmt.Errorf("content: read post file %q: %w", name, err)
	}
	var post Post
	if err := json.Unmarshal(data, &post); err != nil {
		return nil, wrapDecodeError(err, name)
	}
	return &post, nil
}
