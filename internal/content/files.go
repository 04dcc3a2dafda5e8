package content

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	defaultContentDir = "content"
	defaultCacheTTL   = 5 * time.Minute
	postsDir          = "posts"
	snippetsDir       = "snippets"
	manifestName      = "snippet.yaml"
)

// FileStore reads posts and snippets from a content directory on disk.
//
//	<dir>/posts/<slug>.md           markdown with YAML front matter
//	<dir>/snippets/<slug>/...       one file per tab, optional snippet.yaml
type FileStore struct {
	dir    string
	ttl    time.Duration
	logger *zap.Logger
	now    func() time.Time

	mu       sync.RWMutex
	posts    cacheEntry[[]Post]
	snippets cacheEntry[[]Snippet]
}

type cacheEntry[T any] struct {
	value   T
	expires time.Time
	loaded  bool
}

// FileStoreOption customises a FileStore.
type FileStoreOption func(*FileStore)

// WithCacheTTL sets how long parsed content stays cached. Zero disables caching.
func WithCacheTTL(d time.Duration) FileStoreOption {
	return func(s *FileStore) {
		if d < 0 {
			d = 0
		}
		s.ttl = d
	}
}

// WithLogger attaches a logger used to report skipped files.
func WithLogger(logger *zap.Logger) FileStoreOption {
	return func(s *FileStore) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewFileStore constructs a FileStore rooted at dir.
func NewFileStore(dir string, opts ...FileStoreOption) *FileStore {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		dir = defaultContentDir
	}
	s := &FileStore{
		dir:    dir,
		ttl:    defaultCacheTTL,
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dir returns the content root.
func (s *FileStore) Dir() string { return s.dir }

// Invalidate drops every cached entry.
func (s *FileStore) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = cacheEntry[[]Post]{}
	s.snippets = cacheEntry[[]Snippet]{}
}

// ListPosts returns all published posts, newest first.
func (s *FileStore) ListPosts(_ context.Context) ([]Post, error) {
	s.mu.RLock()
	entry := s.posts
	s.mu.RUnlock()
	if s.fresh(entry.loaded, entry.expires) {
		return clonePosts(entry.value), nil
	}

	posts, err := s.readPosts()
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.posts = cacheEntry[[]Post]{value: posts, expires: s.now().Add(s.ttl), loaded: true}
	s.mu.Unlock()
	return clonePosts(posts), nil
}

// GetPost returns the post with the given slug.
func (s *FileStore) GetPost(ctx context.Context, slug string) (Post, error) {
	posts, err := s.ListPosts(ctx)
	if err != nil {
		return Post{}, err
	}
	return findPost(posts, slug)
}

// ListSnippets returns all snippets ordered by slug.
func (s *FileStore) ListSnippets(_ context.Context) ([]Snippet, error) {
	s.mu.RLock()
	entry := s.snippets
	s.mu.RUnlock()
	if s.fresh(entry.loaded, entry.expires) {
		return cloneSnippets(entry.value), nil
	}

	snippets, err := s.readSnippets()
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.snippets = cacheEntry[[]Snippet]{value: snippets, expires: s.now().Add(s.ttl), loaded: true}
	s.mu.Unlock()
	return cloneSnippets(snippets), nil
}

// GetSnippet returns the snippet with the given slug.
func (s *FileStore) GetSnippet(ctx context.Context, slug string) (Snippet, error) {
	snippets, err := s.ListSnippets(ctx)
	if err != nil {
		return Snippet{}, err
	}
	return findSnippet(snippets, slug)
}

func (s *FileStore) fresh(loaded bool, expires time.Time) bool {
	return loaded && s.ttl > 0 && s.now().Before(expires)
}

func (s *FileStore) readPosts() ([]Post, error) {
	root := filepath.Join(s.dir, postsDir)
	entries, err := os.ReadDir(root)
	if errors.Is(err, fs.ErrNotExist) {
		return []Post{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("content: read posts dir: %w", err)
	}

	posts := make([]Post, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".md") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(root, name))
		if err != nil {
			return nil, fmt.Errorf("content: read post %s: %w", name, err)
		}
		post, draft, err := parsePost(name, string(data))
		if err != nil {
			s.logger.Warn("skipping post", zap.String("file", name), zap.Error(err))
			continue
		}
		if draft {
			continue
		}
		if err := validateRecord(post); err != nil {
			s.logger.Warn("skipping post", zap.String("file", name), zap.Error(err))
			continue
		}
		if _, dup := seen[post.Slug]; dup {
			s.logger.Warn("skipping duplicate post slug", zap.String("file", name), zap.String("slug", post.Slug))
			continue
		}
		seen[post.Slug] = struct{}{}
		posts = append(posts, post)
	}
	SortPosts(posts)
	return posts, nil
}

func (s *FileStore) readSnippets() ([]Snippet, error) {
	root := filepath.Join(s.dir, snippetsDir)
	entries, err := os.ReadDir(root)
	if errors.Is(err, fs.ErrNotExist) {
		return []Snippet{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("content: read snippets dir: %w", err)
	}

	snippets := make([]Snippet, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		slug := sanitizeSlug(entry.Name())
		if slug == "" {
			continue
		}
		snippet, err := readSnippet(filepath.Join(root, entry.Name()), slug)
		if err != nil {
			s.logger.Warn("skipping snippet", zap.String("dir", entry.Name()), zap.Error(err))
			continue
		}
		if err := validateRecord(snippet); err != nil {
			s.logger.Warn("skipping snippet", zap.String("dir", entry.Name()), zap.Error(err))
			continue
		}
		snippets = append(snippets, snippet)
	}
	sort.Slice(snippets, func(i, j int) bool { return snippets[i].Slug < snippets[j].Slug })
	return snippets, nil
}

func readSnippet(dir, slug string) (Snippet, error) {
	manifest := snippetManifest{}
	data, err := os.ReadFile(filepath.Join(dir, manifestName))
	switch {
	case err == nil:
		manifest, err = parseManifest(slug+"/"+manifestName, data)
		if err != nil {
			return Snippet{}, err
		}
	case !errors.Is(err, fs.ErrNotExist):
		return Snippet{}, err
	}

	names := manifest.Files
	if len(names) == 0 {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return Snippet{}, err
		}
		for _, entry := range entries {
			if entry.IsDir() || entry.Name() == manifestName || strings.HasPrefix(entry.Name(), ".") {
				continue
			}
			names = append(names, entry.Name())
		}
		sort.Strings(names)
	}

	files := make([]SnippetFile, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || name != filepath.Base(name) {
			return Snippet{}, fmt.Errorf("content: invalid snippet file name %q", name)
		}
		code, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return Snippet{}, fmt.Errorf("content: read snippet file %s: %w", name, err)
		}
		files = append(files, SnippetFile{Name: name, Code: string(code)})
	}

	return Snippet{
		Slug:       slug,
		Title:      firstNonEmpty(strings.TrimSpace(manifest.Title), prettifySlug(slug)),
		DefaultTab: manifest.DefaultTab,
		Files:      files,
	}, nil
}
