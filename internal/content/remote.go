package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// RemoteStore reads posts from a headless CMS and falls back to another Store
// (normally the FileStore) whenever the CMS is unreachable or returns garbage.
// Snippets always come from the fallback.
type RemoteStore struct {
	baseURL  string
	http     *http.Client
	fallback Store
	logger   *zap.Logger
}

type remotePostList struct {
	Items []Post `json:"items"`
}

// NewRemoteStore constructs a RemoteStore. A nil client gets a 5s timeout client.
func NewRemoteStore(baseURL string, fallback Store, client *http.Client, logger *zap.Logger) *RemoteStore {
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RemoteStore{
		baseURL:  strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:     client,
		fallback: fallback,
		logger:   logger,
	}
}

// ListPosts fetches <base>/posts.
func (c *RemoteStore) ListPosts(ctx context.Context) ([]Post, error) {
	var payload remotePostList
	if err := c.getJSON(ctx, &payload, "posts"); err != nil {
		c.logger.Warn("cms: list posts failed, using fallback", zap.Error(err))
		return c.fallback.ListPosts(ctx)
	}

	posts := make([]Post, 0, len(payload.Items))
	for _, raw := range payload.Items {
		post, ok := normalizeRemotePost(raw)
		if !ok {
			continue
		}
		posts = append(posts, post)
	}
	if len(posts) == 0 {
		return c.fallback.ListPosts(ctx)
	}
	SortPosts(posts)
	return posts, nil
}

// GetPost fetches <base>/posts/<slug>.
func (c *RemoteStore) GetPost(ctx context.Context, slug string) (Post, error) {
	slug = sanitizeSlug(slug)
	if slug == "" {
		return Post{}, ErrNotFound
	}

	var raw Post
	err := c.getJSON(ctx, &raw, "posts", slug)
	if err == nil {
		if post, ok := normalizeRemotePost(raw); ok {
			return post, nil
		}
		err = fmt.Errorf("cms: invalid post payload for %s", slug)
	}
	if !errors.Is(err, ErrNotFound) {
		c.logger.Warn("cms: get post failed, using fallback", zap.String("slug", slug), zap.Error(err))
	}
	return c.fallback.GetPost(ctx, slug)
}

// ListSnippets delegates to the fallback store.
func (c *RemoteStore) ListSnippets(ctx context.Context) ([]Snippet, error) {
	return c.fallback.ListSnippets(ctx)
}

// GetSnippet delegates to the fallback store.
func (c *RemoteStore) GetSnippet(ctx context.Context, slug string) (Snippet, error) {
	return c.fallback.GetSnippet(ctx, slug)
}

func (c *RemoteStore) getJSON(ctx context.Context, dst any, elem ...string) error {
	if c.baseURL == "" {
		return errors.New("cms: base url not configured")
	}
	endpoint, err := url.JoinPath(c.baseURL, elem...)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("cms: remote status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("cms: decode %s: %w", strings.Join(elem, "/"), err)
	}
	return nil
}

func normalizeRemotePost(raw Post) (Post, bool) {
	raw.Slug = sanitizeSlug(raw.Slug)
	raw.Title = strings.TrimSpace(raw.Title)
	raw.Date = strings.TrimSpace(raw.Date)
	if err := validateRecord(raw); err != nil {
		return Post{}, false
	}
	return raw, true
}
