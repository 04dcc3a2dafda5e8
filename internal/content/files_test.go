package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func seedContent(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "posts", "older.md"), "---\ntitle: Older\ndate: \"2024-01-01T09:00:00Z\"\n---\nold body\n")
	writeFile(t, filepath.Join(dir, "posts", "newer.md"), "---\ntitle: Newer\ndate: \"2024-01-02T10:00:00Z\"\ntags: [go]\n---\n\n# Hello\n")
	writeFile(t, filepath.Join(dir, "posts", "draft.md"), "---\ntitle: Draft\ndate: \"2024-02-01T00:00:00Z\"\ndraft: true\n---\nsecret\n")
	writeFile(t, filepath.Join(dir, "posts", "untitled.md"), "---\ndate: \"2024-03-01T00:00:00Z\"\n---\nmissing title\n")
	writeFile(t, filepath.Join(dir, "posts", "broken.md"), "---\ntitle: [unterminated\n---\n")
	writeFile(t, filepath.Join(dir, "posts", "notes.txt"), "ignored")

	writeFile(t, filepath.Join(dir, "snippets", "button", "snippet.yaml"), "title: Button\ndefault_tab: 1\nfiles:\n  - button.tsx\n  - button.scss\n")
	writeFile(t, filepath.Join(dir, "snippets", "button", "button.tsx"), "export const Button = () => null;\n")
	writeFile(t, filepath.Join(dir, "snippets", "button", "button.scss"), ".button { color: red; }\n")
	writeFile(t, filepath.Join(dir, "snippets", "plain-page", "index.html"), "<p>hi</p>\n")
	writeFile(t, filepath.Join(dir, "snippets", "plain-page", "app.js"), "console.log(1)\n")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "snippets", "empty"), 0o755))

	return dir
}

func TestFileStoreListPosts(t *testing.T) {
	t.Parallel()

	store := NewFileStore(seedContent(t))
	posts, err := store.ListPosts(context.Background())
	require.NoError(t, err)

	require.Len(t, posts, 2, "drafts, invalid and non-markdown files are skipped")
	require.Equal(t, "newer", posts[0].Slug)
	require.Equal(t, "Newer", posts[0].Title)
	require.Equal(t, "2024-01-02T10:00:00Z", posts[0].Date)
	require.Equal(t, []string{"go"}, posts[0].Tags)
	require.Equal(t, "# Hello\n", posts[0].Body)
	require.Equal(t, "older", posts[1].Slug)
}

func TestFileStoreGetPost(t *testing.T) {
	t.Parallel()

	store := NewFileStore(seedContent(t))
	ctx := context.Background()

	post, err := store.GetPost(ctx, "Older")
	require.NoError(t, err)
	require.Equal(t, "Older", post.Title)

	for _, slug := range []string{"", "draft", "../posts/older", "a/b", "missing"} {
		_, err := store.GetPost(ctx, slug)
		require.ErrorIs(t, err, ErrNotFound, "slug %q", slug)
	}
}

func TestFileStoreSnippets(t *testing.T) {
	t.Parallel()

	store := NewFileStore(seedContent(t))
	snippets, err := store.ListSnippets(context.Background())
	require.NoError(t, err)
	require.Len(t, snippets, 2, "directories without files are skipped")

	button := snippets[0]
	require.Equal(t, "button", button.Slug)
	require.Equal(t, "Button", button.Title)
	require.NotNil(t, button.DefaultTab)
	require.Equal(t, 1, *button.DefaultTab)
	require.Equal(t, "button.tsx", button.Files[0].Name)
	require.Equal(t, "button.scss", button.Files[1].Name)

	plain, err := store.GetSnippet(context.Background(), "plain-page")
	require.NoError(t, err)
	require.Equal(t, "Plain Page", plain.Title)
	require.Nil(t, plain.DefaultTab)
	require.Equal(t, []string{"app.js", "index.html"}, []string{plain.Files[0].Name, plain.Files[1].Name})
}

func TestFileStoreMissingDirectories(t *testing.T) {
	t.Parallel()

	store := NewFileStore(t.TempDir())
	posts, err := store.ListPosts(context.Background())
	require.NoError(t, err)
	require.Empty(t, posts)

	snippets, err := store.ListSnippets(context.Background())
	require.NoError(t, err)
	require.Empty(t, snippets)
}

func TestFileStoreCachesUntilInvalidated(t *testing.T) {
	t.Parallel()

	dir := seedContent(t)
	store := NewFileStore(dir, WithCacheTTL(time.Hour))
	ctx := context.Background()

	first, err := store.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, first, 2)

	writeFile(t, filepath.Join(dir, "posts", "latest.md"), "---\ntitle: Latest\ndate: \"2024-05-01\"\n---\n")

	cached, err := store.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, cached, 2, "cached listing is served until invalidated")

	store.Invalidate()
	fresh, err := store.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, fresh, 3)
	require.Equal(t, "latest", fresh[0].Slug)
}

func TestFileStoreReturnsCopies(t *testing.T) {
	t.Parallel()

	store := NewFileStore(seedContent(t))
	posts, err := store.ListPosts(context.Background())
	require.NoError(t, err)
	posts[0].Title = "mutated"
	posts[0].Tags[0] = "mutated"

	again, err := store.ListPosts(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Newer", again[0].Title)
	require.Equal(t, "go", again[0].Tags[0])
}

func TestFileStoreWatchInvalidates(t *testing.T) {
	t.Parallel()

	dir := seedContent(t)
	store := NewFileStore(dir, WithCacheTTL(time.Hour))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, store.Watch(ctx))

	posts, err := store.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 2)

	writeFile(t, filepath.Join(dir, "posts", "watched.md"), "---\ntitle: Watched\ndate: \"2024-06-01\"\n---\n")

	require.Eventually(t, func() bool {
		posts, err := store.ListPosts(ctx)
		return err == nil && len(posts) == 3
	}, 3*time.Second, 20*time.Millisecond)
}

func TestSplitFrontMatter(t *testing.T) {
	t.Parallel()

	fm, body := splitFrontMatter("\ufeff---\r\ntitle: x\r\n---\r\n\r\nbody")
	require.Equal(t, "title: x", fm)
	require.Equal(t, "body", body)

	fm, body = splitFrontMatter("no header")
	require.Empty(t, fm)
	require.Equal(t, "no header", body)

	fm, body = splitFrontMatter("---\nunterminated")
	require.Empty(t, fm)
	require.Equal(t, "---\nunterminated", body)
}
