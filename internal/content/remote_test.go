package content

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRemoteStoreListPosts(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/posts" || r.Header.Get("Accept") != "application/json" {
			http.Error(w, "unexpected request", http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"items": []map[string]any{
				{"slug": "first", "title": "First", "date": "2024-01-01T00:00:00Z", "body": "a"},
				{"slug": "second", "title": "Second", "date": "2024-02-01T00:00:00Z", "body": "b"},
				{"slug": "", "title": "No slug"},
			},
		})
	}))
	defer srv.Close()

	store := NewRemoteStore(srv.URL+"/v1/", NewFileStore(t.TempDir()), srv.Client(), nil)
	posts, err := store.ListPosts(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 2)
	require.Equal(t, "second", posts[0].Slug, "remote posts are sorted newest first")
}

func TestRemoteStoreFallsBackOnFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	store := NewRemoteStore(srv.URL, NewFileStore(seedContent(t)), srv.Client(), nil)
	ctx := context.Background()

	posts, err := store.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	require.Equal(t, "newer", posts[0].Slug)

	post, err := store.GetPost(ctx, "older")
	require.NoError(t, err)
	require.Equal(t, "Older", post.Title)

	snippets, err := store.ListSnippets(ctx)
	require.NoError(t, err)
	require.Len(t, snippets, 2)
}

func TestRemoteStoreGetPost(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/posts/remote-only":
			_ = json.NewEncoder(w).Encode(map[string]any{"slug": "remote-only", "title": "Remote", "date": "2024-04-01", "body": "x"})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	store := NewRemoteStore(srv.URL, NewFileStore(seedContent(t)), srv.Client(), nil)
	ctx := context.Background()

	post, err := store.GetPost(ctx, "remote-only")
	require.NoError(t, err)
	require.Equal(t, "Remote", post.Title)

	local, err := store.GetPost(ctx, "newer")
	require.NoError(t, err, "a remote 404 still consults the local content")
	require.Equal(t, "Newer", local.Title)

	_, err = store.GetPost(ctx, "nowhere")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = store.GetPost(ctx, "../etc")
	require.ErrorIs(t, err, ErrNotFound)
}
