// Package content loads posts and code snippets from the content directory or a remote CMS.
package content

import (
	"context"
	"errors"
	"os"
	"sort"
	"strings"
)

// ErrNotFound is returned when a post or snippet cannot be located.
var ErrNotFound = errors.New("content: not found")

// Post is a single blog entry. Date is kept exactly as authored (ISO-8601).
type Post struct {
	Slug    string   `json:"slug" validate:"required"`
	Title   string   `json:"title" validate:"required"`
	Date    string   `json:"date"`
	Summary string   `json:"summary,omitempty"`
	Tags    []string `json:"tags,omitempty"`
	Body    string   `json:"body"`
}

// Snippet is a named set of source files shown as tabs.
type Snippet struct {
	Slug       string `validate:"required"`
	Title      string `validate:"required"`
	DefaultTab *int
	Files      []SnippetFile `validate:"required,min=1,dive"`
}

// SnippetFile is one pane of a snippet.
type SnippetFile struct {
	Name string `validate:"required"`
	Code string
}

// Store is the read-only content source consumed by the HTTP handlers.
type Store interface {
	ListPosts(ctx context.Context) ([]Post, error)
	GetPost(ctx context.Context, slug string) (Post, error)
	ListSnippets(ctx context.Context) ([]Snippet, error)
	GetSnippet(ctx context.Context, slug string) (Snippet, error)
}

// SortPosts orders posts newest first by their raw date string, then by slug.
func SortPosts(posts []Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		if posts[i].Date != posts[j].Date {
			return posts[i].Date > posts[j].Date
		}
		return posts[i].Slug < posts[j].Slug
	})
}

func findPost(posts []Post, slug string) (Post, error) {
	slug = sanitizeSlug(slug)
	if slug == "" {
		return Post{}, ErrNotFound
	}
	for _, p := range posts {
		if p.Slug == slug {
			return clonePost(p), nil
		}
	}
	return Post{}, ErrNotFound
}

func findSnippet(snippets []Snippet, slug string) (Snippet, error) {
	slug = sanitizeSlug(slug)
	if slug == "" {
		return Snippet{}, ErrNotFound
	}
	for _, s := range snippets {
		if s.Slug == slug {
			return cloneSnippet(s), nil
		}
	}
	return Snippet{}, ErrNotFound
}

func sanitizeSlug(slug string) string {
	slug = strings.TrimSpace(strings.ToLower(slug))
	slug = strings.Trim(slug, "/")
	if slug == "" {
		return ""
	}
	if strings.Contains(slug, "..") {
		return ""
	}
	if strings.ContainsRune(slug, os.PathSeparator) || strings.ContainsRune(slug, '/') {
		return ""
	}
	return slug
}

func prettifySlug(slug string) string {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return slug
	}
	parts := strings.Split(slug, "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		runes := []rune(part)
		runes[0] = asciiUpper(runes[0])
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}

func asciiUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func clonePost(src Post) Post {
	cp := src
	if src.Tags != nil {
		cp.Tags = append([]string(nil), src.Tags...)
	}
	return cp
}

func clonePosts(src []Post) []Post {
	out := make([]Post, len(src))
	for i, p := range src {
		out[i] = clonePost(p)
	}
	return out
}

func cloneSnippet(src Snippet) Snippet {
	cp := src
	if src.DefaultTab != nil {
		v := *src.DefaultTab
		cp.DefaultTab = &v
	}
	cp.Files = append([]SnippetFile(nil), src.Files...)
	return cp
}

func cloneSnippets(src []Snippet) []Snippet {
	out := make([]Snippet, len(src))
	for i, s := range src {
		out[i] = cloneSnippet(s)
	}
	return out
}
