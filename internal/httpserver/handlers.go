package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"finitefield.org/folio/internal/content"
	custommw "finitefield.org/folio/internal/httpserver/middleware"
	"finitefield.org/folio/internal/markup"
	"finitefield.org/folio/internal/observability"
	"finitefield.org/folio/internal/posts"
	"finitefield.org/folio/internal/tabs"
	"finitefield.org/folio/internal/templates/helpers"
	"finitefield.org/folio/internal/templates/layout"
	poststpl "finitefield.org/folio/internal/templates/posts"
	snippetstpl "finitefield.org/folio/internal/templates/snippets"
)

// Handlers serves the site pages.
type Handlers struct {
	store     content.Store
	grouper   posts.Grouper
	markup    *markup.Renderer
	siteTitle string
}

// Health reports liveness.
func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// PostsIndex renders the grouped posts listing.
func (h *Handlers) PostsIndex(w http.ResponseWriter, r *http.Request) {
	list, err := h.store.ListPosts(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	data := poststpl.PageData{
		Listing: h.grouper.Group(list),
		Body:    h.markup.Body,
	}
	h.page(w, r, layout.Meta{Title: "Posts"}, poststpl.Index(data))
}

// PostDetail renders a single post.
func (h *Handlers) PostDetail(w http.ResponseWriter, r *http.Request) {
	post, err := h.store.GetPost(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	meta := layout.Meta{Title: post.Title, Description: post.Summary}
	h.page(w, r, meta, poststpl.Detail(poststpl.DetailData{Post: post, Body: h.markup.Body}))
}

// SnippetsIndex lists every snippet.
func (h *Handlers) SnippetsIndex(w http.ResponseWriter, r *http.Request) {
	list, err := h.store.ListSnippets(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.page(w, r, layout.Meta{Title: "Snippets"}, snippetstpl.Index(snippetstpl.IndexData{Snippets: list}))
}

// SnippetPage renders a snippet with the pane chosen by ?tab=. An htmx request aimed at
// the tab set gets just the tab set back.
func (h *Handlers) SnippetPage(w http.ResponseWriter, r *http.Request) {
	snippet, err := h.store.GetSnippet(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	view, props := snippetTabs(r, snippet)
	if custommw.WantsFragment(r.Context(), props.ID) {
		w.Header().Add("Vary", "HX-Request")
		templ.Handler(snippetstpl.TabSet(view, props)).ServeHTTP(w, r)
		return
	}
	data := snippetstpl.PageData{Snippet: snippet, Tabs: view, Props: props}
	h.page(w, r, layout.Meta{Title: snippet.Title}, snippetstpl.Page(data))
}

// SnippetTabs is the htmx target of a tab click. It returns the tab set only and pushes
// the full-page URL so reloads land on the same pane.
func (h *Handlers) SnippetTabs(w http.ResponseWriter, r *http.Request) {
	snippet, err := h.store.GetSnippet(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	view, props := snippetTabs(r, snippet)
	w.Header().Set("HX-Push-Url", helpers.TabURL(props.PageURL, view.Selected))
	templ.Handler(snippetstpl.TabSet(view, props)).ServeHTTP(w, r)
}

// NotFound renders the 404 page.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	h.page(w, r, layout.Meta{Title: "Not found"}, layout.NotFound(), templ.WithStatus(http.StatusNotFound))
}

func (h *Handlers) page(w http.ResponseWriter, r *http.Request, meta layout.Meta, body templ.Component, opts ...func(*templ.ComponentHandler)) {
	meta.SiteTitle = h.siteTitle
	meta.Path = r.URL.Path
	templ.Handler(layout.Base(meta, body), opts...).ServeHTTP(w, r)
}

func (h *Handlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, content.ErrNotFound) {
		h.NotFound(w, r)
		return
	}
	observability.FromContext(r.Context()).Error("content lookup failed", zap.Error(err))
	http.Error(w, http.StatusText(http.StatusBadGateway), http.StatusBadGateway)
}

func snippetTabs(r *http.Request, snippet content.Snippet) (tabs.View, snippetstpl.TabsProps) {
	var opts []tabs.Option
	if snippet.DefaultTab != nil {
		opts = append(opts, tabs.WithDefaultIndex(*snippet.DefaultTab))
	}
	ts := tabs.New(snippetstpl.Panes(snippet.Files), opts...)
	if raw := r.URL.Query().Get("tab"); raw != "" {
		if i, err := strconv.Atoi(raw); err == nil {
			ts.Select(i)
		}
	}

	pageURL := helpers.SnippetURL(snippet.Slug)
	props := snippetstpl.TabsProps{
		ID:          "tabs-" + snippet.Slug,
		PageURL:     pageURL,
		FragmentURL: pageURL + "/tabs",
	}
	return ts.Render(), props
}
