package layout

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"finitefield.org/folio/internal/templates/components"
	"finitefield.org/folio/internal/templates/helpers"
)

// Meta carries per-page head and navigation data.
type Meta struct {
	SiteTitle   string
	Title       string
	Description string
	// Path is the request path, used to highlight the active nav entry.
	Path string
}

type navItem struct {
	Label  string
	Href   string
	Prefix string
}

var navItems = []navItem{
	{Label: "Posts", Href: "/posts", Prefix: "/posts"},
	{Label: "Snippets", Href: "/snippets", Prefix: "/snippets"},
}

// Base wraps page content in the shared document shell.
func Base(meta Meta, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := helpers.NewPrinter(w)
		p.Raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		p.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		p.Raw("<title>")
		p.Text(pageTitle(meta))
		p.Raw("</title>")
		if meta.Description != "" {
			p.Raw(`<meta name="description"`)
			p.Attr("content", meta.Description)
			p.Raw(">")
		}
		p.Raw(`<link rel="stylesheet" href="/public/static/site.css">`)
		p.Raw(`<script src="https://unpkg.com/htmx.org@1.9.12" defer></script>`)
		p.Raw(`</head><body><header class="site-header">`)
		p.Render(ctx, components.Link(components.LinkProps{Href: "/", Class: "site-title"}, meta.SiteTitle))
		p.Raw(`<nav class="site-nav">`)
		for _, item := range navItems {
			active := strings.HasPrefix(meta.Path, item.Prefix)
			props := components.LinkProps{
				Href:  item.Href,
				Class: templ.Classes("nav-link", templ.KV("active", active)).String(),
			}
			p.Render(ctx, components.Link(props, item.Label))
		}
		p.Raw(`</nav></header><main class="site-main">`)
		p.Render(ctx, body)
		p.Raw(`</main></body></html>`)
		return p.Err()
	})
}

func pageTitle(meta Meta) string {
	switch {
	case meta.Title == "":
		return meta.SiteTitle
	case meta.SiteTitle == "":
		return meta.Title
	default:
		return meta.Title + " · " + meta.SiteTitle
	}
}
