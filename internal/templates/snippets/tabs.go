package snippets

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"finitefield.org/folio/internal/content"
	"finitefield.org/folio/internal/tabs"
	"finitefield.org/folio/internal/templates/components"
	"finitefield.org/folio/internal/templates/helpers"
)

// TabsProps wires a rendered tab set to the routes that re-render it.
type TabsProps struct {
	// ID is the DOM id of the tab set container, used as the htmx swap target.
	ID string
	// PageURL is the full-page route used by the no-JS form fallback.
	PageURL string
	// FragmentURL is the htmx route returning just the tab set.
	FragmentURL string
}

// PageData is the payload of a snippet page.
type PageData struct {
	Snippet content.Snippet
	Tabs    tabs.View
	Props   TabsProps
}

// IndexData lists every snippet.
type IndexData struct {
	Snippets []content.Snippet
}

// Code renders a snippet file as a highlighted-ready code block.
func Code(file content.SnippetFile) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		p := helpers.NewPrinter(w)
		p.Raw("<pre><code")
		if ext := tabs.Extension(file.Name); ext != file.Name && ext != "" {
			p.Attr("class", "language-"+ext)
		}
		p.Raw(">")
		p.Text(file.Code)
		p.Raw("</code></pre>")
		return p.Err()
	})
}

// Panes turns snippet files into tab panes.
func Panes(files []content.SnippetFile) []tabs.Pane {
	out := make([]tabs.Pane, 0, len(files))
	for _, f := range files {
		out = append(out, tabs.Pane{Title: f.Name, Content: Code(f)})
	}
	return out
}

// TabSet renders the title strip and the active pane. Every title is a submit button of a
// GET form, so selection works without scripts; htmx upgrades the click to a fragment swap.
func TabSet(view tabs.View, props TabsProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := helpers.NewPrinter(w)
		p.Raw(`<div class="tabs"`)
		p.Attr("id", props.ID)
		p.Raw(`><form class="titles" role="tablist" method="get"`)
		p.URLAttr("action", props.PageURL)
		p.Raw(">")
		for _, title := range view.Titles {
			tabTitle(p, title, props)
		}
		p.Raw(`</form><div class="tab" role="tabpanel">`)
		p.Render(ctx, view.Content)
		p.Raw(`</div></div>`)
		return p.Err()
	})
}

func tabTitle(p *helpers.Printer, title tabs.Title, props TabsProps) {
	p.Raw(`<button type="submit" name="tab" role="tab"`)
	p.Attr("value", strconv.Itoa(title.Index))
	p.Attr("class", templ.Classes("title", templ.KV("active", title.Active)).String())
	p.Attr("aria-selected", strconv.FormatBool(title.Active))
	if props.FragmentURL != "" {
		p.URLAttr("hx-get", helpers.TabURL(props.FragmentURL, title.Index))
		p.Attr("hx-target", "#"+props.ID)
		p.Attr("hx-swap", "outerHTML")
	}
	p.Raw(">")
	if title.HasBadge {
		badge(p, title.Badge)
	}
	p.Text(title.Title)
	p.Raw("</button>")
}

func badge(p *helpers.Printer, b tabs.Badge) {
	switch b.Kind {
	case tabs.BadgeSass:
		p.Raw(sassLogoSVG)
	case tabs.BadgeText, tabs.BadgeMarkup, tabs.BadgeHash:
		p.Raw("<span")
		p.Attr("class", "badge badge-"+badgeClass(b.Kind))
		p.Raw(">")
		p.Text(b.Text)
		p.Raw("</span>")
	}
}

func badgeClass(kind tabs.BadgeKind) string {
	switch kind {
	case tabs.BadgeMarkup:
		return "markup"
	case tabs.BadgeHash:
		return "hash"
	default:
		return "text"
	}
}

// Page renders a snippet with its tab set.
func Page(data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := helpers.NewPrinter(w)
		p.Raw(`<section class="snippet"><div class="page-title">`)
		p.Render(ctx, components.Comment(data.Snippet.Title))
		p.Raw(`</div>`)
		p.Render(ctx, TabSet(data.Tabs, data.Props))
		p.Raw(`<footer>`)
		p.Render(ctx, components.Link(components.LinkProps{Href: "/snippets", Emoji: "←"}, "All snippets"))
		p.Raw(`</footer></section>`)
		return p.Err()
	})
}

// Index lists snippets with their file names.
func Index(data IndexData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := helpers.NewPrinter(w)
		p.Raw(`<div class="page-title">`)
		p.Render(ctx, components.Comment("Snippets"))
		p.Raw(`</div>`)
		if len(data.Snippets) == 0 {
			p.Raw(`<p class="empty">Nothing here yet.</p>`)
			return p.Err()
		}
		p.Raw(`<ul class="snippets">`)
		for _, s := range data.Snippets {
			p.Raw(`<li class="snippet-item">`)
			p.Render(ctx, components.Link(components.LinkProps{Href: helpers.SnippetURL(s.Slug)}, s.Title))
			p.Raw(`<span class="files">`)
			for i, f := range s.Files {
				if i > 0 {
					p.Raw(", ")
				}
				p.Text(f.Name)
			}
			p.Raw(`</span></li>`)
		}
		p.Raw(`</ul>`)
		return p.Err()
	})
}
