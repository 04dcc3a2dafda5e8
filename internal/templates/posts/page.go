package posts

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"finitefield.org/folio/internal/content"
	"finitefield.org/folio/internal/posts"
	"finitefield.org/folio/internal/templates/components"
	"finitefield.org/folio/internal/templates/helpers"
)

// BodyFunc renders a post's markdown body.
type BodyFunc func(source string) templ.Component

// PageData is the payload of the posts listing.
type PageData struct {
	Listing posts.Listing
	Body    BodyFunc
}

// DetailData is the payload of a single post page.
type DetailData struct {
	Post content.Post
	Body BodyFunc
}

// Index renders the posts listing grouped by date. The latest date sits next to the page
// title; every later group carries its own date header.
func Index(data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := helpers.NewPrinter(w)
		p.Raw(`<div class="page-title">`)
		p.Render(ctx, components.Comment("Posts"))
		p.Render(ctx, components.DateTime("date", data.Listing.LatestDate))
		p.Raw(`</div><div class="date-groups">`)
		if len(data.Listing.Groups) == 0 {
			p.Raw(`<p class="empty">Nothing here yet.</p>`)
		}
		for _, group := range data.Listing.Groups {
			p.Raw(`<div class="posts-ctr"`)
			p.Attr("data-date", group.Date)
			p.Raw(">")
			if group.ShowHeader {
				p.Render(ctx, components.DateTime("date", group.Date))
			}
			p.Raw(`<div class="posts">`)
			for _, entry := range group.Entries {
				p.Render(ctx, article(entry, data.Body))
			}
			p.Raw(`</div></div>`)
		}
		p.Raw(`</div>`)
		return p.Err()
	})
}

func article(entry posts.Entry, body BodyFunc) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := helpers.NewPrinter(w)
		p.Raw(`<article class="post"`)
		p.Attr("id", entry.Post.Slug)
		p.Raw("><h2")
		p.Attr("class", templ.Classes("title", templ.KV("first", entry.Featured)).String())
		p.Raw(">")
		p.Render(ctx, components.Link(components.LinkProps{Href: helpers.PostURL(entry.Post.Slug)}, entry.Post.Title))
		p.Raw(`</h2><div class="body">`)
		if body != nil {
			p.Render(ctx, body(entry.Post.Body))
		}
		p.Raw(`</div></article>`)
		return p.Err()
	})
}

// Detail renders a single post.
func Detail(data DetailData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := helpers.NewPrinter(w)
		p.Raw(`<article class="post post-detail"><header><h1 class="title">`)
		p.Text(data.Post.Title)
		p.Raw(`</h1>`)
		p.Render(ctx, components.DateTime("date", posts.DateKey(data.Post.Date)))
		if len(data.Post.Tags) > 0 {
			p.Raw(`<ul class="tags">`)
			for _, tag := range data.Post.Tags {
				p.Raw(`<li class="tag">`)
				p.Text(tag)
				p.Raw(`</li>`)
			}
			p.Raw(`</ul>`)
		}
		p.Raw(`</header><div class="body">`)
		if data.Body != nil {
			p.Render(ctx, data.Body(data.Post.Body))
		}
		p.Raw(`</div><footer>`)
		p.Render(ctx, components.Link(components.LinkProps{Href: "/posts", Emoji: "←", Label: "All posts"}, "All posts"))
		p.Raw(`</footer></article>`)
		return p.Err()
	})
}
