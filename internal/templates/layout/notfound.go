package layout

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"finitefield.org/folio/internal/templates/components"
	"finitefield.org/folio/internal/templates/helpers"
)

// NotFound is the body shown for unknown posts, snippets and routes.
func NotFound() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := helpers.NewPrinter(w)
		p.Raw(`<section class="not-found"><div class="page-title">`)
		p.Render(ctx, components.Comment("Not found"))
		p.Raw(`</div><p>There is nothing at this address.</p>`)
		p.Render(ctx, components.Link(components.LinkProps{Href: "/posts", Emoji: "←"}, "Back to posts"))
		p.Raw(`</section>`)
		return p.Err()
	})
}
