// Package components holds the small shared view components used across pages.
package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"finitefield.org/folio/internal/templates/helpers"
)

// EmojiPosition places the optional emoji relative to the link text.
type EmojiPosition string

const (
	EmojiLeft  EmojiPosition = "left"
	EmojiRight EmojiPosition = "right"
)

// LinkProps configures LinkCtr.
type LinkProps struct {
	Href  string
	Label string // aria-label
	Class string
	// NewTab opens the link in a new browsing context. New-tab links never show an emoji.
	NewTab        bool
	Emoji         string
	EmojiPosition EmojiPosition
}

// LinkCtr is the styled anchor used for every link on the site.
func LinkCtr(props LinkProps, children templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := helpers.NewPrinter(w)
		p.Raw("<a")
		p.Attr("class", templ.Classes("link", templ.KV(props.Class, props.Class != "")).String())
		p.URLAttr("href", props.Href)
		p.Attr("aria-label", props.Label)
		if props.NewTab {
			p.Raw(` target="_blank" rel="noopener noreferrer">`)
			linkText(ctx, p, children)
			p.Raw("</a>")
			return p.Err()
		}
		p.Raw(">")

		right := props.EmojiPosition == EmojiRight
		if props.Emoji != "" && !right {
			emoji(p, props.Emoji, "emoji")
		}
		linkText(ctx, p, children)
		if props.Emoji != "" && right {
			emoji(p, props.Emoji, "emoji right")
		}
		p.Raw("</a>")
		return p.Err()
	})
}

// Link is LinkCtr with plain text children.
func Link(props LinkProps, text string) templ.Component {
	return LinkCtr(props, helpers.Text(text))
}

func linkText(ctx context.Context, p *helpers.Printer, children templ.Component) {
	p.Raw(`<span class="text" data-link-text>`)
	p.Render(ctx, children)
	p.Raw("</span>")
}

func emoji(p *helpers.Printer, value, class string) {
	p.Raw("<span")
	p.Attr("class", class)
	p.Raw(" data-emoji>")
	p.Text(value)
	p.Raw("</span>")
}
