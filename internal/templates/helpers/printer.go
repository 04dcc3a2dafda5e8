package helpers

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Printer writes HTML fragments and keeps the first error, so component bodies can be
// written as a straight sequence of calls and checked once at the end.
type Printer struct {
	w   io.Writer
	err error
}

// NewPrinter wraps w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Raw writes s unescaped. Only use it for markup literals.
func (p *Printer) Raw(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

// Text writes s with HTML escaping.
func (p *Printer) Text(s string) {
	p.Raw(templ.EscapeString(s))
}

// Attr writes ` name="value"` with the value escaped. Empty values are skipped.
func (p *Printer) Attr(name, value string) {
	if value == "" {
		return
	}
	p.Raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

// BoolAttr writes a valueless attribute when on is true.
func (p *Printer) BoolAttr(name string, on bool) {
	if on {
		p.Raw(" " + name)
	}
}

// URLAttr writes an attribute holding a sanitised URL.
func (p *Printer) URLAttr(name, url string) {
	p.Attr(name, string(templ.URL(url)))
}

// Render renders a child component into the same writer. Nil components are skipped.
func (p *Printer) Render(ctx context.Context, c templ.Component) {
	if p.err != nil || c == nil {
		return
	}
	p.err = c.Render(ctx, p.w)
}

// Err returns the first error seen.
func (p *Printer) Err() error { return p.err }

// Text returns a component that renders escaped text.
func Text(value string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(value))
		return err
	})
}
