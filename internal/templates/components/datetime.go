package components

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"finitefield.org/folio/internal/templates/helpers"
)

// DateTime renders a <time> element for an ISO date string. Empty input renders nothing;
// input that does not parse is shown verbatim without a datetime attribute.
func DateTime(class, dateString string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if strings.TrimSpace(dateString) == "" {
			return nil
		}
		p := helpers.NewPrinter(w)
		p.Raw("<time")
		p.Attr("class", class)
		p.Attr("datetime", helpers.MachineDate(dateString))
		p.Raw(">")
		p.Text(helpers.DateLabel(dateString))
		p.Raw("</time>")
		return p.Err()
	})
}

// Comment renders a code-comment styled heading, e.g. "// Posts".
func Comment(text string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		p := helpers.NewPrinter(w)
		p.Raw(`<span class="comment">// `)
		p.Text(text)
		p.Raw("</span>")
		return p.Err()
	})
}
