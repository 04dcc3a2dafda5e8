package tabs

import "strings"

// BadgeKind selects how a tab title's file-type marker is drawn.
type BadgeKind int

const (
	// BadgeNone means no marker.
	BadgeNone BadgeKind = iota
	// BadgeText is a short text label such as "JS".
	BadgeText
	// BadgeMarkup is the "<>" marker for HTML.
	BadgeMarkup
	// BadgeHash is the "#" marker for CSS.
	BadgeHash
	// BadgeSass is the Sass vector logo.
	BadgeSass
)

// Badge is the marker shown before a tab title.
type Badge struct {
	Kind BadgeKind
	Text string
}

var badges = map[string]Badge{
	"js":   {Kind: BadgeText, Text: "JS"},
	"jsx":  {Kind: BadgeText, Text: "JS"},
	"ts":   {Kind: BadgeText, Text: "TS"},
	"tsx":  {Kind: BadgeText, Text: "TS"},
	"html": {Kind: BadgeMarkup, Text: "<>"},
	"css":  {Kind: BadgeHash, Text: "#"},
	"scss": {Kind: BadgeSass, Text: "Sass"},
}

// Extension returns the token after the last '.' in title, or title itself when it has no dot.
func Extension(title string) string {
	if i := strings.LastIndexByte(title, '.'); i >= 0 {
		return title[i+1:]
	}
	return title
}

// BadgeFor looks up the marker for a title's extension. Unknown extensions report false.
func BadgeFor(title string) (Badge, bool) {
	b, ok := badges[strings.ToLower(Extension(title))]
	return b, ok
}
