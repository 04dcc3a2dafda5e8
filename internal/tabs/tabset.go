// Package tabs holds the selection state of a tabbed pane viewer.
package tabs

import "github.com/a-h/templ"

// Pane is one tab: a title and opaque content.
type Pane struct {
	Title   string
	Content templ.Component
}

// Title is the render model of one entry in the title strip.
type Title struct {
	Index    int
	Title    string
	Badge    Badge
	HasBadge bool
	Active   bool
}

// View is what a TabSet renders: the full title strip and the active pane's content.
type View struct {
	Titles   []Title
	Selected int
	// Content is nil when the set has no panes.
	Content templ.Component
}

// TabSet tracks which pane of a fixed collection is visible. It is owned by a single
// render and is not safe for concurrent use.
type TabSet struct {
	panes    []Pane
	selected int
}

// Option customises New.
type Option func(*TabSet)

// WithDefaultIndex sets the initially selected pane. Out-of-range values are clamped.
func WithDefaultIndex(i int) Option {
	return func(ts *TabSet) {
		ts.selected = i
	}
}

// New builds a TabSet over panes. The selection starts at 0 unless WithDefaultIndex is given.
func New(panes []Pane, opts ...Option) *TabSet {
	ts := &TabSet{panes: append([]Pane(nil), panes...)}
	for _, opt := range opts {
		opt(ts)
	}
	ts.selected = ts.clamp(ts.selected)
	return ts
}

// Select makes pane i the visible one, clamped to the available panes.
func (ts *TabSet) Select(i int) {
	ts.selected = ts.clamp(i)
}

// Selected returns the index of the visible pane.
func (ts *TabSet) Selected() int { return ts.selected }

// Len returns the number of panes.
func (ts *TabSet) Len() int { return len(ts.panes) }

// Active returns the visible pane. It reports false for an empty set.
func (ts *TabSet) Active() (Pane, bool) {
	if len(ts.panes) == 0 {
		return Pane{}, false
	}
	return ts.panes[ts.selected], true
}

// Titles returns the title strip with badges and the active flag resolved.
func (ts *TabSet) Titles() []Title {
	out := make([]Title, 0, len(ts.panes))
	for i, p := range ts.panes {
		badge, ok := BadgeFor(p.Title)
		out = append(out, Title{
			Index:    i,
			Title:    p.Title,
			Badge:    badge,
			HasBadge: ok,
			Active:   i == ts.selected,
		})
	}
	return out
}

// Render produces the view model for the current selection.
func (ts *TabSet) Render() View {
	view := View{Titles: ts.Titles(), Selected: ts.selected}
	if pane, ok := ts.Active(); ok {
		view.Content = pane.Content
	}
	return view
}

func (ts *TabSet) clamp(i int) int {
	switch {
	case len(ts.panes) == 0, i < 0:
		return 0
	case i >= len(ts.panes):
		return len(ts.panes) - 1
	default:
		return i
	}
}
