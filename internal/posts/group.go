// Package posts turns an ordered list of posts into the date-grouped listing shown on /posts.
package posts

import (
	"strings"

	"finitefield.org/folio/internal/content"
)

// DefaultLimit is how many posts take part in the listing when no limit is configured.
// It is 21, one more than the "latest 20" the page reads as. The 21st post is kept.
const DefaultLimit = 21

// Listing is the grouped view model for the posts page.
type Listing struct {
	// LatestDate is the key of the first group, shown once next to the page title.
	LatestDate string
	Groups     []Group
}

// Group holds every post sharing one calendar date, in input order.
type Group struct {
	Date string
	// ShowHeader is false for the first group, whose date is already in the page title.
	ShowHeader bool
	Entries    []Entry
}

// Entry is one post inside a group.
type Entry struct {
	Post content.Post
	// Featured marks the first post of the first group.
	Featured bool
}

// Grouper groups posts by date after applying the display cap.
type Grouper struct {
	Limit int
}

// New returns a Grouper with the given cap. Non-positive limits use DefaultLimit.
func New(limit int) Grouper {
	return Grouper{Limit: limit}
}

// DateKey returns the date part of an ISO-8601 timestamp, i.e. everything before the
// first 'T'. Strings without a 'T' are returned unchanged.
func DateKey(ts string) string {
	key, _, _ := strings.Cut(ts, "T")
	return key
}

// Group truncates posts to the limit and groups the remainder by DateKey. Groups appear in
// the order their date is first seen; posts keep their relative order inside each group.
func (g Grouper) Group(posts []content.Post) Listing {
	limit := g.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if len(posts) > limit {
		posts = posts[:limit]
	}

	var (
		order []string
		index = make(map[string]int, len(posts))
	)
	buckets := make([][]content.Post, 0, len(posts))
	for _, p := range posts {
		key := DateKey(p.Date)
		i, ok := index[key]
		if !ok {
			i = len(order)
			index[key] = i
			order = append(order, key)
			buckets = append(buckets, nil)
		}
		buckets[i] = append(buckets[i], p)
	}

	listing := Listing{Groups: make([]Group, 0, len(order))}
	for gi, key := range order {
		group := Group{
			Date:       key,
			ShowHeader: gi != 0,
			Entries:    make([]Entry, 0, len(buckets[gi])),
		}
		for pi, p := range buckets[gi] {
			group.Entries = append(group.Entries, Entry{
				Post:     p,
				Featured: gi == 0 && pi == 0,
			})
		}
		listing.Groups = append(listing.Groups, group)
	}
	if len(order) > 0 {
		listing.LatestDate = order[0]
	}
	return listing
}

// Dates returns the distinct date keys in group order.
func (l Listing) Dates() []string {
	out := make([]string, 0, len(l.Groups))
	for _, g := range l.Groups {
		out = append(out, g.Date)
	}
	return out
}

// Posts flattens the listing back into a post slice, group by group.
func (l Listing) Posts() []content.Post {
	var out []content.Post
	for _, g := range l.Groups {
		for _, e := range g.Entries {
			out = append(out, e.Post)
		}
	}
	return out
}

// Len returns the number of posts in the listing.
func (l Listing) Len() int {
	n := 0
	for _, g := range l.Groups {
		n += len(g.Entries)
	}
	return n
}
