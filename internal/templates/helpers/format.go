package helpers

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDate parses the date forms posts are authored with.
func ParseDate(v string) (time.Time, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DateLabel formats a date string as "Jan 2, 2006". Unparseable input is returned unchanged.
func DateLabel(v string) string {
	t, ok := ParseDate(v)
	if !ok {
		return v
	}
	return t.Format("Jan 2, 2006")
}

// MachineDate returns the YYYY-MM-DD form for a datetime attribute, or "" when v does not parse.
func MachineDate(v string) string {
	t, ok := ParseDate(v)
	if !ok {
		return ""
	}
	return t.Format("2006-01-02")
}

// PostURL returns the detail path of a post.
func PostURL(slug string) string {
	return "/posts/" + url.PathEscape(slug)
}

// SnippetURL returns the page path of a snippet.
func SnippetURL(slug string) string {
	return "/snippets/" + url.PathEscape(slug)
}

// TabURL appends the tab query parameter to base.
func TabURL(base string, index int) string {
	return base + "?tab=" + strconv.Itoa(index)
}
