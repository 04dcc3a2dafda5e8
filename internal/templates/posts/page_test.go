package posts

import (
	"testing"

	"github.com/stretchr/testify/require"

	"finitefield.org/folio/internal/content"
	"finitefield.org/folio/internal/posts"
	"finitefield.org/folio/internal/templates/helpers"
	"finitefield.org/folio/internal/testutil"
)

func TestIndexRendersGroups(t *testing.T) {
	t.Parallel()

	listing := posts.New(0).Group([]content.Post{
		{Slug: "p0", Title: "Zero", Date: "2024-01-02T10:00", Body: "body zero"},
		{Slug: "p1", Title: "One", Date: "2024-01-01T09:00", Body: "body one"},
		{Slug: "p2", Title: "Two", Date: "2024-01-02T11:00", Body: "body two"},
	})

	doc := testutil.RenderHTML(t, Index(PageData{Listing: listing, Body: helpers.Text}))

	title := doc.Find(".page-title")
	require.Equal(t, "// Posts", title.Find(".comment").Text())
	require.Equal(t, "2024-01-02", title.Find("time.date").AttrOr("datetime", ""))

	groups := doc.Find(".date-groups > .posts-ctr")
	require.Equal(t, 2, groups.Length())
	require.Equal(t, "2024-01-02", groups.Eq(0).AttrOr("data-date", ""))
	require.Equal(t, "2024-01-01", groups.Eq(1).AttrOr("data-date", ""))

	require.Equal(t, 0, groups.Eq(0).ChildrenFiltered("time").Length(), "first group has no inline date header")
	require.Equal(t, 1, groups.Eq(1).ChildrenFiltered("time").Length())

	first := groups.Eq(0).Find("article.post")
	require.Equal(t, 2, first.Length())
	require.Equal(t, "Zero", first.Eq(0).Find("h2 [data-link-text]").Text())
	require.Equal(t, "Two", first.Eq(1).Find("h2 [data-link-text]").Text())
	require.Equal(t, "/posts/p0", first.Eq(0).Find("h2 a").AttrOr("href", ""))
	require.Equal(t, "body zero", first.Eq(0).Find(".body").Text())

	featured := doc.Find("h2.title.first")
	require.Equal(t, 1, featured.Length())
	require.Equal(t, "Zero", featured.Find("[data-link-text]").Text())
}

func TestIndexEmpty(t *testing.T) {
	t.Parallel()

	doc := testutil.RenderHTML(t, Index(PageData{Listing: posts.New(0).Group(nil)}))
	require.Equal(t, 0, doc.Find(".page-title time").Length())
	require.Equal(t, 1, doc.Find("p.empty").Length())
}

func TestDetail(t *testing.T) {
	t.Parallel()

	doc := testutil.RenderHTML(t, Detail(DetailData{
		Post: content.Post{Slug: "hello", Title: "Hello", Date: "2024-02-03T08:00:00Z", Tags: []string{"go", "web"}, Body: "text"},
		Body: helpers.Text,
	}))

	require.Equal(t, "Hello", doc.Find("h1.title").Text())
	require.Equal(t, "2024-02-03", doc.Find("time.date").AttrOr("datetime", ""))
	require.Equal(t, 2, doc.Find("li.tag").Length())
	require.Equal(t, "text", doc.Find(".body").Text())
	require.Equal(t, "/posts", doc.Find("footer a").AttrOr("href", ""))
}
