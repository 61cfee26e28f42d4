package gjson_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/atelier"
	"github.com/fwojciec/atelier/gjson"
	"github.com/fwojciec/atelier/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformer_Blogs(t *testing.T) {
	t.Parallel()

	t.Run("returns empty list for missing or empty input", func(t *testing.T) {
		t.Parallel()

		tr := gjson.NewTransformer(nil)

		for _, raw := range []json.RawMessage{nil, json.RawMessage(`{}`), json.RawMessage(`null`), json.RawMessage(`"x"`)} {
			posts := tr.Blogs(raw)
			assert.NotNil(t, posts)
			assert.Empty(t, posts)
		}
	})

	t.Run("maps nested blog list", func(t *testing.T) {
		t.Parallel()

		raw := json.RawMessage(`{"success":true,"data":{"blogs":[{
			"_id":"b1",
			"title":"Warm Minimalism",
			"slug":"warm-minimalism",
			"excerpt":"Soft textures.",
			"content":"<p>Soft textures.</p>",
			"category":{"name":"Trends"},
			"tags":["minimal","",{"name":"warm"}],
			"author":{"name":"Mia"},
			"featuredImage":{"url":"/img/warm.jpg"},
			"featured":true,
			"status":"published",
			"views":"42",
			"readTime":4,
			"publishedAt":"2024-03-01T10:00:00.000Z",
			"createdAt":"2024-02-27T09:00:00Z"
		}]}}`)

		posts := gjson.NewTransformer(nil).Blogs(raw)

		require.Len(t, posts, 1)
		p := posts[0]
		assert.Equal(t, "b1", p.ID)
		assert.Equal(t, "Warm Minimalism", p.Title)
		assert.Equal(t, "warm-minimalism", p.Slug)
		assert.Equal(t, "Trends", p.Category)
		assert.Equal(t, []string{"minimal", "warm"}, p.Tags)
		assert.Equal(t, "Mia", p.Author)
		assert.Equal(t, "/img/warm.jpg", p.Image)
		assert.True(t, p.Featured)
		assert.True(t, p.Published)
		assert.Equal(t, 42, p.Views)
		assert.Equal(t, 4, p.ReadTime)
		assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), p.PublishedAt)
	})

	t.Run("defaults missing optional fields", func(t *testing.T) {
		t.Parallel()

		posts := gjson.NewTransformer(nil).Blogs(json.RawMessage(`{"data":[{"id":7,"title":"Untitled"}]}`))

		require.Len(t, posts, 1)
		p := posts[0]
		assert.Equal(t, "7", p.ID)
		assert.Equal(t, []string{}, p.Tags)
		assert.Zero(t, p.Views)
		assert.False(t, p.Featured)
		assert.False(t, p.Published)
		assert.True(t, p.CreatedAt.IsZero())
	})

	t.Run("derives excerpt and read time from content", func(t *testing.T) {
		t.Parallel()

		text := &mock.TextExtractor{
			TextFn: func(html string) string {
				return strings.Repeat("word ", 450)
			},
		}

		posts := gjson.NewTransformer(text).Blogs(json.RawMessage(`[{"id":"1","content":"<p>long</p>"}]`))

		require.Len(t, posts, 1)
		assert.Equal(t, 3, posts[0].ReadTime)
		assert.LessOrEqual(t, len([]rune(posts[0].Excerpt)), atelier.ExcerptLength+1)
		assert.True(t, strings.HasSuffix(posts[0].Excerpt, "…"))
	})
}

func TestTransformer_BlogPage(t *testing.T) {
	t.Parallel()

	page := gjson.NewTransformer(nil).BlogPage(json.RawMessage(`{"data":{"items":[{"id":"1"},{"id":"2"}],"pagination":{"page":1,"limit":2,"total":4,"pages":2}}}`))

	assert.Len(t, page.Items, 2)
	assert.Equal(t, atelier.Pagination{Page: 1, Limit: 2, Total: 4, Pages: 2}, page.Pagination)
}

func TestTransformer_Blog(t *testing.T) {
	t.Parallel()

	t.Run("returns post from data.blog", func(t *testing.T) {
		t.Parallel()

		post := gjson.NewTransformer(nil).Blog(json.RawMessage(`{"data":{"blog":{"_id":"b1","slug":"s"}}}`))

		require.NotNil(t, post)
		assert.Equal(t, "b1", post.ID)
	})

	t.Run("returns nil without post", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, gjson.NewTransformer(nil).Blog(json.RawMessage(`{}`)))
	})
}

func TestTransformer_SinglePortfolio(t *testing.T) {
	t.Parallel()

	t.Run("returns nil for empty object", func(t *testing.T) {
		t.Parallel()

		tr := gjson.NewTransformer(nil)

		assert.Nil(t, tr.SinglePortfolio(json.RawMessage(`{}`)))
		assert.Nil(t, tr.SinglePortfolio(nil))
		assert.Nil(t, tr.SinglePortfolio(json.RawMessage(`{"success":true,"data":null}`)))
	})

	t.Run("derives year from completion date", func(t *testing.T) {
		t.Parallel()

		item := gjson.NewTransformer(nil).SinglePortfolio(json.RawMessage(`{"data":{"portfolio":{
			"_id":"p1",
			"title":"Harbour Loft",
			"images":["/a.jpg",{"url":"/b.jpg"}],
			"completionDate":"2022-11-30",
			"createdAt":"2023-01-05T00:00:00Z"
		}}}`))

		require.NotNil(t, item)
		assert.Equal(t, "p1", item.ID)
		assert.Equal(t, 2022, item.Year)
		assert.Equal(t, []string{"/a.jpg", "/b.jpg"}, item.Images)
		assert.Equal(t, "/a.jpg", item.Image)
	})

	t.Run("falls back to creation year", func(t *testing.T) {
		t.Parallel()

		item := gjson.NewTransformer(nil).SinglePortfolio(json.RawMessage(`{"id":"p2","createdAt":"2021-06-01T00:00:00Z"}`))

		require.NotNil(t, item)
		assert.Equal(t, 2021, item.Year)
	})

	t.Run("year is zero without dates", func(t *testing.T) {
		t.Parallel()

		item := gjson.NewTransformer(nil).SinglePortfolio(json.RawMessage(`{"id":"p3","completionDate":"soon"}`))

		require.NotNil(t, item)
		assert.Zero(t, item.Year)
		assert.Equal(t, []string{}, item.Images)
	})
}

func TestTransformer_Portfolio(t *testing.T) {
	t.Parallel()

	items := gjson.NewTransformer(nil).Portfolio(json.RawMessage(`{"data":{"portfolio":[{"_id":"1","coverImage":"/c.jpg"},{"_id":"2"}]}}`))

	require.Len(t, items, 2)
	assert.Equal(t, "/c.jpg", items[0].Image)
	assert.Equal(t, "2", items[1].ID)
}

func TestTransformer_Stats(t *testing.T) {
	t.Parallel()

	t.Run("maps alternative field names", func(t *testing.T) {
		t.Parallel()

		stats := gjson.NewTransformer(nil).Stats(json.RawMessage(`{"data":{"totalProjects":150,"totalClients":"120","yearsExperience":12}}`))

		assert.Equal(t, atelier.Stats{ProjectsCompleted: 150, HappyClients: 120, YearsExperience: 12}, stats)
	})

	t.Run("returns zero stats for empty input", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, atelier.Stats{}, gjson.NewTransformer(nil).Stats(nil))
	})
}

func TestTransformer_Testimonials(t *testing.T) {
	t.Parallel()

	t.Run("keeps rated contacts with testimonial in order", func(t *testing.T) {
		t.Parallel()

		contacts := []map[string]any{
			{"name": "A", "rating": 5, "testimonial": "Wonderful", "company": "Acme"},
			{"name": "B", "rating": 3, "testimonial": "Okay"},
			{"name": "C", "rating": 5, "testimonial": ""},
			{"name": "D", "rating": 4, "testimonial": "Great", "role": "Homeowner"},
			{"name": "E"},
			{"name": "F", "rating": 2},
			{"name": "G", "rating": 5, "testimonial": "   "},
			{"name": "H", "rating": 4, "testimonial": "Lovely"},
			{"name": "I", "testimonial": "No rating"},
			{"name": "J", "rating": 1, "testimonial": "Bad"},
		}
		raw, err := json.Marshal(map[string]any{"data": map[string]any{"contacts": contacts}})
		require.NoError(t, err)

		got := gjson.NewTransformer(nil).Testimonials(raw)

		assert.Equal(t, []atelier.Testimonial{
			{Name: "A", Role: "Acme", Content: "Wonderful", Rating: 5},
			{Name: "D", Role: "Homeowner", Content: "Great", Rating: 4},
			{Name: "H", Role: "Client", Content: "Lovely", Rating: 4},
		}, got)
	})

	t.Run("caps result at six", func(t *testing.T) {
		t.Parallel()

		var contacts []map[string]any
		for i := range 10 {
			contacts = append(contacts, map[string]any{"name": fmt.Sprintf("c%d", i), "rating": 5, "testimonial": "ok"})
		}
		raw, err := json.Marshal(contacts)
		require.NoError(t, err)

		got := gjson.NewTransformer(nil).Testimonials(raw)

		require.Len(t, got, atelier.MaxTestimonials)
		assert.Equal(t, "c0", got[0].Name)
		assert.Equal(t, "c5", got[5].Name)
	})

	t.Run("returns empty list for empty input", func(t *testing.T) {
		t.Parallel()

		got := gjson.NewTransformer(nil).Testimonials(json.RawMessage(`{}`))

		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestTransformer_Settings(t *testing.T) {
	t.Parallel()

	s := gjson.NewTransformer(nil).Settings(json.RawMessage(`{"data":{"settings":{
		"siteName":"Atelier",
		"contactEmail":"hello@atelier.test",
		"social":{"instagram":"https://instagram.com/atelier","pinterest":""},
		"maintenanceMode":true,
		"seo":{"metaTitle":"Atelier Interiors"}
	}}}`))

	assert.Equal(t, "Atelier", s.SiteName)
	assert.Equal(t, "hello@atelier.test", s.Email)
	assert.Equal(t, map[string]string{"instagram": "https://instagram.com/atelier"}, s.Social)
	assert.True(t, s.MaintenanceMode)
	assert.Equal(t, "Atelier Interiors", s.SEO.MetaTitle)
}

func TestTransformer_ContactPage(t *testing.T) {
	t.Parallel()

	page := gjson.NewTransformer(nil).ContactPage(json.RawMessage(`{"data":{"contacts":[{"_id":"c1","name":"Ada","status":"new","rating":5}],"pagination":{"page":1,"limit":10,"total":1,"pages":1}}}`))

	require.Len(t, page.Items, 1)
	assert.Equal(t, "c1", page.Items[0].ID)
	assert.Equal(t, atelier.ContactStatusNew, page.Items[0].Status)
	assert.Equal(t, 1, page.Pagination.Total)
}

func TestTransformer_QuotePage(t *testing.T) {
	t.Parallel()

	page := gjson.NewTransformer(nil).QuotePage(json.RawMessage(`{"data":{"quotes":[{"_id":"q1","projectType":"kitchen","message":"Full remodel"}]}}`))

	require.Len(t, page.Items, 1)
	assert.Equal(t, "kitchen", page.Items[0].ProjectType)
	assert.Equal(t, "Full remodel", page.Items[0].Description)
}
