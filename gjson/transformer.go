package gjson

import (
	"encoding/json"
	"strings"

	"github.com/fwojciec/atelier"
	"github.com/samber/lo"
	"github.com/tidwall/gjson"
)

// Ensure Transformer implements atelier.Transformer at compile time.
var _ atelier.Transformer = (*Transformer)(nil)

// Transformer maps backend responses onto domain types.
type Transformer struct {
	// Text derives blog excerpts and reading times from post content.
	// Optional; without it posts keep whatever the backend sent.
	Text atelier.TextExtractor
}

// NewTransformer returns a Transformer using text to derive missing blog fields.
func NewTransformer(text atelier.TextExtractor) *Transformer {
	return &Transformer{Text: text}
}

var (
	blogListKeys      = []string{"blogs", "posts", "items"}
	blogItemKeys      = []string{"blog", "post"}
	portfolioListKeys = []string{"portfolio", "projects", "items"}
	portfolioItemKeys = []string{"portfolio", "project", "item"}
	contactListKeys   = []string{"contacts", "testimonials", "items"}
	quoteListKeys     = []string{"quotes", "items"}
)

// Blogs returns the posts of a list response. Never nil.
func (t *Transformer) Blogs(raw json.RawMessage) []atelier.BlogPost {
	return lo.Map(Parse(raw).List(blogListKeys...), func(v gjson.Result, _ int) atelier.BlogPost {
		return t.blogPost(v)
	})
}

// BlogPage returns the posts of a list response with its pagination.
func (t *Transformer) BlogPage(raw json.RawMessage) atelier.Page[atelier.BlogPost] {
	env := Parse(raw)
	return atelier.Page[atelier.BlogPost]{
		Items: lo.Map(env.List(blogListKeys...), func(v gjson.Result, _ int) atelier.BlogPost {
			return t.blogPost(v)
		}),
		Pagination: env.Pagination,
	}
}

// Blog returns the post of a single-item response, or nil.
func (t *Transformer) Blog(raw json.RawMessage) *atelier.BlogPost {
	v, ok := Parse(raw).Item(blogItemKeys...)
	if !ok {
		return nil
	}
	post := t.blogPost(v)
	return &post
}

func (t *Transformer) blogPost(v gjson.Result) atelier.BlogPost {
	post := atelier.BlogPost{
		ID:          id(v),
		Title:       str(v, "title"),
		Slug:        str(v, "slug"),
		Excerpt:     str(v, "excerpt", "summary"),
		Content:     str(v, "content"),
		Category:    str(v, "category"),
		Tags:        strs(v, "tags"),
		Author:      str(v, "author"),
		Image:       str(v, "featuredImage", "image", "coverImage"),
		Featured:    boolean(v, "featured"),
		Views:       num(v, "views"),
		ReadTime:    num(v, "readTime", "readingTime"),
		PublishedAt: date(v, "publishedAt"),
		CreatedAt:   date(v, "createdAt"),
	}
	if p := v.Get("published"); p.Exists() {
		post.Published = p.Bool()
	} else {
		post.Published = str(v, "status") == "published"
	}

	if t.Text != nil && post.Content != "" && (post.Excerpt == "" || post.ReadTime == 0) {
		text := t.Text.Text(post.Content)
		if post.Excerpt == "" {
			post.Excerpt = atelier.Excerpt(text, atelier.ExcerptLength)
		}
		if post.ReadTime == 0 {
			post.ReadTime = atelier.ReadingMinutes(text)
		}
	}
	return post
}

// Portfolio returns the items of a list response. Never nil.
func (t *Transformer) Portfolio(raw json.RawMessage) []atelier.PortfolioItem {
	return lo.Map(Parse(raw).List(portfolioListKeys...), func(v gjson.Result, _ int) atelier.PortfolioItem {
		return portfolioItem(v)
	})
}

// PortfolioPage returns the items of a list response with its pagination.
func (t *Transformer) PortfolioPage(raw json.RawMessage) atelier.Page[atelier.PortfolioItem] {
	env := Parse(raw)
	return atelier.Page[atelier.PortfolioItem]{
		Items: lo.Map(env.List(portfolioListKeys...), func(v gjson.Result, _ int) atelier.PortfolioItem {
			return portfolioItem(v)
		}),
		Pagination: env.Pagination,
	}
}

// SinglePortfolio returns the item of a single-item response, or nil.
func (t *Transformer) SinglePortfolio(raw json.RawMessage) *atelier.PortfolioItem {
	v, ok := Parse(raw).Item(portfolioItemKeys...)
	if !ok {
		return nil
	}
	item := portfolioItem(v)
	return &item
}

func portfolioItem(v gjson.Result) atelier.PortfolioItem {
	item := atelier.PortfolioItem{
		ID:             id(v),
		Title:          str(v, "title"),
		Slug:           str(v, "slug"),
		Description:    str(v, "description"),
		Category:       str(v, "category"),
		Client:         str(v, "client", "clientName"),
		Location:       str(v, "location"),
		Images:         strs(v, "images"),
		Tags:           strs(v, "tags"),
		Featured:       boolean(v, "featured"),
		CompletionDate: date(v, "completionDate", "completedAt"),
		CreatedAt:      date(v, "createdAt"),
	}

	item.Image = str(v, "coverImage", "image", "featuredImage")
	if item.Image == "" && len(item.Images) > 0 {
		item.Image = item.Images[0]
	}

	switch {
	case !item.CompletionDate.IsZero():
		item.Year = item.CompletionDate.Year()
	case !item.CreatedAt.IsZero():
		item.Year = item.CreatedAt.Year()
	}
	return item
}

// Stats returns the home page figures. Missing figures are 0.
func (t *Transformer) Stats(raw json.RawMessage) atelier.Stats {
	v := Parse(raw).Object("stats")
	return atelier.Stats{
		ProjectsCompleted: num(v, "projectsCompleted", "completedProjects", "totalProjects", "projects"),
		HappyClients:      num(v, "happyClients", "totalClients", "clients"),
		YearsExperience:   num(v, "yearsExperience", "experience"),
		TeamMembers:       num(v, "teamMembers", "team"),
	}
}

// Testimonials returns testimonials from a contact list: only contacts with
// a testimonial and a rating of at least MinTestimonialRating, in order,
// capped at MaxTestimonials. Never nil.
func (t *Transformer) Testimonials(raw json.RawMessage) []atelier.Testimonial {
	rated := lo.Filter(Parse(raw).List(contactListKeys...), func(v gjson.Result, _ int) bool {
		return strings.TrimSpace(str(v, "testimonial")) != "" && num(v, "rating") >= atelier.MinTestimonialRating
	})
	rated = lo.Subset(rated, 0, atelier.MaxTestimonials)

	return lo.Map(rated, func(v gjson.Result, _ int) atelier.Testimonial {
		role := str(v, "role", "company")
		if role == "" {
			role = "Client"
		}
		return atelier.Testimonial{
			Name:    str(v, "name"),
			Role:    role,
			Content: str(v, "testimonial"),
			Rating:  num(v, "rating"),
		}
	})
}

// Settings returns site settings. Social is never nil.
func (t *Transformer) Settings(raw json.RawMessage) atelier.Settings {
	v := Parse(raw).Object("settings")

	social := map[string]string{}
	v.Get("social").ForEach(func(key, value gjson.Result) bool {
		if s := value.String(); s != "" {
			social[key.String()] = s
		}
		return true
	})

	return atelier.Settings{
		SiteName:          str(v, "siteName", "name"),
		Tagline:           str(v, "tagline"),
		Email:             str(v, "email", "contactEmail"),
		Phone:             str(v, "phone", "contactPhone"),
		Address:           str(v, "address"),
		BusinessHours:     str(v, "businessHours"),
		Social:            social,
		MaintenanceMode:   boolean(v, "maintenanceMode"),
		NotificationEmail: str(v, "notificationEmail"),
		SEO: atelier.SEOSettings{
			MetaTitle:       str(v, "seo.metaTitle"),
			MetaDescription: str(v, "seo.metaDescription"),
			Keywords:        str(v, "seo.keywords"),
		},
	}
}

// ContactPage returns the contacts of an admin list response.
func (t *Transformer) ContactPage(raw json.RawMessage) atelier.Page[atelier.Contact] {
	env := Parse(raw)
	return atelier.Page[atelier.Contact]{
		Items: lo.Map(env.List(contactListKeys...), func(v gjson.Result, _ int) atelier.Contact {
			return atelier.Contact{
				ID:          id(v),
				Name:        str(v, "name"),
				Email:       str(v, "email"),
				Phone:       str(v, "phone"),
				Company:     str(v, "company"),
				Subject:     str(v, "subject"),
				Message:     str(v, "message"),
				Status:      str(v, "status"),
				Testimonial: str(v, "testimonial"),
				Rating:      num(v, "rating"),
				CreatedAt:   date(v, "createdAt"),
			}
		}),
		Pagination: env.Pagination,
	}
}

// QuotePage returns the quotes of an admin list response.
func (t *Transformer) QuotePage(raw json.RawMessage) atelier.Page[atelier.Quote] {
	env := Parse(raw)
	return atelier.Page[atelier.Quote]{
		Items: lo.Map(env.List(quoteListKeys...), func(v gjson.Result, _ int) atelier.Quote {
			return atelier.Quote{
				ID:          id(v),
				Name:        str(v, "name"),
				Email:       str(v, "email"),
				Phone:       str(v, "phone"),
				ProjectType: str(v, "projectType"),
				Budget:      str(v, "budget"),
				Timeline:    str(v, "timeline"),
				Description: str(v, "description", "message"),
				Status:      str(v, "status"),
				CreatedAt:   date(v, "createdAt"),
			}
		}),
		Pagination: env.Pagination,
	}
}
