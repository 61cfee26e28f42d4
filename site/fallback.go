package site

import (
	"time"

	"github.com/fwojciec/atelier"
)

// Demo content shown whenever the backend is unavailable.

var FallbackBlogPosts = []atelier.BlogPost{
	{
		ID:          "fallback-post-1",
		Title:       "Warm Minimalism: Designing Calm Living Rooms",
		Slug:        "warm-minimalism-living-rooms",
		Excerpt:     "How natural textures, soft neutrals and fewer, better pieces make a living room feel both spare and inviting.",
		Content:     "<p>Warm minimalism keeps the discipline of a minimal room but trades stark white for oatmeal, clay and timber.</p><p>Start with one textured rug, a low sofa in a natural weave and lighting at three heights.</p>",
		Category:    "Interior Tips",
		Tags:        []string{"minimalism", "living room", "materials"},
		Author:      "Studio Team",
		Image:       "/images/blog/warm-minimalism.jpg",
		Featured:    true,
		Published:   true,
		ReadTime:    4,
		PublishedAt: time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC),
		CreatedAt:   time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:          "fallback-post-2",
		Title:       "Choosing Kitchen Worktops That Last",
		Slug:        "choosing-kitchen-worktops",
		Excerpt:     "Quartz, solid wood or terrazzo: a practical comparison of the worktops we specify most often.",
		Content:     "<p>The worktop takes more daily abuse than any other surface in the home.</p><p>Quartz resists stains, oiled oak ages well and terrazzo hides crumbs.</p>",
		Category:    "Kitchens",
		Tags:        []string{"kitchen", "materials"},
		Author:      "Studio Team",
		Image:       "/images/blog/kitchen-worktops.jpg",
		Published:   true,
		ReadTime:    3,
		PublishedAt: time.Date(2024, time.February, 2, 0, 0, 0, 0, time.UTC),
		CreatedAt:   time.Date(2024, time.January, 30, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:          "fallback-post-3",
		Title:       "Lighting a Small Apartment",
		Slug:        "lighting-small-apartment",
		Excerpt:     "Layered lighting makes compact rooms feel larger. Here is the plan we use in studio flats.",
		Content:     "<p>Ambient, task and accent light each have a job.</p><p>In a small flat, wall lights free up floor space and mirrors double every lamp.</p>",
		Category:    "Lighting",
		Tags:        []string{"lighting", "small spaces"},
		Author:      "Studio Team",
		Image:       "/images/blog/small-apartment-lighting.jpg",
		Published:   true,
		ReadTime:    3,
		PublishedAt: time.Date(2023, time.November, 20, 0, 0, 0, 0, time.UTC),
		CreatedAt:   time.Date(2023, time.November, 18, 0, 0, 0, 0, time.UTC),
	},
}

var FallbackPortfolio = []atelier.PortfolioItem{
	{
		ID:             "fallback-project-1",
		Title:          "Riverside Loft",
		Slug:           "riverside-loft",
		Description:    "An open-plan loft reworked around a new oak kitchen and a reading corner facing the river.",
		Category:       "Residential",
		Client:         "Private client",
		Location:       "Riverside",
		Image:          "/images/portfolio/riverside-loft.jpg",
		Images:         []string{"/images/portfolio/riverside-loft.jpg"},
		Tags:           []string{"loft", "kitchen"},
		Featured:       true,
		Year:           2023,
		CompletionDate: time.Date(2023, time.September, 1, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:             "fallback-project-2",
		Title:          "Harbour Café",
		Slug:           "harbour-cafe",
		Description:    "A seaside café with terrazzo counters, cane seating and a palette taken from the harbour walls.",
		Category:       "Commercial",
		Client:         "Harbour Café",
		Location:       "Old Harbour",
		Image:          "/images/portfolio/harbour-cafe.jpg",
		Images:         []string{"/images/portfolio/harbour-cafe.jpg"},
		Tags:           []string{"hospitality"},
		Featured:       true,
		Year:           2022,
		CompletionDate: time.Date(2022, time.May, 15, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:             "fallback-project-3",
		Title:          "Garden Studio",
		Slug:           "garden-studio",
		Description:    "A compact timber garden office with built-in storage and a daybed.",
		Category:       "Residential",
		Client:         "Private client",
		Location:       "Hillside",
		Image:          "/images/portfolio/garden-studio.jpg",
		Images:         []string{"/images/portfolio/garden-studio.jpg"},
		Tags:           []string{"small spaces", "joinery"},
		Year:           2021,
		CompletionDate: time.Date(2021, time.August, 30, 0, 0, 0, 0, time.UTC),
	},
}

var FallbackStats = atelier.Stats{
	ProjectsCompleted: 150,
	HappyClients:      120,
	YearsExperience:   12,
	TeamMembers:       8,
}

var FallbackTestimonials = []atelier.Testimonial{
	{
		Name:    "Anna Kowalski",
		Role:    "Homeowner",
		Content: "They turned a dark flat into the brightest room we have ever lived in.",
		Rating:  5,
	},
	{
		Name:    "Marco Bianchi",
		Role:    "Harbour Café",
		Content: "Our customers stay longer since the redesign. Calm, practical and on budget.",
		Rating:  5,
	},
	{
		Name:    "Claire Dubois",
		Role:    "Client",
		Content: "Clear plans, honest advice and beautiful joinery.",
		Rating:  4,
	},
}

var FallbackSettings = atelier.Settings{
	SiteName:      "Atelier Interiors",
	Tagline:       "Calm, crafted interiors",
	Email:         "hello@atelier.example",
	Phone:         "+1 555 0100",
	Address:       "12 Studio Lane",
	BusinessHours: "Mon-Fri 9:00-18:00",
	Social: map[string]string{
		"instagram": "https://instagram.com/atelier.example",
		"pinterest": "https://pinterest.com/atelier.example",
	},
}

var FallbackAdminSettings = atelier.Settings{
	SiteName:          FallbackSettings.SiteName,
	Tagline:           FallbackSettings.Tagline,
	Email:             FallbackSettings.Email,
	Phone:             FallbackSettings.Phone,
	Address:           FallbackSettings.Address,
	BusinessHours:     FallbackSettings.BusinessHours,
	Social:            FallbackSettings.Social,
	NotificationEmail: FallbackSettings.Email,
	SEO: atelier.SEOSettings{
		MetaTitle:       "Atelier Interiors | Interior Design Studio",
		MetaDescription: "Residential and commercial interior design.",
		Keywords:        "interior design, kitchens, lighting",
	},
}

// FallbackBlogPost returns the demo post with the given slug, or nil.
func FallbackBlogPost(slug string) *atelier.BlogPost {
	for i := range FallbackBlogPosts {
		if FallbackBlogPosts[i].Slug == slug {
			p := FallbackBlogPosts[i]
			return &p
		}
	}
	return nil
}

// FallbackPortfolioItem returns the demo item with the given id or slug, or nil.
func FallbackPortfolioItem(id string) *atelier.PortfolioItem {
	for i := range FallbackPortfolio {
		if FallbackPortfolio[i].ID == id || FallbackPortfolio[i].Slug == id {
			item := FallbackPortfolio[i]
			return &item
		}
	}
	return nil
}
