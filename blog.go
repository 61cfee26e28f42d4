package atelier

import "time"

// BlogPost is a normalized article from the studio blog.
type BlogPost struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	Author      string    `json:"author"`
	Image       string    `json:"image"`
	Featured    bool      `json:"featured"`
	Published   bool      `json:"published"`
	Views       int       `json:"views"`
	ReadTime    int       `json:"readTime"`
	PublishedAt time.Time `json:"publishedAt"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the post cannot be submitted to the backend.
func (p *BlogPost) Validate() error {
	if p.Title == "" {
		return Errorf(EINVALID, "blog post title required")
	}
	if p.Content == "" {
		return Errorf(EINVALID, "blog post content required")
	}
	return nil
}

// IsPublic reports whether the post is visible on the public site: it is
// flagged as published or carries a publication date.
func (p *BlogPost) IsPublic() bool {
	return p.Published || !p.PublishedAt.IsZero()
}
