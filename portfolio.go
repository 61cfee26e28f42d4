package atelier

import "time"

// PortfolioItem is a normalized completed project shown in the portfolio.
type PortfolioItem struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Slug           string    `json:"slug"`
	Description    string    `json:"description"`
	Category       string    `json:"category"`
	Client         string    `json:"client"`
	Location       string    `json:"location"`
	Image          string    `json:"image"`
	Images         []string  `json:"images"`
	Tags           []string  `json:"tags"`
	Featured       bool      `json:"featured"`
	Year           int       `json:"year"`
	CompletionDate time.Time `json:"completionDate"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Validate returns an error if the item cannot be submitted to the backend.
func (p *PortfolioItem) Validate() error {
	if p.Title == "" {
		return Errorf(EINVALID, "portfolio title required")
	}
	if p.Category == "" {
		return Errorf(EINVALID, "portfolio category required")
	}
	return nil
}
