package atelier

// Stats are the headline figures shown on the home page.
type Stats struct {
	ProjectsCompleted int `json:"projectsCompleted"`
	HappyClients      int `json:"happyClients"`
	YearsExperience   int `json:"yearsExperience"`
	TeamMembers       int `json:"teamMembers"`
}

// Testimonial is a client quote derived from a rated contact.
type Testimonial struct {
	Name    string `json:"name"`
	Role    string `json:"role"`
	Content string `json:"content"`
	Rating  int    `json:"rating"`
}

// MinTestimonialRating is the lowest rating published as a testimonial.
const MinTestimonialRating = 4

// MaxTestimonials caps the number of testimonials shown at once.
const MaxTestimonials = 6
