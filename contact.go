package atelier

import (
	"net/mail"
	"strings"
	"time"
)

// Contact status values used by the admin area.
const (
	ContactStatusNew      = "new"
	ContactStatusRead     = "read"
	ContactStatusReplied  = "replied"
	ContactStatusArchived = "archived"
)

// Contact is a message submitted through the contact form.
// Rated contacts with a testimonial feed the testimonials section.
type Contact struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Company     string    `json:"company"`
	Subject     string    `json:"subject"`
	Message     string    `json:"message"`
	Status      string    `json:"status"`
	Testimonial string    `json:"testimonial"`
	Rating      int       `json:"rating"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ContactRequest is the payload of the public contact form.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}

// Validate returns an error if the request is missing required fields.
func (r *ContactRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return Errorf(EINVALID, "name required")
	}
	if err := validateEmail(r.Email); err != nil {
		return err
	}
	if strings.TrimSpace(r.Message) == "" {
		return Errorf(EINVALID, "message required")
	}
	return nil
}

// Quote is a request for a project estimate.
type Quote struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	ProjectType string    `json:"projectType"`
	Budget      string    `json:"budget"`
	Timeline    string    `json:"timeline"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// QuoteRequest is the payload of the public quote form.
type QuoteRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	ProjectType string `json:"projectType"`
	Budget      string `json:"budget,omitempty"`
	Timeline    string `json:"timeline,omitempty"`
	Description string `json:"description"`
}

// Validate returns an error if the request is missing required fields.
func (r *QuoteRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return Errorf(EINVALID, "name required")
	}
	if err := validateEmail(r.Email); err != nil {
		return err
	}
	if strings.TrimSpace(r.ProjectType) == "" {
		return Errorf(EINVALID, "project type required")
	}
	if strings.TrimSpace(r.Description) == "" {
		return Errorf(EINVALID, "project description required")
	}
	return nil
}

func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return Errorf(EINVALID, "email required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return Errorf(EINVALID, "invalid email %q", email)
	}
	return nil
}
