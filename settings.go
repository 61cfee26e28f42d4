package atelier

// Settings holds site-wide configuration managed from the admin area.
// The public endpoint fills the contact and social fields; the admin
// endpoint additionally fills maintenance, notification and SEO fields.
type Settings struct {
	SiteName      string            `json:"siteName"`
	Tagline       string            `json:"tagline"`
	Email         string            `json:"email"`
	Phone         string            `json:"phone"`
	Address       string            `json:"address"`
	BusinessHours string            `json:"businessHours"`
	Social        map[string]string `json:"social"`

	MaintenanceMode   bool        `json:"maintenanceMode"`
	NotificationEmail string      `json:"notificationEmail"`
	SEO               SEOSettings `json:"seo"`
}

// SEOSettings holds default meta tags.
type SEOSettings struct {
	MetaTitle       string `json:"metaTitle"`
	MetaDescription string `json:"metaDescription"`
	Keywords        string `json:"keywords"`
}
