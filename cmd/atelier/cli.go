package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/atelier"
	"github.com/fwojciec/atelier/site"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Config    *Config
	Logger    *slog.Logger
	API       atelier.API
	Loader    *site.Loader
	Converter atelier.Converter
	Sitemap   atelier.SitemapEncoder

	// Exporter opens a post writer committing to dir. source is recorded
	// in each post's frontmatter.
	Exporter func(dir, source string) atelier.PostWriter
}

// Globals are flags accepted by every command.
type Globals struct {
	Config  string `help:"Config file path" env:"ATELIER_CONFIG"`
	APIURL  string `name:"api-url" help:"Backend API base URL" env:"ATELIER_API_URL"`
	SiteURL string `name:"site-url" help:"Public site URL used for links" env:"ATELIER_SITE_URL"`
	DB      string `name:"db" help:"Credentials database path" env:"ATELIER_DB"`
	NoRetry bool   `name:"no-retry" help:"Show demo data immediately when the backend fails"`
	Verbose bool   `short:"v" help:"Enable debug logging"`
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Globals

	Home      HomeCmd      `cmd:"" help:"Show home page highlights"`
	Blog      BlogCmd      `cmd:"" help:"Browse and export blog posts"`
	Portfolio PortfolioCmd `cmd:"" help:"Browse portfolio projects"`
	Settings  SettingsCmd  `cmd:"" help:"Show site settings"`
	Contact   ContactCmd   `cmd:"" help:"Send a message through the contact form"`
	Quote     QuoteCmd     `cmd:"" help:"Request a project quote"`
	Contacts  ContactsCmd  `cmd:"" help:"Manage contact submissions (admin)"`
	Quotes    QuotesCmd    `cmd:"" help:"Manage quote requests (admin)"`
	Login     LoginCmd     `cmd:"" help:"Log in as an admin user"`
	Logout    LogoutCmd    `cmd:"" help:"Log out and forget the stored token"`
	Upload    UploadCmd    `cmd:"" help:"Upload an image (admin)"`
	Sitemap   SitemapCmd   `cmd:"" help:"Generate sitemap.xml"`
}

// HomeCmd is the "home" subcommand.
type HomeCmd struct{}

// BlogCmd groups the blog subcommands.
type BlogCmd struct {
	List   BlogListCmd   `cmd:"" help:"List blog posts"`
	Show   BlogShowCmd   `cmd:"" help:"Show a blog post"`
	Export BlogExportCmd `cmd:"" help:"Export published posts as Markdown files"`
}

// BlogListCmd is the "blog list" subcommand.
type BlogListCmd struct {
	Page     int    `short:"p" default:"1" help:"Page number"`
	Limit    int    `short:"l" default:"10" help:"Posts per page"`
	Category string `short:"c" help:"Filter by category"`
	Search   string `short:"s" help:"Filter by search term"`
}

// BlogShowCmd is the "blog show" subcommand.
type BlogShowCmd struct {
	Slug     string `arg:"" help:"Post slug"`
	Markdown bool   `short:"m" help:"Render the full post as Markdown"`
}

// BlogExportCmd is the "blog export" subcommand.
type BlogExportCmd struct {
	Dir string `short:"o" default:"posts" help:"Output directory"`
}

// PortfolioCmd groups the portfolio subcommands.
type PortfolioCmd struct {
	List PortfolioListCmd `cmd:"" help:"List portfolio projects"`
	Show PortfolioShowCmd `cmd:"" help:"Show a portfolio project"`
}

// PortfolioListCmd is the "portfolio list" subcommand.
type PortfolioListCmd struct {
	Page     int    `short:"p" default:"1" help:"Page number"`
	Limit    int    `short:"l" default:"10" help:"Projects per page"`
	Category string `short:"c" help:"Filter by category"`
	Featured bool   `short:"f" help:"Only featured projects"`
}

// PortfolioShowCmd is the "portfolio show" subcommand.
type PortfolioShowCmd struct {
	ID string `arg:"" help:"Project id or slug"`
}

// SettingsCmd is the "settings" subcommand.
type SettingsCmd struct {
	Admin bool `help:"Show admin settings (requires login)"`
}

// ContactCmd groups the contact form subcommands.
type ContactCmd struct {
	Submit ContactSubmitCmd `cmd:"" help:"Submit the contact form"`
}

// ContactSubmitCmd is the "contact submit" subcommand.
type ContactSubmitCmd struct {
	Name    string `required:"" help:"Your name"`
	Email   string `required:"" help:"Your email address"`
	Phone   string `help:"Phone number"`
	Subject string `help:"Subject"`
	Message string `required:"" help:"Message"`
}

// QuoteCmd groups the quote form subcommands.
type QuoteCmd struct {
	Submit QuoteSubmitCmd `cmd:"" help:"Submit a quote request"`
}

// QuoteSubmitCmd is the "quote submit" subcommand.
type QuoteSubmitCmd struct {
	Name        string `required:"" help:"Your name"`
	Email       string `required:"" help:"Your email address"`
	Phone       string `help:"Phone number"`
	Type        string `name:"type" required:"" help:"Project type, e.g. residential or commercial"`
	Budget      string `help:"Budget range"`
	Timeline    string `help:"Desired timeline"`
	Description string `required:"" help:"Project description"`
}

// ContactsCmd groups the admin contact subcommands.
type ContactsCmd struct {
	List   ContactsListCmd   `cmd:"" help:"List contact submissions"`
	Status ContactsStatusCmd `cmd:"" help:"Change the status of a submission"`
}

// ContactsListCmd is the "contacts list" subcommand.
type ContactsListCmd struct {
	Page   int    `short:"p" default:"1" help:"Page number"`
	Limit  int    `short:"l" default:"10" help:"Submissions per page"`
	Status string `short:"s" help:"Filter by status"`
}

// ContactsStatusCmd is the "contacts status" subcommand.
type ContactsStatusCmd struct {
	ID     string `arg:"" help:"Submission id"`
	Status string `arg:"" enum:"new,read,replied,archived" help:"New status (new, read, replied, archived)"`
}

// QuotesCmd groups the admin quote subcommands.
type QuotesCmd struct {
	List   QuotesListCmd   `cmd:"" help:"List quote requests"`
	Status QuotesStatusCmd `cmd:"" help:"Change the status of a quote request"`
}

// QuotesListCmd is the "quotes list" subcommand.
type QuotesListCmd struct {
	Page   int    `short:"p" default:"1" help:"Page number"`
	Limit  int    `short:"l" default:"10" help:"Requests per page"`
	Status string `short:"s" help:"Filter by status"`
}

// QuotesStatusCmd is the "quotes status" subcommand.
type QuotesStatusCmd struct {
	ID     string `arg:"" help:"Quote request id"`
	Status string `arg:"" help:"New status"`
}

// LoginCmd is the "login" subcommand.
type LoginCmd struct {
	Email    string `required:"" help:"Admin email"`
	Password string `required:"" env:"ATELIER_PASSWORD" help:"Admin password"`
}

// LogoutCmd is the "logout" subcommand.
type LogoutCmd struct{}

// UploadCmd is the "upload" subcommand.
type UploadCmd struct {
	File string `arg:"" type:"existingfile" help:"Image file to upload"`
}

// SitemapCmd is the "sitemap" subcommand.
type SitemapCmd struct {
	Out string `short:"o" help:"Write to file instead of stdout"`
}
