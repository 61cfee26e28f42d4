// Package fs exports blog posts as Markdown files with YAML frontmatter.
package fs

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/atelier"
	"gopkg.in/yaml.v3"
)

// Frontmatter is the YAML header written above each exported post.
type Frontmatter struct {
	Title     string   `yaml:"title"`
	Slug      string   `yaml:"slug"`
	Author    string   `yaml:"author,omitempty"`
	Category  string   `yaml:"category,omitempty"`
	Tags      []string `yaml:"tags,omitempty"`
	Excerpt   string   `yaml:"excerpt,omitempty"`
	Image     string   `yaml:"image,omitempty"`
	Published string   `yaml:"published,omitempty"`
	ReadTime  int      `yaml:"read_time,omitempty"`
	Featured  bool     `yaml:"featured,omitempty"`
	Source    string   `yaml:"source"`
}

// FormatPost renders body with a frontmatter header describing post.
// source records where the post came from: "api" or "demo".
func FormatPost(post *atelier.BlogPost, body, source string) (string, error) {
	fm := Frontmatter{
		Title:    post.Title,
		Slug:     post.Slug,
		Author:   post.Author,
		Category: post.Category,
		Tags:     post.Tags,
		Excerpt:  post.Excerpt,
		Image:    post.Image,
		ReadTime: post.ReadTime,
		Featured: post.Featured,
		Source:   source,
	}
	if !post.PublishedAt.IsZero() {
		fm.Published = post.PublishedAt.Format(time.DateOnly)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(fm); err != nil {
		return "", fmt.Errorf("failed to encode frontmatter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("failed to encode frontmatter: %w", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(buf.Bytes())
	b.WriteString("---\n\n")
	b.WriteString(body)
	if body != "" && !strings.HasSuffix(body, "\n") {
		b.WriteString("\n")
	}
	return b.String(), nil
}

// Ensure Writer implements atelier.PostWriter at compile time.
var _ atelier.PostWriter = (*Writer)(nil)

// Writer writes posts as <slug>.md files. Files are staged in
// baseDir/name.tmp and replace baseDir/name atomically on Commit.
type Writer struct {
	baseDir string
	name    string
	conv    atelier.Converter
	source  string
}

// NewWriter creates a new Writer. conv renders post content as Markdown.
func NewWriter(baseDir, name string, conv atelier.Converter) *Writer {
	return &Writer{baseDir: baseDir, name: name, conv: conv, source: "api"}
}

// SetSource records the provenance written to each post's frontmatter.
func (w *Writer) SetSource(source string) {
	w.source = source
}

func (w *Writer) tempDir() string {
	return filepath.Join(w.baseDir, w.name+".tmp")
}

func (w *Writer) finalDir() string {
	return filepath.Join(w.baseDir, w.name)
}

// Dir returns the directory the posts are committed to.
func (w *Writer) Dir() string {
	return w.finalDir()
}

// WritePost stages post as Markdown. Posts without content are written with
// their excerpt as the body.
func (w *Writer) WritePost(ctx context.Context, post *atelier.BlogPost) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	filename, err := postFilename(post.Slug)
	if err != nil {
		return err
	}

	body := post.Excerpt
	if strings.TrimSpace(post.Content) != "" {
		md, err := w.conv.Convert(post.Content)
		if err != nil {
			return fmt.Errorf("failed to convert %q: %w", post.Slug, err)
		}
		body = md
	}

	content, err := FormatPost(post, body, w.source)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(w.tempDir(), 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(w.tempDir(), filename), []byte(content), 0644)
}

// Commit replaces the export directory with the staged posts.
func (w *Writer) Commit() error {
	if err := os.MkdirAll(w.tempDir(), 0755); err != nil {
		return err
	}
	if err := os.RemoveAll(w.finalDir()); err != nil {
		return err
	}
	return os.Rename(w.tempDir(), w.finalDir())
}

// Abort discards the staged posts.
func (w *Writer) Abort() error {
	return os.RemoveAll(w.tempDir())
}

func postFilename(slug string) (string, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return "", atelier.Errorf(atelier.EINVALID, "post slug required")
	}
	if slug == "." || slug == ".." || strings.ContainsAny(slug, `/\`) {
		return "", atelier.Errorf(atelier.EINVALID, "invalid post slug %q", slug)
	}
	return slug + ".md", nil
}
