package atelier

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content, such as a blog post body, into Markdown.
	Convert(html string) (string, error)
}

// TextExtractor reduces HTML to its visible text.
type TextExtractor interface {
	// Text returns the text content of html with whitespace collapsed.
	// Malformed input yields whatever text could be recovered.
	Text(html string) string
}
