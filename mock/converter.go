package mock

import "github.com/fwojciec/atelier"

var _ atelier.Converter = (*Converter)(nil)

// Converter is a mock implementation of atelier.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ atelier.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of atelier.TextExtractor.
type TextExtractor struct {
	TextFn func(html string) string
}

func (e *TextExtractor) Text(html string) string {
	return e.TextFn(html)
}
