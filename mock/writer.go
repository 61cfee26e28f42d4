package mock

import (
	"context"
	"io"

	"github.com/fwojciec/atelier"
)

var _ atelier.PostWriter = (*PostWriter)(nil)

// PostWriter is a mock implementation of atelier.PostWriter.
type PostWriter struct {
	WritePostFn func(ctx context.Context, post *atelier.BlogPost) error
	CommitFn    func() error
	AbortFn     func() error
}

func (w *PostWriter) WritePost(ctx context.Context, post *atelier.BlogPost) error {
	return w.WritePostFn(ctx, post)
}

func (w *PostWriter) Commit() error {
	return w.CommitFn()
}

func (w *PostWriter) Abort() error {
	return w.AbortFn()
}

var _ atelier.SitemapEncoder = (*SitemapEncoder)(nil)

// SitemapEncoder is a mock implementation of atelier.SitemapEncoder.
type SitemapEncoder struct {
	EncodeFn func(w io.Writer, entries []atelier.SitemapEntry) error
}

func (e *SitemapEncoder) Encode(w io.Writer, entries []atelier.SitemapEntry) error {
	return e.EncodeFn(w, entries)
}
