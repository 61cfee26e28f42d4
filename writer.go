package atelier

import "context"

// PostWriter exports blog posts outside the backend, e.g. as Markdown files.
// Written posts become visible together on Commit; Abort discards them.
type PostWriter interface {
	WritePost(ctx context.Context, post *BlogPost) error
	Commit() error
	Abort() error
}
