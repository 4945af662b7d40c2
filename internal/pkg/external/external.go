// Package external holds the injectable side-effect capabilities the
// service depends on: a CSV normalizer, an outbound notifier and a URL
// fetcher. Each implementation carries its own wall-clock budget; a call
// either completes, times out, or fails, and the enclosing request is
// never left hanging.
package external

import "context"

// Normalizer turns a stored CSV file into normalized text output.
type Normalizer interface {
	// Normalize processes the file at path and returns its textual
	// output. On timeout or process failure the partial output collected
	// so far is returned alongside the error.
	Normalize(ctx context.Context, path string) (string, error)
}

// Notifier delivers an outbound notification.
type Notifier interface {
	Notify(ctx context.Context, to, subject, body string) error
}

// Fetcher retrieves the bytes behind a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}
