// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search drives the channel search: it follows the Helix cursor
// page by page, keeps channels whose title mentions the keyword, and prints
// them.
package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/pdiddy/twitchy/pkg/types"
)

// ErrCursorRepeated is returned when the server hands back a cursor that was
// already requested in this run. Following it would loop forever.
var ErrCursorRepeated = errors.New("search: server repeated a pagination cursor")

// Fetcher returns the page after cursor. An empty cursor requests the first
// page. *helix.Client implements Fetcher.
type Fetcher interface {
	Fetch(ctx context.Context, cursor string) (types.Page, error)
}

// Pages yields pages from f, starting with the first page and following each
// page's cursor until a page arrives without one. Fetch is called exactly
// once per yielded page. The first error is yielded and ends the sequence.
func Pages(ctx context.Context, f Fetcher) iter.Seq2[types.Page, error] {
	return func(yield func(types.Page, error) bool) {
		seen := make(map[string]struct{})
		cursor := ""
		for {
			page, err := f.Fetch(ctx, cursor)
			if err != nil {
				yield(types.Page{}, err)
				return
			}
			if !yield(page, nil) || !page.HasNext() {
				return
			}

			if _, dup := seen[page.Cursor]; dup {
				yield(types.Page{}, fmt.Errorf("%w: %q", ErrCursorRepeated, page.Cursor))
				return
			}
			seen[page.Cursor] = struct{}{}
			cursor = page.Cursor
		}
	}
}

// Run prints "Searching...", then every matching channel on every page, then
// "Done...". Errors from the fetcher are returned unchanged and stop the run
// before "Done..." is printed.
func Run(ctx context.Context, f Fetcher, w io.Writer) error {
	fmt.Fprintln(w, "Searching...")
	for page, err := range Pages(ctx, f) {
		if err != nil {
			return err
		}
		for _, ch := range page.Channels {
			if Keep(ch) {
				Print(w, ch)
			}
		}
	}
	fmt.Fprintln(w, "Done...")
	return nil
}
