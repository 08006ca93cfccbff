// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the twitchy pipeline.
// Channel is produced by the helix fetcher and consumed by the search
// driver; Page carries one batch of channels plus its continuation cursor.
package types

// Channel is a live channel returned by the Helix channel search endpoint,
// reduced to the four fields the pipeline prints and filters on. Values are
// copied verbatim from the response.
type Channel struct {
	// Language is the broadcaster's declared language code (broadcaster_language).
	Language string `json:"language"`

	// DisplayName is the human-readable channel name (display_name).
	DisplayName string `json:"display_name"`

	// Title is the current stream title (title).
	Title string `json:"title"`

	// CategoryID identifies the stream's content category (game_id).
	CategoryID string `json:"category_id"`
}

// Page is the result of one fetch: the channels on the page and the cursor
// for the next one. An empty Cursor means there are no more pages.
type Page struct {
	Channels []Channel
	Cursor   string
}

// HasNext reports whether the server returned a continuation cursor.
func (p Page) HasNext() bool {
	return p.Cursor != ""
}
