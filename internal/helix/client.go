// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package helix fetches pages of live channels from the Twitch Helix channel
// search endpoint and maps each result to a types.Channel.
package helix

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/pdiddy/twitchy/internal/httputil"
	"github.com/pdiddy/twitchy/pkg/types"
)

// searchBase is the fixed channel search query: live channels matching
// "science & technology", 100 per page. Declared as a var so tests can
// substitute an httptest server.
var searchBase = "https://api.twitch.tv/helix/search/channels?query=science%20%26%20technology&live_only=true&first=100"

// ErrNoData is returned by Fetch when the response has no "data" array. The
// caller treats it as the natural end of results, not as a failure.
var ErrNoData = errors.New("helix: response has no data array")

// Client fetches search result pages. A zero Log discards all events.
type Client struct {
	HTTP        *http.Client
	Credentials types.Credentials
	UserAgent   string
	Log         zerolog.Logger
}

// NewClient returns a Client using a default *http.Client, whose timeout is
// left at the transport default.
func NewClient(creds types.Credentials, cfg types.HelixConfig, log zerolog.Logger) *Client {
	return &Client{
		HTTP:        &http.Client{},
		Credentials: creds,
		UserAgent:   cfg.UserAgent,
		Log:         log,
	}
}

// PageURL returns the request URL for the page after cursor. An empty cursor
// selects the first page. The cursor is appended as the server issued it.
func PageURL(cursor string) string {
	if cursor == "" {
		return searchBase
	}
	return searchBase + "&after=" + cursor
}

// Fetch issues one request for the page after cursor and returns its
// channels and the next cursor. It returns ErrNoData when the body lacks a
// data array, a *httputil.DecodeError when the body is not JSON, and a
// *FieldError (wrapped) when a result is missing a required field.
func (c *Client) Fetch(ctx context.Context, cursor string) (types.Page, error) {
	reqURL := PageURL(cursor)

	header := http.Header{}
	header.Set("Authorization", "Bearer "+c.Credentials.Token)
	header.Set("Client-Id", c.Credentials.ClientID)
	if c.UserAgent != "" {
		header.Set("User-Agent", c.UserAgent)
	}

	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}

	c.Log.Debug().Str("url", reqURL).Msg("fetching page")
	status, body, err := httputil.GetJSON(ctx, client, reqURL, header)
	if err != nil {
		return types.Page{}, err
	}
	if status < 200 || status > 299 {
		c.Log.Warn().Int("status", status).Msg("unexpected HTTP status")
	}

	page, err := parsePage(body)
	if err != nil {
		return types.Page{}, err
	}
	c.Log.Debug().Int("channels", len(page.Channels)).Str("cursor", page.Cursor).Msg("page received")
	return page, nil
}

// parsePage extracts the channels and cursor from a decoded response body.
func parsePage(body any) (types.Page, error) {
	obj, _ := body.(map[string]any)

	raw, ok := obj["data"].([]any)
	if !ok {
		return types.Page{}, ErrNoData
	}

	channels := make([]types.Channel, 0, len(raw))
	for i, item := range raw {
		ch, err := ToChannel(item)
		if err != nil {
			return types.Page{}, fmt.Errorf("data[%d]: %w", i, err)
		}
		channels = append(channels, ch)
	}

	return types.Page{Channels: channels, Cursor: cursorOf(obj)}, nil
}

// cursorOf returns pagination.cursor, or "" when any level is absent or the
// value is not a string.
func cursorOf(obj map[string]any) string {
	pagination, _ := obj["pagination"].(map[string]any)
	cursor, _ := pagination["cursor"].(string)
	return cursor
}
