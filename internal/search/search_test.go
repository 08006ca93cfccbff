// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/twitchy/pkg/types"
)

// fakeFetcher serves scripted responses in order and records the cursors it
// was asked for.
type fakeFetcher struct {
	pages   []types.Page
	errs    []error
	cursors []string
}

func (f *fakeFetcher) Fetch(_ context.Context, cursor string) (types.Page, error) {
	i := len(f.cursors)
	f.cursors = append(f.cursors, cursor)
	if i < len(f.errs) && f.errs[i] != nil {
		return types.Page{}, f.errs[i]
	}
	if i >= len(f.pages) {
		return types.Page{}, errors.New("unexpected fetch")
	}
	return f.pages[i], nil
}

var errNoData = errors.New("no data")

func channel(name, title string) types.Channel {
	return types.Channel{Language: "en", DisplayName: name, Title: title, CategoryID: "509670"}
}

func TestPages_StopsWithoutCursor(t *testing.T) {
	f := &fakeFetcher{pages: []types.Page{
		{Channels: []types.Channel{channel("a", "rust")}, Cursor: "c1"},
		{Channels: []types.Channel{channel("b", "go")}},
	}}

	var got []types.Page
	for page, err := range Pages(context.Background(), f) {
		require.NoError(t, err)
		got = append(got, page)
	}

	assert.Len(t, got, 2)
	assert.Equal(t, []string{"", "c1"}, f.cursors, "exactly two fetches, second with the first cursor")
}

func TestPages_YieldsErrorAndStops(t *testing.T) {
	f := &fakeFetcher{
		pages: []types.Page{{Cursor: "c1"}},
		errs:  []error{nil, errNoData},
	}

	var errs []error
	pages := 0
	for _, err := range Pages(context.Background(), f) {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		pages++
	}

	assert.Equal(t, 1, pages)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], errNoData)
	assert.Len(t, f.cursors, 2)
}

func TestPages_RepeatedCursor(t *testing.T) {
	f := &fakeFetcher{pages: []types.Page{
		{Cursor: "c1"},
		{Cursor: "c2"},
		{Cursor: "c1"},
	}}

	var last error
	for _, err := range Pages(context.Background(), f) {
		last = err
	}

	require.ErrorIs(t, last, ErrCursorRepeated)
	assert.Equal(t, []string{"", "c1", "c2"}, f.cursors)
}

func TestPages_EarlyBreak(t *testing.T) {
	f := &fakeFetcher{pages: []types.Page{{Cursor: "c1"}, {Cursor: "c2"}}}

	for range Pages(context.Background(), f) {
		break
	}
	assert.Len(t, f.cursors, 1)
}

func TestRun_PrintsMatchesAcrossPages(t *testing.T) {
	f := &fakeFetcher{pages: []types.Page{
		{Channels: []types.Channel{channel("foo", "Learning Rust live"), channel("chef", "cooking show")}, Cursor: "c1"},
		{Channels: []types.Channel{channel("bar", "RUST gamedev")}},
	}}

	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), f, &out))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Searching...", lines[0])
	assert.Contains(t, lines[1], "https://twitch.tv/foo")
	assert.Contains(t, lines[1], "Learning Rust live")
	assert.Contains(t, lines[2], "https://twitch.tv/bar")
	assert.Equal(t, "Done...", lines[3])
	assert.NotContains(t, out.String(), "cooking show")
	assert.Len(t, f.cursors, 2)
}

func TestRun_SinglePageWithoutCursor(t *testing.T) {
	f := &fakeFetcher{pages: []types.Page{
		{Channels: []types.Channel{{Language: "en", DisplayName: "foo", Title: "Learning Rust live", CategoryID: "123"}}},
	}}

	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), f, &out))

	want := "Searching...\n" +
		"en | https://twitch.tv/foo                  | Learning Rust live\n" +
		"Done...\n"
	assert.Equal(t, want, out.String())
	assert.Len(t, f.cursors, 1)
}

func TestRun_ErrorSkipsDone(t *testing.T) {
	f := &fakeFetcher{errs: []error{errNoData}}

	var out bytes.Buffer
	err := Run(context.Background(), f, &out)
	require.ErrorIs(t, err, errNoData)
	assert.Equal(t, "Searching...\n", out.String())
}

func TestRun_ErrorAfterOutputKeepsEarlierLines(t *testing.T) {
	f := &fakeFetcher{
		pages: []types.Page{{Channels: []types.Channel{channel("foo", "rust")}, Cursor: "c1"}},
		errs:  []error{nil, errNoData},
	}

	var out bytes.Buffer
	err := Run(context.Background(), f, &out)
	require.ErrorIs(t, err, errNoData)
	assert.Contains(t, out.String(), "https://twitch.tv/foo")
	assert.NotContains(t, out.String(), "Done...")
}
