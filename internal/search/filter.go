// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"strings"

	"github.com/pdiddy/twitchy/pkg/types"
)

// Keyword is matched against lowercased titles.
const Keyword = "rust"

// Keep reports whether the channel's title contains Keyword in any case.
// It is a substring match: "Rustacean" and "trust" both match.
func Keep(ch types.Channel) bool {
	return strings.Contains(strings.ToLower(ch.Title), Keyword)
}
