// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"io"

	"github.com/pdiddy/twitchy/pkg/types"
)

// channelURLPrefix is joined with the display name to form the channel link.
const channelURLPrefix = "https://twitch.tv/"

// FormatLine renders a channel as "lang | url | title". The display name is
// padded to 20 characters so titles line up; longer names are kept whole.
func FormatLine(ch types.Channel) string {
	return fmt.Sprintf("%s | %s%-20s | %s", ch.Language, channelURLPrefix, ch.DisplayName, ch.Title)
}

// Print writes FormatLine(ch) and a newline to w. Write errors are ignored.
func Print(w io.Writer, ch types.Channel) {
	fmt.Fprintln(w, FormatLine(ch))
}
