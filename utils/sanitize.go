package utils

import (
	"regexp"
	"strings"
)

var unsafeCodeChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// SafeCodeToken turns a part code into a filesystem-safe token for use as an
// image filename. Runs of disallowed characters collapse into a single
// underscore, so distinct codes can map to the same token.
func SafeCodeToken(code string) string {
	return unsafeCodeChars.ReplaceAllString(strings.TrimSpace(code), "_")
}
