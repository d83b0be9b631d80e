// Package slug derives URL-safe identifiers from titles.
package slug

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	disallowed = regexp.MustCompile(`[^a-z0-9 -]`)
	whitespace = regexp.MustCompile(`\s+`)
	hyphenRuns = regexp.MustCompile(`-+`)
)

// Make derives a slug from the given title: lowercase, strip every character
// outside [a-z0-9 -], collapse whitespace runs to a single hyphen, collapse
// hyphen runs, trim leading and trailing hyphens. Titles that yield an empty
// derivation (e.g. "!!!") fall back to a synthetic timestamp slug so the
// result is always non-empty and unique.
func Make(title string) string {
	s := strings.ToLower(title)
	s = disallowed.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, "-")
	s = hyphenRuns.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if s == "" {
		return fmt.Sprintf("news-%d", time.Now().UnixMilli())
	}
	return s
}
