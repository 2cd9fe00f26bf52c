package service

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// cleanName strips markup from user supplied display text and trims it.
// The strict policy escapes entities, which are decoded again so "R&D"
// survives as typed.
func cleanName(s string) string {
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(s)))
}
