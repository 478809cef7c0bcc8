package domain

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	nonSlugChars  = regexp.MustCompile(`[^\w-]`)
)

// Slugify derives a URL slug from a title: lowercase, whitespace runs become
// hyphens, and anything outside [A-Za-z0-9_-] is dropped.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = whitespaceRun.ReplaceAllString(s, "-")
	return nonSlugChars.ReplaceAllString(s, "")
}

// SlugOrDefault is Slugify with a fallback for titles that produce nothing
func SlugOrDefault(title, fallback string) string {
	if s := Slugify(title); s != "" {
		return s
	}
	return fallback
}
