// ABOUTME: HTML utilities for stripping tags, decoding entities and finding images
// ABOUTME: Used to turn feed markup into short plain-text descriptions

package html

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// Ellipsis is appended by Truncate when it shortens a string
const Ellipsis = "..."

// entityReplacer decodes the entities feeds commonly emit in descriptions.
// A single pass means "&amp;lt;" decodes to "&lt;", not "<".
var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", "\"",
	"&#39;", "'",
)

// StripHTML removes HTML tags, decodes common entities and collapses whitespace.
// A tag is a "<" with a ">" somewhere after it; a "<" with no closing ">"
// is literal text, so "x < y" survives.
func StripHTML(html string) string {
	if html == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(html))

	rest := html
	for {
		open := strings.IndexByte(rest, '<')
		if open < 0 {
			b.WriteString(rest)
			break
		}
		end := strings.IndexByte(rest[open+1:], '>')
		if end < 0 {
			b.WriteString(rest)
			break
		}
		b.WriteString(rest[:open])
		// Tags separate words: "<p>a</p><p>b</p>" reads "a b"
		b.WriteByte(' ')
		rest = rest[open+1+end+1:]
	}

	text := DecodeEntities(b.String())
	return strings.Join(strings.Fields(text), " ")
}

// DecodeEntities decodes common HTML entities
func DecodeEntities(text string) string {
	return entityReplacer.Replace(text)
}

// Truncate shortens s to at most limit runes, appending Ellipsis only when
// something was cut. A non-positive limit returns s unchanged.
func Truncate(s string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}

	count := 0
	for i := range s {
		if count == limit {
			return s[:i] + Ellipsis
		}
		count++
	}
	return s
}

// FirstImageSrc returns the src of the first <img> carrying a non-empty src,
// or "" when there is none.
func FirstImageSrc(html string) string {
	if !strings.Contains(strings.ToLower(html), "<img") {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	var src string
	doc.Find("img[src]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if v := strings.TrimSpace(s.AttrOr("src", "")); v != "" {
			src = v
			return false
		}
		return true
	})
	return src
}
