// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prettify

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

// policy is the allow-list applied to all rendered HTML.
// Raw <table> and <code> passthrough is the main thing it protects against.
var policy = newPolicy()

func newPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements(
		"a", "p", "b", "i", "blockquote", "code", "pre",
		"table", "thead", "tbody", "tr", "th", "td", "caption",
		"span", "img", "details", "summary",
	)

	p.AllowAttrs("href").OnElements("a")
	p.AllowAttrs("src").OnElements("img")
	p.RequireParseableURLs(true)
	p.AllowRelativeURLs(true)
	p.AllowURLSchemes(schemes()...)

	p.AllowAttrs("class").Matching(regexp.MustCompile(`^(inner-link|domain-link)$`)).OnElements("a")
	p.AllowAttrs("class").Matching(regexp.MustCompile(`^good-code$`)).OnElements("pre")
	p.AllowAttrs("class").Matching(regexp.MustCompile(`^good-table$`)).OnElements("table")
	p.AllowAttrs("class").Matching(regexp.MustCompile(`^article-header-inner$`)).OnElements("span")
	return p
}

// Sanitize removes from html every element, attribute and class
// that rendering does not produce itself.
//
// Allowed elements are a, p, b, i, blockquote, code, pre, table, thead,
// tbody, tr, th, td, caption, span, img, details and summary.
// Links may use the recognized protocols or be relative.
// The only classes kept are inner-link and domain-link on a,
// good-code on pre, good-table on table, and article-header-inner on span.
func Sanitize(html string) string {
	return policy.Sanitize(html)
}
