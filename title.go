// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prettify

import (
	"net/url"
	"strings"
)

// Title renders the title of a post that links to postURL.
//
// Titles have no paragraphs, BBCode, or bare links. The text is written
// inside an anchor to postURL, wrapped in a span of class
// article-header-inner. The HTML starts by closing a span: callers
// place it just inside a span of their own. Mentions and references
// cannot sit inside that anchor, so each one closes it, writes its own link,
// and reopens the span and anchor afterward.
//
// If postURL is absolute, a second span holds a link to the listing of
// posts from the same domain.
func Title(text, postURL string, r Resolver) *Output {
	reopen := `</span><span class=article-header-inner><a href="` + htmlEscaper.Replace(postURL) + `">`
	p := newPrinter(r, len(text)+2*len(reopen))
	p.html(reopen)
	for text != "" {
		text = text[p.title(text, reopen):]
	}
	if p.buf.Len() > len(reopen) && p.hasSuffix(reopen) {
		// Nothing after the last reference.
		// An empty title keeps its one empty segment.
		p.trim(len(reopen))
		p.html("</span>")
	} else {
		p.html("</a></span>")
	}
	p.domain(postURL)
	return p.output()
}

// title writes the HTML for the start of s and returns
// the number of bytes consumed, which is always at least 1.
func (p *printer) title(s, reopen string) int {
	switch s[0] {
	case '<':
		return p.titleAngle(s, reopen)
	case '@':
		tok := scanLexicalToken(s[1:], false)
		p.username(tok, reopen)
		return 1 + len(tok)
	case '#':
		tok := scanLexicalToken(s[1:], false)
		p.reference(tok, reopen)
		return 1 + len(tok)
	case ' ', '\n':
		p.html(s[:1])
		return 1
	}
	return p.plain(s)
}

// titleAngle is the title form of angle: only references are linked.
func (p *printer) titleAngle(s, reopen string) int {
	contents, count, end := scanAngleBrackets(s)
	p.repeat("&lt;", count)
	if contents == "" {
		return count
	}
	switch contents[0] {
	case '@':
		p.username(contents[1:], reopen)
	case '#':
		p.reference(contents[1:], reopen)
	default:
		p.text(contents)
	}
	p.repeat("&gt;", count)
	return end + count
}

// domain writes the domain badge for postURL, if it is absolute.
func (p *printer) domain(postURL string) {
	u, err := url.Parse(postURL)
	if err != nil || !u.IsAbs() || u.Hostname() == "" {
		return
	}
	host := strings.TrimPrefix(u.Hostname(), wwwPrefix)
	p.html(`<span><a href="./?domain=`, htmlEscaper.Replace(url.QueryEscape(host)), `" class=domain-link>`)
	p.text(host)
	p.html(`</a></span>`)
}
