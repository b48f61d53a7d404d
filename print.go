// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prettify

import (
	"bytes"
	"net/url"
	"strconv"
)

// A printer accumulates the HTML and references of one rendering.
type printer struct {
	buf bytes.Buffer
	r   Resolver
	out Output

	// For bodies, src holds the whole text as runes
	// and pos is the rune offset of the byte being scanned.
	src []rune
	pos int
}

func newPrinter(r Resolver, size int) *printer {
	p := &printer{r: r}
	p.buf.Grow(size)
	return p
}

// html writes raw HTML.
func (p *printer) html(list ...string) {
	for _, s := range list {
		p.buf.WriteString(s)
	}
}

// text writes HTML-escaped text.
func (p *printer) text(list ...string) {
	for _, s := range list {
		htmlEscaper.WriteString(&p.buf, s)
	}
}

// repeat writes s n times.
func (p *printer) repeat(s string, n int) {
	for ; n > 0; n-- {
		p.buf.WriteString(s)
	}
}

// link writes an anchor to href with text as its escaped content.
func (p *printer) link(href, text string) {
	p.html(`<a href="`, htmlEscaper.Replace(href), `">`)
	p.text(text)
	p.html(`</a>`)
}

// innerLink writes an anchor to another page of the site.
// If embedded is not empty, the anchor is being written inside the
// title anchor: that anchor is closed first and embedded, which reopens
// it, is written afterward, since anchors cannot nest.
func (p *printer) innerLink(href, text, embedded string) {
	if embedded != "" {
		p.html(`</a>`)
	}
	p.html(`<a href="`, htmlEscaper.Replace(href), `" class=inner-link>`)
	p.text(text)
	p.html(`</a>`)
	p.html(embedded)
}

// username writes a link to the profile of name if the resolver
// knows the user, and the literal @name otherwise.
func (p *printer) username(name, embedded string) {
	if name == "" || !p.r.CheckUsername(name) {
		tracer().Debugf("prettify: no user %q", name)
		p.text("@", name)
		return
	}
	p.innerLink("./@"+url.PathEscape(name), "@"+name, embedded)
	p.out.Usernames = append(p.out.Usernames, name)
}

// reference writes a link for #token if it names a comment of the
// current post or a known tag, and the literal #token otherwise.
func (p *printer) reference(token, embedded string) {
	if token == "" {
		p.text("#")
		return
	}
	ns := checkNumberSign(p.r, token)
	switch ns.Kind {
	case CommentRef:
		p.innerLink("#"+strconv.Itoa(int(ns.Comment)), "#"+token, embedded)
		p.out.CommentRefs = append(p.out.CommentRefs, ns.Comment)
	case HashTag:
		p.innerLink("./?tag="+url.QueryEscape(ns.Tag), "#"+token, embedded)
		p.out.HashTags = append(p.out.HashTags, ns.Tag)
	default:
		tracer().Debugf("prettify: no reference %q", token)
		p.text("#", token)
	}
}

// hasSuffix reports whether the HTML written so far ends in s.
func (p *printer) hasSuffix(s string) bool {
	return bytes.HasSuffix(p.buf.Bytes(), []byte(s))
}

// trim removes the final n bytes of HTML.
func (p *printer) trim(n int) {
	p.buf.Truncate(p.buf.Len() - n)
}

// output returns the finished Output, with its HTML sanitized.
func (p *printer) output() *Output {
	p.out.HTML = Sanitize(p.buf.String())
	tracer().Infof("prettify: %d bytes, %d users, %d tags, %d comments",
		len(p.out.HTML), len(p.out.Usernames), len(p.out.HashTags), len(p.out.CommentRefs))
	return &p.out
}
