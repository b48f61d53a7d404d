// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prettify

import (
	"strings"
	"unicode/utf8"
)

// Body renders the body of a post or comment.
//
// The text is scanned left to right in a single pass. Each step looks at
// the next byte and consumes at least one byte, writing HTML for it:
//
//	<...>                 angle-bracket escape (see scanAngleBrackets)
//	[tag]                 BBCode tag
//	@name, #tag, #123     user, tag, or comment reference
//	http://..., www....   bare link
//	blank line            new paragraph
//
// Everything else is copied as escaped text. The result is passed through
// [Sanitize] before it is returned.
func Body(text string, r Resolver) *Output {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	p := newPrinter(r, len(text)+len(text)/4)
	p.src = []rune(text)
	p.html("<p>")
	for text != "" {
		n := p.body(text)
		p.pos += utf8.RuneCountInString(text[:n])
		text = text[n:]
	}
	return p.output()
}

// body writes the HTML for the start of s and returns
// the number of bytes consumed, which is always at least 1.
func (p *printer) body(s string) int {
	switch s[0] {
	case '<':
		return p.angle(s)
	case '[':
		if n, ok := p.bbcode(s); ok {
			return n
		}
	case '@':
		tok := scanLexicalToken(s[1:], false)
		p.username(tok, "")
		return 1 + len(tok)
	case '#':
		tok := scanLexicalToken(s[1:], false)
		p.reference(tok, "")
		return 1 + len(tok)
	case ' ':
		p.html(" ")
		return 1
	case '\n':
		if len(s) > 1 && s[1] == '\n' {
			p.html("\n\n<p>")
			return 2
		}
		p.html("\n")
		return 1
	}
	if startsLink(s) {
		if tok := scanLexicalToken(s, true); tok != "" {
			p.link(linkTarget(tok), tok)
			return len(tok)
		}
	}
	return p.plain(s)
}

// plain writes the run of plain text at the start of s and returns its length.
// The run is at least one character long and stops before the next byte
// that may start markup, including a bare link.
func (p *printer) plain(s string) int {
	_, n := utf8.DecodeRuneInString(s)
	for n < len(s) && !isPlainStop(s[n]) && !startsLink(s[n:]) {
		_, size := utf8.DecodeRuneInString(s[n:])
		n += size
	}
	p.text(s[:n])
	return n
}

// Documentation pages linked from the <table> and <code> escapes.
const (
	tableHelp = "assets/how-to-table.html"
	codeHelp  = "assets/how-to-code.html"
)

// angle writes an angle-bracket escape at the start of s.
// The brackets themselves are always shown as text.
func (p *printer) angle(s string) int {
	contents, count, end := scanAngleBrackets(s)
	p.repeat("&lt;", count)
	if contents == "" {
		return count
	}
	switch {
	case startsLink(contents):
		p.link(linkTarget(contents), contents)
	case contents[0] == '@':
		p.username(contents[1:], "")
	case contents[0] == '#':
		p.reference(contents[1:], "")
	case strings.Contains(contents, "@"):
		p.link("mailto:"+contents, contents)
	case contents == "table":
		p.link(tableHelp, contents)
		p.repeat("&gt;", count)
		return p.rawBlock(s, contents, count)
	case contents == "code":
		p.link(codeHelp, contents)
		p.repeat("&gt;", count)
		return p.rawBlock(s, contents, count)
	default:
		p.text(contents)
	}
	p.repeat("&gt;", count)
	return end + count
}

// rawBlock writes the contents of a <table> or <code> escape,
// which runs up to the closing tag with the same number of brackets,
// or to the end of s if there is none.
// The table is copied as HTML, leaving it to the sanitizer;
// code is escaped.
func (p *printer) rawBlock(s, tag string, count int) int {
	start := 2*count + len(tag)
	closing := strings.Repeat("<", count) + "/" + tag + strings.Repeat(">", count)
	inner := s[start:]
	n := len(s)
	if i := strings.Index(inner, closing); i >= 0 {
		inner = inner[:i]
		n = start + i + len(closing)
	} else {
		tracer().Debugf("prettify: unclosed <%s>", tag)
	}
	if tag == "table" {
		p.html("<table class=good-table>", inner, "</table><p>")
	} else {
		p.html("<pre class=good-code><code>")
		p.text(inner)
		p.html("</code></pre><p>")
	}
	return n
}
