// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prettify

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// bbReplace lists the BBCode tags that are replaced by fixed text.
//
// [u] maps to <i>, not <u>. Stored posts depend on it.
var bbReplace = []struct {
	tag  string
	html string
}{
	{"[b]", "<b>"},
	{"[/b]", "</b>"},
	{"[i]", "<i>"},
	{"[/i]", "</i>"},
	{"[u]", "<i>"},
	{"[/u]", "</i>"},
	{"[quote]", "<blockquote>"},
	{"[/quote]", "</blockquote>"},
	{"[tt]", "<tt>"},
	{"[/tt]", "</tt>"},
	{"[pre]", "<pre>"},
	{"[/pre]", "</pre>"},
	{"[char]", "&"},
	{"[/char]", ";"},
	{"[/size]", ""},
	{"[ab]", "&lt;"},
	{"[/ab]", "&gt;"},
	{"[sb]", "["},
	{"[/sb]", "]"},
	{"[cb]", "{"},
	{"[/cb]", "}"},
}

// bbParamTag matches an opening tag that carries a parameter,
// such as [url=https://go.dev], at the scan position.
var bbParamTag = regexp2.MustCompile(`\G\[(?<tag>url|quote|size)=(?<param>[^\]]*)\]`, regexp2.IgnoreCase)

// bbcode writes the BBCode tag at the start of s, which begins with '['.
// It returns the number of bytes consumed and whether s starts with a tag.
// A tag that needs a closing tag but has none is written as a literal '['.
func (p *printer) bbcode(s string) (int, bool) {
	for _, t := range bbReplace {
		if hasPrefixFold(s, t.tag) {
			p.html(t.html)
			return len(t.tag), true
		}
	}
	switch {
	case hasPrefixFold(s, "[url]"):
		return p.bbEnclosed(s, "[url]", "[/url]", func(inner string) {
			p.link(inner, inner)
		})
	case hasPrefixFold(s, "[code]"):
		return p.bbEnclosed(s, "[code]", "[/code]", func(inner string) {
			p.html("<code>")
			p.text(inner)
			p.html("</code>")
		})
	case hasPrefixFold(s, "[img]"):
		return p.bbEnclosed(s, "[img]", "[/img]", func(inner string) {
			p.html(`<details><summary>image</summary><img src="`, htmlEscaper.Replace(inner), `"></details>`)
		})
	}

	tag, param, n, ok := p.bbParam(s)
	if !ok {
		return 0, false
	}
	switch tag {
	case "url":
		end := indexFold(s, "[/url]")
		if end < n {
			return p.bbUnclosed("[url=")
		}
		p.link(param, s[n:end])
		return end + len("[/url]"), true
	case "quote":
		p.username(param, "")
		p.html("<blockquote>")
		return n, true
	case "size":
		return n, true
	}
	return 0, false
}

// bbEnclosed handles a tag whose content runs up to the closing tag,
// calling write with the content.
func (p *printer) bbEnclosed(s, open, closing string, write func(inner string)) (int, bool) {
	end := indexFold(s[len(open):], closing)
	if end < 0 {
		return p.bbUnclosed(open)
	}
	write(s[len(open) : len(open)+end])
	return len(open) + end + len(closing), true
}

func (p *printer) bbUnclosed(open string) (int, bool) {
	tracer().Debugf("prettify: unclosed %s", open)
	p.html("[")
	return 1, true
}

// bbParam matches bbParamTag against s, which starts at rune p.pos of p.src.
// It returns the lower-case tag name, the parameter as written in s,
// and the length in bytes of the whole tag.
func (p *printer) bbParam(s string) (tag, param string, n int, ok bool) {
	m, err := bbParamTag.FindRunesMatchStartingAt(p.src, p.pos)
	if err != nil || m == nil {
		return "", "", 0, false
	}
	g := m.GroupByName("param")
	start := runeOffset(s, g.Index-p.pos)
	end := start + runeOffset(s[start:], g.Length)
	tag = strings.ToLower(m.GroupByName("tag").String())
	return tag, s[start:end], runeOffset(s, m.Length), true
}
