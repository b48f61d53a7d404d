// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prettify

import (
	"strings"
	"unicode/utf8"

	"github.com/derekparker/trie"
)

// isSpace reports whether c is an ASCII space, tab, or line ending.
func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// isTrailingPunct reports whether c is punctuation that is left out
// of a token when it ends the token.
func isTrailingPunct(c byte) bool {
	switch c {
	case '.', ',', '?', '\'', '"', '!', ':', '*':
		return true
	}
	return false
}

// isPlainStop reports whether c ends a run of plain text.
func isPlainStop(c byte) bool {
	switch c {
	case '<', '@', '#', ' ', '\n', '*', '(', '[', ']':
		return true
	}
	return false
}

// htmlEscaper escapes text for HTML element content and attribute values.
var htmlEscaper = strings.NewReplacer(
	`&`, `&amp;`,
	`<`, `&lt;`,
	`>`, `&gt;`,
	`"`, `&quot;`,
)

// protocols lists the URL schemes that are recognized as bare links.
// The sanitizer allows exactly these schemes.
var protocols = []string{
	"http://",
	"https://",
	"ftp://",
	"gopher://",
	"irc://",
	"ircs://",
	"magnet:",
	"mailto:",
	"news:",
	"nntp://",
	"sip:",
	"sips:",
	"xmpp:",
}

// schemes returns the scheme names of protocols, without the colon.
func schemes() []string {
	var list []string
	for _, p := range protocols {
		list = append(list, p[:strings.IndexByte(p, ':')])
	}
	return list
}

const wwwPrefix = "www."

// linkPrefixes holds protocols and wwwPrefix.
// linkStart[c] is true when some prefix starts with byte c,
// which lets most bytes skip the trie walk entirely.
var (
	linkPrefixes = trie.New()
	linkStart    [256]bool
	linkMax      int
)

func init() {
	for _, p := range append(protocols, wwwPrefix) {
		linkPrefixes.Add(p, nil)
		linkStart[p[0]] = true
		linkMax = max(linkMax, len(p))
	}
}

// linkPrefix returns the length of the protocol or www. prefix at the start of s,
// or 0 if s does not start with one.
func linkPrefix(s string) int {
	if s == "" || !linkStart[s[0]] {
		return 0
	}
	for i := 1; i <= len(s) && i <= linkMax; i++ {
		if !linkPrefixes.HasKeysWithPrefix(s[:i]) {
			return 0
		}
		if _, ok := linkPrefixes.Find(s[:i]); ok {
			return i
		}
	}
	return 0
}

// startsLink reports whether s starts with a recognized protocol or www.
func startsLink(s string) bool {
	return linkPrefix(s) > 0
}

// linkTarget returns the href for a link whose visible text is s.
func linkTarget(s string) string {
	if strings.HasPrefix(s, wwwPrefix) {
		return "https://" + s
	}
	return s
}

const forceLower = 0x20 // ASCII letter | forceLower == ASCII lower-case

// hasPrefixFold reports whether s begins with prefix, ignoring ASCII case.
// prefix must be ASCII lower-case.
func hasPrefixFold(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		c := s[i]
		if 'A' <= c && c <= 'Z' {
			c |= forceLower
		}
		if c != prefix[i] {
			return false
		}
	}
	return true
}

// indexFold returns the byte index of the first instance of sub in s,
// ignoring ASCII case, or -1 if sub is not present.
// sub must be ASCII lower-case.
func indexFold(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if hasPrefixFold(s[i:], sub) {
			return i
		}
	}
	return -1
}

// runeOffset returns the byte offset in s of the rune at index n,
// counting each invalid byte as one rune, as a []rune conversion does.
func runeOffset(s string, n int) int {
	i := 0
	for ; n > 0 && i < len(s); n-- {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return i
}
