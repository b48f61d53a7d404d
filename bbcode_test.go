// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prettify

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

var bbParamTests = []struct {
	before string // text already scanned
	in     string
	tag    string
	param  string
	n      int
	ok     bool
}{
	{"", "[url=x]y", "url", "x", 7, true},
	{"", "[URL=\n]", "url", "\n", 7, true},
	{"", "[url=é[b]", "url", "é[b", 10, true},
	{"", "[Quote=a b]x", "quote", "a b", 11, true},
	{"", "[size=]", "size", "", 7, true},
	{"", "[url=[url=]", "url", "[url=", 11, true},
	{"", "[url=a\xff]z", "url", "a\xff", 8, true},
	{"日本", "[size=3]", "size", "3", 8, true},
	{"\xffé ", "[url=ü]x", "url", "ü", 8, true},
	{"", "[url=x", "", "", 0, false},
	{"", "[urlx=1]", "", "", 0, false},
	{"", "[b]", "", "", 0, false},
	{"", "a [url=x]", "", "", 0, false},
}

func TestBBParam(t *testing.T) {
	for _, tt := range bbParamTests {
		p := newPrinter(NewSet(nil, nil, nil), 0)
		p.src = []rune(tt.before + tt.in)
		p.pos = utf8.RuneCountInString(tt.before)
		tag, param, n, ok := p.bbParam(tt.in)
		if tag != tt.tag || param != tt.param || n != tt.n || ok != tt.ok {
			t.Errorf("bbParam(%#q after %#q) = %q, %#q, %d, %v, want %q, %#q, %d, %v",
				tt.in, tt.before, tag, param, n, ok, tt.tag, tt.param, tt.n, tt.ok)
		}
	}
}

func TestParamTagsAfterMultibyte(t *testing.T) {
	r := NewSet([]string{"mentioning"}, nil, nil)
	out := Body("日本\xff [URL=http://a.b/]x[/url] [Quote=mentioning]q[/quote] [size=2]z", r)
	doc, err := html.Parse(strings.NewReader(out.HTML))
	if err != nil {
		t.Fatal(err)
	}
	links := cascadia.MustCompile(`a[href="http://a.b/"]`).MatchAll(doc)
	if len(links) != 1 || textContent(links[0]) != "x" {
		t.Errorf("Body: want one link to http://a.b/ with text x in %q", out.HTML)
	}
	if len(out.Usernames) != 1 || out.Usernames[0] != "mentioning" {
		t.Errorf("Body: Usernames = %q, want [mentioning]", out.Usernames)
	}
	if len(cascadia.MustCompile("blockquote").MatchAll(doc)) != 1 {
		t.Errorf("Body: want one blockquote in %q", out.HTML)
	}
	if strings.Contains(out.HTML, "size") {
		t.Errorf("Body: size tag left in %q", out.HTML)
	}
}
