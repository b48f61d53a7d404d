// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"rsc.io/prettify"
)

func TestParseRefs(t *testing.T) {
	r, err := parseRefs([]byte("users: [alice, bob]\ntags: [Go]\ncomments: [12]\n"))
	if err != nil {
		t.Fatal(err)
	}
	checks := []struct {
		name string
		ok   bool
		want bool
	}{
		{"user alice", r.CheckUsername("alice"), true},
		{"user carol", r.CheckUsername("carol"), false},
		{"tag go", r.CheckHashTag("go"), true},
		{"comment 12", r.CheckCommentRef(12), true},
		{"comment 13", r.CheckCommentRef(13), false},
	}
	for _, c := range checks {
		if c.ok != c.want {
			t.Errorf("%s: have %v, want %v", c.name, c.ok, c.want)
		}
	}

	if _, err := parseRefs([]byte("comments: [x]\n")); err == nil {
		t.Errorf("parseRefs accepted a non-numeric comment id")
	}
}

func TestWriteRefs(t *testing.T) {
	r, err := parseRefs([]byte("users: [alice]\ntags: [go]\ncomments: [3]\n"))
	if err != nil {
		t.Fatal(err)
	}
	out := prettify.Body("@alice wrote #3 about #go and #rust", r)

	var buf bytes.Buffer
	if err := writeRefs(&buf, out); err != nil {
		t.Fatal(err)
	}
	var have refs
	if err := yaml.Unmarshal(buf.Bytes(), &have); err != nil {
		t.Fatal(err)
	}
	want := refs{Users: []string{"alice"}, Tags: []string{"go"}, Comments: []int32{3}}
	if diff := cmp.Diff(want, have); diff != "" {
		t.Errorf("writeRefs diff (-want +got):\n%s", diff)
	}
}

func TestSetupTracing(t *testing.T) {
	if err := setupTracing("loud"); err == nil {
		t.Errorf("setupTracing(%q) succeeded", "loud")
	}
	if err := setupTracing("info"); err != nil {
		t.Errorf("setupTracing(%q): %v", "info", err)
	}
}
