// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prettify

import (
	"strconv"

	"golang.org/x/text/cases"
)

// A Resolver reports which references in a text denote real things.
// The methods are queries: they may be called any number of times
// with the same argument during one rendering and must give the same answer.
type Resolver interface {
	// CheckUsername reports whether a user named name exists.
	CheckUsername(name string) bool

	// CheckHashTag reports whether the tag exists.
	CheckHashTag(tag string) bool

	// CheckCommentRef reports whether comment id exists and belongs
	// to the post being rendered.
	CheckCommentRef(id int32) bool
}

// A NumberSignResolver is a [Resolver] that classifies #tokens itself
// instead of using [CheckNumberSign].
type NumberSignResolver interface {
	Resolver
	CheckNumberSign(token string) NumberSign
}

// A NumberSignKind says what a #token refers to.
type NumberSignKind int

const (
	NotReference NumberSignKind = iota
	CommentRef
	HashTag
)

// A NumberSign is the classification of a #token.
type NumberSign struct {
	Kind    NumberSignKind
	Comment int32  // for CommentRef
	Tag     string // for HashTag
}

// CheckNumberSign classifies the token following a '#'.
// A token that parses as a 32-bit integer is a comment reference if r
// accepts it and nothing otherwise; any other token is a tag if r knows it.
func CheckNumberSign(r Resolver, token string) NumberSign {
	if n, err := strconv.ParseInt(token, 10, 32); err == nil {
		if r.CheckCommentRef(int32(n)) {
			return NumberSign{Kind: CommentRef, Comment: int32(n)}
		}
		return NumberSign{}
	}
	if r.CheckHashTag(token) {
		return NumberSign{Kind: HashTag, Tag: token}
	}
	return NumberSign{}
}

// checkNumberSign dispatches to r's own classification if it has one.
func checkNumberSign(r Resolver, token string) NumberSign {
	if nr, ok := r.(NumberSignResolver); ok {
		return nr.CheckNumberSign(token)
	}
	return CheckNumberSign(r, token)
}

// A Set is a [Resolver] backed by in-memory sets.
// Usernames match exactly; tags match without regard to case.
// The zero Set resolves nothing.
type Set struct {
	users    map[string]bool
	tags     map[string]bool
	comments map[int32]bool
}

// NewSet returns a Set that knows the given users, tags and comments.
func NewSet(users, tags []string, comments []int32) *Set {
	s := &Set{
		users:    make(map[string]bool),
		tags:     make(map[string]bool),
		comments: make(map[int32]bool),
	}
	for _, u := range users {
		s.users[u] = true
	}
	for _, t := range tags {
		s.tags[foldTag(t)] = true
	}
	for _, c := range comments {
		s.comments[c] = true
	}
	return s
}

func (s *Set) CheckUsername(name string) bool { return s.users[name] }
func (s *Set) CheckHashTag(tag string) bool   { return s.tags[foldTag(tag)] }
func (s *Set) CheckCommentRef(id int32) bool  { return s.comments[id] }

// foldTag returns the case-folded form of tag used as a Set key.
func foldTag(tag string) string {
	return cases.Fold().String(tag)
}

// Cache returns a [Resolver] that forwards each distinct query to r once
// and remembers the answer. A Cache is meant to last for one rendering;
// it never forgets, so it must not outlive changes to r's data.
func Cache(r Resolver) Resolver {
	return &cache{
		r:        r,
		users:    make(map[string]bool),
		tags:     make(map[string]bool),
		comments: make(map[int32]bool),
		signs:    make(map[string]NumberSign),
	}
}

type cache struct {
	r        Resolver
	users    map[string]bool
	tags     map[string]bool
	comments map[int32]bool
	signs    map[string]NumberSign
}

func (c *cache) CheckUsername(name string) bool {
	ok, found := c.users[name]
	if !found {
		ok = c.r.CheckUsername(name)
		c.users[name] = ok
	}
	return ok
}

func (c *cache) CheckHashTag(tag string) bool {
	ok, found := c.tags[tag]
	if !found {
		ok = c.r.CheckHashTag(tag)
		c.tags[tag] = ok
	}
	return ok
}

func (c *cache) CheckCommentRef(id int32) bool {
	ok, found := c.comments[id]
	if !found {
		ok = c.r.CheckCommentRef(id)
		c.comments[id] = ok
	}
	return ok
}

// CheckNumberSign keeps r's own classification, if any,
// while still sharing the per-query caches above.
func (c *cache) CheckNumberSign(token string) NumberSign {
	if ns, found := c.signs[token]; found {
		return ns
	}
	var ns NumberSign
	if nr, ok := c.r.(NumberSignResolver); ok {
		ns = nr.CheckNumberSign(token)
	} else {
		ns = CheckNumberSign(c, token)
	}
	c.signs[token] = ns
	return ns
}
