// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prettify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckNumberSign(t *testing.T) {
	r := NewSet(nil, []string{"Go", "1x"}, []int32{7})
	assert.Equal(t, NumberSign{Kind: CommentRef, Comment: 7}, CheckNumberSign(r, "7"))
	assert.Equal(t, NumberSign{Kind: CommentRef, Comment: 7}, CheckNumberSign(r, "007"))
	assert.Equal(t, NumberSign{}, CheckNumberSign(r, "8"), "unknown comment")
	assert.Equal(t, NumberSign{Kind: HashTag, Tag: "go"}, CheckNumberSign(r, "go"))
	assert.Equal(t, NumberSign{Kind: HashTag, Tag: "1x"}, CheckNumberSign(r, "1x"))
	assert.Equal(t, NumberSign{}, CheckNumberSign(r, "rust"))
	// Too large for int32, so it is looked up as a tag.
	assert.Equal(t, NumberSign{}, CheckNumberSign(r, "4294967296"))
}

func TestSet(t *testing.T) {
	r := NewSet([]string{"alice"}, []string{"GoLang"}, []int32{1, 2})
	assert.True(t, r.CheckUsername("alice"))
	assert.False(t, r.CheckUsername("Alice"), "usernames are case-sensitive")
	assert.True(t, r.CheckHashTag("GOLANG"), "tags are case-folded")
	assert.True(t, r.CheckHashTag("golang"))
	assert.False(t, r.CheckHashTag("go"))
	assert.True(t, r.CheckCommentRef(2))
	assert.False(t, r.CheckCommentRef(3))

	var zero Set
	assert.False(t, zero.CheckUsername("alice"))
	assert.False(t, zero.CheckHashTag("go"))
	assert.False(t, zero.CheckCommentRef(1))
}

// countingResolver counts the queries that reach it.
type countingResolver struct {
	Resolver
	calls map[string]int
}

func (c *countingResolver) CheckUsername(name string) bool {
	c.calls["user "+name]++
	return c.Resolver.CheckUsername(name)
}

func (c *countingResolver) CheckHashTag(tag string) bool {
	c.calls["tag "+tag]++
	return c.Resolver.CheckHashTag(tag)
}

func TestCache(t *testing.T) {
	cr := &countingResolver{
		Resolver: NewSet([]string{"alice"}, []string{"go"}, nil),
		calls:    make(map[string]int),
	}
	out := Body("@alice @alice @bob @bob #go #go #rust #rust", Cache(cr))
	assert.Equal(t, []string{"alice", "alice"}, out.Usernames)
	assert.Equal(t, []string{"go", "go"}, out.HashTags)
	assert.Equal(t, map[string]int{
		"user alice": 1,
		"user bob":   1,
		"tag go":     1,
		"tag rust":   1,
	}, cr.calls)
}

// everyTag classifies every #token as a tag, numeric or not.
type everyTag struct{ Set }

func (everyTag) CheckNumberSign(token string) NumberSign {
	return NumberSign{Kind: HashTag, Tag: token}
}

func TestNumberSignResolver(t *testing.T) {
	out := Body("#12 #x", &everyTag{})
	assert.Equal(t, []string{"12", "x"}, out.HashTags)
	assert.Empty(t, out.CommentRefs)

	out = Body("#12 #12", Cache(&everyTag{}))
	assert.Equal(t, []string{"12", "12"}, out.HashTags)
}
