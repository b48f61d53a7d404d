// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package prettify converts lightly structured discussion text into
// sanitized HTML.
//
// The input language is a mix of angle-bracket escapes and a small
// BBCode-like tag set:
//
//	<https://example.com>      link, brackets stay visible
//	<@name> @name              user mention
//	<#tag> #tag #123           tag or same-post comment reference
//	[b] [i] [url=..] [quote]   BBCode tags
//	<table> ... </table>       raw table passthrough
//	<code> ... </code>         preformatted code block
//
// [Body] renders a post or comment body and [Title] renders a one-line title.
// Both return an [Output] holding the HTML along with the usernames, tags and
// comment ids that were rendered as links, so that callers can record
// notifications and tag associations.
//
// Rendering never fails. Malformed markup degrades to literal text.
package prettify

// An Output is the result of rendering a body or title.
//
// Every entry in Usernames, HashTags and CommentRefs corresponds to a link
// written to HTML, in the order the links were written.
// Entries are not deduplicated.
type Output struct {
	HTML        string
	Usernames   []string
	HashTags    []string
	CommentRefs []int32
}
