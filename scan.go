// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prettify

import "github.com/emirpasic/gods/stacks/arraystack"

// scanAngleBrackets scans an angle-bracket escape at the start of s,
// which must begin with '<'.
//
// An escape opens with a run of count '<' bytes and closes with a run of
// exactly count '>' bytes. Shorter or longer '>' runs inside are content:
//
//	<chk>     ⇒ "chk", 1, 4
//	<<ch>k>>  ⇒ "ch>k", 2, 6
//
// A space or newline before the closing run, or the end of s, makes the
// escape malformed; scanAngleBrackets then returns empty contents and
// end == count. On success end is the offset of the closing run, so the
// escape occupies s[:end+count].
func scanAngleBrackets(s string) (contents string, count, end int) {
	for count < len(s) && s[count] == '<' {
		count++
	}
	for i := count; i < len(s); {
		switch s[i] {
		case ' ', '\n':
			return "", count, count
		case '>':
			j := i
			for j < len(s) && s[j] == '>' {
				j++
			}
			if j-i == count {
				return s[count:i], count, i
			}
			i = j
		default:
			i++
		}
	}
	return "", count, count
}

// scanLexicalToken returns the token at the start of text:
// a URL when isURL is set, or else the name following @ or #.
//
// Parentheses and square brackets are tracked so that a closing bracket
// only belongs to the token when the token opened it:
//
//	www.com/Ace_(hardware)  ⇒ www.com/Ace_(hardware)
//	www.com/Ace)            ⇒ www.com/Ace
//
// Punctuation at the end of the token, as at the end of a sentence,
// is left out.
func scanLexicalToken(text string, isURL bool) string {
	stack := arraystack.New()
	i := 0
Loop:
	for i < len(text) {
		c := text[i]
		switch {
		case c == ' ' || c == '\n' || c == '<' || c == '>':
			break Loop
		case !isURL && (c == '#' || c == '@'):
			break Loop
		case c == '[' && i+1 < len(text) && text[i+1] == '/':
			// BBCode end tag.
			break Loop
		case c == '(' || c == '[':
			stack.Push(c)
		case c == ')' || c == ']':
			if !closesTop(stack, c) {
				break Loop
			}
			stack.Pop()
		case isTrailingPunct(c):
			if i+1 >= len(text) {
				break Loop
			}
			next := text[i+1]
			if isSpace(next) || next == '<' || next == '>' || isTrailingPunct(next) {
				break Loop
			}
			if (next == ')' || next == ']') && closesTop(stack, next) {
				stack.Pop()
				i += 2
				continue
			}
		}
		i++
	}
	return text[:i]
}

// closesTop reports whether the closing bracket c matches
// the opening bracket on top of stack.
func closesTop(stack *arraystack.Stack, c byte) bool {
	top, ok := stack.Peek()
	if !ok {
		return false
	}
	open, _ := top.(byte)
	return c == ')' && open == '(' || c == ']' && open == '['
}
