package token

import (
	"cmp"
	"fmt"
	"strings"
)

// CompareTokens orders tokens by type rank first (NumType < StrType <
// EndType). StrType tokens then compare by length and then bytewise,
// NumType tokens by value. The result is -1, 0 or +1.
func CompareTokens(a, b Token) int {
	if a.Type != b.Type {
		return cmp.Compare(a.Type, b.Type)
	}
	switch a.Type {
	case StrType:
		if len(a.Str) != len(b.Str) {
			return cmp.Compare(len(a.Str), len(b.Str))
		}
		return strings.Compare(a.Str, b.Str)
	case NumType:
		return cmp.Compare(a.Num, b.Num)
	}
	return 0
}

// ComparePaths compares two paths token by token. Quoting is not part of
// a token's identity, so "a['x']" and "a.x" are equal.
//
// When one path is a token prefix of the other, the longer, more specific
// path is greater: ComparePaths("a.b", "a.b.c") < 0.
//
// a must be a valid path; ComparePaths panics otherwise. If lexing b
// fails before a difference is found, the position of the syntax error in
// b is returned, which is always positive.
func ComparePaths(a, b string) int {
	var la, lb Lexer
	la.Reset(a)
	lb.Reset(b)
	for {
		ta, err := la.Next()
		if err != nil {
			panic(fmt.Sprintf("ComparePaths: invalid path %q: %v", a, err))
		}
		tb, err := lb.Next()
		if err != nil {
			return Pos(err)
		}
		if ta.Type == EndType || tb.Type == EndType {
			// EndType ranks above both key types, so the path which
			// still has a key is the greater one.
			return cmp.Compare(tb.Type, ta.Type)
		}
		if c := CompareTokens(ta, tb); c != 0 {
			return c
		}
	}
}
