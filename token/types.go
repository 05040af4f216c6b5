package token

import (
	"strconv"
	"strings"
)

// Type is the kind of a path token. The declaration order is also the
// ordering rank used by [CompareTokens]: NumType < StrType < EndType.
type Type int

const (
	NumType Type = iota
	StrType
	EndType
)

func (t Type) String() string {
	switch t {
	case NumType:
		return "num"
	case StrType:
		return "str"
	case EndType:
		return "end"
	}
	return "Type(" + strconv.Itoa(int(t)) + ")"
}

// Token is one segment of a path. For StrType tokens produced by a
// [Lexer], Str is a substring of the lexed path. Num holds the index as
// written, so "[1]" is Num 1.
type Token struct {
	Type Type
	Str  string
	Num  uint64
}

func Str(s string) Token {
	return Token{Type: StrType, Str: s}
}

func Num(n uint64) Token {
	return Token{Type: NumType, Num: n}
}

func End() Token {
	return Token{Type: EndType}
}

func (t Token) Equal(o Token) bool {
	if t.Type != o.Type {
		return false
	}
	switch t.Type {
	case StrType:
		return t.Str == o.Str
	case NumType:
		return t.Num == o.Num
	}
	return true
}

// String renders t as a path segment that lexes back to t when it is not
// the first segment of a path: ".name", "[3]" or `["a key"]`.
func (t Token) String() string {
	return t.segment(false)
}

func (t Token) segment(first bool) string {
	switch t.Type {
	case NumType:
		return "[" + strconv.FormatUint(t.Num, 10) + "]"
	case StrType:
		if IsIdent(t.Str) {
			if first {
				return t.Str
			}
			return "." + t.Str
		}
		return quoteKey(t.Str)
	}
	return ""
}

// Format renders toks as a canonical path. The first identifier segment
// has no leading dot and EndType tokens are skipped.
func Format(toks []Token) string {
	var b strings.Builder
	for i, t := range toks {
		b.WriteString(t.segment(i == 0))
	}
	return b.String()
}

// quoteKey brackets s with double quotes, or with single quotes if s
// contains a double quote. The grammar has no escapes, so a key holding
// both quote characters does not lex back.
func quoteKey(s string) string {
	if strings.IndexByte(s, '"') != -1 {
		return "['" + s + "']"
	}
	return `["` + s + `"]`
}
