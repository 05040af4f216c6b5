// Package token provides lexing and ordering of field paths.
//
// A field path addresses a nested field inside a record:
//
//	a.b[3]['k']
//
// [Lexer] splits a path into a sequence of [Token] values. An identifier
// or a quoted bracket key yields a [StrType] token whose Str is a substring
// of the source, a decimal bracket index yields a [NumType] token, and the
// end of input yields an [EndType] token.
//
// Malformed paths produce a [*SyntaxError] carrying the 1-based position,
// counted in code points, of the first offending symbol.
//
// [ComparePaths] orders two paths token by token without building any
// tree state.
package token
