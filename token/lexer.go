package token

import (
	"math"
	"unicode"
	"unicode/utf8"

	"github.com/signadot/fieldpath/debug"
)

// Lexer tokenizes a field path. The zero value lexes the empty path; use
// [NewLexer] or [Lexer.Reset] to set the source.
//
// Grammar:
//
//	path  = [ "." ] ident { "." ident | "[" index "]" }
//	ident = ( letter | "_" ) { alphabetic | digit | "_" }
//	index = digit { digit } | "'" byte { byte } "'" | '"' byte { byte } '"'
//
// A path may also start with a bracket index.
type Lexer struct {
	src     string
	off     int
	symbols int
}

func NewLexer(src string) *Lexer {
	return &Lexer{src: src}
}

func (l *Lexer) Reset(src string) {
	l.src = src
	l.off = 0
	l.symbols = 0
}

// Offset returns the byte offset of the next unread symbol.
func (l *Lexer) Offset() int {
	return l.off
}

// Symbols returns the number of code points consumed so far.
func (l *Lexer) Symbols() int {
	return l.symbols
}

// Next returns the next token. At the end of input it returns an
// EndType token, and keeps doing so on further calls. A malformed path
// yields a [*SyntaxError]; the lexer state after an error is unspecified.
func (l *Lexer) Next() (Token, error) {
	tok, err := l.next()
	if debug.Lex() {
		debug.Logf("lex %q at %d: %s %v\n", l.src, l.symbols, tok.Type, err)
	}
	return tok, err
}

func (l *Lexer) next() (Token, error) {
	if l.off == len(l.src) {
		return Token{Type: EndType}, nil
	}
	lastOff := l.off
	c, err := l.readSymbol()
	if err != nil {
		return Token{}, err
	}
	switch c {
	case '[':
		if l.off == len(l.src) {
			return Token{}, syntaxErr(l.symbols, ErrUnterminated)
		}
		var tok Token
		if q := l.currentChar(); q == '"' || q == '\'' {
			tok, err = l.parseString(q)
		} else {
			tok, err = l.parseInteger()
		}
		if err != nil {
			return Token{}, err
		}
		// a bracket must be closed regardless of its content
		if l.off == len(l.src) {
			return Token{}, syntaxErr(l.symbols+1, ErrUnterminated)
		}
		if l.currentChar() != ']' {
			return Token{}, syntaxErr(l.symbols+1, ErrUnexpected)
		}
		l.skipChar()
		return tok, nil
	case '.':
		if l.off == len(l.src) {
			return Token{}, syntaxErr(l.symbols+1, ErrUnterminated)
		}
		return l.parseIdentifier()
	default:
		if lastOff != 0 {
			// only the first segment may omit its dot
			return Token{}, syntaxErr(l.symbols, ErrUnexpected)
		}
		l.revertSymbol(lastOff)
		return l.parseIdentifier()
	}
}

func (l *Lexer) readSymbol() (rune, error) {
	if l.off == len(l.src) {
		return utf8.RuneError, syntaxErr(l.symbols+1, ErrUnterminated)
	}
	c, size := utf8.DecodeRuneInString(l.src[l.off:])
	if c == utf8.RuneError && size <= 1 {
		return utf8.RuneError, syntaxErr(l.symbols+1, ErrBadUTF8)
	}
	l.off += size
	l.symbols++
	return c, nil
}

func (l *Lexer) revertSymbol(off int) {
	l.off = off
	l.symbols--
}

// skipChar advances past a symbol known to be a single byte.
func (l *Lexer) skipChar() {
	l.off++
	l.symbols++
}

func (l *Lexer) currentChar() byte {
	return l.src[l.off]
}

// parseString reads a key quoted with q. The lexer is left right after
// the closing quote.
func (l *Lexer) parseString(q byte) (Token, error) {
	l.skipChar()
	start := l.off
	for {
		c, err := l.readSymbol()
		if err != nil {
			return Token{}, err
		}
		if c != rune(q) {
			continue
		}
		n := l.off - start - 1
		if n == 0 {
			return Token{}, syntaxErr(l.symbols, ErrEmptyKey)
		}
		return Token{Type: StrType, Str: l.src[start : start+n]}, nil
	}
}

// parseInteger reads a decimal index. The lexer is left right after the
// last digit.
func (l *Lexer) parseInteger() (Token, error) {
	if !isDigit(l.currentChar()) {
		return Token{}, syntaxErr(l.symbols+1, ErrUnexpected)
	}
	var v uint64
	for l.off < len(l.src) && isDigit(l.currentChar()) {
		d := uint64(l.currentChar() - '0')
		if v > (math.MaxUint64-d)/10 {
			return Token{}, syntaxErr(l.symbols+1, ErrNumber)
		}
		v = v*10 + d
		l.skipChar()
	}
	return Token{Type: NumType, Num: v}, nil
}

// parseIdentifier reads an unquoted key. The lexer is left on the first
// symbol which cannot continue the identifier.
func (l *Lexer) parseIdentifier() (Token, error) {
	start := l.off
	c, err := l.readSymbol()
	if err != nil {
		return Token{}, err
	}
	if !isIdentStart(c) {
		return Token{}, syntaxErr(l.symbols, ErrUnexpected)
	}
	for l.off < len(l.src) {
		c, size := utf8.DecodeRuneInString(l.src[l.off:])
		if c == utf8.RuneError && size <= 1 {
			break
		}
		if !isIdentSymbol(c) {
			break
		}
		l.off += size
		l.symbols++
	}
	return Token{Type: StrType, Str: l.src[start:l.off]}, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c rune) bool {
	return c == '_' || unicode.IsLetter(c)
}

// isIdentSymbol reports whether c may continue an identifier: any
// character with the Unicode Alphabetic property, a decimal digit or '_'.
func isIdentSymbol(c rune) bool {
	return c == '_' || unicode.IsLetter(c) || unicode.IsDigit(c) ||
		unicode.Is(unicode.Nl, c) || unicode.Is(unicode.Other_Alphabetic, c)
}

// IsIdent reports whether s lexes as a single unquoted identifier.
func IsIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		if c == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(s[i:]); size <= 1 {
				return false
			}
		}
		if i == 0 {
			if !isIdentStart(c) {
				return false
			}
			continue
		}
		if !isIdentSymbol(c) {
			return false
		}
	}
	return true
}

// Tokenize lexes the whole path and returns its tokens without the
// trailing EndType token. The returned Str fields share memory with path.
func Tokenize(path string) ([]Token, error) {
	var (
		l   Lexer
		res []Token
	)
	l.Reset(path)
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		if tok.Type == EndType {
			if debug.Lex() {
				PrintTokens(res, path)
			}
			return res, nil
		}
		res = append(res, tok)
	}
}

// Validate returns the first syntax error in path, or nil.
func Validate(path string) error {
	var l Lexer
	l.Reset(path)
	for {
		tok, err := l.Next()
		if err != nil {
			return err
		}
		if tok.Type == EndType {
			return nil
		}
	}
}
