package encode

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/signadot/fieldpath/token"
	"github.com/signadot/fieldpath/tree"
)

// Label annotates a node in [EncodeTree]. Nodes for which ok is false are
// left out; their descendants are still listed.
type Label[T any] func(n *tree.Node[T]) (label string, ok bool)

func (es *EncState) color(t token.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

// segment renders tok as it appears in a path. A first identifier has no
// leading dot.
func segment(tok token.Token, first bool, es *EncState) string {
	s := tok.String()
	switch {
	case tok.Type == token.EndType:
		return ""
	case strings.HasPrefix(s, "."):
		key := es.color(tok.Type, KeyColor, s[1:])
		if first {
			return key
		}
		return es.color(tok.Type, SepColor, ".") + key
	default:
		return es.color(tok.Type, SepColor, "[") +
			es.color(tok.Type, KeyColor, s[1:len(s)-1]) +
			es.color(tok.Type, SepColor, "]")
	}
}

// EncodePath writes the canonical path of toks.
func EncodePath(w io.Writer, toks []token.Token, opts ...EncodeOption) error {
	es := newEncState(opts)
	var b strings.Builder
	for i, tok := range toks {
		b.WriteString(segment(tok, i == 0, es))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// EncodeTokens writes one line per token: its type and its value. The
// stream ends with an end token line.
func EncodeTokens(w io.Writer, toks []token.Token, opts ...EncodeOption) error {
	es := newEncState(opts)
	for _, tok := range slices.Concat(toks, []token.Token{token.End()}) {
		var v string
		switch tok.Type {
		case token.StrType:
			v = "\t" + es.color(tok.Type, KeyColor, fmt.Sprintf("%q", tok.Str))
		case token.NumType:
			v = "\t" + es.color(tok.Type, KeyColor, fmt.Sprint(tok.Num))
		}
		if _, err := fmt.Fprintf(w, "%s%s\n", es.color(tok.Type, LabelColor, tok.Type.String()), v); err != nil {
			return err
		}
	}
	return nil
}

// EncodeTree writes the nodes under root, one per line. By default nodes
// are listed in pre-order and indented by depth below root; [EncodeFlat]
// lists full paths instead. A nil label writes keys only.
func EncodeTree[T any](w io.Writer, root *tree.Node[T], label Label[T], opts ...EncodeOption) error {
	es := newEncState(opts)
	walk := tree.PreOrder(root)
	if es.postOrder {
		walk = tree.PostOrder(root)
	}
	base := root.Depth()
	for n := range walk {
		text, ok := "", true
		if label != nil {
			text, ok = label(n)
		}
		if !ok {
			continue
		}
		var b strings.Builder
		if es.flat {
			for i, tok := range n.Keys() {
				b.WriteString(segment(tok, i == 0, es))
			}
		} else {
			b.WriteString(strings.Repeat(" ", es.indent*(n.Depth()-base-1)))
			b.WriteString(segment(n.Key, true, es))
		}
		if text != "" {
			b.WriteString(es.color(n.Key.Type, SepColor, ":"))
			b.WriteString(" ")
			b.WriteString(es.color(n.Key.Type, LabelColor, text))
		}
		b.WriteByte('\n')
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}

// EncodeError writes path and a marker under the position of err, if err
// is a syntax error, followed by the error.
func EncodeError(w io.Writer, path string, err error, opts ...EncodeOption) error {
	es := newEncState(opts)
	pos := token.Pos(err)
	if pos == 0 {
		_, werr := fmt.Fprintln(w, es.color(token.EndType, ErrorColor, err.Error()))
		return werr
	}
	_, werr := fmt.Fprintf(w, "%s\n%s%s %s\n", path, strings.Repeat(" ", pos-1),
		es.color(token.EndType, ErrorColor, "^"), es.color(token.EndType, ErrorColor, err.Error()))
	return werr
}
