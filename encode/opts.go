package encode

import "github.com/signadot/fieldpath/token"

type EncodeOption func(*EncState)

// EncState holds the settings of one encoding call.
type EncState struct {
	indent    int
	postOrder bool
	flat      bool

	Color func(token.Type, ColorAttr, string) string
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// EncodeIndent sets the indentation per tree level.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// EncodePostOrder lists tree nodes after their children.
func EncodePostOrder(v bool) EncodeOption {
	return func(es *EncState) { es.postOrder = v }
}

// EncodeFlat lists tree nodes by full path without indentation.
func EncodeFlat(v bool) EncodeOption {
	return func(es *EncState) { es.flat = v }
}
