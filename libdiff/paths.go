// Package libdiff computes ordered differences between lists of paths.
package libdiff

import (
	"github.com/signadot/fieldpath/token"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Delete
	Insert
)

func (o Op) String() string {
	switch o {
	case Delete:
		return "-"
	case Insert:
		return "+"
	}
	return " "
}

// Edit is one line of a path list diff. Path is spelled as in the list it
// comes from: the "to" list for Insert and Equal, the "from" list for
// Delete.
type Edit struct {
	Op   Op
	Path string
}

func (e Edit) String() string {
	return e.Op.String() + " " + e.Path
}

// DiffPaths returns the edits turning from into to. Paths naming the same
// field, such as "a.b" and "a['b']", are equal.
func DiffPaths(from, to []string) []Edit {
	keyMap := map[string]rune{}
	fromRunes := mapPathsTo(keyMap, from)
	toRunes := mapPathsTo(keyMap, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)
	res := make([]Edit, 0, max(len(from), len(to)))
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		for range []rune(diff.Text) {
			switch diff.Type {
			case diffpatch.DiffDelete:
				res = append(res, Edit{Op: Delete, Path: from[fi]})
				fi++
			case diffpatch.DiffEqual:
				res = append(res, Edit{Op: Equal, Path: to[ti]})
				fi++
				ti++
			case diffpatch.DiffInsert:
				res = append(res, Edit{Op: Insert, Path: to[ti]})
				ti++
			}
		}
	}
	return res
}

// Changed reports whether edits holds anything but Equal edits.
func Changed(edits []Edit) bool {
	for _, e := range edits {
		if e.Op != Equal {
			return true
		}
	}
	return false
}

// Reverse returns the edits turning to back into from.
func Reverse(edits []Edit) []Edit {
	res := make([]Edit, len(edits))
	for i, e := range edits {
		switch e.Op {
		case Delete:
			e.Op = Insert
		case Insert:
			e.Op = Delete
		}
		res[i] = e
	}
	return res
}

func mapPathsTo(m map[string]rune, paths []string) []rune {
	rs := make([]rune, len(paths))
	for i, p := range paths {
		k := canonical(p)
		r, ok := m[k]
		if !ok {
			r = rune(len(m))
			if r >= 0xD800 {
				// skip surrogates, which do not survive the string round trip
				r += 0x800
			}
			m[k] = r
		}
		rs[i] = r
	}
	return rs
}

func canonical(p string) string {
	toks, err := token.Tokenize(p)
	if err != nil {
		return "\x00" + p
	}
	return token.Format(toks)
}
