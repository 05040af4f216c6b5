package token

import (
	"fmt"
	"strings"

	"github.com/signadot/fieldpath/debug"
)

// PrintTokens writes toks to the debug log.
func PrintTokens(toks []Token, msg string) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s tokens:\n", msg)
	for i := range toks {
		t := &toks[i]
		fmt.Fprintf(&b, "\t%s `%s`\n", t.Type, t)
	}
	debug.Logf("%s", b.String())
}
