package rcst

import (
	"fmt"
	"strings"

	"github.com/Rigidity/rue-lang/pkg/token"
)

// Stringify renders a debug dump of either a *Tree or a []token.Token.
// Interior nodes with exactly one child collapse to that child's own
// rendering — a production that matched nothing beyond delegating to a
// single sub-production (e.g. a precedence tier with no operator present)
// is noise in a debug dump, so it is elided rather than printed as an
// extra indentation level.
func Stringify(v any) string {
	switch x := v.(type) {
	case *Tree:
		var b strings.Builder
		writeNode(&b, x, 0)
		return b.String()
	case []token.Token:
		var b strings.Builder
		for _, t := range x {
			b.WriteString(t.String())
			b.WriteByte('\n')
		}
		return b.String()
	case token.Token:
		return x.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func writeNode(b *strings.Builder, n Node, depth int) {
	tree, ok := n.(*Tree)
	if !ok {
		tok := n.(token.Token)
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(tok.String())
		b.WriteByte('\n')
		return
	}
	if len(tree.Children) == 1 {
		writeNode(b, tree.Children[0], depth)
		return
	}
	b.WriteString(strings.Repeat("  ", depth))
	fmt.Fprintf(b, "%s (%d-%d)\n", tree.Kind, tree.Start, tree.Stop)
	for _, c := range tree.Children {
		writeNode(b, c, depth+1)
	}
}
