package rparser

import (
	"testing"

	"github.com/Rigidity/rue-lang/internal/rcst"
	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/google/go-cmp/cmp"
)

// TestEndToEndScenarios snapshots the debug pretty-print of every
// end-to-end example, covering the full lex+parse pipeline the way a
// caller would actually drive it.
func TestEndToEndScenarios(t *testing.T) {
	scenarios := []struct {
		name string
		src  string
	}{
		{"field_declaration", "val x = 5;"},
		{"if_else_with_comparison", "if (a > 0) { x += 1; } else { x -= 1; }"},
		{"def_with_parameters", "def f(a: int, b: int): int { return a + b; }"},
		{"string_escape", `"hi\n\x41";`},
		{"reference_chain", "a.b?.c[0](x, y);"},
		{"match_with_fallback", "match (n) { 1 => a; 2 => b; c; }"},
	}

	for _, sc := range scenarios {
		t.Run(sc.name, func(t *testing.T) {
			tree := mustParse(t, sc.src)
			snaps.MatchSnapshot(t, rcst.Stringify(tree))
		})
	}
}

func TestStringifyIsDeterministic(t *testing.T) {
	const src = "def f(a: int): int { if (a > 0) { return a; } else { return 0 - a; } }"
	first := rcst.Stringify(mustParse(t, src))
	second := rcst.Stringify(mustParse(t, src))
	if first != second {
		t.Errorf("stringify(parse(lex(s))) is not stable:\n%s\nvs\n%s", first, second)
	}
}

// TestParseTreeIsStructurallyDeterministic re-parses the same source and
// diffs the two resulting trees field by field (kinds, spans, and child
// shape, not just their rendered strings) so a span or ordering
// regression that happens to stringify identically would still surface.
func TestParseTreeIsStructurallyDeterministic(t *testing.T) {
	const src = "def f(a: int): int { if (a > 0) { return a; } else { return 0 - a; } }"
	first := mustParse(t, src)
	second := mustParse(t, src)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("parse(lex(s)) is not structurally stable (-first +second):\n%s", diff)
	}
}

func TestTreeSpanInvariant(t *testing.T) {
	tree := mustParse(t, "def f(a: int, b: int): int { return a + b; }")
	var walk func(n rcst.Node)
	walk = func(n rcst.Node) {
		tr, ok := n.(*rcst.Tree)
		if !ok {
			return
		}
		if tr.Start > tr.Stop {
			t.Errorf("%s has Start(%d) > Stop(%d)", tr.Kind, tr.Start, tr.Stop)
		}
		for _, c := range tr.Children {
			walk(c)
		}
	}
	walk(tree)
}
