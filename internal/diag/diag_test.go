package diag

import "testing"

func TestFurthestLaterWins(t *testing.T) {
	a := New(Parse, ErrExpectedToken, "a", 5, 6)
	b := New(Parse, ErrExpectedToken, "b", 10, 11)
	if got := Furthest(a, b); got != b {
		t.Errorf("Furthest(a, b) = %v, want b", got)
	}
	if got := Furthest(b, a); got != b {
		t.Errorf("Furthest(b, a) = %v, want b (b is still furthest)", got)
	}
}

func TestFurthestTieGoesToCandidate(t *testing.T) {
	a := New(Parse, ErrExpectedToken, "a", 5, 6)
	b := New(Parse, ErrExpectedStatement, "b", 5, 8)
	if got := Furthest(a, b); got != b {
		t.Errorf("Furthest(a, b) at equal start = %v, want b (later wins on ties)", got)
	}
}

func TestFurthestNilHandling(t *testing.T) {
	a := New(Parse, ErrExpectedToken, "a", 1, 2)
	if got := Furthest(nil, a); got != a {
		t.Errorf("Furthest(nil, a) = %v, want a", got)
	}
	if got := Furthest(a, nil); got != a {
		t.Errorf("Furthest(a, nil) = %v, want a", got)
	}
}

func TestRenderBasic(t *testing.T) {
	src := []byte("val x = ;")
	d := New(Parse, ErrExpectedExpression, "Expected expression", 8, 9)
	out := Render(d, "test.rue", src)
	want := "test.rue:1\nval x = ;\n        ^\nParse: Expected expression at 1:9"
	if out != want {
		t.Errorf("Render() =\n%q\nwant\n%q", out, want)
	}
}

func TestRenderWithContent(t *testing.T) {
	c := byte('@')
	d := &Diagnostic{Phase: Lex, Code: ErrUnexpectedCharacter, Message: "Unexpected character", Content: &c, Start: 0, Stop: 1}
	out := Render(d, "", []byte("@"))
	if out != "1\n@\n^\nLex: Unexpected character (@) at 1:1" {
		t.Errorf("Render() = %q", out)
	}
}

func TestRenderIgnoresCarriageReturn(t *testing.T) {
	src := []byte("val x = 1;\r\nreturn;")
	d := New(Parse, ErrUnexpectedToken, "Unexpected token", 12, 18)
	_, col := lineAndColumn(src, d.Start)
	if col != 1 {
		t.Errorf("column after \\r\\n = %d, want 1", col)
	}
}
