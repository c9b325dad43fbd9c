package token

import "fmt"

// Token is a single lexeme with its byte span in the source. Start and Stop
// are half-open byte offsets [Start, Stop) into the original source, except
// for StringLiteral tokens whose Text holds the decoded literal content
// (escapes resolved, surrounding quotes stripped) rather than a verbatim
// slice of source bytes.
type Token struct {
	Kind  Kind
	Text  string
	Start int
	Stop  int
}

// String returns a debug representation, e.g. `Identifier("foo")@[3:6)`.
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@[%d:%d)", t.Kind, t.Text, t.Start, t.Stop)
}

// Span returns the token's half-open byte range, satisfying the same
// interface as a CST subtree so tokens and trees can share a child slot.
func (t Token) Span() (start, stop int) {
	return t.Start, t.Stop
}
