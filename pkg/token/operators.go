package token

// Operator pairs a literal operator/punctuator lexeme with the Kind it
// produces.
type Operator struct {
	Lexeme string
	Kind   Kind
}

// Operators is the ordered operator/punctuator table consulted by the
// lexer: the first entry whose Lexeme is a prefix of the remaining input
// wins. The order is semantically load-bearing, not cosmetic — every
// lexeme that is a prefix of another lexeme in this table must appear
// after the longer one, so that longest-match tokenization falls out of a
// simple linear scan instead of a separate length-sorting pass.
var Operators = []Operator{
	{"<<=", LeftShiftAssign},
	{"<<", LeftShift},
	{"<=", LessEqual},
	{"<", Less},

	{">>>=", UnsignedRightShiftAssign},
	{">>>", UnsignedRightShift},
	{">>=", RightShiftAssign},
	{">>", RightShift},
	{">=", GreaterEqual},
	{">", Greater},

	{"==", Equal},
	{"!=", NotEqual},
	{"+=", PlusAssign},
	{"-=", MinusAssign},
	{"*=", StarAssign},
	{"/=", SlashAssign},
	{"%=", PercentAssign},
	{"&=", AmpAssign},
	{"|=", PipeAssign},
	{"^=", CaretAssign},
	{"?=", QuestionAssign},
	{"=>", FatArrow},

	{"?:", Coalesce},
	{"?.", OptionalDot},

	{"=", Assign},
	{"+", Plus},
	{"-", Minus},
	{"*", Star},
	{"/", Slash},
	{"%", Percent},
	{"&", Amp},
	{"|", Pipe},
	{"^", Caret},
	{"?", Question},

	{"...", Ellipsis},
	{"..", DotDot},
	{".", Dot},

	{"~", Tilde},

	{"(", OpenParenthesis},
	{")", CloseParenthesis},
	{"[", OpenBracket},
	{"]", CloseBracket},
	{"{", OpenBrace},
	{"}", CloseBrace},
	{";", Semicolon},
	{":", Colon},
	{",", Comma},
	{"_", Underscore},
}
