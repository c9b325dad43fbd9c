// Package token defines the closed set of lexical token kinds produced by
// the Rue lexer, along with the keyword and operator tables that drive
// longest-match tokenization.
package token

// Kind identifies the syntactic category of a Token. The set of values is
// closed: every lexeme the lexer can produce maps to exactly one Kind.
type Kind int

const (
	// Special tokens.
	Illegal Kind = iota
	EOF

	literalStart
	// Identifiers and literals.
	Identifier
	IntLiteral
	FloatLiteral
	BinaryLiteral
	OctalLiteral
	HexadecimalLiteral
	StringLiteral
	BoolLiteral
	literalEnd

	typeStart
	// Collapsed built-in type kinds.
	VoidType
	IntegerType
	UnsignedIntegerType
	FloatType
	BooleanType
	StringType
	typeEnd

	keywordStart
	// Keywords, one Kind per reserved word in the grammar.
	And
	Or
	Not
	For
	While
	Continue
	Break
	Return
	Macro
	Public
	Private
	Protected
	Do
	Is
	As
	If
	Else
	Try
	Catch
	Throw
	Finally
	Defer
	Def
	Val
	Var
	In
	Match
	From
	Import
	Export
	Extern
	TypeKw
	Enum
	Struct
	Class
	Super
	This
	Null
	keywordEnd

	delimiterStart
	// Delimiters.
	OpenParenthesis
	CloseParenthesis
	OpenBracket
	CloseBracket
	OpenBrace
	CloseBrace
	Semicolon
	Colon
	Comma
	Underscore
	Dot
	DotDot
	Ellipsis
	delimiterEnd

	operatorStart
	// Arithmetic and bitwise operators.
	Plus
	Minus
	Star
	Slash
	Percent
	Amp
	Pipe
	Caret
	Tilde

	// Comparison operators.
	Equal
	NotEqual
	Less
	Greater
	LessEqual
	GreaterEqual

	// Shift operators.
	LeftShift
	RightShift
	UnsignedRightShift

	// Assignment operators.
	Assign
	PlusAssign
	MinusAssign
	StarAssign
	SlashAssign
	PercentAssign
	AmpAssign
	PipeAssign
	CaretAssign
	QuestionAssign
	LeftShiftAssign
	RightShiftAssign
	UnsignedRightShiftAssign

	// Ternary / optional / lambda operators.
	Question
	Coalesce
	OptionalDot
	FatArrow
	operatorEnd
)

// IsLiteral reports whether k is one of the literal-value token kinds.
func (k Kind) IsLiteral() bool { return k > literalStart && k < literalEnd }

// IsTypeKeyword reports whether k is one of the collapsed built-in type kinds.
func (k Kind) IsTypeKeyword() bool { return k > typeStart && k < typeEnd }

// IsKeyword reports whether k is a reserved word kind.
func (k Kind) IsKeyword() bool { return k > keywordStart && k < keywordEnd }

// IsDelimiter reports whether k is a delimiter/punctuator kind.
func (k Kind) IsDelimiter() bool { return k > delimiterStart && k < delimiterEnd }

// IsOperator reports whether k is an operator kind.
func (k Kind) IsOperator() bool { return k > operatorStart && k < operatorEnd }

// String returns the canonical name of k, e.g. "Identifier" or "FatArrow".
func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Unknown"
}

var kindNames = [...]string{
	Illegal: "Illegal",
	EOF:     "EOF",

	Identifier:         "Identifier",
	IntLiteral:         "IntLiteral",
	FloatLiteral:       "FloatLiteral",
	BinaryLiteral:      "BinaryLiteral",
	OctalLiteral:       "OctalLiteral",
	HexadecimalLiteral: "HexadecimalLiteral",
	StringLiteral:      "StringLiteral",
	BoolLiteral:        "BoolLiteral",

	VoidType:            "VoidType",
	IntegerType:         "IntegerType",
	UnsignedIntegerType: "UnsignedIntegerType",
	FloatType:           "FloatType",
	BooleanType:         "BooleanType",
	StringType:          "StringType",

	And:       "and",
	Or:        "or",
	Not:       "not",
	For:       "for",
	While:     "while",
	Continue:  "continue",
	Break:     "break",
	Return:    "return",
	Macro:     "macro",
	Public:    "public",
	Private:   "private",
	Protected: "protected",
	Do:        "do",
	Is:        "is",
	As:        "as",
	If:        "if",
	Else:      "else",
	Try:       "try",
	Catch:     "catch",
	Throw:     "throw",
	Finally:   "finally",
	Defer:     "defer",
	Def:       "def",
	Val:       "val",
	Var:       "var",
	In:        "in",
	Match:     "match",
	From:      "from",
	Import:    "import",
	Export:    "export",
	Extern:    "extern",
	TypeKw:    "type",
	Enum:      "enum",
	Struct:    "struct",
	Class:     "class",
	Super:     "super",
	This:      "this",
	Null:      "null",

	OpenParenthesis:  "OpenParenthesis",
	CloseParenthesis: "CloseParenthesis",
	OpenBracket:      "OpenBracket",
	CloseBracket:     "CloseBracket",
	OpenBrace:        "OpenBrace",
	CloseBrace:       "CloseBrace",
	Semicolon:        "Semicolon",
	Colon:            "Colon",
	Comma:            "Comma",
	Underscore:       "Underscore",
	Dot:              "Dot",
	DotDot:           "DotDot",
	Ellipsis:         "Ellipsis",

	Plus:    "Plus",
	Minus:   "Minus",
	Star:    "Star",
	Slash:   "Slash",
	Percent: "Percent",
	Amp:     "Amp",
	Pipe:    "Pipe",
	Caret:   "Caret",
	Tilde:   "Tilde",

	Equal:        "Equal",
	NotEqual:     "NotEqual",
	Less:         "Less",
	Greater:      "Greater",
	LessEqual:    "LessEqual",
	GreaterEqual: "GreaterEqual",

	LeftShift:          "LeftShift",
	RightShift:         "RightShift",
	UnsignedRightShift: "UnsignedRightShift",

	Assign:                   "Assign",
	PlusAssign:               "PlusAssign",
	MinusAssign:              "MinusAssign",
	StarAssign:               "StarAssign",
	SlashAssign:              "SlashAssign",
	PercentAssign:            "PercentAssign",
	AmpAssign:                "AmpAssign",
	PipeAssign:               "PipeAssign",
	CaretAssign:              "CaretAssign",
	QuestionAssign:           "QuestionAssign",
	LeftShiftAssign:          "LeftShiftAssign",
	RightShiftAssign:         "RightShiftAssign",
	UnsignedRightShiftAssign: "UnsignedRightShiftAssign",

	Question:    "Question",
	Coalesce:    "Coalesce",
	OptionalDot: "OptionalDot",
	FatArrow:    "FatArrow",
}
