package token

// Keywords maps every reserved, identifier-shaped lexeme to its Kind. It is
// consulted after the lexer has already matched an identifier-shaped run of
// bytes; a lexeme not present here is an Identifier. Built-in type names and
// the boolean literals "true"/"false" share this table with the language
// keywords, since the lexer resolves all of them the same way: by dictionary
// lookup on the matched identifier shape.
var Keywords = map[string]Kind{
	"and":       And,
	"or":        Or,
	"not":       Not,
	"for":       For,
	"while":     While,
	"continue":  Continue,
	"break":     Break,
	"return":    Return,
	"macro":     Macro,
	"public":    Public,
	"private":   Private,
	"protected": Protected,
	"do":        Do,
	"is":        Is,
	"as":        As,
	"if":        If,
	"else":      Else,
	"try":       Try,
	"catch":     Catch,
	"throw":     Throw,
	"finally":   Finally,
	"defer":     Defer,
	"def":       Def,
	"val":       Val,
	"var":       Var,
	"in":        In,
	"match":     Match,
	"from":      From,
	"import":    Import,
	"export":    Export,
	"extern":    Extern,
	"type":      TypeKw,
	"enum":      Enum,
	"struct":    Struct,
	"class":     Class,
	"super":     Super,
	"this":      This,
	"null":      Null,

	"void": VoidType,

	"int": IntegerType,
	"i8":  IntegerType,
	"i16": IntegerType,
	"i32": IntegerType,
	"i64": IntegerType,

	"uint": UnsignedIntegerType,
	"u8":   UnsignedIntegerType,
	"u16":  UnsignedIntegerType,
	"u32":  UnsignedIntegerType,
	"u64":  UnsignedIntegerType,

	"float": FloatType,
	"f32":   FloatType,
	"f64":   FloatType,

	"bool":   BooleanType,
	"string": StringType,

	"true":  BoolLiteral,
	"false": BoolLiteral,
}

// Lookup returns the Kind for an identifier-shaped lexeme, reporting
// Identifier if the lexeme is not reserved.
func Lookup(lexeme string) Kind {
	if kind, ok := Keywords[lexeme]; ok {
		return kind
	}
	return Identifier
}
