package token

const (
	Undetermined Token = iota

	Skip

	Illegal
	Eof
	Comment

	String
	Number

	Plus      // +
	Minus     // -
	Multiply  // *
	Exponent  // **
	Slash     // /
	Remainder // %

	And                // &
	Or                 // |
	ExclusiveOr        // ^
	ShiftLeft          // <<
	ShiftRight         // >>
	UnsignedShiftRight // >>>

	AddAssign       // +=
	SubtractAssign  // -=
	MultiplyAssign  // *=
	ExponentAssign  // **=
	QuotientAssign  // /=
	RemainderAssign // %=

	AndAssign                // &=
	OrAssign                 // |=
	ExclusiveOrAssign        // ^=
	ShiftLeftAssign          // <<=
	ShiftRightAssign         // >>=
	UnsignedShiftRightAssign // >>>=

	LogicalAnd       // &&
	LogicalOr        // ||
	Coalesce         // ??
	LogicalAndAssign // &&=
	LogicalOrAssign  // ||=
	CoalesceAssign   // ??=
	Increment        // ++
	Decrement        // --

	Equal       // ==
	StrictEqual // ===
	Less        // <
	Greater     // >
	Assign      // =
	Not         // !

	BitwiseNot // ~

	NotEqual       // !=
	StrictNotEqual // !==
	LessOrEqual    // <=
	GreaterOrEqual // >=

	LeftParenthesis // (
	LeftBracket     // [
	LeftBrace       // {
	Comma           // ,
	Period          // .

	RightParenthesis // )
	RightBracket     // ]
	RightBrace       // }
	Semicolon        // ;
	Colon            // :
	QuestionMark     // ?
	Arrow            // =>
	Ellipsis         // ...

	Identifier
	Keyword
	Boolean
	Null

	If
	In
	Do

	Var
	For
	New
	Try

	This
	Else
	Case
	Void
	With

	Const
	While
	Break
	Catch
	Throw
	Class
	Super

	Return
	Typeof
	Delete
	Switch

	Default
	Finally
	Extends

	Function
	Continue
	Debugger

	InstanceOf

	Of
	Let
	Static
	Async
	Await
	Yield
)

var token2string = [...]string{
	Illegal:                  "Illegal",
	Eof:                      "Eof",
	Comment:                  "Comment",
	Keyword:                  "Keyword",
	String:                   "String",
	Boolean:                  "Boolean",
	Null:                     "Null",
	Number:                   "Number",
	Identifier:               "Identifier",
	Plus:                     "+",
	Minus:                    "-",
	Exponent:                 "**",
	Multiply:                 "*",
	Slash:                    "/",
	Remainder:                "%",
	And:                      "&",
	Or:                       "|",
	ExclusiveOr:              "^",
	ShiftLeft:                "<<",
	ShiftRight:               ">>",
	UnsignedShiftRight:       ">>>",
	AddAssign:                "+=",
	SubtractAssign:           "-=",
	MultiplyAssign:           "*=",
	ExponentAssign:           "**=",
	QuotientAssign:           "/=",
	RemainderAssign:          "%=",
	AndAssign:                "&=",
	OrAssign:                 "|=",
	ExclusiveOrAssign:        "^=",
	ShiftLeftAssign:          "<<=",
	ShiftRightAssign:         ">>=",
	UnsignedShiftRightAssign: ">>>=",
	LogicalAnd:               "&&",
	LogicalOr:                "||",
	Coalesce:                 "??",
	LogicalAndAssign:         "&&=",
	LogicalOrAssign:          "||=",
	CoalesceAssign:           "??=",
	Increment:                "++",
	Decrement:                "--",
	Equal:                    "==",
	StrictEqual:              "===",
	Less:                     "<",
	Greater:                  ">",
	Assign:                   "=",
	Not:                      "!",
	BitwiseNot:               "~",
	NotEqual:                 "!=",
	StrictNotEqual:           "!==",
	LessOrEqual:              "<=",
	GreaterOrEqual:           ">=",
	LeftParenthesis:          "(",
	LeftBracket:              "[",
	LeftBrace:                "{",
	Comma:                    ",",
	Period:                   ".",
	RightParenthesis:         ")",
	RightBracket:             "]",
	RightBrace:               "}",
	Semicolon:                ";",
	Colon:                    ":",
	QuestionMark:             "?",
	Arrow:                    "=>",
	Ellipsis:                 "...",
	If:                       "if",
	In:                       "in",
	Of:                       "of",
	Do:                       "do",
	Var:                      "var",
	Let:                      "let",
	For:                      "for",
	New:                      "new",
	Try:                      "try",
	This:                     "this",
	Else:                     "else",
	Case:                     "case",
	Void:                     "void",
	With:                     "with",
	Async:                    "async",
	Await:                    "await",
	Yield:                    "yield",
	Const:                    "const",
	While:                    "while",
	Break:                    "break",
	Catch:                    "catch",
	Throw:                    "throw",
	Class:                    "class",
	Super:                    "super",
	Return:                   "return",
	Typeof:                   "typeof",
	Delete:                   "delete",
	Switch:                   "switch",
	Static:                   "static",
	Default:                  "default",
	Finally:                  "finally",
	Extends:                  "extends",
	Function:                 "function",
	Continue:                 "continue",
	Debugger:                 "debugger",
	InstanceOf:               "instanceof",
}

var keywordTable = map[string]keyword{
	"if": {
		token: If,
	},
	"in": {
		token: In,
	},
	"of": {
		token: Of,
	},
	"do": {
		token: Do,
	},
	"var": {
		token: Var,
	},
	"let": {
		token: Let,
	},
	"for": {
		token: For,
	},
	"new": {
		token: New,
	},
	"try": {
		token: Try,
	},
	"this": {
		token: This,
	},
	"else": {
		token: Else,
	},
	"case": {
		token: Case,
	},
	"void": {
		token: Void,
	},
	"with": {
		token: With,
	},
	"async": {
		token: Async,
	},
	"await": {
		token: Await,
	},
	"yield": {
		token: Yield,
	},
	"const": {
		token: Const,
	},
	"while": {
		token: While,
	},
	"break": {
		token: Break,
	},
	"catch": {
		token: Catch,
	},
	"throw": {
		token: Throw,
	},
	"class": {
		token: Class,
	},
	"super": {
		token: Super,
	},
	"return": {
		token: Return,
	},
	"typeof": {
		token: Typeof,
	},
	"delete": {
		token: Delete,
	},
	"switch": {
		token: Switch,
	},
	"static": {
		token: Static,
	},
	"default": {
		token: Default,
	},
	"finally": {
		token: Finally,
	},
	"extends": {
		token: Extends,
	},
	"function": {
		token: Function,
	},
	"continue": {
		token: Continue,
	},
	"debugger": {
		token: Debugger,
	},
	"instanceof": {
		token: InstanceOf,
	},
	"enum": {
		futureKeyword: true,
	},
	"implements": {
		futureKeyword: true,
	},
	"interface": {
		futureKeyword: true,
	},
	"package": {
		futureKeyword: true,
	},
	"private": {
		futureKeyword: true,
	},
	"protected": {
		futureKeyword: true,
	},
	"public": {
		futureKeyword: true,
	},
	"true": {
		token: Boolean,
	},
	"false": {
		token: Boolean,
	},
	"null": {
		token: Null,
	},
}
