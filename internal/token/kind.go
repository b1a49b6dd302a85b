package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// KwBreak represents the 'break' keyword.
	KwBreak // break
	// KwCase represents the 'case' keyword.
	KwCase // case
	// KwCatch represents the 'catch' keyword.
	KwCatch // catch
	// KwClass represents the 'class' keyword.
	KwClass // class
	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwContinue represents the 'continue' keyword.
	KwContinue // continue
	// KwDebugger represents the 'debugger' keyword.
	KwDebugger // debugger
	// KwDefault represents the 'default' keyword.
	KwDefault // default
	// KwDelete represents the 'delete' keyword.
	KwDelete // delete
	// KwDo represents the 'do' keyword.
	KwDo // do
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwExport represents the 'export' keyword.
	KwExport // export
	// KwExtends represents the 'extends' keyword.
	KwExtends // extends
	// KwFinally represents the 'finally' keyword.
	KwFinally // finally
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwFunction represents the 'function' keyword.
	KwFunction // function
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwImport represents the 'import' keyword.
	KwImport // import
	// KwIn represents the 'in' keyword.
	KwIn // in
	// KwInstanceof represents the 'instanceof' keyword.
	KwInstanceof // instanceof
	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwNew represents the 'new' keyword.
	KwNew // new
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwSuper represents the 'super' keyword.
	KwSuper // super
	// KwSwitch represents the 'switch' keyword.
	KwSwitch // switch
	// KwThis represents the 'this' keyword.
	KwThis // this
	// KwThrow represents the 'throw' keyword.
	KwThrow // throw
	// KwTry represents the 'try' keyword.
	KwTry // try
	// KwTypeof represents the 'typeof' keyword.
	KwTypeof // typeof
	// KwVar represents the 'var' keyword.
	KwVar // var
	// KwVoid represents the 'void' keyword.
	KwVoid // void
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwWith represents the 'with' keyword.
	KwWith // with
	// KwYield represents the 'yield' keyword.
	KwYield // yield

	// TrueLit represents the 'true' literal (not produced by the lexer).
	TrueLit // true
	// FalseLit represents the 'false' literal (not produced by the lexer).
	FalseLit // false
	// NullLit represents the 'null' literal (not produced by the lexer).
	NullLit // null
	// NumberLit represents a numeric literal token.
	NumberLit
	// StringLit represents a string literal token.
	StringLit

	// SingleLineComment represents a '// ...' comment token.
	SingleLineComment
	// MultiLineComment represents a '/* ... */' comment token.
	MultiLineComment

	// Backquote represents the '`' token (not produced by the lexer).
	Backquote // `

	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]
	// Comma represents the comma token.
	Comma // ,
	// Dot represents the dot token.
	Dot // .
	// DotDotDot represents the spread token.
	DotDotDot // ...
	// Semicolon represents the semicolon token.
	Semicolon // ;
	// Colon represents the colon token.
	Colon // :
	// Question represents the question token.
	Question // ?
	// Tilde represents the tilde token.
	Tilde // ~
	// Bang represents the bang token.
	Bang // !
	// Arrow represents the fat-arrow token.
	Arrow // =>
	// PlusPlus represents the increment token.
	PlusPlus // ++
	// MinusMinus represents the decrement token.
	MinusMinus // --

	// Assign represents the assign operator token.
	Assign // =
	// PlusAssign represents the plus assign operator token.
	PlusAssign // +=
	// MinusAssign represents the minus assign operator token.
	MinusAssign // -=
	// StarAssign represents the star assign operator token.
	StarAssign // *=
	// SlashAssign represents the slash assign operator token.
	SlashAssign // /=
	// PercentAssign represents the percent assign operator token.
	PercentAssign // %=
	// ShlAssign represents the shl assign operator token (not produced by the lexer).
	ShlAssign // <<=
	// ShrAssign represents the shr assign operator token.
	ShrAssign // >>=
	// UShrAssign represents the unsigned shr assign operator token.
	UShrAssign // >>>=
	// AmpAssign represents the amp assign operator token.
	AmpAssign // &=
	// PipeAssign represents the pipe assign operator token.
	PipeAssign // |=
	// CaretAssign represents the caret assign operator token.
	CaretAssign // ^=

	// EqEq represents the loose equality operator token.
	EqEq // ==
	// NotEq represents the loose inequality operator token.
	NotEq // !=
	// EqEqEq represents the strict equality operator token.
	EqEqEq // ===
	// NotEqEq represents the strict inequality operator token.
	NotEqEq // !==
	// Lt represents the lt operator token.
	Lt // <
	// LtEq represents the lt eq operator token.
	LtEq // <=
	// Gt represents the gt operator token.
	Gt // >
	// GtEq represents the gt eq operator token.
	GtEq // >=
	// Shl represents the shl operator token.
	Shl // <<
	// Shr represents the shr operator token.
	Shr // >>
	// UShr represents the unsigned shr operator token.
	UShr // >>>
	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// Slash represents the slash operator token.
	Slash // /
	// Percent represents the percent operator token.
	Percent // %
	// Amp represents the amp operator token.
	Amp // &
	// Pipe represents the pipe operator token.
	Pipe // |
	// Caret represents the caret operator token.
	Caret // ^
	// AndAnd represents the logical and operator token.
	AndAnd // &&
	// OrOr represents the logical or operator token.
	OrOr // ||

	kindCount
)

var kindNames = [...]string{
	Invalid:           "Invalid",
	EOF:               "EOF",
	Ident:             "Ident",
	KwBreak:           "KwBreak",
	KwCase:            "KwCase",
	KwCatch:           "KwCatch",
	KwClass:           "KwClass",
	KwConst:           "KwConst",
	KwContinue:        "KwContinue",
	KwDebugger:        "KwDebugger",
	KwDefault:         "KwDefault",
	KwDelete:          "KwDelete",
	KwDo:              "KwDo",
	KwElse:            "KwElse",
	KwExport:          "KwExport",
	KwExtends:         "KwExtends",
	KwFinally:         "KwFinally",
	KwFor:             "KwFor",
	KwFunction:        "KwFunction",
	KwIf:              "KwIf",
	KwImport:          "KwImport",
	KwIn:              "KwIn",
	KwInstanceof:      "KwInstanceof",
	KwLet:             "KwLet",
	KwNew:             "KwNew",
	KwReturn:          "KwReturn",
	KwSuper:           "KwSuper",
	KwSwitch:          "KwSwitch",
	KwThis:            "KwThis",
	KwThrow:           "KwThrow",
	KwTry:             "KwTry",
	KwTypeof:          "KwTypeof",
	KwVar:             "KwVar",
	KwVoid:            "KwVoid",
	KwWhile:           "KwWhile",
	KwWith:            "KwWith",
	KwYield:           "KwYield",
	TrueLit:           "TrueLit",
	FalseLit:          "FalseLit",
	NullLit:           "NullLit",
	NumberLit:         "NumberLit",
	StringLit:         "StringLit",
	SingleLineComment: "SingleLineComment",
	MultiLineComment:  "MultiLineComment",
	Backquote:         "Backquote",
	LParen:            "LParen",
	RParen:            "RParen",
	LBrace:            "LBrace",
	RBrace:            "RBrace",
	LBracket:          "LBracket",
	RBracket:          "RBracket",
	Comma:             "Comma",
	Dot:               "Dot",
	DotDotDot:         "DotDotDot",
	Semicolon:         "Semicolon",
	Colon:             "Colon",
	Question:          "Question",
	Tilde:             "Tilde",
	Bang:              "Bang",
	Arrow:             "Arrow",
	PlusPlus:          "PlusPlus",
	MinusMinus:        "MinusMinus",
	Assign:            "Assign",
	PlusAssign:        "PlusAssign",
	MinusAssign:       "MinusAssign",
	StarAssign:        "StarAssign",
	SlashAssign:       "SlashAssign",
	PercentAssign:     "PercentAssign",
	ShlAssign:         "ShlAssign",
	ShrAssign:         "ShrAssign",
	UShrAssign:        "UShrAssign",
	AmpAssign:         "AmpAssign",
	PipeAssign:        "PipeAssign",
	CaretAssign:       "CaretAssign",
	EqEq:              "EqEq",
	NotEq:             "NotEq",
	EqEqEq:            "EqEqEq",
	NotEqEq:           "NotEqEq",
	Lt:                "Lt",
	LtEq:              "LtEq",
	Gt:                "Gt",
	GtEq:              "GtEq",
	Shl:               "Shl",
	Shr:               "Shr",
	UShr:              "UShr",
	Plus:              "Plus",
	Minus:             "Minus",
	Star:              "Star",
	Slash:             "Slash",
	Percent:           "Percent",
	Amp:               "Amp",
	Pipe:              "Pipe",
	Caret:             "Caret",
	AndAnd:            "AndAnd",
	OrOr:              "OrOr",
}

// String returns the canonical name of the kind.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Kind(?)"
}
