package token

import (
	"jslex/internal/source"
)

// Token represents a single source token with its location and payload.
// Num is meaningful only for NumberLit, Str only for StringLit.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
	Num  float64
	Str  string
}

// IsLiteral reports whether the token is a numeric, boolean, null, or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case TrueLit, FalseLit, NullLit, NumberLit, StringLit:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a reserved word.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwBreak && t.Kind <= KwYield
}

// IsComment reports whether the token is a comment.
func (t Token) IsComment() bool {
	return t.Kind == SingleLineComment || t.Kind == MultiLineComment
}

// IsAssignOp reports whether the token is one of the assignment operators.
func (t Token) IsAssignOp() bool {
	return t.Kind >= Assign && t.Kind <= CaretAssign
}

// IsBinaryOp reports whether the token is one of the binary operators.
func (t Token) IsBinaryOp() bool {
	return t.Kind >= EqEq && t.Kind <= OrOr
}

// IsPunctOrOp reports whether the token is punctuation or an operator.
func (t Token) IsPunctOrOp() bool {
	return t.Kind >= LParen && t.Kind <= OrOr
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
