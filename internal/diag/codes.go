package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Лексические
	LexInfo Code = 1000
	// LexUnexpectedToken: stray character inside or in place of a token.
	LexUnexpectedToken Code = 1001
	// LexInvalidOrUnexpectedToken: unrecognized continuation of a numeric
	// literal (including a bare '0' at end of input).
	LexInvalidOrUnexpectedToken Code = 1002
	// LexUnexpectedNumber: '.' inside a radix-prefixed literal.
	LexUnexpectedNumber Code = 1003
	// LexLegacyDecimalEscape: legacy '0'-prefixed decimal form (e.g. 08).
	LexLegacyDecimalEscape Code = 1004
	// LexLegacyOctalLiteral: legacy '0'-prefixed octal form (e.g. 0755).
	LexLegacyOctalLiteral Code = 1005
	// LexUnterminatedString: end of input before the closing quote.
	LexUnterminatedString Code = 1006
	// LexUnterminatedBlockComment: end of input before '*/'.
	LexUnterminatedBlockComment Code = 1007
	// LexBadNumericLiteral: buffered digit string failed to convert.
	LexBadNumericLiteral Code = 1008

	// I/O
	IOLoadFileError Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode:                 "unknown error",
	LexInfo:                     "lexical information",
	LexUnexpectedToken:          "unexpected token",
	LexInvalidOrUnexpectedToken: "invalid or unexpected token",
	LexUnexpectedNumber:         "unexpected number",
	LexLegacyDecimalEscape:      "legacy decimal escape is not permitted in strict mode",
	LexLegacyOctalLiteral:       "legacy octal literals are not available",
	LexUnterminatedString:       "unterminated string literal",
	LexUnterminatedBlockComment: "unterminated block comment",
	LexBadNumericLiteral:        "malformed numeric literal",
	IOLoadFileError:             "I/O load file error",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
