// Package token defines the lexical token kinds of the JavaScript/TypeScript
// front end.
// Invariants:
//   - Token.Text is the exact source substring of Token.Span. For string
//     literals it is the raw form, quotes and escapes included; the decoded
//     value lives in Token.Str.
//   - Spans count characters, not bytes.
//   - Comments are real tokens (SingleLineComment, MultiLineComment) and
//     appear in the main token stream; consumers filter them out.
//   - 'true', 'false' and 'null' lex as Ident. TrueLit/FalseLit/NullLit are
//     reserved for the parser and never produced here.
//   - EOF is an internal sentinel; drivers stop at it and never emit it.
package token
