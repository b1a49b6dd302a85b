package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"jslex/internal/source"
	"jslex/internal/token"
)

// TokenOutput — JSON-представление одного токена.
type TokenOutput struct {
	Kind string      `json:"kind"`
	Text string      `json:"text,omitempty"`
	Span source.Span `json:"span"`
	Num  *float64    `json:"num,omitempty"`
	Str  string      `json:"str,omitempty"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		if tok.Kind == token.EOF {
			break
		}
		startPos, endPos := fs.Resolve(tok.Span)

		fmt.Fprintf(w, "%3d: %-17s", i+1, tok.Kind.String())

		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}

		fmt.Fprintf(w, " at %d:%d-%d:%d",
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col)

		switch {
		case tok.Kind == token.NumberLit:
			fmt.Fprintf(w, " = %v", tok.Num)
		case tok.Kind == token.StringLit:
			fmt.Fprintf(w, " = %q", tok.Str)
		}

		fmt.Fprintln(w)
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))

	for _, tok := range tokens {
		if tok.Kind == token.EOF {
			break
		}
		tokenOut := TokenOutput{
			Kind: tok.Kind.String(),
			Text: tok.Text,
			Span: tok.Span,
		}
		if tok.Kind == token.NumberLit {
			num := tok.Num
			tokenOut.Num = &num
		}
		if tok.Kind == token.StringLit || tok.IsIdent() || tok.IsKeyword() {
			tokenOut.Str = tok.Str
		}
		output = append(output, tokenOut)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
