package lexer

import (
	"fmt"
	"strings"
	"unicode"

	"jslex/internal/diag"
	"jslex/internal/token"
)

// scanIdentOrKeyword читает идентификатор (ведущий символ уже
// потреблён) и сверяет накопленное имя с таблицей зарезервированных
// слов. Посторонний символ внутри идентификатора даёт диагностику,
// но скан продолжается: символ входит в спан, в имя — нет. Поэтому
// проверка по таблице идёт по буферу, а не по тексту спана.
func (lx *Lexer) scanIdentOrKeyword(head rune) token.Token {
	var b strings.Builder
	b.WriteRune(head)
	lx.commit()
	for {
		c, ok := lx.cursor.Bump()
		if !ok {
			break
		}
		if isIdentPart(c) {
			b.WriteRune(c)
			lx.commit()
			continue
		}
		if unicode.IsSpace(c) {
			break
		}
		lx.errLex(diag.LexUnexpectedToken, lx.spanHere(),
			fmt.Sprintf("unexpected token `%c`", c))
	}
	name := b.String()
	if k, ok := token.LookupKeyword(name); ok {
		return token.Token{Kind: k, Str: name}
	}
	return token.Token{Kind: token.Ident, Str: name}
}
