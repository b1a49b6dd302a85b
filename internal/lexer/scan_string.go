package lexer

import (
	"strings"

	"jslex/internal/diag"
	"jslex/internal/token"
)

// scanString читает строковый литерал в одинарных или двойных кавычках.
// Открывающая кавычка уже потреблена. Token.Str получает декодированное
// значение; сырой текст (с кавычками и обратными слэшами) остаётся
// в Token.Text через спан.
//
// Переводы строк внутри литерала допускаются и попадают в значение
// как есть. Незакрытая строка дотягивается до конца файла
// с диагностикой, но токен всё равно выдаётся.
func (lx *Lexer) scanString(quote rune, start uint32) token.Token {
	var value strings.Builder
	terminated := false
	for {
		c, ok := lx.cursor.Bump()
		if !ok {
			break
		}
		if c == '\\' {
			if esc, ok2 := lx.cursor.Bump(); ok2 {
				switch esc {
				case 'n':
					value.WriteRune('\n')
				case 'r':
					value.WriteRune('\r')
				case 't':
					value.WriteRune('\t')
				case '\\', '\'', '"':
					value.WriteRune(esc)
				default:
					// неизвестный эскейп: символ проходит как есть
					value.WriteRune(esc)
				}
			}
			lx.commit()
			continue
		}
		if c == quote {
			terminated = true
			break
		}
		value.WriteRune(c)
		lx.commit()
	}
	if !terminated {
		lx.errLex(diag.LexUnterminatedString, lx.spanFrom(start),
			"unterminated string literal")
	}
	lx.commit()
	return token.Token{Kind: token.StringLit, Str: value.String()}
}
