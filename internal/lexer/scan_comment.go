package lexer

import (
	"jslex/internal/diag"
	"jslex/internal/token"
)

// scanLineComment читает '//'-комментарий. Оба слэша уже потреблены.
// Завершающий перевод строки входит в токен.
func (lx *Lexer) scanLineComment() token.Token {
	for {
		r, ok := lx.cursor.Bump()
		if !ok || isLineTerminator(r) {
			break
		}
	}
	lx.commit()
	return token.Token{Kind: token.SingleLineComment}
}

// scanBlockComment читает '/*...*/'. Открывающая пара уже потреблена.
// Незакрытый комментарий дотягивается до конца файла с диагностикой,
// но токен всё равно выдаётся.
func (lx *Lexer) scanBlockComment(start uint32) token.Token {
	for {
		r, ok := lx.cursor.Bump()
		if !ok {
			lx.commit()
			lx.errLex(diag.LexUnterminatedBlockComment, lx.spanFrom(start),
				"unterminated block comment")
			return token.Token{Kind: token.MultiLineComment}
		}
		if r == '*' {
			if nxt, ok2 := lx.cursor.Peek(); ok2 && nxt == '/' {
				lx.cursor.Bump()
				break
			}
		}
	}
	lx.commit()
	return token.Token{Kind: token.MultiLineComment}
}
