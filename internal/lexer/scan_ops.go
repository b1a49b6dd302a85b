package lexer

import (
	"fmt"

	"jslex/internal/diag"
	"jslex/internal/token"
)

// scanOperatorOrPunct разбирает пунктуацию и операторы. Ведущий символ
// уже потреблён. Альтернативы пробуются от самой длинной к самой
// короткой: жадное поглощение по следующему символу.
func (lx *Lexer) scanOperatorOrPunct(ch rune, start uint32) token.Token {
	switch ch {
	case '(':
		return lx.emit(token.LParen)
	case ')':
		return lx.emit(token.RParen)
	case '{':
		return lx.emit(token.LBrace)
	case '}':
		return lx.emit(token.RBrace)
	case '[':
		return lx.emit(token.LBracket)
	case ']':
		return lx.emit(token.RBracket)
	case ';':
		return lx.emit(token.Semicolon)
	case ':':
		return lx.emit(token.Colon)
	case ',':
		return lx.emit(token.Comma)
	case '?':
		return lx.emit(token.Question)
	case '~':
		return lx.emit(token.Tilde)
	case '`':
		return lx.emit(token.Backquote)

	case '!':
		if lx.eat('=') {
			if lx.eat('=') {
				return lx.emit(token.NotEqEq)
			}
			return lx.emit(token.NotEq)
		}
		return lx.emit(token.Bang)

	case '=':
		if lx.eat('>') {
			return lx.emit(token.Arrow)
		}
		if lx.eat('=') {
			if lx.eat('=') {
				return lx.emit(token.EqEqEq)
			}
			return lx.emit(token.EqEq)
		}
		return lx.emit(token.Assign)

	case '+':
		if lx.eat('=') {
			return lx.emit(token.PlusAssign)
		}
		if lx.eat('+') {
			return lx.emit(token.PlusPlus)
		}
		return lx.emit(token.Plus)

	case '-':
		if lx.eat('-') {
			return lx.emit(token.MinusMinus)
		}
		if lx.eat('=') {
			return lx.emit(token.MinusAssign)
		}
		return lx.emit(token.Minus)

	case '*':
		if lx.eat('=') {
			return lx.emit(token.StarAssign)
		}
		return lx.emit(token.Star)

	case '/':
		if lx.eat('/') {
			return lx.scanLineComment()
		}
		if lx.eat('*') {
			return lx.scanBlockComment(start)
		}
		if lx.eat('=') {
			return lx.emit(token.SlashAssign)
		}
		return lx.emit(token.Slash)

	case '%':
		if lx.eat('=') {
			return lx.emit(token.PercentAssign)
		}
		return lx.emit(token.Percent)

	case '<':
		if lx.eat('=') {
			return lx.emit(token.LtEq)
		}
		if lx.eat('<') {
			return lx.emit(token.Shl)
		}
		return lx.emit(token.Lt)

	case '>':
		if lx.eat('=') {
			return lx.emit(token.GtEq)
		}
		if lx.eat('>') {
			if lx.eat('>') {
				if lx.eat('=') {
					return lx.emit(token.UShrAssign)
				}
				return lx.emit(token.UShr)
			}
			if lx.eat('=') {
				return lx.emit(token.ShrAssign)
			}
			return lx.emit(token.Shr)
		}
		return lx.emit(token.Gt)

	case '&':
		if lx.eat('&') {
			return lx.emit(token.AndAnd)
		}
		if lx.eat('=') {
			return lx.emit(token.AmpAssign)
		}
		return lx.emit(token.Amp)

	case '|':
		if lx.eat('|') {
			return lx.emit(token.OrOr)
		}
		if lx.eat('=') {
			return lx.emit(token.PipeAssign)
		}
		return lx.emit(token.Pipe)

	case '^':
		if lx.eat('=') {
			return lx.emit(token.CaretAssign)
		}
		return lx.emit(token.Caret)

	default:
		// Неизвестный символ: диагностика и останов потока.
		lx.errLex(diag.LexUnexpectedToken, lx.spanFrom(start),
			fmt.Sprintf("unexpected token `%c`", ch))
		lx.commit()
		lx.done = true
		return lx.eofToken()
	}
}

// emit фиксирует все потреблённые символы и возвращает заготовку токена.
func (lx *Lexer) emit(k token.Kind) token.Token {
	lx.commit()
	return token.Token{Kind: k}
}

// scanDot различает '.', '...' и дробь без целой части ('.5').
func (lx *Lexer) scanDot() token.Token {
	if r, ok := lx.cursor.Peek(); ok && isDec(r) {
		lx.commit()
		return token.Token{Kind: token.NumberLit, Num: lx.scanDecimal('.')}
	}
	if r, ok := lx.cursor.Peek(); ok && r == '.' {
		if r2, ok2 := lx.cursor.PeekNext(); ok2 && r2 == '.' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			return lx.emit(token.DotDotDot)
		}
	}
	return lx.emit(token.Dot)
}
