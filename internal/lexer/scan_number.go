package lexer

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"jslex/internal/diag"
	"jslex/internal/source"
	"jslex/internal/token"
)

// scanNumber разбирает числовой литерал по ведущей цифре (уже
// потреблённой). Нулевая цифра открывает недесятичные подграмматики.
//
// Конец спана фиксируется по позиции курсора после читателя: если
// читатель потребил завершающий пробел, тот входит в спан.
func (lx *Lexer) scanNumber(head rune) token.Token {
	var value float64
	if head == '0' {
		value = lx.scanZeroLead()
	} else {
		value = lx.scanDecimal(head)
	}
	lx.commit()
	return token.Token{Kind: token.NumberLit, Num: value}
}

// scanZeroLead — число, начавшееся с '0': двоичный/восьмеричный/
// шестнадцатеричный префикс, legacy-формы или десятичная дробь.
func (lx *Lexer) scanZeroLead() float64 {
	r, ok := lx.cursor.Peek()
	if !ok {
		// одинокий '0' в конце файла
		lx.reportInvalidNum('0')
		return 0
	}
	switch {
	case r == 'b' || r == 'B':
		return lx.scanRadix(2)
	case r == 'o' || r == 'O':
		return lx.scanRadix(8)
	case r == 'x' || r == 'X':
		return lx.scanRadix(16)
	case unicode.IsSpace(r):
		return 0
	case r >= '8' && r <= '9':
		// 08/09: ноль отбрасывается, хвост читается как десятичное
		markPos := lx.cursor.Pos()
		lx.cursor.Bump()
		v := lx.scanDecimal(r)
		lx.warnLex(diag.LexLegacyDecimalEscape,
			source.Span{File: lx.file.ID, Start: markPos - 1, End: lx.cursor.Pos()},
			"Legacy decimal escape is not permitted in strict mode")
		return v
	case r >= '0' && r <= '7':
		// legacy-октал без префикса: первая цифра уходит читателю
		// на место префикса и в значение не попадает
		markPos := lx.cursor.Pos()
		v := lx.scanRadix(8)
		lx.warnLex(diag.LexLegacyOctalLiteral,
			source.Span{File: lx.file.ID, Start: markPos - 1, End: lx.cursor.Pos()},
			"Legacy octal literals are not available")
		return v
	case r == '.':
		if r2, ok2 := lx.cursor.PeekNext(); ok2 && isDec(r2) {
			return lx.scanDecimal('0')
		}
		lx.reportInvalidNum('0')
		return 0
	default:
		lx.reportInvalidNum('0')
		return 0
	}
}

// scanRadix читает литерал с основанием base. Первый символ после '0'
// (буква префикса либо первая цифра legacy-октала) потребляется без
// буферизации. Пробел завершает литерал, прочие символы дают
// диагностику и пропускаются.
func (lx *Lexer) scanRadix(base int) float64 {
	lx.cursor.Bump()
	var digits strings.Builder
loop:
	for {
		c, ok := lx.cursor.Bump()
		if !ok {
			break
		}
		switch {
		case isRadixDigit(c, base):
			digits.WriteRune(c)
			lx.commit()
		case unicode.IsSpace(c):
			break loop
		case c == '.':
			lx.errLex(diag.LexUnexpectedNumber, lx.spanHere(),
				fmt.Sprintf("unexpected number `%c`", c))
		default:
			lx.errLex(diag.LexInvalidOrUnexpectedToken, lx.spanHere(),
				fmt.Sprintf("invalid or unexpected token `%c`", c))
		}
	}
	v, err := strconv.ParseInt(digits.String(), base, 64)
	if err != nil {
		lx.errLex(diag.LexBadNumericLiteral, lx.spanHere(),
			fmt.Sprintf("malformed numeric literal `%s`", digits.String()))
		return 0
	}
	return float64(v)
}

// scanDecimal читает десятичный литерал, начиная с уже потреблённого
// head ('1'-'9', '.', либо цифра после legacy-нуля).
func (lx *Lexer) scanDecimal(head rune) float64 {
	var b strings.Builder
	b.WriteRune(head)

	// одиночная цифра: дальше не цифра, не точка и не экспонента
	if c, ok := lx.cursor.Peek(); ok && !isDec(c) && c != 'e' && c != '.' {
		return lx.parseDecimal(b.String())
	}

loop:
	for {
		c, ok := lx.cursor.Bump()
		if !ok {
			break
		}
		switch {
		case isDec(c):
			b.WriteRune(c)
			lx.commit()
		case unicode.IsSpace(c):
			break loop
		case c == '.':
			b.WriteRune(c)
			lx.commit()
			// сразу за точкой должна идти цифра или экспонента
			if nxt, ok2 := lx.cursor.Peek(); ok2 {
				if !isDec(nxt) && nxt != 'e' && nxt != 'E' {
					lx.reportInvalidNum(nxt)
				}
			} else {
				lx.reportInvalidNum(c)
			}
		case c == 'e' || c == 'E':
			b.WriteRune(c)
			lx.commit()
			sc, ok2 := lx.cursor.Bump()
			switch {
			case ok2 && (sc == '+' || sc == '-'):
				b.WriteRune(sc)
				lx.commit()
				if nxt, ok3 := lx.cursor.Peek(); ok3 && !isDec(nxt) {
					lx.reportInvalidNum(nxt)
				}
			case ok2 && isDec(sc):
				b.WriteRune(sc)
				lx.commit()
			default:
				lx.reportInvalidNum(c)
			}
		default:
			lx.reportInvalidNum(c)
		}
	}
	return lx.parseDecimal(b.String())
}

func (lx *Lexer) parseDecimal(text string) float64 {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		lx.errLex(diag.LexBadNumericLiteral, lx.spanHere(),
			fmt.Sprintf("malformed numeric literal `%s`", text))
		return 0
	}
	return v
}

func (lx *Lexer) reportInvalidNum(c rune) {
	lx.errLex(diag.LexInvalidOrUnexpectedToken, lx.spanHere(),
		fmt.Sprintf("invalid or unexpected token `%c`", c))
}
