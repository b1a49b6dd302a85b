package lexer

// isDec — десятичная цифра ASCII.
func isDec(r rune) bool {
	return r >= '0' && r <= '9'
}

// isIdentStart — допустимое начало идентификатора: латинская буква,
// '$' или '_'. Unicode-буквы намеренно не принимаются.
func isIdentStart(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '$' || r == '_'
}

// isIdentPart — продолжение идентификатора: начало плюс цифры и ZWNJ.
func isIdentPart(r rune) bool {
	return isIdentStart(r) || isDec(r) || r == '\u200c'
}

// isLineTerminator — переводы строк в смысле ECMAScript: LF, CR,
// LS (U+2028) и PS (U+2029).
func isLineTerminator(r rune) bool {
	return r == '\n' || r == '\r' || r == '\u2028' || r == '\u2029'
}

// isRadixDigit — цифра, которую буферизует читатель соответствующей
// системы счисления. Диапазоны исторические: двоичный читатель
// буферизует любую десятичную цифру, шестнадцатеричный не принимает
// 'f'/'F'. Непригодные цифры всплывают ошибкой разбора буфера.
func isRadixDigit(r rune, base int) bool {
	switch base {
	case 2:
		return isDec(r)
	case 8:
		return r >= '0' && r <= '7'
	case 16:
		return isDec(r) || (r >= 'a' && r <= 'e') || (r >= 'A' && r <= 'E')
	default:
		return false
	}
}
