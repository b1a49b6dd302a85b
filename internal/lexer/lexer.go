package lexer

import (
	"unicode"

	"jslex/internal/source"
	"jslex/internal/token"
)

// Lexer — однопроходный сканер одного файла. Экземпляр одноразовый:
// после конца входа (или терминальной диагностики) Next навсегда
// возвращает EOF.
//
// Конец спана токена — последняя «принятая» позиция (lastPos), а не
// позиция курсора после сканера: сканеры иногда потребляют завершающий
// символ, не включая его в токен.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options

	lastPos  uint32 // символьная позиция после последнего принятого символа
	lastByte uint32 // её байтовый двойник (для Token.Text)

	look *token.Token // 1-элементный буфер для Peek
	done bool         // терминальная диагностика: дальше только EOF
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next возвращает следующий токен. После конца входа всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}
	if lx.done {
		return lx.eofToken()
	}

	lx.skipWhitespace()
	start := lx.cursor.Pos()
	startByte := lx.cursor.ByteOff()

	ch, ok := lx.cursor.Bump()
	if !ok {
		lx.commit()
		return lx.eofToken()
	}

	var tok token.Token
	switch {
	case ch == '\'' || ch == '"':
		tok = lx.scanString(ch, start)
	case isDec(ch):
		tok = lx.scanNumber(ch)
	case ch == '.':
		tok = lx.scanDot()
	case isIdentStart(ch):
		tok = lx.scanIdentOrKeyword(ch)
	default:
		tok = lx.scanOperatorOrPunct(ch, start)
	}

	if tok.Kind == token.EOF {
		return tok
	}

	tok.Span = source.Span{File: lx.file.ID, Start: start, End: lx.lastPos}
	tok.Text = string(lx.file.Content[startByte:lx.lastByte])
	return tok
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// commit фиксирует текущую позицию курсора как конец токена.
func (lx *Lexer) commit() {
	lx.lastPos = lx.cursor.Pos()
	lx.lastByte = lx.cursor.ByteOff()
}

// spanHere — спан от последней принятой позиции до курсора.
// Именно так привязываются диагностики о «лишнем» символе.
func (lx *Lexer) spanHere() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.lastPos, End: lx.cursor.Pos()}
}

// spanFrom — спан от начала токена до курсора.
func (lx *Lexer) spanFrom(start uint32) source.Span {
	return source.Span{File: lx.file.ID, Start: start, End: lx.cursor.Pos()}
}

func (lx *Lexer) skipWhitespace() {
	for {
		r, ok := lx.cursor.Peek()
		if !ok || !unicode.IsSpace(r) {
			break
		}
		lx.cursor.Bump()
	}
}

func (lx *Lexer) eofToken() token.Token {
	return token.Token{
		Kind: token.EOF,
		Span: source.Span{File: lx.file.ID, Start: lx.lastPos, End: lx.lastPos},
	}
}

// eat потребляет следующий символ, если он равен r.
func (lx *Lexer) eat(r rune) bool {
	if c, ok := lx.cursor.Peek(); ok && c == r {
		lx.cursor.Bump()
		return true
	}
	return false
}
