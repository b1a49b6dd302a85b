package lexer

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"

	"jslex/internal/source"
)

// Cursor представляет собой позицию в файле. Позиция ведётся в двух
// единицах сразу: off — байты (для срезов Content), pos — символы
// (для Span'ов и диагностик).
type Cursor struct {
	File *source.File
	off  uint32 // байтовый offset
	pos  uint32 // символьный offset
}

// NewCursor creates a new cursor for the provided file.
func NewCursor(f *source.File) Cursor {
	if _, err := safecast.Conv[uint32](len(f.Content)); err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{
		File: f,
		off:  0,
		pos:  0,
	}
}

// EOF проверяет, достигнут ли конец файла
func (c *Cursor) EOF() bool {
	return int(c.off) >= len(c.File.Content)
}

// Peek читает текущий (не потреблённый) символ без сдвига курсора.
func (c *Cursor) Peek() (rune, bool) {
	if c.EOF() {
		return utf8.RuneError, false
	}
	r, _ := utf8.DecodeRune(c.File.Content[c.off:])
	return r, true
}

// PeekNext читает символ, следующий за текущим, без сдвига курсора.
func (c *Cursor) PeekNext() (rune, bool) {
	if c.EOF() {
		return utf8.RuneError, false
	}
	_, size := utf8.DecodeRune(c.File.Content[c.off:])
	next := int(c.off) + size
	if next >= len(c.File.Content) {
		return utf8.RuneError, false
	}
	r, _ := utf8.DecodeRune(c.File.Content[next:])
	return r, true
}

// Bump потребляет текущий символ: сдвигает курсор на его размер в байтах
// и на одну символьную позицию.
func (c *Cursor) Bump() (rune, bool) {
	if c.EOF() {
		return utf8.RuneError, false
	}
	r, size := utf8.DecodeRune(c.File.Content[c.off:])
	usize, err := safecast.Conv[uint32](size)
	if err != nil {
		panic(fmt.Errorf("rune size overflow: %w", err))
	}
	c.off += usize
	c.pos++
	return r, true
}

// Pos возвращает текущий символьный offset.
func (c *Cursor) Pos() uint32 {
	return c.pos
}

// ByteOff возвращает текущий байтовый offset.
func (c *Cursor) ByteOff() uint32 {
	return c.off
}
