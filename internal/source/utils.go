package source

import (
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// normalizeCRLF заменяет все \r\n на \n, не трогая одиночные \r.
// Возвращает новый слайс и флаг: были ли замены (true, если хотя бы одна).
func normalizeCRLF(content []byte) ([]byte, bool) {
	// Быстрый путь: если нет \r, возвращаем как есть.
	if !slices.Contains(content, '\r') {
		return content, false
	}

	out := make([]byte, 0, len(content))
	changed := false

	i := 0
	for i < len(content) {
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			out = append(out, '\n')
			i += 2
			changed = true
		} else {
			out = append(out, content[i])
			i++
		}
	}
	return out, changed
}

func removeBOM(content []byte) ([]byte, bool) {
	if len(content) < 3 {
		return content, false
	}

	if content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:], true
	}

	return content, false
}

// decodeUTF16 транскодирует UTF-16 (по BOM, любой порядок байт) в UTF-8.
// Если BOM не найден или декодирование не удалось, содержимое возвращается
// как есть.
func decodeUTF16(content []byte) ([]byte, bool) {
	if len(content) < 2 {
		return content, false
	}

	var enc encoding.Encoding
	switch {
	case content[0] == 0xFF && content[1] == 0xFE:
		enc = unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM)
	case content[0] == 0xFE && content[1] == 0xFF:
		enc = unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM)
	default:
		return content, false
	}

	out, _, err := transform.Bytes(enc.NewDecoder(), content)
	if err != nil {
		return content, false
	}
	return out, true
}

func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, len(content))
	for i, b := range content {
		if b == '\n' {
			out = append(out, uint32(i))
		}
	}
	return out
}

// buildCharIndex возвращает байтовый offset каждого символа.
// Невалидные байты UTF-8 считаются одним символом каждый.
func buildCharIndex(content []byte) []uint32 {
	out := make([]uint32, 0, len(content))
	for i := 0; i < len(content); {
		out = append(out, uint32(i))
		_, size := utf8.DecodeRune(content[i:])
		i += size
	}
	return out
}

// toLineCol переводит символьный offset в строку/колонку (1-based).
// Колонка тоже в символах. Перевод строки принадлежит строке, которую он
// завершает.
func toLineCol(f *File, charOff uint32) LineCol {
	byteOff := f.ByteOff(charOff)

	// бинпоиск: число \n строго до byteOff
	lo, hi := 0, len(f.LineIdx)-1
	for lo <= hi {
		mid := (lo + hi) >> 1
		if f.LineIdx[mid] < byteOff {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	line := lo // 0-based номер строки

	var startByte uint32
	if line > 0 {
		startByte = f.LineIdx[line-1] + 1
	}
	startChar := f.CharOff(startByte)

	return LineCol{Line: uint32(line) + 1, Col: charOff - startChar + 1}
}

func normalizePath(p string) string {
	// единый вид в кроссплатформенных дифах
	return filepath.ToSlash(filepath.Clean(p))
}

// AbsolutePath returns the normalized absolute form of p.
func AbsolutePath(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	return normalizePath(abs), nil
}

// RelativePath returns p relative to baseDir. Paths outside baseDir fall
// back to the absolute form instead of producing "../.." chains.
func RelativePath(p, baseDir string) (string, error) {
	absTarget, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(absBase, absTarget)
	if err != nil || strings.HasPrefix(rel, "..") {
		return normalizePath(absTarget), nil
	}
	return normalizePath(rel), nil
}

// BaseName returns the last path element.
func BaseName(p string) string {
	return filepath.Base(p)
}
