package source

import (
	"fmt"
)

// Span is a half-open range of characters [Start, End) within one file.
// Offsets count characters, not bytes: a two-byte UTF-8 rune advances the
// offset by one. Start <= End always holds for spans produced by the lexer.
type Span struct {
	File  FileID
	Start uint32 // в символах, включительно
	End   uint32 // в символах, не включительно
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Cover extends the span so it also contains other. Spans from different
// files do not mix; the receiver wins.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

func (s Span) ShiftLeft(n uint32) Span {
	return Span{
		File:  s.File,
		Start: s.Start - n,
		End:   s.End - n,
	}
}

func (s Span) ShiftRight(n uint32) Span {
	return Span{
		File:  s.File,
		Start: s.Start + n,
		End:   s.End + n,
	}
}
