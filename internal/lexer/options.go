package lexer

import (
	"jslex/internal/diag"
	"jslex/internal/source"
)

// Options — настройки лексера.
type Options struct {
	// Reporter принимает диагностики. nil — диагностики отбрасываются,
	// лексер всё равно продолжает работу.
	Reporter diag.Reporter
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}

func (lx *Lexer) warnLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevWarning, sp, msg, nil)
	}
}
