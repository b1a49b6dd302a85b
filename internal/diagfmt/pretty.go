package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"jslex/internal/diag"
	"jslex/internal/source"
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждой диагностики печатает:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//	  <line> | <текст строки>
//	         | ^~~~ подчёркивание по спану
//
// затем Notes в том же формате. Цвет включается опцией.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	for _, d := range bag.Items() {
		if err := writeDiagnostic(w, fs, d, opts); err != nil {
			return err
		}
	}
	return nil
}

func writeDiagnostic(w io.Writer, fs *source.FileSet, d diag.Diagnostic, opts PrettyOpts) error {
	f := fs.Get(d.Primary.File)
	start, end := fs.Resolve(d.Primary)
	path := f.FormatPath(opts.PathMode.formatArg(), opts.BaseDir)

	sev := severityLabel(d.Severity, opts.Color)
	code := d.Code.ID()
	if opts.Color {
		code = color.New(color.Bold).Sprint(code)
	}
	if _, err := fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		path, start.Line, start.Col, sev, code, d.Message); err != nil {
		return err
	}
	if err := writeSnippet(w, f, start, end, opts.Color); err != nil {
		return err
	}
	if opts.ShowNotes {
		for _, n := range d.Notes {
			ns, _ := fs.Resolve(n.Span)
			if _, err := fmt.Fprintf(w, "  note: %s:%d:%d: %s\n",
				path, ns.Line, ns.Col, n.Msg); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeSnippet печатает строку источника и подчёркивание по спану.
// Выравнивание учитывает реальную ширину символов (CJK, табы и т.п.).
func writeSnippet(w io.Writer, f *source.File, start, end source.LineCol, colored bool) error {
	line := f.GetLine(start.Line)
	if line == "" && start.Col == 1 {
		return nil
	}
	gutter := fmt.Sprintf("%4d", start.Line)
	if _, err := fmt.Fprintf(w, "%s | %s\n", gutter, line); err != nil {
		return err
	}

	runes := []rune(line)
	startIdx := int(start.Col) - 1
	if startIdx > len(runes) {
		startIdx = len(runes)
	}
	endIdx := len(runes)
	if end.Line == start.Line && int(end.Col)-1 < endIdx {
		endIdx = int(end.Col) - 1
	}
	if endIdx < startIdx {
		endIdx = startIdx
	}

	pad := runewidth.StringWidth(string(runes[:startIdx]))
	width := runewidth.StringWidth(string(runes[startIdx:endIdx]))
	if width < 1 {
		width = 1
	}

	marker := "^" + strings.Repeat("~", width-1)
	if colored {
		marker = color.New(color.FgRed, color.Bold).Sprint(marker)
	}
	_, err := fmt.Fprintf(w, "%s | %s%s\n",
		strings.Repeat(" ", len(gutter)), strings.Repeat(" ", pad), marker)
	return err
}

func severityLabel(sev diag.Severity, colored bool) string {
	label := sev.String()
	if !colored {
		return label
	}
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold).Sprint(label)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold).Sprint(label)
	default:
		return color.New(color.FgCyan).Sprint(label)
	}
}
