package diagfmt

import (
	"encoding/json"
	"io"

	"jslex/internal/diag"
	"jslex/internal/source"
)

type jsonPosition struct {
	Line uint32 `json:"line"`
	Col  uint32 `json:"col"`
}

type jsonNote struct {
	Span    source.Span `json:"span"`
	Message string      `json:"message"`
}

type jsonDiagnostic struct {
	Severity string        `json:"severity"`
	Code     string        `json:"code"`
	Message  string        `json:"message"`
	File     string        `json:"file"`
	Span     source.Span   `json:"span"`
	Start    *jsonPosition `json:"start,omitempty"`
	End      *jsonPosition `json:"end,omitempty"`
	Notes    []jsonNote    `json:"notes,omitempty"`
}

// JSON выводит диагностики в машиночитаемом формате (по одной записи
// на диагностику, единым массивом).
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	items := bag.Items()
	if opts.Max > 0 && len(items) > opts.Max {
		items = items[:opts.Max]
	}

	output := make([]jsonDiagnostic, 0, len(items))
	for _, d := range items {
		f := fs.Get(d.Primary.File)
		jd := jsonDiagnostic{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Message:  d.Message,
			File:     f.FormatPath(opts.PathMode.formatArg(), ""),
			Span:     d.Primary,
		}
		if opts.IncludePositions {
			start, end := fs.Resolve(d.Primary)
			jd.Start = &jsonPosition{Line: start.Line, Col: start.Col}
			jd.End = &jsonPosition{Line: end.Line, Col: end.Col}
		}
		if opts.IncludeNotes {
			for _, n := range d.Notes {
				jd.Notes = append(jd.Notes, jsonNote{Span: n.Span, Message: n.Msg})
			}
		}
		output = append(output, jd)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
