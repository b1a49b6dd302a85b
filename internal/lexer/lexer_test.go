package lexer_test

import (
	"testing"

	"jslex/internal/diag"
	"jslex/internal/lexer"
	"jslex/internal/source"
	"jslex/internal/token"
)

type testDiag struct {
	code diag.Code
	sev  diag.Severity
	span source.Span
	msg  string
}

// testReporter копит диагностики в порядке поступления.
type testReporter struct {
	diags []testDiag
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, _ []diag.Note) {
	r.diags = append(r.diags, testDiag{code: code, sev: sev, span: primary, msg: msg})
}

func makeTestLexer(t *testing.T, src string) (*lexer.Lexer, *testReporter) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.js", []byte(src))
	rep := &testReporter{}
	return lexer.New(fs.Get(id), lexer.Options{Reporter: rep}), rep
}

// collectAll выбирает все токены до EOF (сам EOF не включается).
func collectAll(lx *lexer.Lexer) []token.Token {
	var out []token.Token
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			return out
		}
		out = append(out, tok)
	}
}

func expectKinds(t *testing.T, toks []token.Token, want ...token.Kind) {
	t.Helper()
	if len(toks) != len(want) {
		t.Fatalf("token count = %d, want %d (%v)", len(toks), len(want), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Fatalf("token[%d].Kind = %v, want %v", i, toks[i].Kind, k)
		}
	}
}

func expectSpan(t *testing.T, tok token.Token, start, end uint32) {
	t.Helper()
	if tok.Span.Start != start || tok.Span.End != end {
		t.Fatalf("%v span = [%d,%d), want [%d,%d)",
			tok.Kind, tok.Span.Start, tok.Span.End, start, end)
	}
}

func TestSimpleAdd(t *testing.T) {
	lx, rep := makeTestLexer(t, "1 + 2")
	toks := collectAll(lx)
	expectKinds(t, toks, token.NumberLit, token.Plus, token.NumberLit)
	expectSpan(t, toks[0], 0, 1)
	expectSpan(t, toks[1], 2, 3)
	expectSpan(t, toks[2], 4, 5)
	if toks[0].Num != 1 || toks[2].Num != 2 {
		t.Fatalf("values = %v, %v, want 1, 2", toks[0].Num, toks[2].Num)
	}
	if len(rep.diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", rep.diags)
	}
}

func TestAddWithoutSpaces(t *testing.T) {
	lx, _ := makeTestLexer(t, "1+2")
	toks := collectAll(lx)
	expectKinds(t, toks, token.NumberLit, token.Plus, token.NumberLit)
	expectSpan(t, toks[0], 0, 1)
	expectSpan(t, toks[1], 1, 2)
	expectSpan(t, toks[2], 2, 3)
}

func TestVariableDecl(t *testing.T) {
	lx, _ := makeTestLexer(t, "const foo = 1 + 1")
	toks := collectAll(lx)
	expectKinds(t, toks,
		token.KwConst, token.Ident, token.Assign,
		token.NumberLit, token.Plus, token.NumberLit)
	wantSpans := [][2]uint32{{0, 5}, {6, 9}, {10, 11}, {12, 13}, {14, 15}, {16, 17}}
	for i, sp := range wantSpans {
		expectSpan(t, toks[i], sp[0], sp[1])
	}
	if toks[1].Str != "foo" {
		t.Fatalf("ident name = %q, want %q", toks[1].Str, "foo")
	}
}

func TestKeywords(t *testing.T) {
	cases := map[string]token.Kind{
		"break":      token.KwBreak,
		"function":   token.KwFunction,
		"instanceof": token.KwInstanceof,
		"let":        token.KwLet,
		"typeof":     token.KwTypeof,
		"yield":      token.KwYield,
	}
	for src, want := range cases {
		lx, _ := makeTestLexer(t, src)
		toks := collectAll(lx)
		expectKinds(t, toks, want)
	}

	// true/false/null — обычные идентификаторы на этом уровне
	for _, src := range []string{"true", "false", "null"} {
		lx, _ := makeTestLexer(t, src)
		toks := collectAll(lx)
		expectKinds(t, toks, token.Ident)
		if toks[0].Str != src {
			t.Fatalf("ident name = %q, want %q", toks[0].Str, src)
		}
	}
}

func TestKeywordMatchUsesBufferedName(t *testing.T) {
	// посторонний символ входит в спан, но не в имя:
	// накопленный буфер 'break' совпадает с зарезервированным словом
	lx, rep := makeTestLexer(t, "br-eak")
	toks := collectAll(lx)
	expectKinds(t, toks, token.KwBreak)
	expectSpan(t, toks[0], 0, 6)
	if toks[0].Text != "br-eak" {
		t.Fatalf("text = %q, want %q", toks[0].Text, "br-eak")
	}
	if len(rep.diags) != 1 || rep.diags[0].code != diag.LexUnexpectedToken {
		t.Fatalf("diags = %v, want single LexUnexpectedToken", rep.diags)
	}
}

func TestIdentifierNames(t *testing.T) {
	lx, _ := makeTestLexer(t, "$dollar _under a1 Zz")
	toks := collectAll(lx)
	expectKinds(t, toks, token.Ident, token.Ident, token.Ident, token.Ident)
	want := []string{"$dollar", "_under", "a1", "Zz"}
	for i, name := range want {
		if toks[i].Str != name {
			t.Fatalf("ident[%d] = %q, want %q", i, toks[i].Str, name)
		}
	}
}

func TestIdentifierStrayChar(t *testing.T) {
	lx, rep := makeTestLexer(t, "my-Variable")
	toks := collectAll(lx)
	expectKinds(t, toks, token.Ident)
	if toks[0].Str != "myVariable" {
		t.Fatalf("name = %q, want %q", toks[0].Str, "myVariable")
	}
	expectSpan(t, toks[0], 0, 11)
	if len(rep.diags) != 1 {
		t.Fatalf("diags = %v, want exactly one", rep.diags)
	}
	if rep.diags[0].span.Start != 2 || rep.diags[0].span.End != 3 {
		t.Fatalf("diag span = %v, want [2,3)", rep.diags[0].span)
	}
}

func TestOperators(t *testing.T) {
	cases := []struct {
		src  string
		want token.Kind
	}{
		{"(", token.LParen}, {")", token.RParen},
		{"{", token.LBrace}, {"}", token.RBrace},
		{"[", token.LBracket}, {"]", token.RBracket},
		{";", token.Semicolon}, {":", token.Colon}, {",", token.Comma},
		{"?", token.Question}, {"~", token.Tilde}, {"`", token.Backquote},
		{".", token.Dot}, {"...", token.DotDotDot},
		{"!", token.Bang}, {"!=", token.NotEq}, {"!==", token.NotEqEq},
		{"=", token.Assign}, {"==", token.EqEq}, {"===", token.EqEqEq}, {"=>", token.Arrow},
		{"+", token.Plus}, {"++", token.PlusPlus}, {"+=", token.PlusAssign},
		{"-", token.Minus}, {"--", token.MinusMinus}, {"-=", token.MinusAssign},
		{"*", token.Star}, {"*=", token.StarAssign},
		{"/", token.Slash}, {"/=", token.SlashAssign},
		{"%", token.Percent}, {"%=", token.PercentAssign},
		{"<", token.Lt}, {"<=", token.LtEq}, {"<<", token.Shl},
		{">", token.Gt}, {">=", token.GtEq},
		{">>", token.Shr}, {">>=", token.ShrAssign},
		{">>>", token.UShr}, {">>>=", token.UShrAssign},
		{"&", token.Amp}, {"&&", token.AndAnd}, {"&=", token.AmpAssign},
		{"|", token.Pipe}, {"||", token.OrOr}, {"|=", token.PipeAssign},
		{"^", token.Caret}, {"^=", token.CaretAssign},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			lx, rep := makeTestLexer(t, tc.src)
			toks := collectAll(lx)
			expectKinds(t, toks, tc.want)
			if toks[0].Text != tc.src {
				t.Fatalf("text = %q, want %q", toks[0].Text, tc.src)
			}
			if len(rep.diags) != 0 {
				t.Fatalf("unexpected diagnostics: %v", rep.diags)
			}
		})
	}
}

func TestShlAssignSplits(t *testing.T) {
	// '<<=' составного оператора не образует
	lx, _ := makeTestLexer(t, "<<=")
	toks := collectAll(lx)
	expectKinds(t, toks, token.Shl, token.Assign)
	expectSpan(t, toks[0], 0, 2)
	expectSpan(t, toks[1], 2, 3)
}

func TestDecimalNumbers(t *testing.T) {
	cases := []struct {
		src  string
		want float64
	}{
		{"123", 123},
		{"3.14", 3.14},
		{".5", 0.5},
		{".456", 0.456},
		{"0.25", 0.25},
		{"1e5", 1e5},
		{"1e+5", 1e5},
		{"1e-5", 1e-5},
		{"9007199254740991", 9007199254740991},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			lx, rep := makeTestLexer(t, tc.src)
			toks := collectAll(lx)
			expectKinds(t, toks, token.NumberLit)
			if toks[0].Num != tc.want {
				t.Fatalf("value = %v, want %v", toks[0].Num, tc.want)
			}
			if len(rep.diags) != 0 {
				t.Fatalf("unexpected diagnostics: %v", rep.diags)
			}
		})
	}
}

func TestUppercaseExponentSplits(t *testing.T) {
	// проверка одиночной цифры не знает про 'E': литерал обрывается,
	// хвост уходит в идентификатор
	lx, _ := makeTestLexer(t, "1E5")
	toks := collectAll(lx)
	expectKinds(t, toks, token.NumberLit, token.Ident)
	if toks[0].Num != 1 {
		t.Fatalf("value = %v, want 1", toks[0].Num)
	}
	if toks[1].Str != "E5" {
		t.Fatalf("ident = %q, want %q", toks[1].Str, "E5")
	}
}

func TestNumberSpanIncludesConsumedTerminator(t *testing.T) {
	// многоцифровой литерал потребляет завершающий пробел,
	// и тот входит в спан
	lx, _ := makeTestLexer(t, "12 34")
	toks := collectAll(lx)
	expectKinds(t, toks, token.NumberLit, token.NumberLit)
	expectSpan(t, toks[0], 0, 3)
	expectSpan(t, toks[1], 3, 5)
	if toks[0].Num != 12 || toks[1].Num != 34 {
		t.Fatalf("values = %v, %v", toks[0].Num, toks[1].Num)
	}
}

func TestRadixNumbers(t *testing.T) {
	cases := []struct {
		src  string
		want float64
	}{
		{"0b1010", 10},
		{"0B11", 3},
		{"0o755", 493},
		{"0O17", 15},
		{"0x1A", 26},
		{"0Xbe", 190},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			lx, rep := makeTestLexer(t, tc.src)
			toks := collectAll(lx)
			expectKinds(t, toks, token.NumberLit)
			if toks[0].Num != tc.want {
				t.Fatalf("value = %v, want %v", toks[0].Num, tc.want)
			}
			if len(rep.diags) != 0 {
				t.Fatalf("unexpected diagnostics: %v", rep.diags)
			}
		})
	}
}

func TestBinaryBuffersDecimalDigits(t *testing.T) {
	// двоичный читатель буферизует любые десятичные цифры;
	// непригодный буфер оседает ошибкой разбора и значением 0
	lx, rep := makeTestLexer(t, "0b102")
	toks := collectAll(lx)
	expectKinds(t, toks, token.NumberLit)
	if toks[0].Num != 0 {
		t.Fatalf("value = %v, want 0", toks[0].Num)
	}
	if len(rep.diags) != 1 || rep.diags[0].code != diag.LexBadNumericLiteral {
		t.Fatalf("diags = %v, want single LexBadNumericLiteral", rep.diags)
	}
}

func TestHexRejectsFDigit(t *testing.T) {
	// 'f'/'F' шестнадцатеричный читатель не принимает
	lx, rep := makeTestLexer(t, "0xF")
	toks := collectAll(lx)
	expectKinds(t, toks, token.NumberLit)
	if toks[0].Num != 0 {
		t.Fatalf("value = %v, want 0", toks[0].Num)
	}
	if len(rep.diags) != 2 {
		t.Fatalf("diags = %v, want 2", rep.diags)
	}
	if rep.diags[0].code != diag.LexInvalidOrUnexpectedToken {
		t.Fatalf("diags[0].code = %v", rep.diags[0].code)
	}
	if rep.diags[1].code != diag.LexBadNumericLiteral {
		t.Fatalf("diags[1].code = %v", rep.diags[1].code)
	}
}

func TestLegacyOctal(t *testing.T) {
	// первая цифра уходит на место префикса и в значение не попадает
	lx, rep := makeTestLexer(t, "0755")
	toks := collectAll(lx)
	expectKinds(t, toks, token.NumberLit)
	if toks[0].Num != 45 {
		t.Fatalf("value = %v, want 45", toks[0].Num)
	}
	if len(rep.diags) != 1 {
		t.Fatalf("diags = %v, want one warning", rep.diags)
	}
	d := rep.diags[0]
	if d.code != diag.LexLegacyOctalLiteral || d.sev != diag.SevWarning {
		t.Fatalf("diag = %v, want LexLegacyOctalLiteral warning", d)
	}
	if d.span.Start != 0 || d.span.End != 4 {
		t.Fatalf("diag span = %v, want [0,4)", d.span)
	}
}

func TestLegacyDecimal(t *testing.T) {
	lx, rep := makeTestLexer(t, "08")
	toks := collectAll(lx)
	expectKinds(t, toks, token.NumberLit)
	if toks[0].Num != 8 {
		t.Fatalf("value = %v, want 8", toks[0].Num)
	}
	if len(rep.diags) != 1 {
		t.Fatalf("diags = %v, want one warning", rep.diags)
	}
	d := rep.diags[0]
	if d.code != diag.LexLegacyDecimalEscape || d.sev != diag.SevWarning {
		t.Fatalf("diag = %v, want LexLegacyDecimalEscape warning", d)
	}
	if d.span.Start != 0 || d.span.End != 2 {
		t.Fatalf("diag span = %v, want [0,2)", d.span)
	}
}

func TestBareZero(t *testing.T) {
	t.Run("before whitespace", func(t *testing.T) {
		lx, rep := makeTestLexer(t, "0 ;")
		toks := collectAll(lx)
		expectKinds(t, toks, token.NumberLit, token.Semicolon)
		if toks[0].Num != 0 {
			t.Fatalf("value = %v, want 0", toks[0].Num)
		}
		expectSpan(t, toks[0], 0, 1)
		if len(rep.diags) != 0 {
			t.Fatalf("unexpected diagnostics: %v", rep.diags)
		}
	})
	t.Run("at end of input", func(t *testing.T) {
		lx, rep := makeTestLexer(t, "0")
		toks := collectAll(lx)
		expectKinds(t, toks, token.NumberLit)
		if toks[0].Num != 0 {
			t.Fatalf("value = %v, want 0", toks[0].Num)
		}
		if len(rep.diags) != 1 || rep.diags[0].code != diag.LexInvalidOrUnexpectedToken {
			t.Fatalf("diags = %v, want single LexInvalidOrUnexpectedToken", rep.diags)
		}
	})
}

func TestStrayCharInsideNumber(t *testing.T) {
	// посторонний символ даёт диагностику, но литерал продолжается
	lx, rep := makeTestLexer(t, "12@3")
	toks := collectAll(lx)
	expectKinds(t, toks, token.NumberLit)
	if toks[0].Num != 123 {
		t.Fatalf("value = %v, want 123", toks[0].Num)
	}
	if len(rep.diags) != 1 || rep.diags[0].code != diag.LexInvalidOrUnexpectedToken {
		t.Fatalf("diags = %v, want single LexInvalidOrUnexpectedToken", rep.diags)
	}
}

func TestMalformedExponent(t *testing.T) {
	lx, rep := makeTestLexer(t, "1e+")
	toks := collectAll(lx)
	expectKinds(t, toks, token.NumberLit)
	if toks[0].Num != 0 {
		t.Fatalf("value = %v, want 0", toks[0].Num)
	}
	if len(rep.diags) != 1 || rep.diags[0].code != diag.LexBadNumericLiteral {
		t.Fatalf("diags = %v, want single LexBadNumericLiteral", rep.diags)
	}
}

func TestStrings(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"single quotes", `'hello'`, "hello"},
		{"double quotes", `"hello"`, "hello"},
		{"empty", `''`, ""},
		{"newline escape", `'a\nb'`, "a\nb"},
		{"tab and cr", `'a\tb\rc'`, "a\tb\rc"},
		{"escaped backslash", `'a\\b'`, `a\b`},
		{"escaped quote", `'say \'hi\''`, "say 'hi'"},
		{"other quote unescaped", `'say "hi"'`, `say "hi"`},
		{"unknown escape passes through", `'\q'`, "q"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lx, rep := makeTestLexer(t, tc.src)
			toks := collectAll(lx)
			expectKinds(t, toks, token.StringLit)
			if toks[0].Str != tc.want {
				t.Fatalf("value = %q, want %q", toks[0].Str, tc.want)
			}
			if toks[0].Text != tc.src {
				t.Fatalf("raw text = %q, want %q", toks[0].Text, tc.src)
			}
			if len(rep.diags) != 0 {
				t.Fatalf("unexpected diagnostics: %v", rep.diags)
			}
		})
	}
}

func TestStringSpansCountChars(t *testing.T) {
	lx, _ := makeTestLexer(t, "'αβ' x")
	toks := collectAll(lx)
	expectKinds(t, toks, token.StringLit, token.Ident)
	expectSpan(t, toks[0], 0, 4)
	expectSpan(t, toks[1], 5, 6)
	if toks[0].Str != "αβ" {
		t.Fatalf("value = %q, want %q", toks[0].Str, "αβ")
	}
	if toks[0].Text != "'αβ'" {
		t.Fatalf("raw = %q", toks[0].Text)
	}
}

func TestUnterminatedString(t *testing.T) {
	lx, rep := makeTestLexer(t, "'abc")
	toks := collectAll(lx)
	expectKinds(t, toks, token.StringLit)
	if toks[0].Str != "abc" {
		t.Fatalf("value = %q, want %q", toks[0].Str, "abc")
	}
	if len(rep.diags) != 1 || rep.diags[0].code != diag.LexUnterminatedString {
		t.Fatalf("diags = %v, want single LexUnterminatedString", rep.diags)
	}
}

func TestMultilineStringValue(t *testing.T) {
	lx, rep := makeTestLexer(t, "'a\nb'")
	toks := collectAll(lx)
	expectKinds(t, toks, token.StringLit)
	if toks[0].Str != "a\nb" {
		t.Fatalf("value = %q", toks[0].Str)
	}
	if len(rep.diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", rep.diags)
	}
}

func TestLineComment(t *testing.T) {
	lx, rep := makeTestLexer(t, "// comment\nx")
	toks := collectAll(lx)
	expectKinds(t, toks, token.SingleLineComment, token.Ident)
	// завершающий перевод строки входит в токен
	expectSpan(t, toks[0], 0, 11)
	expectSpan(t, toks[1], 11, 12)
	if len(rep.diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", rep.diags)
	}
}

func TestLineCommentAtEOF(t *testing.T) {
	lx, _ := makeTestLexer(t, "//tail")
	toks := collectAll(lx)
	expectKinds(t, toks, token.SingleLineComment)
	expectSpan(t, toks[0], 0, 6)
}

func TestBlockComment(t *testing.T) {
	lx, rep := makeTestLexer(t, "/* hi */ x")
	toks := collectAll(lx)
	expectKinds(t, toks, token.MultiLineComment, token.Ident)
	expectSpan(t, toks[0], 0, 8)
	if toks[0].Text != "/* hi */" {
		t.Fatalf("text = %q", toks[0].Text)
	}
	if len(rep.diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", rep.diags)
	}
}

func TestBlockCommentWithStars(t *testing.T) {
	lx, _ := makeTestLexer(t, "/* a * b **/")
	toks := collectAll(lx)
	expectKinds(t, toks, token.MultiLineComment)
	expectSpan(t, toks[0], 0, 12)
}

func TestUnterminatedBlockComment(t *testing.T) {
	lx, rep := makeTestLexer(t, "/* abc")
	toks := collectAll(lx)
	expectKinds(t, toks, token.MultiLineComment)
	expectSpan(t, toks[0], 0, 6)
	if len(rep.diags) != 1 || rep.diags[0].code != diag.LexUnterminatedBlockComment {
		t.Fatalf("diags = %v, want single LexUnterminatedBlockComment", rep.diags)
	}
}

func TestUnknownCharStopsStream(t *testing.T) {
	lx, rep := makeTestLexer(t, "a @ b")
	toks := collectAll(lx)
	expectKinds(t, toks, token.Ident)
	if len(rep.diags) != 1 || rep.diags[0].code != diag.LexUnexpectedToken {
		t.Fatalf("diags = %v, want single LexUnexpectedToken", rep.diags)
	}
	// после терминальной диагностики — только EOF, без паник
	for i := 0; i < 3; i++ {
		if tok := lx.Next(); tok.Kind != token.EOF {
			t.Fatalf("Next() after stop = %v, want EOF", tok.Kind)
		}
	}
}

func TestEmptyInput(t *testing.T) {
	lx, rep := makeTestLexer(t, "")
	for i := 0; i < 3; i++ {
		tok := lx.Next()
		if tok.Kind != token.EOF {
			t.Fatalf("Next() = %v, want EOF", tok.Kind)
		}
		expectSpan(t, tok, 0, 0)
	}
	if len(rep.diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", rep.diags)
	}
}

func TestWhitespaceOnlyInput(t *testing.T) {
	lx, _ := makeTestLexer(t, "  \t\n ")
	tok := lx.Next()
	if tok.Kind != token.EOF {
		t.Fatalf("Next() = %v, want EOF", tok.Kind)
	}
	expectSpan(t, tok, 5, 5)
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer(t, "foo bar")
	p := lx.Peek()
	n := lx.Next()
	if p != n {
		t.Fatalf("Peek() = %v, Next() = %v, want equal", p, n)
	}
	if next := lx.Next(); next.Str != "bar" {
		t.Fatalf("second token = %q, want %q", next.Str, "bar")
	}
}

func TestDotDotDotAndRest(t *testing.T) {
	lx, _ := makeTestLexer(t, "...rest")
	toks := collectAll(lx)
	expectKinds(t, toks, token.DotDotDot, token.Ident)
	expectSpan(t, toks[0], 0, 3)
	if toks[1].Str != "rest" {
		t.Fatalf("ident = %q", toks[1].Str)
	}
}

func TestNilReporterDoesNotPanic(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.js", []byte("0xZ @"))
	lx := lexer.New(fs.Get(id), lexer.Options{})
	_ = collectAll(lx)
}

func TestRealisticSnippet(t *testing.T) {
	src := "let x = 10 ;\n" +
		"// update\n" +
		"x += 2 ;\n"
	lx, rep := makeTestLexer(t, src)
	toks := collectAll(lx)
	expectKinds(t, toks,
		token.KwLet, token.Ident, token.Assign, token.NumberLit, token.Semicolon,
		token.SingleLineComment,
		token.Ident, token.PlusAssign, token.NumberLit, token.Semicolon)
	if toks[3].Num != 10 || toks[8].Num != 2 {
		t.Fatalf("values = %v, %v, want 10, 2", toks[3].Num, toks[8].Num)
	}
	if len(rep.diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", rep.diags)
	}
}

func TestPunctuationMergesIntoIdentifierRun(t *testing.T) {
	// скан идентификатора не останавливается на постороннем символе:
	// скобки дают диагностики, а буквы по обе стороны сливаются в одно имя
	lx, rep := makeTestLexer(t, "add(x)")
	toks := collectAll(lx)
	expectKinds(t, toks, token.Ident)
	if toks[0].Str != "addx" {
		t.Fatalf("name = %q, want %q", toks[0].Str, "addx")
	}
	expectSpan(t, toks[0], 0, 6)
	if len(rep.diags) != 2 {
		t.Fatalf("diags = %v, want 2", rep.diags)
	}
	for _, d := range rep.diags {
		if d.code != diag.LexUnexpectedToken {
			t.Fatalf("diag code = %v, want LexUnexpectedToken", d.code)
		}
	}
}
