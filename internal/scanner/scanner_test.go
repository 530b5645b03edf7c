package scanner

import (
	"testing"

	"github.com/loxlang/golox/internal/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestScanTokens_Punctuation(t *testing.T) {
	s := New("(){};,+-*!===<=>=!=<>/.")
	toks := s.ScanTokens()
	want := []token.Kind{
		token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE, token.SEMICOLON,
		token.COMMA, token.PLUS, token.MINUS, token.STAR, token.BANG_EQUAL,
		token.EQUAL_EQUAL, token.LESS_EQUAL, token.GREATER_EQUAL, token.BANG_EQUAL,
		token.LESS, token.GREATER, token.SLASH, token.DOT, token.EOF,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestScanTokens_StringLiteral(t *testing.T) {
	toks := New(`"hello world"`).ScanTokens()
	if len(toks) != 2 || toks[0].Kind != token.STRING {
		t.Fatalf("unexpected tokens: %v", toks)
	}
	if toks[0].Literal != "hello world" {
		t.Errorf("literal = %v, want %q", toks[0].Literal, "hello world")
	}
}

func TestScanTokens_UnterminatedStringIsError(t *testing.T) {
	s := New(`"unterminated`)
	s.ScanTokens()
	if len(s.Errors()) == 0 {
		t.Fatal("expected a scan error for an unterminated string")
	}
}

func TestScanTokens_UnterminatedBlockCommentIsSilent(t *testing.T) {
	s := New("var x = 1; /* oops")
	s.ScanTokens()
	if len(s.Errors()) != 0 {
		t.Errorf("unterminated block comment should not report an error, got %v", s.Errors())
	}
}

func TestScanTokens_NumberLiteral(t *testing.T) {
	cases := []struct {
		src  string
		want float64
	}{
		{"123", 123},
		{"123.45", 123.45},
		{"1.5e10", 1.5e10},
	}
	for _, c := range cases {
		toks := New(c.src).ScanTokens()
		if toks[0].Literal != c.want {
			t.Errorf("scan(%q) literal = %v, want %v", c.src, toks[0].Literal, c.want)
		}
	}
}

func TestScanTokens_KeywordsAreCaseSensitive(t *testing.T) {
	toks := New("print Print PRINT").ScanTokens()
	if toks[0].Kind != token.PRINT {
		t.Errorf("print should be a keyword")
	}
	if toks[1].Kind != token.IDENT || toks[2].Kind != token.IDENT {
		t.Errorf("Lox keywords are case-sensitive: Print/PRINT must be identifiers")
	}
}

func TestScanTokens_IllegalCharacterReportsErrorAndContinues(t *testing.T) {
	s := New("1 @ 2")
	toks := s.ScanTokens()
	if len(s.Errors()) != 1 {
		t.Fatalf("expected exactly one scan error, got %v", s.Errors())
	}
	got := kinds(toks)
	want := []token.Kind{token.NUMBER, token.NUMBER, token.EOF}
	if len(got) != len(want) {
		t.Fatalf("scanning should continue past the illegal character, got %v", got)
	}
}

func TestScanTokens_LineTracking(t *testing.T) {
	toks := New("1\n2\n3").ScanTokens()
	for i, want := range []int{1, 2, 3} {
		if toks[i].Line != want {
			t.Errorf("token %d on line %d, want %d", i, toks[i].Line, want)
		}
	}
}
