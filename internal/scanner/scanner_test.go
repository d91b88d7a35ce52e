package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/lox/internal/diagnostics"
	"github.com/aledsdavies/lox/internal/token"
)

func scan(src string) ([]token.Token, *diagnostics.Recording) {
	rec := &diagnostics.Recording{}
	s := New(src, rec, nil)
	return s.ScanTokens(), rec
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestScanTokens_punctuationAndOperators(t *testing.T) {
	toks, rec := scan("(){},.-+;*!= == <= >= < >")
	require.Empty(t, rec.Syntax)
	assert.Equal(t, []token.Kind{
		token.LEFT_PAREN, token.RIGHT_PAREN, token.LEFT_BRACE, token.RIGHT_BRACE,
		token.COMMA, token.DOT, token.MINUS, token.PLUS, token.SEMICOLON, token.STAR,
		token.BANG_EQUAL, token.EQUAL_EQUAL, token.LESS_EQUAL, token.GREATER_EQUAL,
		token.LESS, token.GREATER, token.EOF,
	}, kinds(toks))
}

func TestScanTokens_alwaysEndsInSingleEOF(t *testing.T) {
	for _, src := range []string{"", "   ", "var x = 1;", "// comment only\n"} {
		toks, _ := scan(src)
		require.NotEmpty(t, toks)
		assert.Equal(t, token.EOF, toks[len(toks)-1].Kind)

		eofCount := 0
		for _, tok := range toks {
			if tok.Kind == token.EOF {
				eofCount++
			}
		}
		assert.Equal(t, 1, eofCount, "src %q must end in exactly one EOF", src)
	}
}

func TestScanTokens_lineTracking(t *testing.T) {
	toks, _ := scan("var a = 1;\nvar b = 2;\nvar c = 3;")
	var lines []int
	for _, tok := range toks {
		if tok.Kind == token.VAR {
			lines = append(lines, tok.Line)
		}
	}
	require.Len(t, lines, 3)
	assert.Less(t, lines[0], lines[1])
	assert.Less(t, lines[1], lines[2])
}

func TestScanTokens_lineComment(t *testing.T) {
	toks, rec := scan("1 // trailing comment\n2")
	require.Empty(t, rec.Syntax)
	assert.Equal(t, []token.Kind{token.NUMBER, token.NUMBER, token.EOF}, kinds(toks))
}

func TestScanTokens_blockComment_terminatesOnStarSlash(t *testing.T) {
	// spec.md Open Question 1: terminate on the two-char sequence "*/", not
	// the upstream's non-terminating lookahead.
	toks, rec := scan("1 /* a * b / c */ 2")
	require.Empty(t, rec.Syntax)
	assert.Equal(t, []token.Kind{token.NUMBER, token.NUMBER, token.EOF}, kinds(toks))
}

func TestScanTokens_blockComment_tracksNewlinesAndReportsUnterminated(t *testing.T) {
	toks, rec := scan("/* line1\nline2\nline3")
	assert.Len(t, rec.Syntax, 1)
	assert.Contains(t, rec.Syntax[0], "Unterminated comment.")
	assert.Equal(t, token.EOF, toks[len(toks)-1].Kind)
	assert.Equal(t, 3, toks[len(toks)-1].Line)
}

func TestScanTokens_stringLiteral(t *testing.T) {
	toks, rec := scan(`"hello world"`)
	require.Empty(t, rec.Syntax)
	require.Len(t, toks, 2)
	assert.Equal(t, token.STRING, toks[0].Kind)
	assert.Equal(t, "hello world", toks[0].Literal)
}

func TestScanTokens_unterminatedString(t *testing.T) {
	_, rec := scan(`"abc`)
	require.Len(t, rec.Syntax, 1)
	assert.Contains(t, rec.Syntax[0], "Unterminated string.")
}

func TestScanTokens_number(t *testing.T) {
	toks, _ := scan("123 45.67")
	require.Len(t, toks, 3)
	assert.Equal(t, 123.0, toks[0].Literal)
	assert.Equal(t, 45.67, toks[1].Literal)
}

func TestScanTokens_keywordsAndIdentifiers(t *testing.T) {
	toks, _ := scan("put var fun class foo")
	assert.Equal(t, []token.Kind{
		token.PUT, token.VAR, token.FUN, token.CLASS, token.IDENTIFIER, token.EOF,
	}, kinds(toks))
}

func TestScanTokens_unexpectedCharacter(t *testing.T) {
	_, rec := scan("@")
	require.Len(t, rec.Syntax, 1)
	assert.Contains(t, rec.Syntax[0], "Unexpected character.")
}
