package parser

import (
	"testing"

	"github.com/dangerclosesec/zynk/lang/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTokenize(t *testing.T, source string) []Token {
	t.Helper()
	tokens, err := Tokenize(source)
	require.NoError(t, err)
	return tokens
}

func TestParseEmptyPrint(t *testing.T) {
	p := NewParser(mustTokenize(t, "print()"))
	program := p.ParseProgram()

	require.Empty(t, p.Errors())
	require.Len(t, program.Statements, 1)

	stmt, ok := program.Statements[0].(*model.PrintStatement)
	require.True(t, ok, "expected a print statement")
	assert.Empty(t, stmt.Values)
}

func TestParsePrintValues(t *testing.T) {
	p := NewParser(mustTokenize(t, "print(3,hi)"))
	program := p.ParseProgram()

	require.Empty(t, p.Errors())
	require.Len(t, program.Statements, 1)

	stmt := program.Statements[0].(*model.PrintStatement)
	require.Len(t, stmt.Values, 2)
	assert.Equal(t, model.IntValue(3), stmt.Values[0])
	assert.Equal(t, model.TextValue("hi"), stmt.Values[1])
}

func TestParseLet(t *testing.T) {
	p := NewParser(mustTokenize(t, "let x to 5"))
	program := p.ParseProgram()

	require.Empty(t, p.Errors())
	require.Len(t, program.Statements, 1)

	stmt, ok := program.Statements[0].(*model.LetStatement)
	require.True(t, ok, "expected a let statement")
	assert.Equal(t, "x", stmt.Name)
	assert.Equal(t, model.IntValue(5), stmt.Value)
}

func TestParseLetRejectsIntegerKey(t *testing.T) {
	p := NewParser(mustTokenize(t, "let 5 to x"))
	program := p.ParseProgram()

	assert.Empty(t, program.Statements)
	require.Len(t, p.Errors(), 1)
	assert.Equal(t, "Expected variable name after 'let'", p.Errors()[0])
}

func TestParseLetErrorPaths(t *testing.T) {
	tests := []struct {
		source string
		errMsg string
	}{
		{"let x 5", "Expected 'to' after variable name"},
		{"let x to", "Expected value after 'to'"},
		{"let x to (", "Expected value after 'to'"},
	}

	for _, tt := range tests {
		p := NewParser(mustTokenize(t, tt.source))
		program := p.ParseProgram()

		assert.Empty(t, program.Statements, "source %q", tt.source)
		require.NotEmpty(t, p.Errors(), "source %q", tt.source)
		assert.Equal(t, tt.errMsg, p.Errors()[0], "source %q", tt.source)
	}
}

func TestParsePrintErrorPaths(t *testing.T) {
	tests := []struct {
		source string
		errMsg string
	}{
		{"print 1", "Expected '(' to start print statement"},
		{"print(1", "Expected ')' to end print statement"},
		{"print(1 2)", "Expected ')' to end print statement"},
	}

	for _, tt := range tests {
		p := NewParser(mustTokenize(t, tt.source))
		program := p.ParseProgram()

		assert.Empty(t, program.Statements, "source %q", tt.source)
		require.NotEmpty(t, p.Errors(), "source %q", tt.source)
		assert.Equal(t, tt.errMsg, p.Errors()[0], "source %q", tt.source)
	}
}

func TestParseTrailingCommaIsAccepted(t *testing.T) {
	// The value loop stops at the first non-literal after a comma; the
	// closing paren then ends the statement normally.
	p := NewParser(mustTokenize(t, "print(1,)"))
	program := p.ParseProgram()

	require.Empty(t, p.Errors())
	require.Len(t, program.Statements, 1)
	stmt := program.Statements[0].(*model.PrintStatement)
	assert.Equal(t, []model.Value{model.IntValue(1)}, stmt.Values)
}

func TestParseSkipsUnknownTopLevelTokens(t *testing.T) {
	p := NewParser(mustTokenize(t, "foo bar ( ) , print(1) baz"))
	program := p.ParseProgram()

	assert.Empty(t, p.Errors(), "skipped tokens are not errors")
	require.Len(t, program.Statements, 1)
}

func TestParseContinuesAfterError(t *testing.T) {
	p := NewParser(mustTokenize(t, "let 5 to x print(2)"))
	program := p.ParseProgram()

	// The bad let reports one error; its leftover tokens are skipped as
	// unknown top-level tokens and the print still parses.
	require.Len(t, p.Errors(), 1)
	require.Len(t, program.Statements, 1)

	stmt := program.Statements[0].(*model.PrintStatement)
	assert.Equal(t, []model.Value{model.IntValue(2)}, stmt.Values)
}

func TestParseIsIdempotent(t *testing.T) {
	tokens := mustTokenize(t, "let greeting to hello print(greeting,1) print()")

	first := NewParser(tokens).ParseProgram()
	second := NewParser(tokens).ParseProgram()

	assert.Equal(t, first.Statements, second.Statements)
}

func TestParseStatementCountBound(t *testing.T) {
	sources := []string{
		"print(1) print(2) let a to 1",
		"junk print junk let",
		"to to to print() ( ) ,",
	}

	for _, source := range sources {
		tokens := mustTokenize(t, source)

		starts := 0
		for _, tok := range tokens {
			if tok.Type == TokenPrint || tok.Type == TokenLet {
				starts++
			}
		}

		program := NewParser(tokens).ParseProgram()
		assert.LessOrEqual(t, len(program.Statements), starts, "source %q", source)
	}
}
