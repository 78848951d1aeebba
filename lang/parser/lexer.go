// File: parser/lexer.go
package parser

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrIntegerOverflow is returned when an integer literal does not fit in 32 bits.
var ErrIntegerOverflow = errors.New("integer literal overflows 32 bits")

// Lexer tokenizes input text
type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
	line         int
	column       int
}

// NewLexer creates a new Lexer
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		column: 0,
	}
	l.readChar()
	return l
}

// Tokenize runs a lexer over the full input and collects every token in
// source order. The token slice never includes the trailing EOF token.
func Tokenize(input string) ([]Token, error) {
	l := NewLexer(input)

	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		if tok.Type == TokenEOF {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

// readChar reads the next character and advances the position
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0 // EOF
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.column++

	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
}

// NextToken returns the next token
func (l *Lexer) NextToken() (Token, error) {
	// Discard every character that starts no token: whitespace, punctuation
	// outside the grammar, anything. This is the "unknown character ->
	// discarded" policy, not an error path.
	for l.ch != 0 && !isLetter(l.ch) && !isDigit(l.ch) && !isDelimiter(l.ch) {
		l.readChar()
	}

	var tok Token

	switch {
	case l.ch == 0:
		tok = Token{Type: TokenEOF, Literal: "", Line: l.line, Column: l.column}
		return tok, nil
	case l.ch == '(':
		tok = Token{Type: TokenLParen, Literal: string(l.ch), Line: l.line, Column: l.column}
	case l.ch == ')':
		tok = Token{Type: TokenRParen, Literal: string(l.ch), Line: l.line, Column: l.column}
	case l.ch == ',':
		tok = Token{Type: TokenComma, Literal: string(l.ch), Line: l.line, Column: l.column}
	case isLetter(l.ch):
		line, column := l.line, l.column
		literal := l.readWord()
		return Token{Type: lookupWord(literal), Literal: literal, Line: line, Column: column}, nil
	default: // digit
		line, column := l.line, l.column
		literal := l.readNumber()
		n, err := strconv.ParseInt(literal, 10, 32)
		if err != nil {
			return Token{}, fmt.Errorf("parsing %q: %w", literal, ErrIntegerOverflow)
		}
		return Token{Type: TokenInt, Literal: literal, Int: int32(n), Line: line, Column: column}, nil
	}

	l.readChar()
	return tok, nil
}

// readWord reads a keyword-or-text run: a letter followed by any
// alphanumeric characters
func (l *Lexer) readWord() string {
	position := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

// readNumber reads a digit run
func (l *Lexer) readNumber() string {
	position := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

// isLetter returns true if the character is a letter
func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

// isDigit returns true if the character is a digit
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// isDelimiter returns true for the punctuation the grammar recognizes
func isDelimiter(ch byte) bool {
	return ch == '(' || ch == ')' || ch == ','
}

// lookupWord checks if the word is a keyword
func lookupWord(word string) TokenType {
	if tok, ok := Keywords[word]; ok {
		return tok
	}
	return TokenText
}
