// File: parser/token.go
package parser

// Token represents a lexical token
type Token struct {
	Type    TokenType
	Literal string
	Int     int32 // parsed value when Type == TokenInt
	Line    int
	Column  int
}

// TokenType represents the type of a token
type TokenType int

// Token types
const (
	TokenEOF TokenType = iota

	// Literals
	TokenText // bare identifier-like run, carried verbatim
	TokenInt

	// Keywords
	TokenPrint
	TokenLet
	TokenTo

	// Delimiters
	TokenLParen // (
	TokenRParen // )
	TokenComma  // ,
)

// Keywords maps keyword strings to token types
var Keywords = map[string]TokenType{
	"print": TokenPrint,
	"let":   TokenLet,
	"to":    TokenTo,
}

// IsLiteral returns true for the token types that carry a value
func (t Token) IsLiteral() bool {
	return t.Type == TokenText || t.Type == TokenInt
}

// String returns a readable name for the token type
func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "EOF"
	case TokenText:
		return "TEXT"
	case TokenInt:
		return "INT"
	case TokenPrint:
		return "PRINT"
	case TokenLet:
		return "LET"
	case TokenTo:
		return "TO"
	case TokenLParen:
		return "LPAREN"
	case TokenRParen:
		return "RPAREN"
	case TokenComma:
		return "COMMA"
	}
	return "UNKNOWN"
}
