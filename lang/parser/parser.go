// File: parser/parser.go
package parser

import (
	"github.com/dangerclosesec/zynk/lang/model"
)

// Parser parses a token sequence into a program
type Parser struct {
	tokens []Token
	pos    int
	errors []string
}

// NewParser creates a new Parser over a fully tokenized input
func NewParser(tokens []Token) *Parser {
	return &Parser{
		tokens: tokens,
		errors: []string{},
	}
}

// Errors returns the parser errors
func (p *Parser) Errors() []string {
	return p.errors
}

// ParseProgram parses a complete program. Each loop iteration attempts one
// statement; a malformed statement records an error and parsing continues
// at the current cursor position.
func (p *Parser) ParseProgram() *model.Program {
	program := model.NewProgram()

	for !p.atEnd() {
		switch p.curToken().Type {
		case TokenPrint:
			stmt := p.parsePrint()
			if stmt != nil {
				program.AddStatement(stmt)
			}
		case TokenLet:
			stmt := p.parseLet()
			if stmt != nil {
				program.AddStatement(stmt)
			}
		default:
			// Unknown top-level token -> no-op. Skipped silently, not
			// reported.
			p.next()
		}
	}

	return program
}

// parsePrint parses: "print" "(" [ literal ("," literal)* ] ")"
func (p *Parser) parsePrint() *model.PrintStatement {
	// "print" keyword is the current token
	p.next()

	if !p.curTokenIs(TokenLParen) {
		p.addError("Expected '(' to start print statement")
		return nil
	}
	p.next()

	values := []model.Value{}
	for p.curToken().IsLiteral() {
		values = append(values, valueOf(p.curToken()))
		p.next()

		if p.curTokenIs(TokenComma) {
			// found comma, keep looking for values
			p.next()
		} else {
			break
		}
	}

	if !p.curTokenIs(TokenRParen) {
		p.addError("Expected ')' to end print statement")
		return nil
	}
	p.next()

	return &model.PrintStatement{Values: values}
}

// parseLet parses: "let" Text "to" literal
func (p *Parser) parseLet() *model.LetStatement {
	// "let" keyword is the current token
	p.next()

	if !p.curTokenIs(TokenText) {
		p.addError("Expected variable name after 'let'")
		return nil
	}
	key := p.curToken()
	p.next()

	if !p.curTokenIs(TokenTo) {
		p.addError("Expected 'to' after variable name")
		return nil
	}
	p.next()

	if !p.curToken().IsLiteral() {
		p.addError("Expected value after 'to'")
		return nil
	}
	value := p.curToken()
	p.next()

	return &model.LetStatement{Name: key.Literal, Value: valueOf(value)}
}

// valueOf copies a literal token's payload into an owned value
func valueOf(tok Token) model.Value {
	if tok.Type == TokenInt {
		return model.IntValue(tok.Int)
	}
	return model.TextValue(tok.Literal)
}

// curToken returns the token under the cursor, or an EOF token past the end
func (p *Parser) curToken() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: TokenEOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) curTokenIs(t TokenType) bool {
	return p.curToken().Type == t
}

// next advances the cursor; it only ever moves forward
func (p *Parser) next() {
	p.pos++
}

func (p *Parser) atEnd() bool {
	return p.pos >= len(p.tokens)
}

// addError adds an error to the parser errors
func (p *Parser) addError(msg string) {
	p.errors = append(p.errors, msg)
}
