// File: model/model.go
package model

import "strconv"

// ValueKind discriminates the literal kinds the language knows about.
type ValueKind int

const (
	ValueText ValueKind = iota
	ValueInt
)

// Value is a literal value: text or a 32-bit signed integer. Values are
// owned copies of the token payload, so programs carry no references back
// into the token stream.
type Value struct {
	Kind ValueKind
	Text string
	Int  int32
}

// TextValue builds a text literal value
func TextValue(s string) Value {
	return Value{Kind: ValueText, Text: s}
}

// IntValue builds an integer literal value
func IntValue(n int32) Value {
	return Value{Kind: ValueInt, Int: n}
}

// String renders the value the way the generator splices it: text verbatim,
// integers in decimal.
func (v Value) String() string {
	if v.Kind == ValueInt {
		return strconv.FormatInt(int64(v.Int), 10)
	}
	return v.Text
}

// Statement is one parsed unit of program meaning
type Statement interface {
	stmtNode()
}

// PrintStatement prints its values in order
type PrintStatement struct {
	Values []Value
}

// LetStatement declares a variable bound to a literal value
type LetStatement struct {
	Name  string
	Value Value
}

func (*PrintStatement) stmtNode() {}
func (*LetStatement) stmtNode()   {}

// Program is the full ordered sequence of statements for one source file.
// Statements never interact at this stage; there is no symbol table.
type Program struct {
	Statements []Statement
	Source     string
}

// NewProgram creates an empty program
func NewProgram() *Program {
	return &Program{}
}

// AddStatement appends a statement in source order
func (p *Program) AddStatement(stmt Statement) {
	p.Statements = append(p.Statements, stmt)
}
