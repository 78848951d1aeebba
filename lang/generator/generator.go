// File: generator/generator.go
package generator

import (
	"strings"

	"github.com/dangerclosesec/zynk/lang/model"
)

// Target includes required by the emitted constructs
const (
	IncludeIOStream = "<iostream>"
	IncludeString   = "<string>"
)

// Generator translates a parsed program into C++ source text
type Generator struct {
	includes []string
	seen     map[string]bool
	body     strings.Builder
}

// NewGenerator creates a new Generator
func NewGenerator() *Generator {
	return &Generator{
		seen: make(map[string]bool),
	}
}

// Generate emits the target source for a program: the accumulated include
// directives, a blank line, then every statement wrapped in a main entry
// point in declaration order.
func Generate(program *model.Program) string {
	g := NewGenerator()

	g.body.WriteString("int main() {\n")
	for _, stmt := range program.Statements {
		switch node := stmt.(type) {
		case *model.PrintStatement:
			g.genPrint(node)
		case *model.LetStatement:
			g.genLet(node)
		}
	}
	g.body.WriteString("}")

	return g.renderIncludes() + "\n" + g.body.String()
}

// genPrint emits a chained stream-output expression, one insertion per
// value, terminated by std::endl.
func (g *Generator) genPrint(stmt *model.PrintStatement) {
	g.include(IncludeIOStream)

	g.body.WriteString("std::cout<<")
	for _, value := range stmt.Values {
		g.body.WriteString(value.String())
		g.body.WriteString("<<")
	}
	g.body.WriteString("std::endl;\n")
}

// genLet emits a typed variable declaration, dispatching on the literal
// kind of the value.
func (g *Generator) genLet(stmt *model.LetStatement) {
	switch stmt.Value.Kind {
	case model.ValueText:
		// The value text is spliced verbatim, not quoted or escaped. A
		// value that is not valid C++ produces code that will not
		// compile; that is the language's contract today.
		g.include(IncludeString)
		g.body.WriteString("std::string ")
		g.body.WriteString(stmt.Name)
		g.body.WriteString("=")
		g.body.WriteString(stmt.Value.Text)
		g.body.WriteString(";\n")
	case model.ValueInt:
		g.body.WriteString("int ")
		g.body.WriteString(stmt.Name)
		g.body.WriteString("=")
		g.body.WriteString(stmt.Value.String())
		g.body.WriteString(";\n")
	}
}

// include records an include directive once, preserving first-occurrence
// order.
func (g *Generator) include(name string) {
	if g.seen[name] {
		return
	}
	g.seen[name] = true
	g.includes = append(g.includes, name)
}

// renderIncludes renders the accumulated include set, one directive per line
func (g *Generator) renderIncludes() string {
	var sb strings.Builder
	for _, name := range g.includes {
		sb.WriteString("#include ")
		sb.WriteString(name)
		sb.WriteString("\n")
	}
	return sb.String()
}

// Includes returns the include directives a program requires, deduplicated
// in first-occurrence order.
func Includes(program *model.Program) []string {
	g := NewGenerator()
	for _, stmt := range program.Statements {
		switch node := stmt.(type) {
		case *model.PrintStatement:
			g.include(IncludeIOStream)
		case *model.LetStatement:
			if node.Value.Kind == model.ValueText {
				g.include(IncludeString)
			}
		}
	}
	return g.includes
}
