// File: parser/parse.go
package parser

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dangerclosesec/zynk/lang/model"
)

// DefaultFileName is the file read when a source path resolves to a
// directory instead of a file.
const DefaultFileName = "init.zynk"

// ErrSourceNotFound is returned when the resolved source file cannot be read.
var ErrSourceNotFound = errors.New("source file not found")

// ResolveSourcePath maps a user-supplied path to the file to compile. A
// regular file is used as-is; a directory (or anything else) falls back to
// the default file name inside it.
func ResolveSourcePath(path string) string {
	info, err := os.Stat(path)
	if err == nil && info.Mode().IsRegular() {
		return path
	}
	return filepath.Join(path, DefaultFileName)
}

// Parse tokenizes and parses source text. Parser errors are returned as
// descriptive strings and do not abort the run; the returned program holds
// every statement that parsed. A tokenizer failure is fatal and returned as
// the error.
func Parse(source string) (*model.Program, []string, error) {
	tokens, err := Tokenize(source)
	if err != nil {
		return nil, nil, err
	}

	p := NewParser(tokens)
	program := p.ParseProgram()

	return program, p.Errors(), nil
}

// LoadSource reads the source text behind a user-supplied path
func LoadSource(filePath string) (string, error) {
	resolved := ResolveSourcePath(filePath)

	content, err := os.ReadFile(resolved)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%s: %w", resolved, ErrSourceNotFound)
		}
		return "", fmt.Errorf("reading %s: %w", resolved, err)
	}

	return string(content), nil
}

// ParseFile parses a .zynk file
func ParseFile(filePath string) (*model.Program, []string, error) {
	source, err := LoadSource(filePath)
	if err != nil {
		return nil, nil, err
	}

	program, parseErrors, err := Parse(source)
	if err != nil {
		return nil, nil, err
	}
	program.Source = ResolveSourcePath(filePath)

	return program, parseErrors, nil
}
