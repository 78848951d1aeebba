// internal/service/compile.go
package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/dangerclosesec/zynk/internal/config"
	"github.com/dangerclosesec/zynk/internal/domain"
	"github.com/dangerclosesec/zynk/lang/generator"
	"github.com/dangerclosesec/zynk/lang/parser"
	"github.com/go-playground/validator/v10"
)

// CompileService runs the tokenize/parse/generate pipeline for playground
// requests, caching results by source hash.
type CompileService struct {
	cacheService *CacheService
	config       *config.Config
	validate     *validator.Validate
}

func NewCompileService(cacheService *CacheService, config *config.Config) *CompileService {
	return &CompileService{
		cacheService: cacheService,
		config:       config,
		validate:     validator.New(),
	}
}

type CompileInput struct {
	Source string `json:"source" validate:"required"`
}

type CompileOutput struct {
	Code       string   `json:"code"`
	Includes   []string `json:"includes"`
	Errors     []string `json:"errors"`
	Statements int      `json:"statements"`
}

// Compile validates the input and runs the full pipeline. Parser errors are
// data in the output; only tokenizer failures and invalid input surface as
// errors.
func (s *CompileService) Compile(ctx context.Context, input CompileInput) (*CompileOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}
	if len(input.Source) > s.config.Compiler.MaxSourceBytes {
		return nil, domain.ErrSourceTooLarge
	}

	var output CompileOutput
	key := compileCacheKey(input.Source)

	err := s.cacheService.GetOrSet(ctx, key, &output, func() (interface{}, error) {
		return s.compile(input.Source)
	})
	if err != nil {
		return nil, err
	}

	return &output, nil
}

func (s *CompileService) compile(source string) (*CompileOutput, error) {
	program, parseErrors, err := parser.Parse(source)
	if err != nil {
		return nil, err
	}

	if parseErrors == nil {
		parseErrors = []string{}
	}

	return &CompileOutput{
		Code:       generator.Generate(program),
		Includes:   generator.Includes(program),
		Errors:     parseErrors,
		Statements: len(program.Statements),
	}, nil
}

func compileCacheKey(source string) string {
	sum := sha256.Sum256([]byte(source))
	return "compile:" + hex.EncodeToString(sum[:])
}
