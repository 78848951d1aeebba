// internal/service/snippet.go
package service

import (
	"context"
	"fmt"

	"github.com/dangerclosesec/zynk/internal/model"
	"github.com/dangerclosesec/zynk/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// SnippetService stores playground programs alongside their generated code
type SnippetService struct {
	repo           repository.SnippetRepositoryIface
	compileService *CompileService
	validate       *validator.Validate
}

func NewSnippetService(repo repository.SnippetRepositoryIface, compileService *CompileService) *SnippetService {
	return &SnippetService{
		repo:           repo,
		compileService: compileService,
		validate:       validator.New(),
	}
}

type CreateSnippetInput struct {
	Title  string `json:"title" validate:"max=200"`
	Source string `json:"source" validate:"required"`
}

type SnippetOutput struct {
	Snippet *model.Snippet `json:"snippet"`
	Errors  []string       `json:"errors"`
}

// Create compiles the source and stores source and generated code together.
// Parse errors do not block saving; they are returned alongside the stored
// snippet, mirroring the CLI's report-and-continue behavior.
func (s *SnippetService) Create(ctx context.Context, input CreateSnippetInput) (*SnippetOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("validating snippet: %w", err)
	}

	compiled, err := s.compileService.Compile(ctx, CompileInput{Source: input.Source})
	if err != nil {
		return nil, fmt.Errorf("compiling snippet: %w", err)
	}

	snippet := &model.Snippet{
		ID:     uuid.New(),
		Title:  input.Title,
		Source: input.Source,
		Code:   compiled.Code,
	}

	if err := s.repo.Create(ctx, snippet); err != nil {
		return nil, err
	}

	return &SnippetOutput{
		Snippet: snippet,
		Errors:  compiled.Errors,
	}, nil
}

// Get returns a stored snippet by ID
func (s *SnippetService) Get(ctx context.Context, id uuid.UUID) (*model.Snippet, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns a page of snippets with the total count
func (s *SnippetService) List(ctx context.Context, offset, limit int) ([]*model.Snippet, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.FindAllPaginated(ctx, offset, limit)
}

// Delete removes a stored snippet
func (s *SnippetService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
