// internal/repository/snippet.go
package repository

import (
	"context"
	"fmt"

	"github.com/dangerclosesec/zynk/internal/domain"
	"github.com/dangerclosesec/zynk/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SnippetRepositoryIface interface {
	Create(ctx context.Context, snippet *model.Snippet) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Snippet, error)
	FindAllPaginated(ctx context.Context, offset, limit int) ([]*model.Snippet, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type SnippetRepository struct {
	db *gorm.DB
}

func NewSnippetRepository(db *gorm.DB) *SnippetRepository {
	return &SnippetRepository{db: db}
}

// Begin starts a new database transaction and returns a Transaction instance.
func (r *SnippetRepository) Begin(ctx context.Context) (Transaction, error) {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &gormTransaction{tx: tx}, nil
}

func (r *SnippetRepository) Create(ctx context.Context, snippet *model.Snippet) error {
	result := r.db.WithContext(ctx).Create(snippet)
	if result.Error != nil {
		return fmt.Errorf("failed to create snippet: %w", result.Error)
	}
	return nil
}

func (r *SnippetRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Snippet, error) {
	var snippet model.Snippet
	result := r.db.WithContext(ctx).First(&snippet, "id = ?", id)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, domain.ErrSnippetNotFound
		}
		return nil, fmt.Errorf("failed to find snippet: %w", result.Error)
	}
	return &snippet, nil
}

// FindAllPaginated returns a paginated list of snippets, newest first
func (r *SnippetRepository) FindAllPaginated(ctx context.Context, offset, limit int) ([]*model.Snippet, int64, error) {
	var snippets []*model.Snippet
	var count int64

	if err := r.db.WithContext(ctx).Model(&model.Snippet{}).Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count snippets: %w", err)
	}

	result := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&snippets)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to find paginated snippets: %w", result.Error)
	}

	return snippets, count, nil
}

func (r *SnippetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Snippet{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete snippet: %w", result.Error)
	}
	return nil
}
