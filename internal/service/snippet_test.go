package service_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/dangerclosesec/zynk/internal/config"
	"github.com/dangerclosesec/zynk/internal/domain"
	"github.com/dangerclosesec/zynk/internal/model"
	"github.com/dangerclosesec/zynk/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memorySnippetRepository is an in-memory SnippetRepositoryIface for tests
type memorySnippetRepository struct {
	snippets map[uuid.UUID]*model.Snippet
}

func newMemorySnippetRepository() *memorySnippetRepository {
	return &memorySnippetRepository{snippets: make(map[uuid.UUID]*model.Snippet)}
}

func (r *memorySnippetRepository) Create(ctx context.Context, snippet *model.Snippet) error {
	snippet.CreatedAt = time.Now()
	snippet.UpdatedAt = snippet.CreatedAt
	r.snippets[snippet.ID] = snippet
	return nil
}

func (r *memorySnippetRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Snippet, error) {
	snippet, ok := r.snippets[id]
	if !ok {
		return nil, domain.ErrSnippetNotFound
	}
	return snippet, nil
}

func (r *memorySnippetRepository) FindAllPaginated(ctx context.Context, offset, limit int) ([]*model.Snippet, int64, error) {
	all := make([]*model.Snippet, 0, len(r.snippets))
	for _, snippet := range r.snippets {
		all = append(all, snippet)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })

	if offset > len(all) {
		offset = len(all)
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], int64(len(r.snippets)), nil
}

func (r *memorySnippetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.snippets, id)
	return nil
}

func newSnippetService(t *testing.T) (*service.SnippetService, *memorySnippetRepository) {
	t.Helper()

	cacheService := service.NewCacheService(service.CacheConfig{
		TTL:         time.Minute,
		CleanupFreq: time.Minute,
	})
	t.Cleanup(cacheService.Close)

	repo := newMemorySnippetRepository()
	compileService := service.NewCompileService(cacheService, config.Load())
	return service.NewSnippetService(repo, compileService), repo
}

func TestCreateSnippet(t *testing.T) {
	svc, repo := newSnippetService(t)
	ctx := context.Background()

	output, err := svc.Create(ctx, service.CreateSnippetInput{
		Title:  "hello",
		Source: "print(hi)",
	})
	require.NoError(t, err)

	require.NotNil(t, output.Snippet)
	assert.Empty(t, output.Errors)
	assert.Equal(t, "print(hi)", output.Snippet.Source)
	assert.Contains(t, output.Snippet.Code, "std::cout<<hi<<std::endl;")
	assert.Len(t, repo.snippets, 1)
}

func TestCreateSnippetKeepsParseErrors(t *testing.T) {
	svc, repo := newSnippetService(t)

	output, err := svc.Create(context.Background(), service.CreateSnippetInput{
		Source: "let 5 to x",
	})
	require.NoError(t, err)

	// The snippet is stored anyway; parse errors ride along
	assert.Len(t, repo.snippets, 1)
	assert.Equal(t, []string{"Expected variable name after 'let'"}, output.Errors)
}

func TestCreateSnippetRequiresSource(t *testing.T) {
	svc, _ := newSnippetService(t)

	_, err := svc.Create(context.Background(), service.CreateSnippetInput{Title: "empty"})
	require.Error(t, err)
}

func TestGetSnippet(t *testing.T) {
	svc, _ := newSnippetService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, service.CreateSnippetInput{Source: "print()"})
	require.NoError(t, err)

	found, err := svc.Get(ctx, created.Snippet.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Snippet.ID, found.ID)

	_, err = svc.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrSnippetNotFound)
}

func TestListSnippets(t *testing.T) {
	svc, _ := newSnippetService(t)
	ctx := context.Background()

	for _, source := range []string{"print(1)", "print(2)", "print(3)"} {
		_, err := svc.Create(ctx, service.CreateSnippetInput{Source: source})
		require.NoError(t, err)
	}

	snippets, total, err := svc.List(ctx, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, snippets, 2)

	// A bad limit falls back to the default page size
	snippets, _, err = svc.List(ctx, 0, -1)
	require.NoError(t, err)
	assert.Len(t, snippets, 3)
}

func TestDeleteSnippet(t *testing.T) {
	svc, repo := newSnippetService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, service.CreateSnippetInput{Source: "print()"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.Snippet.ID))
	assert.Empty(t, repo.snippets)

	err = svc.Delete(ctx, created.Snippet.ID)
	assert.ErrorIs(t, err, domain.ErrSnippetNotFound)
}
