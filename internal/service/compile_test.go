package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/dangerclosesec/zynk/internal/config"
	"github.com/dangerclosesec/zynk/internal/domain"
	"github.com/dangerclosesec/zynk/internal/service"
	"github.com/dangerclosesec/zynk/lang/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCompileService(t *testing.T) *service.CompileService {
	t.Helper()

	cacheService := service.NewCacheService(service.CacheConfig{
		TTL:         time.Minute,
		CleanupFreq: time.Minute,
	})
	t.Cleanup(cacheService.Close)

	return service.NewCompileService(cacheService, config.Load())
}

func TestCompile(t *testing.T) {
	svc := newCompileService(t)
	ctx := context.Background()

	output, err := svc.Compile(ctx, service.CompileInput{Source: "let x to 5\nprint(x)"})
	require.NoError(t, err)

	assert.Equal(t, 2, output.Statements)
	assert.Empty(t, output.Errors)
	assert.Equal(t, []string{"<iostream>"}, output.Includes)
	assert.Contains(t, output.Code, "int x=5;")
	assert.Contains(t, output.Code, "std::cout<<x<<std::endl;")
}

func TestCompileReturnsParseErrorsAsData(t *testing.T) {
	svc := newCompileService(t)

	output, err := svc.Compile(context.Background(), service.CompileInput{Source: "let 5 to x"})
	require.NoError(t, err)

	assert.Equal(t, 0, output.Statements)
	assert.Equal(t, []string{"Expected variable name after 'let'"}, output.Errors)
	assert.Contains(t, output.Code, "int main() {")
}

func TestCompileValidatesInput(t *testing.T) {
	svc := newCompileService(t)

	_, err := svc.Compile(context.Background(), service.CompileInput{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCompileRejectsOversizedSource(t *testing.T) {
	t.Setenv("COMPILER_MAX_SOURCE_BYTES", "8")
	svc := newCompileService(t)

	_, err := svc.Compile(context.Background(), service.CompileInput{Source: "print(12345)"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSourceTooLarge)
}

func TestCompileSurfacesTokenizerOverflow(t *testing.T) {
	svc := newCompileService(t)

	_, err := svc.Compile(context.Background(), service.CompileInput{Source: "print(99999999999)"})
	require.Error(t, err)
	assert.ErrorIs(t, err, parser.ErrIntegerOverflow)
}

func TestCompileCachesBySource(t *testing.T) {
	svc := newCompileService(t)
	ctx := context.Background()

	first, err := svc.Compile(ctx, service.CompileInput{Source: "print(1)"})
	require.NoError(t, err)

	second, err := svc.Compile(ctx, service.CompileInput{Source: "print(1)"})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
