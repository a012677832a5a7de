package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockLoader is a mock implementation of the Loader interface for testing.
type mockLoader struct {
	loadFunc func(ctx context.Context, location string) (*Catalog, error)
}

func (m *mockLoader) Load(ctx context.Context, location string) (*Catalog, error) {
	if m.loadFunc != nil {
		return m.loadFunc(ctx, location)
	}
	return nil, errors.New("not implemented")
}

func TestFallbackLoader_S3Success(t *testing.T) {
	logger := zerolog.Nop()
	s3Catalog := mustCatalog(t, testFoods()[:1])

	s3Loader := &mockLoader{
		loadFunc: func(ctx context.Context, location string) (*Catalog, error) {
			assert.Equal(t, "catalog/foods.json", location, "S3 key should have prefix")
			return s3Catalog, nil
		},
	}
	fileLoader := &mockLoader{
		loadFunc: func(ctx context.Context, location string) (*Catalog, error) {
			t.Error("file loader should not be called when S3 succeeds")
			return nil, errors.New("should not be called")
		},
	}

	fallback := NewFallbackLoader(s3Loader, fileLoader, "catalog/", logger)

	c, err := fallback.Load(context.Background(), "foods.json")
	require.NoError(t, err)
	assert.Same(t, s3Catalog, c)
}

func TestFallbackLoader_S3FailsFallsBackToLocal(t *testing.T) {
	logger := zerolog.Nop()
	localCatalog := mustCatalog(t, testFoods())

	s3Loader := &mockLoader{
		loadFunc: func(ctx context.Context, location string) (*Catalog, error) {
			return nil, errors.New("access denied")
		},
	}
	fileLoader := &mockLoader{
		loadFunc: func(ctx context.Context, location string) (*Catalog, error) {
			assert.Equal(t, "foods.json", location, "local path should not have prefix")
			return localCatalog, nil
		},
	}

	fallback := NewFallbackLoader(s3Loader, fileLoader, "catalog/", logger)

	c, err := fallback.Load(context.Background(), "foods.json")
	require.NoError(t, err)
	assert.Same(t, localCatalog, c)
}

func TestFallbackLoader_NoS3Loader(t *testing.T) {
	logger := zerolog.Nop()
	localCatalog := mustCatalog(t, testFoods())

	fileLoader := &mockLoader{
		loadFunc: func(ctx context.Context, location string) (*Catalog, error) {
			return localCatalog, nil
		},
	}

	fallback := NewFallbackLoader(nil, fileLoader, "catalog/", logger)

	c, err := fallback.Load(context.Background(), "foods.json")
	require.NoError(t, err)
	assert.Same(t, localCatalog, c)
}

func TestFallbackLoader_BothFail(t *testing.T) {
	logger := zerolog.Nop()

	s3Loader := &mockLoader{
		loadFunc: func(ctx context.Context, location string) (*Catalog, error) {
			return nil, errors.New("s3 down")
		},
	}
	fileLoader := &mockLoader{
		loadFunc: func(ctx context.Context, location string) (*Catalog, error) {
			return nil, errors.New("file missing")
		},
	}

	fallback := NewFallbackLoader(s3Loader, fileLoader, "catalog/", logger)

	c, err := fallback.Load(context.Background(), "foods.json")
	assert.EqualError(t, err, "file missing")
	assert.Nil(t, c)
}
