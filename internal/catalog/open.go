package catalog

import (
	"context"
	"fmt"

	"fitbuddy/internal/config"
	"fitbuddy/internal/database"
	"fitbuddy/internal/repository"

	"github.com/rs/zerolog"
)

// Open loads the catalogue from the source selected in cfg. Database-backed
// sources are read once and their connections closed before returning.
func Open(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*Catalog, error) {
	logger.Info().Str("source", cfg.Catalog.Source).Msg("opening food catalogue")

	switch cfg.Catalog.Source {
	case config.SourceEmbedded:
		return NewEmbeddedLoader(logger).Load(ctx, "")

	case config.SourceFile:
		return NewFileLoader(logger).Load(ctx, cfg.Catalog.Path)

	case config.SourceS3:
		s3Loader, err := NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
		if err != nil {
			logger.Warn().Err(err).Msg("S3 unavailable, using local file only")
			s3Loader = nil
		}
		loader := NewFallbackLoader(s3Loader, NewFileLoader(logger), cfg.S3.Prefix, logger)
		return loader.Load(ctx, cfg.Catalog.Path)

	case config.SourcePostgres:
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		defer pool.Close()

		repo := repository.NewFoodRepository(pool, logger)
		return NewSourceLoader(repo, config.SourcePostgres, logger).Load(ctx, "")

	case config.SourceSQLite:
		db, err := database.OpenSQLite(ctx, cfg.SQLite.Path, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite: %w", err)
		}
		defer db.Close()

		repo := repository.NewSQLiteFoodRepository(db, logger)
		return NewSourceLoader(repo, config.SourceSQLite, logger).Load(ctx, "")
	}

	return nil, fmt.Errorf("unknown catalogue source: %q", cfg.Catalog.Source)
}
