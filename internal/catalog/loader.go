package catalog

import (
	"bytes"
	"compress/gzip"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"fitbuddy/internal/model"

	"github.com/rs/zerolog"
)

//go:embed data/foods.json
var builtinFoods []byte

// Loader defines the interface for loading a food catalogue.
type Loader interface {
	// Load reads the catalogue at location and returns it.
	// The meaning of location depends on the implementation.
	Load(ctx context.Context, location string) (*Catalog, error)
}

// document is the on-disk catalogue format. It matches the API response body
// so a saved response can be served back as a catalogue.
type document struct {
	Foods []model.FoodRecord `json:"foods"`
}

// decode parses a catalogue document, gunzipping it first when gzipped is set.
func decode(r io.Reader, gzipped bool) (*Catalog, error) {
	if gzipped {
		gzipReader, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzipReader.Close()
		r = gzipReader
	}

	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode catalogue: %w", err)
	}

	return New(doc.Foods)
}

// Encode writes c as a catalogue document, gzipped when gzipped is set. The
// output can be read back by the file and S3 loaders.
func Encode(w io.Writer, c *Catalog, gzipped bool) error {
	if gzipped {
		gzipWriter := gzip.NewWriter(w)
		if err := Encode(gzipWriter, c, false); err != nil {
			gzipWriter.Close()
			return err
		}
		if err := gzipWriter.Close(); err != nil {
			return fmt.Errorf("failed to finish gzip stream: %w", err)
		}
		return nil
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(document{Foods: c.Foods()}); err != nil {
		return fmt.Errorf("failed to encode catalogue: %w", err)
	}
	return nil
}

func isGzipped(name string) bool {
	return strings.HasSuffix(name, ".gz")
}

// Builtin returns the catalogue compiled into the binary.
func Builtin() (*Catalog, error) {
	return decode(bytes.NewReader(builtinFoods), false)
}

// embeddedLoader implements Loader for the compiled-in catalogue.
type embeddedLoader struct {
	logger zerolog.Logger
}

// NewEmbeddedLoader creates a loader that ignores location and returns the
// compiled-in catalogue.
func NewEmbeddedLoader(logger zerolog.Logger) Loader {
	return &embeddedLoader{
		logger: logger.With().Str("component", "embedded-catalog-loader").Logger(),
	}
}

// Load returns the compiled-in catalogue.
func (l *embeddedLoader) Load(ctx context.Context, _ string) (*Catalog, error) {
	c, err := Builtin()
	if err != nil {
		l.logger.Error().Err(err).Msg("embedded catalogue is invalid")
		return nil, err
	}

	l.logger.Info().Int("foods_loaded", c.Len()).Msg("embedded catalogue loaded")

	return c, nil
}

// fileLoader implements Loader for catalogue files on the local file system.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based catalogue loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "catalog-loader").Logger(),
	}
}

// Load reads a JSON catalogue file. Files ending in .gz are gunzipped.
func (l *fileLoader) Load(ctx context.Context, filePath string) (*Catalog, error) {
	l.logger.Info().Str("file", filePath).Msg("loading catalogue file")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to open catalogue file")
		return nil, fmt.Errorf("failed to open catalogue file %s: %w", filePath, err)
	}
	defer file.Close()

	c, err := decode(file, isGzipped(filePath))
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to read catalogue file")
		return nil, fmt.Errorf("catalogue file %s: %w", filePath, err)
	}

	l.logger.Info().
		Str("file", filePath).
		Int("foods_loaded", c.Len()).
		Msg("catalogue file loaded successfully")

	return c, nil
}
