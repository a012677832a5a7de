package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"fitbuddy/internal/catalog"
)

// Writes the built-in food catalogue to a file that the file and S3 catalogue
// sources can load. The output is gzipped when the path ends in .gz.
//
//	go run ./scripts/export_catalog [path]   (default data/foods.json.gz)
func main() {
	path := "data/foods.json.gz"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	c, err := catalog.Builtin()
	if err != nil {
		log.Fatalf("Failed to load built-in catalogue: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	if err := writeCatalog(path, c); err != nil {
		log.Fatalf("Failed to write %s: %v", path, err)
	}

	fmt.Printf("Wrote %d foods in %d categories to %s\n", c.Len(), len(c.Categories()), path)
	fmt.Println("\nUpload it for the s3 source with:")
	fmt.Printf("  aws s3 cp %s s3://$S3_BUCKET/${S3_PREFIX:-catalog/}%s\n", path, filepath.Base(path))
}

func writeCatalog(path string, c *catalog.Catalog) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := catalog.Encode(file, c, strings.HasSuffix(path, ".gz")); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}
