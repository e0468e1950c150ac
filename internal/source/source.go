// Package source provides the record loaders that feed the dinosaur queries.
package source

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dbsmedya/dinofacts/internal/config"
	"github.com/dbsmedya/dinofacts/internal/database"
	"github.com/dbsmedya/dinofacts/internal/dinosaur"
	"github.com/dbsmedya/dinofacts/internal/logger"
)

// Loader supplies the dinosaur records a command queries.
type Loader interface {
	Load(ctx context.Context) ([]dinosaur.Record, error)
}

//go:embed dinosaurs.yaml
var embeddedFixture []byte

// File loads records from a YAML or JSON fixture on disk.
type File struct {
	Path string
}

// Load reads and decodes the fixture.
func (f *File) Load(ctx context.Context) ([]dinosaur.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch ext := strings.ToLower(filepath.Ext(f.Path)); ext {
	case ".yaml", ".yml", ".json":
	default:
		return nil, fmt.Errorf("unsupported fixture format %q (want .yaml, .yml or .json)", ext)
	}

	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}

	records, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", f.Path, err)
	}
	return records, nil
}

// Embedded is the fixture compiled into the binary.
type Embedded struct{}

// Load decodes the bundled fixture.
func (Embedded) Load(ctx context.Context) ([]dinosaur.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Decode(embeddedFixture)
}

// Decode parses a fixture document: a top-level sequence of records.
// JSON documents decode too, being valid YAML.
func Decode(data []byte) ([]dinosaur.Record, error) {
	var records []dinosaur.Record

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []dinosaur.Record{}
	}
	return records, nil
}

// FromConfig returns the loader selected by cfg.Data.Source.
func FromConfig(cfg *config.Config, log *logger.Logger) (Loader, error) {
	if log == nil {
		log = logger.NewDefault()
	}

	switch cfg.Data.Source {
	case config.SourceEmbedded, "":
		return Embedded{}, nil
	case config.SourceFile:
		if cfg.Data.Path == "" {
			return nil, fmt.Errorf("data.path is required for the file source")
		}
		return &File{Path: cfg.Data.Path}, nil
	case config.SourceMySQL:
		return &database.Loader{Config: &cfg.MySQL, Log: log.WithSource(config.SourceMySQL)}, nil
	default:
		return nil, fmt.Errorf("unknown data source %q", cfg.Data.Source)
	}
}
