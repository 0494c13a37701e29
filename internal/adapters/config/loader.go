// Package config provides the configuration loader for bccproj.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/bccproj/internal/core/domain"
	"go.trai.ch/bccproj/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using an optional YAML file in the
// project root. The format is declarative only: unknown keys are rejected and
// nothing in the file is executed.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads bccproj.yaml from root and applies it over domain.DefaultConfig().
// A missing file is not an error.
func (l *Loader) Load(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()
	path := filepath.Join(root, domain.ConfigFileName)

	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the project root
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.Logger.Debug("no " + domain.ConfigFileName + ", using defaults")
			return cfg, nil
		}
		return cfg, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	file, err := parse(data)
	if err != nil {
		return cfg, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	apply(&cfg, file)
	l.Logger.Debug("loaded " + path)
	return cfg, nil
}

func parse(data []byte) (*Projectfile, error) {
	var file Projectfile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			// Empty document.
			return &file, nil
		}
		return nil, err
	}
	return &file, nil
}

func apply(cfg *domain.Config, file *Projectfile) {
	if file.Make != nil {
		cfg.BuildTool = domain.ParseBuildTool(*file.Make)
	}
	if file.StripExe != nil {
		cfg.StripExe = *file.StripExe
	}
	if m := file.VersionMarker; m != nil {
		if len(m.Mark) > 0 {
			cfg.Marker.Mark = m.Mark
		}
		if len(m.Clear) > 0 {
			cfg.Marker.Clear = m.Clear
		}
	}
}
