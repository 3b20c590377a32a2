package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hepmatch/classify"
	"github.com/katalvlaran/hepmatch/pipeline"
)

//go:embed sample_config.toml
var sampleConfig string

// ErrUnsupportedFormat indicates a config file extension other than
// .toml, .yaml or .yml.
var ErrUnsupportedFormat = errors.New("config: unsupported file format")

// Views names the views read and written inside each event.
type Views struct {
	Generated     string `toml:"generated" yaml:"generated"`
	Reconstructed string `toml:"reconstructed" yaml:"reconstructed"`
	Output        string `toml:"output" yaml:"output"`
}

// Matching holds the matching-stage switches.
type Matching struct {
	CostFunction    string `toml:"cost_function" yaml:"cost_function"`
	DiscardBTagging bool   `toml:"discard_btagging" yaml:"discard_btagging"`
	// Per-side overrides of DiscardBTagging; unset keeps the shared value.
	DiscardBTaggingTruth *bool `toml:"discard_btagging_truth" yaml:"discard_btagging_truth"`
	DiscardBTaggingReco  *bool `toml:"discard_btagging_reco" yaml:"discard_btagging_reco"`

	CopyOnlyFinal      bool `toml:"copy_only_final" yaml:"copy_only_final"`
	KeepUnmatched      bool `toml:"keep_unmatched" yaml:"keep_unmatched"`
	MaxSearchSize      int  `toml:"max_search_size" yaml:"max_search_size"`
	ValidateProvenance bool `toml:"validate_provenance" yaml:"validate_provenance"`
}

// Tags are the reconstructed name tags per category.
type Tags struct {
	Electron      string `toml:"electron" yaml:"electron"`
	Muon          string `toml:"muon" yaml:"muon"`
	Jet           string `toml:"jet" yaml:"jet"`
	BJet          string `toml:"bjet" yaml:"bjet"`
	MissingEnergy string `toml:"missing_energy" yaml:"missing_energy"`
}

// Run configures batch execution.
type Run struct {
	Workers    int  `toml:"workers" yaml:"workers"`
	SkipFailed bool `toml:"skip_failed" yaml:"skip_failed"`
}

// Logging contains configuration for log output.
type Logging struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// Config encapsulates all configuration values for hepmatch.
//
// Sections:
//   - Views: input and output view names
//   - Matching: cost function, b-tagging, output mode and limits
//   - Tags: reconstructed name tags
//   - Run: worker count and failure policy
//   - Logging: level and encoder
type Config struct {
	Views    Views    `toml:"views" yaml:"views"`
	Matching Matching `toml:"matching" yaml:"matching"`
	Tags     Tags     `toml:"tags" yaml:"tags"`
	Run      Run      `toml:"run" yaml:"run"`
	Logging  Logging  `toml:"logging" yaml:"logging"`
}

// Load parses and validates the file at path over Default(). The format is
// chosen by extension. An empty path or a missing file yields the defaults;
// exists reports whether a file was read.
func Load(path string) (cfg *Config, exists bool, err error) {
	c := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, false, fmt.Errorf("read config: %w", err)
		default:
			if err := decode(&c, path, data); err != nil {
				return nil, false, err
			}
			exists = true
		}
	}

	c.normalize()
	if err := c.Validate(); err != nil {
		return nil, false, err
	}

	return &c, exists, nil
}

func decode(c *Config, path string, data []byte) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(c); err != nil {
			return fmt.Errorf("parse config: %w", err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("parse config: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	return nil
}

func (c *Config) normalize() {
	for _, s := range []*string{
		&c.Views.Generated, &c.Views.Reconstructed, &c.Views.Output,
		&c.Matching.CostFunction,
		&c.Tags.Electron, &c.Tags.Muon, &c.Tags.Jet, &c.Tags.BJet, &c.Tags.MissingEnergy,
		&c.Logging.Level, &c.Logging.Format,
	} {
		*s = strings.TrimSpace(*s)
	}
	c.Logging.Level = strings.ToLower(c.Logging.Level)
	c.Logging.Format = strings.ToLower(c.Logging.Format)
}

// Pipeline maps the file configuration onto pipeline.Config.
func (c *Config) Pipeline() pipeline.Config {
	return pipeline.Config{
		GenView:              c.Views.Generated,
		RecoView:             c.Views.Reconstructed,
		OutputView:           c.Views.Output,
		DiscardBTagging:      c.Matching.DiscardBTagging,
		DiscardBTaggingTruth: c.Matching.DiscardBTaggingTruth,
		DiscardBTaggingReco:  c.Matching.DiscardBTaggingReco,
		CopyOnlyFinal:        c.Matching.CopyOnlyFinal,
		CostFunction:         c.Matching.CostFunction,
		KeepUnmatched:        c.Matching.KeepUnmatched,
		MaxSearchSize:        c.Matching.MaxSearchSize,
		ValidateProvenance:   c.Matching.ValidateProvenance,
		Tags: classify.Tags{
			Electron:      c.Tags.Electron,
			Muon:          c.Tags.Muon,
			Jet:           c.Tags.Jet,
			BJet:          c.Tags.BJet,
			MissingEnergy: c.Tags.MissingEnergy,
		},
	}
}

// RunOptions maps the run section onto pipeline.RunOptions.
func (c *Config) RunOptions() pipeline.RunOptions {
	return pipeline.RunOptions{Workers: c.Run.Workers, SkipFailed: c.Run.SkipFailed}
}

// CreateSample writes a sample configuration file to path.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}

	return nil
}
