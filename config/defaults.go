package config

import (
	"github.com/katalvlaran/hepmatch/classify"
	"github.com/katalvlaran/hepmatch/cost"
	"github.com/katalvlaran/hepmatch/pipeline"
)

const (
	defaultLogLevel  = "info"
	defaultLogFormat = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	tags := classify.DefaultTags()

	return Config{
		Views: Views{
			Generated:     pipeline.DefaultGenView,
			Reconstructed: pipeline.DefaultRecoView,
			Output:        pipeline.DefaultOutputView,
		},
		Matching: Matching{
			CostFunction:  cost.DefaultName,
			CopyOnlyFinal: true,
		},
		Tags: Tags{
			Electron:      tags.Electron,
			Muon:          tags.Muon,
			Jet:           tags.Jet,
			BJet:          tags.BJet,
			MissingEnergy: tags.MissingEnergy,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
