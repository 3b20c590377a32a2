package pipeline

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hepmatch/classify"
	"github.com/katalvlaran/hepmatch/cost"
)

// Default view names.
const (
	DefaultGenView    = "Generated"
	DefaultRecoView   = "Reconstructed"
	DefaultOutputView = "Matched"
)

// Config is the immutable setup of a Matcher.
type Config struct {
	// GenView, RecoView and OutputView are view names inside the event.
	GenView    string
	RecoView   string
	OutputView string

	// DiscardBTagging folds b-quarks into light quarks and b-jets into jets.
	DiscardBTagging bool

	// DiscardBTaggingTruth and DiscardBTaggingReco override DiscardBTagging
	// for one side when non-nil.
	DiscardBTaggingTruth *bool
	DiscardBTaggingReco  *bool

	// CopyOnlyFinal selects copy mode (true) or reference mode (false).
	CopyOnlyFinal bool

	// CostFunction is a name resolved against the cost registry.
	CostFunction string

	// KeepUnmatched also writes leftover candidates to the output view.
	KeepUnmatched bool

	// MaxSearchSize refuses buckets larger than this; 0 means unlimited.
	MaxSearchSize int

	// ValidateProvenance checks both input views for cycles before matching.
	ValidateProvenance bool

	// Tags are the reconstructed name tags per category.
	Tags classify.Tags
}

// DefaultConfig returns the default view names, copy mode and the deltaR cost.
func DefaultConfig() Config {
	return Config{
		GenView:       DefaultGenView,
		RecoView:      DefaultRecoView,
		OutputView:    DefaultOutputView,
		CopyOnlyFinal: true,
		CostFunction:  cost.DefaultName,
		Tags:          classify.DefaultTags(),
	}
}

// classifyOptions resolves the per-side b-tagging redirection.
func (c Config) classifyOptions() classify.Options {
	o := classify.NewOptions(
		classify.WithDiscardBTagging(c.DiscardBTagging),
		classify.WithTags(c.Tags),
	)
	if c.DiscardBTaggingTruth != nil {
		o.DiscardBTaggingTruth = *c.DiscardBTaggingTruth
	}
	if c.DiscardBTaggingReco != nil {
		o.DiscardBTaggingReco = *c.DiscardBTaggingReco
	}

	return o
}

// Validate checks names and limits; cost function names are checked by New
// against the registry.
func (c Config) Validate() error {
	var errs []error
	if c.GenView == "" {
		errs = append(errs, errors.New("generator view name is empty"))
	}
	if c.RecoView == "" {
		errs = append(errs, errors.New("reconstructed view name is empty"))
	}
	if c.OutputView == "" {
		errs = append(errs, errors.New("output view name is empty"))
	}
	if c.OutputView != "" && (c.OutputView == c.GenView || c.OutputView == c.RecoView) {
		errs = append(errs, fmt.Errorf("output view %q collides with an input view", c.OutputView))
	}
	if c.MaxSearchSize < 0 {
		errs = append(errs, fmt.Errorf("max search size %d is negative", c.MaxSearchSize))
	}
	if err := c.classifyOptions().Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return nil
	}

	return newError(KindConfiguration, "validate", errors.Join(errs...))
}
