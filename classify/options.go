package classify

import "fmt"

// Default reco name tags, as produced by the default selection chain.
const (
	DefaultElectronTag      = "TightElectron"
	DefaultMuonTag          = "TightMuon"
	DefaultJetTag           = "SelectedJet"
	DefaultBJetTag          = "SelectedBJet"
	DefaultMissingEnergyTag = "Neutrino"
)

// Tags holds the reconstructed name tag of every category.
type Tags struct {
	Electron      string
	Muon          string
	Jet           string
	BJet          string
	MissingEnergy string
}

// DefaultTags returns the default reco tags.
func DefaultTags() Tags {
	return Tags{
		Electron:      DefaultElectronTag,
		Muon:          DefaultMuonTag,
		Jet:           DefaultJetTag,
		BJet:          DefaultBJetTag,
		MissingEnergy: DefaultMissingEnergyTag,
	}
}

// Options configures both classifiers.
type Options struct {
	// DiscardBTaggingTruth folds bottom quarks into the Jet bucket.
	DiscardBTaggingTruth bool

	// DiscardBTaggingReco folds b-tagged jets into the Jet bucket.
	DiscardBTaggingReco bool

	// Tags are the reco name tags.
	Tags Tags
}

// Option is a functional option for Options.
type Option func(*Options)

// WithDiscardBTagging sets the redirection on both sides.
func WithDiscardBTagging(discard bool) Option {
	return func(o *Options) {
		o.DiscardBTaggingTruth = discard
		o.DiscardBTaggingReco = discard
	}
}

// WithDiscardBTaggingTruth sets only the truth-side redirection.
func WithDiscardBTaggingTruth(discard bool) Option {
	return func(o *Options) { o.DiscardBTaggingTruth = discard }
}

// WithDiscardBTaggingReco sets only the reco-side redirection.
func WithDiscardBTaggingReco(discard bool) Option {
	return func(o *Options) { o.DiscardBTaggingReco = discard }
}

// WithTags replaces the reco name tags.
func WithTags(t Tags) Option {
	return func(o *Options) { o.Tags = t }
}

// DefaultOptions returns b-tagging kept on both sides and DefaultTags().
func DefaultOptions() Options {
	return Options{Tags: DefaultTags()}
}

// NewOptions applies opts over DefaultOptions.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Validate checks that every tag is non-empty and that no two categories
// share a tag (an ambiguous tag would put one candidate in two buckets).
func (o Options) Validate() error {
	named := []struct {
		cat Category
		tag string
	}{
		{Electron, o.Tags.Electron},
		{Muon, o.Tags.Muon},
		{Jet, o.Tags.Jet},
		{BJet, o.Tags.BJet},
		{MissingEnergy, o.Tags.MissingEnergy},
	}
	seen := make(map[string]Category, len(named))
	for _, n := range named {
		if n.tag == "" {
			return fmt.Errorf("%w: empty tag for %s", ErrBadTag, n.cat)
		}
		if prev, dup := seen[n.tag]; dup {
			return fmt.Errorf("%w: %q used by %s and %s", ErrBadTag, n.tag, prev, n.cat)
		}
		seen[n.tag] = n.cat
	}

	return nil
}
