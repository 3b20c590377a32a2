package assign

import "errors"

// Sentinel errors for the matcher.
var (
	// ErrNilCandidate indicates a nil entry in one of the input buckets.
	ErrNilCandidate = errors.New("assign: nil candidate")

	// ErrSearchTooLarge indicates a search side larger than Options.MaxSearchSize.
	ErrSearchTooLarge = errors.New("assign: search side exceeds limit")
)

// SearchSide tells which bucket was permuted.
type SearchSide int

const (
	// SearchReco means len(reco) >= len(truth); reco was permuted.
	SearchReco SearchSide = iota
	// SearchTruth means len(truth) > len(reco); truth was permuted.
	SearchTruth
)

// String returns "reco" or "truth".
func (s SearchSide) String() string {
	if s == SearchTruth {
		return "truth"
	}

	return "reco"
}

// Pair is one matched (truth, reco) couple, as positions in the input buckets.
type Pair struct {
	Truth int
	Reco  int
	Cost  float64
}

// Result is the outcome of Match.
type Result struct {
	// Pairs holds min(n, m) pairs ordered by the position of the fixed side.
	Pairs []Pair

	// Cost is the minimized total over Pairs.
	Cost float64

	// Permutations is the number of permutations evaluated (diagnostic only).
	Permutations int

	// Search is the side that was permuted.
	Search SearchSide

	// UnmatchedTruth and UnmatchedReco list leftover positions, ascending.
	UnmatchedTruth []int
	UnmatchedReco  []int
}

// Options configures Match.
type Options struct {
	// MaxSearchSize rejects inputs whose search side is larger; 0 disables the limit.
	MaxSearchSize int
}

// Option is a functional option for Match.
type Option func(*Options)

// WithMaxSearchSize sets Options.MaxSearchSize. A negative limit panics.
func WithMaxSearchSize(limit int) Option {
	if limit < 0 {
		panic("assign: WithMaxSearchSize requires limit >= 0")
	}

	return func(o *Options) { o.MaxSearchSize = limit }
}

// DefaultOptions returns the unlimited configuration.
func DefaultOptions() Options {
	return Options{MaxSearchSize: 0}
}
