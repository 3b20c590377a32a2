package pipeline

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/hepmatch/assign"
	"github.com/katalvlaran/hepmatch/classify"
	"github.com/katalvlaran/hepmatch/cost"
	"github.com/katalvlaran/hepmatch/event"
	"github.com/katalvlaran/hepmatch/provenance"
)

// Matcher is the configured matching stage. It holds no per-event state.
type Matcher struct {
	cfg        Config
	classify   classify.Options
	cost       cost.Func
	builder    *provenance.Builder
	assignOpts []assign.Option
	log        *zap.Logger
}

// Report summarizes one category of one event.
type Report struct {
	Category classify.Category
	// Truth and Reco are the bucket sizes; for missing energy, the number of
	// invisible contributors and of reco MET objects.
	Truth, Reco  int
	Pairs        int
	Permutations int
	Cost         float64
	Links        []event.Edge
}

// Outcome is the result of processing one event.
type Outcome struct {
	Event   *event.Event
	View    *event.View
	Reports []Report
}

// Report returns the report of cat, if present.
func (o *Outcome) Report(cat classify.Category) (Report, bool) {
	for _, r := range o.Reports {
		if r.Category == cat {
			return r, true
		}
	}

	return Report{}, false
}

// New validates cfg, resolves its cost function in reg (nil means
// cost.NewRegistry()) and returns a ready Matcher. A nil logger disables logs.
//
// Errors: *Error with KindConfiguration.
func New(cfg Config, reg *cost.Registry, log *zap.Logger) (*Matcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if reg == nil {
		reg = cost.NewRegistry()
	}
	name := cfg.CostFunction
	if name == "" {
		name = cost.DefaultName
	}
	f, err := reg.Lookup(name)
	if err != nil {
		return nil, newError(KindConfiguration, "new", err)
	}
	if log == nil {
		log = zap.NewNop()
	}

	mode := provenance.CopyMode
	if !cfg.CopyOnlyFinal {
		mode = provenance.ReferenceMode
	}
	m := &Matcher{
		cfg:      cfg,
		classify: cfg.classifyOptions(),
		cost:     f,
		builder: provenance.NewBuilder(
			provenance.WithMode(mode),
			provenance.WithKeepUnmatched(cfg.KeepUnmatched),
		),
		log: log.Named("matching"),
	}
	if cfg.MaxSearchSize > 0 {
		m.assignOpts = append(m.assignOpts, assign.WithMaxSearchSize(cfg.MaxSearchSize))
	}
	m.log.Debug("matcher configured",
		zap.String("gen_view", cfg.GenView),
		zap.String("reco_view", cfg.RecoView),
		zap.String("output_view", cfg.OutputView),
		zap.String("cost", name),
		zap.Stringer("mode", mode),
		zap.Bool("discard_btag_truth", m.classify.DiscardBTaggingTruth),
		zap.Bool("discard_btag_reco", m.classify.DiscardBTaggingReco),
	)

	return m, nil
}

// Config returns a copy of the configuration.
func (m *Matcher) Config() Config { return m.cfg }

// Process matches one event and inserts the output view into it.
//
// unit must be an *event.Event; anything else is logged and reported as a
// KindTypeMismatch error, which Recoverable accepts. On any error the event
// is left without an output view.
//
// Steps:
//  1. locate the generator and reconstructed views (absent = empty side);
//  2. optionally check both forests for cycles;
//  3. classify both sides;
//  4. merge missing energy (always one pair);
//  5. match and build muon, electron, jet and b-jet, logging each category.
func (m *Matcher) Process(unit any) (*Outcome, error) {
	ev, ok := unit.(*event.Event)
	if !ok || ev == nil {
		m.log.Error("analysed unit is not an event", zap.String("type", fmt.Sprintf("%T", unit)))
		return nil, newError(KindTypeMismatch, "process", fmt.Errorf("unit of type %T", unit))
	}
	log := m.log.With(zap.Stringer("event", ev.ID))

	gen := ev.View(m.cfg.GenView)
	reco := ev.View(m.cfg.RecoView)
	if m.cfg.ValidateProvenance {
		for _, v := range []*event.View{gen, reco} {
			if v == nil {
				continue
			}
			if err := v.CheckAcyclic(); err != nil {
				log.Error("malformed provenance", zap.Error(err))
				return nil, newError(KindTypeMismatch, "validate", err)
			}
		}
	}

	truth := classify.Truth(gen, m.classify)
	recoRes := classify.Reco(reco, m.classify)

	out := ev.NewView(m.cfg.OutputView)
	outcome, err := m.build(ev, out, truth, recoRes, log)
	if err != nil {
		ev.RemoveView(out)
		return nil, err
	}

	return outcome, nil
}

func (m *Matcher) build(ev *event.Event, out *event.View, truth, reco *classify.Result, log *zap.Logger) (*Outcome, error) {
	outcome := &Outcome{Event: ev, View: out}

	edge, err := provenance.MergeMissingEnergy(out, truth.MissingEnergy, len(truth.MissingEnergyHandles),
		ev.Candidate(reco.RecoMET), m.cfg.Tags.MissingEnergy)
	if err != nil {
		return nil, newError(KindInternal, "merge met", err)
	}
	met := Report{
		Category: classify.MissingEnergy,
		Truth:    len(truth.MissingEnergyHandles),
		Reco:     len(reco.MissingEnergyHandles),
		Pairs:    1,
		Links:    []event.Edge{edge},
	}
	outcome.Reports = append(outcome.Reports, met)
	logReport(log, met)

	for _, cat := range classify.Matched {
		tb, rb := truth.Bucket(cat), reco.Bucket(cat)
		op := "match " + cat.String()

		res, err := assign.Match(tb.Candidates(ev), rb.Candidates(ev), m.cost, m.assignOpts...)
		if err != nil {
			return nil, newError(matchErrorKind(err), op, err)
		}
		built, err := m.builder.Build(out, tb, rb, res)
		if err != nil {
			return nil, newError(KindInternal, op, err)
		}
		r := Report{
			Category:     cat,
			Truth:        tb.Len(),
			Reco:         rb.Len(),
			Pairs:        len(res.Pairs),
			Permutations: res.Permutations,
			Cost:         res.Cost,
			Links:        built.Links,
		}
		outcome.Reports = append(outcome.Reports, r)
		logReport(log, r)
	}

	return outcome, nil
}

func matchErrorKind(err error) Kind {
	switch {
	case errors.Is(err, assign.ErrSearchTooLarge):
		return KindSearchLimit
	case errors.Is(err, cost.ErrMissingAttribute):
		return KindMissingAttribute
	default:
		return KindInternal
	}
}

func logReport(log *zap.Logger, r Report) {
	log.Info("matched category",
		zap.String("category", r.Category.String()),
		zap.Int("truth", r.Truth),
		zap.Int("reco", r.Reco),
		zap.Int("pairs", r.Pairs),
		zap.Int("permutations", r.Permutations),
		zap.Float64("cost", r.Cost),
	)
}
