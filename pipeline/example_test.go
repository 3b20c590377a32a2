package pipeline_test

import (
	"fmt"

	"github.com/katalvlaran/hepmatch/classify"
	"github.com/katalvlaran/hepmatch/cost"
	"github.com/katalvlaran/hepmatch/event"
	"github.com/katalvlaran/hepmatch/pipeline"
)

func ExampleMatcher_Process() {
	ev := event.NewEvent()
	g := ev.NewView(pipeline.DefaultGenView)
	for _, v := range []float64{50, 30, 10} {
		_, c := g.Create()
		c.SetPDG(13)
		c.P4 = event.PtEtaPhiM(v, 0, 0, 0)
	}
	r := ev.NewView(pipeline.DefaultRecoView)
	for _, v := range []float64{55, 32, 9, 5} {
		_, c := r.Create()
		c.Name = classify.DefaultMuonTag
		c.P4 = event.PtEtaPhiM(v, 0, 0, 0)
	}

	cfg := pipeline.DefaultConfig()
	cfg.CostFunction = cost.NameDeltaPt
	m, err := pipeline.New(cfg, nil, nil)
	if err != nil {
		panic(err)
	}
	out, err := m.Process(ev)
	if err != nil {
		panic(err)
	}
	for _, rep := range out.Reports {
		fmt.Printf("%-8s pairs=%d cost=%.1f\n", rep.Category, rep.Pairs, rep.Cost)
	}
	// Output:
	// met      pairs=1 cost=0.0
	// muon     pairs=3 cost=8.0
	// electron pairs=0 cost=0.0
	// jet      pairs=0 cost=0.0
	// bjet     pairs=0 cost=0.0
}
