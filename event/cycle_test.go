package event_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hepmatch/event"
)

func TestCheckAcyclic_Forest(t *testing.T) {
	ev := event.NewEvent()
	gen := ev.NewView("Generated")
	top, _ := gen.Create()
	w, _ := gen.Create()
	b, _ := gen.Create()
	mu, _ := gen.Create()
	nu, _ := gen.Create()
	require.NoError(t, gen.Link(w, top))
	require.NoError(t, gen.Link(b, top))
	require.NoError(t, gen.Link(mu, w))
	require.NoError(t, gen.Link(nu, w))

	require.NoError(t, gen.CheckAcyclic())
	require.False(t, gen.IsFinal(top))
	require.True(t, gen.IsFinal(mu))
}

func TestCheckAcyclic_Cycle(t *testing.T) {
	ev := event.NewEvent()
	v := ev.NewView("broken")
	a, _ := v.Create()
	b, _ := v.Create()
	c, _ := v.Create()
	require.NoError(t, v.Link(b, a))
	require.NoError(t, v.Link(c, b))
	require.NoError(t, v.Link(a, c))

	err := v.CheckAcyclic()
	require.ErrorIs(t, err, event.ErrCycleDetected)
	require.Contains(t, err.Error(), "broken")
}
