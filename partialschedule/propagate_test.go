package partialschedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvonhall/pcsched/internal/fixtures"
	"github.com/arvonhall/pcsched/partialschedule"
)

// TestIsValid_RejectsOutOfOrderDependency encodes spec scenario C: scheduling
// a successor before its predecessor must be rejected.
func TestIsValid_RejectsOutOfOrderDependency(t *testing.T) {
	g, ids := fixtures.DiamondOfDiamonds()
	s := partialschedule.New(g, 2)

	s.Add(g.Source())
	s.Add(ids["k"])

	assert.False(t, s.IsValid())
}

// TestIsValid_AcceptsTopologicalPrefix checks the positive counterpart: any
// prefix of a full valid order is itself valid.
func TestIsValid_AcceptsTopologicalPrefix(t *testing.T) {
	g, ids := fixtures.DiamondOfDiamonds()
	full := fixtures.DiamondOfDiamondsFullOrder(g, ids)

	s := partialschedule.New(g, 2)
	for _, id := range full[:5] {
		s.Add(id)
		assert.True(t, s.IsValid())
	}
}

// TestAddPop_RoundTrip verifies Pop exactly undoes Add.
func TestAddPop_RoundTrip(t *testing.T) {
	g, ids := fixtures.DiamondOfDiamonds()
	s := partialschedule.New(g, 2)

	s.Add(g.Source())
	s.Add(ids["a"])
	require.Equal(t, 2, s.Size())
	require.True(t, s.Contains(ids["a"]))

	s.Pop()
	assert.Equal(t, 1, s.Size())
	assert.False(t, s.Contains(ids["a"]))
	assert.True(t, s.Contains(g.Source()))
}

// TestBuild_PartialPrefix encodes spec scenario D: the prefix
// [source,g,a,c,d] on m=2 machines against horizon T=48.
func TestBuild_PartialPrefix(t *testing.T) {
	g, ids := fixtures.DiamondOfDiamonds()
	s := partialschedule.New(g, 2)

	s.Add(g.Source())
	s.Add(ids["g"])
	s.Add(ids["a"])
	s.Add(ids["c"])
	s.Add(ids["d"])

	require.NoError(t, s.Build(48))

	assert.Equal(t, 3, s.MinEnd(ids["b"]))
	assert.Equal(t, 13, s.MinEnd(ids["e"]))
	assert.Equal(t, 49, s.MinEnd(ids["k"]))

	assert.Equal(t, 0, s.MaxStart(ids["g"]))
	assert.Equal(t, 0, s.MaxStart(ids["a"]))
	assert.Equal(t, 4, s.MaxStart(ids["d"]))
	assert.Equal(t, 7, s.MaxStart(ids["e"]))
	assert.Equal(t, 19, s.MaxStart(ids["h"]))
	assert.Equal(t, 48, s.MaxStart(g.Sink()))
}

// TestBuild_CompleteSchedule encodes spec scenario E: the full order on
// m=2 machines, which must realize the critical-path length 48 exactly.
func TestBuild_CompleteSchedule(t *testing.T) {
	g, ids := fixtures.DiamondOfDiamonds()
	full := fixtures.DiamondOfDiamondsFullOrder(g, ids)

	s := partialschedule.New(g, 2)
	for _, id := range full {
		s.Add(id)
	}
	require.True(t, s.IsValid())
	require.True(t, s.IsComplete())

	require.NoError(t, s.Build(0))

	assert.Equal(t, 48, s.Length())
	assert.Equal(t, 48, s.MinEnd(g.Sink()))
	assert.Equal(t, 10, s.MinEnd(ids["g"]))
	assert.Equal(t, 26, s.MinEnd(ids["h"]))
	assert.Equal(t, 27, s.MinEnd(ids["i"]))
}

// TestBuild_DefaultsHorizonToCriticalPath checks totalTime==0 falls back to
// level(source) per spec §4.3.
func TestBuild_DefaultsHorizonToCriticalPath(t *testing.T) {
	g, ids := fixtures.DiamondOfDiamonds()
	full := fixtures.DiamondOfDiamondsFullOrder(g, ids)

	s := partialschedule.New(g, 2)
	for _, id := range full {
		s.Add(id)
	}
	require.NoError(t, s.Build(0))

	assert.Equal(t, g.Level(g.Source()), s.MaxStart(g.Sink()))
}

func TestNew_PanicsOnInvalidArgs(t *testing.T) {
	g, _ := fixtures.DiamondOfDiamonds()

	assert.Panics(t, func() { partialschedule.New(nil, 2) })
	assert.Panics(t, func() { partialschedule.New(g, 0) })
}

// TestAdd_PanicsWhenFull checks the precondition on Add once the schedule
// already holds every task in the graph.
func TestAdd_PanicsWhenFull(t *testing.T) {
	g, ids := fixtures.FiveThenFiveTwos()
	s := partialschedule.New(g, 2)

	s.Add(g.Source())
	for _, id := range ids {
		s.Add(id)
	}
	s.Add(g.Sink())
	require.True(t, s.IsComplete())

	assert.Panics(t, func() { s.Add(g.Source()) })
}
