package rcp_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvonhall/pcsched/internal/rcp"
)

// testRCP reproduces test_parser's "test.rcp" fixture: 5 user tasks,
// weights [3,8,10,2,10], task 2 depending on task 1, task 3 depending on
// task 2, and tasks 3/4/5 being the three sink predecessors.
const testRCP = `5 0
3 0
8 1 1
10 1 2
2 0
10 0
`

func TestParse_MatchesPattersonFixture(t *testing.T) {
	g, err := rcp.Parse(strings.NewReader(testRCP))
	require.NoError(t, err)
	assert.Equal(t, 7, g.Size()) // source + 5 user tasks + sink

	assert.Equal(t, 3, g.Weight(1))
	assert.Equal(t, 8, g.Weight(2))
	assert.Equal(t, 10, g.Weight(3))
	assert.Equal(t, 2, g.Weight(4))
	assert.Equal(t, 10, g.Weight(5))

	assert.Equal(t, []int{2}, g.Preds(3))
	assert.Equal(t, 3, g.NPreds(g.Sink()))
	assert.ElementsMatch(t, []int{3, 4, 5}, g.Preds(g.Sink()))
}

func TestParse_WhitespaceInsensitive(t *testing.T) {
	spread := "5\n0\n\n3   0\n8 0\n10\n1\n2\n2 0\n10 0"
	g, err := rcp.Parse(strings.NewReader(spread))
	require.NoError(t, err)
	assert.Equal(t, 7, g.Size())
}

func TestParse_RejectsMissingHeader(t *testing.T) {
	_, err := rcp.Parse(strings.NewReader(""))
	assert.ErrorIs(t, err, rcp.ErrMalformed)
}

func TestParse_RejectsForwardReference(t *testing.T) {
	src := "2 0\n3 1 2\n1 0\n"
	_, err := rcp.Parse(strings.NewReader(src))
	assert.ErrorIs(t, err, rcp.ErrMalformed)
}

func TestParse_RejectsTruncatedTaskList(t *testing.T) {
	src := "3 0\n3 0\n2 0\n"
	_, err := rcp.Parse(strings.NewReader(src))
	assert.ErrorIs(t, err, rcp.ErrMalformed)
}

func TestParse_ZeroTasksBuildsSourceSinkOnly(t *testing.T) {
	g, err := rcp.Parse(strings.NewReader("0 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, g.Size())
}
