package rcp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/arvonhall/pcsched/taskgraph"
)

// ErrMalformed is returned when the input does not match the header/body
// shape this parser understands: a "n_tasks n_resources" header followed by
// n_tasks "duration npred pred..." lines.
var ErrMalformed = errors.New("rcp: malformed input")

// Parse reads a Patterson activity network from r and returns the built
// taskgraph.Graph. Resource capacities are out of scope for this module
// (identical-machine scheduling has no resource pools); the resource count
// in the header is read and otherwise ignored.
//
// Tasks in the file are 1-indexed and must list predecessors by the id they
// were declared under earlier in the file — the format is expected to
// already be in topological order, exactly as taskgraph.Vertex requires.
func Parse(r io.Reader) (*taskgraph.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	next := func() (int, bool) {
		if !sc.Scan() {
			return 0, false
		}
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return 0, false
		}

		return v, true
	}

	nTasks, ok := next()
	if !ok || nTasks < 0 {
		return nil, fmt.Errorf("%w: missing or invalid task count", ErrMalformed)
	}
	if _, ok := next(); !ok {
		return nil, fmt.Errorf("%w: missing resource count", ErrMalformed)
	}

	g := taskgraph.Create()
	ids := make([]int, nTasks+1) // ids[rcpIndex] -> graph id; index 0 unused

	for i := 1; i <= nTasks; i++ {
		duration, ok := next()
		if !ok {
			return nil, fmt.Errorf("%w: task %d missing duration", ErrMalformed, i)
		}
		nPred, ok := next()
		if !ok || nPred < 0 {
			return nil, fmt.Errorf("%w: task %d missing or invalid predecessor count", ErrMalformed, i)
		}

		deps := make([]int, 0, nPred)
		for j := 0; j < nPred; j++ {
			p, ok := next()
			if !ok {
				return nil, fmt.Errorf("%w: task %d missing predecessor %d", ErrMalformed, i, j)
			}
			if p < 1 || p >= i {
				return nil, fmt.Errorf("%w: task %d predecessor %d not declared earlier", ErrMalformed, i, p)
			}
			deps = append(deps, ids[p])
		}

		id, err := g.Vertex(duration, deps)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}
	if err := g.Build(); err != nil {
		return nil, err
	}

	return g, nil
}
