// Package optim searches parameter grids, used to tune bot steering against
// a fixed opponent.
package optim

import (
	"context"
	"errors"
	"math"
	"sort"
)

var ErrEmptyGrid = errors.New("optim: empty parameter grid")

// Evaluator scores one parameter combination. Higher is better.
type Evaluator func(ctx context.Context, params map[string]float64) (float64, error)

type Trial struct {
	Params map[string]float64
	Score  float64
}

type GridSearch struct {
	paramNames []string
	ranges     [][]float64
}

func NewGridSearch(params []string, ranges [][]float64) *GridSearch {
	return &GridSearch{paramNames: params, ranges: ranges}
}

// Search evaluates every combination and returns the trials best first. An
// evaluator error stops the search.
func (g *GridSearch) Search(ctx context.Context, eval Evaluator) ([]Trial, error) {
	if len(g.paramNames) == 0 || len(g.paramNames) != len(g.ranges) {
		return nil, ErrEmptyGrid
	}
	for _, r := range g.ranges {
		if len(r) == 0 {
			return nil, ErrEmptyGrid
		}
	}

	trials := make([]Trial, 0, g.size())
	if err := g.searchRecursive(ctx, 0, make(map[string]float64), eval, &trials); err != nil {
		return trials, err
	}

	sort.SliceStable(trials, func(i, j int) bool {
		return trials[i].Score > trials[j].Score
	})
	return trials, nil
}

func (g *GridSearch) size() int {
	n := 1
	for _, r := range g.ranges {
		n *= len(r)
	}
	return n
}

func (g *GridSearch) searchRecursive(
	ctx context.Context,
	depth int,
	current map[string]float64,
	eval Evaluator,
	trials *[]Trial,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if depth == len(g.paramNames) {
		score, err := eval(ctx, current)
		if err != nil {
			return err
		}
		if math.IsNaN(score) {
			score = math.Inf(-1)
		}
		*trials = append(*trials, Trial{Params: current, Score: score})
		return nil
	}

	paramName := g.paramNames[depth]
	for _, val := range g.ranges[depth] {
		newParams := make(map[string]float64, len(current)+1)
		for k, v := range current {
			newParams[k] = v
		}
		newParams[paramName] = val

		if err := g.searchRecursive(ctx, depth+1, newParams, eval, trials); err != nil {
			return err
		}
	}
	return nil
}
