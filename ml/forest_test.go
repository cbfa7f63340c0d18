package ml

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// separableSet builds rows where the first feature alone decides the label.
func separableSet(n int) ([][]float64, []int) {
	features := make([][]float64, n)
	labels := make([]int, n)
	for i := 0; i < n; i++ {
		x := float64(i % 10)
		features[i] = []float64{x, float64(i % 3), float64(i % 7)}
		if x > 4.5 {
			labels[i] = 1
		}
	}
	return features, labels
}

func TestForestLearnsSeparableSet(t *testing.T) {
	features, labels := separableSet(120)

	forest := NewForest(ForestConfig{Trees: 30, MaxDepth: 4, MinSplit: 2, MinLeaf: 1, Seed: 1})
	err := forest.Fit(features, labels)
	assert.Nil(t, err)

	predicted := make([]int, len(features))
	for i, row := range features {
		probability := forest.Predict(row)
		assert.GreaterOrEqual(t, probability, 0.0)
		assert.LessOrEqual(t, probability, 1.0)
		predicted[i] = Classify(forest, row)
	}
	assert.Greater(t, Accuracy(predicted, labels), 0.9)
}

func TestForestFitValidation(t *testing.T) {
	forest := NewForest(DefaultForestConfig())
	assert.NotNil(t, forest.Fit(nil, nil))
	assert.NotNil(t, forest.Fit([][]float64{{1}}, []int{1, 0}))
}

func TestGridSearchForestPicksFromGrid(t *testing.T) {
	features, labels := separableSet(100)
	grid := ForestGrid{
		Trees:     []int{10, 20},
		MaxDepths: []int{3, 5},
		MinSplits: []int{2},
		MinLeafs:  []int{1},
	}

	cfg, score, err := GridSearchForest(features, labels, grid, 5)
	assert.Nil(t, err)
	assert.Contains(t, grid.Trees, cfg.Trees)
	assert.Contains(t, grid.MaxDepths, cfg.MaxDepth)
	assert.Contains(t, grid.MinSplits, cfg.MinSplit)
	assert.Contains(t, grid.MinLeafs, cfg.MinLeaf)
	assert.GreaterOrEqual(t, score, 0.0)
	assert.LessOrEqual(t, score, 1.0)
}

func TestGridSearchForestNotEnoughRows(t *testing.T) {
	features, labels := separableSet(3)
	_, _, err := GridSearchForest(features, labels, DefaultForestGrid(), 5)
	assert.NotNil(t, err)
}
