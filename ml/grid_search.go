package ml

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// ForestGrid is the hyperparameter search space for the forest variant.
type ForestGrid struct {
	Trees     []int
	MaxDepths []int
	MinSplits []int
	MinLeafs  []int
}

func DefaultForestGrid() ForestGrid {
	return ForestGrid{
		Trees:     []int{50, 100},
		MaxDepths: []int{3, 5, 8},
		MinSplits: []int{2, 10},
		MinLeafs:  []int{1, 5},
	}
}

// GridSearchForest scores every configuration of the grid with k-fold
// cross-validation over contiguous time slices and returns the one with the
// best mean fold accuracy, plus that score. Rows stay in date order; only
// the fold boundaries move.
func GridSearchForest(features [][]float64, labels []int, grid ForestGrid, folds int) (ForestConfig, float64, error) {
	if len(features) < folds {
		return ForestConfig{}, 0, fmt.Errorf("ml: %d rows is not enough for %d-fold cross-validation", len(features), folds)
	}

	bestScore := -1.0
	var bestConfig ForestConfig

	cvFolds := contiguousFolds(len(features), folds)
	for _, trees := range grid.Trees {
		for _, depth := range grid.MaxDepths {
			for _, minSplit := range grid.MinSplits {
				for _, minLeaf := range grid.MinLeafs {
					cfg := ForestConfig{Trees: trees, MaxDepth: depth, MinSplit: minSplit, MinLeaf: minLeaf, Seed: 1}

					scores := make([]float64, 0, len(cvFolds))
					for _, cvFold := range cvFolds {
						score, err := scoreFold(features, labels, cvFold, cfg)
						if err != nil {
							return ForestConfig{}, 0, err
						}
						scores = append(scores, score)
					}

					mean := stat.Mean(scores, nil)
					if mean > bestScore {
						bestScore = mean
						bestConfig = cfg
					}
				}
			}
		}
	}

	return bestConfig, bestScore, nil
}

func scoreFold(features [][]float64, labels []int, cvFold fold, cfg ForestConfig) (float64, error) {
	trainX := make([][]float64, len(cvFold.trainIndices))
	trainY := make([]int, len(cvFold.trainIndices))
	for j, i := range cvFold.trainIndices {
		trainX[j] = features[i]
		trainY[j] = labels[i]
	}

	forest := NewForest(cfg)
	if err := forest.Fit(trainX, trainY); err != nil {
		return 0, err
	}

	predicted := make([]int, len(cvFold.testIndices))
	actual := make([]int, len(cvFold.testIndices))
	for j, i := range cvFold.testIndices {
		predicted[j] = Classify(forest, features[i])
		actual[j] = labels[i]
	}
	return Accuracy(predicted, actual), nil
}
