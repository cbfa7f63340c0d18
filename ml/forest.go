package ml

import (
	"fmt"
	"math"
	"math/rand"
)

// ForestConfig are the ensemble hyperparameters the grid search tunes.
type ForestConfig struct {
	Trees    int
	MaxDepth int
	MinSplit int
	MinLeaf  int
	Seed     int64
}

func DefaultForestConfig() ForestConfig {
	return ForestConfig{
		Trees:    100,
		MaxDepth: 5,
		MinSplit: 2,
		MinLeaf:  1,
		Seed:     1,
	}
}

// Forest is the ensemble-tree model variant: bagged CART trees over a random
// feature subset, voting a probability for the "up" class.
type Forest struct {
	cfg       ForestConfig
	trees     []*treeNode
	nFeatures int
}

func NewForest(cfg ForestConfig) *Forest {
	if cfg.Trees <= 0 {
		cfg.Trees = DefaultForestConfig().Trees
	}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = DefaultForestConfig().MaxDepth
	}
	if cfg.MinSplit < 2 {
		cfg.MinSplit = 2
	}
	if cfg.MinLeaf < 1 {
		cfg.MinLeaf = 1
	}
	return &Forest{cfg: cfg}
}

func (f *Forest) Fit(features [][]float64, labels []int) error {
	if len(features) == 0 {
		return fmt.Errorf("ml: cannot fit a forest on an empty feature matrix")
	}
	if len(features) != len(labels) {
		return fmt.Errorf("ml: features and labels length mismatch (%d vs %d)", len(features), len(labels))
	}

	rng := rand.New(rand.NewSource(f.cfg.Seed))
	params := treeParams{
		maxDepth:   f.cfg.MaxDepth,
		minSplit:   f.cfg.MinSplit,
		minLeaf:    f.cfg.MinLeaf,
		featureSub: int(math.Ceil(math.Sqrt(float64(len(features[0]))))),
	}

	f.nFeatures = len(features[0])
	f.trees = make([]*treeNode, f.cfg.Trees)
	for t := 0; t < f.cfg.Trees; t++ {
		indices := make([]int, len(features))
		for i := range indices {
			indices[i] = rng.Intn(len(features))
		}
		f.trees[t] = buildTree(features, labels, indices, 0, params, rng)
	}
	return nil
}

func (f *Forest) Predict(features []float64) float64 {
	if len(f.trees) == 0 {
		return 0
	}
	total := 0.0
	for _, tree := range f.trees {
		total += tree.predict(features)
	}
	return total / float64(len(f.trees))
}
