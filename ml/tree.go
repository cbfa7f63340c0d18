package ml

import (
	"math"
	"math/rand"
	"sort"
)

type treeNode struct {
	feature   int
	threshold float64
	left      *treeNode
	right     *treeNode
	leaf      bool
	prob      float64
}

type treeParams struct {
	maxDepth   int
	minSplit   int
	minLeaf    int
	featureSub int
}

func buildTree(features [][]float64, labels []int, indices []int, depth int, params treeParams, rng *rand.Rand) *treeNode {
	prob := onesFraction(labels, indices)
	if depth >= params.maxDepth || len(indices) < params.minSplit || prob == 0 || prob == 1 {
		return &treeNode{leaf: true, prob: prob}
	}

	feature, threshold, ok := bestSplit(features, labels, indices, params, rng)
	if !ok {
		return &treeNode{leaf: true, prob: prob}
	}

	var left, right []int
	for _, i := range indices {
		if features[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}

	return &treeNode{
		feature:   feature,
		threshold: threshold,
		left:      buildTree(features, labels, left, depth+1, params, rng),
		right:     buildTree(features, labels, right, depth+1, params, rng),
	}
}

func (n *treeNode) predict(features []float64) float64 {
	for !n.leaf {
		if features[n.feature] <= n.threshold {
			n = n.left
		} else {
			n = n.right
		}
	}
	return n.prob
}

// bestSplit scans a random feature subset for the threshold with the lowest
// weighted Gini impurity. Thresholds are midpoints between adjacent sorted
// values of the node's samples.
func bestSplit(features [][]float64, labels []int, indices []int, params treeParams, rng *rand.Rand) (int, float64, bool) {
	bestGini := math.Inf(1)
	bestFeature := -1
	bestThreshold := 0.0

	for _, feature := range sampleFeatures(len(features[0]), params.featureSub, rng) {
		values := make([]float64, len(indices))
		for j, i := range indices {
			values[j] = features[i][feature]
		}
		sort.Float64s(values)

		for j := 1; j < len(values); j++ {
			if values[j] == values[j-1] {
				continue
			}
			threshold := (values[j] + values[j-1]) / 2

			leftN, leftOnes, rightN, rightOnes := 0, 0, 0, 0
			for _, i := range indices {
				if features[i][feature] <= threshold {
					leftN++
					leftOnes += labels[i]
				} else {
					rightN++
					rightOnes += labels[i]
				}
			}
			if leftN < params.minLeaf || rightN < params.minLeaf {
				continue
			}

			gini := weightedGini(leftN, leftOnes, rightN, rightOnes)
			if gini < bestGini {
				bestGini = gini
				bestFeature = feature
				bestThreshold = threshold
			}
		}
	}

	return bestFeature, bestThreshold, bestFeature >= 0
}

func weightedGini(leftN, leftOnes, rightN, rightOnes int) float64 {
	total := float64(leftN + rightN)
	return float64(leftN)/total*gini(leftN, leftOnes) + float64(rightN)/total*gini(rightN, rightOnes)
}

func gini(n, ones int) float64 {
	if n == 0 {
		return 0
	}
	p := float64(ones) / float64(n)
	return 2 * p * (1 - p)
}

func onesFraction(labels []int, indices []int) float64 {
	if len(indices) == 0 {
		return 0
	}
	ones := 0
	for _, i := range indices {
		ones += labels[i]
	}
	return float64(ones) / float64(len(indices))
}

func sampleFeatures(nFeatures, subset int, rng *rand.Rand) []int {
	if subset <= 0 || subset >= nFeatures {
		all := make([]int, nFeatures)
		for i := range all {
			all[i] = i
		}
		return all
	}
	return rng.Perm(nFeatures)[:subset]
}
