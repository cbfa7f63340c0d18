package ml

import (
	"fmt"

	"gitlab.com/aoterocom/AOQuantbot/interfaces"
)

// TrainTestSplit cuts a feature matrix chronologically: the first
// trainFraction of rows train, the tail is held out. Market rows are
// ordered by date so shuffling here would leak the future into training.
func TrainTestSplit(features [][]float64, labels []int, trainFraction float64) ([][]float64, []int, [][]float64, []int) {
	split := int(float64(len(features)) * trainFraction)
	if split < 1 {
		split = 1
	}
	if split >= len(features) {
		split = len(features) - 1
	}
	return features[:split], labels[:split], features[split:], labels[split:]
}

// Accuracy is the fraction of matching entries between two label vectors.
func Accuracy(predicted []int, actual []int) float64 {
	if len(predicted) == 0 || len(predicted) != len(actual) {
		return 0
	}
	hits := 0
	for i := range predicted {
		if predicted[i] == actual[i] {
			hits++
		}
	}
	return float64(hits) / float64(len(predicted))
}

// EvaluateHoldout fits the classifier on the first 80% of the rows and
// returns its accuracy on the remaining 20%.
func EvaluateHoldout(classifier interfaces.Classifier, features [][]float64, labels []int) (float64, error) {
	if len(features) != len(labels) {
		return 0, fmt.Errorf("ml: features and labels length mismatch (%d vs %d)", len(features), len(labels))
	}
	trainX, trainY, testX, testY := TrainTestSplit(features, labels, 0.8)
	if err := classifier.Fit(trainX, trainY); err != nil {
		return 0, err
	}

	predicted := make([]int, len(testX))
	for i, row := range testX {
		predicted[i] = Classify(classifier, row)
	}
	return Accuracy(predicted, testY), nil
}

// Classify thresholds the classifier probability at 0.5.
func Classify(classifier interfaces.Classifier, features []float64) int {
	if classifier.Predict(features) > 0.5 {
		return 1
	}
	return 0
}

type fold struct {
	trainIndices []int
	testIndices  []int
}

// contiguousFolds splits n ordered rows into k folds whose test blocks are
// contiguous, keeping each test set a single time slice.
func contiguousFolds(n, k int) []fold {
	if k > n {
		k = n
	}
	folds := make([]fold, 0, k)
	size := n / k
	for f := 0; f < k; f++ {
		lo := f * size
		hi := lo + size
		if f == k-1 {
			hi = n
		}

		var train, test []int
		for i := 0; i < n; i++ {
			if i >= lo && i < hi {
				test = append(test, i)
			} else {
				train = append(train, i)
			}
		}
		folds = append(folds, fold{trainIndices: train, testIndices: test})
	}
	return folds
}
