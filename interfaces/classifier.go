package interfaces

type (
	// Classifier is the shared contract of the two model variants: fit on a
	// feature matrix with binary direction labels, then score single rows.
	// Predict returns the probability of the "up" class.
	Classifier interface {
		Fit(features [][]float64, labels []int) error
		Predict(features []float64) float64
	}
)
