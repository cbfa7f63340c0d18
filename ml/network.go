package ml

import (
	"fmt"

	"github.com/goml/gobrain"
	"gonum.org/v1/gonum/stat"
)

// NetworkConfig are the training knobs of the feed-forward variant.
type NetworkConfig struct {
	Hidden       int
	Epochs       int
	LearningRate float64
	Momentum     float64
}

func DefaultNetworkConfig() NetworkConfig {
	return NetworkConfig{
		Hidden:       8,
		Epochs:       400,
		LearningRate: 0.25,
		Momentum:     0.1,
	}
}

// Network is the neural model variant: a gobrain feed-forward net trained by
// backpropagation for a fixed epoch budget. Features are standardized with
// the training set's column mean and deviation; the same scaling is applied
// on Predict.
type Network struct {
	cfg  NetworkConfig
	ff   *gobrain.FeedForward
	mean []float64
	std  []float64
}

func NewNetwork(cfg NetworkConfig) *Network {
	defaults := DefaultNetworkConfig()
	if cfg.Hidden <= 0 {
		cfg.Hidden = defaults.Hidden
	}
	if cfg.Epochs <= 0 {
		cfg.Epochs = defaults.Epochs
	}
	if cfg.LearningRate <= 0 {
		cfg.LearningRate = defaults.LearningRate
	}
	if cfg.Momentum <= 0 {
		cfg.Momentum = defaults.Momentum
	}
	return &Network{cfg: cfg}
}

func (n *Network) Fit(features [][]float64, labels []int) error {
	if len(features) == 0 {
		return fmt.Errorf("ml: cannot fit a network on an empty feature matrix")
	}
	if len(features) != len(labels) {
		return fmt.Errorf("ml: features and labels length mismatch (%d vs %d)", len(features), len(labels))
	}

	n.fitScaler(features)

	patterns := make([][][]float64, len(features))
	for i, row := range features {
		patterns[i] = [][]float64{n.scale(row), {float64(labels[i])}}
	}

	n.ff = &gobrain.FeedForward{}
	n.ff.Init(len(features[0]), n.cfg.Hidden, 1)
	n.ff.Train(patterns, n.cfg.Epochs, n.cfg.LearningRate, n.cfg.Momentum, false)
	return nil
}

// Predict clamps the net's activation into [0,1] so callers can treat it as
// the probability of the "up" class.
func (n *Network) Predict(features []float64) float64 {
	if n.ff == nil {
		return 0
	}
	out := n.ff.Update(n.scale(features))[0]
	if out < 0 {
		return 0
	}
	if out > 1 {
		return 1
	}
	return out
}

func (n *Network) fitScaler(features [][]float64) {
	cols := len(features[0])
	n.mean = make([]float64, cols)
	n.std = make([]float64, cols)

	column := make([]float64, len(features))
	for c := 0; c < cols; c++ {
		for i, row := range features {
			column[i] = row[c]
		}
		n.mean[c] = stat.Mean(column, nil)
		n.std[c] = stat.StdDev(column, nil)
		if n.std[c] == 0 {
			n.std[c] = 1
		}
	}
}

func (n *Network) scale(features []float64) []float64 {
	scaled := make([]float64, len(features))
	for i, v := range features {
		scaled[i] = (v - n.mean[i]) / n.std[i]
	}
	return scaled
}
