package comparison

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Weights defines the share of each category in the overall score.
type Weights struct {
	Display     float64 `json:"display" yaml:"display"`
	Camera      float64 `json:"camera" yaml:"camera"`
	Performance float64 `json:"performance" yaml:"performance"`
	Battery     float64 `json:"battery" yaml:"battery"`
	Build       float64 `json:"build" yaml:"build"`
	Value       float64 `json:"value" yaml:"value"`
}

// DefaultWeights returns the fixed category weight table.
func DefaultWeights() Weights {
	return Weights{
		Display:     0.20,
		Camera:      0.25,
		Performance: 0.20,
		Battery:     0.15,
		Build:       0.10,
		Value:       0.10,
	}
}

const weightSumTolerance = 1e-6

// Validate rejects negative weights and tables that do not sum to 1.0.
func (w Weights) Validate() error {
	sum := 0.0
	for _, c := range Categories() {
		v := w.For(c)
		if v < 0 {
			return fmt.Errorf("weight for %s is negative: %v", c, v)
		}
		sum += v
	}
	if math.Abs(sum-1) > weightSumTolerance {
		return fmt.Errorf("weights sum to %.4f, want 1.0", sum)
	}
	return nil
}

// For returns the weight of category c.
func (w Weights) For(c Category) float64 {
	switch c {
	case CategoryDisplay:
		return w.Display
	case CategoryCamera:
		return w.Camera
	case CategoryPerformance:
		return w.Performance
	case CategoryBattery:
		return w.Battery
	case CategoryBuild:
		return w.Build
	case CategoryValue:
		return w.Value
	}
	return 0
}

// LoadWeightsFromFile loads weights from a YAML or JSON file, falling back to
// defaults when the file cannot be read or the table is invalid.
func LoadWeightsFromFile(path string) (Weights, error) {
	def := DefaultWeights()
	b, err := os.ReadFile(path)
	if err != nil {
		return def, fmt.Errorf("read weights file: %w", err)
	}
	var w Weights
	if err := yaml.Unmarshal(b, &w); err != nil {
		return def, fmt.Errorf("unmarshal weights: %w", err)
	}
	if err := w.Validate(); err != nil {
		return def, fmt.Errorf("invalid weights: %w", err)
	}
	return w, nil
}
