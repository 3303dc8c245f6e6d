package main

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/denisok6893-rgb/ai-phone-comparison/internal/comparison"
)

// loadWeights reads the category weights from path. A missing file silently
// yields the defaults; an unreadable or invalid one is logged and also
// yields the defaults.
func loadWeights(path string) comparison.Weights {
	if path == "" {
		return comparison.DefaultWeights()
	}
	w, err := comparison.LoadWeightsFromFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("using default weights", "path", path, "error", err)
		}
		return comparison.DefaultWeights()
	}
	return w
}
