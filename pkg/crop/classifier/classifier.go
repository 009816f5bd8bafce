// pkg/crop/classifier/classifier.go

package classifier

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"cropadvisor/entities"
)

// Classifier assigns one integer label per feature row. Implementations are
// immutable after loading and safe for concurrent use.
type Classifier interface {
	Predict(rows [][]float64) ([]int, error)
}

var ErrFeatureCount = errors.New("feature count mismatch")

// artifact is the on-disk model format. Kind selects which fields are used.
type artifact struct {
	Kind     string      `json:"kind"`
	Features []string    `json:"features"`
	Scale    []float64   `json:"scale,omitempty"`
	Classes  []centroid  `json:"classes,omitempty"`
	Trees    []treeNodes `json:"trees,omitempty"`
}

// Load reads a trained model artifact from path.
func Load(path string) (Classifier, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model: %w", err)
	}
	return Parse(b)
}

func Parse(b []byte) (Classifier, error) {
	var a artifact
	if err := json.Unmarshal(b, &a); err != nil {
		return nil, fmt.Errorf("decode model: %w", err)
	}
	if err := checkFeatures(a.Features); err != nil {
		return nil, err
	}
	switch strings.ToLower(a.Kind) {
	case "centroid":
		m, err := newCentroidModel(a.Scale, a.Classes)
		if err != nil {
			return nil, err
		}
		return m, nil
	case "forest":
		f, err := newForest(a.Trees)
		if err != nil {
			return nil, err
		}
		return f, nil
	}
	return nil, fmt.Errorf("unknown model kind %q", a.Kind)
}

// checkFeatures rejects artifacts trained on a different column order.
func checkFeatures(got []string) error {
	want := entities.FeatureOrder
	if len(got) != len(want) {
		return fmt.Errorf("%w: model has %d features, want %d", ErrFeatureCount, len(got), len(want))
	}
	for i := range want {
		if !strings.EqualFold(got[i], want[i]) {
			return fmt.Errorf("model feature %d is %q, want %q", i, got[i], want[i])
		}
	}
	return nil
}

func checkRow(row []float64) error {
	if len(row) != len(entities.FeatureOrder) {
		return fmt.Errorf("%w: row has %d values, want %d", ErrFeatureCount, len(row), len(entities.FeatureOrder))
	}
	return nil
}
