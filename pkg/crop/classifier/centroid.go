package classifier

import (
	"errors"
	"fmt"
	"math"
)

type centroid struct {
	Label  int       `json:"label"`
	Center []float64 `json:"centroid"`
}

// centroidModel picks the class whose center is nearest after dividing each
// feature by its scale. Ties keep the class listed first.
type centroidModel struct {
	scale   []float64
	classes []centroid
}

func newCentroidModel(scale []float64, classes []centroid) (*centroidModel, error) {
	if len(classes) == 0 {
		return nil, errors.New("centroid model has no classes")
	}
	n := len(classes[0].Center)
	if len(scale) == 0 {
		scale = make([]float64, n)
		for i := range scale {
			scale[i] = 1
		}
	}
	if len(scale) != n {
		return nil, fmt.Errorf("%w: %d scales for %d features", ErrFeatureCount, len(scale), n)
	}
	for _, c := range classes {
		if err := checkRow(c.Center); err != nil {
			return nil, fmt.Errorf("class %d: %w", c.Label, err)
		}
	}
	s := make([]float64, n)
	for i, v := range scale {
		if v == 0 {
			v = 1
		}
		s[i] = v
	}
	return &centroidModel{scale: s, classes: classes}, nil
}

func (m *centroidModel) Predict(rows [][]float64) ([]int, error) {
	out := make([]int, 0, len(rows))
	for _, row := range rows {
		if err := checkRow(row); err != nil {
			return nil, err
		}
		best, bestDist := m.classes[0].Label, m.distance(row, m.classes[0].Center)
		for _, c := range m.classes[1:] {
			if d := m.distance(row, c.Center); d < bestDist {
				best, bestDist = c.Label, d
			}
		}
		out = append(out, best)
	}
	return out, nil
}

// distance is the scaled Euclidean distance. Hypot keeps large finite inputs
// from overflowing to +Inf.
func (m *centroidModel) distance(row, center []float64) float64 {
	var d float64
	for i, x := range row {
		d = math.Hypot(d, (x-center[i])/m.scale[i])
	}
	return d
}
