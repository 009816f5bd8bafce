package classifier

import (
	"errors"
	"fmt"

	"cropadvisor/entities"
)

// node is one decision-tree node. Rows with x[Feature] <= Threshold go Left.
type node struct {
	Leaf      bool    `json:"leaf,omitempty"`
	Label     int     `json:"label,omitempty"`
	Feature   int     `json:"feature,omitempty"`
	Threshold float64 `json:"threshold,omitempty"`
	Left      int     `json:"left,omitempty"`
	Right     int     `json:"right,omitempty"`
}

type treeNodes struct {
	Nodes []node `json:"nodes"`
}

// forest is a majority-vote tree ensemble; ties go to the lowest label.
type forest struct {
	trees [][]node
}

func newForest(trees []treeNodes) (*forest, error) {
	if len(trees) == 0 {
		return nil, errors.New("forest has no trees")
	}
	f := &forest{}
	for ti, t := range trees {
		if len(t.Nodes) == 0 {
			return nil, fmt.Errorf("tree %d is empty", ti)
		}
		for ni, n := range t.Nodes {
			if n.Leaf {
				continue
			}
			if n.Feature < 0 || n.Feature >= len(entities.FeatureOrder) {
				return nil, fmt.Errorf("tree %d node %d: feature %d out of range", ti, ni, n.Feature)
			}
			if n.Left <= ni || n.Right <= ni || n.Left >= len(t.Nodes) || n.Right >= len(t.Nodes) {
				return nil, fmt.Errorf("tree %d node %d: children must point forward within the tree", ti, ni)
			}
		}
		f.trees = append(f.trees, t.Nodes)
	}
	return f, nil
}

func (f *forest) Predict(rows [][]float64) ([]int, error) {
	out := make([]int, 0, len(rows))
	for _, row := range rows {
		if err := checkRow(row); err != nil {
			return nil, err
		}
		votes := map[int]int{}
		for _, t := range f.trees {
			votes[walk(t, row)]++
		}
		best, bestVotes := 0, -1
		for label, v := range votes {
			if v > bestVotes || (v == bestVotes && label < best) {
				best, bestVotes = label, v
			}
		}
		out = append(out, best)
	}
	return out, nil
}

// walk terminates because newForest only accepts forward child links.
func walk(t []node, row []float64) int {
	i := 0
	for !t[i].Leaf {
		if row[t[i].Feature] <= t[i].Threshold {
			i = t[i].Left
		} else {
			i = t[i].Right
		}
	}
	return t[i].Label
}
