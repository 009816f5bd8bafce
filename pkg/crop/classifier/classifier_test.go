package classifier

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shippedModel = "../../../data/crop_model.json"

func TestLoad_ShippedCentroidModel(t *testing.T) {
	m, err := Load(shippedModel)
	require.NoError(t, err)

	labels, err := m.Predict([][]float64{{90, 42, 43, 20.8, 82, 6.5, 202.9}})
	require.NoError(t, err)
	assert.Equal(t, []int{1}, labels, "reference row is rice")
}

func TestCentroid_EachCenterPredictsItsOwnLabel(t *testing.T) {
	m, err := Load(shippedModel)
	require.NoError(t, err)
	cm := m.(*centroidModel)
	require.Len(t, cm.classes, 22)

	for _, c := range cm.classes {
		got, err := m.Predict([][]float64{c.Center})
		require.NoError(t, err)
		assert.Equal(t, []int{c.Label}, got)
	}
}

func TestCentroid_Deterministic(t *testing.T) {
	m, err := Load(shippedModel)
	require.NoError(t, err)

	row := []float64{20, 130, 200, 22, 90, 6, 110}
	first, err := m.Predict([][]float64{row})
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := m.Predict([][]float64{row})
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestCentroid_LargeInputsStillPickAKnownClass(t *testing.T) {
	m, err := Load(shippedModel)
	require.NoError(t, err)

	got, err := m.Predict([][]float64{
		{1e200, 42, 43, 20.8, 82, 6.5, 202.9},
		{1e308, 1e308, 1e308, 1e308, 1e308, 1e308, 1e308},
		{-1e308, 0, 0, 0, 0, 0, 0},
	})
	require.NoError(t, err)
	require.Len(t, got, 3)
	for _, label := range got {
		assert.GreaterOrEqual(t, label, 1)
		assert.LessOrEqual(t, label, 22)
	}
}

func TestCentroid_AllDistancesOverflowKeepsFirstClass(t *testing.T) {
	m, err := Parse([]byte(`{"kind":"centroid","features":["N","P","K","temperature","humidity","ph","rainfall"],
		"scale":[1e-300,1,1,1,1,1,1],
		"classes":[{"label":4,"centroid":[0,0,0,0,0,0,0]},{"label":9,"centroid":[1,1,1,1,1,1,1]}]}`))
	require.NoError(t, err)

	got, err := m.Predict([][]float64{{1e300, 0, 0, 0, 0, 0, 0}})
	require.NoError(t, err)
	assert.Equal(t, []int{4}, got)
}

func TestParse_RejectsWrongFeatureOrder(t *testing.T) {
	_, err := Parse([]byte(`{"kind":"centroid","features":["P","N","K","temperature","humidity","ph","rainfall"],
		"classes":[{"label":1,"centroid":[1,2,3,4,5,6,7]}]}`))
	assert.ErrorContains(t, err, `model feature 0 is "P"`)

	_, err = Parse([]byte(`{"kind":"centroid","features":["N","P","K"]}`))
	assert.ErrorIs(t, err, ErrFeatureCount)
}

func TestParse_UnknownKind(t *testing.T) {
	_, err := Parse([]byte(`{"kind":"svm","features":["N","P","K","temperature","humidity","ph","rainfall"]}`))
	assert.ErrorContains(t, err, "unknown model kind")
}

func TestPredict_RowWidthChecked(t *testing.T) {
	m, err := Load(shippedModel)
	require.NoError(t, err)

	_, err = m.Predict([][]float64{{1, 2, 3}})
	assert.ErrorIs(t, err, ErrFeatureCount)
}

const tinyForest = `{
  "kind": "forest",
  "features": ["N","P","K","temperature","humidity","ph","rainfall"],
  "trees": [
    {"nodes": [
      {"feature": 0, "threshold": 50, "left": 1, "right": 2},
      {"leaf": true, "label": 15},
      {"leaf": true, "label": 1}
    ]},
    {"nodes": [
      {"feature": 6, "threshold": 150, "left": 1, "right": 2},
      {"leaf": true, "label": 2},
      {"leaf": true, "label": 1}
    ]},
    {"nodes": [{"leaf": true, "label": 2}]}
  ]
}`

func TestForest_MajorityVote(t *testing.T) {
	m, err := Parse([]byte(tinyForest))
	require.NoError(t, err)

	got, err := m.Predict([][]float64{
		{90, 42, 43, 20.8, 82, 6.5, 202.9}, // 1, 1, 2
		{90, 42, 43, 20.8, 82, 6.5, 80},    // 1, 2, 2
		{20, 42, 43, 20.8, 82, 6.5, 202.9}, // 15, 1, 2 -> tie, lowest wins
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 1}, got)
}

func TestForest_RejectsBackwardLinks(t *testing.T) {
	_, err := Parse([]byte(`{"kind":"forest","features":["N","P","K","temperature","humidity","ph","rainfall"],
		"trees":[{"nodes":[{"feature":0,"threshold":1,"left":0,"right":1},{"leaf":true,"label":1}]}]}`))
	assert.ErrorContains(t, err, "children must point forward")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMock(t *testing.T) {
	m := NewMock()
	got, err := m.Predict([][]float64{{1, 2, 3, 4, 5, 6, 7}})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, [][]float64{{1, 2, 3, 4, 5, 6, 7}}, m.Rows())
}
