package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryLabelRoundTrips(t *testing.T) {
	for id := MinLabel; id <= MaxLabel; id++ {
		name, ok := Name(id)
		require.True(t, ok, id)
		assert.NotEmpty(t, name)

		url, ok := ImageURL(name)
		require.True(t, ok, name)
		assert.NotEmpty(t, url)

		back, ok := Label(name)
		require.True(t, ok)
		assert.Equal(t, id, back)
	}
}

func TestOutOfRangeLabelsMiss(t *testing.T) {
	for _, id := range []int{-1, 0, 23, 100} {
		_, ok := Name(id)
		assert.False(t, ok, id)
	}
}

func TestLookupsIgnoreCase(t *testing.T) {
	id, ok := Label(" Rice ")
	assert.True(t, ok)
	assert.Equal(t, 1, id)

	url, ok := ImageURL("KidneyBeans")
	assert.True(t, ok)
	assert.Equal(t, "/static/images/crops/kidneybeans.svg", url)

	_, ok = ImageURL("tobacco")
	assert.False(t, ok)
}

func TestNamesIsSortedAndComplete(t *testing.T) {
	n := Names()
	assert.Len(t, n, MaxLabel)
	assert.IsNonDecreasing(t, n)
	assert.Equal(t, "apple", n[0])
}
