package sample

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomProportions(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		values, err := RandomProportions(5, 0.05, NewRand(seed))
		require.NoError(t, err)
		require.Len(t, values, 5)

		total := 0.0
		for _, v := range values {
			assert.GreaterOrEqual(t, v, 0.05-1e-12)
			total += v
		}
		assert.InDelta(t, 1.0, total, 1e-9)
		assert.True(t, slices.IsSorted(values))
	}
}

func TestRandomProportionsTightMinimum(t *testing.T) {
	values, err := RandomProportions(4, 0.25, NewRand(7))
	require.NoError(t, err)
	for _, v := range values {
		assert.InDelta(t, 0.25, v, 1e-9)
	}
}

func TestRandomProportionsInvalid(t *testing.T) {
	_, err := RandomProportions(5, 0.3, NewRand(1))
	assert.Error(t, err)

	_, err = RandomProportions(3, -0.1, NewRand(1))
	assert.Error(t, err)

	values, err := RandomProportions(0, 0.1, NewRand(1))
	assert.NoError(t, err)
	assert.Empty(t, values)
}

func TestRandomProportionsDeterministic(t *testing.T) {
	a, err := RandomProportions(5, 0.05, NewRand(42))
	require.NoError(t, err)
	b, err := RandomProportions(5, 0.05, NewRand(42))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestShuffleIsPermutation(t *testing.T) {
	labels := slices.Clone(Activities)
	Shuffle(labels, NewRand(3))

	assert.ElementsMatch(t, Activities, labels)
	assert.Equal(t, "walking", Activities[0], "source slice untouched")
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Walking", Title("walking"))
	assert.Equal(t, "", Title(""))
}

func TestChart(t *testing.T) {
	c, err := Chart(5, 0.05, NewRand(11))
	require.NoError(t, err)

	assert.True(t, c.Collapsing)
	assert.Empty(t, c.Segments)
	require.Len(t, c.Proportions, 5)

	labels := make([]string, 0, 5)
	for _, p := range c.Proportions {
		labels = append(labels, p.Payload.Label)
	}
	assert.ElementsMatch(t, []string{"Walking", "Programming", "Chess", "Eating", "Sleeping"}, labels)
}

func TestChartMoreThanActivities(t *testing.T) {
	c, err := Chart(7, 0.01, NewRand(2))
	require.NoError(t, err)
	require.Len(t, c.Proportions, 7)

	labels := make([]string, 0, 7)
	for _, p := range c.Proportions {
		labels = append(labels, p.Payload.Label)
	}
	assert.Contains(t, labels, "Segment 7")
}

func TestChartTooManyForMinimum(t *testing.T) {
	_, err := Chart(5, 0.5, NewRand(1))
	assert.Error(t, err)
}
