// Package sample generates random demo data for charts.
package sample

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/philipparndt/dragpie/internal/config"
	"github.com/philipparndt/dragpie/pkg/piechart"
	"github.com/philipparndt/dragpie/pkg/raster"
)

// epsilon absorbs rounding in the shortfall redistribution.
const epsilon = 1e-12

// Activities are the demo segment labels.
var Activities = []string{"walking", "programming", "chess", "eating", "sleeping"}

// RandomProportions returns n weights that sum to 1, each at least minWeight, sorted
// ascending. Shortfalls below minWeight are taken from the largest weight.
func RandomProportions(n int, minWeight float64, rng *rand.Rand) ([]float64, error) {
	if n <= 0 {
		return nil, nil
	}
	if minWeight < 0 || float64(n)*minWeight > 1 {
		return nil, fmt.Errorf("cannot draw %d proportions of at least %v", n, minWeight)
	}

	values := make([]float64, n)
	total := 0.0
	for i := range values {
		values[i] = rng.Float64()
		total += values[i]
	}
	if total == 0 {
		for i := range values {
			values[i] = 1
		}
		total = float64(n)
	}
	for i := range values {
		values[i] /= total
	}

	for {
		slices.Sort(values)
		i := slices.IndexFunc(values, func(v float64) bool { return v < minWeight-epsilon })
		if i < 0 {
			return values, nil
		}
		diff := minWeight - values[i]
		values[i] = minWeight
		values[n-1] -= diff
	}
}

// Shuffle permutes s in place (Fisher-Yates).
func Shuffle[T any](s []T, rng *rand.Rand) {
	for i := len(s) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// Title upper-cases the first letter of label.
func Title(label string) string {
	if label == "" {
		return label
	}
	return strings.ToUpper(label[:1]) + label[1:]
}

// NewRand returns a generator seeded with seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Chart builds a collapsing chart of n shuffled activities with random
// proportions of at least minWeight. Labels beyond the known activities are numbered.
func Chart(n int, minWeight float64, rng *rand.Rand) (*config.Chart, error) {
	weights, err := RandomProportions(n, minWeight, rng)
	if err != nil {
		return nil, err
	}

	labels := slices.Clone(Activities)
	for i := len(labels); i < n; i++ {
		labels = append(labels, fmt.Sprintf("segment %d", i+1))
	}
	Shuffle(labels, rng)

	c := &config.Chart{
		Radius:     piechart.DefaultRadius,
		Collapsing: true,
		MinAngle:   piechart.DefaultMinAngle,
	}
	for i, w := range weights {
		c.Proportions = append(c.Proportions, piechart.Proportion[raster.Format]{
			Weight:  w,
			Payload: raster.Format{Label: Title(labels[i]), Color: raster.PaletteColor(i)},
		})
	}
	return c, nil
}
