package engine

import (
	"math"
	"sort"

	"github.com/fleetlens/fleetlens/table"
)

// ============================================================================
// AGGREGATORS — Grouped means, extremum scans, correlation
// ============================================================================
// All numeric inputs are NaN-coerced columns: NaN means "missing" and is
// ignored by every aggregate. Groups are emitted in first-appearance row
// order so results are deterministic before any explicit sort is applied.
// ============================================================================

// Sort directions for grouped results.
const (
	SortNone = ""
	SortAsc  = "asc"
	SortDesc = "desc"
)

// GroupedMean groups rows by the raw value of groupCol and computes the
// NaN-ignoring mean of target per group, rounded to 2 decimal places.
// Groups whose every target value is missing carry Value NaN.
func GroupedMean(t *table.Table, groupCol string, target []float64) []Group {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	rows := make(map[string]int)
	order := make([]string, 0)

	for i := 0; i < t.Len(); i++ {
		key := t.Value(i, groupCol)
		if _, seen := rows[key]; !seen {
			order = append(order, key)
		}
		rows[key]++
		if i < len(target) && !math.IsNaN(target[i]) {
			sums[key] += target[i]
			counts[key]++
		}
	}

	groups := make([]Group, 0, len(order))
	for _, key := range order {
		value := math.NaN()
		if counts[key] > 0 {
			value = RoundTo2(sums[key] / float64(counts[key]))
		}
		groups = append(groups, Group{Key: key, Value: value, Count: rows[key]})
	}
	return groups
}

// SortGroups orders groups by value. NaN groups sort last regardless of
// direction; the sort is stable so equal values keep first-appearance
// order. SortNone leaves the slice untouched.
func SortGroups(groups []Group, direction string) {
	if direction == SortNone {
		return
	}
	sort.SliceStable(groups, func(i, j int) bool {
		a, b := groups[i].Value, groups[j].Value
		switch {
		case math.IsNaN(a):
			return false
		case math.IsNaN(b):
			return true
		case direction == SortDesc:
			return a > b
		default:
			return a < b
		}
	})
}

// MinGroup returns the first group (in slice order) with the smallest
// non-NaN value. Ties resolve to the earliest group the scan visits.
func MinGroup(groups []Group) (Group, bool) {
	best := Group{}
	found := false
	for _, g := range groups {
		if math.IsNaN(g.Value) {
			continue
		}
		if !found || g.Value < best.Value {
			best = g
			found = true
		}
	}
	return best, found
}

// ArgMax returns the index of the largest non-NaN value.
// Ties resolve to the first row a stable scan visits.
func ArgMax(values []float64) (int, bool) {
	idx := -1
	for i, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if idx < 0 || v > values[idx] {
			idx = i
		}
	}
	return idx, idx >= 0
}

// Pearson computes the Pearson correlation coefficient over
// pairwise-complete observations: any pair with a NaN on either side is
// excluded. Returns NaN when fewer than two complete pairs remain or
// either side has zero variance. Symmetric in its arguments.
func Pearson(x, y []float64) float64 {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}

	var count int
	var sumX, sumY float64
	for i := 0; i < n; i++ {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		count++
		sumX += x[i]
		sumY += y[i]
	}
	if count < 2 {
		return math.NaN()
	}

	meanX := sumX / float64(count)
	meanY := sumY / float64(count)

	var cov, varX, varY float64
	for i := 0; i < n; i++ {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		dx := x[i] - meanX
		dy := y[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return math.NaN()
	}
	return cov / math.Sqrt(varX*varY)
}

// RoundTo2 rounds to 2 decimal places. NaN passes through.
func RoundTo2(v float64) float64 {
	if math.IsNaN(v) {
		return v
	}
	return math.Round(v*100) / 100
}
