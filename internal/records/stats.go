package records

import (
	"math"
	"sort"
)

// Bucket is one group of a tally.
type Bucket struct {
	Key     string
	Count   int
	Percent float64 // share of the total, rounded to one decimal
}

// Tally groups items by key. Buckets are ordered by descending count; ties
// keep first-appearance order.
func Tally[T any](items []T, key func(T) string) []Bucket {
	index := map[string]int{}
	var out []Bucket
	for _, it := range items {
		k := key(it)
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, Bucket{Key: k})
		}
		out[i].Count++
	}
	for i := range out {
		out[i].Percent = math.Round(float64(out[i].Count)/float64(len(items))*1000) / 10
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// Count returns how many items satisfy pred.
func Count[T any](items []T, pred func(T) bool) int {
	n := 0
	for _, it := range items {
		if pred(it) {
			n++
		}
	}
	return n
}
