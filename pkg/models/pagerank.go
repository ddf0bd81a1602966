package models

import (
	"math"
	"slices"
)

// PagerankMap associates each page with its estimated pagerank.
type PagerankMap map[string]float64

// Distribution associates each page with the probability of being visited next.
type Distribution map[string]float64

// computes the L1 distance between two maps who are supposed to have the same keys.
// if map 1 is nil or empty, it returns 0.0
func Distance(map1, map2 PagerankMap) float64 {
	distance := 0.0
	for key := range map1 {
		distance += math.Abs(map1[key] - map2[key])
	}
	return distance
}

// SortedKeys() returns the keys of m in lexicographic order.
func SortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}
