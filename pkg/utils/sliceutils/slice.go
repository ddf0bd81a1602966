// The sliceutils package contains set operations on sorted slices.
package sliceutils

import (
	"cmp"
	"slices"
)

/*
returns the difference between slice1 and slice2; in set notation:

- difference = slice1 - slice2

Both slices are sorted in place. Time complexity O(n * logn + m * logm), where n and m are the lengths of the slices.
This function is much faster than converting to sets for sizes (n, m) smaller than ~10^6.
*/
func Difference[T cmp.Ordered](slice1, slice2 []T) []T {

	// Sort both slices first
	slices.Sort(slice1)
	slices.Sort(slice2)
	difference := []T{}

	i, j := 0, 0
	len1, len2 := len(slice1), len(slice2)

	// Use two pointers to compare both sorted lists
	for i < len1 && j < len2 {
		if slice1[i] < slice2[j] {
			// the element is in slice1 but not in slice2
			difference = append(difference, slice1[i])
			i++
		} else if slice1[i] > slice2[j] {
			j++
		} else {
			i++
			j++
		}
	}

	// Add all elements not traversed
	difference = append(difference, slice1[i:]...)
	return difference
}

/*
returns removed, common and added elements, using set notation:

removed = slice1 - slice2
common = slice1 ^ slice2
added = slice2 - slice1

Both slices are sorted in place. Time complexity O(n * logn + m * logm), where n and m are the lengths of the slices.
*/
func Partition[T cmp.Ordered](slice1, slice2 []T) ([]T, []T, []T) {

	// Sort both slices first
	slices.Sort(slice1)
	slices.Sort(slice2)
	removed := []T{}
	common := []T{}
	added := []T{}

	i, j := 0, 0
	len1, len2 := len(slice1), len(slice2)

	// Use two pointers to compare both sorted lists
	for i < len1 && j < len2 {

		if slice1[i] < slice2[j] {
			// not in slice2, so it was removed
			removed = append(removed, slice1[i])
			i++

		} else if slice1[i] > slice2[j] {
			// not in slice1, so it was added
			added = append(added, slice2[j])
			j++

		} else {
			common = append(common, slice1[i])
			i++
			j++
		}
	}

	// Add all elements not traversed
	removed = append(removed, slice1[i:]...)
	added = append(added, slice2[j:]...)

	return removed, common, added
}

// Unique() returns the elements of slice without duplicates, keeping the order
// of their first occurrence. slice is not modified.
func Unique[T comparable](slice []T) []T {
	seen := make(map[T]struct{}, len(slice))
	unique := make([]T, 0, len(slice))

	for _, element := range slice {
		if _, exists := seen[element]; exists {
			continue
		}
		seen[element] = struct{}{}
		unique = append(unique, element)
	}

	return unique
}
