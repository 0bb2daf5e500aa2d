package bot

import (
	"cmp"
	"slices"
)

// OrderMoves returns columns sorted by distance from the center column.
// Equal distances keep their input order.
func OrderMoves(columns []int, size int) []int {
	ordered := slices.Clone(columns)
	center := size / 2
	slices.SortStableFunc(ordered, func(a, b int) int {
		return cmp.Compare(centerDistance(a, center), centerDistance(b, center))
	})
	return ordered
}

func centerDistance(col, center int) int {
	if col < center {
		return center - col
	}
	return col - center
}
