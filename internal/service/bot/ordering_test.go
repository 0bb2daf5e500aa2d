package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderMoves(t *testing.T) {
	tests := []struct {
		name    string
		columns []int
		size    int
		want    []int
	}{
		{name: "odd board", columns: []int{0, 1, 2, 3, 4, 5, 6}, size: 7, want: []int{3, 2, 4, 1, 5, 0, 6}},
		{name: "even board", columns: []int{0, 1, 2, 3, 4, 5, 6, 7}, size: 8, want: []int{4, 3, 5, 2, 6, 1, 7, 0}},
		{name: "center full", columns: []int{0, 1, 5, 6}, size: 7, want: []int{1, 5, 0, 6}},
		{name: "single column", columns: []int{6}, size: 7, want: []int{6}},
		{name: "no columns", columns: []int{}, size: 7, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OrderMoves(tt.columns, tt.size))
		})
	}
}

func TestOrderMovesKeepsInput(t *testing.T) {
	columns := []int{0, 1, 2, 3, 4, 5, 6}
	ordered := OrderMoves(columns, 7)

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, columns)
	assert.ElementsMatch(t, columns, ordered)
}
