package todo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentage(t *testing.T) {
	tests := []struct {
		completed int
		total     int
		want      int
	}{
		{0, 0, 0},
		{0, 1, 0},
		{1, 1, 100},
		{1, 2, 50},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13},
		{3, 8, 38},
		{1, 200, 1},
		{1, 201, 0},
		{5, -1, 0},
		{7, 4, 100},
		{-2, 4, 0},
	}

	for _, tt := range tests {
		got := Percentage(tt.completed, tt.total)
		assert.Equal(t, tt.want, got, "Percentage(%d, %d)", tt.completed, tt.total)
	}
}

func TestPercentage_AlwaysInRange(t *testing.T) {
	for total := 0; total <= 50; total++ {
		for completed := 0; completed <= total; completed++ {
			p := Percentage(completed, total)
			assert.GreaterOrEqual(t, p, 0)
			assert.LessOrEqual(t, p, 100)
		}
	}
}

func TestSummarize(t *testing.T) {
	tasks := []Task{
		{ID: 1, Text: "a", Completed: true},
		{ID: 2, Text: "b"},
		{ID: 3, Text: "c", Completed: true},
		{ID: 4, Text: "d"},
	}

	s := Summarize(tasks)

	assert.Equal(t, Summary{Completed: 2, Total: 4, Percent: 50}, s)
	assert.InDelta(t, 0.5, s.Ratio(), 0.0001)
	assert.False(t, s.Empty())

	empty := Summarize(nil)
	assert.True(t, empty.Empty())
	assert.Zero(t, empty.Ratio())
	assert.Zero(t, empty.Percent)
}
