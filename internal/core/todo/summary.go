package todo

// Summary holds the aggregate values derived from a task list.
type Summary struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
	Percent   int `json:"percent"`
}

// Summarize derives a Summary from tasks.
func Summarize(tasks []Task) Summary {
	completed := 0
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}

	return Summary{
		Completed: completed,
		Total:     len(tasks),
		Percent:   Percentage(completed, len(tasks)),
	}
}

// Ratio returns the unrounded completed/total fraction in [0, 1].
func (s Summary) Ratio() float64 {
	if s.Total <= 0 {
		return 0
	}
	return float64(s.Completed) / float64(s.Total)
}

// Empty reports whether there are no tasks.
func (s Summary) Empty() bool {
	return s.Total == 0
}

// Percentage returns round(completed/total*100) using round-half-up, or 0
// when total is not positive. The result is clamped to [0, 100].
func Percentage(completed, total int) int {
	if total <= 0 {
		return 0
	}
	completed = min(max(completed, 0), total)

	// (100c/t + 1/2) floored, kept in integers to avoid float ties.
	return (200*completed + total) / (2 * total)
}
