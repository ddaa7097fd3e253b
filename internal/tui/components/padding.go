package components

import "strings"

const maxCachedPad = 128

var padCache = func() [maxCachedPad + 1]string {
	var c [maxCachedPad + 1]string
	for i := range c {
		c[i] = strings.Repeat(" ", i)
	}
	return c
}()

// Pad returns a string of n spaces. Negative n yields "".
func Pad(n int) string {
	switch {
	case n <= 0:
		return ""
	case n <= maxCachedPad:
		return padCache[n]
	default:
		return strings.Repeat(" ", n)
	}
}

// SpreadRow places left and right on one line of the given width, padding
// the gap between them. When both do not fit, a single space separates them.
func SpreadRow(left, right string, width int) string {
	gap := width - Width(left) - Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + Pad(gap) + right
}
