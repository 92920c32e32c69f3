package stats

// ModeCount pairs a value with its occurrence count.
type ModeCount struct {
	Value float64
	Count int
}

// Mode returns the most frequent value in the slice. Ties resolve to the
// value encountered first.
func Mode(x []float64) float64 {
	m, _, _ := Modes(x)
	return m.Value
}

// Modes returns the first mode (most frequent value) and the second mode,
// the most frequent value after removing every occurrence of the first mode.
// ok reports whether a second mode exists: it is false when the remaining
// values are empty or all singletons, in which case callers should substitute
// a sentinel rather than divide by the second count. Ties resolve to the
// value encountered first.
func Modes(x []float64) (first, second ModeCount, ok bool) {
	if len(x) == 0 {
		return ModeCount{}, ModeCount{}, false
	}
	counts := make(map[float64]int, len(x))
	for _, v := range x {
		counts[v]++
	}

	// Scan in encounter order so ties are deterministic.
	for _, v := range x {
		if counts[v] > first.Count {
			first = ModeCount{Value: v, Count: counts[v]}
		}
	}
	for _, v := range x {
		if v == first.Value {
			continue
		}
		if counts[v] > second.Count {
			second = ModeCount{Value: v, Count: counts[v]}
		}
	}
	if second.Count < 2 {
		return first, ModeCount{}, false
	}
	return first, second, true
}

// StringModeCount pairs a categorical value with its occurrence count.
type StringModeCount struct {
	Value string
	Count int
}

// StringModes is Modes for categorical values.
func StringModes(x []string) (first, second StringModeCount, ok bool) {
	counts := make(map[string]int, len(x))
	for _, v := range x {
		counts[v]++
	}
	for _, v := range x {
		if counts[v] > first.Count {
			first.Value, first.Count = v, counts[v]
		}
	}
	for _, v := range x {
		if v == first.Value {
			continue
		}
		if counts[v] > second.Count {
			second.Value, second.Count = v, counts[v]
		}
	}
	if second.Count < 2 {
		return first, StringModeCount{}, false
	}
	return first, second, true
}
