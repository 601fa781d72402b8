package llm

// EmptyArray is returned when no balanced array can be recovered.
const EmptyArray = "[]"

// RepairJSONArray returns the first top-level JSON array in raw, dropping any
// prose or markdown around it. Starting at the first '[', it tracks bracket depth
// and cuts at the first point where depth returns to zero. Text without a '['
// or with unbalanced brackets yields EmptyArray, never a partial slice.
func RepairJSONArray(raw string) string {
	start := -1
	for i := 0; i < len(raw); i++ {
		if raw[i] == '[' {
			start = i
			break
		}
	}
	if start < 0 {
		return EmptyArray
	}

	depth := 0
	for i := start; i < len(raw); i++ {
		switch raw[i] {
		case '[':
			depth++
		case ']':
			depth--
		}
		if depth == 0 {
			return raw[start : i+1]
		}
	}
	return EmptyArray
}
