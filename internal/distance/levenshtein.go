package distance

// Levenshtein returns the edit distance between s and t with unit cost for
// insertion, deletion and substitution.
//
// Two rows are kept, sized by the shorter operand, so memory is
// O(min(|s|, |t|)).
func Levenshtein(s, t string) int {
	if len(s) < len(t) {
		s, t = t, s
	}
	if len(t) == 0 {
		return len(s)
	}

	prevRow := make([]int, len(t)+1)
	currRow := make([]int, len(t)+1)
	for j := range prevRow {
		prevRow[j] = j
	}

	for i := 1; i <= len(s); i++ {
		currRow[0] = i
		for j := 1; j <= len(t); j++ {
			cost := 1
			if s[i-1] == t[j-1] {
				cost = 0
			}
			currRow[j] = min(prevRow[j]+1, currRow[j-1]+1, prevRow[j-1]+cost)
		}
		prevRow, currRow = currRow, prevRow
	}

	return prevRow[len(t)]
}
