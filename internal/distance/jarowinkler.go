package distance

const (
	// winklerScaling is the weight given to each shared prefix character.
	winklerScaling = 0.1
	// winklerPrefix caps the prefix length that earns the boost.
	winklerPrefix = 4
)

// Jaro returns the Jaro similarity of s and t in [0, 1].
//
// Characters match when equal and no further apart than
// max(|s|, |t|)/2 - 1 positions. Transpositions are matched characters that
// appear in a different order, counted in halves.
func Jaro(s, t string) float64 {
	if s == t {
		return 1.0
	}
	if len(s) == 0 || len(t) == 0 {
		return 0.0
	}

	window := max(max(len(s), len(t))/2-1, 0)

	sMatched := make([]bool, len(s))
	tMatched := make([]bool, len(t))
	matches := 0
	for i := 0; i < len(s); i++ {
		lo := max(0, i-window)
		hi := min(len(t), i+window+1)
		for j := lo; j < hi; j++ {
			if tMatched[j] || s[i] != t[j] {
				continue
			}
			sMatched[i] = true
			tMatched[j] = true
			matches++
			break
		}
	}
	if matches == 0 {
		return 0.0
	}

	halfTranspositions := 0
	k := 0
	for i := 0; i < len(s); i++ {
		if !sMatched[i] {
			continue
		}
		for !tMatched[k] {
			k++
		}
		if s[i] != t[k] {
			halfTranspositions++
		}
		k++
	}

	m := float64(matches)
	transpositions := float64(halfTranspositions) / 2
	return (m/float64(len(s)) + m/float64(len(t)) + (m-transpositions)/m) / 3
}

// JaroWinkler returns the Jaro similarity boosted by the length of the common
// prefix, up to four characters.
func JaroWinkler(s, t string) float64 {
	jaro := Jaro(s, t)

	prefix := 0
	for prefix < winklerPrefix && prefix < len(s) && prefix < len(t) && s[prefix] == t[prefix] {
		prefix++
	}

	return jaro + float64(prefix)*winklerScaling*(1-jaro)
}
