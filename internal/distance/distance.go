// Package distance implements the raw (ungapped) sequence metrics used to
// decide whether two sequences match: Levenshtein and Hamming edit distances
// and Jaro-Winkler similarity.
//
// All metrics compare bytes, so sequences may use any alphabet.
package distance

import "fmt"

// Unset marks a metric that was skipped or is undefined for its operands.
const Unset = -1

// Set holds the metrics computed for one pair of sequences.
type Set struct {
	Levenshtein int
	Hamming     int
	JaroWinkler float64
}

// NewSet returns a Set with every metric unset.
func NewSet() Set {
	return Set{Levenshtein: Unset, Hamming: Unset, JaroWinkler: Unset}
}

// HasLevenshtein reports whether the Levenshtein distance was computed.
func (s Set) HasLevenshtein() bool { return s.Levenshtein != Unset }

// HasHamming reports whether the Hamming distance was computed.
func (s Set) HasHamming() bool { return s.Hamming != Unset }

// HasJaroWinkler reports whether the Jaro-Winkler similarity was computed.
func (s Set) HasJaroWinkler() bool { return s.JaroWinkler != Unset }

func (s Set) String() string {
	return fmt.Sprintf("Distances { levenshtein: %d, hamming: %d, jaro_winkler: %.4f }",
		s.Levenshtein, s.Hamming, s.JaroWinkler)
}

// Options selects which metrics Compute skips.
type Options struct {
	SkipLevenshtein bool
	SkipHamming     bool
	SkipJaroWinkler bool
}

// Compute fills a Set for s and t. Hamming stays unset when the lengths differ.
func Compute(s, t string, opts Options) Set {
	set := NewSet()
	if !opts.SkipLevenshtein {
		set.Levenshtein = Levenshtein(s, t)
	}
	if !opts.SkipHamming {
		set.Hamming = HammingOrUnset(s, t)
	}
	if !opts.SkipJaroWinkler {
		set.JaroWinkler = JaroWinkler(s, t)
	}
	return set
}
