package distance

import "fmt"

// LengthMismatchError is returned by Hamming for operands of different length.
type LengthMismatchError struct {
	LenA int
	LenB int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("hamming distance needs equal lengths: %d and %d provided", e.LenA, e.LenB)
}

// Hamming counts the positions at which s and t differ.
func Hamming(s, t string) (int, error) {
	if len(s) != len(t) {
		return 0, &LengthMismatchError{LenA: len(s), LenB: len(t)}
	}

	distance := 0
	for i := 0; i < len(s); i++ {
		if s[i] != t[i] {
			distance++
		}
	}
	return distance, nil
}

// HammingOrUnset is Hamming with a length mismatch mapped to Unset.
func HammingOrUnset(s, t string) int {
	d, err := Hamming(s, t)
	if err != nil {
		return Unset
	}
	return d
}
