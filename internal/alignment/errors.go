package alignment

import "fmt"

// GapCollisionError is returned when an input sequence already contains the
// gap filler, which would make the aligned strings ambiguous.
type GapCollisionError struct {
	Sequence int // 1 or 2
	Position int
}

func (e *GapCollisionError) Error() string {
	return fmt.Sprintf("sequence %d contains gap filler '%c' at position %d", e.Sequence, GapFiller, e.Position)
}

func checkGapFiller(seq1, seq2 string) error {
	for n, s := range [2]string{seq1, seq2} {
		for i := 0; i < len(s); i++ {
			if s[i] == GapFiller {
				return &GapCollisionError{Sequence: n + 1, Position: i}
			}
		}
	}
	return nil
}
