package alignment

import (
	"fmt"
	"strings"
)

// GapFiller marks an aligned position with no residue. Input sequences must
// not contain it.
const GapFiller = '-'

// Alignment represents the result of an alignment between two sequences.
//
// AlignedSeq1 and AlignedSeq2 always have equal length. Removing GapFiller
// from them yields seq1[Start1:End1] and seq2[Start2:End2]; for a global
// alignment those ranges cover the whole inputs.
type Alignment struct {
	AlignedSeq1   string
	AlignedSeq2   string
	Score         int
	Start1        int
	End1          int
	Start2        int
	End2          int
	AlignmentType AlignmentType
	Identity      float64
}

// NewAlignment creates a new alignment result spanning both aligned strings.
func NewAlignment(aligned1, aligned2 string, score int, alignType AlignmentType) (*Alignment, error) {
	return NewAlignmentWithPositions(aligned1, aligned2, score,
		0, residueCount(aligned1), 0, residueCount(aligned2), alignType)
}

// NewAlignmentWithPositions creates an alignment with position information.
func NewAlignmentWithPositions(aligned1, aligned2 string, score int,
	start1, end1, start2, end2 int, alignType AlignmentType) (*Alignment, error) {
	if len(aligned1) != len(aligned2) {
		return nil, fmt.Errorf("aligned sequences must have equal length")
	}

	a := &Alignment{
		AlignedSeq1:   aligned1,
		AlignedSeq2:   aligned2,
		Score:         score,
		Start1:        start1,
		End1:          end1,
		Start2:        start2,
		End2:          end2,
		AlignmentType: alignType,
	}
	a.Identity = a.calculateIdentity()
	return a, nil
}

// calculateIdentity calculates the fraction of identical, ungapped columns.
func (a *Alignment) calculateIdentity() float64 {
	if len(a.AlignedSeq1) == 0 {
		return 0.0
	}
	return float64(a.MatchCount()) / float64(len(a.AlignedSeq1))
}

// Length returns the length of the alignment.
func (a *Alignment) Length() int {
	return len(a.AlignedSeq1)
}

// MatchCount returns the number of identical columns.
func (a *Alignment) MatchCount() int {
	count := 0
	for i := 0; i < len(a.AlignedSeq1); i++ {
		if a.AlignedSeq1[i] == a.AlignedSeq2[i] && a.AlignedSeq1[i] != GapFiller {
			count++
		}
	}
	return count
}

// MismatchCount returns the number of ungapped columns with different residues.
func (a *Alignment) MismatchCount() int {
	count := 0
	for i := 0; i < len(a.AlignedSeq1); i++ {
		if a.AlignedSeq1[i] != a.AlignedSeq2[i] &&
			a.AlignedSeq1[i] != GapFiller && a.AlignedSeq2[i] != GapFiller {
			count++
		}
	}
	return count
}

// GapsSeq1 returns the number of gaps in sequence 1.
func (a *Alignment) GapsSeq1() int {
	return strings.Count(a.AlignedSeq1, string(GapFiller))
}

// GapsSeq2 returns the number of gaps in sequence 2.
func (a *Alignment) GapsSeq2() int {
	return strings.Count(a.AlignedSeq2, string(GapFiller))
}

// TotalGaps returns the total number of gaps.
func (a *Alignment) TotalGaps() int {
	return a.GapsSeq1() + a.GapsSeq2()
}

// EditCount returns mismatches plus gap columns, the SAM NM value.
func (a *Alignment) EditCount() int {
	return a.MismatchCount() + a.TotalGaps()
}

// GapOpenings counts the number of gap openings.
func (a *Alignment) GapOpenings() int {
	openings := 0
	inGap1, inGap2 := false, false

	for i := 0; i < len(a.AlignedSeq1); i++ {
		if a.AlignedSeq1[i] == GapFiller && !inGap1 {
			openings++
			inGap1 = true
		} else if a.AlignedSeq1[i] != GapFiller {
			inGap1 = false
		}

		if a.AlignedSeq2[i] == GapFiller && !inGap2 {
			openings++
			inGap2 = true
		} else if a.AlignedSeq2[i] != GapFiller {
			inGap2 = false
		}
	}

	return openings
}

// Format returns a formatted string representation of the alignment.
func (a *Alignment) Format() string {
	var matchLine strings.Builder
	for i := 0; i < len(a.AlignedSeq1); i++ {
		if a.AlignedSeq1[i] == a.AlignedSeq2[i] && a.AlignedSeq1[i] != GapFiller {
			matchLine.WriteByte('|')
		} else if a.AlignedSeq1[i] == GapFiller || a.AlignedSeq2[i] == GapFiller {
			matchLine.WriteByte(' ')
		} else {
			matchLine.WriteByte('.')
		}
	}

	return fmt.Sprintf("Seq1: %s\n      %s\nSeq2: %s\nScore: %d\nIdentity: %.1f%%",
		a.AlignedSeq1, matchLine.String(), a.AlignedSeq2,
		a.Score, a.Identity*100)
}

func (a *Alignment) String() string {
	return fmt.Sprintf("Alignment { type: %s, score: %d, identity: %.1f%%, length: %d }",
		a.AlignmentType, a.Score, a.Identity*100, a.Length())
}

// Align dispatches to NeedlemanWunsch or SmithWaterman. A nil scoring uses
// NUC44.
func Align(seq1, seq2 string, method AlignmentType, scoring *ScoringMatrix) (*Alignment, error) {
	switch method {
	case Global:
		return NeedlemanWunsch(seq1, seq2, scoring)
	case Local:
		return SmithWaterman(seq1, seq2, scoring)
	default:
		return nil, fmt.Errorf("unsupported alignment type %d", method)
	}
}

// Degap removes every GapFiller from s.
func Degap(s string) string {
	return strings.ReplaceAll(s, string(GapFiller), "")
}

func residueCount(aligned string) int {
	return len(aligned) - strings.Count(aligned, string(GapFiller))
}

// reverseBytes reverses b in place and returns it as a string.
func reverseBytes(b []byte) string {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
