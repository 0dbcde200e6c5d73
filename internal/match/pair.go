package match

import (
	"fmt"

	"github.com/aria-lang/seqmatch-go/internal/alignment"
	"github.com/aria-lang/seqmatch-go/internal/cigar"
	"github.com/aria-lang/seqmatch-go/internal/distance"
	"github.com/aria-lang/seqmatch-go/internal/sequence"
)

// Strand records whether B was reverse-complemented before comparison.
type Strand int

const (
	Forward Strand = iota
	Reverse
)

func (s Strand) String() string {
	if s == Reverse {
		return "-"
	}
	return "+"
}

// ParseStrand accepts "+" or "-".
func ParseStrand(s string) (Strand, error) {
	switch s {
	case "+":
		return Forward, nil
	case "-":
		return Reverse, nil
	default:
		return 0, fmt.Errorf("invalid strand %q", s)
	}
}

// Pair is one comparison: A is the reference, B the query as compared.
type Pair struct {
	A      sequence.Sequence
	B      sequence.Sequence
	Strand Strand
}

// NewPair builds the pair for the given strand, reverse-complementing b when
// strand is Reverse.
func NewPair(a, b sequence.Sequence, strand Strand) Pair {
	if strand == Reverse {
		b = b.ReverseComplement()
	}
	return Pair{A: a, B: b, Strand: strand}
}

// Record is the complete result for a matching pair. Alignment and Encoding
// are nil when no alignment was requested.
type Record struct {
	Pair      Pair
	Distances distance.Set
	Alignment *alignment.Alignment
	Encoding  *cigar.Encoding
}

// Aligned reports whether the record carries an alignment.
func (r *Record) Aligned() bool {
	return r.Alignment != nil
}

// Position returns the 0-based offset of the read on A, or cigar.NoPosition.
// For local alignments the offset of the aligned region within A is added.
func (r *Record) Position() int {
	if r.Encoding == nil || r.Encoding.Start == cigar.NoPosition {
		return cigar.NoPosition
	}
	return r.Alignment.Start1 + r.Encoding.Start
}

func (r *Record) String() string {
	return fmt.Sprintf("Match { a: %s, b: %s, strand: %s, %s }",
		r.Pair.A.Name, r.Pair.B.Name, r.Pair.Strand, r.Distances)
}
