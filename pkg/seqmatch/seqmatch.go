// Package seqmatch provides a high-level API for comparing sequences.
//
// It exposes the distance metrics, pairwise alignment, SAM-style CIGAR
// encoding and the match evaluator through a small set of functions.
//
// Example usage:
//
//	a := seqmatch.NewSequence("ref", "ACTGN")
//	b := seqmatch.NewSequence("read", "ACTGA")
//
//	fmt.Println(seqmatch.Levenshtein(a.Residues, b.Residues)) // 1
//
//	aln, err := seqmatch.AlignGlobal(a.Residues, b.Residues)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	enc, _ := seqmatch.Encode(aln)
//	fmt.Println(aln.Format(), enc.CIGAR())
package seqmatch

import (
	"github.com/aria-lang/seqmatch-go/internal/alignment"
	"github.com/aria-lang/seqmatch-go/internal/cigar"
	"github.com/aria-lang/seqmatch-go/internal/distance"
	"github.com/aria-lang/seqmatch-go/internal/match"
	"github.com/aria-lang/seqmatch-go/internal/seqio"
	"github.com/aria-lang/seqmatch-go/internal/sequence"
)

// Re-export types for convenience
type (
	Sequence      = sequence.Sequence
	Alignment     = alignment.Alignment
	AlignmentType = alignment.AlignmentType
	ScoringMatrix = alignment.ScoringMatrix
	Encoding      = cigar.Encoding
	Distances     = distance.Set
	Options       = match.Options
	Record        = match.Record
	FilterMethod  = match.FilterMethod
	AlignMode     = match.AlignMode
	Strand        = match.Strand
)

// Constants
const (
	Global = alignment.Global
	Local  = alignment.Local

	Unset      = distance.Unset
	NoPosition = cigar.NoPosition
	GapFiller  = alignment.GapFiller
)

// NewSequence creates a named sequence.
func NewSequence(name, residues string) Sequence {
	return sequence.New(name, residues)
}

// ReverseComplement returns the reverse complement of residues.
func ReverseComplement(residues string) string {
	return sequence.ReverseComplement(residues)
}

// Levenshtein returns the edit distance between s and t.
func Levenshtein(s, t string) int {
	return distance.Levenshtein(s, t)
}

// Hamming returns the Hamming distance, or an error for unequal lengths.
func Hamming(s, t string) (int, error) {
	return distance.Hamming(s, t)
}

// JaroWinkler returns the Jaro-Winkler similarity of s and t.
func JaroWinkler(s, t string) float64 {
	return distance.JaroWinkler(s, t)
}

// ComputeDistances returns all three metrics; Hamming is Unset for unequal
// lengths.
func ComputeDistances(s, t string) Distances {
	return distance.Compute(s, t, distance.Options{})
}

// Align performs local alignment with the default scoring.
func Align(s, t string) (*Alignment, error) {
	return alignment.SmithWaterman(s, t, nil)
}

// AlignGlobal performs global alignment with the default scoring.
func AlignGlobal(s, t string) (*Alignment, error) {
	return alignment.NeedlemanWunsch(s, t, nil)
}

// AlignWithScoring aligns with the given method and scores.
func AlignWithScoring(s, t string, method AlignmentType, scoring *ScoringMatrix) (*Alignment, error) {
	return alignment.Align(s, t, method, scoring)
}

// DefaultScoring returns the NUC.4.4 based scoring used when none is given.
func DefaultScoring() *ScoringMatrix {
	return alignment.NUC44()
}

// Encode converts an alignment to its CIGAR encoding, taking the first
// aligned sequence as the reference.
func Encode(a *Alignment) (*Encoding, error) {
	return cigar.FromAlignment(a)
}

// Match evaluates b against a. With revcomp set the reverse complement of b
// is tried too and the better strand is returned.
func Match(a, b Sequence, opts Options, revcomp bool) (*Record, bool, error) {
	e, err := match.NewEvaluator(opts)
	if err != nil {
		return nil, false, err
	}
	return e.EvaluateStrands(a, b, revcomp)
}

// ReadFASTA reads sequences from a FASTA file, gzip-compressed or not.
// Use "-" for stdin.
func ReadFASTA(path string) ([]Sequence, error) {
	return seqio.ReadFile(path)
}

// Version is the release version of seqmatch.
const Version = "0.4.0"

// Info returns the program name and version.
func Info() string {
	return "seqmatch " + Version
}
