// Package alignment provides pairwise sequence alignment.
//
// NeedlemanWunsch (global) and SmithWaterman (local) use affine gap
// penalties (Gotoh) over preallocated row-major score arenas. Traceback ties
// are always resolved diagonal first, then up, then left, so a given input
// aligns the same way on every run.
package alignment

import (
	"fmt"
	"strings"
)

// AlignDirection represents the traceback direction in the alignment matrix.
// It doubles as the name of the DP state a cell belongs to.
type AlignDirection uint8

const (
	// Stop represents the end of alignment (local only)
	Stop AlignDirection = iota
	// Diagonal represents a match or mismatch
	Diagonal
	// Up represents a gap in sequence 2
	Up
	// Left represents a gap in sequence 1
	Left
)

// AlignmentType represents the type of alignment.
type AlignmentType int

const (
	// Local represents Smith-Waterman local alignment
	Local AlignmentType = iota
	// Global represents Needleman-Wunsch global alignment
	Global
)

func (t AlignmentType) String() string {
	switch t {
	case Local:
		return "local"
	case Global:
		return "global"
	default:
		return "unknown"
	}
}

// ParseAlignmentType parses "global" or "local".
func ParseAlignmentType(s string) (AlignmentType, error) {
	switch strings.ToLower(s) {
	case "global":
		return Global, nil
	case "local":
		return Local, nil
	default:
		return 0, fmt.Errorf("unknown alignment type %q (want global or local)", s)
	}
}

// ScoringMatrix represents the scoring parameters for alignment.
//
// A gap of length k scores GapOpenPenalty + (k-1)*GapExtendPenalty, so equal
// open and extend penalties give a linear gap model. When Nucleotide is set,
// pairs of IUPAC nucleotide codes are scored from the NUC.4.4 table and only
// other residues fall back to MatchScore / MismatchPenalty.
type ScoringMatrix struct {
	MatchScore       int
	MismatchPenalty  int
	GapOpenPenalty   int
	GapExtendPenalty int
	Nucleotide       bool
}

// NewScoringMatrix creates a new scoring matrix with validation.
func NewScoringMatrix(match, mismatch, gapOpen, gapExtend int) (*ScoringMatrix, error) {
	if match <= 0 {
		return nil, fmt.Errorf("match score must be positive")
	}
	if mismatch > 0 {
		return nil, fmt.Errorf("mismatch penalty should be <= 0")
	}
	if gapOpen > 0 {
		return nil, fmt.Errorf("gap open penalty should be <= 0")
	}
	if gapExtend > 0 {
		return nil, fmt.Errorf("gap extend penalty should be <= 0")
	}

	return &ScoringMatrix{
		MatchScore:       match,
		MismatchPenalty:  mismatch,
		GapOpenPenalty:   gapOpen,
		GapExtendPenalty: gapExtend,
	}, nil
}

// NUC44 returns the default nucleotide scoring: the NUC.4.4 table, 5 / -4 for
// residues outside it, gap open -10 and gap extend -1.
func NUC44() *ScoringMatrix {
	return &ScoringMatrix{
		MatchScore:       5,
		MismatchPenalty:  -4,
		GapOpenPenalty:   -10,
		GapExtendPenalty: -1,
		Nucleotide:       true,
	}
}

// Simple creates a scoring matrix with a linear gap penalty and no
// nucleotide table.
func Simple(match, mismatch, gap int) (*ScoringMatrix, error) {
	return NewScoringMatrix(match, mismatch, gap, gap)
}

// Score returns the score for aligning two residues.
func (s *ScoringMatrix) Score(a, b byte) int {
	if s.Nucleotide {
		ia, ib := nuc44Index[a], nuc44Index[b]
		if ia >= 0 && ib >= 0 {
			return int(nuc44[ia][ib])
		}
	}
	if a == b {
		return s.MatchScore
	}
	return s.MismatchPenalty
}

// GapCost returns the score of a gap of the given length.
func (s *ScoringMatrix) GapCost(length int) int {
	if length <= 0 {
		return 0
	}
	return s.GapOpenPenalty + (length-1)*s.GapExtendPenalty
}

// String returns a string representation of the scoring matrix.
func (s *ScoringMatrix) String() string {
	return fmt.Sprintf("ScoringMatrix { match: %d, mismatch: %d, gap_open: %d, gap_extend: %d, nucleotide: %t }",
		s.MatchScore, s.MismatchPenalty, s.GapOpenPenalty, s.GapExtendPenalty, s.Nucleotide)
}

const nuc44Alphabet = "ATGCSWRYKMBVHDN"

var nuc44 = [15][15]int8{
	//A   T   G   C   S   W   R   Y   K   M   B   V   H   D   N
	{5, -4, -4, -4, -4, 1, 1, -4, -4, 1, -4, -1, -1, -1, -2},     // A
	{-4, 5, -4, -4, -4, 1, -4, 1, 1, -4, -1, -4, -1, -1, -2},     // T
	{-4, -4, 5, -4, 1, -4, 1, -4, 1, -4, -1, -1, -4, -1, -2},     // G
	{-4, -4, -4, 5, 1, -4, -4, 1, -4, 1, -1, -1, -1, -4, -2},     // C
	{-4, -4, 1, 1, -1, -4, -2, -2, -2, -2, -1, -1, -3, -3, -1},   // S
	{1, 1, -4, -4, -4, -1, -2, -2, -2, -2, -3, -3, -1, -1, -1},   // W
	{1, -4, 1, -4, -2, -2, -1, -4, -2, -2, -3, -1, -3, -1, -1},   // R
	{-4, 1, -4, 1, -2, -2, -4, -1, -2, -2, -1, -3, -1, -3, -1},   // Y
	{-4, 1, 1, -4, -2, -2, -2, -2, -1, -4, -1, -3, -3, -1, -1},   // K
	{1, -4, -4, 1, -2, -2, -2, -2, -4, -1, -3, -1, -1, -3, -1},   // M
	{-4, -1, -1, -1, -1, -3, -3, -1, -1, -3, -1, -2, -2, -2, -1}, // B
	{-1, -4, -1, -1, -1, -3, -1, -3, -3, -1, -2, -1, -2, -2, -1}, // V
	{-1, -1, -4, -1, -3, -1, -3, -1, -3, -1, -2, -2, -1, -2, -1}, // H
	{-1, -1, -1, -4, -3, -1, -1, -3, -1, -3, -2, -2, -2, -1, -1}, // D
	{-2, -2, -2, -2, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1}, // N
}

// nuc44Index maps a residue byte (either case) to its NUC.4.4 row, or -1.
var nuc44Index = func() [256]int8 {
	var idx [256]int8
	for i := range idx {
		idx[i] = -1
	}
	for i := 0; i < len(nuc44Alphabet); i++ {
		c := nuc44Alphabet[i]
		idx[c] = int8(i)
		idx[c+'a'-'A'] = int8(i)
	}
	idx['U'] = idx['T']
	idx['u'] = idx['T']
	return idx
}()
