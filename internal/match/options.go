// Package match decides whether two sequences match and assembles the
// record describing them.
//
// The Evaluator computes the cheap gate metric first and only fills in the
// other metrics, the alignment and its CIGAR encoding for pairs that pass the
// distance threshold. The Runner drives it over a reference list and a stream
// of query sequences.
package match

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aria-lang/seqmatch-go/internal/alignment"
)

var (
	// ErrNegativeDistance means MaxDistance was set below zero.
	ErrNegativeDistance = errors.New("max distance must be >= 0")
)

// FilterMethod selects the metric used to gate a pair.
type FilterMethod int

const (
	// Levenshtein gates on edit distance.
	Levenshtein FilterMethod = iota
	// Hamming gates on Hamming distance. Pairs of different length never pass
	// a threshold.
	Hamming
)

func (m FilterMethod) String() string {
	switch m {
	case Levenshtein:
		return "LD"
	case Hamming:
		return "HD"
	default:
		return "unknown"
	}
}

// ParseFilterMethod accepts "LD" or "HD" in any case.
func ParseFilterMethod(s string) (FilterMethod, error) {
	switch strings.ToUpper(s) {
	case "LD":
		return Levenshtein, nil
	case "HD":
		return Hamming, nil
	default:
		return 0, fmt.Errorf("unknown filter method %q (want LD or HD)", s)
	}
}

// AlignMode selects whether and how matching pairs are aligned.
type AlignMode int

const (
	AlignNone AlignMode = iota
	AlignGlobal
	AlignLocal
)

func (m AlignMode) String() string {
	switch m {
	case AlignNone:
		return "none"
	case AlignGlobal:
		return "global"
	case AlignLocal:
		return "local"
	default:
		return "unknown"
	}
}

// ParseAlignMode accepts "none", "global" or "local".
func ParseAlignMode(s string) (AlignMode, error) {
	switch strings.ToLower(s) {
	case "none", "":
		return AlignNone, nil
	case "global":
		return AlignGlobal, nil
	case "local":
		return AlignLocal, nil
	default:
		return 0, fmt.Errorf("unknown alignment mode %q (want none, global or local)", s)
	}
}

func (m AlignMode) alignmentType() alignment.AlignmentType {
	if m == AlignLocal {
		return alignment.Local
	}
	return alignment.Global
}

// Options configures an Evaluator.
type Options struct {
	Filter FilterMethod
	// MaxDistance is the largest gate distance that still matches. Nil
	// disables filtering.
	MaxDistance *int
	// SkipLevenshtein drops the edit distance when it is not the gate. A
	// Levenshtein gate is always computed.
	SkipLevenshtein bool
	SkipJaroWinkler bool
	Align           AlignMode
	// Scoring is used for alignments; nil means alignment.NUC44.
	Scoring *alignment.ScoringMatrix
}

// DefaultOptions gates on Levenshtein without a threshold and does not align.
func DefaultOptions() Options {
	return Options{Filter: Levenshtein, Align: AlignNone}
}

// Validate checks that the options are consistent.
func (o Options) Validate() error {
	if o.Filter != Levenshtein && o.Filter != Hamming {
		return fmt.Errorf("invalid filter method %d", o.Filter)
	}
	if o.MaxDistance != nil && *o.MaxDistance < 0 {
		return ErrNegativeDistance
	}
	if o.Align < AlignNone || o.Align > AlignLocal {
		return fmt.Errorf("invalid alignment mode %d", o.Align)
	}
	return nil
}

// MaxDistance returns a pointer to d, or nil when d is negative.
func MaxDistance(d int) *int {
	if d < 0 {
		return nil
	}
	return &d
}
