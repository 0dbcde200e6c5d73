package match

import (
	"fmt"

	"github.com/aria-lang/seqmatch-go/internal/alignment"
	"github.com/aria-lang/seqmatch-go/internal/cigar"
	"github.com/aria-lang/seqmatch-go/internal/distance"
	"github.com/aria-lang/seqmatch-go/internal/sequence"
)

// Evaluator applies Options to sequence pairs. It holds no mutable state and
// may be shared between goroutines.
type Evaluator struct {
	opts Options
}

// NewEvaluator validates opts and returns an Evaluator.
func NewEvaluator(opts Options) (*Evaluator, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.Scoring == nil {
		opts.Scoring = alignment.NUC44()
	}
	return &Evaluator{opts: opts}, nil
}

// Options returns the evaluator's options.
func (e *Evaluator) Options() Options {
	return e.opts
}

// Evaluate scores p. It returns false when the gate distance is above
// MaxDistance, or undefined while a threshold is set; no further work is
// done for such pairs.
func (e *Evaluator) Evaluate(p Pair) (*Record, bool, error) {
	a, b := p.A.Residues, p.B.Residues
	set := distance.NewSet()

	var gate int
	switch e.opts.Filter {
	case Hamming:
		gate = distance.HammingOrUnset(a, b)
		set.Hamming = gate
	default:
		gate = distance.Levenshtein(a, b)
		set.Levenshtein = gate
	}

	if limit := e.opts.MaxDistance; limit != nil && (gate == distance.Unset || gate > *limit) {
		return nil, false, nil
	}

	if e.opts.Filter != Levenshtein && !e.opts.SkipLevenshtein {
		set.Levenshtein = distance.Levenshtein(a, b)
	}
	if e.opts.Filter != Hamming {
		set.Hamming = distance.HammingOrUnset(a, b)
	}
	if !e.opts.SkipJaroWinkler {
		set.JaroWinkler = distance.JaroWinkler(a, b)
	}

	rec := &Record{Pair: p, Distances: set}
	if e.opts.Align == AlignNone {
		return rec, true, nil
	}

	aln, err := alignment.Align(a, b, e.opts.Align.alignmentType(), e.opts.Scoring)
	if err != nil {
		return nil, false, fmt.Errorf("align %s against %s: %w", p.B.Name, p.A.Name, err)
	}
	enc, err := cigar.FromAlignment(aln)
	if err != nil {
		return nil, false, fmt.Errorf("encode %s against %s: %w", p.B.Name, p.A.Name, err)
	}
	rec.Alignment = aln
	rec.Encoding = enc

	return rec, true, nil
}

// EvaluateStrands evaluates b against a on the forward strand and, when
// revcomp is set, on the reverse complement, and returns the better record.
func (e *Evaluator) EvaluateStrands(a, b sequence.Sequence, revcomp bool) (*Record, bool, error) {
	fwd, fwdOK, err := e.Evaluate(NewPair(a, b, Forward))
	if err != nil {
		return nil, false, err
	}
	if !revcomp {
		return fwd, fwdOK, nil
	}

	rev, revOK, err := e.Evaluate(NewPair(a, b, Reverse))
	if err != nil {
		return nil, false, err
	}

	switch {
	case fwdOK && revOK:
		return e.Better(fwd, rev), true, nil
	case fwdOK:
		return fwd, true, nil
	case revOK:
		return rev, true, nil
	default:
		return nil, false, nil
	}
}

// Better picks between two records of the same pair: lower gate distance
// first, then higher alignment score. On a full tie x is returned, so callers
// pass the forward strand first.
func (e *Evaluator) Better(x, y *Record) *Record {
	if x == nil {
		return y
	}
	if y == nil {
		return x
	}

	dx, dy := e.gateDistance(x), e.gateDistance(y)
	if dx != dy {
		if dx == distance.Unset {
			return y
		}
		if dy == distance.Unset || dx < dy {
			return x
		}
		return y
	}

	if x.Aligned() && y.Aligned() && y.Alignment.Score > x.Alignment.Score {
		return y
	}
	return x
}

func (e *Evaluator) gateDistance(r *Record) int {
	if e.opts.Filter == Hamming {
		return r.Distances.Hamming
	}
	return r.Distances.Levenshtein
}
