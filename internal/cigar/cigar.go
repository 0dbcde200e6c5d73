// Package cigar converts a gapped pairwise alignment into SAM positional
// notation: a run-length operation string, a start offset on the reference
// and the de-gapped read.
//
// The reference axis is the first aligned string and the query (read) axis
// the second. A column is M when both axes carry a residue (mismatches
// included), I when only the query does and D when only the reference does.
// SAM forbids a D run at either end of a CIGAR, so Encode trims those and
// validates the result.
package cigar

import (
	"strconv"
	"strings"

	"github.com/aria-lang/seqmatch-go/internal/alignment"
)

// NoPosition is the start offset of an alignment that has no reference
// coordinate, i.e. one axis is nothing but gap filler.
const NoPosition = -1

// Kind is a CIGAR operation code.
type Kind byte

const (
	Match     Kind = 'M'
	Insertion Kind = 'I'
	Deletion  Kind = 'D'
)

func (k Kind) String() string {
	return string(k)
}

// consumesRef reports whether the operation advances along the reference.
func (k Kind) consumesRef() bool {
	return k == Match || k == Deletion
}

// consumesQuery reports whether the operation advances along the read.
func (k Kind) consumesQuery() bool {
	return k == Match || k == Insertion
}

// Op is a single run of identical column kinds.
type Op struct {
	Len  int
	Kind Kind
}

func (o Op) String() string {
	return strconv.Itoa(o.Len) + string(o.Kind)
}

// Encoding is the positional form of one alignment.
type Encoding struct {
	// Start is the 0-based offset on the reference axis, or NoPosition.
	Start int
	Ops   []Op
	// Read is the query axis with gap filler removed.
	Read string
}

// Mapped reports whether the encoding places the read on the reference.
func (e *Encoding) Mapped() bool {
	return e.Start != NoPosition && len(e.Ops) > 0
}

// CIGAR returns the operation string, or "*" when there are no operations.
func (e *Encoding) CIGAR() string {
	if len(e.Ops) == 0 {
		return "*"
	}
	return String(e.Ops)
}

// Classify labels every alignment column. Both strings must have the same
// length and no column may be a gap on both axes.
func Classify(ref, query string) ([]Kind, error) {
	if len(ref) != len(query) {
		return nil, &LengthMismatchError{Ref: len(ref), Query: len(query)}
	}

	kinds := make([]Kind, len(ref))
	for i := 0; i < len(ref); i++ {
		refGap := ref[i] == alignment.GapFiller
		queryGap := query[i] == alignment.GapFiller
		switch {
		case refGap && queryGap:
			return nil, &BothGapError{Position: i}
		case refGap:
			kinds[i] = Insertion
		case queryGap:
			kinds[i] = Deletion
		default:
			kinds[i] = Match
		}
	}
	return kinds, nil
}

// RunLength collapses consecutive identical kinds into operations.
func RunLength(kinds []Kind) []Op {
	var ops []Op
	for _, k := range kinds {
		if n := len(ops); n > 0 && ops[n-1].Kind == k {
			ops[n-1].Len++
			continue
		}
		ops = append(ops, Op{Len: 1, Kind: k})
	}
	return ops
}

// Trim drops a leading and a trailing deletion run. Edge insertions are kept.
func Trim(ops []Op) []Op {
	if len(ops) > 0 && ops[0].Kind == Deletion {
		ops = ops[1:]
	}
	if n := len(ops); n > 0 && ops[n-1].Kind == Deletion {
		ops = ops[:n-1]
	}
	return ops
}

// Validate checks the structural rules SAM places on a CIGAR. An empty
// operation list is valid and means no alignment.
func Validate(ops []Op) error {
	for i, op := range ops {
		if op.Len < 1 {
			return &OpError{Index: i, Op: op, Err: ErrZeroLength}
		}
		switch op.Kind {
		case Match, Insertion, Deletion:
		default:
			return &OpError{Index: i, Op: op, Err: ErrUnknownKind}
		}
	}
	if n := len(ops); n > 0 {
		if ops[0].Kind == Deletion {
			return &OpError{Index: 0, Op: ops[0], Err: ErrEdgeDeletion}
		}
		if ops[n-1].Kind == Deletion {
			return &OpError{Index: n - 1, Op: ops[n-1], Err: ErrEdgeDeletion}
		}
	}
	return nil
}

// String joins the operations, e.g. "3M1D1M". It returns "" for no ops.
func String(ops []Op) string {
	var sb strings.Builder
	for _, op := range ops {
		sb.WriteString(strconv.Itoa(op.Len))
		sb.WriteByte(byte(op.Kind))
	}
	return sb.String()
}

// Parse reads an operation string written by String. "*" and "" parse to no
// operations. The result is not validated.
func Parse(s string) ([]Op, error) {
	if s == "" || s == "*" {
		return nil, nil
	}

	var ops []Op
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' {
			continue
		}
		if i == start {
			return nil, &ParseError{Input: s, Offset: i}
		}
		n, err := strconv.Atoi(s[start:i])
		if err != nil {
			return nil, &ParseError{Input: s, Offset: start}
		}
		k := Kind(c)
		if k != Match && k != Insertion && k != Deletion {
			return nil, &ParseError{Input: s, Offset: i}
		}
		ops = append(ops, Op{Len: n, Kind: k})
		start = i + 1
	}
	if start != len(s) {
		return nil, &ParseError{Input: s, Offset: start}
	}
	return ops, nil
}

// RefLength returns the number of reference residues the operations span.
func RefLength(ops []Op) int {
	n := 0
	for _, op := range ops {
		if op.Kind.consumesRef() {
			n += op.Len
		}
	}
	return n
}

// QueryLength returns the number of read residues the operations span.
func QueryLength(ops []Op) int {
	n := 0
	for _, op := range ops {
		if op.Kind.consumesQuery() {
			n += op.Len
		}
	}
	return n
}

// StartOffset returns the number of gap fillers before the first residue of
// the query axis. It returns NoPosition when either axis has no residue.
func StartOffset(ref, query string) int {
	if !hasResidue(ref) {
		return NoPosition
	}
	for i := 0; i < len(query); i++ {
		if query[i] != alignment.GapFiller {
			return i
		}
	}
	return NoPosition
}

// Degap removes every gap filler from s.
func Degap(s string) string {
	return alignment.Degap(s)
}

// Encode classifies, run-length encodes and trims the alignment of query
// against ref, then validates the result.
func Encode(ref, query string) (*Encoding, error) {
	kinds, err := Classify(ref, query)
	if err != nil {
		return nil, err
	}

	ops := Trim(RunLength(kinds))
	if err := Validate(ops); err != nil {
		return nil, err
	}

	return &Encoding{
		Start: StartOffset(ref, query),
		Ops:   ops,
		Read:  Degap(query),
	}, nil
}

// FromAlignment encodes a with its first sequence as the reference.
func FromAlignment(a *alignment.Alignment) (*Encoding, error) {
	return Encode(a.AlignedSeq1, a.AlignedSeq2)
}

func hasResidue(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return r != alignment.GapFiller }) >= 0
}
