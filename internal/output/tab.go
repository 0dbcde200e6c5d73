package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aria-lang/seqmatch-go/internal/alignment"
	"github.com/aria-lang/seqmatch-go/internal/cigar"
	"github.com/aria-lang/seqmatch-go/internal/distance"
	"github.com/aria-lang/seqmatch-go/internal/match"
	"github.com/aria-lang/seqmatch-go/internal/sequence"
)

// TabColumns are the tab format column names in order.
var TabColumns = []string{
	"name_A", "name_B", "strand", "len_A", "len_B",
	"LD", "HD", "JWD", "aln_score", "aln_A", "aln_B",
}

// missing is written for an absent alignment string.
const missing = "*"

// TabHeader returns the header row.
func TabHeader() string {
	return strings.Join(TabColumns, "\t")
}

// IsTabHeader reports whether line is a tab header row.
func IsTabHeader(line string) bool {
	return strings.HasPrefix(line, strings.Join(TabColumns[:3], "\t"))
}

// FormatTab renders r as one row. Unset metrics are written as -1; without an
// alignment the score is -1 and both aligned strings are "*".
func FormatTab(r *match.Record) string {
	score, alnA, alnB := strconv.Itoa(distance.Unset), missing, missing
	if r.Aligned() {
		score = strconv.Itoa(r.Alignment.Score)
		alnA, alnB = r.Alignment.AlignedSeq1, r.Alignment.AlignedSeq2
		if alnA == "" {
			alnA, alnB = missing, missing
		}
	}

	fields := []string{
		r.Pair.A.Name,
		r.Pair.B.Name,
		r.Pair.Strand.String(),
		strconv.Itoa(r.Pair.A.Len()),
		strconv.Itoa(r.Pair.B.Len()),
		strconv.Itoa(r.Distances.Levenshtein),
		strconv.Itoa(r.Distances.Hamming),
		formatJWD(r.Distances.JaroWinkler),
		score,
		alnA,
		alnB,
	}
	return strings.Join(fields, "\t")
}

func formatJWD(v float64) string {
	if v == distance.Unset {
		return strconv.Itoa(distance.Unset)
	}
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// TabParseError reports a malformed tab row.
type TabParseError struct {
	Column string
	Value  string
	Err    error
}

func (e *TabParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("tab column %s: invalid value %q: %v", e.Column, e.Value, e.Err)
	}
	return fmt.Sprintf("tab column %s: invalid value %q", e.Column, e.Value)
}

func (e *TabParseError) Unwrap() error { return e.Err }

// ParseTab reads a row written by FormatTab back into a record.
//
// The row does not carry the raw sequences, so they are rebuilt from the
// aligned strings when present. An alignment whose de-gapped lengths equal
// len_A and len_B is taken as global, otherwise as local with an unknown
// offset of 0.
func ParseTab(line string) (*match.Record, error) {
	fields := strings.Split(strings.TrimRight(line, "\r\n"), "\t")
	if len(fields) != len(TabColumns) {
		return nil, fmt.Errorf("tab row has %d columns, want %d", len(fields), len(TabColumns))
	}

	ints := make(map[string]int, 5)
	for _, i := range []int{3, 4, 5, 6, 8} {
		v, err := strconv.Atoi(fields[i])
		if err != nil {
			return nil, &TabParseError{Column: TabColumns[i], Value: fields[i], Err: err}
		}
		ints[TabColumns[i]] = v
	}

	strand, err := match.ParseStrand(fields[2])
	if err != nil {
		return nil, &TabParseError{Column: "strand", Value: fields[2], Err: err}
	}

	jwd, err := strconv.ParseFloat(fields[7], 64)
	if err != nil {
		return nil, &TabParseError{Column: "JWD", Value: fields[7], Err: err}
	}

	rec := &match.Record{
		Pair: match.Pair{
			A:      sequence.Sequence{Name: fields[0]},
			B:      sequence.Sequence{Name: fields[1]},
			Strand: strand,
		},
		Distances: distance.Set{
			Levenshtein: ints["LD"],
			Hamming:     ints["HD"],
			JaroWinkler: jwd,
		},
	}

	alnA, alnB := fields[9], fields[10]
	if alnA == missing || alnB == missing {
		return rec, nil
	}

	kind := alignment.Local
	rec.Pair.A.Residues = alignment.Degap(alnA)
	rec.Pair.B.Residues = alignment.Degap(alnB)
	if len(rec.Pair.A.Residues) == ints["len_A"] && len(rec.Pair.B.Residues) == ints["len_B"] {
		kind = alignment.Global
	}

	aln, err := alignment.NewAlignment(alnA, alnB, ints["aln_score"], kind)
	if err != nil {
		return nil, &TabParseError{Column: "aln_A", Value: alnA, Err: err}
	}
	enc, err := cigar.FromAlignment(aln)
	if err != nil {
		return nil, &TabParseError{Column: "aln_B", Value: alnB, Err: err}
	}
	rec.Alignment = aln
	rec.Encoding = enc
	return rec, nil
}
