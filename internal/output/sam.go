package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aria-lang/seqmatch-go/internal/cigar"
	"github.com/aria-lang/seqmatch-go/internal/match"
	"github.com/aria-lang/seqmatch-go/internal/sequence"
)

// Fixed SAM header lines. The read group carries no information but keeps
// downstream tools that require one happy.
const (
	HDLine = "@HD\tVN:1.0"
	RGLine = "@RG\tID:NA\tLB:NA\tSM:NA\tPL:NA\tPU:NA\tPG:NA"
)

// SAM FLAG bits used here.
const (
	FlagUnmapped = 0x4
	FlagReverse  = 0x10
)

// MapQUnavailable is the SAM MAPQ value meaning "not computed".
const MapQUnavailable = 255

// SQLine returns the @SQ header line of one reference.
func SQLine(name string, length int) string {
	return "@SQ\tSN:" + name + "\tLN:" + strconv.Itoa(length)
}

// HeaderLines returns @HD, @RG and one @SQ line per reference.
func HeaderLines(refs []sequence.Sequence) []string {
	lines := make([]string, 0, len(refs)+2)
	lines = append(lines, HDLine, RGLine)
	for _, ref := range refs {
		lines = append(lines, SQLine(ref.Name, ref.Len()))
	}
	return lines
}

// SAMRecord is one alignment line. Mate fields are always unset.
type SAMRecord struct {
	QName string
	Flag  int
	RName string
	Pos   int // 1-based, 0 when unmapped
	MapQ  int
	CIGAR string
	Seq   string
	Qual  string
	Tags  []string
}

func (s *SAMRecord) String() string {
	fields := []string{
		s.QName,
		strconv.Itoa(s.Flag),
		s.RName,
		strconv.Itoa(s.Pos),
		strconv.Itoa(s.MapQ),
		s.CIGAR,
		"*", "0", "0",
		s.Seq,
		s.Qual,
	}
	fields = append(fields, s.Tags...)
	return strings.Join(fields, "\t")
}

// ToSAM converts r into a SAM line with B as the read and A as the
// reference. Records without a placeable alignment become unmapped reads.
func ToSAM(r *match.Record) (*SAMRecord, error) {
	s := &SAMRecord{
		QName: r.Pair.B.Name,
		MapQ:  MapQUnavailable,
		Qual:  "*",
		Tags:  Tags(r),
	}

	if r.Encoding == nil || !r.Encoding.Mapped() {
		s.Flag = FlagUnmapped
		s.RName = "*"
		s.CIGAR = "*"
		s.Seq = orStar(r.Pair.B.Residues)
		return s, nil
	}

	if err := cigar.Validate(r.Encoding.Ops); err != nil {
		return nil, fmt.Errorf("sam record %s: %w", r.Pair.B.Name, err)
	}

	if r.Pair.Strand == match.Reverse {
		s.Flag |= FlagReverse
	}
	s.RName = r.Pair.A.Name
	s.Pos = r.Position() + 1
	s.CIGAR = r.Encoding.CIGAR()
	s.Seq = orStar(r.Encoding.Read)
	return s, nil
}

// Tags returns the optional fields for r. Metrics that were not computed are
// left out.
//
//	NM:i alignment edit count   AS:i alignment score
//	XL:i Levenshtein            XH:i Hamming
//	XJ:f Jaro-Winkler           XP:f alignment identity
//	XR:Z sequence A             XS:Z sequence B
func Tags(r *match.Record) []string {
	var tags []string
	if r.Aligned() {
		tags = append(tags,
			"NM:i:"+strconv.Itoa(r.Alignment.EditCount()),
			"AS:i:"+strconv.Itoa(r.Alignment.Score),
		)
	}
	if r.Distances.HasLevenshtein() {
		tags = append(tags, "XL:i:"+strconv.Itoa(r.Distances.Levenshtein))
	}
	if r.Distances.HasHamming() {
		tags = append(tags, "XH:i:"+strconv.Itoa(r.Distances.Hamming))
	}
	if r.Distances.HasJaroWinkler() {
		tags = append(tags, "XJ:f:"+strconv.FormatFloat(r.Distances.JaroWinkler, 'f', 4, 64))
	}
	if r.Aligned() {
		tags = append(tags, "XP:f:"+strconv.FormatFloat(r.Alignment.Identity, 'f', 4, 64))
	}
	if r.Pair.A.Residues != "" {
		tags = append(tags, "XR:Z:"+r.Pair.A.Residues)
	}
	if r.Pair.B.Residues != "" {
		tags = append(tags, "XS:Z:"+r.Pair.B.Residues)
	}
	return tags
}

func orStar(s string) string {
	if s == "" {
		return "*"
	}
	return s
}
