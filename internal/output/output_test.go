package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aria-lang/seqmatch-go/internal/alignment"
	"github.com/aria-lang/seqmatch-go/internal/cigar"
	"github.com/aria-lang/seqmatch-go/internal/match"
	"github.com/aria-lang/seqmatch-go/internal/sequence"
)

func evaluate(t *testing.T, opts match.Options, a, b sequence.Sequence, revcomp bool) *match.Record {
	t.Helper()
	e, err := match.NewEvaluator(opts)
	require.NoError(t, err)
	rec, ok, err := e.EvaluateStrands(a, b, revcomp)
	require.NoError(t, err)
	require.True(t, ok)
	return rec
}

func globalRecord(t *testing.T) *match.Record {
	return evaluate(t, match.Options{Align: match.AlignGlobal},
		sequence.New("ref1", "ACTGN"), sequence.New("read1", "ACTGA"), false)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("SAM")
	require.NoError(t, err)
	assert.Equal(t, SAM, f)

	f, err = ParseFormat("tab")
	require.NoError(t, err)
	assert.Equal(t, Tab, f)

	_, err = ParseFormat("bam")
	assert.Error(t, err)
}

func TestTags(t *testing.T) {
	tags := Tags(globalRecord(t))
	assert.Equal(t, []string{
		"NM:i:1",
		"AS:i:18",
		"XL:i:1",
		"XH:i:1",
		"XJ:f:0.9200",
		"XP:f:0.8000",
		"XR:Z:ACTGN",
		"XS:Z:ACTGA",
	}, tags)
}

func TestTagsOmitUnset(t *testing.T) {
	rec := evaluate(t, match.Options{Filter: match.Hamming, SkipLevenshtein: true, SkipJaroWinkler: true},
		sequence.New("ref1", "ACGT"), sequence.New("read1", "ACG"), false)

	assert.Equal(t, []string{"XR:Z:ACGT", "XS:Z:ACG"}, Tags(rec))
}

func TestToSAM(t *testing.T) {
	s, err := ToSAM(globalRecord(t))
	require.NoError(t, err)

	fields := strings.Split(s.String(), "\t")
	assert.Equal(t, []string{"read1", "0", "ref1", "1", "255", "5M", "*", "0", "0", "ACTGA", "*"}, fields[:11])
	assert.Len(t, fields, 19)
}

func TestToSAMReverse(t *testing.T) {
	rec := evaluate(t, match.Options{Align: match.AlignGlobal},
		sequence.New("ref1", "AAAACCCC"), sequence.New("read1", "GGGGTTTT"), true)

	s, err := ToSAM(rec)
	require.NoError(t, err)
	assert.Equal(t, FlagReverse, s.Flag)
	assert.Equal(t, "8M", s.CIGAR)
	assert.Equal(t, "AAAACCCC", s.Seq)
	assert.Equal(t, 1, s.Pos)
}

func TestToSAMLocalPosition(t *testing.T) {
	rec := evaluate(t, match.Options{Align: match.AlignLocal},
		sequence.New("ref1", "TTACGTTT"), sequence.New("read1", "GGACGTGG"), false)

	s, err := ToSAM(rec)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Pos)
	assert.Equal(t, "4M", s.CIGAR)
	assert.Equal(t, "ACGT", s.Seq)
}

func TestToSAMUnmapped(t *testing.T) {
	rec := evaluate(t, match.DefaultOptions(),
		sequence.New("ref1", "ACGT"), sequence.New("read1", "ACGA"), false)

	s, err := ToSAM(rec)
	require.NoError(t, err)
	assert.Equal(t, FlagUnmapped, s.Flag)
	assert.Equal(t, "*", s.RName)
	assert.Equal(t, 0, s.Pos)
	assert.Equal(t, "*", s.CIGAR)
	assert.Equal(t, "ACGA", s.Seq)
}

func TestToSAMRejectsEdgeDeletion(t *testing.T) {
	rec := globalRecord(t)
	rec.Encoding = &cigar.Encoding{
		Start: 0,
		Ops:   []cigar.Op{{Len: 1, Kind: cigar.Deletion}, {Len: 4, Kind: cigar.Match}},
		Read:  "ACTG",
	}

	_, err := ToSAM(rec)
	assert.ErrorIs(t, err, cigar.ErrEdgeDeletion)
}

func TestHeaderLines(t *testing.T) {
	lines := HeaderLines([]sequence.Sequence{
		sequence.New("chr1", "ACGTACGT"),
		sequence.New("chr2", "AC"),
	})
	assert.Equal(t, []string{
		"@HD\tVN:1.0",
		"@RG\tID:NA\tLB:NA\tSM:NA\tPL:NA\tPU:NA\tPG:NA",
		"@SQ\tSN:chr1\tLN:8",
		"@SQ\tSN:chr2\tLN:2",
	}, lines)
}

func TestFormatTab(t *testing.T) {
	assert.Equal(t, "ref1\tread1\t+\t5\t5\t1\t1\t0.9200\t18\tACTGN\tACTGA", FormatTab(globalRecord(t)))

	rec := evaluate(t, match.Options{SkipJaroWinkler: true},
		sequence.New("a", "ACGT"), sequence.New("b", "ACG"), false)
	assert.Equal(t, "a\tb\t+\t4\t3\t1\t-1\t-1\t-1\t*\t*", FormatTab(rec))
}

func TestParseTab(t *testing.T) {
	line := FormatTab(globalRecord(t))

	rec, err := ParseTab(line)
	require.NoError(t, err)
	assert.Equal(t, line, FormatTab(rec))
	assert.Equal(t, alignment.Global, rec.Alignment.AlignmentType)
	assert.Equal(t, "ACTGN", rec.Pair.A.Residues)
	assert.Equal(t, "5M", rec.Encoding.CIGAR())

	rec, err = ParseTab("a\tb\t-\t4\t3\t1\t-1\t-1\t-1\t*\t*")
	require.NoError(t, err)
	assert.Equal(t, match.Reverse, rec.Pair.Strand)
	assert.False(t, rec.Aligned())
	assert.False(t, rec.Distances.HasJaroWinkler())
}

func TestParseTabErrors(t *testing.T) {
	_, err := ParseTab("a\tb\t+")
	assert.Error(t, err)

	var pe *TabParseError
	_, err = ParseTab("a\tb\t+\tfive\t5\t1\t1\t0.9\t18\tACTGN\tACTGA")
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "len_A", pe.Column)

	_, err = ParseTab("a\tb\tx\t5\t5\t1\t1\t0.9\t18\tACTGN\tACTGA")
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "strand", pe.Column)

	_, err = ParseTab("a\tb\t+\t5\t5\t1\t1\t0.9\t18\tACTG\tACTGA")
	require.ErrorAs(t, err, &pe)
}

func TestNewWriter(t *testing.T) {
	rec := globalRecord(t)

	var buf bytes.Buffer
	w, err := NewWriter(Tab, &buf, nil)
	require.NoError(t, err)
	require.NoError(t, w.Write(rec))
	require.NoError(t, w.Flush())
	assert.Equal(t, TabHeader()+"\n"+FormatTab(rec)+"\n", buf.String())

	buf.Reset()
	w, err = NewWriter(SAM, &buf, []sequence.Sequence{rec.Pair.A})
	require.NoError(t, err)
	require.NoError(t, w.Write(rec))
	require.NoError(t, w.Flush())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "@SQ\tSN:ref1\tLN:5", lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "read1\t0\tref1\t1\t255\t5M"))
}

func TestConvertTabToSAM(t *testing.T) {
	rec := globalRecord(t)
	in := TabHeader() + "\n" + FormatTab(rec) + "\n\n"

	var out bytes.Buffer
	n, err := ConvertTabToSAM(strings.NewReader(in), &out, []sequence.Sequence{rec.Pair.A})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, HDLine, lines[0])

	want, err := ToSAM(rec)
	require.NoError(t, err)
	assert.Equal(t, want.String(), lines[3])
}

func TestConvertTabToSAMHeaderless(t *testing.T) {
	var out bytes.Buffer
	n, err := ConvertTabToSAM(strings.NewReader(FormatTab(globalRecord(t))), &out, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.False(t, strings.HasPrefix(out.String(), "@"))
}

func TestConvertTabToSAMBadLine(t *testing.T) {
	in := TabHeader() + "\nnot a row\n"
	_, err := ConvertTabToSAM(strings.NewReader(in), &bytes.Buffer{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}
