package alignment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoringMatrix(t *testing.T) {
	t.Run("NUC44", func(t *testing.T) {
		s := NUC44()
		assert.Equal(t, 5, s.MatchScore)
		assert.Equal(t, -4, s.MismatchPenalty)
		assert.Equal(t, -10, s.GapOpenPenalty)
		assert.Equal(t, -1, s.GapExtendPenalty)
		assert.True(t, s.Nucleotide)
	})

	t.Run("Score", func(t *testing.T) {
		s := NUC44()
		assert.Equal(t, 5, s.Score('A', 'A'))
		assert.Equal(t, 5, s.Score('a', 'A'))
		assert.Equal(t, -4, s.Score('A', 'T'))
		assert.Equal(t, -2, s.Score('A', 'N'))
		assert.Equal(t, -1, s.Score('N', 'N'))
		assert.Equal(t, 1, s.Score('A', 'R'))
		assert.Equal(t, 5, s.Score('T', 'U'))
		assert.Equal(t, 5, s.Score('X', 'X'))
		assert.Equal(t, -4, s.Score('X', 'Z'))
	})

	t.Run("NUC44 table is symmetric", func(t *testing.T) {
		for i := range nuc44 {
			for j := range nuc44 {
				assert.Equal(t, nuc44[i][j], nuc44[j][i], "%c/%c", nuc44Alphabet[i], nuc44Alphabet[j])
			}
		}
	})

	t.Run("GapCost", func(t *testing.T) {
		s := NUC44()
		assert.Equal(t, 0, s.GapCost(0))
		assert.Equal(t, -10, s.GapCost(1))
		assert.Equal(t, -12, s.GapCost(3))
	})

	t.Run("Simple is linear", func(t *testing.T) {
		s, err := Simple(1, -1, -2)
		require.NoError(t, err)
		assert.False(t, s.Nucleotide)
		assert.Equal(t, -6, s.GapCost(3))
		assert.Equal(t, -1, s.Score('A', 'N'))
	})

	t.Run("Invalid scoring matrix", func(t *testing.T) {
		_, err := NewScoringMatrix(0, -1, -2, -1)
		require.Error(t, err)

		_, err = NewScoringMatrix(2, 1, -2, -1)
		require.Error(t, err)

		_, err = NewScoringMatrix(2, -1, 2, -1)
		require.Error(t, err)

		_, err = NewScoringMatrix(2, -1, -2, 1)
		require.Error(t, err)
	})
}

func TestParseAlignmentType(t *testing.T) {
	got, err := ParseAlignmentType("global")
	require.NoError(t, err)
	assert.Equal(t, Global, got)

	got, err = ParseAlignmentType("LOCAL")
	require.NoError(t, err)
	assert.Equal(t, Local, got)

	_, err = ParseAlignmentType("semi")
	require.Error(t, err)
}

func TestNeedlemanWunsch(t *testing.T) {
	tests := []struct {
		name      string
		seq1      string
		seq2      string
		scoring   *ScoringMatrix
		wantScore int
		want1     string
		want2     string
	}{
		{
			name:      "one mismatch",
			seq1:      "ACTGN",
			seq2:      "ACTGA",
			wantScore: 18,
			want1:     "ACTGN",
			want2:     "ACTGA",
		},
		{
			name:      "identical",
			seq1:      "ACGT",
			seq2:      "ACGT",
			wantScore: 20,
			want1:     "ACGT",
			want2:     "ACGT",
		},
		{
			name:      "one insertion",
			seq1:      "ACGTACGTACGT",
			seq2:      "ACGTACGTTACGT",
			wantScore: 50,
		},
		{
			name:      "against empty",
			seq1:      "ACGT",
			seq2:      "",
			wantScore: -13,
			want1:     "ACGT",
			want2:     "----",
		},
		{
			name:      "empty against",
			seq1:      "",
			seq2:      "AC",
			wantScore: -11,
			want1:     "--",
			want2:     "AC",
		},
		{
			name:      "both empty",
			seq1:      "",
			seq2:      "",
			wantScore: 0,
			want1:     "",
			want2:     "",
		},
		{
			name:      "tie prefers diagonal at the end",
			seq1:      "A",
			seq2:      "AA",
			wantScore: -5,
			want1:     "-A",
			want2:     "AA",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NeedlemanWunsch(tt.seq1, tt.seq2, tt.scoring)
			require.NoError(t, err)

			assert.Equal(t, tt.wantScore, a.Score)
			assert.Equal(t, Global, a.AlignmentType)
			assert.Equal(t, len(a.AlignedSeq1), len(a.AlignedSeq2))
			assert.Equal(t, tt.seq1, Degap(a.AlignedSeq1))
			assert.Equal(t, tt.seq2, Degap(a.AlignedSeq2))
			assert.GreaterOrEqual(t, a.Length(), max(len(tt.seq1), len(tt.seq2)))
			if tt.want1 != "" || tt.want2 != "" {
				assert.Equal(t, tt.want1, a.AlignedSeq1)
				assert.Equal(t, tt.want2, a.AlignedSeq2)
			}
		})
	}
}

func TestNeedlemanWunschOneMismatchColumn(t *testing.T) {
	a, err := NeedlemanWunsch("ACTGN", "ACTGA", nil)
	require.NoError(t, err)

	assert.Equal(t, 5, a.Length())
	assert.Equal(t, 1, a.MismatchCount())
	assert.Equal(t, 0, a.TotalGaps())
	assert.InDelta(t, 0.8, a.Identity, 0.0001)
}

func TestNeedlemanWunschLinear(t *testing.T) {
	s, err := Simple(1, -1, -1)
	require.NoError(t, err)

	a, err := NeedlemanWunsch("GATTACA", "GCATGCU", s)
	require.NoError(t, err)
	assert.Equal(t, 0, a.Score)
	assert.Equal(t, "GATTACA", Degap(a.AlignedSeq1))
	assert.Equal(t, "GCATGCU", Degap(a.AlignedSeq2))
}

func TestNeedlemanWunschDeterministic(t *testing.T) {
	first, err := NeedlemanWunsch("ACGTTGCAACGT", "ACGTGCAAGT", nil)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := NeedlemanWunsch("ACGTTGCAACGT", "ACGTGCAAGT", nil)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestSmithWaterman(t *testing.T) {
	tests := []struct {
		name      string
		seq1      string
		seq2      string
		wantScore int
		want1     string
		want2     string
		start1    int
		start2    int
	}{
		{
			name:      "identical short",
			seq1:      "ATGC",
			seq2:      "ATGC",
			wantScore: 20,
			want1:     "ATGC",
			want2:     "ATGC",
		},
		{
			name:      "embedded core",
			seq1:      "TTACGTTT",
			seq2:      "GGACGTGG",
			wantScore: 20,
			want1:     "ACGT",
			want2:     "ACGT",
			start1:    2,
			start2:    2,
		},
		{
			name:      "no match",
			seq1:      "AAAA",
			seq2:      "TTTT",
			wantScore: 0,
		},
		{
			name:      "empty input",
			seq1:      "",
			seq2:      "ACGT",
			wantScore: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := SmithWaterman(tt.seq1, tt.seq2, nil)
			require.NoError(t, err)

			assert.Equal(t, tt.wantScore, a.Score)
			assert.Equal(t, Local, a.AlignmentType)
			assert.Equal(t, tt.want1, a.AlignedSeq1)
			assert.Equal(t, tt.want2, a.AlignedSeq2)
			assert.Equal(t, tt.start1, a.Start1)
			assert.Equal(t, tt.start2, a.Start2)
			assert.Equal(t, tt.seq1[a.Start1:a.End1], Degap(a.AlignedSeq1))
			assert.Equal(t, tt.seq2[a.Start2:a.End2], Degap(a.AlignedSeq2))
		})
	}
}

func TestSmithWatermanWithGap(t *testing.T) {
	seq1 := "GGGACGTACGTACGTGGG"
	seq2 := "CCACGTACGTTACGTCC"

	a, err := SmithWaterman(seq1, seq2, nil)
	require.NoError(t, err)

	assert.Equal(t, 50, a.Score)
	assert.Equal(t, 1, a.GapOpenings())
	assert.Equal(t, 1, a.GapsSeq1())
	assert.Equal(t, "ACGTACGTACGT", Degap(a.AlignedSeq1))
	assert.Equal(t, "ACGTACGTTACGT", Degap(a.AlignedSeq2))
	assert.Equal(t, seq1[a.Start1:a.End1], Degap(a.AlignedSeq1))
	assert.Equal(t, seq2[a.Start2:a.End2], Degap(a.AlignedSeq2))
	assert.Less(t, a.Length(), len(seq1))
}

func TestGapCollision(t *testing.T) {
	_, err := NeedlemanWunsch("AC-G", "ACG", nil)
	var gc *GapCollisionError
	require.ErrorAs(t, err, &gc)
	assert.Equal(t, 1, gc.Sequence)
	assert.Equal(t, 2, gc.Position)

	_, err = SmithWaterman("ACG", "-ACG", nil)
	require.ErrorAs(t, err, &gc)
	assert.Equal(t, 2, gc.Sequence)
	assert.Equal(t, 0, gc.Position)
}

func TestAlign(t *testing.T) {
	g, err := Align("ACTGN", "ACTGA", Global, nil)
	require.NoError(t, err)
	assert.Equal(t, Global, g.AlignmentType)

	l, err := Align("TTACGTTT", "GGACGTGG", Local, nil)
	require.NoError(t, err)
	assert.Equal(t, Local, l.AlignmentType)

	_, err = Align("A", "A", AlignmentType(9), nil)
	require.Error(t, err)
}

func TestAlignmentIdentity(t *testing.T) {
	tests := []struct {
		name     string
		aligned1 string
		aligned2 string
		want     float64
	}{
		{"perfect match", "ATGC", "ATGC", 1.0},
		{"50% match", "ATGC", "ATTT", 0.5},
		{"no match", "AAAA", "TTTT", 0.0},
		{"with gaps", "AT-GC", "ATGGC", 0.8},
		{"empty", "", "", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewAlignment(tt.aligned1, tt.aligned2, 0, Local)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, a.Identity, 0.0001)
		})
	}
}

func TestNewAlignmentPositions(t *testing.T) {
	a, err := NewAlignment("AT-GC", "ATGG-", 0, Global)
	require.NoError(t, err)
	assert.Equal(t, 4, a.End1)
	assert.Equal(t, 4, a.End2)

	_, err = NewAlignment("ATGC", "ATG", 0, Global)
	require.Error(t, err)
}

func TestGapOpenings(t *testing.T) {
	tests := []struct {
		name     string
		aligned1 string
		aligned2 string
		want     int
	}{
		{"no gaps", "ATGC", "ATGC", 0},
		{"one gap", "AT-GC", "ATGGC", 1},
		{"two gaps same seq", "AT--GC", "ATGGGC", 1},
		{"two gaps diff seq", "AT-GC-", "ATGG-C", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewAlignment(tt.aligned1, tt.aligned2, 0, Local)
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.GapOpenings())
		})
	}
}

func TestEditCount(t *testing.T) {
	a, err := NewAlignment("ACT-GA", "ACTTGC", 0, Global)
	require.NoError(t, err)
	assert.Equal(t, 1, a.MismatchCount())
	assert.Equal(t, 1, a.TotalGaps())
	assert.Equal(t, 2, a.EditCount())
}

func TestFormat(t *testing.T) {
	a, err := NewAlignment("AT-GC", "ATGGA", 7, Global)
	require.NoError(t, err)

	out := a.Format()
	assert.Contains(t, out, "Seq1: AT-GC")
	assert.Contains(t, out, "|| |.")
	assert.Contains(t, out, "Score: 7")
	assert.True(t, strings.HasPrefix(a.String(), "Alignment { type: global"))
}

func benchmarkPair() (string, string) {
	var s1, s2 strings.Builder
	for i := 0; i < 250; i++ {
		s1.WriteString("ACGT")
		s2.WriteString("AGCT")
	}
	return s1.String(), s2.String()
}

func BenchmarkSmithWaterman(b *testing.B) {
	s1, s2 := benchmarkPair()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = SmithWaterman(s1, s2, nil)
	}
}

func BenchmarkNeedlemanWunsch(b *testing.B) {
	s1, s2 := benchmarkPair()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = NeedlemanWunsch(s1, s2, nil)
	}
}
