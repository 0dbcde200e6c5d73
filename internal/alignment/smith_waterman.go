package alignment

// SmithWaterman performs local alignment with affine gap penalties.
//
// A match-state cell whose best predecessor scores <= 0 starts a new
// alignment instead, which floors the matrix at zero. Traceback begins at the
// first maximal cell in row-major order and ends at such a start. When no cell
// scores above zero the result is an empty alignment with score 0.
func SmithWaterman(seq1, seq2 string, scoring *ScoringMatrix) (*Alignment, error) {
	if scoring == nil {
		scoring = NUC44()
	}
	if err := checkGapFiller(seq1, seq2); err != nil {
		return nil, err
	}

	m, n := len(seq1), len(seq2)
	a := newArena(m+1, n+1)

	for i := 0; i <= m; i++ {
		k := a.idx(i, 0)
		a.up[k], a.left[k] = negInf, negInf
	}
	for j := 1; j <= n; j++ {
		k := a.idx(0, j)
		a.up[k], a.left[k] = negInf, negInf
	}

	maxScore := 0
	maxI, maxJ := 0, 0

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			k := a.idx(i, j)
			kDiag := a.idx(i-1, j-1)

			prev, from := best3(a.diag[kDiag], a.up[kDiag], a.left[kDiag])
			if prev <= 0 {
				prev, from = 0, Stop
			}
			a.diag[k] = prev + scoring.Score(seq1[i-1], seq2[j-1])
			a.diagFrom[k] = from

			a.fillGaps(k, a.idx(i-1, j), a.idx(i, j-1), scoring)

			if a.diag[k] > maxScore {
				maxScore = a.diag[k]
				maxI, maxJ = i, j
			}
		}
	}

	if maxScore == 0 {
		return NewAlignmentWithPositions("", "", 0, 0, 0, 0, 0, Local)
	}

	aligned1, aligned2, start1, start2 := a.traceback(seq1, seq2, maxI, maxJ, Diagonal)

	return NewAlignmentWithPositions(aligned1, aligned2, maxScore,
		start1, maxI, start2, maxJ, Local)
}
