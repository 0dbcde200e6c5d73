package alignment

// NeedlemanWunsch performs global alignment with affine gap penalties.
//
// Both sequences are aligned end to end. Empty inputs are allowed: aligning
// against an empty sequence yields an all-gap axis, and two empty sequences
// yield an empty alignment scoring 0.
func NeedlemanWunsch(seq1, seq2 string, scoring *ScoringMatrix) (*Alignment, error) {
	if scoring == nil {
		scoring = NUC44()
	}
	if err := checkGapFiller(seq1, seq2); err != nil {
		return nil, err
	}

	m, n := len(seq1), len(seq2)
	a := newArena(m+1, n+1)

	// Borders: only the gap state running along each edge is reachable.
	a.up[0], a.left[0] = negInf, negInf
	for i := 1; i <= m; i++ {
		k := a.idx(i, 0)
		a.diag[k], a.left[k] = negInf, negInf
		a.up[k] = scoring.GapCost(i)
		a.upFrom[k] = Up
		if i == 1 {
			a.upFrom[k] = Diagonal
		}
	}
	for j := 1; j <= n; j++ {
		k := a.idx(0, j)
		a.diag[k], a.up[k] = negInf, negInf
		a.left[k] = scoring.GapCost(j)
		a.leftFrom[k] = Left
		if j == 1 {
			a.leftFrom[k] = Diagonal
		}
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			k := a.idx(i, j)
			kDiag := a.idx(i-1, j-1)

			prev, from := best3(a.diag[kDiag], a.up[kDiag], a.left[kDiag])
			a.diag[k] = prev + scoring.Score(seq1[i-1], seq2[j-1])
			a.diagFrom[k] = from

			a.fillGaps(k, a.idx(i-1, j), a.idx(i, j-1), scoring)
		}
	}

	end := a.idx(m, n)
	score, state := best3(a.diag[end], a.up[end], a.left[end])

	aligned1, aligned2, _, _ := a.traceback(seq1, seq2, m, n, state)

	return NewAlignmentWithPositions(aligned1, aligned2, score, 0, m, 0, n, Global)
}
