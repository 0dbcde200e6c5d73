package alignment

import "math"

// negInf marks unreachable DP cells. It is far enough from MinInt that adding
// penalties cannot wrap around.
const negInf = math.MinInt32 / 2

// arena holds the three Gotoh states and their traceback pointers as flat
// row-major slices of rows*cols cells.
//
//	diag: best score ending with seq1[i-1] aligned to seq2[j-1]
//	up:   best score ending with seq1[i-1] against a gap
//	left: best score ending with seq2[j-1] against a gap
//
// Each *From slice records the state the cell was reached from.
type arena struct {
	rows, cols int

	diag, up, left             []int
	diagFrom, upFrom, leftFrom []AlignDirection
}

func newArena(rows, cols int) *arena {
	size := rows * cols
	return &arena{
		rows:     rows,
		cols:     cols,
		diag:     make([]int, size),
		up:       make([]int, size),
		left:     make([]int, size),
		diagFrom: make([]AlignDirection, size),
		upFrom:   make([]AlignDirection, size),
		leftFrom: make([]AlignDirection, size),
	}
}

func (a *arena) idx(i, j int) int {
	return i*a.cols + j
}

// best3 returns the largest of the three state values, preferring diagonal,
// then up, then left on ties.
func best3(d, u, l int) (int, AlignDirection) {
	best, dir := d, Diagonal
	if u > best {
		best, dir = u, Up
	}
	if l > best {
		best, dir = l, Left
	}
	return best, dir
}

// fillGaps computes the up and left states of cell (i, j).
func (a *arena) fillGaps(k, kUp, kLeft int, scoring *ScoringMatrix) {
	open, extend := scoring.GapOpenPenalty, scoring.GapExtendPenalty

	a.up[k], a.upFrom[k] = best3(
		a.diag[kUp]+open,
		a.up[kUp]+extend,
		a.left[kUp]+open,
	)
	a.left[k], a.leftFrom[k] = best3(
		a.diag[kLeft]+open,
		a.up[kLeft]+open,
		a.left[kLeft]+extend,
	)
}

// traceback walks from cell (i, j) in state st until it reaches the matrix
// origin or a Stop pointer. It returns the aligned strings and the cell where
// the walk ended.
func (a *arena) traceback(seq1, seq2 string, i, j int, st AlignDirection) (string, string, int, int) {
	aligned1 := make([]byte, 0, i+j)
	aligned2 := make([]byte, 0, i+j)

	for st != Stop && (i > 0 || j > 0) {
		k := a.idx(i, j)
		switch st {
		case Diagonal:
			aligned1 = append(aligned1, seq1[i-1])
			aligned2 = append(aligned2, seq2[j-1])
			st = a.diagFrom[k]
			i--
			j--
		case Up:
			aligned1 = append(aligned1, seq1[i-1])
			aligned2 = append(aligned2, GapFiller)
			st = a.upFrom[k]
			i--
		case Left:
			aligned1 = append(aligned1, GapFiller)
			aligned2 = append(aligned2, seq2[j-1])
			st = a.leftFrom[k]
			j--
		}
	}

	return reverseBytes(aligned1), reverseBytes(aligned2), i, j
}
