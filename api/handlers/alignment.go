package handlers

import (
	"net/http"

	"github.com/aria-lang/seqmatch-go/internal/config"
	"github.com/aria-lang/seqmatch-go/pkg/seqmatch"
)

// AlignmentResponse represents the response for alignment.
type AlignmentResponse struct {
	AlignedSeq1 string  `json:"aligned_seq1"`
	AlignedSeq2 string  `json:"aligned_seq2"`
	Score       int     `json:"score"`
	Identity    float64 `json:"identity"`
	Start1      int     `json:"start1"`
	End1        int     `json:"end1"`
	Start2      int     `json:"start2"`
	End2        int     `json:"end2"`
	CIGAR       string  `json:"cigar"`
	Position    int     `json:"position"`
	Matches     int     `json:"matches"`
	Mismatches  int     `json:"mismatches"`
	Gaps        int     `json:"gaps"`
	GapOpenings int     `json:"gap_openings"`
	// Pretty is the alignment laid out for display with a match line.
	Pretty string `json:"pretty"`
}

// AlignHandler returns a handler aligning with method and the configured
// scores.
func AlignHandler(method seqmatch.AlignmentType, scoring config.ScoringConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PairRequest
		if !decode(w, r, &req) {
			return
		}

		matrix, err := scoring.ScoringMatrix()
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		aln, err := seqmatch.AlignWithScoring(req.Sequence1, req.Sequence2, method, matrix)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		enc, err := seqmatch.Encode(aln)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		pos := enc.Start
		if pos != seqmatch.NoPosition {
			pos += aln.Start1
		}
		writeJSON(w, http.StatusOK, AlignmentResponse{
			AlignedSeq1: aln.AlignedSeq1,
			AlignedSeq2: aln.AlignedSeq2,
			Score:       aln.Score,
			Identity:    aln.Identity,
			Start1:      aln.Start1,
			End1:        aln.End1,
			Start2:      aln.Start2,
			End2:        aln.End2,
			CIGAR:       enc.CIGAR(),
			Position:    pos,
			Matches:     aln.MatchCount(),
			Mismatches:  aln.MismatchCount(),
			Gaps:        aln.TotalGaps(),
			GapOpenings: aln.GapOpenings(),
			Pretty:      aln.Format(),
		})
	}
}
