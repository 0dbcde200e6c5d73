package handlers

import (
	"net/http"

	"github.com/aria-lang/seqmatch-go/pkg/seqmatch"
)

// PairRequest carries two raw sequences.
type PairRequest struct {
	Sequence1 string `json:"sequence1"`
	Sequence2 string `json:"sequence2"`
}

// DistanceResponse holds the metrics; -1 marks an undefined Hamming distance.
type DistanceResponse struct {
	Levenshtein int     `json:"levenshtein"`
	Hamming     int     `json:"hamming"`
	JaroWinkler float64 `json:"jaro_winkler"`
}

// DistanceHandler handles distance requests.
func DistanceHandler(w http.ResponseWriter, r *http.Request) {
	var req PairRequest
	if !decode(w, r, &req) {
		return
	}

	d := seqmatch.ComputeDistances(req.Sequence1, req.Sequence2)
	writeJSON(w, http.StatusOK, DistanceResponse{
		Levenshtein: d.Levenshtein,
		Hamming:     d.Hamming,
		JaroWinkler: d.JaroWinkler,
	})
}
