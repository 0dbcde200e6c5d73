package handlers

import (
	"net/http"

	"github.com/aria-lang/seqmatch-go/internal/config"
	"github.com/aria-lang/seqmatch-go/internal/output"
	"github.com/aria-lang/seqmatch-go/pkg/seqmatch"
)

// NamedSequence is a sequence with its name.
type NamedSequence struct {
	Name     string `json:"name"`
	Sequence string `json:"sequence"`
}

// MatchRequest compares B against A. Omitted settings fall back to the
// server configuration.
type MatchRequest struct {
	A           NamedSequence `json:"a"`
	B           NamedSequence `json:"b"`
	Method      *string       `json:"method,omitempty"`
	MaxDistance *int          `json:"max_distance,omitempty"`
	Align       *string       `json:"aln,omitempty"`
	NoLD        *bool         `json:"no_ld,omitempty"`
	NoJWD       *bool         `json:"no_jwd,omitempty"`
	NoRevComp   *bool         `json:"norc,omitempty"`
}

// MatchResponse reports whether the pair matched and, if so, the record in
// both output formats.
type MatchResponse struct {
	Matched     bool    `json:"matched"`
	Strand      string  `json:"strand,omitempty"`
	Levenshtein int     `json:"levenshtein"`
	Hamming     int     `json:"hamming"`
	JaroWinkler float64 `json:"jaro_winkler"`
	Score       *int    `json:"score,omitempty"`
	CIGAR       string  `json:"cigar,omitempty"`
	Position    int     `json:"position"`
	Tab         string  `json:"tab,omitempty"`
	SAM         string  `json:"sam,omitempty"`
}

// NoMatchResponse is returned when the pair fails the distance threshold.
type NoMatchResponse struct {
	Matched bool `json:"matched"`
}

// MatchHandler returns a handler that evaluates one pair with cfg as the
// default settings.
func MatchHandler(cfg config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req MatchRequest
		if !decode(w, r, &req) {
			return
		}

		c := cfg
		if req.Method != nil {
			c.Match.Method = *req.Method
		}
		if req.MaxDistance != nil {
			c.Match.MaxDistance = *req.MaxDistance
		}
		if req.Align != nil {
			c.Match.Align = *req.Align
		}
		if req.NoLD != nil {
			c.Match.NoLD = *req.NoLD
		}
		if req.NoJWD != nil {
			c.Match.NoJWD = *req.NoJWD
		}
		if req.NoRevComp != nil {
			c.Match.NoRevComp = *req.NoRevComp
		}

		opts, err := c.MatchOptions()
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		a := seqmatch.NewSequence(req.A.Name, req.A.Sequence)
		b := seqmatch.NewSequence(req.B.Name, req.B.Sequence)
		rec, ok, err := seqmatch.Match(a, b, opts, !c.Match.NoRevComp)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if !ok {
			writeJSON(w, http.StatusOK, NoMatchResponse{})
			return
		}

		sam, err := output.ToSAM(rec)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		resp := MatchResponse{
			Matched:     true,
			Strand:      rec.Pair.Strand.String(),
			Levenshtein: rec.Distances.Levenshtein,
			Hamming:     rec.Distances.Hamming,
			JaroWinkler: rec.Distances.JaroWinkler,
			Position:    rec.Position(),
			Tab:         output.FormatTab(rec),
			SAM:         sam.String(),
		}
		if rec.Aligned() {
			score := rec.Alignment.Score
			resp.Score = &score
			resp.CIGAR = rec.Encoding.CIGAR()
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
