package handlers

import (
	"net/http"

	"github.com/aria-lang/seqmatch-go/internal/cigar"
)

// CigarRequest carries an existing alignment: the reference axis and the
// query axis, gapped with '-'.
type CigarRequest struct {
	Reference string `json:"reference"`
	Query     string `json:"query"`
}

// CigarResponse is the positional encoding of the alignment. Start is -1
// when the alignment has no reference position.
type CigarResponse struct {
	CIGAR  string `json:"cigar"`
	Start  int    `json:"start"`
	Read   string `json:"read"`
	Mapped bool   `json:"mapped"`
}

// CigarHandler encodes a user supplied alignment.
func CigarHandler(w http.ResponseWriter, r *http.Request) {
	var req CigarRequest
	if !decode(w, r, &req) {
		return
	}

	enc, err := cigar.Encode(req.Reference, req.Query)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, CigarResponse{
		CIGAR:  enc.CIGAR(),
		Start:  enc.Start,
		Read:   enc.Read,
		Mapped: enc.Mapped(),
	})
}
