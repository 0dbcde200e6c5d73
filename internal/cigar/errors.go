package cigar

import (
	"errors"
	"fmt"
)

var (
	// ErrEdgeDeletion means a deletion run opens or closes the CIGAR.
	ErrEdgeDeletion = errors.New("deletion run at the edge of the CIGAR")
	// ErrZeroLength means an operation has a length below one.
	ErrZeroLength = errors.New("operation length must be at least 1")
	// ErrUnknownKind means an operation code other than M, I or D.
	ErrUnknownKind = errors.New("unknown operation kind")
)

// BothGapError reports an alignment column that is gap filler on both axes.
// Aligners never produce one, so it points at a bug upstream.
type BothGapError struct {
	Position int
}

func (e *BothGapError) Error() string {
	return fmt.Sprintf("alignment column %d is a gap on both axes", e.Position)
}

// LengthMismatchError reports aligned strings of different lengths.
type LengthMismatchError struct {
	Ref   int
	Query int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("aligned strings differ in length: reference %d, query %d", e.Ref, e.Query)
}

// OpError wraps a structural problem with one operation.
type OpError struct {
	Index int
	Op    Op
	Err   error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("cigar op %d (%s): %v", e.Index, e.Op, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// ParseError reports a malformed CIGAR string.
type ParseError struct {
	Input  string
	Offset int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid cigar %q at offset %d", e.Input, e.Offset)
}
