// Package output serializes match records as tab-delimited rows or SAM.
package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/aria-lang/seqmatch-go/internal/match"
	"github.com/aria-lang/seqmatch-go/internal/sequence"
)

// Format is an output format.
type Format int

const (
	Tab Format = iota
	SAM
)

func (f Format) String() string {
	switch f {
	case Tab:
		return "tab"
	case SAM:
		return "sam"
	default:
		return "unknown"
	}
}

// ParseFormat accepts "tab" or "sam".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "tab":
		return Tab, nil
	case "sam":
		return SAM, nil
	default:
		return 0, fmt.Errorf("unsupported output format %q (want tab or sam)", s)
	}
}

// Writer writes records after a format-specific header.
type Writer interface {
	match.Sink
	Flush() error
}

// NewWriter writes the header for format to w and returns a buffered
// Writer. refs provide the SAM @SQ lines and are ignored for tab output.
func NewWriter(format Format, w io.Writer, refs []sequence.Sequence) (Writer, error) {
	bw := bufio.NewWriter(w)
	switch format {
	case Tab:
		if _, err := fmt.Fprintln(bw, TabHeader()); err != nil {
			return nil, err
		}
		return &tabWriter{bw: bw}, nil
	case SAM:
		for _, line := range HeaderLines(refs) {
			if _, err := fmt.Fprintln(bw, line); err != nil {
				return nil, err
			}
		}
		return &samWriter{bw: bw}, nil
	default:
		return nil, fmt.Errorf("unsupported output format %d", format)
	}
}

type tabWriter struct {
	bw *bufio.Writer
}

func (t *tabWriter) Write(r *match.Record) error {
	_, err := fmt.Fprintln(t.bw, FormatTab(r))
	return err
}

func (t *tabWriter) Flush() error { return t.bw.Flush() }

type samWriter struct {
	bw *bufio.Writer
}

func (s *samWriter) Write(r *match.Record) error {
	rec, err := ToSAM(r)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(s.bw, rec)
	return err
}

func (s *samWriter) Flush() error { return s.bw.Flush() }
