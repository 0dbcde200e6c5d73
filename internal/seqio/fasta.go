// Package seqio reads FASTA input, plain or gzip-compressed, from files or
// stdin.
package seqio

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aria-lang/seqmatch-go/internal/sequence"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

var gzipMagic = []byte{0x1f, 0x8b}

// ErrNoHeader is returned when residues appear before the first header line.
var ErrNoHeader = errors.New("fasta: sequence data before first '>' header")

// Open opens path for reading, or stdin when path is "-". Gzip input is
// detected from its magic bytes, not the file extension.
func Open(path string) (io.ReadCloser, error) {
	if path == Stdin {
		return Decompress(io.NopCloser(os.Stdin))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return Decompress(f)
}

// Decompress wraps rc in a gzip reader when its content starts with the gzip
// magic number. Closing the result closes rc.
func Decompress(rc io.ReadCloser) (io.ReadCloser, error) {
	br := bufio.NewReader(rc)
	head, err := br.Peek(len(gzipMagic))
	if err != nil && !errors.Is(err, io.EOF) {
		rc.Close()
		return nil, err
	}
	if !bytes.Equal(head, gzipMagic) {
		return &readCloser{Reader: br, close: rc.Close}, nil
	}

	zr, err := gzip.NewReader(br)
	if err != nil {
		rc.Close()
		return nil, fmt.Errorf("gzip: %w", err)
	}
	return &readCloser{Reader: zr, close: func() error {
		zerr := zr.Close()
		if err := rc.Close(); err != nil {
			return err
		}
		return zerr
	}}, nil
}

type readCloser struct {
	io.Reader
	close func() error
}

func (r *readCloser) Close() error { return r.close() }

// Reader streams sequences from FASTA input one record at a time.
//
// The name is the header up to the first whitespace. Sequence lines are
// concatenated with surrounding whitespace removed; residues are otherwise
// kept as written.
type Reader struct {
	sc      *bufio.Scanner
	pending string
	line    int
	done    bool
}

// maxLine bounds a single input line.
const maxLine = 256 * 1024 * 1024

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	return &Reader{sc: sc}
}

// Next returns the next sequence, or io.EOF when the input is exhausted.
func (r *Reader) Next() (sequence.Sequence, error) {
	if r.done {
		return sequence.Sequence{}, io.EOF
	}

	header := r.pending
	r.pending = ""
	var residues strings.Builder

	for r.sc.Scan() {
		r.line++
		line := strings.TrimSpace(r.sc.Text())
		if line == "" {
			continue
		}
		if line[0] == '>' {
			if header != "" {
				r.pending = line
				return newSequence(header, residues.String()), nil
			}
			header = line
			continue
		}
		if header == "" {
			return sequence.Sequence{}, fmt.Errorf("line %d: %w", r.line, ErrNoHeader)
		}
		residues.WriteString(line)
	}
	if err := r.sc.Err(); err != nil {
		return sequence.Sequence{}, err
	}

	r.done = true
	if header == "" {
		return sequence.Sequence{}, io.EOF
	}
	return newSequence(header, residues.String()), nil
}

func newSequence(header, residues string) sequence.Sequence {
	name := strings.TrimSpace(header[1:])
	if i := strings.IndexAny(name, " \t"); i >= 0 {
		name = name[:i]
	}
	return sequence.New(name, residues)
}

// ReadAll collects every remaining sequence from r.
func ReadAll(r *Reader) ([]sequence.Sequence, error) {
	var seqs []sequence.Sequence
	for {
		s, err := r.Next()
		if errors.Is(err, io.EOF) {
			return seqs, nil
		}
		if err != nil {
			return nil, err
		}
		seqs = append(seqs, s)
	}
}

// ReadFile reads every sequence from path ("-" for stdin).
func ReadFile(path string) ([]sequence.Sequence, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	seqs, err := ReadAll(NewReader(rc))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return seqs, nil
}

// File is a Reader that owns its underlying input.
type File struct {
	*Reader
	rc io.Closer
}

// OpenFile opens path as a streaming sequence source.
func OpenFile(path string) (*File, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	return &File{Reader: NewReader(rc), rc: rc}, nil
}

func (f *File) Close() error {
	return f.rc.Close()
}
