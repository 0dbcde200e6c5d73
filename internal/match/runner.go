package match

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/aria-lang/seqmatch-go/internal/sequence"
	"github.com/aria-lang/seqmatch-go/pkg/logger"
)

// DefaultProgressEvery is how many queries pass between progress lines.
const DefaultProgressEvery = 1000

// Source yields query sequences until it returns io.EOF.
type Source interface {
	Next() (sequence.Sequence, error)
}

// Sink receives every matching record in evaluation order.
type Sink interface {
	Write(r *Record) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(r *Record) error

func (f SinkFunc) Write(r *Record) error { return f(r) }

// Stats summarises a run.
type Stats struct {
	Queries   int
	Evaluated int
	Matches   int
	Elapsed   time.Duration
}

func (s Stats) String() string {
	return fmt.Sprintf("%s queries, %s pairs evaluated, %s matches in %s",
		humanize.Comma(int64(s.Queries)), humanize.Comma(int64(s.Evaluated)),
		humanize.Comma(int64(s.Matches)), s.Elapsed.Round(time.Millisecond))
}

// Runner compares every query from a Source against each reference.
type Runner struct {
	Evaluator *Evaluator
	Refs      []sequence.Sequence
	// Pairs restricts which (reference, query) name pairs are evaluated.
	// Set it with NewPairSet when the queries are the references themselves.
	Pairs             *PairSet
	ReverseComplement bool
	ProgressEvery     int
	Log               *logger.Logger
}

// SelfRunner prepares a Runner that matches refs against themselves.
func SelfRunner(e *Evaluator, refs []sequence.Sequence, revcomp bool) (*Runner, error) {
	if err := sequence.ValidateNames(refs); err != nil {
		return nil, fmt.Errorf("self comparison: %w", err)
	}
	return &Runner{
		Evaluator:         e,
		Refs:              refs,
		Pairs:             NewPairSet(sequence.Names(refs)),
		ReverseComplement: revcomp,
	}, nil
}

// Run consumes src and writes matches to sink. The context is checked
// before each query.
func (r *Runner) Run(ctx context.Context, src Source, sink Sink) (stats Stats, err error) {
	log := r.Log
	if log == nil {
		log = logger.Default()
	}
	every := r.ProgressEvery
	if every <= 0 {
		every = DefaultProgressEvery
	}

	start := time.Now()
	defer func() { stats.Elapsed = time.Since(start) }()

	for {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return stats, ctxErr
		}

		query, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return stats, fmt.Errorf("read query %d: %w", stats.Queries+1, err)
		}

		for _, ref := range r.Refs {
			if !r.Pairs.Allows(ref.Name, query.Name) {
				continue
			}
			stats.Evaluated++

			rec, ok, err := r.Evaluator.EvaluateStrands(ref, query, r.ReverseComplement)
			if err != nil {
				return stats, err
			}
			if !ok {
				continue
			}
			stats.Matches++
			if err := sink.Write(rec); err != nil {
				return stats, fmt.Errorf("write match: %w", err)
			}
		}

		stats.Queries++
		if stats.Queries%every == 0 {
			log.Infof("processed %s query sequences", humanize.Comma(int64(stats.Queries)))
		}
	}

	return stats, nil
}

// SliceSource serves sequences from memory.
type SliceSource struct {
	seqs []sequence.Sequence
	pos  int
}

func NewSliceSource(seqs []sequence.Sequence) *SliceSource {
	return &SliceSource{seqs: seqs}
}

func (s *SliceSource) Next() (sequence.Sequence, error) {
	if s.pos >= len(s.seqs) {
		return sequence.Sequence{}, io.EOF
	}
	seq := s.seqs[s.pos]
	s.pos++
	return seq, nil
}
