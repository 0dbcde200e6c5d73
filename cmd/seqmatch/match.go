package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/aria-lang/seqmatch-go/internal/match"
	"github.com/aria-lang/seqmatch-go/internal/output"
	"github.com/aria-lang/seqmatch-go/internal/seqio"
	"github.com/aria-lang/seqmatch-go/internal/sequence"
)

type matchFlags struct {
	pathA string
	pathB string
}

func newMatchCmd(a *app) *cobra.Command {
	var f matchFlags

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Match the sequences of B against those of A",
		Long: `Match every sequence of file B against every sequence of file A.

Without -b, A is matched against itself and each unordered pair of names,
including a sequence with itself, is reported at most once. Unless --norc is
given, B is also compared as its reverse complement and only the better
strand is kept; on a tie the forward strand wins.

Files may be gzip compressed. Use "-" to read from stdin.`,
		Example: `  seqmatch match -a refs.fa -b reads.fa --nm 2
  seqmatch match -a refs.fa -m HD --nm 1 --aln none`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runMatch(cmd, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.pathA, "a", "a", "", "FASTA file A, the references (may be gzip'd, - for stdin)")
	fl.StringVarP(&f.pathB, "b", "b", "", "FASTA file B, the reads; if empty A is matched against itself")
	fl.StringP("method", "m", "LD", "distance used for the threshold: LD (Levenshtein) or HD (Hamming, faster)")
	fl.Int("nm", -1, "maximum distance to report a match; -1 reports every pair")
	fl.Bool("norc", false, "do not compare the reverse complement of B")
	fl.String("aln", "global", "alignment: none, global or local")
	fl.Bool("noLD", false, "do not compute the Levenshtein distance (faster)")
	fl.Bool("noJWD", false, "do not compute the Jaro-Winkler similarity (faster)")
	fl.StringP("outfmt", "o", "tab", "output format: tab or sam")
	cmd.MarkFlagRequired("a")

	return cmd
}

func (a *app) runMatch(cmd *cobra.Command, f matchFlags) error {
	opts, err := a.cfg.MatchOptions()
	if err != nil {
		return err
	}
	format, err := a.cfg.OutputFormat()
	if err != nil {
		return err
	}
	if format == output.SAM && opts.Align == match.AlignNone {
		a.log.Warnf("no alignment requested: SAM records will be unmapped")
	}

	refs, err := seqio.ReadFile(f.pathA)
	if err != nil {
		return err
	}
	if err := sequence.ValidateNames(refs); err != nil {
		return fmt.Errorf("%s: %w", f.pathA, err)
	}
	a.log.Infof("sequences in A (%s): %s", f.pathA, humanize.Comma(int64(len(refs))))

	eval, err := match.NewEvaluator(opts)
	if err != nil {
		return err
	}
	revcomp := !a.cfg.Match.NoRevComp

	var (
		runner *match.Runner
		src    match.Source
	)
	if f.pathB == "" {
		runner, err = match.SelfRunner(eval, refs, revcomp)
		if err != nil {
			return err
		}
		src = match.NewSliceSource(refs)
	} else {
		file, err := seqio.OpenFile(f.pathB)
		if err != nil {
			return err
		}
		defer file.Close()
		runner = &match.Runner{Evaluator: eval, Refs: refs, ReverseComplement: revcomp}
		src = file
	}
	runner.Log = a.log

	w, err := output.NewWriter(format, cmd.OutOrStdout(), refs)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stats, runErr := runner.Run(ctx, src, w)
	if err := w.Flush(); err != nil && runErr == nil {
		runErr = err
	}
	if runErr != nil {
		return runErr
	}

	a.log.Infof("completed in %s", stats.Elapsed)
	a.log.Infof("%s", stats)
	return nil
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
