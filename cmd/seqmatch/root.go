package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aria-lang/seqmatch-go/internal/config"
	"github.com/aria-lang/seqmatch-go/pkg/logger"
	"github.com/aria-lang/seqmatch-go/pkg/seqmatch"
)

// app is the state shared by the commands of one invocation.
type app struct {
	cfgFile string
	cfg     *config.Config
	log     *logger.Logger
}

// flagKeys maps command line flags to config keys.
var flagKeys = map[string]string{
	"log-level": "log-level",
	"method":    "match.method",
	"nm":        "match.nm",
	"norc":      "match.norc",
	"aln":       "match.aln",
	"noLD":      "match.no-ld",
	"noJWD":     "match.no-jwd",
	"outfmt":    "match.outfmt",
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "seqmatch",
		Short: "Find similar sequences between two FASTA files",
		Long: `Find which sequences in file A are similar to the sequences in file B,
by Levenshtein or Hamming distance, and optionally align each matching pair.

Matches are written as tab-delimited rows or as SAM, with A as the reference
and B as the reads:

  seqmatch match -a refs.fa -b reads.fa.gz -o sam | samtools view -Sb - > aln.bam

LD, HD, JWD, len_A and len_B are computed on the raw input sequences, not on
the aligned ones, so they do not depend on the alignment method.`,
		Version:           seqmatch.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.load,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default ./seqmatch.yaml)")
	root.PersistentFlags().String("log-level", "info", "log level: debug, info, warn or fatal")

	root.AddCommand(
		newMatchCmd(a),
		newConvertCmd(a),
		newConfigCmd(),
		newVersionCmd(),
	)
	return root
}

// load reads the configuration with the command's flags bound on top.
func (a *app) load(cmd *cobra.Command, _ []string) error {
	v, err := config.NewViper(a.cfgFile)
	if err != nil {
		return err
	}
	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("binding --%s: %w", name, err)
			}
		}
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, ok := logger.ParseLevel(cfg.LogLevel)
	a.log = logger.New(logger.Config{Level: level, ShowTime: true, Output: cmd.ErrOrStderr()})
	if !ok {
		a.log.Warnf("unknown log level %q, using INFO", cfg.LogLevel)
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), seqmatch.Info())
		},
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the default settings as a starter seqmatch.yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return config.WriteDefault(cmd.OutOrStdout())
		},
	}
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Fatalf("%v", err)
	}
}
