package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aria-lang/seqmatch-go/internal/output"
	"github.com/aria-lang/seqmatch-go/internal/seqio"
	"github.com/aria-lang/seqmatch-go/internal/sequence"
)

func newConvertCmd(a *app) *cobra.Command {
	var (
		input  string
		refs   string
		outfmt string
	)

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert tab-delimited matches to SAM",
		Long: `Convert the tab-delimited output of "seqmatch match" to SAM.

With -a the reference FASTA is read to write the SAM header; without it the
output is header-less. Input may be gzip compressed; use "-" for stdin.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := output.ParseFormat(outfmt)
			if err != nil {
				return err
			}
			if format != output.SAM {
				return fmt.Errorf("convert only writes sam, not %s", format)
			}

			var refSeqs []sequence.Sequence
			if refs != "" {
				if refSeqs, err = seqio.ReadFile(refs); err != nil {
					return err
				}
			}

			in, err := seqio.Open(input)
			if err != nil {
				return err
			}
			defer in.Close()

			n, err := output.ConvertTabToSAM(in, cmd.OutOrStdout(), refSeqs)
			if err != nil {
				return fmt.Errorf("%s: %w", input, err)
			}
			a.log.Infof("converted %d records", n)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "tab file to convert (may be gzip'd, - for stdin)")
	cmd.Flags().StringVarP(&refs, "a", "a", "", "reference FASTA for the SAM header")
	cmd.Flags().StringVarP(&outfmt, "outfmt", "o", "sam", "output format; only sam is supported")
	cmd.MarkFlagRequired("input")

	return cmd
}
