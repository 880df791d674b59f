package main

import (
	"context"
	"io"

	"github.com/smartcodecheck/backend/internal/service/codecheck"
	"github.com/spf13/cobra"
)

func newCompareCmd() *cobra.Command {
	opts := &checkOptions{}
	cmd := &cobra.Command{
		Use:   "compare FILE_A FILE_B",
		Short: "Compare two implementations",
		Long: `Compare two source files along the given dimensions and score both.

Examples:
  codecheck compare v1.py v2.py -d Performance -d Readability`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			codeA, err := readSource(args[0])
			if err != nil {
				return err
			}
			codeB, err := readSource(args[1])
			if err != nil {
				return err
			}
			analyzer, err := newAnalyzer()
			if err != nil {
				return err
			}
			return runCompare(cmd.Context(), analyzer, opts, codeA, codeB, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	opts.addFlags(cmd)
	return cmd
}

func runCompare(ctx context.Context, analyzer checker, opts *checkOptions, codeA, codeB string, out, errOut io.Writer) error {
	req := &codecheck.ComparisonRequest{
		CodeA:                 codeA,
		CodeB:                 codeB,
		Language:              opts.language,
		Dimensions:            opts.dimensions,
		GenerationInstruction: optional(opts.instruction),
		ModelName:             optional(opts.model),
	}

	stop := startSpinner(errOut, opts.outputFormat, " Comparing with the model...")
	resp := analyzer.Compare(ctx, req)
	stop()

	return displayComparison(out, resp, opts.outputFormat)
}
