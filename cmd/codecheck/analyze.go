package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/smartcodecheck/backend/internal/service/codecheck"
	"github.com/spf13/cobra"
)

func newAnalyzeCmd() *cobra.Command {
	opts := &checkOptions{}
	cmd := &cobra.Command{
		Use:   "analyze FILE",
		Short: "Analyze the quality of a single source file",
		Long: `Analyze a source file along the given dimensions.

Examples:
  # Analyze with the default dimensions
  codecheck analyze main.py

  # Focus on security, using a specific model
  codecheck analyze handler.go -l Go -d Security -m gpt-5

  # Machine-readable output
  codecheck analyze app.js -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			code, err := readSource(args[0])
			if err != nil {
				return err
			}
			analyzer, err := newAnalyzer()
			if err != nil {
				return err
			}
			return runAnalyze(cmd.Context(), analyzer, opts, code, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	opts.addFlags(cmd)
	return cmd
}

func runAnalyze(ctx context.Context, analyzer checker, opts *checkOptions, code string, out, errOut io.Writer) error {
	if strings.TrimSpace(code) == "" {
		return fmt.Errorf("code content cannot be empty")
	}

	req := &codecheck.AnalysisRequest{
		CodeContent:           code,
		Language:              opts.language,
		Dimensions:            opts.dimensions,
		GenerationInstruction: optional(opts.instruction),
		ModelName:             optional(opts.model),
	}

	stop := startSpinner(errOut, opts.outputFormat, " Analyzing with the model...")
	resp := analyzer.Analyze(ctx, req)
	stop()

	return displayAnalysis(out, resp, opts.outputFormat)
}
