package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/smartcodecheck/backend/config"
	"github.com/smartcodecheck/backend/internal/pkg/llm"
	"github.com/smartcodecheck/backend/internal/service/codecheck"
	"github.com/spf13/cobra"
)

// checker 命令行依赖的检测能力，由 *codecheck.Service 实现
type checker interface {
	Analyze(ctx context.Context, req *codecheck.AnalysisRequest) *codecheck.AnalysisResponse
	Compare(ctx context.Context, req *codecheck.ComparisonRequest) *codecheck.ComparisonResponse
}

var _ checker = (*codecheck.Service)(nil)

var defaultDimensions = []string{"Correctness", "Security", "Performance", "Readability"}

// checkOptions analyze 与 compare 共用的参数
type checkOptions struct {
	language     string
	dimensions   []string
	model        string
	instruction  string
	outputFormat string
}

func (o *checkOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.language, "language", "l", codecheck.LanguageAuto, "Programming language (Auto lets the model decide)")
	cmd.Flags().StringSliceVarP(&o.dimensions, "dimension", "d", defaultDimensions, "Dimensions to check, repeatable")
	cmd.Flags().StringVarP(&o.model, "model", "m", "", "Model name (empty uses the configured default)")
	cmd.Flags().StringVarP(&o.instruction, "instruction", "i", "", "Generation instruction the code was written for")
	cmd.Flags().StringVarP(&o.outputFormat, "output", "o", "human", "Output format (human, json, yaml)")
}

func (o *checkOptions) validate() error {
	if len(o.dimensions) == 0 {
		return fmt.Errorf("at least one dimension is required")
	}
	switch o.outputFormat {
	case "human", "json", "yaml":
		return nil
	}
	return fmt.Errorf("unknown output format %q", o.outputFormat)
}

func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

// newAnalyzer 按配置创建模型客户端与检测服务
func newAnalyzer() (checker, error) {
	client, err := llm.NewClient(config.GetConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM client: %w", err)
	}
	return codecheck.New(client), nil
}

func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// startSpinner 在 stderr 显示进度，结构化输出时不显示
func startSpinner(w io.Writer, format, suffix string) func() {
	if format != "human" {
		return func() {}
	}
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = suffix
	s.Start()
	return s.Stop
}
