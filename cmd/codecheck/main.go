package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "v1.0.0" // 构建时覆盖
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "codecheck",
		Short: "LLM-powered code quality analysis",
		Long: `codecheck sends local source files to the configured language model and
reports a quality score with issues, or compares two implementations side by side.

Configuration is read from config.yaml (CONFIG_PATH) and environment variables
such as OPENAI_API_KEY, OPENAI_BASE_URL and LOCAL_MODEL_NAME.`,
		SilenceUsage: true,
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(
		newAnalyzeCmd(),
		newCompareCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "codecheck version %s\n", version)
		},
	}
}
