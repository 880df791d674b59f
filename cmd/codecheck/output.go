package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/smartcodecheck/backend/internal/service/codecheck"
	"gopkg.in/yaml.v3"
)

func displayAnalysis(w io.Writer, resp *codecheck.AnalysisResponse, format string) error {
	switch format {
	case "json":
		return displayJSON(w, resp)
	case "yaml":
		return displayYAML(w, resp)
	default:
		displayAnalysisHuman(w, resp)
	}
	return nil
}

func displayComparison(w io.Writer, resp *codecheck.ComparisonResponse, format string) error {
	switch format {
	case "json":
		return displayJSON(w, resp)
	case "yaml":
		return displayYAML(w, resp)
	default:
		displayComparisonHuman(w, resp)
	}
	return nil
}

func displayJSON(w io.Writer, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(output))
	return nil
}

func displayYAML(w io.Writer, v any) error {
	output, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	fmt.Fprint(w, string(output))
	return nil
}

func displayAnalysisHuman(w io.Writer, resp *codecheck.AnalysisResponse) {
	cyan := color.New(color.FgCyan, color.Bold)

	fmt.Fprintln(w)
	scoreColor(resp.Score).Fprintf(w, "SCORE: %d/100\n\n", resp.Score)

	if len(resp.Issues) == 0 {
		color.New(color.FgGreen).Fprintln(w, "No issues found.")
	} else {
		cyan.Fprintf(w, "ISSUES (%d):\n", len(resp.Issues))
		for i, issue := range resp.Issues {
			location := ""
			if issue.Line != nil {
				location = fmt.Sprintf(" line %d", *issue.Line)
			}
			fmt.Fprintf(w, "  %d. %s [%s]%s\n", i+1, severityColor(issue.Type).Sprint(strings.ToUpper(string(issue.Type))), issue.Dimension, location)
			fmt.Fprintf(w, "     %s\n", issue.Description)
			if issue.Suggestion != "" {
				fmt.Fprintf(w, "     Suggestion: %s\n", color.GreenString(issue.Suggestion))
			}
		}
	}

	fmt.Fprintln(w, strings.Repeat("─", 80))
	fmt.Fprintln(w, color.HiBlackString("Run with -o json or -o yaml for machine-readable output"))
}

func displayComparisonHuman(w io.Writer, resp *codecheck.ComparisonResponse) {
	cyan := color.New(color.FgCyan, color.Bold)

	fmt.Fprintln(w)
	cyan.Fprintln(w, "SUMMARY:")
	fmt.Fprintf(w, "  %s\n\n", resp.Summary)
	fmt.Fprintf(w, "  A: %s   B: %s\n\n",
		scoreColor(resp.ScoreA).Sprintf("%d", resp.ScoreA),
		scoreColor(resp.ScoreB).Sprintf("%d", resp.ScoreB))

	if len(resp.DimensionScores) > 0 {
		cyan.Fprintln(w, "DIMENSIONS:")
		names := make([]string, 0, len(resp.DimensionScores))
		for name := range resp.DimensionScores {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			pair := resp.DimensionScores[name]
			fmt.Fprintf(w, "  %-20s A %3d  B %3d\n", name, pair[0], pair[1])
		}
	}

	fmt.Fprintln(w, strings.Repeat("─", 80))
	fmt.Fprintln(w, color.HiBlackString("Run with -o json or -o yaml for machine-readable output"))
}

func severityColor(s codecheck.Severity) *color.Color {
	switch s {
	case codecheck.SeverityError:
		return color.New(color.FgRed, color.Bold)
	case codecheck.SeverityWarning:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgBlue)
	}
}

func scoreColor(score int) *color.Color {
	switch {
	case score >= 80:
		return color.New(color.FgGreen, color.Bold)
	case score >= 60:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgRed, color.Bold)
	}
}
