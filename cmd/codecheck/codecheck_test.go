package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/smartcodecheck/backend/internal/service/codecheck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var _ checker = (*stubAnalyzer)(nil)

type stubAnalyzer struct {
	analysis   *codecheck.AnalysisResponse
	comparison *codecheck.ComparisonResponse
	lastA      *codecheck.AnalysisRequest
	lastC      *codecheck.ComparisonRequest
}

func (s *stubAnalyzer) Analyze(ctx context.Context, req *codecheck.AnalysisRequest) *codecheck.AnalysisResponse {
	s.lastA = req
	return s.analysis
}

func (s *stubAnalyzer) Compare(ctx context.Context, req *codecheck.ComparisonRequest) *codecheck.ComparisonResponse {
	s.lastC = req
	return s.comparison
}

func init() {
	color.NoColor = true
}

func sampleAnalysis() *codecheck.AnalysisResponse {
	line := 3
	return &codecheck.AnalysisResponse{
		Score: 72,
		Issues: []codecheck.IssueDetail{{
			Dimension:   "Security",
			Type:        codecheck.SeverityWarning,
			Description: "SQL built by string concatenation",
			Line:        &line,
			Suggestion:  "Use parameterized queries",
		}},
	}
}

func TestRunAnalyzeHuman(t *testing.T) {
	stub := &stubAnalyzer{analysis: sampleAnalysis()}
	opts := &checkOptions{language: "Go", dimensions: []string{"Security"}, model: "gpt-5", outputFormat: "human"}
	var out, errOut bytes.Buffer

	require.NoError(t, runAnalyze(context.Background(), stub, opts, "package main", &out, &errOut))

	assert.Equal(t, "package main", stub.lastA.CodeContent)
	require.NotNil(t, stub.lastA.ModelName)
	assert.Equal(t, "gpt-5", *stub.lastA.ModelName)
	assert.Nil(t, stub.lastA.GenerationInstruction)
	assert.Contains(t, out.String(), "SCORE: 72/100")
	assert.Contains(t, out.String(), "WARNING [Security] line 3")
	assert.Contains(t, out.String(), "Suggestion: Use parameterized queries")
}

func TestRunAnalyzeJSONAndYAML(t *testing.T) {
	stub := &stubAnalyzer{analysis: sampleAnalysis()}
	var out bytes.Buffer

	opts := &checkOptions{language: codecheck.LanguageAuto, dimensions: defaultDimensions, outputFormat: "json"}
	require.NoError(t, runAnalyze(context.Background(), stub, opts, "x", &out, &bytes.Buffer{}))
	var decoded codecheck.AnalysisResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, *sampleAnalysis(), decoded)
	assert.Nil(t, stub.lastA.ModelName)

	out.Reset()
	opts.outputFormat = "yaml"
	require.NoError(t, runAnalyze(context.Background(), stub, opts, "x", &out, &bytes.Buffer{}))
	var fromYAML map[string]any
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &fromYAML))
	assert.Equal(t, 72, fromYAML["score"])
}

func TestRunAnalyzeRejectsBlankCode(t *testing.T) {
	stub := &stubAnalyzer{analysis: sampleAnalysis()}
	opts := &checkOptions{dimensions: defaultDimensions, outputFormat: "human"}

	err := runAnalyze(context.Background(), stub, opts, " \n\t", &bytes.Buffer{}, &bytes.Buffer{})
	assert.Error(t, err)
	assert.Nil(t, stub.lastA)
}

func TestRunCompareHuman(t *testing.T) {
	stub := &stubAnalyzer{comparison: &codecheck.ComparisonResponse{
		Summary:         "B handles errors better",
		ScoreA:          55,
		ScoreB:          81,
		DimensionScores: map[string][2]int{"Readability": {60, 80}, "Correctness": {50, 82}},
	}}
	instruction := "实现一个 LRU 缓存"
	opts := &checkOptions{language: "Python", dimensions: []string{"Correctness", "Readability"}, instruction: instruction, outputFormat: "human"}
	var out bytes.Buffer

	require.NoError(t, runCompare(context.Background(), stub, opts, "a", "b", &out, &bytes.Buffer{}))

	assert.Equal(t, "a", stub.lastC.CodeA)
	assert.Equal(t, "b", stub.lastC.CodeB)
	require.NotNil(t, stub.lastC.GenerationInstruction)
	assert.Equal(t, instruction, *stub.lastC.GenerationInstruction)
	s := out.String()
	assert.Contains(t, s, "B handles errors better")
	assert.Less(t, bytes.Index(out.Bytes(), []byte("Correctness")), bytes.Index(out.Bytes(), []byte("Readability")), "维度按名称排序")
}

func TestCheckOptionsValidate(t *testing.T) {
	assert.NoError(t, (&checkOptions{dimensions: []string{"a"}, outputFormat: "yaml"}).validate())
	assert.Error(t, (&checkOptions{dimensions: []string{"a"}, outputFormat: "xml"}).validate())
	assert.Error(t, (&checkOptions{outputFormat: "json"}).validate())
}

func TestReadSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.go")
	require.NoError(t, os.WriteFile(path, []byte("package main\n"), 0o644))

	code, err := readSource(path)
	require.NoError(t, err)
	assert.Equal(t, "package main\n", code)

	_, err = readSource(filepath.Join(t.TempDir(), "missing.go"))
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "codecheck version")
}
