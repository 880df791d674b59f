package codecheck

import (
	"encoding/json"
	"fmt"
	"math"
)

type rawIssue struct {
	Dimension   *string      `json:"dimension"`
	Type        *string      `json:"type"`
	Description *string      `json:"description"`
	Line        *json.Number `json:"line"`
	Suggestion  *string      `json:"suggestion"`
}

type rawAnalysis struct {
	Score  *json.Number `json:"score"`
	Issues *[]rawIssue  `json:"issues"`
}

type rawComparison struct {
	Summary         *string                   `json:"summary"`
	ScoreA          *json.Number              `json:"score_a"`
	ScoreB          *json.Number              `json:"score_b"`
	DimensionScores *map[string][]json.Number `json:"dimension_scores"`
}

// toInt 接受整数以及没有小数部分的浮点数（如 85.0），超出 int32 范围视为不符合模板
func toInt(field string, n json.Number) (int, error) {
	if i, err := n.Int64(); err == nil {
		if i < math.MinInt32 || i > math.MaxInt32 {
			return 0, fmt.Errorf("%w: %s out of range: %s", ErrSchema, field, n)
		}
		return int(i), nil
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: %s is not an integer: %s", ErrSchema, field, n)
	}
	if f < math.MinInt32 || f > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %s out of range: %s", ErrSchema, field, n)
	}
	return int(f), nil
}

func requireString(field string, v *string) (string, error) {
	if v == nil {
		return "", fmt.Errorf("%w: missing %s", ErrSchema, field)
	}
	return *v, nil
}

func requireInt(field string, v *json.Number) (int, error) {
	if v == nil {
		return 0, fmt.Errorf("%w: missing %s", ErrSchema, field)
	}
	return toInt(field, *v)
}

// decodeAnalysis 将清理后的文本解析为 AnalysisResponse
func decodeAnalysis(text string) (*AnalysisResponse, error) {
	var raw rawAnalysis
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	score, err := requireInt("score", raw.Score)
	if err != nil {
		return nil, err
	}
	if raw.Issues == nil {
		return nil, fmt.Errorf("%w: missing issues", ErrSchema)
	}

	issues := make([]IssueDetail, 0, len(*raw.Issues))
	for i, ri := range *raw.Issues {
		issue, err := decodeIssue(ri)
		if err != nil {
			return nil, fmt.Errorf("issues[%d]: %w", i, err)
		}
		issues = append(issues, issue)
	}
	return &AnalysisResponse{Score: score, Issues: issues}, nil
}

func decodeIssue(ri rawIssue) (IssueDetail, error) {
	var (
		issue IssueDetail
		err   error
	)
	if issue.Dimension, err = requireString("dimension", ri.Dimension); err != nil {
		return issue, err
	}
	typ, err := requireString("type", ri.Type)
	if err != nil {
		return issue, err
	}
	severity, ok := ParseSeverity(typ)
	if !ok {
		return issue, fmt.Errorf("%w: unknown issue type %q", ErrSchema, typ)
	}
	issue.Type = severity
	if issue.Description, err = requireString("description", ri.Description); err != nil {
		return issue, err
	}
	if issue.Suggestion, err = requireString("suggestion", ri.Suggestion); err != nil {
		return issue, err
	}
	if ri.Line != nil {
		line, err := toInt("line", *ri.Line)
		if err != nil {
			return issue, err
		}
		issue.Line = &line
	}
	return issue, nil
}

// decodeComparison 将清理后的文本解析为 ComparisonResponse，details 始终为空
func decodeComparison(text string) (*ComparisonResponse, error) {
	var raw rawComparison
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	summary, err := requireString("summary", raw.Summary)
	if err != nil {
		return nil, err
	}
	scoreA, err := requireInt("score_a", raw.ScoreA)
	if err != nil {
		return nil, err
	}
	scoreB, err := requireInt("score_b", raw.ScoreB)
	if err != nil {
		return nil, err
	}
	if raw.DimensionScores == nil {
		return nil, fmt.Errorf("%w: missing dimension_scores", ErrSchema)
	}

	dimScores := make(map[string][2]int, len(*raw.DimensionScores))
	for name, pair := range *raw.DimensionScores {
		if len(pair) != 2 {
			return nil, fmt.Errorf("%w: dimension_scores[%s] must have 2 scores, got %d", ErrSchema, name, len(pair))
		}
		a, err := toInt("dimension_scores."+name, pair[0])
		if err != nil {
			return nil, err
		}
		b, err := toInt("dimension_scores."+name, pair[1])
		if err != nil {
			return nil, err
		}
		dimScores[name] = [2]int{a, b}
	}

	return &ComparisonResponse{
		Summary:         summary,
		ScoreA:          scoreA,
		ScoreB:          scoreB,
		DimensionScores: dimScores,
	}, nil
}
