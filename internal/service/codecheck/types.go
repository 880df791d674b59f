package codecheck

import "strings"

// LanguageAuto 表示由模型根据代码内容判断语言
const LanguageAuto = "Auto"

// AnalysisRequest 单代码质量检测请求
type AnalysisRequest struct {
	CodeContent           string            `json:"code_content" binding:"required"`
	Language              string            `json:"language" binding:"required"`
	Dimensions            []string          `json:"dimensions" binding:"required,min=1"`
	CustomDefinitions     map[string]string `json:"custom_definitions"`
	GenerationInstruction *string           `json:"generation_instruction"`
	ModelName             *string           `json:"model_name"`
}

// ComparisonRequest 双代码对比请求，不校验代码是否为空
type ComparisonRequest struct {
	CodeA                 string            `json:"code_a"`
	CodeB                 string            `json:"code_b"`
	Language              string            `json:"language" binding:"required"`
	Dimensions            []string          `json:"dimensions" binding:"required,min=1"`
	CustomDefinitions     map[string]string `json:"custom_definitions"`
	GenerationInstruction *string           `json:"generation_instruction"`
	ModelName             *string           `json:"model_name"`
}

// Severity 问题级别，取值固定为 Error / Warning / Info
type Severity string

const (
	SeverityError   Severity = "Error"
	SeverityWarning Severity = "Warning"
	SeverityInfo    Severity = "Info"
)

// ParseSeverity 忽略大小写解析问题级别
func ParseSeverity(s string) (Severity, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return SeverityError, true
	case "warning":
		return SeverityWarning, true
	case "info":
		return SeverityInfo, true
	}
	return "", false
}

// IssueDetail 单个问题
type IssueDetail struct {
	Dimension   string   `json:"dimension" yaml:"dimension"`
	Type        Severity `json:"type" yaml:"type"`
	Description string   `json:"description" yaml:"description"`
	Line        *int     `json:"line" yaml:"line"` // 从 1 开始，无法定位时为 null
	Suggestion  string   `json:"suggestion" yaml:"suggestion"`
}

// AnalysisResponse 单代码检测结果
type AnalysisResponse struct {
	Score  int           `json:"score" yaml:"score"`
	Issues []IssueDetail `json:"issues" yaml:"issues"`
}

// ComparisonResponse 双代码对比结果
// DimensionScores 的值为 [A 的分数, B 的分数]
type ComparisonResponse struct {
	Summary         string            `json:"summary" yaml:"summary"`
	ScoreA          int               `json:"score_a" yaml:"score_a"`
	ScoreB          int               `json:"score_b" yaml:"score_b"`
	DimensionScores map[string][2]int `json:"dimension_scores" yaml:"dimension_scores"`
	DetailsA        *AnalysisResponse `json:"details_a" yaml:"details_a"`
	DetailsB        *AnalysisResponse `json:"details_b" yaml:"details_b"`
}
