// Package codecheck 基于大模型的代码质量检测与双代码对比
package codecheck

import (
	"context"
	"fmt"

	"github.com/smartcodecheck/backend/internal/pkg/llm"
	"github.com/smartcodecheck/backend/internal/utils"
	"k8s.io/klog/v2"
)

const fallbackSuggestion = "Check the API key configuration or network connection"

// Completer 模型调用能力，*llm.Client 实现了该接口
type Completer interface {
	Select(requested *string) llm.Selection
	Complete(ctx context.Context, sel llm.Selection, systemPrompt, userPrompt string) (string, error)
}

// Service 代码检测服务，无状态，可并发使用
type Service struct {
	llm Completer
}

// New 创建代码检测服务
func New(completer Completer) *Service {
	return &Service{llm: completer}
}

// Analyze 单代码质量检测
// 任何失败都不会向调用方返回错误，而是返回 score=0 的兜底结果
func (s *Service) Analyze(ctx context.Context, req *AnalysisRequest) *AnalysisResponse {
	resp, err := s.analyze(ctx, req)
	if err != nil {
		klog.Warningf("[codecheck.Analyze] 模型分析失败: kind=%s, err=%v", Classify(err), err)
		return AnalysisFallback(err)
	}
	klog.V(6).Infof("[codecheck.Analyze] 分析完成: score=%d, issues=%d", resp.Score, len(resp.Issues))
	klog.V(8).Infof("[codecheck.Analyze] 结果: %s", utils.ToJSON(resp))
	return resp
}

// Compare 双代码对比
// 失败时返回 summary 说明原因、分数为 0 的兜底结果
func (s *Service) Compare(ctx context.Context, req *ComparisonRequest) *ComparisonResponse {
	resp, err := s.compare(ctx, req)
	if err != nil {
		klog.Warningf("[codecheck.Compare] 模型对比失败: kind=%s, err=%v", Classify(err), err)
		return ComparisonFallback(err)
	}
	klog.V(6).Infof("[codecheck.Compare] 对比完成: scoreA=%d, scoreB=%d, dimensions=%d", resp.ScoreA, resp.ScoreB, len(resp.DimensionScores))
	klog.V(8).Infof("[codecheck.Compare] 结果: %s", utils.ToJSON(resp))
	return resp
}

func (s *Service) analyze(ctx context.Context, req *AnalysisRequest) (resp *AnalysisResponse, err error) {
	defer recoverInto(&err)

	sel := s.llm.Select(req.ModelName)
	klog.V(6).Infof("[codecheck.analyze] 开始分析: language=%s, dimensions=%v, target=%s, model=%s", req.Language, req.Dimensions, sel.Target, sel.Model)

	prompt := BuildAnalysisPrompt(req)
	text, err := s.llm.Complete(ctx, sel, prompt.System, prompt.User)
	if err != nil {
		return nil, err
	}
	return decodeAnalysis(utils.StripCodeFence(text))
}

func (s *Service) compare(ctx context.Context, req *ComparisonRequest) (resp *ComparisonResponse, err error) {
	defer recoverInto(&err)

	sel := s.llm.Select(req.ModelName)
	klog.V(6).Infof("[codecheck.compare] 开始对比: language=%s, dimensions=%v, target=%s, model=%s", req.Language, req.Dimensions, sel.Target, sel.Model)

	prompt := BuildComparisonPrompt(req)
	text, err := s.llm.Complete(ctx, sel, prompt.System, prompt.User)
	if err != nil {
		return nil, err
	}
	return decodeComparison(utils.StripCodeFence(text))
}

func recoverInto(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%w: %v", ErrInternal, r)
	}
}

// AnalysisFallback 分析失败时的兜底结果
func AnalysisFallback(err error) *AnalysisResponse {
	return &AnalysisResponse{
		Score: 0,
		Issues: []IssueDetail{{
			Dimension:   "System",
			Type:        SeverityError,
			Description: fmt.Sprintf("Model analysis failed: %v", err),
			Suggestion:  fallbackSuggestion,
		}},
	}
}

// ComparisonFallback 对比失败时的兜底结果
func ComparisonFallback(err error) *ComparisonResponse {
	return &ComparisonResponse{
		Summary:         fmt.Sprintf("Comparison failed: %v", err),
		DimensionScores: map[string][2]int{},
	}
}
