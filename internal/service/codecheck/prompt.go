package codecheck

import (
	"fmt"
	"strings"
)

// Prompt 发送给模型的两段文本
type Prompt struct {
	System string
	User   string
}

const analysisTemplate = `{
  "score": <0-100的整数>,
  "issues": [
    {
      "dimension": "<维度名>",
      "type": "<Error/Warning/Info>",
      "description": "<问题描述>",
      "line": <行号int, 如果无法确定填null>,
      "suggestion": "<修改建议>"
    }
  ]
}`

const comparisonTemplate = `{
  "summary": "<一句话总结对比结果>",
  "score_a": <0-100>,
  "score_b": <0-100>,
  "dimension_scores": {
    "<维度名>": [<分数A>, <分数B>]
  }
}`

// BuildDimensionInstruction 生成维度说明
// 只有被选中的维度才会附上自定义定义，用户维度库中未选中的定义会被忽略
func BuildDimensionInstruction(dimensions []string, customDefs map[string]string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "请重点分析以下维度: %s。", strings.Join(dimensions, ", "))

	if len(customDefs) == 0 {
		return b.String()
	}

	seen := make(map[string]struct{}, len(dimensions))
	var defs []string
	for _, name := range dimensions {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		if definition, ok := customDefs[name]; ok {
			defs = append(defs, fmt.Sprintf("- 【%s】: %s", name, definition))
		}
	}
	if len(defs) > 0 {
		b.WriteString("\n注意以下自定义维度的特定定义：\n")
		b.WriteString(strings.Join(defs, "\n"))
	}
	return b.String()
}

// languageLabel Auto 时交给模型判断，否则原样使用
func languageLabel(language string) string {
	if language == LanguageAuto {
		return "根据代码内容判断"
	}
	return language
}

// instructionBlock 仅在生成指令非空时输出
func instructionBlock(instruction *string) string {
	if instruction == nil || strings.TrimSpace(*instruction) == "" {
		return ""
	}
	return fmt.Sprintf("\n请结合以下代码指令进行分析：\n%s\n", *instruction)
}

func systemPrompt(persona, dimInstruction, directive, template string) string {
	return fmt.Sprintf("%s\n%s\n%s\n返回格式模板：\n%s\n", persona, dimInstruction, directive, template)
}

func userPreamble(language string, dimensions []string, instruction *string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "编程语言: %s\n", languageLabel(language))
	fmt.Fprintf(&b, "检测维度: %s\n", strings.Join(dimensions, ", "))
	b.WriteString(instructionBlock(instruction))
	return b.String()
}

// BuildAnalysisPrompt 构建单代码检测的提示词，代码内容放在最后
func BuildAnalysisPrompt(req *AnalysisRequest) Prompt {
	dim := BuildDimensionInstruction(req.Dimensions, req.CustomDefinitions)

	var user strings.Builder
	user.WriteString(userPreamble(req.Language, req.Dimensions, req.GenerationInstruction))
	user.WriteString("代码内容:\n")
	user.WriteString(req.CodeContent)

	return Prompt{
		System: systemPrompt(
			"你是一个资深的代码审计专家。",
			dim,
			"必须严格按照 JSON 格式返回结果，不要包含任何额外的解释文本。",
			analysisTemplate,
		),
		User: user.String(),
	}
}

// BuildComparisonPrompt 构建双代码对比的提示词
func BuildComparisonPrompt(req *ComparisonRequest) Prompt {
	dim := BuildDimensionInstruction(req.Dimensions, req.CustomDefinitions)

	var user strings.Builder
	user.WriteString(userPreamble(req.Language, req.Dimensions, req.GenerationInstruction))
	fmt.Fprintf(&user, "\n[代码 A]:\n%s\n\n[代码 B]:\n%s", req.CodeA, req.CodeB)

	return Prompt{
		System: systemPrompt(
			"你是代码对比专家。",
			dim,
			"必须严格按照 JSON 格式返回结果，不要包含任何额外的解释文本。",
			comparisonTemplate,
		),
		User: user.String(),
	}
}
