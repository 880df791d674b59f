package utils

import (
	"encoding/json"
	"strings"

	"k8s.io/klog/v2"
)

const codeFence = "```"

// StripCodeFence 去掉 LLM 返回内容外层的 Markdown 代码块标记
// 支持 ```json 与无标签的 ```，没有代码块时原样返回（仅去除首尾空白）
// 只处理首行与末尾的标记，不解析也不修改内部内容
func StripCodeFence(content string) string {
	cleaned := strings.TrimSpace(content)
	if !strings.HasPrefix(cleaned, codeFence) {
		return cleaned
	}

	if idx := strings.IndexByte(cleaned, '\n'); idx >= 0 {
		// 首行是 ``` 或 ```json 这样的标记行，整行丢弃
		cleaned = cleaned[idx+1:]
	} else {
		// 单行形式：```json {...}```
		cleaned = strings.TrimPrefix(cleaned, codeFence)
		cleaned = strings.TrimLeft(cleaned, "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")
	}

	cleaned = strings.TrimSpace(cleaned)
	cleaned = strings.TrimSuffix(cleaned, codeFence)
	cleaned = strings.TrimSpace(cleaned)

	klog.V(8).Infof("[StripCodeFence] 去除代码块标记后长度: %d -> %d", len(content), len(cleaned))
	return cleaned
}

// ToJSON 序列化为 JSON 字符串，失败时返回空串
func ToJSON(v any) string {
	jsonData, err := json.Marshal(v)
	if err != nil {
		klog.Errorf("JSON序列化失败: %v", err)
		return ""
	}
	return string(jsonData)
}
