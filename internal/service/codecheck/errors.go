package codecheck

import (
	"context"
	"errors"
	"net"

	"github.com/smartcodecheck/backend/internal/pkg/llm"
)

var (
	// ErrDecode 清理后的文本不是合法 JSON 对象
	ErrDecode = errors.New("model output is not a valid JSON object")
	// ErrSchema JSON 缺少必需字段或字段类型不符
	ErrSchema = errors.New("model output does not match the response template")
	// ErrInternal 处理过程中发生 panic
	ErrInternal = errors.New("internal error")
)

// FailureKind 失败分类，仅用于日志与诊断；对外统一返回兜底结果
type FailureKind string

const (
	FailureUnknown   FailureKind = "unknown"
	FailureCanceled  FailureKind = "canceled"
	FailureTransport FailureKind = "transport"
	FailureEmpty     FailureKind = "empty_response"
	FailureDecode    FailureKind = "decode"
	FailureSchema    FailureKind = "schema"
	FailureInternal  FailureKind = "internal"
)

// Classify 将错误归类，只依赖哨兵错误与标准库错误类型
func Classify(err error) FailureKind {
	if err == nil {
		return FailureUnknown
	}
	// 取消/超时优先
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return FailureCanceled
	}
	switch {
	case errors.Is(err, ErrInternal):
		return FailureInternal
	case errors.Is(err, llm.ErrEmptyResponse):
		return FailureEmpty
	case errors.Is(err, ErrDecode):
		return FailureDecode
	case errors.Is(err, ErrSchema):
		return FailureSchema
	case errors.Is(err, llm.ErrCompletionFailed), errors.Is(err, llm.ErrTransportUnavailable):
		return FailureTransport
	}
	var nerr net.Error
	if errors.As(err, &nerr) {
		return FailureTransport
	}
	return FailureUnknown
}
