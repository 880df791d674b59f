// Package llmtest 提供测试用的 ChatModel 替身
package llmtest

import (
	"context"
	"sync"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// Call 记录一次 Generate 调用
type Call struct {
	Messages    []*schema.Message
	Model       string
	Temperature *float32
}

// FakeChatModel 返回固定内容或固定错误的 ChatModel
type FakeChatModel struct {
	Reply string
	Err   error

	mu    sync.Mutex
	calls []Call
}

// Generate 实现 model.BaseChatModel
func (f *FakeChatModel) Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	options := model.GetCommonOptions(&model.Options{}, opts...)
	call := Call{Messages: input, Temperature: options.Temperature}
	if options.Model != nil {
		call.Model = *options.Model
	}

	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.mu.Unlock()

	if f.Err != nil {
		return nil, f.Err
	}
	return schema.AssistantMessage(f.Reply, nil), nil
}

// Stream 实现 model.BaseChatModel
func (f *FakeChatModel) Stream(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	msg, err := f.Generate(ctx, input, opts...)
	if err != nil {
		return nil, err
	}
	return schema.StreamReaderFromArray([]*schema.Message{msg}), nil
}

// Calls 返回已记录的调用
func (f *FakeChatModel) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Call, len(f.calls))
	copy(out, f.calls)
	return out
}
