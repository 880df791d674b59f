package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/smartcodecheck/backend/config"
	"k8s.io/klog/v2"
)

var (
	// ErrTransportUnavailable 选中的后端未配置
	ErrTransportUnavailable = errors.New("llm transport unavailable")
	// ErrCompletionFailed 调用模型失败（网络、非 2xx、超时等）
	ErrCompletionFailed = errors.New("llm completion failed")
	// ErrEmptyResponse 模型返回空内容
	ErrEmptyResponse = errors.New("empty response from LLM")
)

// Client 持有云端与本地两个后端，每次调用只发出一个请求，不重试
type Client struct {
	selector *Selector
	cloud    model.BaseChatModel
	local    model.BaseChatModel
}

// NewClient 根据配置创建云端与本地后端
// 本地模型名为空时不创建本地后端
func NewClient(cfg *config.Config) (*Client, error) {
	cloud, err := newChatModel(cfg.LLM.BaseURL, cfg.LLM.APIKey, cfg.LLM.DefaultModel)
	if err != nil {
		return nil, fmt.Errorf("create cloud chat model failed: %w", err)
	}

	var local model.BaseChatModel
	if cfg.LocalLLM.Model != "" {
		localModel, err := newChatModel(cfg.LocalLLM.BaseURL, cfg.LocalLLM.APIKey, cfg.LocalLLM.Model)
		if err != nil {
			return nil, fmt.Errorf("create local chat model failed: %w", err)
		}
		local = localModel
		klog.V(6).Infof("[llm.NewClient] 本地模型已启用: model=%s, baseURL=%s", cfg.LocalLLM.Model, cfg.LocalLLM.BaseURL)
	}

	return NewClientWithModels(NewSelector(cfg), cloud, local), nil
}

// NewClientWithModels 使用已有的 ChatModel 创建客户端
func NewClientWithModels(selector *Selector, cloud, local model.BaseChatModel) *Client {
	return &Client{
		selector: selector,
		cloud:    cloud,
		local:    local,
	}
}

// newChatModel 创建 OpenAI 兼容的 ChatModel，要求模型输出 JSON 对象
func newChatModel(baseURL, apiKey, modelName string) (*openai.ChatModel, error) {
	cfg := &openai.ChatModelConfig{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Model:   modelName,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	chatModel, err := openai.NewChatModel(context.Background(), cfg)
	if err != nil {
		klog.Errorf("[llm.newChatModel] 创建 ChatModel 失败: baseURL=%s, err=%v", baseURL, err)
		return nil, err
	}
	return chatModel, nil
}

// Select 选择本次请求使用的后端与模型
func (c *Client) Select(requested *string) Selection {
	return c.selector.Select(requested)
}

// Catalog 返回可选模型信息
func (c *Client) Catalog() ModelCatalog {
	return c.selector.Catalog()
}

// Complete 发送 system + user 两条消息，返回模型输出的文本
func (c *Client) Complete(ctx context.Context, sel Selection, systemPrompt, userPrompt string) (string, error) {
	chatModel := c.cloud
	if sel.Target == TargetLocal {
		chatModel = c.local
	}
	if chatModel == nil {
		return "", fmt.Errorf("%w: %s", ErrTransportUnavailable, sel.Target)
	}

	messages := []*schema.Message{
		schema.SystemMessage(systemPrompt),
		schema.UserMessage(userPrompt),
	}
	klog.V(6).Infof("[llm.Complete] 请求: target=%s, model=%s, messages=%d", sel.Target, sel.Model, len(messages))

	resp, err := chatModel.Generate(ctx, messages,
		model.WithModel(sel.Model),
		model.WithTemperature(Temperature),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCompletionFailed, err)
	}
	if resp == nil || strings.TrimSpace(resp.Content) == "" {
		return "", ErrEmptyResponse
	}

	klog.V(6).Infof("[llm.Complete] 完成: model=%s, contentLength=%d", sel.Model, len(resp.Content))
	klog.V(8).Infof("[llm.Complete] 原始输出: %s", resp.Content)
	return resp.Content, nil
}
