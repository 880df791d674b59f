package llm

// Target 标识一次调用使用的后端
type Target string

const (
	// TargetCloud 云端 OpenAI 兼容服务
	TargetCloud Target = "cloud"
	// TargetLocal 运维配置的本地模型服务
	TargetLocal Target = "local"
)

// Temperature 代码评审使用的采样温度，偏向稳定可复现的评分
const Temperature float32 = 0.2

// Selection 模型选择结果
type Selection struct {
	Target Target
	Model  string
	// Fallback 为 true 表示请求指定了未识别的模型名，已静默回退到默认模型
	Fallback bool
}

// ModelCatalog 对外展示的可选模型
type ModelCatalog struct {
	Default   string   `json:"default"`
	Available []string `json:"available"`
	Local     string   `json:"local,omitempty"`
}
