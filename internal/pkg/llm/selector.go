package llm

import (
	"sort"

	"github.com/smartcodecheck/backend/config"
	"k8s.io/klog/v2"
)

// Selector 根据请求中的模型名选择后端与模型
type Selector struct {
	defaultModel string
	localModel   string
	available    map[string]struct{}
}

// NewSelector 创建模型选择器
func NewSelector(cfg *config.Config) *Selector {
	available := make(map[string]struct{}, len(cfg.LLM.AvailableModels))
	for _, name := range cfg.LLM.AvailableModels {
		available[name] = struct{}{}
	}
	return &Selector{
		defaultModel: cfg.LLM.DefaultModel,
		localModel:   cfg.LocalLLM.Model,
		available:    available,
	}
}

// Select 按以下优先级选择：
//  1. 与本地模型名完全一致 -> 本地后端
//  2. 在云端白名单中 -> 云端后端 + 指定模型
//  3. 其他情况 -> 云端后端 + 默认模型（未识别的模型名静默回退）
func (s *Selector) Select(requested *string) Selection {
	if requested == nil || *requested == "" {
		return Selection{Target: TargetCloud, Model: s.defaultModel}
	}

	name := *requested
	if s.localModel != "" && name == s.localModel {
		klog.V(6).Infof("[llm.Select] 使用本地模型: %s", name)
		return Selection{Target: TargetLocal, Model: name}
	}
	if _, ok := s.available[name]; ok {
		return Selection{Target: TargetCloud, Model: name}
	}

	klog.Warningf("[llm.Select] 未识别的模型 %q，回退到默认模型 %s", name, s.defaultModel)
	return Selection{Target: TargetCloud, Model: s.defaultModel, Fallback: true}
}

// Catalog 返回默认模型、白名单（排序后）以及本地模型名
func (s *Selector) Catalog() ModelCatalog {
	names := make([]string, 0, len(s.available))
	for name := range s.available {
		names = append(names, name)
	}
	sort.Strings(names)
	return ModelCatalog{
		Default:   s.defaultModel,
		Available: names,
		Local:     s.localModel,
	}
}
