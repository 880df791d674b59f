package config

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App      AppConfig      `yaml:"app"`
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	LLM      LLMConfig      `yaml:"llm"`
	LocalLLM LocalLLMConfig `yaml:"local_llm"`
	Auth     AuthConfig     `yaml:"auth"`
	CORS     CORSConfig     `yaml:"cors"`
}

type AppConfig struct {
	ProjectName string `yaml:"project_name"`
	Version     string `yaml:"version"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
	Mode string `yaml:"mode"` // debug, release
}

type DatabaseConfig struct {
	Type string `yaml:"type"` // sqlite, mysql
	DSN  string `yaml:"dsn"`
}

// LLMConfig 云端模型配置
type LLMConfig struct {
	APIKey          string   `yaml:"api_key"`
	BaseURL         string   `yaml:"base_url"`
	DefaultModel    string   `yaml:"default_model"`
	AvailableModels []string `yaml:"available_models"` // 可选择的云端模型白名单
}

// LocalLLMConfig 本地模型配置，Model 为空表示未启用本地模型
type LocalLLMConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
}

type AuthConfig struct {
	SecretKey                string `yaml:"secret_key"`
	AccessTokenExpireMinutes int    `yaml:"access_token_expire_minutes"`
}

type CORSConfig struct {
	AllowOrigins []string `yaml:"allow_origins"`
}

var (
	cfg  *Config
	once sync.Once
)

func GetConfig() *Config {
	once.Do(func() {
		cfg = loadConfig()
	})
	return cfg
}

// Default 返回内置默认配置
func Default() *Config {
	return &Config{
		App: AppConfig{
			ProjectName: "SmartCodeCheck API",
			Version:     "1.0.0",
		},
		Server: ServerConfig{
			Port: "8000",
			Mode: "debug",
		},
		Database: DatabaseConfig{
			Type: "sqlite",
			DSN:  "./data/app.db",
		},
		LLM: LLMConfig{
			BaseURL:      "https://api.agicto.cn/v1",
			DefaultModel: "deepseek-v3.1",
			AvailableModels: []string{
				"qwen3-coder-plus",
				"gpt-5-mini",
				"gpt-5",
				"deepseek-v3.1",
				"gemini-3-pro-preview",
			},
		},
		LocalLLM: LocalLLMConfig{
			BaseURL: "http://localhost:8001/v1",
			APIKey:  "EMPTY",
		},
		Auth: AuthConfig{
			SecretKey:                "smartcodecheck-dev-secret",
			AccessTokenExpireMinutes: 60 * 24 * 8,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{
				"http://localhost:5173",
				"http://localhost:5174",
			},
		},
	}
}

func loadConfig() *Config {
	config := Default()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}

	data, err := os.ReadFile(configPath)
	if err == nil {
		yaml.Unmarshal(data, config)
	}

	applyEnv(config)
	return config
}

// applyEnv 环境变量优先级高于配置文件
func applyEnv(config *Config) {
	if port := os.Getenv("SERVER_PORT"); port != "" {
		config.Server.Port = port
	}
	if mode := os.Getenv("GIN_MODE"); mode != "" {
		config.Server.Mode = mode
	}

	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		config.LLM.APIKey = apiKey
	}
	if baseURL := os.Getenv("OPENAI_BASE_URL"); baseURL != "" {
		config.LLM.BaseURL = baseURL
	}
	if model := os.Getenv("OPENAI_MODEL_NAME"); model != "" {
		config.LLM.DefaultModel = model
	}

	// 本地模型
	if baseURL := os.Getenv("LOCAL_LLM_BASE_URL"); baseURL != "" {
		config.LocalLLM.BaseURL = baseURL
	}
	if apiKey := os.Getenv("LOCAL_LLM_API_KEY"); apiKey != "" {
		config.LocalLLM.APIKey = apiKey
	}
	if model := os.Getenv("LOCAL_MODEL_NAME"); model != "" {
		config.LocalLLM.Model = model
	}

	// 数据库环境变量
	if dbType := os.Getenv("DB_TYPE"); dbType != "" {
		config.Database.Type = dbType
	}
	if dbDSN := os.Getenv("DB_DSN"); dbDSN != "" {
		config.Database.DSN = dbDSN
	}

	if secret := os.Getenv("SECRET_KEY"); secret != "" {
		config.Auth.SecretKey = secret
	}
	if minutes := os.Getenv("ACCESS_TOKEN_EXPIRE_MINUTES"); minutes != "" {
		if n, err := strconv.Atoi(minutes); err == nil && n > 0 {
			config.Auth.AccessTokenExpireMinutes = n
		}
	}

	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		var list []string
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				list = append(list, o)
			}
		}
		config.CORS.AllowOrigins = list
	}
}
