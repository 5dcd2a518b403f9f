package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 应用配置
type Config struct {
	Server  ServerConfig `yaml:"server"`
	Static  StaticConfig `yaml:"static"`
	Logging LogConfig    `yaml:"logging"`
}

// ServerConfig 监听地址和分发行为
type ServerConfig struct {
	Host            string `yaml:"host"`
	Port            int    `yaml:"port"`
	DefaultDocument string `yaml:"default_document"` // 请求 "/" 时改写成的路径
	StrictNotFound  bool   `yaml:"strict_not_found"` // 兜底分支是否返回真正的 404 状态码
}

// StaticConfig 静态文件
type StaticConfig struct {
	Root string `yaml:"root"` // 资源文件系统内的根目录
	Dir  string `yaml:"dir"`  // 非空时从磁盘目录读取，而不是内置资源
}

// LogConfig 日志
type LogConfig struct {
	LogToFile   bool   `yaml:"log_to_file"`
	LogFilePath string `yaml:"log_file_path"`
	MaxSize     int    `yaml:"max_size"`    // MB
	MaxBackups  int    `yaml:"max_backups"` // 保留的旧文件个数
	MaxAge      int    `yaml:"max_age"`     // 天
	Compress    bool   `yaml:"compress"`
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "",
			Port:            8080,
			DefaultDocument: "/index.html",
			StrictNotFound:  false,
		},
		Static: StaticConfig{
			Root: "/webroot",
			Dir:  "",
		},
		Logging: LogConfig{
			LogToFile:   false,
			LogFilePath: "webframework.log",
			MaxSize:     10,
			MaxBackups:  3,
			MaxAge:      28,
			Compress:    true,
		},
	}
}

// Addr 拼出 host:port
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// Load 读取配置文件，直接解到默认配置上
// 文件中未出现的字段保留默认值，显式写出的零值（如 compress: false）会覆盖默认值
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault 读取失败时打印警告并使用默认配置
func LoadOrDefault(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to load config from %s: %v\n", configPath, err)
		fmt.Fprintf(os.Stderr, "Using default configuration\n")
		cfg = Default()
	}
	return cfg
}
