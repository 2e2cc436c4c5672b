package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/storefront-client/internal/logger"

	"github.com/spf13/viper"
)

// Config 应用配置结构
type Config struct {
	Client  ClientConfig  `mapstructure:"client"`
	API     APIConfig     `mapstructure:"api"`
	Log     LogConfig     `mapstructure:"log"`
	Storage StorageConfig `mapstructure:"storage"`
	Cache   RedisConfig   `mapstructure:"cache"`
	Session SessionConfig `mapstructure:"session"`
}

// ClientConfig 客户端运行配置
type ClientConfig struct {
	Mode string `mapstructure:"mode"` // debug / release
}

// APIConfig 后端接口配置
type APIConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// Timeout 返回请求超时时长
func (c APIConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 60 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// LogConfig 日志配置
type LogConfig struct {
	Dir        string `mapstructure:"dir"`
	Filename   string `mapstructure:"filename"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// ToLoggerOptions 转换为 logger 配置
func (c LogConfig) ToLoggerOptions() logger.Options {
	return logger.Options{
		Dir:        c.Dir,
		Filename:   c.Filename,
		MaxSizeMB:  c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
		MaxAgeDays: c.MaxAgeDays,
		Compress:   c.Compress,
	}
}

// StorageConfig 本地存储配置
type StorageConfig struct {
	Path string            `mapstructure:"path"`
	Pool StoragePoolConfig `mapstructure:"pool"`
}

// StoragePoolConfig 本地存储连接池配置
type StoragePoolConfig struct {
	MaxOpenConns           int `mapstructure:"max_open_conns"`
	MaxIdleConns           int `mapstructure:"max_idle_conns"`
	ConnMaxLifetimeSeconds int `mapstructure:"conn_max_lifetime_seconds"`
	ConnMaxIdleTimeSeconds int `mapstructure:"conn_max_idle_time_seconds"`
}

// RedisConfig 目录缓存配置
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

// SessionConfig 会话与本地凭据保护配置
type SessionConfig struct {
	VaultSecret string `mapstructure:"vault_secret"`
}

// Load 加载配置
func Load() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")     // 从当前目录查找
	viper.AddConfigPath("./etc") // etc 文件夹

	// 设置默认值
	viper.SetDefault("client.mode", "debug")
	viper.SetDefault("api.base_url", "http://127.0.0.1:5077")
	viper.SetDefault("api.timeout_seconds", 60)
	viper.SetDefault("log.dir", "")
	viper.SetDefault("log.filename", "client.log")
	viper.SetDefault("log.max_size_mb", 50)
	viper.SetDefault("log.max_backups", 5)
	viper.SetDefault("log.max_age_days", 14)
	viper.SetDefault("log.compress", true)
	viper.SetDefault("storage.path", "./data/storefront.db")
	viper.SetDefault("storage.pool.max_open_conns", 1)
	viper.SetDefault("storage.pool.max_idle_conns", 1)
	viper.SetDefault("storage.pool.conn_max_lifetime_seconds", 0)
	viper.SetDefault("storage.pool.conn_max_idle_time_seconds", 0)
	viper.SetDefault("cache.enabled", false)
	viper.SetDefault("cache.host", "127.0.0.1")
	viper.SetDefault("cache.port", 6379)
	viper.SetDefault("cache.password", "")
	viper.SetDefault("cache.db", 0)
	viper.SetDefault("cache.prefix", "sfc")
	viper.SetDefault("session.vault_secret", "change-me-in-production")

	viper.SetEnvPrefix("SFC")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// 没有配置文件时使用默认值，其余读取错误需要提示
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			logger.Warnw("config_read_failed", "error", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		logger.Warnw("config_unmarshal_failed", "error", err)
		return &Config{}
	}
	return &cfg
}

// CacheAddr 返回 redis 地址
func (c RedisConfig) CacheAddr() string {
	host := strings.TrimSpace(c.Host)
	if host == "" {
		host = "127.0.0.1"
	}
	port := c.Port
	if port <= 0 {
		port = 6379
	}
	return fmt.Sprintf("%s:%d", host, port)
}
