package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	SQLite    SQLiteConfig
	Redis     RedisConfig
	Retrieval RetrievalConfig
	Security  SecurityConfig
	RateLimit RateLimitConfig
	Logging   LoggingConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  int
	WriteTimeout int
	BodyLimit    int
}

type SQLiteConfig struct {
	// Enabled selects the persistent conversation store; when false the
	// in-memory single-process variant is used instead.
	Enabled bool
	Path    string
}

type RedisConfig struct {
	Enabled    bool
	Host       string
	Port       int
	Password   string
	DB         int
	AnswerTTLs int
}

type RetrievalConfig struct {
	// Strategy is "tfidf" or "keywords".
	Strategy     string
	TopK         int
	MinScore     float64
	SubjectBoost float64
}

type SecurityConfig struct {
	MinQuestionLength int
	MaxQuestionLength int
	BlockedWords      []string
}

type RateLimitConfig struct {
	RequestsPerMinute int
}

type LoggingConfig struct {
	Level      string
	Format     string
	OutputPath string
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/edu-assistant")

	viper.SetEnvPrefix("EDU_ASSISTANT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.readTimeout", 30)
	viper.SetDefault("server.writeTimeout", 30)
	viper.SetDefault("server.bodyLimit", 1048576)

	viper.SetDefault("sqlite.enabled", true)
	viper.SetDefault("sqlite.path", "./data/assistant.db")

	viper.SetDefault("redis.enabled", false)
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.answerTTLs", 3600)

	viper.SetDefault("retrieval.strategy", "tfidf")
	viper.SetDefault("retrieval.topK", 3)
	viper.SetDefault("retrieval.minScore", 0.05)
	viper.SetDefault("retrieval.subjectBoost", 0.2)

	viper.SetDefault("security.minQuestionLength", 3)
	viper.SetDefault("security.maxQuestionLength", 500)
	viper.SetDefault("security.blockedWords", []string{"spam", "hack", "virus", "malware"})

	viper.SetDefault("ratelimit.requestsPerMinute", 60)

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
	viper.SetDefault("logging.outputPath", "stdout")
}
