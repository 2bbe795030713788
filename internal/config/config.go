package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	Ollama OllamaConfig
	Upload UploadConfig
	Log    LogConfig
	CORS   CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
	StaticDir    string        `mapstructure:"static_dir"`
}

// OllamaConfig holds settings for the inference endpoint.
type OllamaConfig struct {
	Host        string `mapstructure:"host"`
	Model       string `mapstructure:"model"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// Timeout returns the HTTP client timeout. Zero means no timeout.
func (o *OllamaConfig) Timeout() time.Duration {
	if o.TimeoutSecs <= 0 {
		return 0
	}
	return time.Duration(o.TimeoutSecs) * time.Second
}

// UploadConfig holds intake limits for uploaded documents.
type UploadConfig struct {
	AllowedFileTypes []string `mapstructure:"allowed_file_types"`
	MaxFileSizeMB    int64    `mapstructure:"max_file_size_mb"`
}

// MaxFileSizeBytes returns the upload ceiling in bytes.
func (u *UploadConfig) MaxFileSizeBytes() int64 {
	return u.MaxFileSizeMB * 1024 * 1024
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from an optional .env file and environment
// variables with the CVPARSER_ prefix.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("CVPARSER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8000")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "0s")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.static_dir", "static")

	// Inference defaults
	v.SetDefault("ollama.host", "http://localhost:11434/api/generate")
	v.SetDefault("ollama.model", "gemma3:1b")
	v.SetDefault("ollama.timeout_secs", 120)

	// Upload defaults
	v.SetDefault("upload.allowed_file_types", "pdf,docx,txt")
	v.SetDefault("upload.max_file_size_mb", 5)

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("cors.allowed_origins", "*")

	envBindings := map[string]string{
		"server.port":               "CVPARSER_SERVER_PORT",
		"server.read_timeout":       "CVPARSER_SERVER_READ_TIMEOUT",
		"server.write_timeout":      "CVPARSER_SERVER_WRITE_TIMEOUT",
		"server.environment":        "CVPARSER_SERVER_ENVIRONMENT",
		"server.static_dir":         "CVPARSER_SERVER_STATIC_DIR",
		"ollama.host":               "CVPARSER_OLLAMA_HOST",
		"ollama.model":              "CVPARSER_OLLAMA_MODEL",
		"ollama.timeout_secs":       "CVPARSER_OLLAMA_TIMEOUT_SECS",
		"upload.allowed_file_types": "CVPARSER_UPLOAD_ALLOWED_FILE_TYPES",
		"upload.max_file_size_mb":   "CVPARSER_UPLOAD_MAX_FILE_SIZE_MB",
		"log.level":                 "CVPARSER_LOG_LEVEL",
		"log.format":                "CVPARSER_LOG_FORMAT",
		"cors.allowed_origins":      "CVPARSER_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Hosting platforms set PORT. Use it if CVPARSER_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("CVPARSER_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
		StaticDir:    v.GetString("server.static_dir"),
	}
	cfg.Ollama = OllamaConfig{
		Host:        v.GetString("ollama.host"),
		Model:       v.GetString("ollama.model"),
		TimeoutSecs: v.GetInt("ollama.timeout_secs"),
	}

	var fileTypes []string
	for _, t := range splitList(v.GetString("upload.allowed_file_types")) {
		fileTypes = append(fileTypes, strings.ToLower(strings.TrimPrefix(t, ".")))
	}
	cfg.Upload = UploadConfig{
		AllowedFileTypes: fileTypes,
		MaxFileSizeMB:    v.GetInt64("upload.max_file_size_mb"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: splitList(v.GetString("cors.allowed_origins")),
	}

	return cfg, nil
}

// splitList parses a comma-separated string, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
