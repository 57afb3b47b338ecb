package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config reúne as configurações da aplicação lidas do ambiente
type Config struct {
	Env      string
	Port     string
	GinMode  string
	LogLevel string

	BackendURL     string
	BackendTimeout time.Duration
	BackendRetries int

	DatabaseURL string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisChannel  string

	CORSAllowedOrigins []string
	SwaggerEnabled     bool
}

// Load lê a configuração a partir das variáveis de ambiente
func Load() *Config {
	timeout, err := time.ParseDuration(getEnv("BACKEND_TIMEOUT", "10s"))
	if err != nil || timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Config{
		Env:      getEnv("ENV", "development"),
		Port:     getEnv("PORT", "8080"),
		GinMode:  getEnv("GIN_MODE", "debug"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		BackendURL:     strings.TrimRight(getEnv("BACKEND_URL", "http://localhost:3000"), "/"),
		BackendTimeout: timeout,
		BackendRetries: getEnvInt("BACKEND_RETRIES", 3),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		RedisChannel:  getEnv("REDIS_CHANNEL", "armazem:invalidate"),

		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3001")),
		SwaggerEnabled:     getEnvBool("SWAGGER_ENABLED", true),
	}
}

// IsDevelopment indica se a aplicação está em ambiente de desenvolvimento
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// LedgerEnabled indica se o registro persistente de endereçamentos está ativo
func (c *Config) LedgerEnabled() bool {
	return c.DatabaseURL != ""
}

// getEnv retorna o valor de uma variável de ambiente ou um valor padrão
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
