package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// ErrMissingAPIKey é retornado por Validate quando a chave do Gemini não foi configurada
var ErrMissingAPIKey = errors.New("GEMINI_API_KEY environment variable is required")

// Config contém as configurações do serviço, lidas uma única vez do ambiente
type Config struct {
	// Gemini
	APIKey      string
	Model       string
	Temperature float32
	MaxTokens   int32

	// Servidor
	Host string
	Port int

	LogLevel string
}

// Load lê as variáveis de ambiente, carregando antes um arquivo .env se existir
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	temperature, err := getEnvFloat("GEMINI_TEMPERATURE", 0.7)
	if err != nil {
		return Config{}, err
	}
	maxTokens, err := getEnvInt32("GEMINI_MAX_TOKENS", 1000)
	if err != nil {
		return Config{}, err
	}
	port, err := getEnvInt("PORT", 8000)
	if err != nil {
		return Config{}, err
	}

	return Config{
		APIKey:      os.Getenv("GEMINI_API_KEY"),
		Model:       getEnv("GEMINI_MODEL", "gemini-2.0-flash-exp"),
		Temperature: float32(temperature),
		MaxTokens:   maxTokens,
		Host:        getEnv("HOST", "0.0.0.0"),
		Port:        port,
		LogLevel:    getEnv("LOG_LEVEL", "INFO"),
	}, nil
}

// Validate verifica se a configuração obrigatória está presente
func (c Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

// Addr retorna o endereço host:port para o listener HTTP
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Level converte LOG_LEVEL para o nível equivalente do slog.
// Valores desconhecidos caem em INFO.
func (c Config) Level() slog.Level {
	switch strings.ToUpper(strings.TrimSpace(c.LogLevel)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARNING", "WARN":
		return slog.LevelWarn
	case "ERROR", "CRITICAL":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return n, nil
}

// getEnvInt32 rejeita valores fora do intervalo de int32 em vez de truncá-los
func getEnvInt32(key string, def int32) (int32, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return int32(n), nil
}

func getEnvFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 32)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return f, nil
}
