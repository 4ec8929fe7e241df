package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"mrc-extractor/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort             string
	ScratchDir             string
	MaxFileSize            int64
	MaxArchiveExpandedSize int64
	LogLevel               string
	StaticDir              string
	AllowedOrigins         []string
	OCRLanguages           []string
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:             getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		ScratchDir:             getEnvOrDefault("SCRATCH_DIR", filepath.Join(os.TempDir(), "mrc-extractor")),
		MaxFileSize:            getEnvInt64OrDefault("MAX_FILE_SIZE", 50*1024*1024),               // 50MB default
		MaxArchiveExpandedSize: getEnvInt64OrDefault("MAX_ARCHIVE_EXPANDED_SIZE", 200*1024*1024), // 200MB default
		LogLevel:               getEnvOrDefault("LOG_LEVEL", "info"),
		StaticDir:              getEnvOrDefault("STATIC_DIR", ""),
		AllowedOrigins: getEnvListOrDefault("CORS_ALLOWED_ORIGINS", []string{
			"http://localhost:3000", // React dev server
			"http://localhost:5173", // Vite dev server
		}),
		OCRLanguages: getEnvListOrDefault("OCR_LANGUAGES", []string{"eng"}),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetScratchDir returns the root directory for per-request scratch space
func (c *AppConfig) GetScratchDir() string {
	return c.ScratchDir
}

// GetMaxFileSize returns the maximum allowed upload size
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetMaxArchiveExpandedSize returns the maximum number of bytes an archive may expand to
func (c *AppConfig) GetMaxArchiveExpandedSize() int64 {
	return c.MaxArchiveExpandedSize
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetStaticDir returns the directory of the built frontend, empty when disabled
func (c *AppConfig) GetStaticDir() string {
	return c.StaticDir
}

// GetAllowedOrigins returns the CORS origin allow-list
func (c *AppConfig) GetAllowedOrigins() []string {
	return c.AllowedOrigins
}

// GetOCRLanguages returns the Tesseract language codes
func (c *AppConfig) GetOCRLanguages() []string {
	return c.OCRLanguages
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
