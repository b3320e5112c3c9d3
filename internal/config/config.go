package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"  validate:"required"`
	LLM     LLMConfig     `mapstructure:"llm"     validate:"required"`
	Collage CollageConfig `mapstructure:"collage" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// LLMConfig contains all settings for the Gemini integration.
type LLMConfig struct {
	// GeminiAPIKey authenticates against the Gemini API.
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required"`

	// ModelName selects the image-capable Gemini model.
	ModelName string `mapstructure:"model_name" validate:"required"`

	// MaxAttempts bounds the total number of upstream calls per generation,
	// including the first one.
	MaxAttempts int `mapstructure:"max_attempts" validate:"required,gte=1,lte=10"`

	// RetryBackoffMs is the delay before the first retry; it doubles before
	// each subsequent retry.
	RetryBackoffMs int `mapstructure:"retry_backoff_ms" validate:"required,gte=1"`
}

// RetryBackoff returns the initial retry backoff as a duration.
func (c LLMConfig) RetryBackoff() time.Duration {
	return time.Duration(c.RetryBackoffMs) * time.Millisecond
}

// CollageConfig contains limits for collage generation batches.
type CollageConfig struct {
	// MaxSlots caps the number of generation slots per collage.
	MaxSlots int `mapstructure:"max_slots" validate:"required,gte=1,lte=32"`

	// MaxReferenceImages caps the subject and style lists individually.
	MaxReferenceImages int `mapstructure:"max_reference_images" validate:"required,gte=1"`

	// MaxImageBytes caps the decoded size of a single uploaded image.
	MaxImageBytes int `mapstructure:"max_image_bytes" validate:"required,gte=1"`
}
