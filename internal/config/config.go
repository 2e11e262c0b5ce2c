package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	LLM      LLMConfig      `mapstructure:"llm"      validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// LLMConfig contains the language-model integration settings.
// GeminiAPIKey is the single opaque credential supplied by the hosting
// environment; it is not validated as required here because the server can
// start without it — grading then fails fast with a missing-credentials
// error instead of at boot.
type LLMConfig struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key"`
	ModelName    string `mapstructure:"model_name"           validate:"required"`
	// PromptTemplatePath optionally overrides the built-in grading prompt.
	PromptTemplatePath string `mapstructure:"prompt_template_path"`
}
