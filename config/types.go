package config

// Config represents the complete configuration structure
type Config struct {
	Paperforge PaperforgeConfig `mapstructure:"paperforge"`
	Generate   GenerateConfig   `mapstructure:"generate"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// PaperforgeConfig holds Paperforge API connection details
type PaperforgeConfig struct {
	URL            string            `mapstructure:"url"`
	APIKey         string            `mapstructure:"api_key"`
	TimeoutSeconds int               `mapstructure:"timeout_seconds"`
	Headers        map[string]string `mapstructure:"headers"`
	Debug          bool              `mapstructure:"debug"`
}

// GenerateConfig contains document generation settings
type GenerateConfig struct {
	OutputDir   string `mapstructure:"output_dir"`
	Concurrency int    `mapstructure:"concurrency"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
