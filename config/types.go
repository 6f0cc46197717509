package config

// Config represents the complete configuration structure
type Config struct {
	TVDB    TVDBConfig    `mapstructure:"tvdb"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// TVDBConfig holds the TVDB API credentials
type TVDBConfig struct {
	APIKey string `mapstructure:"api_key"`
	PIN    string `mapstructure:"pin"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
