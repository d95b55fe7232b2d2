package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/coursemap/pkg/errors"
)

// envPrefix scopes coursemap settings in the environment (COURSEMAP_SOURCE).
const envPrefix = "COURSEMAP"

// Config holds the application configuration loaded from config files,
// environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Source is the course file loaded when a command first needs the catalog.
	Source string

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
//  1. Command-line flags (applied later by UpdateFromFlags)
//  2. Environment variables
//  3. .env files
//  4. Config file (configFile, or .coursemap.yaml in $HOME or the working directory)
//  5. Defaults
func LoadConfig(configFile string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("format", "")
	v.SetDefault("log_format", "auto")
	v.SetDefault("log_output", "stderr")

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.NewConfigError("config", "unable to read "+configFile, err)
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".coursemap")
		// A missing default config file is not an error.
		_ = v.ReadInConfig()
	}

	return &Config{
		Verbose:    v.GetBool("verbose"),
		Quiet:      v.GetBool("quiet"),
		NoColor:    v.GetBool("no_color") || os.Getenv("NO_COLOR") != "",
		Format:     v.GetString("format"),
		ConfigFile: v.ConfigFileUsed(),
		Source:     v.GetString("source"),
		LogLevel:   getEnvOrDefault("LOG_LEVEL", v.GetString("log_level")),
		LogFormat:  getEnvOrDefault("LOG_FORMAT", v.GetString("log_format")),
		LogOutput:  getEnvOrDefault("LOG_OUTPUT", v.GetString("log_output")),
	}, nil
}

// Flags holds the global flag values parsed by cobra. Only flags the user
// actually set override the loaded configuration.
type Flags struct {
	ConfigFile string
	Source     string
	Format     string
	LogLevel   string
	Verbose    bool
	Quiet      bool
	NoColor    bool

	changed map[string]bool
}

// UpdateFromFlags applies explicitly set flags on top of c.
func (c *Config) UpdateFromFlags(f *Flags) {
	if f.changed["file"] {
		c.Source = f.Source
	}
	if f.changed["format"] {
		c.Format = f.Format
	}
	if f.changed["log-level"] {
		c.LogLevel = f.LogLevel
	}
	if f.changed["verbose"] {
		c.Verbose = f.Verbose
	}
	if f.changed["quiet"] {
		c.Quiet = f.Quiet
	}
	if f.changed["no-color"] {
		c.NoColor = f.NoColor
	}
}

// loadEnvFiles loads environment variables from .env files.
// .env.local is read last; godotenv never overrides variables already set.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
