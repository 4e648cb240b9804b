package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/Rorical/RoriSelect/internal/logger"
	"github.com/Rorical/RoriSelect/internal/platform"
	"github.com/Rorical/RoriSelect/internal/presentation"
)

// Config holds all configuration for the application.
type Config struct {
	// Display is read-only for the lifetime of one dropdown session.
	Display presentation.Config `mapstructure:"display"`
	// Platform configures the runtime that feeds the dropdown.
	Platform platform.Config `mapstructure:"platform"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`

	v    *viper.Viper
	path string
}

// LoadConfig loads configuration from the config directory, a .env file in
// the working directory and environment variables, in increasing priority.
func LoadConfig() (*Config, error) {
	configDir, err := getConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	// Ignore error if file doesn't exist
	_ = godotenv.Overload(".env")

	return LoadFrom(configDir)
}

// LoadFrom loads config.yaml from dir if present and fills in defaults.
func LoadFrom(dir string) (*Config, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	bindValues(v, Config{}, "")

	path := filepath.Join(dir, "config.yaml")
	v.SetConfigFile(path)
	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	}

	// Map environment variables to nested keys (e.g. DISPLAY_ENABLE_CREATE -> display.enable_create)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	config.v = v
	config.path = path

	if config.Platform.Dataset == "" {
		config.Platform.Dataset = filepath.Join(dir, "records.yaml")
	}
	if config.Log.File == "" {
		config.Log.File = filepath.Join(dir, "roriselect.log")
	}

	return &config, nil
}

// Save writes the dataset selection back to config.yaml.
func (c *Config) Save() error {
	if c.v == nil {
		return fmt.Errorf("config was not loaded from a directory")
	}
	c.v.Set("platform.dataset", c.Platform.Dataset)
	return c.v.WriteConfigAs(c.path)
}

func (c *Config) Path() string {
	return c.path
}

func getConfigDir() (string, error) {
	var baseDir string

	// Use RORISELECT_HOME if set, otherwise use user's home directory
	if home := os.Getenv("RORISELECT_HOME"); home != "" {
		baseDir = home
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		baseDir = homeDir
	}

	return filepath.Join(baseDir, ".roriselect"), nil
}

// bindValues walks the struct and registers every 'mapstructure' key in
// Viper with the value of its 'default' tag.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
