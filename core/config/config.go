package config

import (
	"errors"
	"io/fs"
	"path/filepath"
	"reflect"
	"strings"

	"figma-asset-downloader/core/database"
	"figma-asset-downloader/core/logger"
	"figma-asset-downloader/core/server"
	"figma-asset-downloader/core/storage"
	"figma-asset-downloader/feature/download"
	"figma-asset-downloader/feature/figma"
	"figma-asset-downloader/feature/optimize"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DefaultConfigFile is the optional TOML configuration file read from the working directory.
const DefaultConfigFile = "fad.toml"

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Figma holds the API credentials and the frames to export.
	Figma figma.Config `mapstructure:"figma"`
	// Download holds the folder layout and pipeline settings.
	Download download.Config `mapstructure:"download"`
	// Optimize holds image recompression settings.
	Optimize optimize.Config `mapstructure:"optimize"`
	// Storage holds configuration for the optional publishing bucket.
	Storage storage.Config `mapstructure:"storage"`
	// Database holds configuration for the optional download history.
	Database database.Config `mapstructure:"database"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
}

// Options controls where configuration is read from.
type Options struct {
	// Dir holds the .env file.
	Dir string
	// File is the TOML configuration file. A missing file is not an error.
	File string
	// Flags are command line flags overriding every other source.
	Flags *pflag.FlagSet
	// FlagKeys maps flag names to configuration keys (e.g., "path" -> "download.path").
	FlagKeys map[string]string
}

// LoadConfig loads configuration from environment variables, .env and fad.toml in path.
func LoadConfig(path string) (*Config, error) {
	return Load(Options{
		Dir:  path,
		File: filepath.Join(path, DefaultConfigFile),
	})
}

// Load reads configuration with the precedence flags > environment > config file > defaults.
func Load(opts Options) (*Config, error) {
	envPath := ".env"
	if opts.Dir != "" && opts.Dir != "." {
		envPath = filepath.Join(opts.Dir, ".env")
	}

	// .env is optional
	_ = godotenv.Overload(envPath)

	v := viper.New()

	registerDefaults(v, reflect.TypeOf(Config{}), "")

	// Map environment variables to nested keys (e.g. FIGMA_TOKEN -> figma.token)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.File != "" {
		v.SetConfigFile(opts.File)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
			return nil, err
		}
	}

	if opts.Flags != nil {
		for name, key := range opts.FlagKeys {
			flag := opts.Flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, err
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

// registerDefaults walks the struct type and registers every leaf key with its
// `default` tag. Empty defaults are registered too so AutomaticEnv sees the key.
func registerDefaults(v *viper.Viper, t reflect.Type, prefix string) {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for _, field := range reflect.VisibleFields(t) {
		name := field.Tag.Get("mapstructure")
		if name == "" {
			continue
		}
		key := name
		if prefix != "" {
			key = prefix + "." + name
		}

		if field.Type.Kind() == reflect.Struct {
			registerDefaults(v, field.Type, key)
			continue
		}
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
