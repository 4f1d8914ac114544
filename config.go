package contactbook

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

const (
	appName       = "contacts"
	dataNamespace = "contacts_data"
	dataFileName  = "data.bin"
)

type Config struct {
	Dir         string `mapstructure:"dir"`
	LogLevel    string `mapstructure:"log_level"`
	LogFile     string `mapstructure:"log_file"`
	AtomicWrite bool   `mapstructure:"atomic_write"`
}

// LoadConfig reads the configuration from CONTACTS_* environment variables,
// an optional config.yaml in the user config directory, and defaults, in that
// order of precedence.
func LoadConfig() (*Config, error) {
	v := newViper()
	if dir, err := configDir(); err == nil {
		v.AddConfigPath(dir)
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Dir == "" {
		return nil, errors.New("failed to resolve data directory")
	}
	return &cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("dir", defaultDir())
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_file", "")
	v.SetDefault("atomic_write", true)
	v.SetEnvPrefix("CONTACTS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func defaultDir() string {
	base, err := userDataDir()
	if err != nil {
		return filepath.Join(".contacts", dataNamespace)
	}
	return filepath.Join(base, appName, dataNamespace)
}

// userDataDir follows the platform convention for per-user application data.
func userDataDir() (string, error) {
	switch runtime.GOOS {
	case "windows", "darwin", "ios":
		return os.UserConfigDir()
	}
	if d := os.Getenv("XDG_DATA_HOME"); d != "" {
		return d, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share"), nil
}

func configDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, appName), nil
}

func (c *Config) EnsureDir() error {
	if err := os.MkdirAll(c.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	return nil
}

// DataFile returns the path of the contact data file, creating its
// directory if needed.
func (c *Config) DataFile() (string, error) {
	if err := c.EnsureDir(); err != nil {
		return "", err
	}
	return filepath.Join(c.Dir, dataFileName), nil
}
