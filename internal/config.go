package internal

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config holds the settings shared by every command.
type Config struct {
	Key     Key       `mapstructure:"key" yaml:"key"`
	Group   int       `mapstructure:"group" yaml:"group"`
	Color   bool      `mapstructure:"color" yaml:"color"`
	Lang    string    `mapstructure:"lang" yaml:"lang"`
	Verbose bool      `mapstructure:"verbose" yaml:"verbose"`
	KDF     KeyPolicy `mapstructure:"kdf" yaml:"kdf"`
}

// DefaultConfig is what a fresh install runs with.
func DefaultConfig() Config {
	return Config{
		Key:   Key{A: 5, B: 8},
		Group: GroupSize,
		Color: true,
		Lang:  "en",
		KDF:   DefaultKeyPolicy(),
	}
}

// FlagBindings maps command-line flag names to config keys.
var FlagBindings = map[string]string{
	"key-a":    "key.a",
	"key-b":    "key.b",
	"group":    "group",
	"lang":     "lang",
	"verbose":  "verbose",
	"kdf":      "kdf.name",
	"kdf-mem":  "kdf.mem_mb",
	"kdf-time": "kdf.time",
}

// ConfigPath returns the full path for the configuration file.
func ConfigPath(system bool) (string, error) {
	var dir string
	if system {
		switch runtime.GOOS {
		case "windows":
			dir = filepath.Join(os.Getenv("ProgramData"), "AffineRiot")
		default:
			dir = "/etc/affineriot"
		}
	} else {
		base, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		dir = filepath.Join(base, "affineriot")
	}
	return filepath.Join(dir, "affineriot.yaml"), nil
}

// LoadConfig merges, in increasing precedence: defaults, the config file,
// AFFINERIOT_* environment variables and flags set on cmd.
// A missing config file is fine unless cfgFile names it explicitly.
func LoadConfig(cmd *cobra.Command, cfgFile string) (Config, error) {
	var c Config
	v := viper.New()

	d := DefaultConfig()
	v.SetDefault("key.a", d.Key.A)
	v.SetDefault("key.b", d.Key.B)
	v.SetDefault("group", d.Group)
	v.SetDefault("color", d.Color)
	v.SetDefault("lang", d.Lang)
	v.SetDefault("verbose", d.Verbose)
	v.SetDefault("kdf.name", d.KDF.KDF)
	v.SetDefault("kdf.mem_mb", d.KDF.KDFMemMB)
	v.SetDefault("kdf.time", d.KDF.KDFTime)
	v.SetDefault("kdf.parallel", d.KDF.KDFParallel)

	v.SetConfigName("affineriot")
	v.SetConfigType("yaml")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	}
	if p, err := ConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(p))
	}
	if p, err := ConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(p))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix("affineriot")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		for name, key := range FlagBindings {
			if f := cmd.Flags().Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return c, err
				}
			}
		}
		if f := cmd.Flags().Lookup("no-color"); f != nil && f.Changed {
			v.Set("color", false)
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("parse config: %w", err)
	}
	return c, nil
}

// WriteConfigFile writes c as YAML to path, creating parent directories.
func WriteConfigFile(path string, c Config) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", dir, err)
	}
	return os.WriteFile(path, data, 0o644)
}
