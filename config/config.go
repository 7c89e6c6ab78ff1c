// Package config loads the settings of the inv tool.
//
// Values are layered, lowest priority first: built-in defaults, a YAML file,
// a .env file and INV_ environment variables. Command-line flags are applied
// on top by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/etnz/inventory"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// DefaultFile is the configuration file read from the working directory.
	DefaultFile = "inv.yaml"
	// EnvPrefix prefixes every environment variable read by Load.
	EnvPrefix = "INV_"
)

type BackupConfig struct {
	File   string `koanf:"file" validate:"required"`
	Format string `koanf:"format" validate:"oneof=legacy jsonl"`
	Strict bool   `koanf:"strict"`
}

type LedgerConfig struct {
	Capacity int    `koanf:"capacity" validate:"min=0"`
	Currency string `koanf:"currency" validate:"required,len=3"`
}

type ConsoleConfig struct {
	AccessCode int  `koanf:"access_code" validate:"gt=0"`
	Color      bool `koanf:"color"`
}

type LogConfig struct {
	Level string `koanf:"level" validate:"oneof=debug info warn error"`
}

// Config holds every setting of the inv tool.
type Config struct {
	Backup  BackupConfig  `koanf:"backup"`
	Ledger  LedgerConfig  `koanf:"ledger"`
	Console ConsoleConfig `koanf:"console"`
	Log     LogConfig     `koanf:"log"`
}

// Defaults returns the settings used when nothing is configured.
func Defaults() map[string]any {
	return map[string]any{
		"backup.file":         inventory.DefaultBackupFile,
		"backup.format":       inventory.Legacy.String(),
		"backup.strict":       false,
		"ledger.capacity":     0,
		"ledger.currency":     inventory.DefaultCurrency,
		"console.access_code": 189,
		"console.color":       true,
		"log.level":           "info",
	}
}

// Validate checks if the configuration values are valid.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}
	if !inventory.KnownCurrency(c.Ledger.Currency) {
		return fmt.Errorf("unknown currency %q", c.Ledger.Currency)
	}
	return nil
}

// Format returns the configured snapshot format.
func (c *Config) Format() inventory.Format {
	f, err := inventory.ParseFormat(c.Backup.Format)
	if err != nil {
		return inventory.Legacy
	}
	return f
}

// LedgerOptions returns the options to create a ledger with these settings.
func (c *Config) LedgerOptions() []inventory.Option {
	return []inventory.Option{
		inventory.WithCapacity(c.Ledger.Capacity),
		inventory.WithCurrency(c.Ledger.Currency),
	}
}

func (c *Config) String() string {
	var b strings.Builder
	b.WriteString("\n--- Backup ---\n")
	fmt.Fprintf(&b, "  backup.file: %s\n", c.Backup.File)
	fmt.Fprintf(&b, "  backup.format: %s\n", c.Backup.Format)
	fmt.Fprintf(&b, "  backup.strict: %t\n", c.Backup.Strict)
	b.WriteString("\n--- Ledger ---\n")
	fmt.Fprintf(&b, "  ledger.capacity: %d\n", c.Ledger.Capacity)
	fmt.Fprintf(&b, "  ledger.currency: %s\n", c.Ledger.Currency)
	b.WriteString("\n--- Console ---\n")
	b.WriteString("  console.access_code: ****\n")
	fmt.Fprintf(&b, "  console.color: %t\n", c.Console.Color)
	b.WriteString("\n--- Log ---\n")
	fmt.Fprintf(&b, "  log.level: %s\n", c.Log.Level)
	return b.String()
}

// envKey maps INV_BACKUP_FILE to backup.file. Only the first underscore after
// the prefix separates the section, so INV_CONSOLE_ACCESS_CODE maps to
// console.access_code.
func envKey(key string) string {
	key = strings.ToLower(key)
	key = strings.TrimPrefix(key, strings.ToLower(EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}

// Load reads the configuration from the defaults, the YAML file at path, the
// .env file and the environment. A missing file is not an error.
// Problems with optional sources are reported to logger and skipped.
func Load(path string, logger *slog.Logger) (*Config, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	k := koanf.New(".")

	// 1. Defaults.
	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("error loading defaults: %w", err)
	}

	// 2. YAML file.
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("error loading config file %q: %w", path, err)
			}
			logger.Debug("no config file", "path", path)
		}
	}

	// 3. .env file.
	if envFileMap, err := godotenv.Read(".env"); err == nil {
		envMap := make(map[string]any)
		for key, value := range envFileMap {
			if strings.HasPrefix(key, EnvPrefix) {
				envMap[envKey(key)] = value
			}
		}
		if err := k.Load(confmap.Provider(envMap, "."), nil); err != nil {
			logger.Warn("error loading .env config", "error", err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("error reading .env file", "error", err)
	}

	// 4. Environment, the highest priority.
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		logger.Warn("error loading env vars", "error", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}
