package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

var LogLevels = []string{"trace", "debug", "info", "warn", "error", "disabled"}

type Config struct {
	Store         StoreConfig    `mapstructure:"store"`
	Currency      CurrencyConfig `mapstructure:"currency"`
	Logging       LoggingConfig  `mapstructure:"logging"`
	Denominations []int64        `mapstructure:"denominations"`
	Accounts      []AccountSeed  `mapstructure:"accounts"`
	ConfigPath    string         `mapstructure:"-"`
}

type StoreConfig struct {
	Driver string `mapstructure:"driver"`
}

type CurrencyConfig struct {
	Symbol string `mapstructure:"symbol"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

type AccountSeed struct {
	ID      string `mapstructure:"id"`
	PIN     string `mapstructure:"pin"`
	Balance int64  `mapstructure:"balance"`
}

func NewDefault() *Config {
	return &Config{
		Store:         StoreConfig{Driver: DriverMemory},
		Currency:      CurrencyConfig{Symbol: "₹"},
		Logging:       LoggingConfig{Level: "warn"},
		Denominations: []int64{100, 200, 500, 2000},
		Accounts: []AccountSeed{
			{ID: "1234", PIN: "5678", Balance: 1000},
			{ID: "2345", PIN: "6789", Balance: 2000},
			{ID: "3456", PIN: "7890", Balance: 3000},
		},
	}
}

// SetDefaults registers NewDefault on v so that a config file or the
// environment replaces whole values (lists included) instead of merging into them.
func SetDefaults(v *viper.Viper) {
	def := NewDefault()

	v.SetDefault("store.driver", def.Store.Driver)
	v.SetDefault("currency.symbol", def.Currency.Symbol)
	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("denominations", def.Denominations)

	accounts := make([]map[string]any, 0, len(def.Accounts))
	for _, acc := range def.Accounts {
		accounts = append(accounts, map[string]any{
			"id":      acc.ID,
			"pin":     acc.PIN,
			"balance": acc.Balance,
		})
	}
	v.SetDefault("accounts", accounts)
}

// Load reads cfgFile (or atm.yaml from the working directory or the app data
// directory when cfgFile is empty), applies ATM_* environment overrides and validates the result.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("atm")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if appDir, err := AppDataDir(); err == nil {
			v.AddConfigPath(appDir)
		}
	}

	v.SetEnvPrefix("ATM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("config file error: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %v", err)
	}
	cfg.ConfigPath = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverMemory, DriverSQLite:
	default:
		return fmt.Errorf("unknown store driver '%s' (must be %s or %s)", c.Store.Driver, DriverMemory, DriverSQLite)
	}

	if !slices.Contains(LogLevels, c.Logging.Level) {
		return fmt.Errorf("unknown log level '%s' (must be one of %s)", c.Logging.Level, strings.Join(LogLevels, ", "))
	}

	return ValidateDenominations(c.Denominations)
}

// ValidateDenominations requires a non-empty set of positive, distinct values.
func ValidateDenominations(values []int64) error {
	if len(values) == 0 {
		return fmt.Errorf("at least one denomination is required")
	}
	seen := make(map[int64]bool, len(values))
	for _, d := range values {
		if d <= 0 {
			return fmt.Errorf("denomination %d must be positive", d)
		}
		if seen[d] {
			return fmt.Errorf("denomination %d is listed twice", d)
		}
		seen[d] = true
	}
	return nil
}

func AppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".atm"), nil
	}

	return filepath.Join(configDir, "atm"), nil
}
