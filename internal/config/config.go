package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/jungle-king/internal/jungle"
)

var ErrInvalidConfig = errors.New("invalid config")

var logLevels = []string{"debug", "info", "warn", "error"}

type Config struct {
	LogLevel  string    `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Seed      uint64    `yaml:"seed" env:"JUNGLE_SEED" env-default:"0"`
	Rules     Rules     `yaml:"rules"`
	Telemetry Telemetry `yaml:"telemetry"`
}

type Rules struct {
	TrapPolarity    string `yaml:"trap-polarity" env:"JUNGLE_TRAP_POLARITY" env-default:"enemy"`
	EliminationWins bool   `yaml:"elimination-wins" env:"JUNGLE_ELIMINATION_WINS" env-default:"false"`
}

type Telemetry struct {
	Enabled     bool   `yaml:"enabled" env:"JUNGLE_TELEMETRY" env-default:"false"`
	ServiceName string `yaml:"service-name" env:"JUNGLE_SERVICE_NAME" env-default:"jungle-king"`
}

// MustLoad - load all configurations in config.yml file, or from the environment
// when the file is missing.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	if !slices.Contains(logLevels, that.LogLevel) {
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, that.LogLevel)
	}

	if _, err := jungle.ParseTrapPolarity(that.Rules.TrapPolarity); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// GameRules - converts the rules section into engine rules.
func (that *Rules) GameRules() jungle.Rules {
	polarity, err := jungle.ParseTrapPolarity(that.TrapPolarity)
	if err != nil {
		polarity = jungle.TrapEnemy
	}

	return jungle.Rules{
		TrapPolarity:    polarity,
		EliminationWins: that.EliminationWins,
	}
}
