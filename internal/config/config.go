package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv      = "BARBARIANS_BOT_CONFIG"
	botTokenEnv        = "BOT_TOKEN"
	adminGroupIDEnv    = "ADMIN_GROUP_ID"
	targetChannelIDEnv = "TARGET_CHANNEL_ID"
	logLevelEnv        = "LOG_LEVEL"
)

// Config holds everything the bot needs at startup.
type Config struct {
	Telegram TelegramConfig `yaml:"telegram"`
	Intake   IntakeConfig   `yaml:"intake"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// TelegramConfig wires the gateway credential and polling behavior.
type TelegramConfig struct {
	BotToken           string `yaml:"botToken"`
	PollTimeoutSeconds int    `yaml:"pollTimeoutSeconds"`
}

// IntakeConfig names the moderator surface and the invite destination.
type IntakeConfig struct {
	AdminGroupID    int64 `yaml:"adminGroupId"`
	TargetChannelID int64 `yaml:"targetChannelId"`
}

// LoggingConfig controls log verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads YAML configuration (if a file is configured), applies
// environment overrides, and fails when a required value is missing. No
// event processing may start on a partial configuration.
func Load() (Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(botTokenEnv); v != "" {
		c.Telegram.BotToken = v
	}
	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}

	if v := os.Getenv(adminGroupIDEnv); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config: %s: %w", adminGroupIDEnv, err)
		}
		c.Intake.AdminGroupID = id
	}
	if v := os.Getenv(targetChannelIDEnv); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config: %s: %w", targetChannelIDEnv, err)
		}
		c.Intake.TargetChannelID = id
	}

	return nil
}

func (c *Config) validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("config: bot token is required (%s)", botTokenEnv)
	}
	if c.Intake.AdminGroupID == 0 {
		return fmt.Errorf("config: admin group id is required (%s)", adminGroupIDEnv)
	}
	if c.Intake.TargetChannelID == 0 {
		return fmt.Errorf("config: target channel id is required (%s)", targetChannelIDEnv)
	}
	return nil
}

func defaultConfig() Config {
	return Config{
		Telegram: TelegramConfig{PollTimeoutSeconds: 50},
		Logging:  LoggingConfig{Level: "info"},
	}
}
