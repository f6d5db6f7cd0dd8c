package config

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"familyhub-server/internal/util"
	"familyhub-server/pkg/playable/poker/decision"
	"familyhub-server/pkg/playable/poker/texasholdem"
)

// Poker configures the hold'em sessions
type Poker struct {
	StartingChips int `yaml:"startingChips" envconfig:"starting_chips"`
	SmallBlind    int `yaml:"smallBlind" envconfig:"small_blind"`
	BigBlind      int `yaml:"bigBlind" envconfig:"big_blind"`
	// DecisionTimeout and TurnDelay are in milliseconds
	DecisionTimeout int                       `yaml:"decisionTimeout" envconfig:"decision_timeout"`
	TurnDelay       int                       `yaml:"turnDelay" envconfig:"turn_delay"`
	OpenRouter      decision.OpenRouterConfig `yaml:"openRouter" envconfig:"open_router"`
}

// Config provides configuration for the family games hub
type Config struct {
	loaded         bool
	PGDSN          string `yaml:"pgDsn" envconfig:"pg_dsn"`
	MigrationsPath string `yaml:"migrationsPath" envconfig:"migrations_path"`
	// PasscodeHash is the argon2id hash of the family passcode
	PasscodeHash string `yaml:"passcodeHash" envconfig:"passcode_hash"`
	JWT          struct {
		Secret string `yaml:"secret" envconfig:"secret"`
		// TTL is in seconds
		TTL int `yaml:"ttl" envconfig:"ttl"`
	} `yaml:"jwt"`
	RecaptchaSecret string   `yaml:"recaptchaSecret" envconfig:"recaptcha_secret"`
	FamilyMembers   []string `yaml:"familyMembers" envconfig:"family_members"`
	CORS            struct {
		AllowedOrigins []string `yaml:"allowedOrigins" envconfig:"allowed_origins"`
	} `yaml:"cors"`
	Log struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	Poker Poker `yaml:"poker"`
}

var config Config

// DefaultConfig returns the configuration used when no file or environment overrides a value
func DefaultConfig() Config {
	var cfg Config
	cfg.MigrationsPath = "./sql"
	cfg.JWT.TTL = 1800
	cfg.FamilyMembers = []string{"Dad", "Mom", "Jonas", "Bo", "Oliver", "Torvald"}
	cfg.CORS.AllowedOrigins = []string{"*"}
	cfg.Log.Level = "info"

	game := texasholdem.DefaultOptions()
	cfg.Poker.StartingChips = game.StartingChips
	cfg.Poker.SmallBlind = game.SmallBlind
	cfg.Poker.BigBlind = game.BigBlind
	cfg.Poker.DecisionTimeout = 15000
	cfg.Poker.TurnDelay = 1000
	cfg.Poker.OpenRouter.URL = decision.DefaultOpenRouterURL
	cfg.Poker.OpenRouter.Models = []string{"anthropic/claude-sonnet-4.5", "google/gemini-3-flash-preview", "openai/gpt-5.2"}

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing configuration file is not an error
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("FHUB_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("fhub", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

// JWTTTL returns how long a session cookie is valid
func (c Config) JWTTTL() time.Duration {
	return time.Duration(c.JWT.TTL) * time.Second
}
