package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"modernblackjack-server/internal/util"
)

// Config provides configuration for the Modern Blackjack server
type Config struct {
	loaded bool
	Log    struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}
	Gemini struct {
		APIKey string `yaml:"apiKey" envconfig:"api_key"`
		Model  string `yaml:"model" envconfig:"model"`
	}
	Game struct {
		InitialChips       int     `yaml:"initialChips" envconfig:"initial_chips"`
		MinimumBet         int     `yaml:"minimumBet" envconfig:"minimum_bet"`
		DefaultBet         int     `yaml:"defaultBet" envconfig:"default_bet"`
		DeckCount          int     `yaml:"deckCount" envconfig:"deck_count"`
		DealerStandScore   int     `yaml:"dealerStandScore" envconfig:"dealer_stand_score"`
		BlackjackPayout    float64 `yaml:"blackjackPayout" envconfig:"blackjack_payout"`
		ReshuffleThreshold int     `yaml:"reshuffleThreshold" envconfig:"reshuffle_threshold"`
	}
	SessionIdleTimeout int `yaml:"sessionIdleTimeout" envconfig:"session_idle_timeout"`
}

var config Config

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

// Load will load the configuration.
// Values come from defaults, then the config file if one exists, then the
// MBJ_* environment.
func Load() error {
	config = defaults()

	configFile := util.Getenv("MBJ_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("mbj", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}

// DefaultConfig returns a configuration with only the defaults applied
func DefaultConfig() Config {
	return defaults()
}

func defaults() Config {
	var c Config
	c.Log.Level = "info"
	c.Game.InitialChips = 100
	c.Game.MinimumBet = 5
	c.Game.DefaultBet = 10
	c.Game.DeckCount = 4
	c.Game.DealerStandScore = 17
	c.Game.BlackjackPayout = 1.5
	c.Game.ReshuffleThreshold = 10
	c.SessionIdleTimeout = 300
	return c
}
