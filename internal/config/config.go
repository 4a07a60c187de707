package config

import (
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Store  StoreConfig  `yaml:"store" mapstructure:"store"`
	Data   DataConfig   `yaml:"data" mapstructure:"data"`
	Rules  RulesConfig  `yaml:"rules" mapstructure:"rules"`
	Alerts AlertsConfig `yaml:"alerts" mapstructure:"alerts"`
	Report ReportConfig `yaml:"report" mapstructure:"report"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// StoreConfig configures the run-ledger database backend.
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"`
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
}

// DataConfig holds the well-known corpus file locations.
type DataConfig struct {
	// Corpus is the sentiment-labeled input produced upstream.
	Corpus string `yaml:"corpus" mapstructure:"corpus"`
	// Enriched is the enriched corpus destination.
	Enriched string `yaml:"enriched" mapstructure:"enriched"`
	// Alerts is the alert history file.
	Alerts string `yaml:"alerts" mapstructure:"alerts"`
	// Charset names the source encoding of CSV inputs; empty means UTF-8.
	Charset string `yaml:"charset" mapstructure:"charset"`
}

// RulesConfig points at an optional rule-set override file.
type RulesConfig struct {
	File string `yaml:"file" mapstructure:"file"`
}

// AlertsConfig holds the alert detection thresholds.
type AlertsConfig struct {
	NegativeConfidenceThreshold float64       `yaml:"negative_confidence_threshold" mapstructure:"negative_confidence_threshold"`
	SpikeWindow                 time.Duration `yaml:"spike_window" mapstructure:"spike_window"`
	SpikeMultiplier             float64       `yaml:"spike_multiplier" mapstructure:"spike_multiplier"`
	BaselineFloor               float64       `yaml:"baseline_floor" mapstructure:"baseline_floor"`
	DedupeBucket                time.Duration `yaml:"dedupe_bucket" mapstructure:"dedupe_bucket"`
}

// ReportConfig configures the summary report output.
type ReportConfig struct {
	StatsOutput string `yaml:"stats_output" mapstructure:"stats_output"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("FEEDBACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.database_url", "feedback.db")
	v.SetDefault("data.corpus", "data/analyzed/feedback_results.csv")
	v.SetDefault("data.enriched", "data/analyzed/feedback_enriched.csv")
	v.SetDefault("data.alerts", "data/analyzed/alerts.csv")
	v.SetDefault("alerts.negative_confidence_threshold", 0.7)
	v.SetDefault("alerts.spike_window", "24h")
	v.SetDefault("alerts.spike_multiplier", 2.0)
	v.SetDefault("alerts.baseline_floor", 0.1)
	v.SetDefault("alerts.dedupe_bucket", "1h")
	v.SetDefault("report.stats_output", "data/analyzed/feedback_stats.csv")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
