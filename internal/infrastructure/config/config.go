package config

import (
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Config is read from the environment. A .env file, when present, is loaded by
// godotenv before Load runs.
type Config struct {
	Port     string `envconfig:"PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	LogJSON  bool   `envconfig:"LOG_JSON" default:"false"`

	AWSRegion          string `envconfig:"AWS_REGION" default:"us-east-1"`
	AWSAccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
	AWSSecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`
	DynamoDBEndpoint   string `envconfig:"DYNAMODB_ENDPOINT"`

	RequisicoesTable    string `envconfig:"REQUISICOES_TABLE" default:"requisicoes"`
	ValorHistoricoTable string `envconfig:"VALOR_HISTORICO_TABLE" default:"requisicao_valor_historico"`

	// RedisAddr empty disables status notifications.
	RedisAddr     string `envconfig:"REDIS_ADDR"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`
	NotifyChannel string `envconfig:"NOTIFY_CHANNEL" default:"compras:requisicoes:status"`

	AnalyticsRefreshInterval time.Duration `envconfig:"ANALYTICS_REFRESH_INTERVAL" default:"5m"`
	AnalyticsPeriod          string        `envconfig:"ANALYTICS_PERIOD" default:"30d"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, errors.Wrap(err, "failed to parse config from env")
	}
	return cfg, nil
}

// ConfigureLogging applies the log level and format to the standard logrus logger.
func ConfigureLogging(cfg Config) {
	if cfg.LogJSON {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	level, err := log.ParseLevel(strings.TrimSpace(cfg.LogLevel))
	if err != nil {
		log.WithError(err).Warnf("unknown log level %q, using info", cfg.LogLevel)
		level = log.InfoLevel
	}
	log.SetLevel(level)
}
