package config

import (
	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTP_PORT     string `env:"HTTP_PORT" envDefault:"8080"`
	DB_STRING     string `env:"DB_STRING"`
	BLOB_KEY      string `env:"BLOB_KEY" envDefault:"darji_orders"`
	KAFKA_BROKERS string `env:"KAFKA_BROKERS"`
	KAFKA_TOPIC   string `env:"KAFKA_TOPIC" envDefault:"darji.order-events"`
	GEMINI_KEY    string `env:"GEMINI_API_KEY"`
	GEMINI_MODEL  string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
