package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	RunAddress      string  `env:"RUN_ADDRESS"`
	DatabaseDSN     string  `env:"DATABASE_URI"`
	MigrationsDir   string  `env:"MIGRATIONS_DIR"`
	JWTClientSecret string  `env:"JWT_CLIENT_SECRET"`
	TimeScaleFactor float64 `env:"TIME_SCALE_FACTOR"`
}

func LoadConfig() (*Config, error) {
	// локальный .env файл опционален.
	_ = godotenv.Load()

	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	loadFlags(&flagsConfig)

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	if conf.JWTClientSecret == "" {
		return nil, errors.New("JWT client secret is not set")
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func loadFlags(flagConfig *Config) {
	flag.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flag.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	flag.StringVar(&flagConfig.MigrationsDir, "m", "migrations", "Database migrations directory")
	flag.StringVar(&flagConfig.JWTClientSecret, "s", "", "JWT secret for API client tokens")
	flag.Float64Var(&flagConfig.TimeScaleFactor, "t", 1, "Benchmark time scale factor")

	flag.Parse()
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	scaleFactor := envConfig.TimeScaleFactor
	if scaleFactor == 0 {
		scaleFactor = flagsConfig.TimeScaleFactor
	}
	return &Config{
		RunAddress:      defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:     defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir:   defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		JWTClientSecret: defaultIfBlank(envConfig.JWTClientSecret, flagsConfig.JWTClientSecret),
		TimeScaleFactor: scaleFactor,
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
