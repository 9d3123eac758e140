package config

import (
	"errors"
	"fmt"
	"time"
)

var ErrMissingValue error = errors.New("required configuration value missing")

type App struct {
	Indexer  IndexerConfig `toml:"indexer"`
	Data     DataConfig    `toml:"data"`
	DB       DBConfig      `toml:"db"`
	Redis    RedisConfig   `toml:"redis"`
	S3       S3Config      `toml:"s3"`
	API      APIConfig     `toml:"api"`
	LogLevel string        `toml:"log_level"`
}

type IndexerConfig struct {
	URL      string   `toml:"url"`
	APIKey   string   `toml:"api_key"`
	ChainID  int      `toml:"chain_id"`
	PageSize int      `toml:"page_size"`
	MaxPages int      `toml:"max_pages"`
	Workers  int      `toml:"workers"`
	Timeout  Duration `toml:"timeout"`
}

type DataConfig struct {
	WalletsFile string `toml:"wallets_file"`
	OutputDir   string `toml:"output_dir"`
	// Snapshot replays a raw_transactions.json file instead of calling the indexer.
	Snapshot string `toml:"snapshot"`
}

type DBConfig struct {
	ConnectionURL string `toml:"connection_url"`
}

type RedisConfig struct {
	Addr     string   `toml:"addr"`
	Password string   `toml:"password"`
	DB       int      `toml:"db"`
	TTL      Duration `toml:"ttl"`
}

type S3Config struct {
	Bucket    string `toml:"bucket"`
	Region    string `toml:"region"`
	Endpoint  string `toml:"endpoint"`
	AccessKey string `toml:"access_key"`
	SecretKey string `toml:"secret_key"`
	Prefix    string `toml:"prefix"`
}

type APIConfig struct {
	Port      string `toml:"port"`
	JWTSecret string `toml:"jwt_secret"`
	// User and PasswordHash (bcrypt) seed the first API user.
	User         string `toml:"user"`
	PasswordHash string `toml:"password_hash"`
}

// Duration lets TOML files use strings like "30s" or "6h".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

func Defaults() App {
	return App{
		Indexer: IndexerConfig{
			URL:      "https://api.covalenthq.com/v1",
			ChainID:  1,
			PageSize: 100,
			MaxPages: 10,
			Workers:  4,
			Timeout:  Duration{30 * time.Second},
		},
		Data: DataConfig{
			WalletsFile: "data/wallets.csv",
			OutputDir:   "data",
		},
		Redis: RedisConfig{
			TTL: Duration{6 * time.Hour},
		},
		LogLevel: "info",
	}
}

// Validate reports the first required value that is missing.
func (a App) Validate() error {
	if a.Data.Snapshot == "" && a.Indexer.APIKey == "" {
		return fmt.Errorf("%w: %s", ErrMissingValue, indexerAPIKeyEnvKey)
	}
	if a.Indexer.Workers <= 0 {
		return fmt.Errorf("%w: %s must be positive", ErrMissingValue, fetchWorkersEnvKey)
	}
	if a.API.Port != "" && a.API.JWTSecret == "" {
		return fmt.Errorf("%w: %s", ErrMissingValue, jwtSecretEnvKey)
	}
	if a.S3.Bucket != "" && a.S3.Region == "" {
		return fmt.Errorf("%w: %s", ErrMissingValue, s3RegionEnvKey)
	}
	if (a.API.User == "") != (a.API.PasswordHash == "") {
		return fmt.Errorf("%w: %s and %s must be set together", ErrMissingValue, apiUserEnvKey, apiPasswordHashEnvKey)
	}
	return nil
}
