package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// FileEnvKey names the optional TOML file read by Load's callers.
const FileEnvKey = "RISK_CONFIG_FILE"

const (
	indexerURLEnvKey      = "RISK_INDEXER_URL"
	indexerAPIKeyEnvKey   = "RISK_INDEXER_API_KEY"
	chainIDEnvKey         = "RISK_CHAIN_ID"
	pageSizeEnvKey        = "RISK_PAGE_SIZE"
	maxPagesEnvKey        = "RISK_MAX_PAGES"
	fetchWorkersEnvKey    = "RISK_FETCH_WORKERS"
	fetchTimeoutEnvKey    = "RISK_FETCH_TIMEOUT"
	walletsFileEnvKey     = "RISK_WALLETS_FILE"
	outputDirEnvKey       = "RISK_OUTPUT_DIR"
	snapshotEnvKey        = "RISK_SNAPSHOT_FILE"
	dbConnEnvKey          = "RISK_DB_CONNECTION_URL"
	redisAddrEnvKey       = "RISK_REDIS_ADDR"
	redisPasswordEnvKey   = "RISK_REDIS_PASSWORD"
	redisDBEnvKey         = "RISK_REDIS_DB"
	cacheTTLEnvKey        = "RISK_CACHE_TTL"
	s3BucketEnvKey        = "RISK_S3_BUCKET"
	s3RegionEnvKey        = "RISK_S3_REGION"
	s3EndpointEnvKey      = "RISK_S3_ENDPOINT"
	s3AccessKeyEnvKey     = "RISK_S3_ACCESS_KEY"
	s3SecretKeyEnvKey     = "RISK_S3_SECRET_KEY"
	s3PrefixEnvKey        = "RISK_S3_PREFIX"
	apiPortEnvKey         = "RISK_API_PORT"
	jwtSecretEnvKey       = "RISK_JWT_SECRET"
	apiUserEnvKey         = "RISK_API_USER"
	apiPasswordHashEnvKey = "RISK_API_PASSWORD_HASH"
	logLevelEnvKey        = "RISK_LOG_LEVEL"
)

// Load starts from Defaults, merges the TOML file at path when path is not
// empty, loads a .env file if present and applies RISK_* environment overrides.
// The result is not validated.
func Load(path string) (App, error) {
	cfg := Defaults()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return App{}, fmt.Errorf("decode config file %s: %w", path, err)
		}
	}

	_ = godotenv.Load()

	if err := applyEnvOverrides(&cfg); err != nil {
		return App{}, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *App) error {
	setStr(&cfg.Indexer.URL, indexerURLEnvKey)
	setStr(&cfg.Indexer.APIKey, indexerAPIKeyEnvKey)
	setStr(&cfg.Data.WalletsFile, walletsFileEnvKey)
	setStr(&cfg.Data.OutputDir, outputDirEnvKey)
	setStr(&cfg.Data.Snapshot, snapshotEnvKey)
	setStr(&cfg.DB.ConnectionURL, dbConnEnvKey)
	setStr(&cfg.Redis.Addr, redisAddrEnvKey)
	setStr(&cfg.Redis.Password, redisPasswordEnvKey)
	setStr(&cfg.S3.Bucket, s3BucketEnvKey)
	setStr(&cfg.S3.Region, s3RegionEnvKey)
	setStr(&cfg.S3.Endpoint, s3EndpointEnvKey)
	setStr(&cfg.S3.AccessKey, s3AccessKeyEnvKey)
	setStr(&cfg.S3.SecretKey, s3SecretKeyEnvKey)
	setStr(&cfg.S3.Prefix, s3PrefixEnvKey)
	setStr(&cfg.API.Port, apiPortEnvKey)
	setStr(&cfg.API.JWTSecret, jwtSecretEnvKey)
	setStr(&cfg.API.User, apiUserEnvKey)
	setStr(&cfg.API.PasswordHash, apiPasswordHashEnvKey)
	setStr(&cfg.LogLevel, logLevelEnvKey)

	ints := []struct {
		dst *int
		key string
	}{
		{&cfg.Indexer.ChainID, chainIDEnvKey},
		{&cfg.Indexer.PageSize, pageSizeEnvKey},
		{&cfg.Indexer.MaxPages, maxPagesEnvKey},
		{&cfg.Indexer.Workers, fetchWorkersEnvKey},
		{&cfg.Redis.DB, redisDBEnvKey},
	}
	for _, i := range ints {
		if err := setInt(i.dst, i.key); err != nil {
			return err
		}
	}

	if err := setDuration(&cfg.Indexer.Timeout, fetchTimeoutEnvKey); err != nil {
		return err
	}
	return setDuration(&cfg.Redis.TTL, cacheTTLEnvKey)
}

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("parse %s: %w", key, err)
	}
	*dst = n
	return nil
}

func setDuration(dst *Duration, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("parse %s: %w", key, err)
	}
	dst.Duration = d
	return nil
}
