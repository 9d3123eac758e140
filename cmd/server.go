package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	s3blob "walletrisk/internal/blob/s3"
	"walletrisk/internal/cache/redis"
	"walletrisk/internal/config"
	"walletrisk/internal/core"
	"walletrisk/internal/dataset"
	"walletrisk/internal/db"
	"walletrisk/internal/http/handler"
	"walletrisk/internal/http/handler/middleware"
	"walletrisk/internal/http/payload"
	"walletrisk/internal/http/server"
	"walletrisk/internal/indexer"
	"walletrisk/internal/repository"
	"walletrisk/pkg/jwt"
	"walletrisk/pkg/log"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func Start() error {
	cfg, err := config.Load(os.Getenv(config.FileEnvKey))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := log.NewZapLogger("walletrisk", log.ParseLevel(cfg.LogLevel))
	defer logger.Sync()

	if err = cfg.Validate(); err != nil {
		logger.Errorw("invalid configuration", "error", err)
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// repository
	repo, err := newRepository(ctx, cfg)
	if err != nil {
		logger.Errorw("failed to set up repository", "error", err)
		return err
	}

	// sinks
	fileSink := dataset.NewFileSink(logger, cfg.Data.OutputDir)
	sinks := []core.ReportSink{fileSink}
	if cfg.S3.Bucket != "" {
		s3Client, err := s3blob.New(ctx, s3blob.ClientConfig{
			Endpoint:  cfg.S3.Endpoint,
			Region:    cfg.S3.Region,
			Bucket:    cfg.S3.Bucket,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
		})
		if err != nil {
			logger.Errorw("failed to create s3 client", "error", err)
			return err
		}
		sinks = append(sinks, s3blob.NewArchiver(logger, s3Client, cfg.S3.Bucket, cfg.S3.Prefix))
	}

	// payload cache
	var cache indexer.PayloadCache
	if cfg.Redis.Addr != "" {
		redisClient, err := redis.New(ctx, redis.ClientConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			logger.Errorw("failed to connect to redis", "error", err)
			return err
		}
		defer redisClient.Close()
		cache = redis.NewPayloadCache(redisClient)
	}

	source := indexer.NewClient(logger, indexer.Config{
		BaseURL:  cfg.Indexer.URL,
		APIKey:   cfg.Indexer.APIKey,
		ChainID:  cfg.Indexer.ChainID,
		PageSize: cfg.Indexer.PageSize,
		MaxPages: cfg.Indexer.MaxPages,
		Workers:  cfg.Indexer.Workers,
		Timeout:  cfg.Indexer.Timeout.Duration,
		CacheTTL: cfg.Redis.TTL.Duration,
		Retry:    indexer.DefaultRetryPolicy(),
	}, cache)

	// jwt service
	jwtService := jwt.NewJWTService([]byte(cfg.API.JWTSecret))

	assessor := core.NewAssessor(
		logger,
		repo,
		jwtService,
		source,
		cfg.Indexer.Workers,
		sinks...)

	if err = runAssessment(ctx, logger, cfg.Data, source, fileSink, assessor); err != nil {
		logger.Errorw("assessment run failed", "error", err)
		return err
	}

	if cfg.API.Port == "" {
		return nil
	}
	stop()

	// handler
	riskHlr := handler.NewRiskHandler(
		logger,
		payload.DecodeValidator{},
		assessor)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	riskHlr.Register(mux)

	srv := server.NewHTTP(logger, hdlr, cfg.API.Port)
	return run(srv)
}

// runAssessment scores either a replayed snapshot or the wallets file. A fresh
// fetch is saved as a snapshot before scoring.
func runAssessment(ctx context.Context, logger *zap.SugaredLogger, cfg config.DataConfig, source core.PayloadSource, fileSink *dataset.FileSink, assessor *core.Assessor) error {
	var payloads []core.WalletPayload

	if cfg.Snapshot != "" {
		f, err := os.Open(cfg.Snapshot)
		if err != nil {
			return fmt.Errorf("open snapshot: %w", err)
		}
		payloads, err = dataset.ReadSnapshot(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("read snapshot: %w", err)
		}
		logger.Infow("snapshot loaded", "file", cfg.Snapshot, "wallets", len(payloads))
	} else {
		f, err := os.Open(cfg.WalletsFile)
		if err != nil {
			return fmt.Errorf("open wallets file: %w", err)
		}
		wallets, err := dataset.LoadWallets(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("load wallets: %w", err)
		}
		if len(wallets) == 0 {
			logger.Warnw("wallets file is empty, nothing to assess", "file", cfg.WalletsFile)
			return nil
		}

		payloads, err = source.FetchPayloads(ctx, wallets)
		if err != nil {
			if len(payloads) == 0 {
				return fmt.Errorf("fetch payloads: %w", err)
			}
			logger.Warnw("some wallets could not be fetched", "error", err)
		}

		if err = fileSink.SaveSnapshot(payloads); err != nil {
			return fmt.Errorf("save snapshot: %w", err)
		}
	}

	report, err := assessor.AssessPayloads(ctx, payloads)
	if err != nil {
		return err
	}

	logger.Infow("assessment finished",
		"runId", report.RunID,
		"wallets", len(report.Scores),
		"transactions", len(report.Transactions))
	return nil
}

func newRepository(ctx context.Context, cfg config.App) (core.Repository, error) {
	var users []repository.User
	if cfg.API.User != "" {
		users = append(users, repository.User{
			ID:           uuid.NewString(),
			Username:     cfg.API.User,
			PasswordHash: cfg.API.PasswordHash,
		})
	}

	if cfg.DB.ConnectionURL == "" {
		return repository.NewMemoryRepository(users...), nil
	}

	dbConn, err := db.NewGormDB(cfg.DB.ConnectionURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	repo := repository.NewRunRepository(dbConn)
	if err = repo.MigrateAndSeed(ctx, users); err != nil {
		return nil, fmt.Errorf("migrate and seed: %w", err)
	}
	return repo, nil
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if errors.Is(err, http.ErrServerClosed) || err == nil {
		return sdErr
	}

	return err
}
