package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/techlinker/internal/health"
	"github.com/sbilibin2017/techlinker/internal/jwt"
	"github.com/sbilibin2017/techlinker/internal/logger"
	"github.com/sbilibin2017/techlinker/internal/mailer"
	"github.com/sbilibin2017/techlinker/internal/migrations"
	"github.com/sbilibin2017/techlinker/internal/models"
	"github.com/sbilibin2017/techlinker/internal/repositories"
	"github.com/sbilibin2017/techlinker/internal/services"
	"github.com/sbilibin2017/techlinker/internal/storage"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title TechLinker API
// @version 1.0.0
// @description Accounts, email verification, profiles, skills and onboarding for the TechLinker job-matching platform
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run wires storage, services and transports, serves HTTP and gRPC health
// until ctx is cancelled or a termination signal arrives, then shuts down.
func run(ctx context.Context, cfg *config) error {
	var logOpts []logger.Option
	if cfg.LogFile != "" {
		logOpts = append(logOpts, logger.WithFile(cfg.LogFile, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays))
	}
	if err := logger.Initialize(cfg.LogLevel, logOpts...); err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if err := migrations.Up(ctx, db.DB); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         net.JoinHostPort(cfg.RedisHost, fmt.Sprint(cfg.RedisPort)),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer rdb.Close()

	// Kafka is optional
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
	}

	// S3 is optional
	var presigner services.PicturePresigner
	if cfg.S3Bucket != "" {
		p, err := storage.NewPicturePresigner(ctx, storage.S3Config{
			Region:       cfg.S3Region,
			AccessKey:    cfg.S3AccessKey,
			SecretKey:    cfg.S3SecretKey,
			BaseEndpoint: cfg.S3Endpoint,
			Bucket:       cfg.S3Bucket,
			Expires:      cfg.S3PresignExp,
		})
		if err != nil {
			return fmt.Errorf("init s3: %w", err)
		}
		presigner = p
	}

	jwtSvc := jwt.New(jwt.WithSecretKey(cfg.JWTSecretKey), jwt.WithExpiration(cfg.JWTExp))

	mail := mailer.New(mailer.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		User:     cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	})

	// Initialize repositories
	transactor := repositories.NewTransactor(db)
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, repositories.GetTxFromContext)
	tokenRepo := repositories.NewTokenRepository(db, repositories.GetTxFromContext)
	skillReadRepo := repositories.NewSkillReadRepository(db)
	skillWriteRepo := repositories.NewSkillWriteRepository(db, repositories.GetTxFromContext)
	skillCacheRepo := repositories.NewSkillCacheRepository(rdb, cfg.RedisExp)

	// Initialize services
	events := services.NewKafkaEventPublisher(kafkaWriter)
	tokenService := services.NewTokenService(transactor, tokenRepo, userWriteRepo,
		services.WithTokenPolicy(models.TokenKindVerification, services.TokenPolicy{
			TTL:          cfg.VerificationTokenTTL,
			PurgeOnIssue: true,
		}),
		services.WithTokenPolicy(models.TokenKindPasswordReset, services.TokenPolicy{
			TTL:          cfg.ResetTokenTTL,
			PurgeOnIssue: cfg.ResetTokenPurge,
		}),
	)
	authService := services.NewAuthService(transactor, userReadRepo, userWriteRepo, tokenService, jwtSvc, mail, events,
		services.WithFrontendURL(cfg.FrontendURL),
		services.WithDebugTokens(cfg.debugTokens()),
	)
	onboardingService := services.NewOnboardingService(userReadRepo, userWriteRepo, skillReadRepo, skillWriteRepo, skillCacheRepo, events)
	profileService := services.NewProfileService(userReadRepo, userWriteRepo, skillReadRepo, skillWriteRepo, skillCacheRepo, presigner)

	// gRPC health service
	healthSrv := health.New(
		health.WithInterval(cfg.HealthInterval),
		health.WithCheck("postgres", db.PingContext),
		health.WithCheck("redis", func(ctx context.Context) error { return rdb.Ping(ctx).Err() }),
	)

	srv := &http.Server{
		Addr: net.JoinHostPort(cfg.AppHost, cfg.AppPort),
		Handler: newRouter(cfg, routerDeps{
			db:         db,
			tokener:    jwtSvc,
			health:     healthSrv,
			auth:       authService,
			profile:    profileService,
			onboarding: onboardingService,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	grpcLis, err := net.Listen("tcp", net.JoinHostPort(cfg.GRPCHost, cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("listen grpc: %w", err)
	}

	// Graceful shutdown
	errChan := make(chan error, 2)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go healthSrv.Run(ctxShutdown)

	go func() {
		logger.Log.Infof("gRPC health server listening on %s", grpcLis.Addr())
		if err := healthSrv.Serve(grpcLis); err != nil {
			errChan <- fmt.Errorf("gRPC server failed: %w", err)
		}
	}()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	var serveErr error
	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping servers...")
	case serveErr = <-errChan:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}
	healthSrv.Stop()

	if serveErr != nil {
		return serveErr
	}
	logger.Log.Info("Servers stopped gracefully")
	return nil
}
