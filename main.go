package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/nuam-exchange/taxrating-backend/api"
	"github.com/nuam-exchange/taxrating-backend/infra"
	"github.com/nuam-exchange/taxrating-backend/repositories"
	"github.com/nuam-exchange/taxrating-backend/usecases"
	"github.com/nuam-exchange/taxrating-backend/utils"
)

type AppConfiguration struct {
	env             string
	port            string
	loggingFormat   string
	sentryDsn       string
	uploadBucketUrl string
	pgConfig        infra.PgConfig
	apiConfig       api.Configuration
	tokenLifetime   time.Duration
	jwtSigningKey   string
	jwtSigningFile  string
}

func loadConfiguration() AppConfiguration {
	return AppConfiguration{
		env:             utils.GetEnv("ENV", "development"),
		port:            utils.GetEnv("PORT", "8080"),
		loggingFormat:   utils.GetEnv("LOGGING_FORMAT", "text"),
		sentryDsn:       utils.GetEnv("SENTRY_DSN", ""),
		uploadBucketUrl: utils.GetEnv("UPLOAD_BUCKET_URL", "file:///tmp/taxrating-uploads"),
		pgConfig: infra.PgConfig{
			ConnectionString:   utils.GetEnv("PG_CONNECTION_STRING", ""),
			Database:           utils.GetEnv("PG_DATABASE", "taxrating"),
			Hostname:           utils.GetEnv("PG_HOSTNAME", "localhost"),
			Password:           utils.GetEnv("PG_PASSWORD", ""),
			Port:               utils.GetEnv("PG_PORT", "5432"),
			User:               utils.GetEnv("PG_USER", "postgres"),
			MaxPoolConnections: utils.GetEnv("PG_MAX_POOL_SIZE", infra.DEFAULT_MAX_CONNECTIONS),
			SslMode:            utils.GetEnv("PG_SSL_MODE", "prefer"),
		},
		apiConfig: api.Configuration{
			Env:            utils.GetEnv("ENV", "development"),
			Port:           utils.GetEnv("PORT", "8080"),
			DefaultTimeout: utils.GetEnv("REQUEST_TIMEOUT", 10*time.Second),
			ProcessTimeout: utils.GetEnv("PROCESS_TIMEOUT", 55*time.Second),
		},
		tokenLifetime: utils.GetEnv("TOKEN_LIFETIME", time.Hour),
		jwtSigningKey: utils.GetEnv("AUTHENTICATION_JWT_SIGNING_KEY", ""),
		jwtSigningFile: utils.GetEnv("AUTHENTICATION_JWT_SIGNING_KEY_FILE", ""),
	}
}

func newUsecases(ctx context.Context, conf AppConfiguration) (usecases.Usecases, error) {
	pool, err := infra.NewPostgresConnectionPool(ctx, conf.pgConfig.GetConnectionString(),
		conf.pgConfig.MaxPoolConnections)
	if err != nil {
		return usecases.Usecases{}, fmt.Errorf(
			"error creating postgres connection pool: %w", err)
	}

	signingKey := infra.ReadParseOrGenerateSigningKey(ctx, conf.jwtSigningKey, conf.jwtSigningFile)
	repos := repositories.NewRepositories(pool, signingKey)

	return usecases.NewUsecases(repos,
		usecases.WithUploadBucketUrl(conf.uploadBucketUrl),
		usecases.WithTokenLifetime(conf.tokenLifetime),
	), nil
}

func runServer(ctx context.Context, conf AppConfiguration, logger *slog.Logger) error {
	infra.SetupSentry(conf.sentryDsn, conf.env)

	uc, err := newUsecases(ctx, conf)
	if err != nil {
		return err
	}

	auth := utils.NewAuthentication(uc.NewTokenValidator())
	tokenHandler := api.NewTokenHandler(uc.NewTokenGenerator())

	router := initRouter(ctx, conf)
	server := api.NewServer(router, conf.apiConfig, uc, auth, tokenHandler)

	notify, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.InfoContext(ctx, fmt.Sprintf("starting server on port %s", conf.port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.ErrorContext(ctx, "error serving the app", "error", err.Error())
		}
		logger.InfoContext(ctx, "server returned")
	}()

	<-notify.Done()
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func main() {
	// Local development convenience, a missing .env file is not an error.
	_ = godotenv.Load()

	shouldRunMigrations := flag.Bool("migrations", false, "Run database migrations")
	shouldRunServer := flag.Bool("server", false, "Run the API server")
	shouldProcessUploads := flag.Bool("process-uploads", false, "Process all pending uploads and exit")
	flag.Parse()

	conf := loadConfiguration()
	logger := utils.NewLogger(conf.loggingFormat)
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	if *shouldRunMigrations {
		if err := repositories.RunMigrations(conf.pgConfig, logger); err != nil {
			log.Fatalf("error running migrations: %v", err)
		}
	}
	if *shouldRunServer {
		if err := runServer(ctx, conf, logger); err != nil {
			log.Fatalf("error running server: %v", err)
		}
	}
	if *shouldProcessUploads {
		if err := runProcessUploads(ctx, conf, logger); err != nil {
			log.Fatalf("error processing uploads: %v", err)
		}
	}
	if !*shouldRunMigrations && !*shouldRunServer && !*shouldProcessUploads {
		flag.Usage()
		os.Exit(2)
	}
}
