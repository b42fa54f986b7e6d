package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/mkarpushin/photoshare/internal/blob"
	"github.com/mkarpushin/photoshare/internal/handlers"
	"github.com/mkarpushin/photoshare/internal/jwt"
	"github.com/mkarpushin/photoshare/internal/logger"
	"github.com/mkarpushin/photoshare/internal/middlewares"
	"github.com/mkarpushin/photoshare/internal/repositories"
	"github.com/mkarpushin/photoshare/internal/services"
	"github.com/mkarpushin/photoshare/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mkarpushin/photoshare/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title photoshare API
// @version 1.0.0
// @description Social photo sharing service: accounts, photo uploads, likes and comments
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		loginMaxAttempts, loginWindowSecond,
		minioEndpoint, minioAccessKey, minioSecretKey, minioBucket, minioUseSSL, minioBaseURL,
		kafkaBrokers, kafkaTopic,
		jwtSecret, jwtExpSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		loginMaxAttempts, loginWindowSecond,
		minioEndpoint, minioAccessKey, minioSecretKey, minioBucket, minioUseSSL, minioBaseURL,
		kafkaBrokers, kafkaTopic,
		jwtSecret, jwtExpSecond,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, MinIO, Kafka, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	loginMaxAttempts, loginWindowSecond int,
	minioEndpoint, minioAccessKey, minioSecretKey, minioBucket string,
	minioUseSSL bool, minioBaseURL string,
	kafkaBrokers []string, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "photoshare")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if loginMaxAttempts, err = strconv.Atoi(getEnv("LOGIN_MAX_ATTEMPTS", "10")); err != nil {
		return
	}
	if loginWindowSecond, err = strconv.Atoi(getEnv("LOGIN_ATTEMPT_WINDOW_SECOND", "60")); err != nil {
		return
	}

	// MinIO config
	minioEndpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	minioAccessKey = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	minioSecretKey = getEnv("MINIO_SECRET_KEY", "minioadmin")
	minioBucket = getEnv("MINIO_BUCKET", "photos")
	if minioUseSSL, err = strconv.ParseBool(getEnv("MINIO_USE_SSL", "false")); err != nil {
		return
	}
	minioBaseURL = getEnv("MINIO_BASE_URL", "http://localhost:9000")

	// Kafka config. An empty broker list disables event publishing.
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		kafkaBrokers = strings.Split(brokers, ",")
	}
	kafkaTopic = getEnv("KAFKA_TOPIC", "photoshare.events")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "604800")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, blob store, Kafka writer,
// and HTTP server. It sets up routes, applies middleware, and handles
// graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	loginMaxAttempts, loginWindowSecond int,
	minioEndpoint, minioAccessKey, minioSecretKey, minioBucket string,
	minioUseSSL bool, minioBaseURL string,
	kafkaBrokers []string, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)

	if err := migrations.AutoMigrate(db.DB, 5); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Connect to blob storage
	blobStore, err := blob.New(ctx, blob.Config{
		Endpoint:  minioEndpoint,
		AccessKey: minioAccessKey,
		SecretKey: minioSecretKey,
		Bucket:    minioBucket,
		UseSSL:    minioUseSSL,
		BaseURL:   minioBaseURL,
	})
	if err != nil {
		return fmt.Errorf("blob storage error: %w", err)
	}

	// Kafka event writer, optional
	var eventWriter services.KafkaWriter
	if len(kafkaBrokers) > 0 {
		kw := &kafka.Writer{
			Addr:                   kafka.TCP(kafkaBrokers...),
			Topic:                  kafkaTopic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		}
		defer kw.Close()
		eventWriter = kw
	}

	// Initialize JWT service
	jwtSvc := jwt.New(
		jwt.WithSecretKey(jwtSecretKey),
		jwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
	)

	// Initialize repositories
	txGetter := middlewares.GetTxFromContext
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	photoWriteRepo := repositories.NewPhotoWriteRepository(db, txGetter)
	photoReadRepo := repositories.NewPhotoReadRepository(db)
	likeWriteRepo := repositories.NewLikeWriteRepository(db, txGetter)
	likeReadRepo := repositories.NewLikeReadRepository(db, txGetter)
	commentWriteRepo := repositories.NewCommentWriteRepository(db, txGetter)
	commentReadRepo := repositories.NewCommentReadRepository(db)
	loginLimiter := repositories.NewLoginLimiterRepository(
		rdb, int64(loginMaxAttempts), time.Duration(loginWindowSecond)*time.Second)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwtSvc, loginLimiter)
	photoService := services.NewPhotoService(photoWriteRepo, photoReadRepo, blobStore, eventWriter)
	engagementService := services.NewEngagementService(
		photoReadRepo, likeWriteRepo, likeReadRepo,
		commentWriteRepo, commentReadRepo, userReadRepo, eventWriter)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	uploadPhotoHandler := handlers.NewUploadPhotoHandler(photoService, jwtSvc)
	listPhotosHandler := handlers.NewListPhotosHandler(photoService)
	getPhotoHandler := handlers.NewGetPhotoHandler(photoService)
	likePhotoHandler := handlers.NewLikePhotoHandler(engagementService, jwtSvc)
	unlikePhotoHandler := handlers.NewUnlikePhotoHandler(engagementService, jwtSvc)
	createCommentHandler := handlers.NewCreateCommentHandler(engagementService, jwtSvc)
	listCommentsHandler := handlers.NewListCommentsHandler(engagementService)
	healthHandler := handlers.NewHealthHandler(buildVersion, buildCommit)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	// Public routes
	r.Get("/", healthHandler)
	r.Post("/auth/register", registerHandler)
	r.Post("/auth/login", loginHandler)
	r.Get("/photos", listPhotosHandler)
	r.Get("/photos/{photoID}", getPhotoHandler)
	r.Get("/photos/{photoID}/comments", listCommentsHandler)

	// Protected routes with JWT middleware; writes run in a transaction
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(jwtSvc))
		r.Use(middlewares.TxMiddleware(db))
		r.Post("/photos", uploadPhotoHandler)
		r.Post("/photos/{photoID}/like", likePhotoHandler)
		r.Delete("/photos/{photoID}/like", unlikePhotoHandler)
		r.Post("/photos/{photoID}/comments", createCommentHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
