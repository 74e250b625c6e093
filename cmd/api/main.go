package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ddoc14896/Realty-Website-sub000/internal/config"
	"github.com/ddoc14896/Realty-Website-sub000/internal/handler"
	"github.com/ddoc14896/Realty-Website-sub000/internal/middleware"
	"github.com/ddoc14896/Realty-Website-sub000/internal/migration"
	"github.com/ddoc14896/Realty-Website-sub000/internal/repository"
	"github.com/ddoc14896/Realty-Website-sub000/internal/routes"
	"github.com/ddoc14896/Realty-Website-sub000/internal/service"
	pkgcache "github.com/ddoc14896/Realty-Website-sub000/pkg/cache"
	pkges "github.com/ddoc14896/Realty-Website-sub000/pkg/elasticsearch"
	"github.com/ddoc14896/Realty-Website-sub000/pkg/jwt"
	pkglogger "github.com/ddoc14896/Realty-Website-sub000/pkg/logger"
	pkgqueue "github.com/ddoc14896/Realty-Website-sub000/pkg/queue"
	pkgredis "github.com/ddoc14896/Realty-Website-sub000/pkg/redis"
	pkgstorage "github.com/ddoc14896/Realty-Website-sub000/pkg/storage"
)

// @title           Realty API
// @version         1.0
// @description     Real-estate listing platform - search, favorites, inquiries, back-office
//
// @host            localhost:8080
// @BasePath        /api/v1
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Authorization header using the Bearer scheme. Example: "Bearer {token}"

// getConfigPath returns config file path based on APP_ENV environment variable
func getConfigPath() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	return fmt.Sprintf("configs/config.%s.yaml", env)
}

func main() {
	dotenvFiles := config.LoadDotEnv()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	pkglogger.Init(env)
	logger := pkglogger.Get()
	logger.Info().Str("env", env).Strs("dotenv", dotenvFiles).Msg("starting realty-api")

	cfg, err := config.Load(getConfigPath())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// MySQL is the system of record; there is nothing to serve without it.
	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	logger.Info().Msg("connected to MySQL")
	if err := migration.Run(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	// Redis backs the listing cache and anonymous favorite sessions.
	// The API stays up without it.
	redisClient, err := pkgredis.NewClient(
		cfg.Redis.Host,
		cfg.Redis.Port,
		cfg.Redis.Password,
		cfg.Redis.DB,
		cfg.Redis.PoolSize,
	)
	if err != nil {
		logger.Warn().Err(err).Msg("redis unavailable, continuing without cache")
		redisClient = nil
	} else {
		logger.Info().Msg("connected to Redis")
	}

	var cacheService pkgcache.Service
	if redisClient != nil {
		cacheService = pkgcache.NewService(redisClient)
	}

	// Elasticsearch powers the free-text /search endpoint only
	var esClient *pkges.Client
	if cfg.Elasticsearch.Enabled && len(cfg.Elasticsearch.Addresses) > 0 {
		esClient, err = pkges.NewClient(
			cfg.Elasticsearch.Addresses,
			cfg.Elasticsearch.Username,
			cfg.Elasticsearch.Password,
		)
		if err != nil {
			logger.Warn().Err(err).Msg("elasticsearch unavailable, full-text search disabled")
			esClient = nil
		} else {
			logger.Info().Msg("connected to Elasticsearch")
		}
	}

	// S3-compatible storage for listing images
	var s3Client *pkgstorage.S3Client
	if cfg.Storage.Enabled && cfg.Storage.Bucket != "" {
		s3Client, err = pkgstorage.NewS3Client(pkgstorage.S3Config{
			Endpoint:        cfg.Storage.Endpoint,
			Region:          cfg.Storage.Region,
			AccessKeyID:     cfg.Storage.AccessKeyID,
			SecretAccessKey: cfg.Storage.SecretAccessKey,
			Bucket:          cfg.Storage.Bucket,
			CDNURL:          cfg.Storage.CDNURL,
			BasePath:        cfg.Storage.BasePath,
			ForcePathStyle:  cfg.Storage.ForcePathStyle,
		})
		if err != nil {
			logger.Warn().Err(err).Msg("storage init failed, image upload disabled")
			s3Client = nil
		} else {
			logger.Info().Msg("connected to S3 storage")
		}
	}

	// AMQP broker for inquiry events
	var publisher service.EventPublisher
	if cfg.Queue.Enabled && cfg.Queue.URL != "" {
		queuePublisher := pkgqueue.NewPublisher(cfg.Queue.URL)
		defer queuePublisher.Close()
		publisher = queuePublisher
		logger.Info().Msg("amqp publisher configured")
	}

	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.ExpiresIn, cfg.JWT.RefreshIn)

	// Repositories
	propertyRepo := repository.NewPropertyRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	inquiryRepo := repository.NewInquiryRepository(db)
	userRepo := repository.NewUserRepository(db)

	var sessionStore repository.SessionFavoriteStore
	if redisClient != nil {
		sessionStore = repository.NewSessionFavoriteStore(redisClient)
	} else {
		sessionStore = repository.NewMemorySessionFavoriteStore()
	}

	// Services
	favoriteStore := service.NewFavoriteStore(
		service.NewUserFavoritePersister(favoriteRepo),
		service.NewSessionFavoritePersister(sessionStore),
	)
	propertyService := service.NewPropertyService(propertyRepo, cacheService, esClient)
	inquiryService := service.NewInquiryService(inquiryRepo, propertyRepo, publisher)
	authService := service.NewAuthService(userRepo, favoriteStore, jwtManager)
	statsService := service.NewStatsService(propertyRepo, userRepo, inquiryRepo, favoriteRepo, cacheService)

	// Handlers
	propertyHandler := handler.NewPropertyHandler(propertyService, s3Client)
	favoriteHandler := handler.NewFavoriteHandler(favoriteStore)
	inquiryHandler := handler.NewInquiryHandler(inquiryService)
	authHandler := handler.NewAuthHandler(authService)
	adminHandler := handler.NewAdminHandler(userRepo, statsService)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	allowOrigins := cfg.CORS.AllowOrigins
	if allowOrigins == "" {
		allowOrigins = "http://localhost:3000"
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     splitAndTrim(allowOrigins),
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Session-ID", "X-Request-ID"},
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		ExposeHeaders:    []string{"X-Request-ID", "X-Session-ID"},
		MaxAge:           86400,
	}))

	router.Use(middleware.Metrics())
	router.Use(middleware.RequestLogger())

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health Check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "realty-api",
			"time":    time.Now().Unix(),
		})
	})

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.Setup(router,
		propertyHandler, favoriteHandler, inquiryHandler, authHandler, adminHandler,
		jwtManager)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().Int("port", cfg.App.Port).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("forced shutdown")
	}

	if redisClient != nil {
		_ = redisClient.Close()
	}
}

// initDB opens the MySQL connection used by every repository
func initDB(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{}
	if cfg.IsDevelopment() {
		gormCfg.Logger = gormlogger.Default.LogMode(gormlogger.Info)
	} else {
		gormCfg.Logger = gormlogger.Default.LogMode(gormlogger.Warn)
	}

	db, err := gorm.Open(mysql.Open(cfg.Database.GetDSN()), gormCfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

func splitAndTrim(s string) []string {
	var result []string
	current := ""
	for _, char := range s {
		if char == ',' {
			if trimmed := trimSpace(current); trimmed != "" {
				result = append(result, trimmed)
			}
			current = ""
		} else {
			current += string(char)
		}
	}
	if trimmed := trimSpace(current); trimmed != "" {
		result = append(result, trimmed)
	}
	return result
}

func trimSpace(s string) string {
	start := 0
	end := len(s)
	for start < end && (s[start] == ' ' || s[start] == '\t') {
		start++
	}
	for end > start && (s[end-1] == ' ' || s[end-1] == '\t') {
		end--
	}
	return s[start:end]
}
