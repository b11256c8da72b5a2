package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"tuzona/internal/app"
	"tuzona/internal/catalog"
	"tuzona/internal/etl"
	handlersAd "tuzona/internal/handlers/ad"
	handlersUpload "tuzona/internal/handlers/upload"
	handlersUser "tuzona/internal/handlers/user"
	"tuzona/internal/imagestore"
	"tuzona/internal/kafka"
	"tuzona/internal/middleware"
	"tuzona/internal/search"
	"tuzona/internal/session"
	"tuzona/internal/user"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	_ "github.com/lib/pq"
)

const (
	cfgPath   = "config/config.yaml"
	RedisAddr = "redis:6379"
)

func main() {
	// init logger
	zapLogger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}

	logger := zapLogger.Sugar()
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			logger.Warnf("error to sync logger: %v", err)
		}
	}()

	c, err := app.NewConfig(cfgPath)
	if err != nil {
		logger.Fatalf("error to parsing config: %v", err)
	}

	// init redis, shared by sessions and the local ad store
	redisAddr := c.RedisAddr
	if redisAddr == "" {
		redisAddr = RedisAddr
	}
	redisClient := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: "",
		DB:       0,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// init db, always needed for accounts and stats
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s "+"password=%s dbname=%s sslmode=disable",
		c.CfgDB.Host, c.CfgDB.Port, c.CfgDB.Login, c.CfgDB.Password, c.CfgDB.Database,
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		logger.Fatalf("error to database start: %v", err)
	}

	db.SetMaxOpenConns(c.MaxOpenConns)
	if err := db.Ping(); err != nil {
		logger.Infof("Failed to get response to ping: %v", err)
	}

	// init the ad source: Postgres normally, Redis for installs that
	// keep listings out of the main database
	var adSource catalog.AdSource
	if c.Storage == app.StorageLocal {
		adSource = catalog.NewLocalAdStore(redisClient, logger)
		logger.Info("using local ad store")
	} else {
		adSource = catalog.NewPostgresAdStore(db, logger)
	}

	adCatalog := &catalog.Catalog{Source: adSource, Logger: logger}

	// init repositories
	userRepository := user.NewUserDBRepository(db, logger)
	sessionRepository := session.NewSessionRepository(redisClient, logger, c.Secret, c.SessionDuration)

	// init elasticsearch and the indexing pipeline
	esClient, err := elasticsearch.NewDefaultClient()
	if err != nil {
		logger.Fatalf("error to elasticsearch client: %v", err)
	}
	searchService := search.NewService(esClient, logger, c.CfgES.Index)
	if err := searchService.EnsureIndex(ctx); err != nil {
		logger.Errorf("failed to ensure search index: %v", err)
	}

	if c.Storage != app.StorageLocal {
		pipeline := etl.NewPipeline(
			etl.NewPostgresExtractor(db, logger),
			etl.NewTransformer(logger),
			etl.NewElasticLoader(searchService, logger, db),
			logger,
			c.ETLTimeout,
		)
		go pipeline.Run(ctx)
	}

	// init kafka producer
	producer := kafka.NewProducer(c.CfgKafka.Brokers, c.CfgKafka.Topic, logger)
	defer producer.Close()

	// init image storage
	imageStore, err := imagestore.NewStore(ctx, imagestore.Config{
		Bucket:          c.CfgS3.Bucket,
		Region:          c.CfgS3.Region,
		Endpoint:        c.CfgS3.Endpoint,
		AccessKeyID:     c.CfgS3.AccessKeyID,
		SecretAccessKey: c.CfgS3.SecretAccessKey,
		PublicURL:       c.CfgS3.PublicURL,
	}, logger)
	if err != nil {
		logger.Fatalf("error to image store init: %v", err)
	}

	// init router
	r := mux.NewRouter()
	r.Use(middleware.MetricsMiddleware)

	// init handlers
	userHandlers := handlersUser.NewUserHandler(logger, userRepository, sessionRepository)
	adHandlers := handlersAd.NewAdHandler(logger, adCatalog, userRepository, producer)
	uploadHandlers := handlersUpload.NewUploadHandler(logger, imageStore)

	// routes requiring authorization
	authRouter := r.PathPrefix("/api").Subrouter()
	authRouter.Use(middleware.Auth(sessionRepository, logger))

	authRouter.HandleFunc("/ads", adHandlers.Publish).Methods("POST")
	authRouter.HandleFunc("/ads/{id}", adHandlers.Update).Methods("PUT")
	authRouter.HandleFunc("/ads/{id}", adHandlers.Delete).Methods("DELETE")
	authRouter.HandleFunc("/my/ads", adHandlers.ListMine).Methods("GET")
	authRouter.HandleFunc("/upload/image", uploadHandlers.Image).Methods("POST")
	authRouter.HandleFunc("/user/{id}", userHandlers.ChangeProfile).Methods("PUT")

	// routes NOT requiring authorization
	noAuthRouter := r.PathPrefix("/api").Subrouter()

	noAuthRouter.HandleFunc("/user/register", userHandlers.Register).Methods("POST")
	noAuthRouter.HandleFunc("/user/login", userHandlers.Login).Methods("POST")
	noAuthRouter.HandleFunc("/user/{id}", userHandlers.Info).Methods("GET")
	noAuthRouter.HandleFunc("/user/{id}/stats", userHandlers.Stats).Methods("GET")

	noAuthRouter.HandleFunc("/ads/search", adHandlers.Search).Methods("GET")
	noAuthRouter.HandleFunc("/ads/featured", adHandlers.Featured).Methods("GET")
	noAuthRouter.HandleFunc("/ads/{id}", adHandlers.GetByID).Methods("GET")
	noAuthRouter.HandleFunc("/ads/{id}/card", adHandlers.GetCard).Methods("GET")

	r.Handle("/metrics", promhttp.Handler())

	logger.Infow("starting server",
		"type", "START",
		"addr", c.ServerPort,
	)

	srv := &http.Server{
		Addr:         c.ServerPort,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil {
		panic("can't start server: " + err.Error())
	}
}
