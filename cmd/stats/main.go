package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"tuzona/internal/kafka"
	"tuzona/internal/stats"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	_ "github.com/lib/pq"
)

const (
	cfgPath = "config/stats-config.yaml"
)

func main() {
	// Init logger
	zapLogger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	logger := zapLogger.Sugar()
	defer func() { _ = zapLogger.Sync() }()

	// Parse config
	c, err := stats.NewConfig(cfgPath)
	if err != nil {
		logger.Fatalf("Error parsing config: %v", err)
	}

	// Init DB
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.CfgDB.Host, c.CfgDB.Port, c.CfgDB.Login, c.CfgDB.Password, c.CfgDB.Database,
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		logger.Fatalf("Error connecting to DB: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(c.MaxOpenConns)
	if err := db.Ping(); err != nil {
		logger.Errorf("DB ping failed: %v", err)
	}

	// Init Kafka consumer
	consumer := kafka.NewConsumer(c.CfgKafka.Brokers, c.CfgKafka.Topic, c.GroupID, logger)
	defer consumer.Close()

	repo := stats.NewRepository(db, logger)
	service := stats.NewService(repo, logger)

	// Start event processor
	go func() {
		consumer.Consume(context.Background(), func(ctx context.Context, event kafka.Event) error {
			return service.ProcessEvent(ctx, event)
		})
	}()

	// Init HTTP server
	handler := stats.NewHandler(service, logger)
	r := mux.NewRouter()
	r.HandleFunc("/user/{user_id}/stats", handler.GetUserStats).Methods("GET")

	srv := &http.Server{
		Addr:         c.ServerPort,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Infof("Starting stats service on %s", c.ServerPort)
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
