package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"pizzeria-pos/internal/config"
	"pizzeria-pos/internal/connections/database"
	"pizzeria-pos/internal/connections/rabbitmq"
	"pizzeria-pos/internal/events"
	"pizzeria-pos/internal/handlers"
	"pizzeria-pos/internal/httpx"
	"pizzeria-pos/internal/logger"
	"pizzeria-pos/internal/migrations"
	"pizzeria-pos/internal/repository"
	"pizzeria-pos/internal/service"
)

func main() {
	lg := logger.New("pizzeria-pos")

	cfg, err := config.Load()
	if err != nil {
		lg.Fatal().Err(err).Msg("config_load_failed")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		lg.Fatal().Err(err).Msg("db_connect_failed")
	}
	defer pool.Close()
	lg.Info().
		Str("host", cfg.Database.Host).
		Int("port", cfg.Database.Port).
		Str("database", cfg.Database.Name).
		Msg("postgres_connected")

	if err := migrations.Run(ctx, pool); err != nil {
		lg.Fatal().Err(err).Msg("migrations_failed")
	}

	var publisher events.Publisher
	if cfg.Rabbit.Enabled() {
		rmq, err := rabbitmq.Dial(cfg.Rabbit)
		if err != nil {
			lg.Fatal().Err(err).Msg("rabbitmq_connect_failed")
		}
		defer rmq.Close()

		publisher, err = events.NewRabbitPublisher(rmq)
		if err != nil {
			lg.Fatal().Err(err).Msg("rabbitmq_declare_failed")
		}
		lg.Info().Str("host", cfg.Rabbit.Host).Int("port", cfg.Rabbit.Port).Msg("rabbitmq_connected")
	} else {
		lg.Info().Msg("rabbitmq_disabled")
	}

	repo := repository.New(pool)
	svc := service.New(repo, publisher, cfg.Auth, lg)
	handler := handlers.New(svc)

	srv := httpx.New(fmt.Sprintf(":%d", cfg.HTTPPort), handlers.Router(handler))
	lg.Info().Int("port", cfg.HTTPPort).Msg("service_started")
	if err := srv.Run(ctx); err != nil {
		lg.Error().Err(err).Msg("server_failed")
		os.Exit(1)
	}
	lg.Info().Msg("service_stopped")
}
