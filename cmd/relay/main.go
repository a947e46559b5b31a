package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/psigiovana/contratos-assinados/internal/api"
	"github.com/psigiovana/contratos-assinados/internal/httpclients/github"
	"github.com/psigiovana/contratos-assinados/internal/repository"
	"github.com/psigiovana/contratos-assinados/internal/service"
	"github.com/psigiovana/contratos-assinados/pkg/broker"
	"github.com/psigiovana/contratos-assinados/pkg/config"
	"github.com/psigiovana/contratos-assinados/pkg/job"
	"github.com/psigiovana/contratos-assinados/pkg/logger"
	"github.com/psigiovana/contratos-assinados/pkg/metrics"
	"github.com/psigiovana/contratos-assinados/pkg/postgres"
)

//nolint:funlen
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.NewRelay(".env")
	panicOnErr("load config", err)

	l, err := logger.New(os.Stdout, cfg.Logger.Level)
	panicOnErr("create logger", err)

	var repo service.Repository

	if cfg.Postgres.DSN != "" {
		pool, err := postgres.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
		panicOnErr("connect to postgres", err)
		defer pool.Close()

		err = postgres.UpMigrations(ctx, cfg.Postgres.DSN)
		panicOnErr("up migrations", err)

		repo = repository.New(pool)
	} else {
		l.Warn("POSTGRES_DSN is empty, upload journal disabled")
	}

	var publisher service.Publisher

	if len(cfg.Kafka.Brokers) > 0 {
		producer := broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.ContractUploadedTopic)
		defer producer.Close()

		publisher = producer
	} else {
		l.Warn("KAFKA_BROKERS is empty, contract events disabled")
	}

	m := metrics.New()
	gh := github.NewClient(cfg.GitHub)

	s := service.New(gh, repo, publisher, m, service.Options{
		Dir:      cfg.GitHub.Dir,
		MaxBytes: cfg.Upload.MaxBytes,
	})

	jobs := job.NewService().
		TryRegisterJob(true, "stored_contracts", cfg.Jobs.StoredContractsInterval, s.RefreshStoredContracts)
	jobs.Start(ctx)

	handler := api.NewHandler(s, cfg.Upload.MaxBytes)
	mw := api.NewMiddleware(cfg.HTTP.FrontendOrigins, cfg.Admin.JWTSecret)

	router := api.NewRouter(handler, mw, m.Handler())

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		slog.InfoContext(ctx, "http server started", "port", cfg.HTTP.Port, "repo", cfg.GitHub.Repo, "branch", cfg.GitHub.Branch)

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}

		slog.DebugContext(ctx, "http server stopped")
	}()

	waitSignal(cancel, server)

	jobs.Stop()
	wg.Wait()
}

func waitSignal(cancel context.CancelFunc, server *http.Server) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	sig := <-ch

	slog.Info("got OS signal", "signal", sig.String())

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		slog.ErrorContext(shutdownCtx, "server shutdown", "error", err)
	}
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
