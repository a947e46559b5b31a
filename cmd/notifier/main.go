package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/psigiovana/contratos-assinados/internal/api/events"
	"github.com/psigiovana/contratos-assinados/internal/clients/gomail"
	"github.com/psigiovana/contratos-assinados/pkg/broker"
	"github.com/psigiovana/contratos-assinados/pkg/config"
	"github.com/psigiovana/contratos-assinados/pkg/logger"
)

const notifyTimezone = "America/Sao_Paulo"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.NewNotifier(".env")
	panicOnErr("create config", err)

	l, err := logger.New(os.Stdout, cfg.Logger.Level)
	panicOnErr("create logger", err)

	location, err := time.LoadLocation(notifyTimezone)
	if err != nil {
		l.Warn("load timezone, using UTC", "timezone", notifyTimezone, "error", err)

		location = time.UTC
	}

	gomailClient := gomail.New(cfg.Mailer)

	consumer := broker.NewConsumer(l, cfg.Kafka.Brokers, cfg.Kafka.ConsumerID, cfg.Kafka.ContractUploadedTopic)

	eventHandler := events.NewEventHandler(gomailClient, cfg.NotifyTo, location)

	consumer.Handle(cfg.Kafka.ContractUploadedTopic, eventHandler.OnContractUploaded)
	consumer.Consume(ctx)

	l.Info("notifier started", "topic", cfg.Kafka.ContractUploadedTopic, "recipients", len(cfg.NotifyTo))

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGINT)
	sig := <-ch

	slog.Info("got OS signal", "signal", sig.String())

	cancel()
	consumer.Close()
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
