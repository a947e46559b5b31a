package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/psigiovana/contratos-assinados/internal/cli"
	"github.com/psigiovana/contratos-assinados/internal/clients/localfs"
	"github.com/psigiovana/contratos-assinados/internal/clients/whatsapp"
	"github.com/psigiovana/contratos-assinados/internal/contract"
	"github.com/psigiovana/contratos-assinados/internal/httpclients/relay"
	"github.com/psigiovana/contratos-assinados/internal/workflow"
	"github.com/psigiovana/contratos-assinados/pkg/config"
	"github.com/psigiovana/contratos-assinados/pkg/logger"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.NewSigner(".env")
	panicOnErr("load config", err)

	// stdout belongs to the prompts
	l, err := logger.New(os.Stderr, cfg.Logger.Level)
	panicOnErr("create logger", err)

	tpl := contract.Template(cfg.Template)

	var store workflow.Store

	if cfg.RelayURL != "" {
		store = relay.NewClient(cfg.RelayURL, cfg.RelayTimeout)
	} else {
		l.Warn("RELAY_URL is empty, contracts are kept only locally")
	}

	c := workflow.New(
		contract.NewRenderer(tpl),
		store,
		localfs.New(cfg.OutputDir),
		whatsapp.New(cfg.WhatsAppRecipient, cfg.Template.ProfessionalName),
		workflow.NewNamer(nil),
		workflow.Options{RemoteDir: cfg.RemoteDir},
	)

	app := cli.New(os.Stdin, os.Stdout, c, tpl, nil)

	done := make(chan error, 1)

	go func() {
		done <- app.Run(ctx)
	}()

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	select {
	case err = <-done:
		panicOnErr("run signer", err)
	case sig := <-ch:
		slog.Info("got OS signal", "signal", sig.String())
		cancel()
	}
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
