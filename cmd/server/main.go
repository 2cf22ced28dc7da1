package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/10021987z/dzilo-sub003/modules"
	"github.com/10021987z/dzilo-sub003/pkg/application"
	"github.com/10021987z/dzilo-sub003/pkg/configuration"
	"github.com/10021987z/dzilo-sub003/pkg/eventbus"
	"github.com/10021987z/dzilo-sub003/pkg/intl"
	"github.com/10021987z/dzilo-sub003/pkg/middleware"
	"github.com/10021987z/dzilo-sub003/pkg/notify"
	"github.com/10021987z/dzilo-sub003/pkg/server"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			log.Println(r)
			debug.PrintStack()
			os.Exit(1)
		}
	}()

	conf := configuration.Use()
	logger := conf.Logger()

	notifier := notify.New(logger, notify.DefaultTTL)
	defer notifier.Dispose()

	app := application.New(&application.ApplicationOptions{
		EventBus: eventbus.NewEventPublisher(logger),
		Notifier: notifier,
		Logger:   logger,
		Bundle:   intl.Bundle(),
	})
	if err := modules.Load(app, modules.BuiltInModules...); err != nil {
		log.Fatalf("failed to load modules: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Initialize(ctx); err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}
	if err := app.Seed(ctx); err != nil {
		log.Fatalf("failed to seed demo data: %v", err)
	}

	srv := server.NewHTTPServer(app, middleware.RequestLogger(logger))
	logger.Infof("listening on %s", conf.SocketAddress)
	if err := srv.Start(ctx, conf.SocketAddress); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
