package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/10021987z/dzilo-sub003/modules"
	"github.com/10021987z/dzilo-sub003/pkg/application"
	"github.com/10021987z/dzilo-sub003/pkg/configuration"
	"github.com/10021987z/dzilo-sub003/pkg/eventbus"
	"github.com/10021987z/dzilo-sub003/pkg/intl"
	"github.com/10021987z/dzilo-sub003/pkg/notify"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "dzilo-data",
		Short:         "Back office data inspection and export tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newExportCmd())
	cmd.AddCommand(newRoutesCmd())
	return cmd
}

// buildApp assembles the full module graph the same way the server does,
// minus the HTTP listener.
func buildApp(cmd *cobra.Command) (application.Application, func(), error) {
	conf := configuration.Use()
	logger := conf.Logger()
	notifier := notify.New(logger, notify.DefaultTTL)

	app := application.New(&application.ApplicationOptions{
		EventBus: eventbus.NewEventPublisher(logger),
		Notifier: notifier,
		Logger:   logger,
		Bundle:   intl.Bundle(),
	})
	if err := modules.Load(app, modules.BuiltInModules...); err != nil {
		notifier.Dispose()
		return nil, nil, err
	}
	if err := app.Initialize(cmd.Context()); err != nil {
		notifier.Dispose()
		return nil, nil, err
	}
	if err := app.Seed(cmd.Context()); err != nil {
		notifier.Dispose()
		return nil, nil, err
	}
	return app, notifier.Dispose, nil
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
