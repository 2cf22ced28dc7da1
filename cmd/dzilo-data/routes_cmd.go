package main

import (
	"fmt"
	"strings"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"
)

func newRoutesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List every registered HTTP route",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, dispose, err := buildApp(cmd)
			if err != nil {
				return err
			}
			defer dispose()

			return app.Router().Walk(func(route *mux.Route, router *mux.Router, ancestors []*mux.Route) error {
				path, err := route.GetPathTemplate()
				if err != nil {
					return nil
				}
				methods, err := route.GetMethods()
				if err != nil {
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", strings.Join(methods, ","), path)
				return nil
			})
		},
	}
}
