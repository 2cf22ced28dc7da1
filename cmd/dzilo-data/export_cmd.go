package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/10021987z/dzilo-sub003/modules/hrm/services"
)

func newExportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export reports into an xlsx workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, dispose, err := buildApp(cmd)
			if err != nil {
				return err
			}
			defer dispose()

			svc := app.Service(services.ReportExportService{}).(*services.ReportExportService)
			data, err := svc.Export(cmd.Context(), nil)
			if err != nil {
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d bytes to %s\n", len(data), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "reports.xlsx", "output file path")
	return cmd
}
