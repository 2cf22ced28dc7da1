package seed

import (
	"context"

	"github.com/10021987z/dzilo-sub003/modules/hrm/presentation/controllers/dtos"
	"github.com/10021987z/dzilo-sub003/modules/hrm/services"
	"github.com/10021987z/dzilo-sub003/pkg/application"
)

// Contracts seeds a pair of demo contracts.
func Contracts(ctx context.Context, app application.Application) error {
	svc := app.Service(services.ContractService{}).(*services.ContractService)
	for _, dto := range []dtos.ContractDTO{
		{
			EmployeeName: "Ada Lovelace",
			Kind:         "permanent",
			Period:       dtos.ContractPeriodDTO{StartDate: "2026-01-01", EndDate: "2026-12-31"},
			SalaryNote:   "Grade E3",
			Status:       "active",
		},
		{
			EmployeeName: "Blaise Pascal",
			Kind:         "fixed-term",
			Period:       dtos.ContractPeriodDTO{StartDate: "2026-03-01", EndDate: "2026-08-31"},
		},
	} {
		dto := dto
		if _, err := svc.Create(ctx, &dto); err != nil {
			return err
		}
	}
	return nil
}

// Reports seeds one demo activity report.
func Reports(ctx context.Context, app application.Application) error {
	svc := app.Service(services.ReportService{}).(*services.ReportService)
	_, err := svc.Create(ctx, &dtos.ReportDTO{
		Title:     "Q1 activity",
		StartDate: "2026-01-01",
		EndDate:   "2026-03-31",
		Sections: []dtos.ReportSectionDTO{
			{Title: "Hiring", Content: "Two offers extended, one accepted."},
			{Title: "Attrition", Content: "No departures this quarter."},
		},
		Status: "submitted",
	})
	return err
}
