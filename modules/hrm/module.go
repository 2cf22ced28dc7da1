package hrm

import (
	"context"

	"github.com/10021987z/dzilo-sub003/modules/hrm/infrastructure/persistence"
	"github.com/10021987z/dzilo-sub003/modules/hrm/presentation/controllers"
	"github.com/10021987z/dzilo-sub003/modules/hrm/seed"
	"github.com/10021987z/dzilo-sub003/modules/hrm/services"
	"github.com/10021987z/dzilo-sub003/pkg/application"
	"github.com/10021987z/dzilo-sub003/pkg/configuration"
)

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Register(_ context.Context, app application.Application) error {
	reportService := services.NewReportService(persistence.NewInmemReportRepository(), app.EventPublisher())

	app.RegisterServices(
		services.NewContractService(persistence.NewInmemContractRepository(), app.EventPublisher()),
		reportService,
		services.NewReportExportService(reportService),
		services.NewSignatureService(persistence.NewInmemSignatureRepository(), app.EventPublisher(), app.Notifier()),
	)

	app.RegisterControllers(
		controllers.NewContractController(app),
		controllers.NewReportController(app),
		controllers.NewSignatureController(app),
	)

	if configuration.Use().SeedDemoData {
		app.RegisterSeedFuncs(seed.Contracts, seed.Reports)
	}

	return nil
}

func (m *Module) Name() string {
	return "hrm"
}
