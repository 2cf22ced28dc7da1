package recruitment

import (
	"context"

	"github.com/10021987z/dzilo-sub003/modules/recruitment/infrastructure/persistence"
	"github.com/10021987z/dzilo-sub003/modules/recruitment/presentation/controllers"
	"github.com/10021987z/dzilo-sub003/modules/recruitment/seed"
	"github.com/10021987z/dzilo-sub003/modules/recruitment/services"
	"github.com/10021987z/dzilo-sub003/pkg/application"
	"github.com/10021987z/dzilo-sub003/pkg/configuration"
)

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Register(_ context.Context, app application.Application) error {
	postingRepo := persistence.NewInmemPostingRepository()
	candidateRepo := persistence.NewInmemCandidateRepository()

	app.RegisterServices(
		services.NewJobPostingService(postingRepo, app.EventPublisher()),
		services.NewCandidateService(candidateRepo, postingRepo, app.EventPublisher(), app.Notifier()),
		services.NewInterviewService(persistence.NewInmemInterviewRepository(), candidateRepo, app.EventPublisher()),
	)

	app.RegisterControllers(
		controllers.NewJobPostingController(app),
		controllers.NewCandidateController(app),
		controllers.NewInterviewController(app),
	)

	if configuration.Use().SeedDemoData {
		app.RegisterSeedFuncs(seed.Recruitment)
	}

	return nil
}

func (m *Module) Name() string {
	return "recruitment"
}
