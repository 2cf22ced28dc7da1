package scheduling

import (
	"context"

	"github.com/10021987z/dzilo-sub003/modules/scheduling/infrastructure/persistence"
	"github.com/10021987z/dzilo-sub003/modules/scheduling/presentation/controllers"
	"github.com/10021987z/dzilo-sub003/modules/scheduling/seed"
	"github.com/10021987z/dzilo-sub003/modules/scheduling/services"
	"github.com/10021987z/dzilo-sub003/pkg/application"
	"github.com/10021987z/dzilo-sub003/pkg/configuration"
)

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Register(_ context.Context, app application.Application) error {
	app.RegisterServices(
		services.NewEventService(persistence.NewInmemEventRepository(), app.EventPublisher()),
	)

	app.RegisterControllers(
		controllers.NewEventController(app),
	)

	if configuration.Use().SeedDemoData {
		app.RegisterSeedFuncs(seed.Events)
	}

	return nil
}

func (m *Module) Name() string {
	return "scheduling"
}
