package core

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/10021987z/dzilo-sub003/modules/core/domain/aggregates/user"
	"github.com/10021987z/dzilo-sub003/modules/core/infrastructure/persistence"
	"github.com/10021987z/dzilo-sub003/modules/core/presentation/controllers"
	"github.com/10021987z/dzilo-sub003/modules/core/seed"
	"github.com/10021987z/dzilo-sub003/modules/core/services"
	"github.com/10021987z/dzilo-sub003/pkg/application"
	"github.com/10021987z/dzilo-sub003/pkg/configuration"
)

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Register(ctx context.Context, app application.Application) error {
	conf := configuration.Use()

	var userRepo user.Repository
	if conf.Persistence == configuration.PersistencePostgres {
		pool, err := pgxpool.New(ctx, conf.Database.ConnectionString())
		if err != nil {
			return err
		}
		userRepo = persistence.NewPgUserRepository(pool)
	} else {
		userRepo = persistence.NewInmemUserRepository()
	}

	app.RegisterServices(
		services.NewUserService(userRepo, app.EventPublisher()),
		services.NewDocTemplateService(persistence.NewInmemDocTemplateRepository(), app.EventPublisher()),
	)

	app.RegisterControllers(
		controllers.NewUserController(app),
		controllers.NewDocTemplateController(app),
	)

	if conf.SeedDemoData {
		app.RegisterSeedFuncs(seed.Users, seed.DocTemplates)
	}

	return nil
}

func (m *Module) Name() string {
	return "core"
}
