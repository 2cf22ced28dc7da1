package application

import (
	"context"
	"fmt"
	"reflect"

	"github.com/gorilla/mux"
	"github.com/iota-uz/go-i18n/v2/i18n"
	"github.com/sirupsen/logrus"

	"github.com/10021987z/dzilo-sub003/pkg/eventbus"
	"github.com/10021987z/dzilo-sub003/pkg/notify"
)

// Controller registers its routes on the application router.
type Controller interface {
	Key() string
	Register(r *mux.Router)
}

// Module is one vertical slice of the back office.
type Module interface {
	Name() string
	Register(ctx context.Context, app Application) error
}

// SeedFunc populates a module's repositories with sample records.
type SeedFunc func(ctx context.Context, app Application) error

// Application is the composition root shared by every module.
type Application interface {
	EventPublisher() eventbus.EventBus
	Notifier() *notify.Notifier
	Logger() *logrus.Logger
	Bundle() *i18n.Bundle

	RegisterModule(module Module)
	RegisterServices(services ...interface{})
	Service(service interface{}) interface{}
	RegisterControllers(controllers ...Controller)
	Controllers() []Controller
	RegisterSeedFuncs(seedFuncs ...SeedFunc)

	Initialize(ctx context.Context) error
	Seed(ctx context.Context) error
	Router() *mux.Router
}

type ApplicationOptions struct {
	EventBus eventbus.EventBus
	Notifier *notify.Notifier
	Logger   *logrus.Logger
	Bundle   *i18n.Bundle
}

func New(opts *ApplicationOptions) Application {
	return &application{
		eventPublisher: opts.EventBus,
		notifier:       opts.Notifier,
		logger:         opts.Logger,
		bundle:         opts.Bundle,
		services:       map[reflect.Type]interface{}{},
		router:         mux.NewRouter(),
	}
}

type application struct {
	eventPublisher eventbus.EventBus
	notifier       *notify.Notifier
	logger         *logrus.Logger
	bundle         *i18n.Bundle

	modules     []Module
	services    map[reflect.Type]interface{}
	controllers []Controller
	seedFuncs   []SeedFunc
	router      *mux.Router
}

func (a *application) EventPublisher() eventbus.EventBus { return a.eventPublisher }
func (a *application) Notifier() *notify.Notifier        { return a.notifier }
func (a *application) Logger() *logrus.Logger            { return a.logger }
func (a *application) Bundle() *i18n.Bundle              { return a.bundle }
func (a *application) Router() *mux.Router               { return a.router }

func (a *application) RegisterModule(module Module) {
	a.modules = append(a.modules, module)
}

func (a *application) RegisterServices(services ...interface{}) {
	for _, service := range services {
		a.services[reflect.TypeOf(service).Elem()] = service
	}
}

// Service returns the registered instance with the same type as the given
// zero value. Panics on a missing registration: a miss is a wiring bug.
func (a *application) Service(service interface{}) interface{} {
	svc, ok := a.services[reflect.TypeOf(service)]
	if !ok {
		panic(fmt.Sprintf("service %T not found", service))
	}
	return svc
}

func (a *application) RegisterControllers(controllers ...Controller) {
	a.controllers = append(a.controllers, controllers...)
}

func (a *application) Controllers() []Controller {
	return a.controllers
}

func (a *application) RegisterSeedFuncs(seedFuncs ...SeedFunc) {
	a.seedFuncs = append(a.seedFuncs, seedFuncs...)
}

// Initialize registers every module and mounts every controller.
func (a *application) Initialize(ctx context.Context) error {
	for _, module := range a.modules {
		if err := module.Register(ctx, a); err != nil {
			return fmt.Errorf("register module %s: %w", module.Name(), err)
		}
		if a.logger != nil {
			a.logger.Infof("registered module %s", module.Name())
		}
	}
	for _, controller := range a.controllers {
		controller.Register(a.router)
	}
	return nil
}

// Seed runs every registered seed function.
func (a *application) Seed(ctx context.Context) error {
	for _, seedFunc := range a.seedFuncs {
		if err := seedFunc(ctx, a); err != nil {
			return err
		}
	}
	return nil
}
