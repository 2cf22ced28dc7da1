package modules

import (
	"github.com/10021987z/dzilo-sub003/modules/core"
	"github.com/10021987z/dzilo-sub003/modules/hrm"
	"github.com/10021987z/dzilo-sub003/modules/recruitment"
	"github.com/10021987z/dzilo-sub003/modules/scheduling"
	"github.com/10021987z/dzilo-sub003/pkg/application"
)

var BuiltInModules = []application.Module{
	core.NewModule(),
	hrm.NewModule(),
	scheduling.NewModule(),
	recruitment.NewModule(),
}

func Load(app application.Application, mods ...application.Module) error {
	for _, module := range mods {
		app.RegisterModule(module)
	}
	return nil
}
