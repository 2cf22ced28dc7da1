package seed

import (
	"context"

	"github.com/10021987z/dzilo-sub003/modules/core/presentation/controllers/dtos"
	"github.com/10021987z/dzilo-sub003/modules/core/services"
	"github.com/10021987z/dzilo-sub003/pkg/application"
)

// Users seeds a small demo staff roster.
func Users(ctx context.Context, app application.Application) error {
	svc := app.Service(services.UserService{}).(*services.UserService)
	for _, dto := range []dtos.CreateUserDTO{
		{
			FirstName:       "Ada",
			LastName:        "Lovelace",
			Email:           "ada@dzilo.test",
			Password:        "engine-no-1!",
			ConfirmPassword: "engine-no-1!",
			Role:            "admin",
			Language:        "en",
		},
		{
			FirstName:       "Blaise",
			LastName:        "Pascal",
			Email:           "blaise@dzilo.test",
			Password:        "pensees-1662",
			ConfirmPassword: "pensees-1662",
			Role:            "manager",
			Language:        "fr",
		},
	} {
		dto := dto
		if _, err := svc.Create(ctx, &dto); err != nil {
			return err
		}
	}
	return nil
}

// DocTemplates seeds the starter document library.
func DocTemplates(ctx context.Context, app application.Application) error {
	svc := app.Service(services.DocTemplateService{}).(*services.DocTemplateService)
	for _, dto := range []dtos.DocTemplateDTO{
		{Name: "Offer letter", Category: "hr", Fields: []string{"candidateName", "salary", "startDate"}, Status: "published"},
		{Name: "NDA agreement", Category: "legal", Fields: []string{"counterparty", "effectiveDate"}, Status: "published"},
		{Name: "Onboarding checklist", Category: "hr", Fields: []string{"employeeName"}},
	} {
		dto := dto
		if _, err := svc.Create(ctx, &dto); err != nil {
			return err
		}
	}
	return nil
}
