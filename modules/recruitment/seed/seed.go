package seed

import (
	"context"

	"github.com/10021987z/dzilo-sub003/modules/recruitment/presentation/controllers/dtos"
	"github.com/10021987z/dzilo-sub003/modules/recruitment/services"
	"github.com/10021987z/dzilo-sub003/pkg/application"
)

// Recruitment seeds a published opening with a small candidate pipeline.
func Recruitment(ctx context.Context, app application.Application) error {
	postings := app.Service(services.JobPostingService{}).(*services.JobPostingService)
	candidates := app.Service(services.CandidateService{}).(*services.CandidateService)

	opening, err := postings.Create(ctx, &dtos.JobPostingDTO{
		Title:      "Backend engineer",
		Department: "engineering",
		Location:   "Lyon",
		Status:     "published",
	})
	if err != nil {
		return err
	}
	if _, err := postings.Create(ctx, &dtos.JobPostingDTO{
		Title:      "Office manager",
		Department: "operations",
		Location:   "Paris",
	}); err != nil {
		return err
	}

	for _, dto := range []dtos.CandidateDTO{
		{FirstName: "Grace", LastName: "Hopper", Email: "grace.hopper@example.com", PostingID: opening.ID().String()},
		{FirstName: "Alan", LastName: "Turing", Email: "alan.turing@example.com", PostingID: opening.ID().String()},
	} {
		dto := dto
		if _, err := candidates.Apply(ctx, &dto); err != nil {
			return err
		}
	}
	return nil
}
