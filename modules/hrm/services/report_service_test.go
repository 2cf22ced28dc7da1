package services_test

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/10021987z/dzilo-sub003/modules/hrm/infrastructure/persistence"
	"github.com/10021987z/dzilo-sub003/modules/hrm/presentation/controllers/dtos"
	"github.com/10021987z/dzilo-sub003/modules/hrm/services"
	"github.com/10021987z/dzilo-sub003/pkg/crud"
	"github.com/10021987z/dzilo-sub003/pkg/eventbus"
	"github.com/10021987z/dzilo-sub003/pkg/logging"
)

func setupReportService(t *testing.T) *services.ReportService {
	t.Helper()
	bus := eventbus.NewEventPublisher(logging.ConsoleLogger(logrus.ErrorLevel))
	return services.NewReportService(persistence.NewInmemReportRepository(), bus)
}

func TestReportService_FormSessionHappyPath(t *testing.T) {
	t.Parallel()
	svc := setupReportService(t)
	ctx := context.Background()

	session := svc.NewReportFormSession()
	form := session.Form()
	require.NoError(t, form.SetField("title", "Q1 activity"))
	require.NoError(t, form.SetField("startDate", "2026-01-01"))
	require.NoError(t, form.SetField("endDate", "2026-03-31"))
	form.SetSections("sections", []crud.Draft{
		{"title": "Hiring", "content": "Two offers extended."},
		{"title": "Churn", "content": "None."},
	})

	res := session.Submit(ctx)
	require.NoError(t, res.Err)
	require.True(t, res.Errors.Empty())
	require.Equal(t, crud.StateSucceeded, res.State)

	reports, err := svc.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "Q1 activity", reports[0].Title())
	require.Len(t, reports[0].Sections(), 2)
	assert.Equal(t, "Hiring", reports[0].Sections()[0].Title)
}

func TestReportService_EndBeforeStartBlocksSubmit(t *testing.T) {
	t.Parallel()
	svc := setupReportService(t)
	ctx := context.Background()

	session := svc.NewReportFormSession()
	form := session.Form()
	require.NoError(t, form.SetField("title", "Inverted range"))
	require.NoError(t, form.SetField("startDate", "2026-03-31"))
	require.NoError(t, form.SetField("endDate", "2026-01-01"))
	form.SetSections("sections", []crud.Draft{
		{"title": "Body", "content": "Text."},
	})

	res := session.Submit(ctx)
	require.Equal(t, crud.StateIdle, res.State)
	fields := res.Errors.Fields()
	assert.Contains(t, fields, "endDate")
	assert.NotContains(t, fields, "startDate")

	reports, err := svc.List(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, reports)

	// The draft survives the rejection for correction.
	assert.Equal(t, "Inverted range", form.Draft().String("title"))
}

func TestReportService_IncompleteSectionsFlagAggregate(t *testing.T) {
	t.Parallel()
	svc := setupReportService(t)
	ctx := context.Background()

	session := svc.NewReportFormSession()
	form := session.Form()
	require.NoError(t, form.SetField("title", "Partial"))
	require.NoError(t, form.SetField("startDate", "2026-01-01"))
	require.NoError(t, form.SetField("endDate", "2026-01-31"))
	form.SetSections("sections", []crud.Draft{
		{"title": "Complete", "content": "Filled."},
		{"title": "", "content": "Missing its title."},
	})

	res := session.Submit(ctx)
	require.Equal(t, crud.StateIdle, res.State)
	fields := res.Errors.Fields()
	assert.Contains(t, fields, "section_1_title")
	assert.Contains(t, fields, "sections")
	assert.NotContains(t, fields, "section_0_title")
}

func TestReportService_UpdateReplacesSections(t *testing.T) {
	t.Parallel()
	svc := setupReportService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &dtos.ReportDTO{
		Title:     "Monthly",
		StartDate: "2026-02-01",
		EndDate:   "2026-02-28",
		Sections:  []dtos.ReportSectionDTO{{Title: "One", Content: "First."}},
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID(), &dtos.ReportDTO{
		Title:     "Monthly v2",
		StartDate: "2026-02-01",
		EndDate:   "2026-02-28",
		Sections: []dtos.ReportSectionDTO{
			{Title: "One", Content: "First."},
			{Title: "Two", Content: "Second."},
		},
		Status: "submitted",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID(), updated.ID())
	assert.Len(t, updated.Sections(), 2)
}
