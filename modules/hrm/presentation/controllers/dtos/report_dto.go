package dtos

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/10021987z/dzilo-sub003/modules/hrm/domain/entities/report"
	"github.com/10021987z/dzilo-sub003/pkg/constants"
	"github.com/10021987z/dzilo-sub003/pkg/crud"
	"github.com/10021987z/dzilo-sub003/pkg/intl"
	"github.com/10021987z/dzilo-sub003/pkg/serrors"
)

type ReportSectionDTO struct {
	Title   string `form:"title" validate:"required,notblank"`
	Content string `form:"content" validate:"required,notblank"`
}

type ReportDTO struct {
	Title     string             `form:"title" validate:"required,notblank"`
	StartDate string             `form:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string             `form:"endDate" validate:"required,datetime=2006-01-02"`
	Sections  []ReportSectionDTO `form:"sections" validate:"min=1,dive"`
	Status    string             `form:"status" validate:"omitempty,oneof=draft submitted approved"`
}

func ReportFormDefaults() crud.Draft {
	return crud.Draft{
		"title":     "",
		"startDate": "",
		"endDate":   "",
		"sections": []crud.Draft{
			{"title": "", "content": ""},
		},
		"status": "",
	}
}

func ReportFormValidator() *crud.Validator {
	return crud.NewValidator(
		crud.Required("title", "Reports.Fields.Title"),
		crud.Required("startDate", "Reports.Fields.StartDate"),
		crud.Required("endDate", "Reports.Fields.EndDate"),
		crud.DateOrder("startDate", "endDate", "Reports.Fields.EndDate"),
		crud.RequiredSections("sections", map[string]string{
			"title":   "Reports.Fields.SectionTitle",
			"content": "Reports.Fields.SectionContent",
		}, "title", "content"),
	)
}

func ReportFromDraft(d crud.Draft) (*ReportDTO, error) {
	dto := &ReportDTO{}
	if err := crud.DecodeDraft(d, dto); err != nil {
		return nil, err
	}
	return dto, nil
}

func reportFieldLocaleKey(field string) string {
	switch field {
	case "Title", "StartDate", "EndDate", "Sections", "Status":
		return fmt.Sprintf("Reports.Fields.%s", field)
	default:
		return ""
	}
}

func (dto *ReportDTO) Ok(ctx context.Context) (map[string]string, bool) {
	l := intl.MustUseLocalizer(ctx)
	errs := constants.Validate.Struct(dto)
	if errs == nil {
		return map[string]string{}, true
	}
	validationErrors := serrors.ProcessValidatorErrors(errs.(validator.ValidationErrors), reportFieldLocaleKey)
	return serrors.LocalizeValidationErrors(validationErrors, l), false
}

func (dto *ReportDTO) sections() []report.Section {
	sections := make([]report.Section, 0, len(dto.Sections))
	for _, s := range dto.Sections {
		sections = append(sections, report.Section{Title: s.Title, Content: s.Content})
	}
	return sections
}

func (dto *ReportDTO) rangeDates() (time.Time, time.Time, error) {
	start, err := time.Parse(dateLayout, dto.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.Parse(dateLayout, dto.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

func (dto *ReportDTO) ToEntity() (report.Report, error) {
	start, end, err := dto.rangeDates()
	if err != nil {
		return report.Report{}, err
	}
	opts := []report.Option{}
	if dto.Status != "" {
		opts = append(opts, report.WithStatus(report.Status(dto.Status)))
	}
	return report.New(dto.Title, start, end, dto.sections(), opts...), nil
}

func (dto *ReportDTO) Apply(r report.Report) (report.Report, error) {
	if r.IsZero() {
		return report.Report{}, report.ErrReportNotFound
	}
	start, end, err := dto.rangeDates()
	if err != nil {
		return report.Report{}, err
	}
	r = r.Retitle(dto.Title).
		SetRange(start, end).
		SetSections(dto.sections())
	if dto.Status != "" {
		r = r.SetStatus(report.Status(dto.Status))
	}
	return r, nil
}
