package dtos

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/10021987z/dzilo-sub003/modules/core/domain/entities/doctemplate"
	"github.com/10021987z/dzilo-sub003/pkg/constants"
	"github.com/10021987z/dzilo-sub003/pkg/intl"
	"github.com/10021987z/dzilo-sub003/pkg/serrors"
)

type DocTemplateDTO struct {
	Name     string   `form:"name" validate:"required,notblank"`
	Category string   `form:"category" validate:"required,notblank"`
	Fields   []string `form:"fields" validate:"omitempty,dive,notblank"`
	Status   string   `form:"status" validate:"omitempty,oneof=draft published archived"`
}

func templateFieldLocaleKey(field string) string {
	switch field {
	case "Name", "Category", "Fields", "Status":
		return fmt.Sprintf("Templates.Fields.%s", field)
	default:
		return ""
	}
}

func (dto *DocTemplateDTO) Ok(ctx context.Context) (map[string]string, bool) {
	l := intl.MustUseLocalizer(ctx)
	errs := constants.Validate.Struct(dto)
	if errs == nil {
		return map[string]string{}, true
	}
	validationErrors := serrors.ProcessValidatorErrors(errs.(validator.ValidationErrors), templateFieldLocaleKey)
	return serrors.LocalizeValidationErrors(validationErrors, l), false
}

func (dto *DocTemplateDTO) ToEntity() doctemplate.DocTemplate {
	opts := []doctemplate.Option{}
	if dto.Status != "" {
		opts = append(opts, doctemplate.WithStatus(doctemplate.Status(dto.Status)))
	}
	return doctemplate.New(dto.Name, dto.Category, dto.Fields, opts...)
}

func (dto *DocTemplateDTO) Apply(t doctemplate.DocTemplate) (doctemplate.DocTemplate, error) {
	if t.IsZero() {
		return doctemplate.DocTemplate{}, doctemplate.ErrTemplateNotFound
	}
	t = t.Rename(dto.Name).
		SetCategory(dto.Category).
		SetFields(dto.Fields)
	if dto.Status != "" {
		t = t.SetStatus(doctemplate.Status(dto.Status))
	}
	return t, nil
}
