package dtos

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/10021987z/dzilo-sub003/modules/scheduling/domain/entities/event"
	"github.com/10021987z/dzilo-sub003/pkg/calendar"
	"github.com/10021987z/dzilo-sub003/pkg/constants"
	"github.com/10021987z/dzilo-sub003/pkg/crud"
	"github.com/10021987z/dzilo-sub003/pkg/intl"
	"github.com/10021987z/dzilo-sub003/pkg/serrors"
)

type EventDTO struct {
	Title      string `form:"title" validate:"required,notblank"`
	Date       string `form:"date" validate:"required,datetime=2006-01-02"`
	StartTime  string `form:"startTime" validate:"required,datetime=15:04"`
	EndTime    string `form:"endTime" validate:"required,datetime=15:04"`
	Source     string `form:"source" validate:"omitempty,oneof=internal google outlook"`
	SyncStatus string `form:"syncStatus" validate:"omitempty,oneof=pending synced failed"`
	Status     string `form:"status" validate:"omitempty,oneof=scheduled confirmed completed cancelled rescheduled"`
}

func EventFormDefaults() crud.Draft {
	return crud.Draft{
		"title":     "",
		"date":      "",
		"startTime": "",
		"endTime":   "",
		"source":    string(event.SourceInternal),
		"status":    "",
	}
}

func EventFormValidator() *crud.Validator {
	return crud.NewValidator(
		crud.Required("title", "Events.Fields.Title"),
		crud.Required("date", "Events.Fields.Date"),
		crud.Required("startTime", "Events.Fields.StartTime"),
		crud.Required("endTime", "Events.Fields.EndTime"),
	)
}

func EventFromDraft(d crud.Draft) (*EventDTO, error) {
	dto := &EventDTO{}
	if err := crud.DecodeDraft(d, dto); err != nil {
		return nil, err
	}
	return dto, nil
}

func eventFieldLocaleKey(field string) string {
	switch field {
	case "Title", "Date", "StartTime", "EndTime":
		return fmt.Sprintf("Events.Fields.%s", field)
	default:
		return ""
	}
}

func (dto *EventDTO) Ok(ctx context.Context) (map[string]string, bool) {
	l := intl.MustUseLocalizer(ctx)
	errs := constants.Validate.Struct(dto)
	if errs == nil {
		return map[string]string{}, true
	}
	validationErrors := serrors.ProcessValidatorErrors(errs.(validator.ValidationErrors), eventFieldLocaleKey)
	return serrors.LocalizeValidationErrors(validationErrors, l), false
}

func (dto *EventDTO) ToEntity() (event.Event, error) {
	date, err := time.Parse(calendar.DateLayout, dto.Date)
	if err != nil {
		return event.Event{}, err
	}
	opts := []event.Option{}
	if dto.Source != "" {
		opts = append(opts, event.WithSource(event.Source(dto.Source), event.SyncStatus(dto.SyncStatus)))
	}
	if dto.Status != "" {
		opts = append(opts, event.WithStatus(event.Status(dto.Status)))
	}
	return event.New(dto.Title, date, dto.StartTime, dto.EndTime, opts...)
}
