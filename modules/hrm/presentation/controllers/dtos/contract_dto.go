package dtos

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/10021987z/dzilo-sub003/modules/hrm/domain/aggregates/contract"
	"github.com/10021987z/dzilo-sub003/pkg/constants"
	"github.com/10021987z/dzilo-sub003/pkg/crud"
	"github.com/10021987z/dzilo-sub003/pkg/intl"
	"github.com/10021987z/dzilo-sub003/pkg/serrors"
)

const dateLayout = "2006-01-02"

type ContractPeriodDTO struct {
	StartDate string `form:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string `form:"endDate" validate:"required,datetime=2006-01-02"`
}

type ContractDTO struct {
	EmployeeName string            `form:"employeeName" validate:"required,notblank"`
	Kind         string            `form:"kind" validate:"required,notblank"`
	Period       ContractPeriodDTO `form:"period"`
	SalaryNote   string            `form:"salaryNote" validate:"omitempty"`
	Status       string            `form:"status" validate:"omitempty,oneof=draft active terminated"`
}

// ContractFormDefaults is the blank shape of the contract form, nested
// period group included.
func ContractFormDefaults() crud.Draft {
	return crud.Draft{
		"employeeName": "",
		"kind":         "",
		"period": crud.Draft{
			"startDate": "",
			"endDate":   "",
		},
		"salaryNote": "",
		"status":     "",
	}
}

func ContractFormValidator() *crud.Validator {
	return crud.NewValidator(
		crud.Required("employeeName", "Contracts.Fields.EmployeeName"),
		crud.Required("kind", "Contracts.Fields.Kind"),
		crud.Required("period.startDate", "Contracts.Fields.StartDate"),
		crud.Required("period.endDate", "Contracts.Fields.EndDate"),
		crud.DateOrder("period.startDate", "period.endDate", "Contracts.Fields.EndDate"),
	)
}

func ContractFromDraft(d crud.Draft) (*ContractDTO, error) {
	dto := &ContractDTO{}
	if err := crud.DecodeDraft(d, dto); err != nil {
		return nil, err
	}
	return dto, nil
}

func contractFieldLocaleKey(field string) string {
	switch field {
	case "EmployeeName", "Kind", "StartDate", "EndDate", "SalaryNote", "Status":
		return fmt.Sprintf("Contracts.Fields.%s", field)
	default:
		return ""
	}
}

func (dto *ContractDTO) Ok(ctx context.Context) (map[string]string, bool) {
	l := intl.MustUseLocalizer(ctx)
	errs := constants.Validate.Struct(dto)
	if errs == nil {
		return map[string]string{}, true
	}
	validationErrors := serrors.ProcessValidatorErrors(errs.(validator.ValidationErrors), contractFieldLocaleKey)
	return serrors.LocalizeValidationErrors(validationErrors, l), false
}

func (dto *ContractDTO) period() (contract.Period, error) {
	start, err := time.Parse(dateLayout, dto.Period.StartDate)
	if err != nil {
		return contract.Period{}, err
	}
	end, err := time.Parse(dateLayout, dto.Period.EndDate)
	if err != nil {
		return contract.Period{}, err
	}
	return contract.NewPeriod(start, end)
}

func (dto *ContractDTO) ToEntity() (contract.Contract, error) {
	period, err := dto.period()
	if err != nil {
		return contract.Contract{}, err
	}
	opts := []contract.Option{
		contract.WithSalaryNote(dto.SalaryNote),
	}
	if dto.Status != "" {
		opts = append(opts, contract.WithStatus(contract.Status(dto.Status)))
	}
	return contract.New(dto.EmployeeName, dto.Kind, period, opts...), nil
}

func (dto *ContractDTO) Apply(c contract.Contract) (contract.Contract, error) {
	if c.IsZero() {
		return contract.Contract{}, contract.ErrContractNotFound
	}
	period, err := dto.period()
	if err != nil {
		return contract.Contract{}, err
	}
	c = c.SetEmployeeName(dto.EmployeeName).
		SetKind(dto.Kind).
		SetPeriod(period).
		SetSalaryNote(dto.SalaryNote)
	if dto.Status != "" {
		c = c.SetStatus(contract.Status(dto.Status))
	}
	return c, nil
}
