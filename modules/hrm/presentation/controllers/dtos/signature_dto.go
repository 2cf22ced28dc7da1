package dtos

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/10021987z/dzilo-sub003/modules/hrm/domain/entities/signature"
	"github.com/10021987z/dzilo-sub003/pkg/constants"
	"github.com/10021987z/dzilo-sub003/pkg/intl"
	"github.com/10021987z/dzilo-sub003/pkg/serrors"
)

type SignatureRequestDTO struct {
	Document string `form:"document" validate:"required,notblank"`
	Signer   string `form:"signer" validate:"required,notblank"`
}

func signatureFieldLocaleKey(field string) string {
	switch field {
	case "Document", "Signer":
		return fmt.Sprintf("Signatures.Fields.%s", field)
	default:
		return ""
	}
}

func (dto *SignatureRequestDTO) Ok(ctx context.Context) (map[string]string, bool) {
	l := intl.MustUseLocalizer(ctx)
	errs := constants.Validate.Struct(dto)
	if errs == nil {
		return map[string]string{}, true
	}
	validationErrors := serrors.ProcessValidatorErrors(errs.(validator.ValidationErrors), signatureFieldLocaleKey)
	return serrors.LocalizeValidationErrors(validationErrors, l), false
}

func (dto *SignatureRequestDTO) ToEntity() signature.Record {
	return signature.New(dto.Document, dto.Signer)
}
