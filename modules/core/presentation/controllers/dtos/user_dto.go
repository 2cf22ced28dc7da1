package dtos

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/10021987z/dzilo-sub003/modules/core/domain/aggregates/user"
	"github.com/10021987z/dzilo-sub003/pkg/constants"
	"github.com/10021987z/dzilo-sub003/pkg/crud"
	"github.com/10021987z/dzilo-sub003/pkg/intl"
	"github.com/10021987z/dzilo-sub003/pkg/serrors"
)

type CreateUserDTO struct {
	FirstName       string `form:"firstName" validate:"required,notblank"`
	LastName        string `form:"lastName" validate:"required,notblank"`
	Email           string `form:"email" validate:"required,emailshape"`
	Password        string `form:"password" validate:"required,min=8"`
	ConfirmPassword string `form:"confirmPassword" validate:"eqfield=Password"`
	Role            string `form:"role" validate:"omitempty"`
	Language        string `form:"language" validate:"required,oneof=en fr"`
}

type UpdateUserDTO struct {
	FirstName string `form:"firstName" validate:"required,notblank"`
	LastName  string `form:"lastName" validate:"required,notblank"`
	Email     string `form:"email" validate:"required,emailshape"`
	Password  string `form:"password" validate:"omitempty,min=8"`
	Role      string `form:"role" validate:"omitempty"`
	Language  string `form:"language" validate:"required,oneof=en fr"`
}

// UserFormDefaults is the declared default shape of the user creation form.
func UserFormDefaults() crud.Draft {
	return crud.Draft{
		"firstName":       "",
		"lastName":        "",
		"email":           "",
		"password":        "",
		"confirmPassword": "",
		"role":            "",
		"language":        "en",
	}
}

// UserFormValidator carries the draft-level rule set of the user form. The
// strength meter reads crud.PasswordStrength separately; only the length
// requirement blocks submission.
func UserFormValidator() *crud.Validator {
	return crud.NewValidator(
		crud.Required("firstName", "Users.Fields.FirstName"),
		crud.Required("lastName", "Users.Fields.LastName"),
		crud.Required("email", "Users.Fields.Email"),
		crud.EmailShape("email", "Users.Fields.Email"),
		crud.Required("password", "Users.Fields.Password"),
		crud.MinLength("password", 8, "Users.Fields.Password"),
		crud.FieldsMatch("password", "confirmPassword", "Users.Fields.ConfirmPassword"),
	)
}

// CreateUserFromDraft decodes a validated draft into the typed DTO.
func CreateUserFromDraft(d crud.Draft) (*CreateUserDTO, error) {
	dto := &CreateUserDTO{}
	if err := crud.DecodeDraft(d, dto); err != nil {
		return nil, err
	}
	return dto, nil
}

func userFieldLocaleKey(field string) string {
	switch field {
	case "FirstName", "LastName", "Email", "Password", "ConfirmPassword", "Language", "Role":
		return fmt.Sprintf("Users.Fields.%s", field)
	default:
		return ""
	}
}

func (dto *CreateUserDTO) Ok(ctx context.Context) (map[string]string, bool) {
	l := intl.MustUseLocalizer(ctx)
	errs := constants.Validate.Struct(dto)
	if errs == nil {
		return map[string]string{}, true
	}
	validationErrors := serrors.ProcessValidatorErrors(errs.(validator.ValidationErrors), userFieldLocaleKey)
	return serrors.LocalizeValidationErrors(validationErrors, l), false
}

func (dto *UpdateUserDTO) Ok(ctx context.Context) (map[string]string, bool) {
	l := intl.MustUseLocalizer(ctx)
	errs := constants.Validate.Struct(dto)
	if errs == nil {
		return map[string]string{}, true
	}
	validationErrors := serrors.ProcessValidatorErrors(errs.(validator.ValidationErrors), userFieldLocaleKey)
	return serrors.LocalizeValidationErrors(validationErrors, l), false
}

func (dto *CreateUserDTO) ToEntity() (user.User, error) {
	lang, err := user.NewUILanguage(dto.Language)
	if err != nil {
		return user.User{}, err
	}
	u := user.New(
		dto.FirstName,
		dto.LastName,
		dto.Email,
		lang,
		user.WithRole(dto.Role),
	)
	return u.SetPassword(dto.Password)
}

func (dto *UpdateUserDTO) Apply(u user.User) (user.User, error) {
	if u.IsZero() {
		return user.User{}, user.ErrUserNotFound
	}
	lang, err := user.NewUILanguage(dto.Language)
	if err != nil {
		return user.User{}, err
	}
	u = u.SetName(dto.FirstName, dto.LastName).
		SetEmail(dto.Email).
		SetLanguage(lang).
		SetRole(dto.Role)
	if dto.Password != "" {
		return u.SetPassword(dto.Password)
	}
	return u, nil
}
