package dtos

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/10021987z/dzilo-sub003/modules/recruitment/domain/aggregates/candidate"
	"github.com/10021987z/dzilo-sub003/modules/recruitment/domain/entities/interview"
	"github.com/10021987z/dzilo-sub003/modules/recruitment/domain/entities/jobposting"
	"github.com/10021987z/dzilo-sub003/pkg/calendar"
	"github.com/10021987z/dzilo-sub003/pkg/constants"
	"github.com/10021987z/dzilo-sub003/pkg/intl"
	"github.com/10021987z/dzilo-sub003/pkg/serrors"
)

type JobPostingDTO struct {
	Title      string `form:"title" validate:"required,notblank"`
	Department string `form:"department" validate:"required,notblank"`
	Location   string `form:"location" validate:"required,notblank"`
	Status     string `form:"status" validate:"omitempty,oneof=draft published closed"`
}

func postingFieldLocaleKey(field string) string {
	switch field {
	case "Title", "Department", "Location":
		return fmt.Sprintf("JobPostings.Fields.%s", field)
	default:
		return ""
	}
}

func (dto *JobPostingDTO) Ok(ctx context.Context) (map[string]string, bool) {
	l := intl.MustUseLocalizer(ctx)
	errs := constants.Validate.Struct(dto)
	if errs == nil {
		return map[string]string{}, true
	}
	validationErrors := serrors.ProcessValidatorErrors(errs.(validator.ValidationErrors), postingFieldLocaleKey)
	return serrors.LocalizeValidationErrors(validationErrors, l), false
}

func (dto *JobPostingDTO) ToEntity() jobposting.Posting {
	opts := []jobposting.Option{}
	if dto.Status != "" {
		opts = append(opts, jobposting.WithStatus(jobposting.Status(dto.Status)))
	}
	return jobposting.New(dto.Title, dto.Department, dto.Location, opts...)
}

func (dto *JobPostingDTO) Apply(p jobposting.Posting) (jobposting.Posting, error) {
	if p.IsZero() {
		return jobposting.Posting{}, jobposting.ErrPostingNotFound
	}
	p = p.Retitle(dto.Title).
		SetDepartment(dto.Department).
		SetLocation(dto.Location)
	if dto.Status != "" {
		p = jobposting.Hydrate(p.ID(), p.Title(), p.Department(), p.Location(), jobposting.Status(dto.Status), p.CreatedAt())
	}
	return p, nil
}

type CandidateDTO struct {
	FirstName string `form:"firstName" validate:"required,notblank"`
	LastName  string `form:"lastName" validate:"required,notblank"`
	Email     string `form:"email" validate:"required,emailshape"`
	PostingID string `form:"postingId" validate:"required,uuid4"`
}

func candidateFieldLocaleKey(field string) string {
	switch field {
	case "FirstName", "LastName", "Email", "Stage":
		return fmt.Sprintf("Candidates.Fields.%s", field)
	default:
		return ""
	}
}

func (dto *CandidateDTO) Ok(ctx context.Context) (map[string]string, bool) {
	l := intl.MustUseLocalizer(ctx)
	errs := constants.Validate.Struct(dto)
	if errs == nil {
		return map[string]string{}, true
	}
	validationErrors := serrors.ProcessValidatorErrors(errs.(validator.ValidationErrors), candidateFieldLocaleKey)
	return serrors.LocalizeValidationErrors(validationErrors, l), false
}

func (dto *CandidateDTO) ToEntity() (candidate.Candidate, error) {
	postingID, err := uuid.Parse(dto.PostingID)
	if err != nil {
		return candidate.Candidate{}, err
	}
	return candidate.New(dto.FirstName, dto.LastName, dto.Email, postingID), nil
}

type InterviewDTO struct {
	CandidateID string `form:"candidateId" validate:"required,uuid4"`
	Interviewer string `form:"interviewer" validate:"required,notblank"`
	Date        string `form:"date" validate:"required,datetime=2006-01-02"`
	StartTime   string `form:"startTime" validate:"required,datetime=15:04"`
	EndTime     string `form:"endTime" validate:"required,datetime=15:04"`
}

func interviewFieldLocaleKey(field string) string {
	switch field {
	case "CandidateID", "Interviewer", "Date", "StartTime":
		return fmt.Sprintf("Interviews.Fields.%s", field)
	default:
		return ""
	}
}

func (dto *InterviewDTO) Ok(ctx context.Context) (map[string]string, bool) {
	l := intl.MustUseLocalizer(ctx)
	errs := constants.Validate.Struct(dto)
	if errs == nil {
		return map[string]string{}, true
	}
	validationErrors := serrors.ProcessValidatorErrors(errs.(validator.ValidationErrors), interviewFieldLocaleKey)
	return serrors.LocalizeValidationErrors(validationErrors, l), false
}

func (dto *InterviewDTO) ToEntity() (interview.Interview, error) {
	candidateID, err := uuid.Parse(dto.CandidateID)
	if err != nil {
		return interview.Interview{}, err
	}
	date, err := time.Parse(calendar.DateLayout, dto.Date)
	if err != nil {
		return interview.Interview{}, err
	}
	return interview.New(candidateID, dto.Interviewer, date, dto.StartTime, dto.EndTime)
}
