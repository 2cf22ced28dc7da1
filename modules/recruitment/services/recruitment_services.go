package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/10021987z/dzilo-sub003/modules/recruitment/domain/aggregates/candidate"
	"github.com/10021987z/dzilo-sub003/modules/recruitment/domain/entities/interview"
	"github.com/10021987z/dzilo-sub003/modules/recruitment/domain/entities/jobposting"
	"github.com/10021987z/dzilo-sub003/modules/recruitment/presentation/controllers/dtos"
	"github.com/10021987z/dzilo-sub003/pkg/crud"
	"github.com/10021987z/dzilo-sub003/pkg/eventbus"
	"github.com/10021987z/dzilo-sub003/pkg/notify"
)

type JobPostingService struct {
	repo      jobposting.Repository
	publisher eventbus.EventBus
}

func NewJobPostingService(repo jobposting.Repository, publisher eventbus.EventBus) *JobPostingService {
	return &JobPostingService{repo: repo, publisher: publisher}
}

func (s *JobPostingService) List(ctx context.Context, params *jobposting.FindParams) ([]jobposting.Posting, error) {
	if params != nil {
		params.Query.Search = strings.TrimSpace(params.Query.Search)
	}
	return s.repo.List(ctx, params)
}

func (s *JobPostingService) GetByID(ctx context.Context, id uuid.UUID) (jobposting.Posting, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *JobPostingService) Create(ctx context.Context, dto *dtos.JobPostingDTO) (jobposting.Posting, error) {
	return s.repo.Save(ctx, dto.ToEntity())
}

func (s *JobPostingService) Update(ctx context.Context, id uuid.UUID, dto *dtos.JobPostingDTO) (jobposting.Posting, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return jobposting.Posting{}, err
	}
	entity, err := dto.Apply(existing)
	if err != nil {
		return jobposting.Posting{}, err
	}
	return s.repo.Save(ctx, entity)
}

func (s *JobPostingService) Publish(ctx context.Context, id uuid.UUID) (jobposting.Posting, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return jobposting.Posting{}, err
	}
	return s.repo.Save(ctx, existing.Publish())
}

func (s *JobPostingService) Close(ctx context.Context, id uuid.UUID) (jobposting.Posting, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return jobposting.Posting{}, err
	}
	return s.repo.Save(ctx, existing.Close())
}

func (s *JobPostingService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *JobPostingService) SortBy(key string, direction ...crud.SortDirection) error {
	return s.repo.SortBy(key, direction...)
}

type CandidateService struct {
	repo      candidate.Repository
	postings  jobposting.Repository
	publisher eventbus.EventBus
	notifier  *notify.Notifier
}

func NewCandidateService(
	repo candidate.Repository,
	postings jobposting.Repository,
	publisher eventbus.EventBus,
	notifier *notify.Notifier,
) *CandidateService {
	return &CandidateService{repo: repo, postings: postings, publisher: publisher, notifier: notifier}
}

func (s *CandidateService) List(ctx context.Context, params *candidate.FindParams) ([]candidate.Candidate, error) {
	if params != nil {
		params.Query.Search = strings.TrimSpace(params.Query.Search)
	}
	return s.repo.List(ctx, params)
}

func (s *CandidateService) GetByID(ctx context.Context, id uuid.UUID) (candidate.Candidate, error) {
	return s.repo.GetByID(ctx, id)
}

// Apply registers a candidate against a published posting.
func (s *CandidateService) Apply(ctx context.Context, dto *dtos.CandidateDTO) (candidate.Candidate, error) {
	entity, err := dto.ToEntity()
	if err != nil {
		return candidate.Candidate{}, err
	}
	posting, err := s.postings.GetByID(ctx, entity.PostingID())
	if err != nil {
		return candidate.Candidate{}, err
	}
	if posting.Status() != jobposting.StatusPublished {
		return candidate.Candidate{}, jobposting.ErrPostingNotFound.WithDetail(
			"posting %q is not open for applications", posting.Title(),
		)
	}
	created, err := s.repo.Save(ctx, entity)
	if err != nil {
		return candidate.Candidate{}, err
	}
	s.publisher.Publish(candidate.CreatedEvent{Result: created})
	return created, nil
}

// MoveTo applies one pipeline transition; illegal moves surface as data
// errors and leave the stored candidate untouched.
func (s *CandidateService) MoveTo(ctx context.Context, id uuid.UUID, target candidate.Stage) (candidate.Candidate, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return candidate.Candidate{}, err
	}
	from := existing.Stage()
	moved, err := existing.MoveTo(target)
	if err != nil {
		return candidate.Candidate{}, err
	}
	saved, err := s.repo.Save(ctx, moved)
	if err != nil {
		return candidate.Candidate{}, err
	}
	s.publisher.Publish(candidate.StageChangedEvent{From: from, Result: saved})
	if s.notifier != nil && target == candidate.StageHired {
		s.notifier.Success(saved.FullName() + " hired")
	}
	return saved, nil
}

func (s *CandidateService) Advance(ctx context.Context, id uuid.UUID) (candidate.Candidate, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return candidate.Candidate{}, err
	}
	advanced, err := existing.Advance()
	if err != nil {
		return candidate.Candidate{}, err
	}
	return s.MoveTo(ctx, id, advanced.Stage())
}

func (s *CandidateService) Reject(ctx context.Context, id uuid.UUID) (candidate.Candidate, error) {
	return s.MoveTo(ctx, id, candidate.StageRejected)
}

func (s *CandidateService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *CandidateService) SortBy(key string, direction ...crud.SortDirection) error {
	return s.repo.SortBy(key, direction...)
}

type InterviewService struct {
	repo       interview.Repository
	candidates candidate.Repository
	publisher  eventbus.EventBus
}

func NewInterviewService(repo interview.Repository, candidates candidate.Repository, publisher eventbus.EventBus) *InterviewService {
	return &InterviewService{repo: repo, candidates: candidates, publisher: publisher}
}

func (s *InterviewService) List(ctx context.Context, params *interview.FindParams) ([]interview.Interview, error) {
	if params != nil {
		params.Query.Search = strings.TrimSpace(params.Query.Search)
	}
	return s.repo.List(ctx, params)
}

func (s *InterviewService) GetByID(ctx context.Context, id uuid.UUID) (interview.Interview, error) {
	return s.repo.GetByID(ctx, id)
}

// Schedule books an interview for a candidate currently in the interview
// stage.
func (s *InterviewService) Schedule(ctx context.Context, dto *dtos.InterviewDTO) (interview.Interview, error) {
	entity, err := dto.ToEntity()
	if err != nil {
		return interview.Interview{}, err
	}
	if _, err := s.candidates.GetByID(ctx, entity.CandidateID()); err != nil {
		return interview.Interview{}, err
	}
	return s.repo.Save(ctx, entity)
}

func (s *InterviewService) Reschedule(ctx context.Context, id uuid.UUID, date time.Time, startTime, endTime string) (interview.Interview, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return interview.Interview{}, err
	}
	moved, err := existing.Reschedule(date, startTime, endTime)
	if err != nil {
		return interview.Interview{}, err
	}
	return s.repo.Save(ctx, moved)
}

func (s *InterviewService) Transition(ctx context.Context, id uuid.UUID, apply func(interview.Interview) interview.Interview) (interview.Interview, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return interview.Interview{}, err
	}
	return s.repo.Save(ctx, apply(existing))
}

func (s *InterviewService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *InterviewService) SortBy(key string, direction ...crud.SortDirection) error {
	return s.repo.SortBy(key, direction...)
}
