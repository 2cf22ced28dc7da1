package persistence

import (
	"context"

	"github.com/google/uuid"

	"github.com/10021987z/dzilo-sub003/modules/recruitment/domain/aggregates/candidate"
	"github.com/10021987z/dzilo-sub003/modules/recruitment/domain/entities/interview"
	"github.com/10021987z/dzilo-sub003/modules/recruitment/domain/entities/jobposting"
	"github.com/10021987z/dzilo-sub003/pkg/crud"
)

type InmemPostingRepository struct {
	list *crud.ListModel[jobposting.Posting]
}

func NewInmemPostingRepository() *InmemPostingRepository {
	return &InmemPostingRepository{
		list: crud.NewListModel(
			crud.WithSearchFields(
				jobposting.Posting.Title,
				jobposting.Posting.Department,
			),
			crud.WithCategory("department", jobposting.Posting.Department),
			crud.WithCategory("location", jobposting.Posting.Location),
			crud.WithCategory("status", func(p jobposting.Posting) string { return string(p.Status()) }),
			crud.WithStringSortKey("title", jobposting.Posting.Title),
			crud.WithDateSortKey("createdAt", jobposting.Posting.CreatedAt),
		),
	}
}

func (r *InmemPostingRepository) List(_ context.Context, params *jobposting.FindParams) ([]jobposting.Posting, error) {
	if params == nil {
		return r.list.All(), nil
	}
	postings := r.list.Filtered(params.Query)
	return paginate(postings, params.Offset, params.Limit), nil
}

func (r *InmemPostingRepository) GetByID(_ context.Context, id uuid.UUID) (jobposting.Posting, error) {
	p, ok := r.list.Get(id)
	if !ok {
		return jobposting.Posting{}, jobposting.ErrPostingNotFound
	}
	return p, nil
}

func (r *InmemPostingRepository) Save(_ context.Context, p jobposting.Posting) (jobposting.Posting, error) {
	return r.list.Upsert(p), nil
}

func (r *InmemPostingRepository) Delete(_ context.Context, id uuid.UUID) error {
	if !r.list.Remove(id) {
		return jobposting.ErrPostingNotFound
	}
	return nil
}

func (r *InmemPostingRepository) SortBy(key string, direction ...crud.SortDirection) error {
	return r.list.SortBy(key, direction...)
}

type InmemCandidateRepository struct {
	list *crud.ListModel[candidate.Candidate]
}

func NewInmemCandidateRepository() *InmemCandidateRepository {
	return &InmemCandidateRepository{
		list: crud.NewListModel(
			crud.WithSearchFields(
				candidate.Candidate.FullName,
				candidate.Candidate.Email,
			),
			crud.WithCategory("stage", func(c candidate.Candidate) string { return string(c.Stage()) }),
			crud.WithCategory("posting", func(c candidate.Candidate) string { return c.PostingID().String() }),
			crud.WithStringSortKey("name", candidate.Candidate.FullName),
			crud.WithDateSortKey("createdAt", candidate.Candidate.CreatedAt),
		),
	}
}

func (r *InmemCandidateRepository) List(_ context.Context, params *candidate.FindParams) ([]candidate.Candidate, error) {
	if params == nil {
		return r.list.All(), nil
	}
	candidates := r.list.Filtered(params.Query)
	return paginate(candidates, params.Offset, params.Limit), nil
}

func (r *InmemCandidateRepository) GetByID(_ context.Context, id uuid.UUID) (candidate.Candidate, error) {
	c, ok := r.list.Get(id)
	if !ok {
		return candidate.Candidate{}, candidate.ErrCandidateNotFound
	}
	return c, nil
}

func (r *InmemCandidateRepository) Save(_ context.Context, c candidate.Candidate) (candidate.Candidate, error) {
	return r.list.Upsert(c), nil
}

func (r *InmemCandidateRepository) Delete(_ context.Context, id uuid.UUID) error {
	if !r.list.Remove(id) {
		return candidate.ErrCandidateNotFound
	}
	return nil
}

func (r *InmemCandidateRepository) SortBy(key string, direction ...crud.SortDirection) error {
	return r.list.SortBy(key, direction...)
}

type InmemInterviewRepository struct {
	list *crud.ListModel[interview.Interview]
}

func NewInmemInterviewRepository() *InmemInterviewRepository {
	return &InmemInterviewRepository{
		list: crud.NewListModel(
			crud.WithSearchFields(
				interview.Interview.Interviewer,
			),
			crud.WithCategory("status", func(i interview.Interview) string { return string(i.Status()) }),
			crud.WithCategory("day", interview.Interview.Day),
			crud.WithDateSortKey("date", interview.Interview.Date),
			crud.WithDateSortKey("createdAt", interview.Interview.CreatedAt),
		),
	}
}

func (r *InmemInterviewRepository) List(_ context.Context, params *interview.FindParams) ([]interview.Interview, error) {
	if params == nil {
		return r.list.All(), nil
	}
	interviews := r.list.Filtered(params.Query)
	return paginate(interviews, params.Offset, params.Limit), nil
}

func (r *InmemInterviewRepository) GetByID(_ context.Context, id uuid.UUID) (interview.Interview, error) {
	i, ok := r.list.Get(id)
	if !ok {
		return interview.Interview{}, interview.ErrInterviewNotFound
	}
	return i, nil
}

func (r *InmemInterviewRepository) Save(_ context.Context, i interview.Interview) (interview.Interview, error) {
	return r.list.Upsert(i), nil
}

func (r *InmemInterviewRepository) Delete(_ context.Context, id uuid.UUID) error {
	if !r.list.Remove(id) {
		return interview.ErrInterviewNotFound
	}
	return nil
}

func (r *InmemInterviewRepository) SortBy(key string, direction ...crud.SortDirection) error {
	return r.list.SortBy(key, direction...)
}

func paginate[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
