package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/10021987z/dzilo-sub003/modules/recruitment/domain/aggregates/candidate"
	"github.com/10021987z/dzilo-sub003/modules/recruitment/domain/entities/interview"
	"github.com/10021987z/dzilo-sub003/modules/recruitment/domain/entities/jobposting"
	"github.com/10021987z/dzilo-sub003/modules/recruitment/infrastructure/persistence"
	"github.com/10021987z/dzilo-sub003/modules/recruitment/presentation/controllers/dtos"
	"github.com/10021987z/dzilo-sub003/modules/recruitment/services"
	"github.com/10021987z/dzilo-sub003/pkg/eventbus"
	"github.com/10021987z/dzilo-sub003/pkg/logging"
	"github.com/10021987z/dzilo-sub003/pkg/notify"
)

type recruitmentFixture struct {
	postings   *services.JobPostingService
	candidates *services.CandidateService
	interviews *services.InterviewService
	notifier   *notify.Notifier
}

func setupRecruitment(t *testing.T) recruitmentFixture {
	t.Helper()
	log := logging.ConsoleLogger(logrus.ErrorLevel)
	publisher := eventbus.NewEventPublisher(log)
	notifier := notify.New(log, notify.DefaultTTL)
	t.Cleanup(notifier.Dispose)

	postingRepo := persistence.NewInmemPostingRepository()
	candidateRepo := persistence.NewInmemCandidateRepository()
	return recruitmentFixture{
		postings:   services.NewJobPostingService(postingRepo, publisher),
		candidates: services.NewCandidateService(candidateRepo, postingRepo, publisher, notifier),
		interviews: services.NewInterviewService(persistence.NewInmemInterviewRepository(), candidateRepo, publisher),
		notifier:   notifier,
	}
}

func (f recruitmentFixture) openPosting(t *testing.T, ctx context.Context) jobposting.Posting {
	t.Helper()
	p, err := f.postings.Create(ctx, &dtos.JobPostingDTO{
		Title:      "Backend engineer",
		Department: "engineering",
		Location:   "Lyon",
		Status:     "published",
	})
	require.NoError(t, err)
	return p
}

func (f recruitmentFixture) applicant(t *testing.T, ctx context.Context, postingID string) candidate.Candidate {
	t.Helper()
	c, err := f.candidates.Apply(ctx, &dtos.CandidateDTO{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace.hopper@example.com",
		PostingID: postingID,
	})
	require.NoError(t, err)
	return c
}

func TestCandidateService_ApplyRequiresPublishedPosting(t *testing.T) {
	t.Parallel()
	f := setupRecruitment(t)
	ctx := context.Background()

	draft, err := f.postings.Create(ctx, &dtos.JobPostingDTO{
		Title:      "Office manager",
		Department: "operations",
		Location:   "Paris",
	})
	require.NoError(t, err)
	require.Equal(t, jobposting.StatusDraft, draft.Status())

	_, err = f.candidates.Apply(ctx, &dtos.CandidateDTO{
		FirstName: "Alan",
		LastName:  "Turing",
		Email:     "alan.turing@example.com",
		PostingID: draft.ID().String(),
	})
	require.ErrorIs(t, err, jobposting.ErrPostingNotFound)

	published, err := f.postings.Publish(ctx, draft.ID())
	require.NoError(t, err)
	applied := f.applicant(t, ctx, published.ID().String())
	assert.Equal(t, candidate.StageApplied, applied.Stage())
}

func TestCandidateService_PipelineAdvancesOneStageAtATime(t *testing.T) {
	t.Parallel()
	f := setupRecruitment(t)
	ctx := context.Background()

	posting := f.openPosting(t, ctx)
	applied := f.applicant(t, ctx, posting.ID().String())

	want := []candidate.Stage{
		candidate.StageScreening,
		candidate.StageInterview,
		candidate.StageOffer,
		candidate.StageHired,
	}
	current := applied
	for _, stage := range want {
		moved, err := f.candidates.Advance(ctx, current.ID())
		require.NoError(t, err)
		assert.Equal(t, stage, moved.Stage())
		assert.Equal(t, applied.ID(), moved.ID())
		current = moved
	}

	// hired is terminal
	_, err := f.candidates.Advance(ctx, current.ID())
	require.ErrorIs(t, err, candidate.ErrIllegalTransition)
	assert.NotEmpty(t, f.notifier.Active())
}

func TestCandidateService_IllegalMoveLeavesStoredStageUntouched(t *testing.T) {
	t.Parallel()
	f := setupRecruitment(t)
	ctx := context.Background()

	posting := f.openPosting(t, ctx)
	applied := f.applicant(t, ctx, posting.ID().String())

	_, err := f.candidates.MoveTo(ctx, applied.ID(), candidate.StageOffer)
	require.ErrorIs(t, err, candidate.ErrIllegalTransition)

	stored, err := f.candidates.GetByID(ctx, applied.ID())
	require.NoError(t, err)
	assert.Equal(t, candidate.StageApplied, stored.Stage())
}

func TestCandidateService_RejectIsAllowedFromAnyActiveStage(t *testing.T) {
	t.Parallel()
	f := setupRecruitment(t)
	ctx := context.Background()

	posting := f.openPosting(t, ctx)
	applied := f.applicant(t, ctx, posting.ID().String())

	moved, err := f.candidates.MoveTo(ctx, applied.ID(), candidate.StageScreening)
	require.NoError(t, err)

	rejected, err := f.candidates.Reject(ctx, moved.ID())
	require.NoError(t, err)
	assert.Equal(t, candidate.StageRejected, rejected.Stage())

	_, err = f.candidates.MoveTo(ctx, rejected.ID(), candidate.StageScreening)
	require.ErrorIs(t, err, candidate.ErrIllegalTransition)
}

func TestInterviewService_ScheduleRequiresKnownCandidate(t *testing.T) {
	t.Parallel()
	f := setupRecruitment(t)
	ctx := context.Background()

	_, err := f.interviews.Schedule(ctx, &dtos.InterviewDTO{
		CandidateID: "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
		Interviewer: "Margaret Hamilton",
		Date:        "2026-09-10",
		StartTime:   "09:00",
		EndTime:     "10:00",
	})
	require.ErrorIs(t, err, candidate.ErrCandidateNotFound)
}

func TestInterviewService_RescheduleKeepsIdentityAndRecomputesDuration(t *testing.T) {
	t.Parallel()
	f := setupRecruitment(t)
	ctx := context.Background()

	posting := f.openPosting(t, ctx)
	applied := f.applicant(t, ctx, posting.ID().String())

	booked, err := f.interviews.Schedule(ctx, &dtos.InterviewDTO{
		CandidateID: applied.ID().String(),
		Interviewer: "Margaret Hamilton",
		Date:        "2026-09-10",
		StartTime:   "09:00",
		EndTime:     "10:00",
	})
	require.NoError(t, err)
	require.Equal(t, 60, booked.DurationMinutes())
	require.Equal(t, interview.StatusScheduled, booked.Status())

	newDate := time.Date(2026, time.September, 14, 0, 0, 0, 0, time.UTC)
	moved, err := f.interviews.Reschedule(ctx, booked.ID(), newDate, "14:00", "14:45")
	require.NoError(t, err)
	assert.Equal(t, booked.ID(), moved.ID())
	assert.Equal(t, 45, moved.DurationMinutes())
	assert.Equal(t, interview.StatusRescheduled, moved.Status())

	_, err = f.interviews.Reschedule(ctx, booked.ID(), newDate, "15:00", "14:00")
	require.ErrorIs(t, err, interview.ErrBadTimeRange)
}
