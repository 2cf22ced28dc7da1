package crud_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/10021987z/dzilo-sub003/pkg/crud"
)

type fakeRecord struct {
	id   uuid.UUID
	name string
}

func (r fakeRecord) ID() uuid.UUID { return r.id }

type slowPersister struct {
	mu      sync.Mutex
	calls   int
	started chan struct{}
	release chan struct{}
}

func (p *slowPersister) persist(_ context.Context, d crud.Draft) (fakeRecord, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()
	if p.started != nil {
		close(p.started)
	}
	if p.release != nil {
		<-p.release
	}
	return fakeRecord{id: uuid.New(), name: d.String("name")}, nil
}

func (p *slowPersister) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func newController(t *testing.T, persist crud.PersistFunc[fakeRecord], list *crud.ListModel[fakeRecord]) *crud.SubmissionController[fakeRecord] {
	t.Helper()
	form := crud.NewFormModel(crud.Draft{"name": "Ada"})
	ctrl := crud.NewSubmissionController(crud.SubmissionConfig[fakeRecord]{
		Form:      form,
		Validator: crud.NewValidator(crud.Required("name", "")),
		Persist:   persist,
		OnSuccess: func(r fakeRecord) {
			if list != nil {
				list.Upsert(r)
			}
		},
		CloseDelay: 10 * time.Millisecond,
	})
	t.Cleanup(ctrl.Dispose)
	return ctrl
}

func TestSubmissionController_ValidationFailureReturnsToIdle(t *testing.T) {
	t.Parallel()
	persister := &slowPersister{}
	form := crud.NewFormModel(crud.Draft{"name": ""})
	ctrl := crud.NewSubmissionController(crud.SubmissionConfig[fakeRecord]{
		Form:      form,
		Validator: crud.NewValidator(crud.Required("name", "")),
		Persist:   persister.persist,
	})

	result := ctrl.Submit(context.Background())

	assert.Equal(t, crud.StateIdle, result.State)
	assert.Contains(t, result.Errors, "name")
	assert.Equal(t, 0, persister.callCount(), "no persist attempt on invalid draft")
	assert.Contains(t, ctrl.Errors(), "name")
}

func TestSubmissionController_SuccessLifecycle(t *testing.T) {
	t.Parallel()
	list := crud.NewListModel[fakeRecord]()
	persister := &slowPersister{}
	ctrl := newController(t, persister.persist, list)

	result := ctrl.Submit(context.Background())

	require.Equal(t, crud.StateSucceeded, result.State)
	assert.Equal(t, "Ada", result.Entity.name)
	assert.Equal(t, 1, list.Len())

	entity, ok := ctrl.Entity()
	require.True(t, ok)
	assert.NotEqual(t, uuid.Nil, entity.ID())

	// The lifecycle closes on its own after the user-visible delay.
	assert.Eventually(t, func() bool {
		return ctrl.State() == crud.StateClosed
	}, time.Second, 5*time.Millisecond)
}

func TestSubmissionController_DoubleSubmitCreatesOneEntity(t *testing.T) {
	t.Parallel()
	list := crud.NewListModel[fakeRecord]()
	persister := &slowPersister{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	ctrl := newController(t, persister.persist, list)

	done := make(chan crud.SubmitResult[fakeRecord], 1)
	go func() {
		done <- ctrl.Submit(context.Background())
	}()
	<-persister.started

	// Second click while the first submission is still in flight.
	second := ctrl.Submit(context.Background())
	assert.True(t, second.Ignored)
	assert.Equal(t, crud.StateSubmitting, second.State)

	close(persister.release)
	first := <-done
	require.Equal(t, crud.StateSucceeded, first.State)

	// And a click after success is also a no-op.
	third := ctrl.Submit(context.Background())
	assert.True(t, third.Ignored)

	assert.Equal(t, 1, persister.callCount())
	assert.Equal(t, 1, list.Len())
}

func TestSubmissionController_FailurePreservesDraft(t *testing.T) {
	t.Parallel()
	boom := errors.New("storage rejected the record")
	attempts := 0
	form := crud.NewFormModel(crud.Draft{"name": "Ada"})
	ctrl := crud.NewSubmissionController(crud.SubmissionConfig[fakeRecord]{
		Form:      form,
		Validator: crud.NewValidator(crud.Required("name", "")),
		Persist: func(_ context.Context, d crud.Draft) (fakeRecord, error) {
			attempts++
			if attempts == 1 {
				return fakeRecord{}, boom
			}
			return fakeRecord{id: uuid.New(), name: d.String("name")}, nil
		},
	})

	result := ctrl.Submit(context.Background())
	require.Equal(t, crud.StateFailed, result.State)
	assert.ErrorIs(t, result.Err, boom)
	assert.ErrorIs(t, ctrl.Failure(), boom)

	// The draft survived; the user can retry without re-entering data.
	assert.Equal(t, "Ada", form.Draft().String("name"))

	retry := ctrl.Submit(context.Background())
	assert.Equal(t, crud.StateSucceeded, retry.State)
	assert.Equal(t, 2, attempts)
}

func TestSubmissionController_CancelDiscardsDraft(t *testing.T) {
	t.Parallel()
	form := crud.NewFormModel(crud.Draft{"name": ""})
	ctrl := crud.NewSubmissionController(crud.SubmissionConfig[fakeRecord]{
		Form:      form,
		Validator: crud.NewValidator(),
		Persist: func(context.Context, crud.Draft) (fakeRecord, error) {
			return fakeRecord{}, nil
		},
	})
	require.NoError(t, form.SetField("name", "half-typed"))

	ctrl.Cancel()

	assert.Equal(t, crud.StateClosed, ctrl.State())
	assert.Equal(t, "", form.Draft().String("name"))

	result := ctrl.Submit(context.Background())
	assert.True(t, result.Ignored, "a closed lifecycle accepts no submits")
}

func TestSubmissionController_DisposeStopsCloseTimer(t *testing.T) {
	t.Parallel()
	persister := &slowPersister{}
	form := crud.NewFormModel(crud.Draft{"name": "Ada"})
	ctrl := crud.NewSubmissionController(crud.SubmissionConfig[fakeRecord]{
		Form:       form,
		Validator:  crud.NewValidator(),
		Persist:    persister.persist,
		CloseDelay: 20 * time.Millisecond,
	})

	result := ctrl.Submit(context.Background())
	require.Equal(t, crud.StateSucceeded, result.State)

	ctrl.Dispose()
	time.Sleep(40 * time.Millisecond)

	// No state mutation after disposal.
	assert.Equal(t, crud.StateSucceeded, ctrl.State())
	assert.Equal(t, "Ada", form.Draft().String("name"))
}
