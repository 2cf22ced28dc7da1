package crud

import (
	"context"
	"sync"
	"time"

	"github.com/10021987z/dzilo-sub003/pkg/serrors"
)

// State of one form-open submission lifecycle.
type State string

const (
	StateIdle       State = "idle"
	StateValidating State = "validating"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
	StateClosed     State = "closed"
)

// PersistFunc stores a fully validated draft and returns the finalized
// entity, or a failure reason. It is called at most once per accepted submit.
type PersistFunc[T any] func(ctx context.Context, d Draft) (T, error)

// SubmitResult reports the outcome of one Submit call.
type SubmitResult[T any] struct {
	State  State
	Errors serrors.ValidationErrors
	Entity T
	Err    error
	// Ignored is true when the call was a re-entrant no-op.
	Ignored bool
}

// SubmissionConfig wires a controller's collaborators.
type SubmissionConfig[T any] struct {
	Form      *FormModel
	Validator *Validator
	Persist   PersistFunc[T]
	// OnSuccess receives the finalized entity before the close delay starts.
	OnSuccess func(T)
	// OnClose fires when the lifecycle reaches Closed and the draft is gone.
	OnClose func()
	// CloseDelay is the user-visible pause between success and close.
	CloseDelay time.Duration
}

// SubmissionController drives one create/edit lifecycle:
// Idle -> Validating -> (Invalid -> Idle | Valid -> Submitting)
// -> (Succeeded -> Closed | Failed -> Idle).
// A second Submit while Submitting or Succeeded is a no-op, so double-clicks
// can never create a duplicate entity. A failed persist preserves the draft
// and the failure reason so the user can correct and retry.
type SubmissionController[T any] struct {
	mu sync.Mutex

	form       *FormModel
	validator  *Validator
	persist    PersistFunc[T]
	onSuccess  func(T)
	onClose    func()
	closeDelay time.Duration

	state      State
	errors     serrors.ValidationErrors
	failure    error
	entity     T
	hasEntity  bool
	closeTimer *time.Timer
	disposed   bool
}

func NewSubmissionController[T any](cfg SubmissionConfig[T]) *SubmissionController[T] {
	return &SubmissionController[T]{
		form:       cfg.Form,
		validator:  cfg.Validator,
		persist:    cfg.Persist,
		onSuccess:  cfg.OnSuccess,
		onClose:    cfg.OnClose,
		closeDelay: cfg.CloseDelay,
		state:      StateIdle,
	}
}

// Submit validates the draft and, when clean, persists it exactly once.
func (c *SubmissionController[T]) Submit(ctx context.Context) SubmitResult[T] {
	c.mu.Lock()
	if c.disposed || (c.state != StateIdle && c.state != StateFailed) {
		state := c.state
		c.mu.Unlock()
		return SubmitResult[T]{State: state, Ignored: true}
	}

	c.state = StateValidating
	c.failure = nil
	draft := c.form.Draft()
	errs := c.validator.Validate(draft)
	if !errs.Empty() {
		c.state = StateIdle
		c.errors = errs
		c.mu.Unlock()
		return SubmitResult[T]{State: StateIdle, Errors: errs}
	}

	c.errors = nil
	c.state = StateSubmitting
	c.mu.Unlock()

	entity, err := c.persist(ctx, draft)

	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return SubmitResult[T]{State: StateClosed, Ignored: true}
	}
	if err != nil {
		// The draft survives a rejected submission untouched.
		c.state = StateFailed
		c.failure = err
		c.mu.Unlock()
		return SubmitResult[T]{State: StateFailed, Err: err}
	}

	c.state = StateSucceeded
	c.entity = entity
	c.hasEntity = true
	onSuccess := c.onSuccess
	c.scheduleCloseLocked()
	c.mu.Unlock()

	if onSuccess != nil {
		onSuccess(entity)
	}
	return SubmitResult[T]{State: StateSucceeded, Entity: entity}
}

func (c *SubmissionController[T]) scheduleCloseLocked() {
	if c.closeDelay <= 0 {
		c.closeLocked()
		return
	}
	c.closeTimer = time.AfterFunc(c.closeDelay, func() {
		c.mu.Lock()
		if c.disposed || c.state != StateSucceeded {
			c.mu.Unlock()
			return
		}
		c.closeLocked()
		onClose := c.onClose
		c.mu.Unlock()
		if onClose != nil {
			onClose()
		}
	})
}

func (c *SubmissionController[T]) closeLocked() {
	c.state = StateClosed
	c.form.Reset(nil)
}

// Cancel abandons the lifecycle: the draft is discarded without persisting.
func (c *SubmissionController[T]) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed || c.state == StateClosed || c.state == StateSubmitting {
		return
	}
	c.stopTimerLocked()
	c.closeLocked()
}

// Dispose cancels any pending close timer so no state mutates after the
// owning form is gone.
func (c *SubmissionController[T]) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.disposed = true
	c.stopTimerLocked()
}

func (c *SubmissionController[T]) stopTimerLocked() {
	if c.closeTimer != nil {
		c.closeTimer.Stop()
		c.closeTimer = nil
	}
}

// Form exposes the draft the controller submits.
func (c *SubmissionController[T]) Form() *FormModel {
	return c.form
}

func (c *SubmissionController[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Errors returns the violations surfaced by the last rejected submit.
func (c *SubmissionController[T]) Errors() serrors.ValidationErrors {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errors
}

// Failure returns the reason of the last failed persist, if any.
func (c *SubmissionController[T]) Failure() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.failure
}

// Entity returns the finalized entity once the lifecycle has succeeded.
func (c *SubmissionController[T]) Entity() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entity, c.hasEntity
}
