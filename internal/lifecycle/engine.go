package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/job-portal/internal/store"
	"github.com/jonathan/job-portal/internal/types"
)

// Notifier is the dispatcher collaborator invoked once per committed
// transition.
type Notifier interface {
	Notify(ctx context.Context, app *types.Application, job *types.Job, newStatus types.Status) error
}

// NotificationHook observes the outcome of each notification attempt. It
// replaces the original UI toast side channel with an explicit callback.
type NotificationHook func(app *types.Application, newStatus types.Status, err error)

// TransitionResult reports a committed status change. Notified is false
// when the status was recorded but the notification could not be delivered;
// that failure is non-fatal by contract.
type TransitionResult struct {
	Application       *types.Application `json:"application"`
	PreviousStatus    types.Status       `json:"previous_status"`
	Notified          bool               `json:"notified"`
	NotificationError string             `json:"notification_error,omitempty"`
}

// Engine holds the authoritative status of each application and validates
// and applies transitions. The transition graph is unrestricted: any status
// may move to any other, so hiring managers can correct mistakes. Assumed
// per current product behavior; revisit if transition guards are wanted.
type Engine struct {
	store    store.Store
	notifier Notifier
	logger   *zap.Logger

	// OnNotified, when set, is called after every notification attempt.
	OnNotified NotificationHook

	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

// NewEngine creates a lifecycle engine.
func NewEngine(st store.Store, notifier Notifier, logger *zap.Logger) *Engine {
	return &Engine{
		store:    st,
		notifier: notifier,
		logger:   logger,
		locks:    make(map[uuid.UUID]*sync.Mutex),
	}
}

// Transition validates newStatus, atomically records it for the given
// application, and dispatches exactly one notification for the committed
// change. A notification failure does not fail the transition; it is logged
// as a warning and reported in the result. Transitions on the same
// application are serialized.
func (e *Engine) Transition(ctx context.Context, appID uuid.UUID, rawStatus string) (*TransitionResult, error) {
	newStatus, ok := types.ParseStatus(rawStatus)
	if !ok {
		return nil, &ErrInvalidStatus{Status: rawStatus}
	}

	lock := e.lockFor(appID)
	lock.Lock()
	defer lock.Unlock()

	app, err := e.store.GetApplication(ctx, appID)
	if err != nil {
		return nil, err
	}
	job, err := e.store.GetJob(ctx, app.JobID)
	if err != nil {
		return nil, err
	}

	previous := app.Status
	updated, err := e.store.UpdateStatus(ctx, appID, newStatus)
	if err != nil {
		if errors.Is(err, store.ErrApplicationNotFound) {
			return nil, err
		}
		return nil, &ErrPersistenceFailure{Err: err}
	}

	result := &TransitionResult{
		Application:    updated,
		PreviousStatus: previous,
		Notified:       true,
	}

	// The status change is committed at this point; the notification is a
	// best-effort side channel.
	if err := e.notify(ctx, updated, job, newStatus); err != nil {
		result.Notified = false
		result.NotificationError = err.Error()
	}

	return result, nil
}

// Apply creates an application in pending status and sends the
// acknowledgement notification best-effort.
func (e *Engine) Apply(ctx context.Context, jobID uuid.UUID, req *types.ApplyRequest) (*types.Application, error) {
	job, err := e.store.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	app := &types.Application{
		ID:             uuid.New(),
		JobID:          jobID,
		CandidateID:    req.CandidateID,
		CandidateName:  req.CandidateName,
		CandidateEmail: req.CandidateEmail,
		CoverLetter:    req.CoverLetter,
		Experience:     req.Experience,
		Portfolio:      req.Portfolio,
		Status:         types.StatusPending,
		AppliedAt:      time.Now().UTC(),
	}
	if err := e.store.CreateApplication(ctx, app); err != nil {
		if errors.Is(err, store.ErrJobNotFound) {
			return nil, err
		}
		return nil, &ErrPersistenceFailure{Err: err}
	}

	_ = e.notify(ctx, app, job, types.StatusPending)

	return app, nil
}

// notify dispatches one notification and reports the attempt to the hook.
func (e *Engine) notify(ctx context.Context, app *types.Application, job *types.Job, newStatus types.Status) error {
	err := e.notifier.Notify(ctx, app, job, newStatus)
	if err != nil {
		e.logger.Warn("notification failed after committed status change",
			zap.String("application_id", app.ID.String()),
			zap.String("status", newStatus.String()),
			zap.Error(err),
		)
	}
	if e.OnNotified != nil {
		e.OnNotified(app, newStatus, err)
	}
	if err != nil {
		return fmt.Errorf("notification failed: %w", err)
	}
	return nil
}

// lockFor returns the per-application mutex, creating it on first use.
func (e *Engine) lockFor(appID uuid.UUID) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	lock, ok := e.locks[appID]
	if !ok {
		lock = &sync.Mutex{}
		e.locks[appID] = lock
	}
	return lock
}
