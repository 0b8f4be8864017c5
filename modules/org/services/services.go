// Package services holds the mutation orchestrators. Every write follows the
// same choreography: check the session, take the global save lock, run the
// business-rule guards against the current snapshot, perform the remote
// write, dispatch the matching transition, and publish a notification. The
// snapshot is only ever touched after the remote store has confirmed the
// write.
package services

import (
	"sync/atomic"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/orgboard-io/orgboard/modules/org/domain"
	"github.com/orgboard-io/orgboard/modules/org/gateway"
	"github.com/orgboard-io/orgboard/modules/org/state"
	"github.com/orgboard-io/orgboard/pkg/eventbus"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrSaveInProgress   = errors.New("a save is already in progress")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
)

// Notification is published on the event bus after every completed or failed
// mutation; the UI layer renders it as a toast.
type Notification struct {
	Message string
	Kind    NotificationKind
}

// SessionFunc reports the current session. Mutations refuse to run for an
// unauthenticated session.
type SessionFunc func() domain.Session

// core is shared by all services so the save lock is global: at most one
// mutation runs at a time across the whole application.
type core struct {
	store     *state.Store
	gw        gateway.Gateway
	publisher eventbus.EventBus
	log       *logrus.Logger
	session   SessionFunc
	saving    atomic.Bool
}

// Services bundles every orchestrator over one shared core.
type Services struct {
	Departments      *DepartmentService
	Functions        *FunctionService
	Staff            *StaffService
	Responsibilities *ResponsibilityService
	Teams            *TeamService
	Workflows        *WorkflowService
	Grades           *GradeService
	ComplianceTags   *ComplianceTagService
	Numbers          *NumberService
	Users            *UserService
	Settings         *SettingsService
}

func New(store *state.Store, gw gateway.Gateway, publisher eventbus.EventBus, log *logrus.Logger, session SessionFunc) *Services {
	c := &core{store: store, gw: gw, publisher: publisher, log: log, session: session}
	return &Services{
		Departments:      &DepartmentService{c: c},
		Functions:        &FunctionService{c: c},
		Staff:            &StaffService{c: c},
		Responsibilities: &ResponsibilityService{c: c},
		Teams:            &TeamService{c: c},
		Workflows:        &WorkflowService{c: c},
		Grades:           &GradeService{c: c},
		ComplianceTags:   &ComplianceTagService{c: c},
		Numbers:          &NumberService{c: c},
		Users:            &UserService{c: c},
		Settings:         &SettingsService{c: c},
	}
}

func (c *core) success(msg string) {
	c.publisher.Publish(Notification{Message: msg, Kind: NotifySuccess})
}

func (c *core) fail(msg string) {
	c.publisher.Publish(Notification{Message: msg, Kind: NotifyError})
}

// mutate wraps one write operation. It refuses unauthenticated sessions and
// overlapping saves, recovers panics into plain errors, and publishes an
// error notification for every failure. Success notifications are published
// by the operation itself, which knows what happened.
func (c *core) mutate(op string, fn func() error) (err error) {
	if !c.session().Authenticated {
		return ErrNotAuthenticated
	}
	if !c.saving.CompareAndSwap(false, true) {
		return ErrSaveInProgress
	}
	defer c.saving.Store(false)
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("%v", r)
		}
		if err != nil {
			c.log.WithError(err).Error(op)
			c.fail(err.Error())
		}
	}()
	return fn()
}

func validateDTO(dto any) error {
	if err := validate.Struct(dto); err != nil {
		return errors.Wrap(err, "invalid input")
	}
	return nil
}
