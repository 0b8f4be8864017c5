package services

import (
	"context"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/orgboard-io/orgboard/modules/org/domain"
	"github.com/orgboard-io/orgboard/modules/org/gateway"
	"github.com/orgboard-io/orgboard/modules/org/state"
)

// LoadStatus reports where the initial load stands so the rendering layer
// can show a spinner, an error screen with a retry button, or the data.
type LoadStatus string

const (
	LoadIdle    LoadStatus = "idle"
	LoadRunning LoadStatus = "loading"
	LoadFailed  LoadStatus = "failed"
	LoadReady   LoadStatus = "ready"
)

// LoadService performs the initial load: every collection and both
// singletons are fetched in parallel, and the snapshot is only reset when
// every fetch succeeded. On any failure the whole load is reported as one
// aggregated error and nothing is applied; Load can be called again to retry
// the entire run.
type LoadService struct {
	store *state.Store
	gw    gateway.Gateway
	log   *logrus.Logger

	mu     sync.Mutex
	status LoadStatus
}

func NewLoadService(store *state.Store, gw gateway.Gateway, log *logrus.Logger) *LoadService {
	return &LoadService{store: store, gw: gw, log: log, status: LoadIdle}
}

func (l *LoadService) Status() LoadStatus {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.status
}

func (l *LoadService) setStatus(s LoadStatus) {
	l.mu.Lock()
	l.status = s
	l.mu.Unlock()
}

// Load fetches everything and resets the store. A missing singleton is not
// an error; the defaults fill in until the first save creates the record.
func (l *LoadService) Load(ctx context.Context) error {
	l.setStatus(LoadRunning)

	snap := state.Snapshot{
		CompanyProfile: domain.DefaultCompanyProfile(),
		AppSettings:    domain.DefaultAppSettings(),
	}

	type loadFetch struct {
		name string
		fn   func() error
	}
	fetches := []loadFetch{
		{"departments", func() error {
			rows, err := gateway.List[domain.Department](ctx, l.gw, gateway.Departments)
			snap.Departments = rows
			return err
		}},
		{"functions", func() error {
			rows, err := gateway.List[domain.OrgFunction](ctx, l.gw, gateway.Functions)
			snap.Functions = rows
			return err
		}},
		{"responsibilities", func() error {
			rows, err := gateway.List[domain.Responsibility](ctx, l.gw, gateway.Responsibilities)
			snap.Responsibilities = rows
			return err
		}},
		{"grades", func() error {
			rows, err := gateway.List[domain.Grade](ctx, l.gw, gateway.Grades)
			snap.Grades = rows
			return err
		}},
		{"staff", func() error {
			rows, err := gateway.List[domain.Staff](ctx, l.gw, gateway.StaffMembers)
			snap.Staff = rows
			return err
		}},
		{"teams", func() error {
			rows, err := gateway.List[domain.CrossFunctionalTeam](ctx, l.gw, gateway.Teams)
			snap.CrossFunctionalTeams = rows
			return err
		}},
		{"team members", func() error {
			rows, err := gateway.List[domain.TeamMember](ctx, l.gw, gateway.TeamMembers)
			snap.TeamMembers = rows
			return err
		}},
		{"workflows", func() error {
			rows, err := gateway.List[domain.Workflow](ctx, l.gw, gateway.Workflows)
			snap.Workflows = rows
			return err
		}},
		{"workflow steps", func() error {
			rows, err := gateway.List[domain.WorkflowStep](ctx, l.gw, gateway.WorkflowSteps)
			snap.WorkflowSteps = rows
			return err
		}},
		{"compliance tags", func() error {
			rows, err := gateway.List[domain.ComplianceTag](ctx, l.gw, gateway.ComplianceTags)
			snap.ComplianceTags = rows
			return err
		}},
		{"company numbers", func() error {
			rows, err := gateway.List[domain.CompanyNumber](ctx, l.gw, gateway.CompanyNumbers)
			snap.CompanyNumbers = rows
			return err
		}},
		{"allocations", func() error {
			rows, err := gateway.List[domain.CompanyNumberAllocation](ctx, l.gw, gateway.NumberAllocations)
			snap.CompanyNumberAllocations = rows
			return err
		}},
		{"users", func() error {
			rows, err := gateway.List[domain.User](ctx, l.gw, gateway.Users)
			snap.Users = rows
			return err
		}},
		{"company profile", func() error {
			profile, ok, err := gateway.Singleton[domain.CompanyProfile](ctx, l.gw, gateway.CompanyProfile)
			if err != nil {
				return err
			}
			if ok {
				snap.CompanyProfile = profile
			}
			return nil
		}},
		{"app settings", func() error {
			settings, ok, err := gateway.Singleton[domain.AppSettings](ctx, l.gw, gateway.AppSettings)
			if err != nil {
				return err
			}
			if ok {
				snap.AppSettings = settings
			}
			return nil
		}},
	}

	// One failure slot per fetch so the aggregated message lists
	// collections in registration order regardless of completion order.
	slots := make([]string, len(fetches))
	var wg sync.WaitGroup
	for i, f := range fetches {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := f.fn(); err != nil {
				slots[i] = f.name + ": " + err.Error()
			}
		}()
	}
	wg.Wait()

	var failures []string
	for _, slot := range slots {
		if slot != "" {
			failures = append(failures, slot)
		}
	}
	if len(failures) > 0 {
		err := errors.Errorf("Failed to load: %s", strings.Join(failures, "; "))
		l.log.WithError(err).Error("initial load")
		l.setStatus(LoadFailed)
		return err
	}

	l.store.Reset(snap)
	l.setStatus(LoadReady)
	return nil
}
