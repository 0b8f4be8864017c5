// Package gateway is the persistence boundary. Everything above it works
// with camelCase in-memory records; the gateway speaks the snake_case wire
// convention of the backing store and owns the translation in both
// directions.
package gateway

import (
	"context"

	"github.com/pkg/errors"
)

// Collection names as they exist in the backing store.
const (
	Departments       = "department"
	Functions         = "function"
	Responsibilities  = "responsibility"
	Grades            = "grade"
	StaffMembers      = "staff"
	Teams             = "cross_functional_team"
	TeamMembers       = "team_member"
	Workflows         = "workflow"
	WorkflowSteps     = "workflow_step"
	ComplianceTags    = "compliance_tag"
	CompanyNumbers    = "company_number"
	NumberAllocations = "company_number_allocation"
	Users             = "app_user"
	CompanyProfile    = "company_profile"
	AppSettings       = "app_settings"
)

// Collections lists every multi-row collection, in initial-load order.
var Collections = []string{
	Departments,
	Functions,
	Responsibilities,
	Grades,
	StaffMembers,
	Teams,
	TeamMembers,
	Workflows,
	WorkflowSteps,
	ComplianceTags,
	CompanyNumbers,
	NumberAllocations,
	Users,
}

// Singletons lists the collections holding exactly one logical record.
var Singletons = []string{CompanyProfile, AppSettings}

var (
	ErrNotFound          = errors.New("record not found")
	ErrUnknownCollection = errors.New("unknown collection")
)

// Record is one row in wire form: snake_case keys, values as produced by
// JSON decoding. The id key is always "id".
type Record = map[string]any

// Gateway is the remote-store contract. Every call is a single network
// round trip; implementations perform no caching and no retries.
type Gateway interface {
	// ListAll returns every record of a collection.
	ListAll(ctx context.Context, collection string) ([]Record, error)

	// CreateOne inserts a record (without id) and returns the stored
	// record including its assigned id.
	CreateOne(ctx context.Context, collection string, rec Record) (Record, error)

	// CreateMany inserts records one by one and returns the stored
	// records. It fails on the first insert error.
	CreateMany(ctx context.Context, collection string, recs []Record) ([]Record, error)

	// UpdateOne overwrites the fields present in patch on the record with
	// the given id and returns the updated record. ErrNotFound if the id
	// does not exist.
	UpdateOne(ctx context.Context, collection string, id string, patch Record) (Record, error)

	// DeleteOne removes the record with the given id. ErrNotFound if the
	// id does not exist.
	DeleteOne(ctx context.Context, collection string, id string) error

	// DeleteWhere removes every record whose field equals value. Removing
	// zero records is not an error.
	DeleteWhere(ctx context.Context, collection string, field string, value any) error

	// GetSingleton returns the single record of a singleton collection,
	// or nil with no error when none exists yet.
	GetSingleton(ctx context.Context, collection string) (Record, error)

	// UpsertSingleton inserts or overwrites the singleton record and
	// returns the stored record.
	UpsertSingleton(ctx context.Context, collection string, rec Record) (Record, error)
}

var knownCollections = func() map[string]struct{} {
	m := make(map[string]struct{}, len(Collections)+len(Singletons))
	for _, c := range Collections {
		m[c] = struct{}{}
	}
	for _, c := range Singletons {
		m[c] = struct{}{}
	}
	return m
}()

func checkCollection(name string) error {
	if _, ok := knownCollections[name]; !ok {
		return errors.Wrap(ErrUnknownCollection, name)
	}
	return nil
}
