package gateway_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/orgboard-io/orgboard/modules/org/domain"
	"github.com/orgboard-io/orgboard/modules/org/gateway"
)

func TestCreateAssignsID(t *testing.T) {
	g := gateway.NewMemoryGateway()
	ctx := context.Background()

	created, err := gateway.Create(ctx, g, gateway.Departments, domain.Department{UID: "001", Name: "Operations"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "Operations", created.Name)

	listed, err := gateway.List[domain.Department](ctx, g, gateway.Departments)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, created, listed[0])
}

func TestWireFormIsSnakeCase(t *testing.T) {
	g := gateway.NewMemoryGateway()
	ctx := context.Background()

	_, err := gateway.Create(ctx, g, gateway.StaffMembers, domain.Staff{
		UID: "001", FirstName: "Amal", LastName: "Hassan",
		DepartmentID: "d1", PrimaryFunctionID: "f1",
	})
	require.NoError(t, err)

	recs, err := g.ListAll(ctx, gateway.StaffMembers)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.Equal(t, "Amal", recs[0]["first_name"])
	require.Equal(t, "d1", recs[0]["department_id"])
	require.NotContains(t, recs[0], "firstName")
}

func TestRoundTripPreservesEntity(t *testing.T) {
	g := gateway.NewMemoryGateway()
	ctx := context.Background()

	lead := "s9"
	in := domain.CrossFunctionalTeam{
		UID: "003", Name: "Launch", Purpose: "Q3 rollout",
		ReportingDepartmentID: "d1", LeadID: &lead,
	}
	created, err := gateway.Create(ctx, g, gateway.Teams, in)
	require.NoError(t, err)

	out, err := gateway.List[domain.CrossFunctionalTeam](ctx, g, gateway.Teams)
	require.NoError(t, err)
	require.Len(t, out, 1)

	in.ID = created.ID
	require.Equal(t, in, out[0])
}

func TestUpdateUnknownID(t *testing.T) {
	g := gateway.NewMemoryGateway()
	_, err := gateway.Update(context.Background(), g, gateway.Grades, "missing", domain.Grade{Name: "G1"})
	require.ErrorIs(t, err, gateway.ErrNotFound)
}

func TestDeleteCascadesOwnedRows(t *testing.T) {
	g := gateway.NewMemoryGateway()
	ctx := context.Background()

	team, err := gateway.Create(ctx, g, gateway.Teams, domain.CrossFunctionalTeam{Name: "Audit", ReportingDepartmentID: "d1"})
	require.NoError(t, err)
	_, err = gateway.Create(ctx, g, gateway.TeamMembers, domain.TeamMember{TeamID: team.ID, StaffID: "s1"})
	require.NoError(t, err)

	require.NoError(t, g.DeleteOne(ctx, gateway.Teams, team.ID))

	members, err := gateway.List[domain.TeamMember](ctx, g, gateway.TeamMembers)
	require.NoError(t, err)
	require.Empty(t, members)
}

func TestSingletonLifecycle(t *testing.T) {
	g := gateway.NewMemoryGateway()
	ctx := context.Background()

	_, ok, err := gateway.Singleton[domain.AppSettings](ctx, g, gateway.AppSettings)
	require.NoError(t, err)
	require.False(t, ok)

	stored, err := gateway.Upsert(ctx, g, gateway.AppSettings, domain.AppSettings{
		EmailDomain: "acme.ae", EmailFormat: domain.EmailFirstnameL, MaxManagerGradeLevel: 1,
	})
	require.NoError(t, err)
	require.NotEmpty(t, stored.ID)

	stored.EmailDomain = "acme.com"
	again, err := gateway.Upsert(ctx, g, gateway.AppSettings, stored)
	require.NoError(t, err)
	require.Equal(t, stored.ID, again.ID)
	require.Equal(t, "acme.com", again.EmailDomain)
}

func TestUnknownCollectionRejected(t *testing.T) {
	g := gateway.NewMemoryGateway()
	_, err := g.ListAll(context.Background(), "no_such_table")
	require.ErrorIs(t, err, gateway.ErrUnknownCollection)
}

func TestCallCountingAndInjectedFailure(t *testing.T) {
	g := gateway.NewMemoryGateway()
	ctx := context.Background()

	boom := errors.New("connection reset")
	g.FailNext("CreateOne", gateway.Grades, boom)

	_, err := gateway.Create(ctx, g, gateway.Grades, domain.Grade{Name: "G1"})
	require.ErrorIs(t, err, boom)
	require.Equal(t, 1, g.Calls("CreateOne", gateway.Grades))

	g.FailNext("CreateOne", gateway.Grades, nil)
	_, err = gateway.Create(ctx, g, gateway.Grades, domain.Grade{Name: "G1"})
	require.NoError(t, err)
	require.Equal(t, 2, g.Calls("CreateOne", gateway.Grades))
	require.Equal(t, 2, g.TotalCalls())
}
