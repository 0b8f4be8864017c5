package services_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/orgboard-io/orgboard/modules/org/domain"
	"github.com/orgboard-io/orgboard/modules/org/gateway"
	"github.com/orgboard-io/orgboard/modules/org/services"
	"github.com/orgboard-io/orgboard/modules/org/state"
)

func TestCreateTeamWithMembers(t *testing.T) {
	e := newEnv(t, state.Snapshot{})

	created, err := e.svcs.Teams.Create(context.Background(), services.TeamDTO{
		Name:                  "Audit",
		ReportingDepartmentID: "d1",
		MemberStaffIDs:        []string{"s1", "s2"},
	})
	require.NoError(t, err)

	snap := e.store.Snapshot()
	require.Len(t, snap.CrossFunctionalTeams, 1)
	members := snap.TeamMembersOf(created.ID)
	require.Len(t, members, 2)
	require.NotEmpty(t, members[0].ID, "member rows carry remote ids")
	require.Equal(t, "Team created", e.lastToast(t).Message)
}

func TestCreateTeamParentFailure(t *testing.T) {
	e := newEnv(t, state.Snapshot{})
	e.gw.FailNext("CreateOne", gateway.Teams, errors.New("unreachable"))

	_, err := e.svcs.Teams.Create(context.Background(), services.TeamDTO{
		Name:                  "Audit",
		ReportingDepartmentID: "d1",
		MemberStaffIDs:        []string{"s1"},
	})
	require.Error(t, err)
	require.Empty(t, e.store.Snapshot().CrossFunctionalTeams)
	require.Zero(t, e.gw.Calls("CreateMany", gateway.TeamMembers), "no member insert after parent failure")
}

func TestCreateTeamMemberFailureStillDispatchesTeam(t *testing.T) {
	e := newEnv(t, state.Snapshot{})
	e.gw.FailNext("CreateMany", gateway.TeamMembers, errors.New("constraint violation"))

	created, err := e.svcs.Teams.Create(context.Background(), services.TeamDTO{
		Name:                  "Audit",
		ReportingDepartmentID: "d1",
		MemberStaffIDs:        []string{"s1"},
	})
	require.NoError(t, err, "partial success is not an operation error")

	snap := e.store.Snapshot()
	require.Len(t, snap.CrossFunctionalTeams, 1, "the team exists remotely, so it must exist locally")
	require.Empty(t, snap.TeamMembersOf(created.ID))

	toast := e.lastToast(t)
	require.Equal(t, services.NotifyError, toast.Kind)
	require.Contains(t, toast.Message, "Team created, but failed to add members")
}

func TestUpdateTeamReplacesMembers(t *testing.T) {
	e := newEnv(t, state.Snapshot{
		CrossFunctionalTeams: []domain.CrossFunctionalTeam{{ID: "t1", Name: "Audit", ReportingDepartmentID: "d1"}},
		TeamMembers:          []domain.TeamMember{{ID: "m1", TeamID: "t1", StaffID: "s1"}},
	})
	e.gw.Seed(gateway.Teams, gateway.Record{"id": "t1", "name": "Audit", "reporting_department_id": "d1"})
	e.gw.Seed(gateway.TeamMembers, gateway.Record{"id": "m1", "team_id": "t1", "staff_id": "s1"})

	_, err := e.svcs.Teams.Update(context.Background(), "t1", services.TeamDTO{
		Name:                  "Audit v2",
		ReportingDepartmentID: "d1",
		MemberStaffIDs:        []string{"s2", "s3"},
	})
	require.NoError(t, err)

	snap := e.store.Snapshot()
	require.Equal(t, "Audit v2", snap.CrossFunctionalTeams[0].Name)
	members := snap.TeamMembersOf("t1")
	require.Len(t, members, 2)
	require.Equal(t, "s2", members[0].StaffID)
	require.Equal(t, "s3", members[1].StaffID)
	require.Equal(t, 1, e.gw.Calls("DeleteWhere", gateway.TeamMembers), "old rows purged before insert")
}

func TestUpdateTeamPurgeFailureDispatchesNothing(t *testing.T) {
	e := newEnv(t, state.Snapshot{
		CrossFunctionalTeams: []domain.CrossFunctionalTeam{{ID: "t1", Name: "Audit", ReportingDepartmentID: "d1"}},
		TeamMembers:          []domain.TeamMember{{ID: "m1", TeamID: "t1", StaffID: "s1"}},
	})
	e.gw.Seed(gateway.Teams, gateway.Record{"id": "t1", "name": "Audit", "reporting_department_id": "d1"})
	e.gw.FailNext("DeleteWhere", gateway.TeamMembers, errors.New("timeout"))

	_, err := e.svcs.Teams.Update(context.Background(), "t1", services.TeamDTO{
		Name:                  "Audit v2",
		ReportingDepartmentID: "d1",
		MemberStaffIDs:        []string{"s2"},
	})
	require.NoError(t, err)

	// Local state stays on the previous snapshot: team name and members
	// unchanged even though the remote parent row was already rewritten.
	snap := e.store.Snapshot()
	require.Equal(t, "Audit", snap.CrossFunctionalTeams[0].Name)
	require.Len(t, snap.TeamMembersOf("t1"), 1)
	require.Zero(t, e.gw.Calls("CreateMany", gateway.TeamMembers))
	require.Contains(t, e.lastToast(t).Message, "Team updated, but failed to update members")
}

func TestUpdateTeamInsertFailureDispatchesEmptyMembers(t *testing.T) {
	e := newEnv(t, state.Snapshot{
		CrossFunctionalTeams: []domain.CrossFunctionalTeam{{ID: "t1", Name: "Audit", ReportingDepartmentID: "d1"}},
		TeamMembers:          []domain.TeamMember{{ID: "m1", TeamID: "t1", StaffID: "s1"}},
	})
	e.gw.Seed(gateway.Teams, gateway.Record{"id": "t1", "name": "Audit", "reporting_department_id": "d1"})
	e.gw.FailNext("CreateMany", gateway.TeamMembers, errors.New("constraint violation"))

	_, err := e.svcs.Teams.Update(context.Background(), "t1", services.TeamDTO{
		Name:                  "Audit v2",
		ReportingDepartmentID: "d1",
		MemberStaffIDs:        []string{"s2"},
	})
	require.NoError(t, err)

	// The purge succeeded remotely, so locally the team keeps no members.
	snap := e.store.Snapshot()
	require.Equal(t, "Audit v2", snap.CrossFunctionalTeams[0].Name)
	require.Empty(t, snap.TeamMembersOf("t1"))
	require.Contains(t, e.lastToast(t).Message, "Team updated, but failed to add members")
}

func TestDeleteTeamSingleRemoteCall(t *testing.T) {
	e := newEnv(t, state.Snapshot{
		CrossFunctionalTeams: []domain.CrossFunctionalTeam{{ID: "t1", Name: "Audit", ReportingDepartmentID: "d1"}},
		TeamMembers:          []domain.TeamMember{{ID: "m1", TeamID: "t1", StaffID: "s1"}},
	})
	e.gw.Seed(gateway.Teams, gateway.Record{"id": "t1", "name": "Audit", "reporting_department_id": "d1"})
	e.gw.Seed(gateway.TeamMembers, gateway.Record{"id": "m1", "team_id": "t1", "staff_id": "s1"})

	require.NoError(t, e.svcs.Teams.Delete(context.Background(), "t1"))

	snap := e.store.Snapshot()
	require.Empty(t, snap.CrossFunctionalTeams)
	require.Empty(t, snap.TeamMembers, "local cascade mirrors the remote one")
	require.Equal(t, 1, e.gw.TotalCalls(), "member cleanup rides on the remote cascade")
}
