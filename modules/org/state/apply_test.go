package state_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orgboard-io/orgboard/modules/org/domain"
	"github.com/orgboard-io/orgboard/modules/org/state"
)

func strptr(s string) *string { return &s }

func baseSnapshot() state.Snapshot {
	return state.Snapshot{
		AppSettings:    domain.DefaultAppSettings(),
		CompanyProfile: domain.DefaultCompanyProfile(),
		Departments: []domain.Department{
			{ID: "d1", UID: "001", Name: "Operations"},
			{ID: "d2", UID: "002", Name: "Finance", ManagerID: strptr("s2")},
		},
		Staff: []domain.Staff{
			{ID: "s1", UID: "001", FirstName: "Amal", LastName: "Hassan", DepartmentID: "d1", PrimaryFunctionID: "f1"},
			{ID: "s2", UID: "002", FirstName: "Noor", LastName: "Khalid", DepartmentID: "d2", PrimaryFunctionID: "f2"},
		},
		CrossFunctionalTeams: []domain.CrossFunctionalTeam{
			{ID: "t1", UID: "001", Name: "Audit", ReportingDepartmentID: "d2"},
			{ID: "t2", UID: "002", Name: "Launch", ReportingDepartmentID: "d1"},
		},
		TeamMembers: []domain.TeamMember{
			{ID: "m1", TeamID: "t1", StaffID: "s1"},
			{ID: "m2", TeamID: "t1", StaffID: "s2"},
			{ID: "m3", TeamID: "t2", StaffID: "s1"},
		},
		Workflows: []domain.Workflow{
			{ID: "w1", UID: "001", Name: "Onboarding", OwnerDepartmentID: "d1", Status: domain.WorkflowDraft},
		},
		WorkflowSteps: []domain.WorkflowStep{
			{ID: "ws1", WorkflowID: "w1", ResponsibilityID: "r1", StepOrder: 1},
			{ID: "ws2", WorkflowID: "w1", ResponsibilityID: "r2", StepOrder: 2},
		},
	}
}

func TestAddDepartment(t *testing.T) {
	before := baseSnapshot()
	after := state.Apply(before, state.AddDepartment{Department: domain.Department{ID: "d3", Name: "Legal"}})

	require.Len(t, after.Departments, 3)
	require.Len(t, before.Departments, 2, "input snapshot must not change")
	require.Nil(t, after.Departments[2].ManagerID)
}

func TestUpdateDepartmentUnknownIDIsNoop(t *testing.T) {
	before := baseSnapshot()
	after := state.Apply(before, state.UpdateDepartment{Department: domain.Department{ID: "nope", Name: "X"}})
	require.Equal(t, before, after)
}

func TestAssignManagerFieldLevel(t *testing.T) {
	before := baseSnapshot()
	after := state.Apply(before, state.AssignManager{DepartmentID: "d1", StaffID: strptr("s1")})

	require.Equal(t, "s1", *after.Departments[0].ManagerID)
	require.Equal(t, "Operations", after.Departments[0].Name)
	require.Nil(t, before.Departments[0].ManagerID)

	cleared := state.Apply(after, state.AssignManager{DepartmentID: "d1", StaffID: nil})
	require.Nil(t, cleared.Departments[0].ManagerID)
}

func TestReplaceTeamSwapsMembersAtomically(t *testing.T) {
	before := baseSnapshot()
	after := state.Apply(before, state.ReplaceTeam{
		Team:    domain.CrossFunctionalTeam{ID: "t1", UID: "001", Name: "Audit v2", ReportingDepartmentID: "d2"},
		Members: []domain.TeamMember{{ID: "m9", TeamID: "t1", StaffID: "s2"}},
	})

	require.Equal(t, "Audit v2", after.CrossFunctionalTeams[0].Name)
	require.Equal(t, []domain.TeamMember{
		{ID: "m9", TeamID: "t1", StaffID: "s2"},
	}, after.TeamMembersOf("t1"), "old members replaced, no duplicates")
	require.Equal(t, []domain.TeamMember{
		{ID: "m3", TeamID: "t2", StaffID: "s1"},
	}, after.TeamMembersOf("t2"), "other teams untouched")
}

func TestReplaceTeamWithEmptyMembers(t *testing.T) {
	after := state.Apply(baseSnapshot(), state.ReplaceTeam{
		Team: domain.CrossFunctionalTeam{ID: "t1", UID: "001", Name: "Audit", ReportingDepartmentID: "d2"},
	})
	require.Empty(t, after.TeamMembersOf("t1"))
	require.Len(t, after.TeamMembersOf("t2"), 1)
}

func TestDeleteTeamCascadesOnlyItsMembers(t *testing.T) {
	after := state.Apply(baseSnapshot(), state.DeleteTeam{ID: "t1"})

	require.Len(t, after.CrossFunctionalTeams, 1)
	require.Empty(t, after.TeamMembersOf("t1"))
	require.Len(t, after.TeamMembersOf("t2"), 1)
}

func TestReplaceWorkflowSteps(t *testing.T) {
	after := state.Apply(baseSnapshot(), state.ReplaceWorkflow{
		Workflow: domain.Workflow{ID: "w1", UID: "001", Name: "Onboarding", OwnerDepartmentID: "d1", Status: domain.WorkflowActive},
		Steps: []domain.WorkflowStep{
			{ID: "ws9", WorkflowID: "w1", ResponsibilityID: "r3", StepOrder: 1},
			{ID: "ws10", WorkflowID: "w1", ResponsibilityID: "r1", StepOrder: 2},
		},
	})

	steps := after.WorkflowStepsOf("w1")
	require.Len(t, steps, 2)
	require.Equal(t, "r3", steps[0].ResponsibilityID)
	require.Equal(t, 1, steps[0].StepOrder)
	require.Equal(t, "r1", steps[1].ResponsibilityID)
	require.Equal(t, 2, steps[1].StepOrder)
	require.Equal(t, domain.WorkflowActive, after.Workflows[0].Status)
}

func TestDeleteWorkflowCascadesSteps(t *testing.T) {
	after := state.Apply(baseSnapshot(), state.DeleteWorkflow{ID: "w1"})
	require.Empty(t, after.Workflows)
	require.Empty(t, after.WorkflowSteps)
}

func TestDeleteCompanyNumberCascadesAllocations(t *testing.T) {
	before := baseSnapshot()
	before.CompanyNumbers = []domain.CompanyNumber{{ID: "n1", PhoneNumber: "+97150001"}, {ID: "n2", PhoneNumber: "+97150002"}}
	before.CompanyNumberAllocations = []domain.CompanyNumberAllocation{
		{ID: "a1", CompanyNumberID: "n1", AssignToType: domain.AssignToStaff, StaffID: strptr("s1")},
		{ID: "a2", CompanyNumberID: "n2", AssignToType: domain.AssignToDepartment, DepartmentID: strptr("d1")},
	}

	after := state.Apply(before, state.DeleteCompanyNumber{ID: "n1"})
	require.Len(t, after.CompanyNumbers, 1)
	require.Len(t, after.CompanyNumberAllocations, 1)
	require.Equal(t, "a2", after.CompanyNumberAllocations[0].ID)
}

func TestMergeSingletons(t *testing.T) {
	before := baseSnapshot()
	after := state.Apply(before, state.MergeAppSettings{Settings: domain.AppSettings{
		ID: "st1", EmailDomain: "acme.ae", EmailFormat: domain.EmailFLastname, MaxManagerGradeLevel: 2,
	}})
	require.Equal(t, "acme.ae", after.AppSettings.EmailDomain)
	require.Equal(t, "company.com", before.AppSettings.EmailDomain)

	after = state.Apply(after, state.MergeCompanyProfile{Profile: domain.CompanyProfile{ID: "cp1", Name: "Acme"}})
	require.Equal(t, "Acme", after.CompanyProfile.Name)
}

func TestSetUserRole(t *testing.T) {
	before := baseSnapshot()
	before.Users = []domain.User{{ID: "u1", Username: "amal", Role: domain.RoleStaff}}

	after := state.Apply(before, state.SetUserRole{UserID: "u1", Role: domain.RoleAdmin})
	require.Equal(t, domain.RoleAdmin, after.Users[0].Role)
	require.Equal(t, domain.RoleStaff, before.Users[0].Role)
}

func TestTransferResponsibility(t *testing.T) {
	before := baseSnapshot()
	before.Responsibilities = []domain.Responsibility{{ID: "r1", Name: "Payroll", FunctionID: "f1"}}

	after := state.Apply(before, state.TransferResponsibility{ID: "r1", NewFunctionID: "f2"})
	require.Equal(t, "f2", after.Responsibilities[0].FunctionID)
	require.Equal(t, "Payroll", after.Responsibilities[0].Name)
}
