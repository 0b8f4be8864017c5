// Package state holds the single source of truth for every screen: an
// immutable snapshot of all entity collections, mutated only by applying
// transitions through a pure function. Readers always observe a fully-applied
// snapshot, never a partial update.
package state

import "github.com/orgboard-io/orgboard/modules/org/domain"

// Snapshot is one consistent view of the whole organisation. Collections are
// replaced wholesale on every transition; treat a snapshot and everything it
// contains as read-only.
type Snapshot struct {
	CompanyProfile domain.CompanyProfile
	AppSettings    domain.AppSettings

	Grades                   []domain.Grade
	ComplianceTags           []domain.ComplianceTag
	Departments              []domain.Department
	Functions                []domain.OrgFunction
	Staff                    []domain.Staff
	Responsibilities         []domain.Responsibility
	CrossFunctionalTeams     []domain.CrossFunctionalTeam
	TeamMembers              []domain.TeamMember
	Workflows                []domain.Workflow
	WorkflowSteps            []domain.WorkflowStep
	CompanyNumbers           []domain.CompanyNumber
	CompanyNumberAllocations []domain.CompanyNumberAllocation
	Users                    []domain.User
}

// TeamMembersOf returns the member rows belonging to one team.
func (s Snapshot) TeamMembersOf(teamID string) []domain.TeamMember {
	var out []domain.TeamMember
	for _, m := range s.TeamMembers {
		if m.TeamID == teamID {
			out = append(out, m)
		}
	}
	return out
}

// WorkflowStepsOf returns the step rows belonging to one workflow, in the
// order they are stored.
func (s Snapshot) WorkflowStepsOf(workflowID string) []domain.WorkflowStep {
	var out []domain.WorkflowStep
	for _, st := range s.WorkflowSteps {
		if st.WorkflowID == workflowID {
			out = append(out, st)
		}
	}
	return out
}
