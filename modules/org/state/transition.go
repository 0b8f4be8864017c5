package state

import "github.com/orgboard-io/orgboard/modules/org/domain"

// Transition is the closed set of state-change requests. It is a sealed
// union: only types in this package implement it, so Apply can enumerate
// every possible request. Dispatching a transition is the only way local
// state changes, and it happens strictly after the corresponding remote
// write has succeeded.
type Transition interface {
	transition()
}

// Department group.

type AddDepartment struct{ Department domain.Department }
type UpdateDepartment struct{ Department domain.Department }
type DeleteDepartment struct{ ID string }

// AssignManager is a field-level assignment: only the manager reference of
// the addressed department changes.
type AssignManager struct {
	DepartmentID string
	StaffID      *string
}

// Function group.

type AddFunction struct{ Function domain.OrgFunction }
type UpdateFunction struct{ Function domain.OrgFunction }
type DeleteFunction struct{ ID string }

// Staff group.

type AddStaff struct{ Staff domain.Staff }
type UpdateStaff struct{ Staff domain.Staff }
type DeleteStaff struct{ ID string }

// Responsibility group.

type AddResponsibility struct{ Responsibility domain.Responsibility }
type UpdateResponsibility struct{ Responsibility domain.Responsibility }
type DeleteResponsibility struct{ ID string }

// TransferResponsibility moves a responsibility to another function without
// touching the rest of the record.
type TransferResponsibility struct {
	ID            string
	NewFunctionID string
}

// Team group. Add and Replace carry the owned member rows alongside the
// parent so both collections change in one atomic local step.

type AddTeam struct {
	Team    domain.CrossFunctionalTeam
	Members []domain.TeamMember
}

// ReplaceTeam swaps the parent record and replaces the entire member subset
// for that team with the supplied set.
type ReplaceTeam struct {
	Team    domain.CrossFunctionalTeam
	Members []domain.TeamMember
}

type DeleteTeam struct{ ID string }

// Workflow group, same shape as the team group.

type AddWorkflow struct {
	Workflow domain.Workflow
	Steps    []domain.WorkflowStep
}

type ReplaceWorkflow struct {
	Workflow domain.Workflow
	Steps    []domain.WorkflowStep
}

type DeleteWorkflow struct{ ID string }

// Admin group: grades, compliance tags, company numbers, allocations,
// singletons, user roles.

type AddGrade struct{ Grade domain.Grade }
type UpdateGrade struct{ Grade domain.Grade }
type DeleteGrade struct{ ID string }

type AddComplianceTag struct{ Tag domain.ComplianceTag }
type UpdateComplianceTag struct{ Tag domain.ComplianceTag }
type DeleteComplianceTag struct{ ID string }

type AddCompanyNumbers struct{ Numbers []domain.CompanyNumber }
type DeleteCompanyNumber struct{ ID string }

type AllocateNumber struct{ Allocation domain.CompanyNumberAllocation }
type ReleaseNumber struct{ AllocationID string }

// MergeAppSettings and MergeCompanyProfile replace the singleton with the
// record the upsert returned.
type MergeAppSettings struct{ Settings domain.AppSettings }
type MergeCompanyProfile struct{ Profile domain.CompanyProfile }

type SetUserRole struct {
	UserID string
	Role   domain.UserRole
}

func (AddDepartment) transition()          {}
func (UpdateDepartment) transition()       {}
func (DeleteDepartment) transition()       {}
func (AssignManager) transition()          {}
func (AddFunction) transition()            {}
func (UpdateFunction) transition()         {}
func (DeleteFunction) transition()         {}
func (AddStaff) transition()               {}
func (UpdateStaff) transition()            {}
func (DeleteStaff) transition()            {}
func (AddResponsibility) transition()      {}
func (UpdateResponsibility) transition()   {}
func (DeleteResponsibility) transition()   {}
func (TransferResponsibility) transition() {}
func (AddTeam) transition()                {}
func (ReplaceTeam) transition()            {}
func (DeleteTeam) transition()             {}
func (AddWorkflow) transition()            {}
func (ReplaceWorkflow) transition()        {}
func (DeleteWorkflow) transition()         {}
func (AddGrade) transition()               {}
func (UpdateGrade) transition()            {}
func (DeleteGrade) transition()            {}
func (AddComplianceTag) transition()       {}
func (UpdateComplianceTag) transition()    {}
func (DeleteComplianceTag) transition()    {}
func (AddCompanyNumbers) transition()      {}
func (DeleteCompanyNumber) transition()    {}
func (AllocateNumber) transition()         {}
func (ReleaseNumber) transition()          {}
func (MergeAppSettings) transition()       {}
func (MergeCompanyProfile) transition()    {}
func (SetUserRole) transition()            {}
