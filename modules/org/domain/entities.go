// Package domain holds the fifteen entity shapes of the organisation model.
// These are pure data definitions: identifiers are opaque strings assigned by
// the remote store, references are held by id, and optional references are
// pointers that may be nil. The json tags are the in-memory (camelCase) field
// names; the gateway translates them to the wire convention at the boundary.
package domain

type Department struct {
	ID        string  `json:"id"`
	UID       string  `json:"uid"`
	Name      string  `json:"name"`
	ManagerID *string `json:"managerId"`
}

type OrgFunction struct {
	ID           string       `json:"id"`
	UID          string       `json:"uid"`
	Name         string       `json:"name"`
	DepartmentID string       `json:"departmentId"`
	Type         FunctionType `json:"type"`
	Email        *string      `json:"email"`
	Phone        *string      `json:"phone"`
}

type Responsibility struct {
	ID                 string  `json:"id"`
	UID                string  `json:"uid"`
	Name               string  `json:"name"`
	Description        string  `json:"description"`
	FunctionID         string  `json:"functionId"`
	SOPLink            string  `json:"sopLink"`
	IsComplianceTagged bool    `json:"isComplianceTagged"`
	ComplianceTagID    *string `json:"complianceTagId"`
}

// Grade level 0 is the highest rank.
type Grade struct {
	ID    string `json:"id"`
	Level int    `json:"level"`
	Name  string `json:"name"`
}

type Staff struct {
	ID                    string   `json:"id"`
	UID                   string   `json:"uid"`
	FirstName             string   `json:"firstName"`
	LastName              string   `json:"lastName"`
	DepartmentID          string   `json:"departmentId"`
	GradeID               *string  `json:"gradeId"`
	PrimaryFunctionID     string   `json:"primaryFunctionId"`
	SecondaryFunctionID   *string  `json:"secondaryFunctionId"`
	AdditionalFunctionIDs []string `json:"additionalFunctionIds"`
}

type CrossFunctionalTeam struct {
	ID                    string  `json:"id"`
	UID                   string  `json:"uid"`
	Name                  string  `json:"name"`
	Purpose               string  `json:"purpose"`
	ReportingDepartmentID string  `json:"reportingDepartmentId"`
	LeadID                *string `json:"leadId"`
}

// TeamMember rows resolve the many-to-many relation between teams and staff.
// They are owned by their team and cascade with it.
type TeamMember struct {
	ID      string `json:"id"`
	TeamID  string `json:"teamId"`
	StaffID string `json:"staffId"`
}

type Workflow struct {
	ID                string         `json:"id"`
	UID               string         `json:"uid"`
	Name              string         `json:"name"`
	Description       string         `json:"description"`
	OwnerDepartmentID string         `json:"ownerDepartmentId"`
	Status            WorkflowStatus `json:"status"`
}

// WorkflowStep rows are owned by their workflow and cascade with it.
// StepOrder is contiguous 1..N within a workflow.
type WorkflowStep struct {
	ID               string `json:"id"`
	WorkflowID       string `json:"workflowId"`
	ResponsibilityID string `json:"responsibilityId"`
	StepOrder        int    `json:"stepOrder"`
}

type ComplianceTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CompanyNumber struct {
	ID          string `json:"id"`
	PhoneNumber string `json:"phoneNumber"`
}

// CompanyNumberAllocation assigns a number to exactly one target; the target
// reference matching AssignToType is set and the other two are nil.
type CompanyNumberAllocation struct {
	ID              string       `json:"id"`
	CompanyNumberID string       `json:"companyNumberId"`
	AssignToType    AssignToType `json:"assignToType"`
	StaffID         *string      `json:"staffId"`
	FunctionID      *string      `json:"functionId"`
	DepartmentID    *string      `json:"departmentId"`
}

type User struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Role     UserRole `json:"role"`
	StaffID  *string  `json:"staffId"`
}

// CompanyProfile is a singleton: exactly one logical record exists.
type CompanyProfile struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Website  string `json:"website"`
	LogoURL  string `json:"logoUrl"`
}

// AppSettings is a singleton: exactly one logical record exists.
type AppSettings struct {
	ID                   string      `json:"id"`
	EmailDomain          string      `json:"emailDomain"`
	EmailFormat          EmailFormat `json:"emailFormat"`
	MaxManagerGradeLevel int         `json:"maxManagerGradeLevel"`
}
