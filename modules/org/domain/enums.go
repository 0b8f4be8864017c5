package domain

// DepartmentStatus is derived at read time from the manager's grade against
// the configured threshold; it is never persisted.
type DepartmentStatus string

const (
	DepartmentManaged   DepartmentStatus = "Managed"
	DepartmentActing    DepartmentStatus = "Acting"
	DepartmentUnmanaged DepartmentStatus = "Unmanaged"
)

type EmailFormat string

const (
	EmailFirstnameL EmailFormat = "firstname.L"
	EmailFLastname  EmailFormat = "F.lastname"
)

type FunctionType string

const (
	FunctionInternal FunctionType = "Internal"
	FunctionExternal FunctionType = "External"
)

type UserRole string

const (
	RoleStaff      UserRole = "Staff"
	RoleAdmin      UserRole = "Admin"
	RoleSuperAdmin UserRole = "Super Admin"
)

type WorkflowStatus string

const (
	WorkflowDraft  WorkflowStatus = "Draft"
	WorkflowActive WorkflowStatus = "Active"
)

// AssignToType names the kind of record a company number is allocated to.
type AssignToType string

const (
	AssignToStaff      AssignToType = "Staff"
	AssignToFunction   AssignToType = "Function"
	AssignToDepartment AssignToType = "Department"
)
