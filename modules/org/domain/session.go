package domain

// Session is what the auth collaborator hands the core: presence and a role.
// The core passes the role through to rendering without interpreting it.
type Session struct {
	Authenticated bool
	Role          UserRole
}
