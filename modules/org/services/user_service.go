package services

import (
	"context"

	"github.com/pkg/errors"

	"github.com/orgboard-io/orgboard/modules/org/domain"
	"github.com/orgboard-io/orgboard/modules/org/gateway"
	"github.com/orgboard-io/orgboard/modules/org/state"
)

type UserService struct {
	c *core
}

// SetRole changes one user's role. Only super admins may do this.
func (s *UserService) SetRole(ctx context.Context, userID string, role domain.UserRole) error {
	if s.c.session().Role != domain.RoleSuperAdmin {
		return errors.New("only a super admin can change roles")
	}
	return s.c.mutate("set user role", func() error {
		_, err := gateway.Patch[domain.User](ctx, s.c.gw, gateway.Users, userID, map[string]any{
			"role": role,
		})
		if err != nil {
			return errors.Wrap(err, "failed to update role")
		}
		s.c.store.Dispatch(state.SetUserRole{UserID: userID, Role: role})
		s.c.success("Role updated")
		return nil
	})
}
