package services

import (
	"context"

	"github.com/pkg/errors"

	"github.com/orgboard-io/orgboard/modules/org/domain"
	"github.com/orgboard-io/orgboard/modules/org/gateway"
	"github.com/orgboard-io/orgboard/modules/org/state"
)

type DepartmentDTO struct {
	Name      string  `validate:"required"`
	ManagerID *string `validate:"-"`
}

type DepartmentService struct {
	c *core
}

func (s *DepartmentService) Create(ctx context.Context, dto DepartmentDTO) (domain.Department, error) {
	var created domain.Department
	if err := validateDTO(dto); err != nil {
		return created, err
	}
	err := s.c.mutate("create department", func() error {
		var err error
		created, err = gateway.Create(ctx, s.c.gw, gateway.Departments, domain.Department{
			Name:      dto.Name,
			ManagerID: dto.ManagerID,
		})
		if err != nil {
			return errors.Wrap(err, "failed to add department")
		}
		s.c.store.Dispatch(state.AddDepartment{Department: created})
		s.c.success("Department added")
		return nil
	})
	return created, err
}

func (s *DepartmentService) Update(ctx context.Context, id string, dto DepartmentDTO) (domain.Department, error) {
	var updated domain.Department
	if err := validateDTO(dto); err != nil {
		return updated, err
	}
	err := s.c.mutate("update department", func() error {
		var err error
		updated, err = gateway.Patch[domain.Department](ctx, s.c.gw, gateway.Departments, id, map[string]any{
			"name":      dto.Name,
			"managerId": dto.ManagerID,
		})
		if err != nil {
			return errors.Wrap(err, "failed to update department")
		}
		s.c.store.Dispatch(state.UpdateDepartment{Department: updated})
		s.c.success("Department updated")
		return nil
	})
	return updated, err
}

// AssignManager sets or clears (nil staffID) the department's manager. Only
// the manager field changes, locally and remotely.
func (s *DepartmentService) AssignManager(ctx context.Context, departmentID string, staffID *string) error {
	return s.c.mutate("assign manager", func() error {
		if staffID != nil {
			if err := guardStaffExists(s.c.store.Snapshot(), *staffID); err != nil {
				return err
			}
		}
		_, err := gateway.Patch[domain.Department](ctx, s.c.gw, gateway.Departments, departmentID, map[string]any{
			"managerId": staffID,
		})
		if err != nil {
			return errors.Wrap(err, "failed to assign manager")
		}
		s.c.store.Dispatch(state.AssignManager{DepartmentID: departmentID, StaffID: staffID})
		s.c.success("Manager updated")
		return nil
	})
}

func (s *DepartmentService) Delete(ctx context.Context, id string) error {
	return s.c.mutate("delete department", func() error {
		if err := guardDeleteDepartment(s.c.store.Snapshot(), id); err != nil {
			return err
		}
		if err := s.c.gw.DeleteOne(ctx, gateway.Departments, id); err != nil {
			return errors.Wrap(err, "failed to delete department")
		}
		s.c.store.Dispatch(state.DeleteDepartment{ID: id})
		s.c.success("Department deleted")
		return nil
	})
}
