package services

import (
	"context"

	"github.com/pkg/errors"

	"github.com/orgboard-io/orgboard/modules/org/domain"
	"github.com/orgboard-io/orgboard/modules/org/gateway"
	"github.com/orgboard-io/orgboard/modules/org/state"
)

type FunctionDTO struct {
	Name         string              `validate:"required"`
	DepartmentID string              `validate:"required"`
	Type         domain.FunctionType `validate:"required,oneof=Internal External"`
	Email        *string             `validate:"omitempty,email"`
	Phone        *string             `validate:"-"`
}

type FunctionService struct {
	c *core
}

func (s *FunctionService) Create(ctx context.Context, dto FunctionDTO) (domain.OrgFunction, error) {
	var created domain.OrgFunction
	if err := validateDTO(dto); err != nil {
		return created, err
	}
	err := s.c.mutate("create function", func() error {
		var err error
		created, err = gateway.Create(ctx, s.c.gw, gateway.Functions, domain.OrgFunction{
			Name:         dto.Name,
			DepartmentID: dto.DepartmentID,
			Type:         dto.Type,
			Email:        dto.Email,
			Phone:        dto.Phone,
		})
		if err != nil {
			return errors.Wrap(err, "failed to add function")
		}
		s.c.store.Dispatch(state.AddFunction{Function: created})
		s.c.success("Function added")
		return nil
	})
	return created, err
}

func (s *FunctionService) Update(ctx context.Context, id string, dto FunctionDTO) (domain.OrgFunction, error) {
	var updated domain.OrgFunction
	if err := validateDTO(dto); err != nil {
		return updated, err
	}
	err := s.c.mutate("update function", func() error {
		var err error
		updated, err = gateway.Patch[domain.OrgFunction](ctx, s.c.gw, gateway.Functions, id, map[string]any{
			"name":         dto.Name,
			"departmentId": dto.DepartmentID,
			"type":         dto.Type,
			"email":        dto.Email,
			"phone":        dto.Phone,
		})
		if err != nil {
			return errors.Wrap(err, "failed to update function")
		}
		s.c.store.Dispatch(state.UpdateFunction{Function: updated})
		s.c.success("Function updated")
		return nil
	})
	return updated, err
}

func (s *FunctionService) Delete(ctx context.Context, id string) error {
	return s.c.mutate("delete function", func() error {
		if err := guardDeleteFunction(s.c.store.Snapshot(), id); err != nil {
			return err
		}
		if err := s.c.gw.DeleteOne(ctx, gateway.Functions, id); err != nil {
			return errors.Wrap(err, "failed to delete function")
		}
		s.c.store.Dispatch(state.DeleteFunction{ID: id})
		s.c.success("Function deleted")
		return nil
	})
}
