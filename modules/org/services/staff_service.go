package services

import (
	"context"

	"github.com/pkg/errors"

	"github.com/orgboard-io/orgboard/modules/org/domain"
	"github.com/orgboard-io/orgboard/modules/org/gateway"
	"github.com/orgboard-io/orgboard/modules/org/state"
)

type StaffDTO struct {
	FirstName             string   `validate:"required"`
	LastName              string   `validate:"required"`
	DepartmentID          string   `validate:"required"`
	GradeID               *string  `validate:"-"`
	PrimaryFunctionID     string   `validate:"required"`
	SecondaryFunctionID   *string  `validate:"-"`
	AdditionalFunctionIDs []string `validate:"-"`
}

type StaffService struct {
	c *core
}

func (dto StaffDTO) entity() domain.Staff {
	extra := dto.AdditionalFunctionIDs
	if extra == nil {
		extra = []string{}
	}
	return domain.Staff{
		FirstName:             dto.FirstName,
		LastName:              dto.LastName,
		DepartmentID:          dto.DepartmentID,
		GradeID:               dto.GradeID,
		PrimaryFunctionID:     dto.PrimaryFunctionID,
		SecondaryFunctionID:   dto.SecondaryFunctionID,
		AdditionalFunctionIDs: extra,
	}
}

func (s *StaffService) Create(ctx context.Context, dto StaffDTO) (domain.Staff, error) {
	var created domain.Staff
	if err := validateDTO(dto); err != nil {
		return created, err
	}
	err := s.c.mutate("create staff", func() error {
		var err error
		created, err = gateway.Create(ctx, s.c.gw, gateway.StaffMembers, dto.entity())
		if err != nil {
			return errors.Wrap(err, "failed to add staff")
		}
		s.c.store.Dispatch(state.AddStaff{Staff: created})
		s.c.success("Staff member added")
		return nil
	})
	return created, err
}

func (s *StaffService) Update(ctx context.Context, id string, dto StaffDTO) (domain.Staff, error) {
	var updated domain.Staff
	if err := validateDTO(dto); err != nil {
		return updated, err
	}
	err := s.c.mutate("update staff", func() error {
		var err error
		updated, err = gateway.Update(ctx, s.c.gw, gateway.StaffMembers, id, dto.entity())
		if err != nil {
			return errors.Wrap(err, "failed to update staff")
		}
		s.c.store.Dispatch(state.UpdateStaff{Staff: updated})
		s.c.success("Staff member updated")
		return nil
	})
	return updated, err
}

func (s *StaffService) Delete(ctx context.Context, id string) error {
	return s.c.mutate("delete staff", func() error {
		if err := guardDeleteStaff(s.c.store.Snapshot(), id); err != nil {
			return err
		}
		if err := s.c.gw.DeleteOne(ctx, gateway.StaffMembers, id); err != nil {
			return errors.Wrap(err, "failed to delete staff")
		}
		s.c.store.Dispatch(state.DeleteStaff{ID: id})
		s.c.success("Staff member deleted")
		return nil
	})
}
