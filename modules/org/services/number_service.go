package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/orgboard-io/orgboard/modules/org/domain"
	"github.com/orgboard-io/orgboard/modules/org/gateway"
	"github.com/orgboard-io/orgboard/modules/org/state"
)

const maxRangeSize = 1000

var ErrInvalidRange = errors.New("Invalid range (max 1000 numbers at a time)")

type AllocationDTO struct {
	CompanyNumberID string              `validate:"required"`
	AssignToType    domain.AssignToType `validate:"required,oneof=Staff Function Department"`
	TargetID        string              `validate:"required"`
}

type NumberService struct {
	c *core
}

func (s *NumberService) Add(ctx context.Context, phoneNumber string) (domain.CompanyNumber, error) {
	var created domain.CompanyNumber
	err := s.c.mutate("add company number", func() error {
		var err error
		created, err = gateway.Create(ctx, s.c.gw, gateway.CompanyNumbers, domain.CompanyNumber{PhoneNumber: phoneNumber})
		if err != nil {
			return errors.Wrap(err, "failed to add number")
		}
		s.c.store.Dispatch(state.AddCompanyNumbers{Numbers: []domain.CompanyNumber{created}})
		s.c.success("Number added")
		return nil
	})
	return created, err
}

// AddRange inserts prefix+start .. prefix+end one number at a time, the
// suffix zero-padded to four digits. Individual failures (typically
// duplicates) are tallied, not fatal: whatever was created is dispatched and
// the tally reported.
func (s *NumberService) AddRange(ctx context.Context, prefix string, start, end int) ([]domain.CompanyNumber, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" || start > end || end-start > maxRangeSize-1 {
		s.c.fail(ErrInvalidRange.Error())
		return nil, ErrInvalidRange
	}

	var created []domain.CompanyNumber
	err := s.c.mutate("add company number range", func() error {
		failed := 0
		for i := start; i <= end; i++ {
			phoneNumber := fmt.Sprintf("%s%04d", prefix, i)
			num, err := gateway.Create(ctx, s.c.gw, gateway.CompanyNumbers, domain.CompanyNumber{PhoneNumber: phoneNumber})
			if err != nil {
				failed++
				continue
			}
			created = append(created, num)
		}

		if len(created) > 0 {
			s.c.store.Dispatch(state.AddCompanyNumbers{Numbers: created})
		}
		if failed > 0 {
			msg := fmt.Sprintf("Added %d numbers. %d failed (possibly duplicates).", len(created), failed)
			if len(created) == 0 {
				s.c.fail(msg)
			} else {
				s.c.success(msg)
			}
			return nil
		}
		s.c.success(fmt.Sprintf("Added %d numbers", len(created)))
		return nil
	})
	return created, err
}

func (s *NumberService) Delete(ctx context.Context, id string) error {
	return s.c.mutate("delete company number", func() error {
		if err := s.c.gw.DeleteOne(ctx, gateway.CompanyNumbers, id); err != nil {
			return errors.Wrap(err, "failed to delete")
		}
		s.c.store.Dispatch(state.DeleteCompanyNumber{ID: id})
		s.c.success("Number deleted")
		return nil
	})
}

// Allocate assigns a number to exactly one target; the reference matching
// the assign-to type is set and the other two stay nil.
func (s *NumberService) Allocate(ctx context.Context, dto AllocationDTO) (domain.CompanyNumberAllocation, error) {
	var created domain.CompanyNumberAllocation
	if err := validateDTO(dto); err != nil {
		return created, err
	}
	err := s.c.mutate("allocate number", func() error {
		alloc := domain.CompanyNumberAllocation{
			CompanyNumberID: dto.CompanyNumberID,
			AssignToType:    dto.AssignToType,
		}
		switch dto.AssignToType {
		case domain.AssignToStaff:
			alloc.StaffID = &dto.TargetID
		case domain.AssignToFunction:
			alloc.FunctionID = &dto.TargetID
		case domain.AssignToDepartment:
			alloc.DepartmentID = &dto.TargetID
		}

		var err error
		created, err = gateway.Create(ctx, s.c.gw, gateway.NumberAllocations, alloc)
		if err != nil {
			return errors.Wrap(err, "failed to allocate number")
		}
		s.c.store.Dispatch(state.AllocateNumber{Allocation: created})
		s.c.success("Number allocated")
		return nil
	})
	return created, err
}

func (s *NumberService) Release(ctx context.Context, allocationID string) error {
	return s.c.mutate("release number", func() error {
		if err := s.c.gw.DeleteOne(ctx, gateway.NumberAllocations, allocationID); err != nil {
			return errors.Wrap(err, "failed to release number")
		}
		s.c.store.Dispatch(state.ReleaseNumber{AllocationID: allocationID})
		s.c.success("Number released")
		return nil
	})
}
