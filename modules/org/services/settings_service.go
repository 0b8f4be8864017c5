package services

import (
	"context"

	"github.com/pkg/errors"

	"github.com/orgboard-io/orgboard/modules/org/domain"
	"github.com/orgboard-io/orgboard/modules/org/gateway"
	"github.com/orgboard-io/orgboard/modules/org/state"
)

type CompanyProfileDTO struct {
	Name     string `validate:"required"`
	Location string `validate:"-"`
	Website  string `validate:"omitempty,url"`
	LogoURL  string `validate:"omitempty,url"`
}

type SettingsService struct {
	c *core
}

// SaveCompanyProfile upserts the profile singleton and merges the stored
// version into the snapshot.
func (s *SettingsService) SaveCompanyProfile(ctx context.Context, dto CompanyProfileDTO) error {
	if err := validateDTO(dto); err != nil {
		return err
	}
	return s.c.mutate("save company profile", func() error {
		current := s.c.store.Snapshot().CompanyProfile
		current.Name = dto.Name
		current.Location = dto.Location
		current.Website = dto.Website
		current.LogoURL = dto.LogoURL

		stored, err := gateway.Upsert(ctx, s.c.gw, gateway.CompanyProfile, current)
		if err != nil {
			return errors.Wrap(err, "failed to save")
		}
		s.c.store.Dispatch(state.MergeCompanyProfile{Profile: stored})
		s.c.success("Company profile saved")
		return nil
	})
}

// SaveEmailFormat updates the email domain and format, leaving the manager
// threshold untouched.
func (s *SettingsService) SaveEmailFormat(ctx context.Context, emailDomain string, format domain.EmailFormat) error {
	if format != domain.EmailFirstnameL && format != domain.EmailFLastname {
		return errors.Errorf("unknown email format %q", format)
	}
	return s.c.mutate("save email format", func() error {
		current := s.c.store.Snapshot().AppSettings
		current.EmailDomain = emailDomain
		current.EmailFormat = format

		stored, err := gateway.Upsert(ctx, s.c.gw, gateway.AppSettings, current)
		if err != nil {
			return errors.Wrap(err, "failed to save")
		}
		s.c.store.Dispatch(state.MergeAppSettings{Settings: stored})
		s.c.success("Email format settings saved")
		return nil
	})
}

// SaveManagerThreshold updates the grade level at or below which a manager
// counts as fully managing a department.
func (s *SettingsService) SaveManagerThreshold(ctx context.Context, maxManagerGradeLevel int) error {
	if maxManagerGradeLevel < 0 {
		return errors.New("threshold must not be negative")
	}
	return s.c.mutate("save manager threshold", func() error {
		current := s.c.store.Snapshot().AppSettings
		current.MaxManagerGradeLevel = maxManagerGradeLevel

		stored, err := gateway.Upsert(ctx, s.c.gw, gateway.AppSettings, current)
		if err != nil {
			return errors.Wrap(err, "failed to save")
		}
		s.c.store.Dispatch(state.MergeAppSettings{Settings: stored})
		s.c.success("Manager threshold updated")
		return nil
	})
}
