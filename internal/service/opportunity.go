package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/forgo/volunteer/internal/model"
)

// OpportunityRepository defines the interface for opportunity storage
type OpportunityRepository interface {
	Save(opportunity *model.Opportunity) *model.Opportunity
	Delete(opportunity *model.Opportunity) error
	GetAll() []*model.Opportunity
	GetByOrganization(org *model.Organization) []*model.Opportunity
}

// OpportunityService handles opportunity management for organizations
type OpportunityService struct {
	opportunityRepo OpportunityRepository
	session         *Session
	logger          *slog.Logger
}

// OpportunityServiceConfig holds configuration for the opportunity service
type OpportunityServiceConfig struct {
	OpportunityRepo OpportunityRepository
	Session         *Session
	Logger          *slog.Logger // Optional
}

// NewOpportunityService creates a new opportunity service
func NewOpportunityService(cfg OpportunityServiceConfig) *OpportunityService {
	session := cfg.Session
	if session == nil {
		session = NewSession()
	}
	return &OpportunityService{
		opportunityRepo: cfg.OpportunityRepo,
		session:         session,
		logger:          componentLogger(cfg.Logger, "opportunity_service"),
	}
}

// PostOpportunity stores a new opportunity for the logged-in organization.
// An opportunity without an owner is assigned to that organization.
func (s *OpportunityService) PostOpportunity(ctx context.Context, opportunity *model.Opportunity) (*model.Opportunity, error) {
	if opportunity == nil {
		return nil, ErrOpportunityRequired
	}
	org, err := s.requireOrganization("post opportunities")
	if err != nil {
		return nil, err
	}

	if opportunity.Organization == nil {
		opportunity.Organization = org
	} else if !model.SameOrganization(opportunity.Organization, org) {
		return nil, model.NewAuthorizationError("only your own organization can post this opportunity")
	}

	saved := s.opportunityRepo.Save(opportunity)
	s.logger.InfoContext(ctx, "opportunity posted",
		slog.Int("id", saved.ID),
		slog.String("title", saved.Title),
		slog.String("organization", org.Email),
	)
	return saved, nil
}

// EditOpportunity overlays updates onto the opportunity and saves it.
// Keys are field names (see model.OpportunityField*). Every field may be
// replaced, including id and organization. Unknown keys are ignored.
func (s *OpportunityService) EditOpportunity(ctx context.Context, opportunity *model.Opportunity, updates map[string]interface{}) (*model.Opportunity, error) {
	if _, err := s.requireOwner(opportunity, "edit opportunities"); err != nil {
		return nil, err
	}

	if err := applyOpportunityUpdates(opportunity, updates); err != nil {
		return nil, err
	}

	saved := s.opportunityRepo.Save(opportunity)
	s.logger.InfoContext(ctx, "opportunity edited",
		slog.Int("id", saved.ID),
		slog.Int("fields", len(updates)),
	)
	return saved, nil
}

// DeleteOpportunity removes an opportunity owned by the logged-in organization
func (s *OpportunityService) DeleteOpportunity(ctx context.Context, opportunity *model.Opportunity) error {
	if _, err := s.requireOwner(opportunity, "delete opportunities"); err != nil {
		return err
	}
	if err := s.opportunityRepo.Delete(opportunity); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "opportunity deleted", slog.Int("id", opportunity.ID))
	return nil
}

// CloseOpportunity stops an opportunity from accepting applications
func (s *OpportunityService) CloseOpportunity(ctx context.Context, opportunity *model.Opportunity) (*model.Opportunity, error) {
	return s.setAvailable(ctx, opportunity, false, "close opportunities")
}

// OpenOpportunity lets an opportunity accept applications again
func (s *OpportunityService) OpenOpportunity(ctx context.Context, opportunity *model.Opportunity) (*model.Opportunity, error) {
	return s.setAvailable(ctx, opportunity, true, "open opportunities")
}

// ListOpportunities returns every stored opportunity
func (s *OpportunityService) ListOpportunities() []*model.Opportunity {
	return s.opportunityRepo.GetAll()
}

// ListOwnOpportunities returns the logged-in organization's opportunities
func (s *OpportunityService) ListOwnOpportunities() ([]*model.Opportunity, error) {
	org, err := s.requireOrganization("list their opportunities")
	if err != nil {
		return nil, err
	}
	return s.opportunityRepo.GetByOrganization(org), nil
}

func (s *OpportunityService) setAvailable(ctx context.Context, opportunity *model.Opportunity, available bool, action string) (*model.Opportunity, error) {
	if _, err := s.requireOwner(opportunity, action); err != nil {
		return nil, err
	}
	opportunity.SetAvailable(available)
	saved := s.opportunityRepo.Save(opportunity)
	s.logger.InfoContext(ctx, "opportunity availability changed",
		slog.Int("id", saved.ID),
		slog.Bool("available", available),
	)
	return saved, nil
}

// requireOrganization returns the logged-in organization
func (s *OpportunityService) requireOrganization(action string) (*model.Organization, error) {
	org, ok := s.session.Organization()
	if !ok {
		return nil, errOrganizationRequired(action)
	}
	return org, nil
}

// requireOwner checks that the logged-in organization may modify opportunity.
// An opportunity without an owner passes.
func (s *OpportunityService) requireOwner(opportunity *model.Opportunity, action string) (*model.Organization, error) {
	org, err := s.requireOrganization(action)
	if err != nil {
		return nil, err
	}
	if opportunity == nil {
		return nil, ErrOpportunityRequired
	}
	if opportunity.Organization != nil && !model.SameOrganization(opportunity.Organization, org) {
		return nil, ErrNotOwnOpportunity
	}
	return org, nil
}

// applyOpportunityUpdates overlays updates onto o. Nothing is written when
// any value has the wrong type.
func applyOpportunityUpdates(o *model.Opportunity, updates map[string]interface{}) error {
	next := *o
	for field, value := range updates {
		var ok bool
		switch field {
		case model.OpportunityFieldID:
			next.ID, ok = value.(int)
		case model.OpportunityFieldTitle:
			next.Title, ok = value.(string)
		case model.OpportunityFieldDescription:
			next.Description, ok = value.(string)
		case model.OpportunityFieldInterest:
			next.Interest, ok = value.(string)
		case model.OpportunityFieldLocation:
			next.Location, ok = value.(string)
		case model.OpportunityFieldDate:
			next.Date, ok = value.(string)
		case model.OpportunityFieldOrganization:
			if value == nil {
				next.Organization, ok = nil, true
			} else {
				next.Organization, ok = value.(*model.Organization)
			}
		case model.OpportunityFieldAvailable:
			next.Available, ok = value.(bool)
		default:
			ok = true
		}
		if !ok {
			return model.NewTypeMismatchError(fmt.Sprintf("field %q cannot be set to %T", field, value))
		}
	}
	*o = next
	return nil
}
