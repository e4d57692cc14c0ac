package repository

import (
	"fmt"

	"github.com/forgo/volunteer/internal/model"
)

// OpportunityRepository stores opportunities in memory
type OpportunityRepository struct {
	store *sequenceStore[*model.Opportunity]
}

// NewOpportunityRepository creates an empty opportunity repository
func NewOpportunityRepository() *OpportunityRepository {
	return &OpportunityRepository{store: newSequenceStore[*model.Opportunity]()}
}

// Save assigns an id to a new opportunity or replaces the stored one
func (r *OpportunityRepository) Save(opportunity *model.Opportunity) *model.Opportunity {
	return r.store.save(opportunity)
}

// Delete removes the opportunity with the same id. Unlike applications, a
// missing opportunity is an error.
func (r *OpportunityRepository) Delete(opportunity *model.Opportunity) error {
	if !r.store.remove(opportunity.ID) {
		return model.NewNotFoundError(fmt.Sprintf("opportunity %d", opportunity.ID))
	}
	return nil
}

// GetByID returns the opportunity with id, or nil
func (r *OpportunityRepository) GetByID(id int) *model.Opportunity {
	opportunity, _ := r.store.get(id)
	return opportunity
}

// GetAll returns every opportunity in insertion order. The slice is a snapshot:
// later saves and deletes do not change it, but the opportunity values are
// shared with the repository.
func (r *OpportunityRepository) GetAll() []*model.Opportunity {
	return r.store.all()
}

// GetByOrganization returns the opportunities owned by org, in insertion order
func (r *OpportunityRepository) GetByOrganization(org *model.Organization) []*model.Opportunity {
	return r.store.filter(func(o *model.Opportunity) bool {
		return o.Organization != nil && model.SameOrganization(o.Organization, org)
	})
}
