package repository

import (
	"log/slog"

	"github.com/forgo/volunteer/internal/model"
)

// ApplicationRepository stores applications in memory
type ApplicationRepository struct {
	store  *sequenceStore[*model.Application]
	logger *slog.Logger
}

// NewApplicationRepository creates an empty application repository. A nil
// logger falls back to slog.Default().
func NewApplicationRepository(logger *slog.Logger) *ApplicationRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &ApplicationRepository{
		store:  newSequenceStore[*model.Application](),
		logger: logger.With("component", "application_repository"),
	}
}

// Save assigns an id to a new application or replaces the stored one
func (r *ApplicationRepository) Save(application *model.Application) *model.Application {
	return r.store.save(application)
}

// Delete removes the application with the same id. Deleting an unknown
// application does nothing.
func (r *ApplicationRepository) Delete(application *model.Application) {
	if !r.store.remove(application.ID) {
		r.logger.Debug("application not found, nothing deleted", slog.Int("id", application.ID))
	}
}

// GetByID returns the application with id, or nil
func (r *ApplicationRepository) GetByID(id int) *model.Application {
	application, _ := r.store.get(id)
	return application
}

// GetAll returns every application in insertion order. The slice is a snapshot:
// later saves and deletes do not change it, but the application values are
// shared with the repository.
func (r *ApplicationRepository) GetAll() []*model.Application {
	return r.store.all()
}

// GetByVolunteer returns the applications filed by the volunteer with email
func (r *ApplicationRepository) GetByVolunteer(email string) []*model.Application {
	return r.store.filter(func(a *model.Application) bool {
		return a.Volunteer != nil && a.Volunteer.Email == email
	})
}

// GetByOpportunity returns the applications filed for opportunity id
func (r *ApplicationRepository) GetByOpportunity(opportunityID int) []*model.Application {
	return r.store.filter(func(a *model.Application) bool {
		return a.Opportunity != nil && a.Opportunity.ID == opportunityID
	})
}
