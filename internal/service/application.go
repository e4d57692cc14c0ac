package service

import (
	"context"
	"log/slog"
	"reflect"
	"sync"

	"github.com/forgo/volunteer/internal/model"
)

// ApplicationRepository defines the interface for application storage
type ApplicationRepository interface {
	Save(application *model.Application) *model.Application
	GetAll() []*model.Application
}

// ApplicationService handles volunteer applications and notifies observers
type ApplicationService struct {
	applicationRepo ApplicationRepository
	session         *Session
	logger          *slog.Logger

	mu        sync.RWMutex
	observers []ApplicationObserver
}

// ApplicationServiceConfig holds configuration for the application service
type ApplicationServiceConfig struct {
	ApplicationRepo ApplicationRepository
	Session         *Session
	Observers       []ApplicationObserver // Optional, registered in order
	Logger          *slog.Logger          // Optional
}

// NewApplicationService creates a new application service
func NewApplicationService(cfg ApplicationServiceConfig) *ApplicationService {
	session := cfg.Session
	if session == nil {
		session = NewSession()
	}
	s := &ApplicationService{
		applicationRepo: cfg.ApplicationRepo,
		session:         session,
		logger:          componentLogger(cfg.Logger, "application_service"),
		observers:       make([]ApplicationObserver, 0, len(cfg.Observers)),
	}
	for _, o := range cfg.Observers {
		s.AddObserver(o)
	}
	return s
}

// AddObserver registers an observer. Observers are notified in the order
// they were added.
func (s *ApplicationService) AddObserver(observer ApplicationObserver) {
	if observer == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, observer)
}

// RemoveObserver unregisters the first observer identical to observer
func (s *ApplicationService) RemoveObserver(observer ApplicationObserver) {
	if observer == nil || !reflect.TypeOf(observer).Comparable() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, o := range s.observers {
		if reflect.TypeOf(o) == reflect.TypeOf(observer) && o == observer {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

// Apply files a pending application for the logged-in volunteer and
// notifies creation observers.
func (s *ApplicationService) Apply(ctx context.Context, opportunity *model.Opportunity) (*model.Application, error) {
	volunteer, ok := s.session.Volunteer()
	if !ok {
		return nil, ErrVolunteerRequired
	}
	if opportunity == nil {
		return nil, ErrOpportunityRequired
	}
	if !opportunity.IsAvailable() {
		return nil, ErrOpportunityUnavailable
	}

	application := s.applicationRepo.Save(model.NewApplication(volunteer, opportunity))
	s.logger.InfoContext(ctx, "application filed",
		slog.Int("id", application.ID),
		slog.Int("opportunity_id", opportunity.ID),
		slog.String("volunteer", volunteer.Email),
	)

	for _, o := range s.snapshotObservers() {
		if hook, ok := o.(ApplicationCreatedObserver); ok {
			hook.OnApplicationCreated(ctx, application)
		}
	}
	return application, nil
}

// Cancel marks the application cancelled and saves it. Unlike UpdateStatus
// it does not notify observers.
func (s *ApplicationService) Cancel(ctx context.Context, application *model.Application) (*model.Application, error) {
	if application == nil {
		return nil, ErrApplicationRequired
	}
	application.UpdateStatus(model.ApplicationStatusCancelled)
	saved := s.applicationRepo.Save(application)
	s.logger.InfoContext(ctx, "application cancelled", slog.Int("id", saved.ID))
	return saved, nil
}

// UpdateStatus sets any status, saves the application and notifies status
// observers with the previous and new values.
func (s *ApplicationService) UpdateStatus(ctx context.Context, application *model.Application, status string) (*model.Application, error) {
	if application == nil {
		return nil, ErrApplicationRequired
	}
	oldStatus := application.UpdateStatus(status)
	saved := s.applicationRepo.Save(application)
	s.logger.InfoContext(ctx, "application status updated",
		slog.Int("id", saved.ID),
		slog.String("old_status", oldStatus),
		slog.String("new_status", status),
	)

	for _, o := range s.snapshotObservers() {
		if hook, ok := o.(ApplicationStatusObserver); ok {
			hook.OnApplicationStatusChanged(ctx, saved, oldStatus, status)
		}
	}
	return saved, nil
}

// ListApplications returns every stored application
func (s *ApplicationService) ListApplications() []*model.Application {
	return s.applicationRepo.GetAll()
}

func (s *ApplicationService) snapshotObservers() []ApplicationObserver {
	s.mu.RLock()
	defer s.mu.RUnlock()
	observers := make([]ApplicationObserver, len(s.observers))
	copy(observers, s.observers)
	return observers
}
