package service

import (
	"log/slog"

	"github.com/forgo/volunteer/internal/repository"
)

// Services bundles the services wired around one shared session and one set
// of in-memory repositories.
type Services struct {
	Session       *Session
	Users         *UserService
	Opportunities *OpportunityService
	Applications  *ApplicationService
	Matching      *MatchingService

	UserRepo        *repository.UserRepository
	OpportunityRepo *repository.OpportunityRepository
	ApplicationRepo *repository.ApplicationRepository
}

// ServicesConfig holds the optional pieces of a Services bundle
type ServicesConfig struct {
	Strategy  MatchStrategy         // Defaults to InterestMatchStrategy
	Observers []ApplicationObserver // Registered in order
	Logger    *slog.Logger
}

// NewServices creates empty repositories and the services on top of them
func NewServices(cfg ServicesConfig) *Services {
	session := NewSession()
	userRepo := repository.NewUserRepository()
	opportunityRepo := repository.NewOpportunityRepository()
	applicationRepo := repository.NewApplicationRepository(cfg.Logger)

	return &Services{
		Session: session,
		Users: NewUserService(UserServiceConfig{
			UserRepo: userRepo,
			Session:  session,
			Logger:   cfg.Logger,
		}),
		Opportunities: NewOpportunityService(OpportunityServiceConfig{
			OpportunityRepo: opportunityRepo,
			Session:         session,
			Logger:          cfg.Logger,
		}),
		Applications: NewApplicationService(ApplicationServiceConfig{
			ApplicationRepo: applicationRepo,
			Session:         session,
			Observers:       cfg.Observers,
			Logger:          cfg.Logger,
		}),
		Matching: NewMatchingService(MatchingServiceConfig{
			OpportunityRepo: opportunityRepo,
			Strategy:        cfg.Strategy,
			Logger:          cfg.Logger,
		}),
		UserRepo:        userRepo,
		OpportunityRepo: opportunityRepo,
		ApplicationRepo: applicationRepo,
	}
}
