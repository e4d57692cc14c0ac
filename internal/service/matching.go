package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/forgo/volunteer/internal/model"
)

// MatchStrategy selects the opportunities relevant to a volunteer
type MatchStrategy interface {
	Match(volunteer *model.Volunteer, opportunities []*model.Opportunity) []*model.Opportunity
}

// StrategyFunc adapts a plain function to MatchStrategy
type StrategyFunc func(volunteer *model.Volunteer, opportunities []*model.Opportunity) []*model.Opportunity

// Match calls f
func (f StrategyFunc) Match(volunteer *model.Volunteer, opportunities []*model.Opportunity) []*model.Opportunity {
	return f(volunteer, opportunities)
}

// InterestMatchStrategy keeps available opportunities tagged with one of the
// volunteer's interests, in the order given. There is no scoring.
type InterestMatchStrategy struct{}

// Match implements MatchStrategy
func (InterestMatchStrategy) Match(volunteer *model.Volunteer, opportunities []*model.Opportunity) []*model.Opportunity {
	matches := []*model.Opportunity{}
	if volunteer == nil || len(volunteer.Interests) == 0 {
		return matches
	}
	for _, o := range opportunities {
		if o.IsAvailable() && volunteer.HasInterest(o.Interest) {
			matches = append(matches, o)
		}
	}
	return matches
}

// Strategy names accepted by StrategyByName
const (
	StrategyInterest = "interest"
)

// StrategyByName returns the built-in strategy registered under name
func StrategyByName(name string) (MatchStrategy, error) {
	switch name {
	case StrategyInterest, "":
		return InterestMatchStrategy{}, nil
	default:
		return nil, ErrUnknownStrategy
	}
}

// OpportunityLister is the read side of opportunity storage used for matching
type OpportunityLister interface {
	GetAll() []*model.Opportunity
}

// MatchingService suggests opportunities to volunteers
type MatchingService struct {
	opportunityRepo OpportunityLister
	logger          *slog.Logger

	mu       sync.RWMutex
	strategy MatchStrategy
}

// MatchingServiceConfig holds configuration for the matching service
type MatchingServiceConfig struct {
	OpportunityRepo OpportunityLister
	Strategy        MatchStrategy // Optional, defaults to InterestMatchStrategy
	Logger          *slog.Logger  // Optional
}

// NewMatchingService creates a new matching service
func NewMatchingService(cfg MatchingServiceConfig) *MatchingService {
	strategy := cfg.Strategy
	if strategy == nil {
		strategy = InterestMatchStrategy{}
	}
	return &MatchingService{
		opportunityRepo: cfg.OpportunityRepo,
		strategy:        strategy,
		logger:          componentLogger(cfg.Logger, "matching_service"),
	}
}

// SetStrategy replaces the active strategy. A nil strategy is ignored.
func (s *MatchingService) SetStrategy(strategy MatchStrategy) {
	if strategy == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.strategy = strategy
}

// Strategy returns the active strategy
func (s *MatchingService) Strategy() MatchStrategy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.strategy
}

// FindMatches runs the active strategy over every stored opportunity
func (s *MatchingService) FindMatches(ctx context.Context, volunteer *model.Volunteer) []*model.Opportunity {
	opportunities := s.opportunityRepo.GetAll()
	matches := s.Strategy().Match(volunteer, opportunities)

	attrs := []any{
		slog.Int("candidates", len(opportunities)),
		slog.Int("matches", len(matches)),
	}
	if volunteer != nil {
		attrs = append(attrs, slog.String("volunteer", volunteer.Email))
	}
	s.logger.DebugContext(ctx, "matches computed", attrs...)
	return matches
}
