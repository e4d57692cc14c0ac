package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/forgo/volunteer/internal/model"
	"github.com/forgo/volunteer/internal/service"
)

// Result lists everything a load created, in file order
type Result struct {
	Organizations []*model.Organization
	Opportunities []*model.Opportunity
	Volunteers    []*model.Volunteer
}

// Loader pushes seed entries through the services so every business rule
// applies to seeded data.
type Loader struct {
	services *service.Services
	logger   *slog.Logger
}

// NewLoader creates a loader. A nil logger falls back to slog.Default().
func NewLoader(services *service.Services, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{services: services, logger: logger.With("component", "seed")}
}

// Load registers organizations, posts their opportunities while logged in
// as each one, then registers volunteers. The session is cleared when Load
// returns. The first failure stops the load; entries before it stay stored.
func (l *Loader) Load(ctx context.Context, f *File) (*Result, error) {
	users := l.services.Users
	defer users.Logout(ctx)

	res := &Result{}
	for _, o := range f.Organizations {
		org := o.Model()
		if _, err := users.Register(ctx, org); err != nil {
			return res, fmt.Errorf("organization %s: %w", o.Email, err)
		}
		res.Organizations = append(res.Organizations, org)

		if len(o.Opportunities) == 0 {
			continue
		}
		if !users.Login(ctx, org.Email, org.Password) {
			return res, fmt.Errorf("organization %s: login failed", o.Email)
		}
		for _, entry := range o.Opportunities {
			opp, err := l.services.Opportunities.PostOpportunity(ctx, entry.Model(org))
			if err != nil {
				return res, fmt.Errorf("organization %s: opportunity %q: %w", o.Email, entry.Title, err)
			}
			res.Opportunities = append(res.Opportunities, opp)
		}
	}

	for _, v := range f.Volunteers {
		vol, err := v.Model()
		if err != nil {
			return res, fmt.Errorf("volunteer %s: %w", v.Email, err)
		}
		if _, err := users.Register(ctx, vol); err != nil {
			return res, fmt.Errorf("volunteer %s: %w", v.Email, err)
		}
		res.Volunteers = append(res.Volunteers, vol)
	}

	l.logger.InfoContext(ctx, "seed loaded",
		slog.Int("organizations", len(res.Organizations)),
		slog.Int("opportunities", len(res.Opportunities)),
		slog.Int("volunteers", len(res.Volunteers)),
	)
	return res, nil
}
