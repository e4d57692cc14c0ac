// Package fixtures provides test data factories for service-level tests.
//
// Each factory method registers or posts entities through the services with
// sensible defaults, allowing customization via option functions, and
// returns the stored models.
//
// Usage:
//
//	f := fixtures.New(t)
//	org := f.CreateOrganization(t)
//	opp := f.PostOpportunity(t, org)
//	vol := f.CreateVolunteer(t, fixtures.WithInterests("env"))
package fixtures

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/forgo/volunteer/internal/model"
	"github.com/forgo/volunteer/internal/service"
	"github.com/forgo/volunteer/internal/testing/helpers"
)

// Factory creates test entities through a fresh set of services
type Factory struct {
	Services *service.Services
}

// New creates a factory over empty repositories. Extra observers are
// registered on the application service in order.
func New(t *testing.T, observers ...service.ApplicationObserver) *Factory {
	t.Helper()
	return &Factory{
		Services: service.NewServices(service.ServicesConfig{
			Observers: observers,
			Logger:    helpers.DiscardLogger(),
		}),
	}
}

// randomID generates a random hex ID
func randomID() string {
	b := make([]byte, 4)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// ============================================================================
// User Fixtures
// ============================================================================

// UserOpts customizes user creation
type UserOpts struct {
	Name        string
	Email       string
	Password    string
	Description string
	Interests   []string
}

// WithEmail sets the email
func WithEmail(email string) func(*UserOpts) {
	return func(o *UserOpts) { o.Email = email }
}

// WithPassword sets the password
func WithPassword(password string) func(*UserOpts) {
	return func(o *UserOpts) { o.Password = password }
}

// WithInterests sets volunteer interests
func WithInterests(interests ...string) func(*UserOpts) {
	return func(o *UserOpts) { o.Interests = interests }
}

func defaultUserOpts(prefix string, opts []func(*UserOpts)) *UserOpts {
	id := randomID()
	o := &UserOpts{
		Name:     fmt.Sprintf("%s %s", prefix, id),
		Email:    fmt.Sprintf("%s_%s@test.local", prefix, id),
		Password: "testpass123",
	}
	for _, fn := range opts {
		fn(o)
	}
	return o
}

// CreateVolunteer registers a volunteer
func (f *Factory) CreateVolunteer(t *testing.T, opts ...func(*UserOpts)) *model.Volunteer {
	t.Helper()

	o := defaultUserOpts("volunteer", opts)
	v := model.NewVolunteer().SetName(o.Name).SetEmail(o.Email).SetPassword(o.Password)
	for _, interest := range o.Interests {
		if err := v.AddInterest(interest); err != nil {
			t.Fatalf("fixtures: failed to add interest %q: %v", interest, err)
		}
	}

	if _, err := f.Services.Users.Register(context.Background(), v); err != nil {
		t.Fatalf("fixtures: failed to register volunteer: %v", err)
	}
	return v
}

// CreateOrganization registers an organization
func (f *Factory) CreateOrganization(t *testing.T, opts ...func(*UserOpts)) *model.Organization {
	t.Helper()

	o := defaultUserOpts("org", opts)
	org := model.NewOrganization().
		SetName(o.Name).
		SetEmail(o.Email).
		SetPassword(o.Password).
		SetDescription(o.Description)

	if _, err := f.Services.Users.Register(context.Background(), org); err != nil {
		t.Fatalf("fixtures: failed to register organization: %v", err)
	}
	return org
}

// LoginAs logs user in with its stored password
func (f *Factory) LoginAs(t *testing.T, user model.User) {
	t.Helper()

	acct := user.Base()
	if !f.Services.Users.Login(context.Background(), acct.Email, acct.Password) {
		t.Fatalf("fixtures: failed to log in as %s", acct.Email)
	}
}

// ============================================================================
// Opportunity Fixtures
// ============================================================================

// OpportunityOpts customizes opportunity creation
type OpportunityOpts struct {
	Title     string
	Interest  string
	Location  string
	Date      string
	Available bool
}

// WithInterest sets the opportunity interest tag
func WithInterest(interest string) func(*OpportunityOpts) {
	return func(o *OpportunityOpts) { o.Interest = interest }
}

// Closed posts the opportunity as unavailable
func Closed() func(*OpportunityOpts) {
	return func(o *OpportunityOpts) { o.Available = false }
}

// PostOpportunity logs in as org and posts an opportunity. The session is
// left logged in as org.
func (f *Factory) PostOpportunity(t *testing.T, org *model.Organization, opts ...func(*OpportunityOpts)) *model.Opportunity {
	t.Helper()

	o := &OpportunityOpts{
		Title:     fmt.Sprintf("Opportunity %s", randomID()),
		Interest:  "general",
		Location:  "Town hall",
		Date:      "2025-01-01",
		Available: true,
	}
	for _, fn := range opts {
		fn(o)
	}

	f.LoginAs(t, org)
	opp := org.CreateOpportunity().
		SetTitle(o.Title).
		SetInterest(o.Interest).
		SetLocation(o.Location).
		SetDate(o.Date).
		SetAvailable(o.Available)

	saved, err := f.Services.Opportunities.PostOpportunity(context.Background(), opp)
	if err != nil {
		t.Fatalf("fixtures: failed to post opportunity: %v", err)
	}
	return saved
}
