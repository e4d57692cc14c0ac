// Package service implements the business rules of the volunteer matching core.
//
// The service package owns the login session, the access-control checks and
// the orchestration of repository operations. Services are the only place
// where decisions are made; entities and repositories hold data.
//
// # Service Pattern
//
// All services follow a consistent pattern:
//
//   - Constructor function (NewXxxService) accepts a config struct with repository dependencies
//   - Methods enforce session and ownership rules before touching storage
//   - Errors are *model.Error values, checked with errors.Is against model sentinels
//   - Context is passed through to loggers and observers
//
// # Session
//
// A single *Session is shared by UserService, OpportunityService and
// ApplicationService. Logging in always clears the previous session first,
// so at most one user is logged in and the last login wins.
//
// # Access Rules
//
//   - Posting, editing, deleting, closing and opening opportunities needs a
//     logged-in organization
//   - Everything except posting also needs ownership of the opportunity
//   - Applying needs a logged-in volunteer and an available opportunity
//
// # Observers
//
// ApplicationService notifies observers synchronously, in registration
// order. Apply triggers OnApplicationCreated and UpdateStatus triggers
// OnApplicationStatusChanged. Cancel saves the new status without notifying.
//
// # Example Usage
//
//	svc := NewServices(ServicesConfig{Logger: logger})
//	_, err := svc.Users.Register(ctx, model.NewOrganization().SetEmail("o@x.com"))
//	if svc.Users.Login(ctx, "o@x.com", "") {
//	    opp, err := svc.Opportunities.PostOpportunity(ctx, org.CreateOpportunity().SetTitle("Cleanup"))
//	}
package service
