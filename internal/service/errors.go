package service

import (
	"fmt"

	"github.com/forgo/volunteer/internal/model"
)

// Centralized service layer errors.
// Every error is a *model.Error, so callers check the kind with
// errors.Is(err, model.ErrAuthorization) and friends.

// ===== Registration Errors =====
var (
	ErrNotAUser           = model.NewTypeMismatchError("user must be a volunteer or an organization")
	ErrEmailRequired      = model.NewValidationError("email is required")
	ErrEmailAlreadyExists = model.NewDuplicateError("email already registered")
	ErrDuplicateInterests = model.NewValidationError("interests must not repeat")
)

// ===== Opportunity Errors =====
var (
	ErrOpportunityRequired = model.NewValidationError("opportunity is required")
	ErrNotOwnOpportunity   = model.NewAuthorizationError("you can only manage your own opportunities")
)

// ===== Application Errors =====
var (
	ErrApplicationRequired    = model.NewValidationError("application is required")
	ErrVolunteerRequired      = model.NewAuthorizationError("only a logged-in volunteer can apply")
	ErrOpportunityUnavailable = model.NewUnavailableError("opportunity is not accepting applications")
)

// ===== Matching Errors =====
var (
	ErrUnknownStrategy = model.NewValidationError("unknown matching strategy")
)

// errOrganizationRequired reports that action needs an organization session
func errOrganizationRequired(action string) error {
	return model.NewAuthorizationError(fmt.Sprintf("only a logged-in organization can %s", action))
}
