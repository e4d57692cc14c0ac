package service

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/forgo/volunteer/internal/model"
)

// Shared validator instance, safe for concurrent use
var validate = validator.New()

// accountOf returns the account of a user variant. Nil users and typed nil
// pointers are rejected.
func accountOf(user model.User) (*model.Account, error) {
	switch u := user.(type) {
	case *model.Volunteer:
		if u != nil {
			return &u.Account, nil
		}
	case *model.Organization:
		if u != nil {
			return &u.Account, nil
		}
	}
	return nil, ErrNotAUser
}

// validateUser checks the struct tags on the concrete user variant, including
// the embedded model.Account. The user must already have passed accountOf.
func validateUser(user model.User) error {
	err := validate.Struct(user)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return model.NewValidationError(err.Error())
	}
	for _, fe := range verrs {
		switch {
		case fe.Field() == "Email":
			return ErrEmailRequired
		case fe.Field() == "Interests" && fe.Tag() == "max":
			return model.NewCapacityError("interests", model.MaxInterestsPerVolunteer)
		case fe.Field() == "Interests" && fe.Tag() == "unique":
			return ErrDuplicateInterests
		}
	}
	return model.NewValidationError(verrs[0].Error())
}
