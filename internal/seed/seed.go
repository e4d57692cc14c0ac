// Package seed loads users and opportunities from a TOML file into the
// services.
package seed

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"

	"github.com/forgo/volunteer/internal/model"
)

// File is the decoded form of a seed file
type File struct {
	Organizations []Organization `toml:"organizations" validate:"dive"`
	Volunteers    []Volunteer    `toml:"volunteers" validate:"dive"`
}

// Organization is a seeded organization and the opportunities it posts
type Organization struct {
	Name          string        `toml:"name"`
	Email         string        `toml:"email" validate:"required"`
	Password      string        `toml:"password"`
	Description   string        `toml:"description"`
	Opportunities []Opportunity `toml:"opportunities" validate:"dive"`
}

// Opportunity is a seeded opportunity. Available defaults to true.
type Opportunity struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
	Interest    string `toml:"interest"`
	Location    string `toml:"location"`
	Date        string `toml:"date"`
	Available   *bool  `toml:"available"`
}

// Volunteer is a seeded volunteer
type Volunteer struct {
	Name      string   `toml:"name"`
	Email     string   `toml:"email" validate:"required"`
	Password  string   `toml:"password"`
	Interests []string `toml:"interests" validate:"max=3,unique"`
}

var validate = validator.New()

// Parse decodes and validates a seed document. Unknown keys are rejected.
func Parse(r io.Reader) (*File, error) {
	var f File
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, model.NewValidationError(strict.String())
		}
		return nil, fmt.Errorf("failed to decode seed file: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// ParseFile reads and parses the seed file at path
func ParseFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer fh.Close()
	return Parse(fh)
}

// Validate checks every entry, reporting all failures as validation errors
func (f *File) Validate() error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, model.NewValidationError(
			fmt.Sprintf("%s failed %q", fe.Namespace(), fe.ActualTag()),
		))
	}
	return errors.Join(errs...)
}

// Model builds the domain organization for o
func (o Organization) Model() *model.Organization {
	return model.NewOrganization().
		SetName(o.Name).
		SetEmail(o.Email).
		SetPassword(o.Password).
		SetDescription(o.Description)
}

// Model builds an opportunity owned by org
func (o Opportunity) Model(org *model.Organization) *model.Opportunity {
	available := true
	if o.Available != nil {
		available = *o.Available
	}
	return org.CreateOpportunity().
		SetTitle(o.Title).
		SetDescription(o.Description).
		SetInterest(o.Interest).
		SetLocation(o.Location).
		SetDate(o.Date).
		SetAvailable(available)
}

// Model builds the domain volunteer for v
func (v Volunteer) Model() (*model.Volunteer, error) {
	vol := model.NewVolunteer().SetName(v.Name).SetEmail(v.Email).SetPassword(v.Password)
	for _, interest := range v.Interests {
		if err := vol.AddInterest(interest); err != nil {
			return nil, err
		}
	}
	return vol, nil
}
