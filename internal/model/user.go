package model

// UserRole tags the variant of a registered user
type UserRole string

const (
	UserRoleVolunteer    UserRole = "volunteer"
	UserRoleOrganization UserRole = "organization"
)

// User is implemented by *Volunteer and *Organization only.
type User interface {
	Role() UserRole
	Base() *Account
	sealed()
}

// Account holds the fields shared by every user variant. Email is the
// storage key and must not change once the user has been saved.
type Account struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"-"` // Compared by plain equality
}

// PasswordMatches reports whether password equals the stored password
func (a *Account) PasswordMatches(password string) bool {
	return a.Password == password
}

// Volunteer is a user who applies to opportunities
type Volunteer struct {
	Account
	Interests []string `json:"interests" validate:"max=3,unique"`
}

// NewVolunteer returns an empty volunteer ready for fluent setup
func NewVolunteer() *Volunteer {
	return &Volunteer{Interests: []string{}}
}

func (v *Volunteer) Role() UserRole { return UserRoleVolunteer }
func (v *Volunteer) Base() *Account { return &v.Account }
func (v *Volunteer) sealed()        {}

func (v *Volunteer) SetName(name string) *Volunteer {
	v.Name = name
	return v
}

func (v *Volunteer) SetEmail(email string) *Volunteer {
	v.Email = email
	return v
}

func (v *Volunteer) SetPassword(password string) *Volunteer {
	v.Password = password
	return v
}

// AddInterest appends interest unless it is already present. Adding a new
// interest to a full set fails with a capacity error and leaves the set as is.
func (v *Volunteer) AddInterest(interest string) error {
	if v.HasInterest(interest) {
		return nil
	}
	if len(v.Interests) >= MaxInterestsPerVolunteer {
		return NewCapacityError("interests", MaxInterestsPerVolunteer)
	}
	v.Interests = append(v.Interests, interest)
	return nil
}

// RemoveInterest drops every occurrence of interest. Slices taken from
// Interests earlier are left untouched.
func (v *Volunteer) RemoveInterest(interest string) *Volunteer {
	kept := make([]string, 0, len(v.Interests))
	for _, i := range v.Interests {
		if i != interest {
			kept = append(kept, i)
		}
	}
	v.Interests = kept
	return v
}

// HasInterest reports whether interest is in the volunteer's set
func (v *Volunteer) HasInterest(interest string) bool {
	for _, i := range v.Interests {
		if i == interest {
			return true
		}
	}
	return false
}

// Organization is a user who posts opportunities
type Organization struct {
	Account
	Description string `json:"description"`
}

// NewOrganization returns an empty organization ready for fluent setup
func NewOrganization() *Organization {
	return &Organization{}
}

func (o *Organization) Role() UserRole { return UserRoleOrganization }
func (o *Organization) Base() *Account { return &o.Account }
func (o *Organization) sealed()        {}

func (o *Organization) SetName(name string) *Organization {
	o.Name = name
	return o
}

func (o *Organization) SetEmail(email string) *Organization {
	o.Email = email
	return o
}

func (o *Organization) SetPassword(password string) *Organization {
	o.Password = password
	return o
}

func (o *Organization) SetDescription(description string) *Organization {
	o.Description = description
	return o
}

// CreateOpportunity starts a new opportunity already owned by o
func (o *Organization) CreateOpportunity() *Opportunity {
	return NewOpportunity().SetOrganization(o)
}

// SameOrganization reports whether a and b refer to the same organization.
// Identical pointers match first; otherwise organizations match by email,
// their storage key. An account re-registered under a deleted
// organization's email therefore owns that organization's opportunities.
func SameOrganization(a, b *Organization) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a == b || a.Email == b.Email
}

// Volunteer constraints
const (
	MaxInterestsPerVolunteer = 3
)
