package model

// Opportunity is a volunteering engagement posted by an organization and
// tagged with a single interest. ID is zero until the first save.
type Opportunity struct {
	ID           int           `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Interest     string        `json:"interest"`
	Location     string        `json:"location"`
	Date         string        `json:"date"`
	Organization *Organization `json:"organization,omitempty"`
	Available    bool          `json:"available"`
}

// NewOpportunity returns an unsaved opportunity accepting applications
func NewOpportunity() *Opportunity {
	return &Opportunity{Available: true}
}

// EntityID returns the repository id
func (o *Opportunity) EntityID() int { return o.ID }

// AssignID sets the repository id
func (o *Opportunity) AssignID(id int) { o.ID = id }

func (o *Opportunity) SetID(id int) *Opportunity {
	o.ID = id
	return o
}

func (o *Opportunity) SetTitle(title string) *Opportunity {
	o.Title = title
	return o
}

func (o *Opportunity) SetDescription(description string) *Opportunity {
	o.Description = description
	return o
}

func (o *Opportunity) SetInterest(interest string) *Opportunity {
	o.Interest = interest
	return o
}

func (o *Opportunity) SetLocation(location string) *Opportunity {
	o.Location = location
	return o
}

func (o *Opportunity) SetDate(date string) *Opportunity {
	o.Date = date
	return o
}

func (o *Opportunity) SetOrganization(org *Organization) *Opportunity {
	o.Organization = org
	return o
}

func (o *Opportunity) SetAvailable(available bool) *Opportunity {
	o.Available = available
	return o
}

// IsAvailable reports whether the opportunity accepts applications
func (o *Opportunity) IsAvailable() bool {
	return o.Available
}

// Opportunity field names accepted by edit overlays
const (
	OpportunityFieldID           = "id"
	OpportunityFieldTitle        = "title"
	OpportunityFieldDescription  = "description"
	OpportunityFieldInterest     = "interest"
	OpportunityFieldLocation     = "location"
	OpportunityFieldDate         = "date"
	OpportunityFieldOrganization = "organization"
	OpportunityFieldAvailable    = "available"
)
