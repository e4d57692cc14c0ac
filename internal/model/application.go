package model

// Application status values set by the service layer. Any other string is
// accepted through status updates.
const (
	ApplicationStatusPending   = "PENDING"
	ApplicationStatusCancelled = "CANCELLED"
)

// Application is a volunteer's request to take part in an opportunity
type Application struct {
	ID          int          `json:"id"`
	Volunteer   *Volunteer   `json:"volunteer"`
	Opportunity *Opportunity `json:"opportunity"`
	Status      string       `json:"status"`
}

// NewApplication returns an unsaved pending application
func NewApplication(volunteer *Volunteer, opportunity *Opportunity) *Application {
	return &Application{
		Volunteer:   volunteer,
		Opportunity: opportunity,
		Status:      ApplicationStatusPending,
	}
}

// EntityID returns the repository id
func (a *Application) EntityID() int { return a.ID }

// AssignID sets the repository id
func (a *Application) AssignID(id int) { a.ID = id }

// UpdateStatus replaces the status and returns the previous one
func (a *Application) UpdateStatus(status string) string {
	old := a.Status
	a.Status = status
	return old
}
