// Factory Pattern
//
// Create a factory backed by fresh in-memory services:
//
//	f := fixtures.New(t)
//
// # Creating Test Data
//
// Factory methods go through the services, so every business rule applies:
//
//	org := f.CreateOrganization(t)
//	opp := f.PostOpportunity(t, org, fixtures.WithInterest("env"))
//	vol := f.CreateVolunteer(t, fixtures.WithInterests("env", "kids"))
//	f.LoginAs(t, vol)
//
// # Random Data
//
// Emails and titles get random suffixes, so factories can be called
// repeatedly in one test.
package fixtures
